// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"hash/maphash"

	"github.com/BurntSushi/toml"
	"github.com/aristanetworks/chainmap"
	"github.com/pkg/errors"
)

// Pair is one key/value to insert.
type Pair struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Config is a workload applied to a fresh map: every insert in order,
// then every remove, then every get.
type Config struct {
	Buckets int      `toml:"buckets"`
	Hash    string   `toml:"hash"` // "maphash" or "xxhash"
	Remove  []string `toml:"remove"`
	Get     []string `toml:"get"`
	Insert  []Pair   `toml:"insert"`
}

var hashes = map[string]func(maphash.Seed, string) uint64{
	"maphash": chainmap.HashString,
	"xxhash":  chainmap.XXHashString,
}

// LoadConfig reads a TOML workload from path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Buckets == 0 {
		c.Buckets = chainmap.DefaultBuckets
	}
	if c.Buckets < 0 {
		return errors.Errorf("buckets must be positive, got %d", c.Buckets)
	}
	if c.Hash == "" {
		c.Hash = "maphash"
	}
	if _, ok := hashes[c.Hash]; !ok {
		return errors.Errorf("unknown hash %q", c.Hash)
	}
	return nil
}
