// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chainmap loads a TOML workload into a chainmap.Map, logs the
// result of every operation and reports how the entries spread over
// the buckets.
//
// Usage:
//
//	chainmap -config workload.toml [-v] [-json]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aristanetworks/chainmap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(verbose, json bool) (*zap.Logger, error) {
	loggerConfig := zap.Config{
		Level:            zap.NewAtomicLevel(),
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if json {
		loggerConfig.Encoding = "json"
		loggerConfig.EncoderConfig = zap.NewProductionEncoderConfig()
	}
	if verbose {
		loggerConfig.Level.SetLevel(zap.DebugLevel)
	} else {
		loggerConfig.Level.SetLevel(zap.InfoLevel)
	}
	return loggerConfig.Build()
}

// run applies cfg to a new map and returns it.
func run(cfg *Config, logger *zap.Logger) *chainmap.Map[string, string] {
	m := chainmap.NewSize[string, string](cfg.Buckets,
		func(a, b string) bool { return a == b }, hashes[cfg.Hash])

	for _, p := range cfg.Insert {
		old, replaced := m.Insert(p.Key, p.Value)
		if replaced {
			logger.Debug("updated", zap.String("key", p.Key),
				zap.String("old", old), zap.String("value", p.Value))
		} else {
			logger.Debug("inserted", zap.String("key", p.Key), zap.String("value", p.Value))
		}
	}
	for _, k := range cfg.Remove {
		v, ok := m.Remove(k)
		logger.Debug("remove", zap.String("key", k), zap.Bool("found", ok), zap.String("value", v))
	}
	for _, k := range cfg.Get {
		v, ok := m.Get(k)
		logger.Info("get", zap.String("key", k), zap.Bool("found", ok), zap.String("value", v))
	}

	st := m.Stats()
	logger.Info("stats",
		zap.Int("buckets", st.Buckets),
		zap.Int("used", st.Used),
		zap.Int("entries", st.Entries),
		zap.Int("longest", st.Longest),
		zap.Float64("loadFactor", st.LoadFactor))
	return m
}

func main() {
	path := flag.String("config", "", "TOML workload file")
	verbose := flag.Bool("v", false, "log every operation")
	json := flag.Bool("json", false, "log as JSON")
	flag.Parse()

	logger, err := newLogger(*verbose, *json)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *path == "" {
		logger.Fatal("missing -config")
	}
	cfg, err := LoadConfig(*path)
	if err != nil {
		logger.Fatal("cannot load workload", zap.Error(err))
	}
	logger.Debug("loaded workload", zap.Object("config", cfg))

	m := run(cfg, logger)
	fmt.Println(m)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (c *Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("buckets", c.Buckets)
	enc.AddString("hash", c.Hash)
	enc.AddInt("inserts", len(c.Insert))
	enc.AddInt("removes", len(c.Remove))
	enc.AddInt("gets", len(c.Get))
	return nil
}
