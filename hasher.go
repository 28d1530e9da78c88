// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// processSeed is shared by every Map so that a key maps to the same
// bucket index for the life of the process.
var processSeed = maphash.MakeSeed()

// index maps key to a bucket in [0, len(m.buckets)).
func (m *Map[K, E]) index(key K) int {
	return int(m.hash(m.seed, key) % uint64(len(m.buckets)))
}

// HashString hashes s with seed. It can be passed to New for string keys.
func HashString(seed maphash.Seed, s string) uint64 {
	return maphash.String(seed, s)
}

// HashBytes hashes b with seed.
func HashBytes(seed maphash.Seed, b []byte) uint64 {
	return maphash.Bytes(seed, b)
}

// HashComparable hashes any comparable value with seed.
func HashComparable[K comparable](seed maphash.Seed, key K) uint64 {
	return maphash.Comparable(seed, key)
}

// XXHashString hashes s with xxhash64, ignoring the seed. The result, and
// so a key's bucket index, is the same in every process.
func XXHashString(_ maphash.Seed, s string) uint64 {
	return xxhash.Sum64String(s)
}

// XXHashBytes is the []byte counterpart of XXHashString.
func XXHashBytes(_ maphash.Seed, b []byte) uint64 {
	return xxhash.Sum64(b)
}
