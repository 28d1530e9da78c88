// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chainmap provides the Map type, a hash table with a fixed
// number of buckets whose collisions are resolved by chaining entries
// in a singly linked list per bucket.
//
// Users provide an equal and a hash function. The following
// requirements are the user's responsibility to follow:
//   - equal(a, b) => hash(a) == hash(b)
//   - equal(a, a) must be true for all values of a. Be careful around NaN
//     float values.
//   - If a key in a `Map` contains references -- such as pointers, maps,
//     or slices -- modifying the referenced data in a way that effects
//     the result of the equal or hash functions will result in undefined
//     behavior.
//
// The bucket array never grows. Once the number of entries exceeds the
// number of buckets, lookups degrade towards a linear scan of the
// chains, but results stay correct.
//
// A Map is not safe for concurrent use. Wrap it in a mutex if several
// goroutines need it.
package chainmap

import (
	"hash/maphash"

	"github.com/aristanetworks/chainmap/list"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	// DefaultBuckets is the bucket count of a Map made by New.
	DefaultBuckets = 256

	// flags
	hashWriting = 1 // a goroutine is writing to the map
)

// ErrInvalidSize is wrapped by the panic of NewSize when given a
// bucket count below one.
var ErrInvalidSize = errors.New("bucket count must be positive")

// Map implements a hashmap with a fixed bucket array.
type Map[K, E any] struct {
	count int // # live entries == size of map
	flags uint32

	// array of buckets. A bucket is nil exactly when it holds no
	// entries.
	buckets []*chain[K, E]
	seed    maphash.Seed

	hash  func(maphash.Seed, K) uint64
	equal func(K, K) bool
}

// KeyElem contains a Key and Elem.
type KeyElem[K, E any] struct {
	Key  K
	Elem E
}

// New instantiates a new Map with DefaultBuckets buckets, initialized
// with any KeyElems passed. The equal func must return true for two
// values of K that are equal and false otherwise. The hash func should
// return a uniformly distributed hash value. If equal(a, b) then
// hash(a) == hash(b). The hash function is passed a
// [hash/maphash.Seed] that is fixed for the life of the process; see
// [HashString], [HashBytes], [HashComparable] and [XXHashString] for
// ready-made hash functions.
func New[K, E any](
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64,
	kes ...KeyElem[K, E]) *Map[K, E] {

	m := NewSize[K, E](DefaultBuckets, equal, hash)
	for _, ke := range kes {
		m.Insert(ke.Key, ke.Elem)
	}
	return m
}

// NewSize instantiates a new Map with nbuckets buckets. See [New] for
// discussion of the equal and hash arguments. It panics if nbuckets is
// less than one.
func NewSize[K, E any](
	nbuckets int,
	equal func(a, b K) bool,
	hash func(maphash.Seed, K) uint64) *Map[K, E] {

	if nbuckets <= 0 {
		panic(errors.Wrapf(ErrInvalidSize, "NewSize(%d)", nbuckets))
	}
	return &Map[K, E]{
		buckets: make([]*chain[K, E], nbuckets),
		seed:    processSeed,
		hash:    hash,
		equal:   equal,
	}
}

// NewComparable instantiates a new Map with DefaultBuckets buckets for
// a comparable key type, using == and [HashComparable].
func NewComparable[K comparable, E any](kes ...KeyElem[K, E]) *Map[K, E] {
	return New(func(a, b K) bool { return a == b }, HashComparable[K], kes...)
}

// Len returns the count of occupied elements in m.
func (m *Map[K, E]) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// IsEmpty reports whether m holds no elements.
func (m *Map[K, E]) IsEmpty() bool {
	return m.Len() == 0
}

// Buckets returns the fixed number of buckets of m.
func (m *Map[K, E]) Buckets() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// Get returns the element associated with key and true if that key is
// in the Map, otherwise it returns the zero value of E and false.
func (m *Map[K, E]) Get(key K) (E, bool) {
	var zeroE E
	if m == nil || m.count == 0 {
		return zeroE, false
	}
	c := m.buckets[m.index(key)]
	if c == nil {
		return zeroE, false
	}
	n := c.find(m.equal, key)
	if n == nil {
		return zeroE, false
	}
	return n.Value.elem, true
}

// Insert associates key with elem in m. If key was already present its
// previous element is returned along with true, and the size of m is
// unchanged.
func (m *Map[K, E]) Insert(key K, elem E) (old E, replaced bool) {
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because we need the user to pass in hash and equal
		// functions
		panic("Insert called on nil map")
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	i := m.index(key)
	// Set hashWriting after calling m.hash, since m.hash may panic,
	// in which case we have not actually done a write.
	m.flags ^= hashWriting

	c := m.buckets[i]
	if c == nil {
		c = &chain[K, E]{}
		m.buckets[i] = c
	}
	old, replaced = c.insert(m.equal, key, elem)
	if !replaced {
		m.count++
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	return old, replaced
}

// Remove removes key and its associated element from the map and
// returns that element. If key is not present Remove returns the zero
// value of E and false.
func (m *Map[K, E]) Remove(key K) (E, bool) {
	var zeroE E
	if m == nil || m.count == 0 {
		return zeroE, false
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	i := m.index(key)
	m.flags ^= hashWriting

	var (
		elem E
		ok   bool
	)
	if c := m.buckets[i]; c != nil {
		elem, ok = c.remove(m.equal, key)
		if ok {
			m.count--
			if c.empty() {
				m.buckets[i] = nil
			}
		}
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	return elem, ok
}

// Clear deletes all keys from m.
func (m *Map[K, E]) Clear() {
	if m == nil || m.count == 0 {
		return
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting

	for i, c := range m.buckets {
		if c != nil {
			c.clear()
			m.buckets[i] = nil
		}
	}
	m.count = 0

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}

// Iterator is instantiated by a call Iter(). It allows iterating over
// a Map.
type Iterator[K, E any] struct {
	key         K
	elem        E
	m           *Map[K, E]
	node        *list.Node[entry[K, E]]
	startBucket int
	bucket      int
	wrapped     bool
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Key() K {
	return it.key
}

// Elem returns the element at the iterator's current position. This
// is only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Elem() E {
	return it.elem
}

// Iter instantiates an Iterator to explore the elements of the Map.
// Buckets are visited starting from a random one; entries sharing a
// bucket come out in insertion order. Modifying m during iteration
// leads to undefined results.
func (m *Map[K, E]) Iter() *Iterator[K, E] {
	if m == nil || m.count == 0 {
		return &Iterator[K, E]{}
	}
	start := int(rand.Uint64() % uint64(len(m.buckets)))
	return &Iterator[K, E]{
		m:           m,
		startBucket: start,
		bucket:      start,
	}
}

// Next moves the iterator to the next element. Next returns false
// when the iterator is complete.
func (it *Iterator[K, E]) Next() bool {
	m := it.m
	if m == nil {
		return false
	}
	for it.node == nil {
		if it.bucket == it.startBucket && it.wrapped {
			// end of iteration
			var (
				zeroK K
				zeroE E
			)
			it.key = zeroK
			it.elem = zeroE
			it.m = nil
			return false
		}
		if c := m.buckets[it.bucket]; c != nil {
			it.node = c.entries.Front()
		}
		it.bucket++
		if it.bucket == len(m.buckets) {
			it.bucket = 0
			it.wrapped = true
		}
	}
	it.key = it.node.Value.key
	it.elem = it.node.Value.elem
	it.node = it.node.Next()
	return true
}
