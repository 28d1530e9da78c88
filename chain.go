// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chainmap

import "github.com/aristanetworks/chainmap/list"

// entry is a key/elem pair stored in a chain.
type entry[K, E any] struct {
	key  K
	elem E
}

// chain holds the entries of one bucket in insertion order. A key
// appears at most once.
type chain[K, E any] struct {
	entries list.List[entry[K, E]]
}

func (c *chain[K, E]) len() int {
	return c.entries.Len()
}

func (c *chain[K, E]) empty() bool {
	return c.entries.IsEmpty()
}

func (c *chain[K, E]) find(equal func(a, b K) bool, key K) *list.Node[entry[K, E]] {
	return c.entries.FindFunc(func(e entry[K, E]) bool {
		return equal(key, e.key)
	})
}

// insert stores elem under key. If key was already present its elem is
// replaced in place and the old one returned with replaced set;
// otherwise a new entry is appended.
func (c *chain[K, E]) insert(equal func(a, b K) bool, key K, elem E) (old E, replaced bool) {
	if n := c.find(equal, key); n != nil {
		old = n.Value.elem
		n.Value.key = key
		n.Value.elem = elem
		return old, true
	}
	c.entries.Append(entry[K, E]{key: key, elem: elem})
	return old, false
}

// remove unlinks the entry for key, keeping the order of the others.
func (c *chain[K, E]) remove(equal func(a, b K) bool, key K) (E, bool) {
	e, ok := c.entries.RemoveFunc(func(e entry[K, E]) bool {
		return equal(key, e.key)
	})
	return e.elem, ok
}

func (c *chain[K, E]) clear() {
	c.entries.Clear()
}
