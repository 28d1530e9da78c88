// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package list provides List, a generic singly linked list.
//
// Structural edits that name an element (InsertAfter, InsertBefore,
// Delete) or that need one to exist (DeleteFirst, DeleteLast) treat a
// missing element as a programmer error and panic. The panic value is an
// error wrapping ErrEmpty or ErrNotFound, so code that recovers can tell
// the two apart with errors.Is.
package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is wrapped by the panic of an edit that needs at least
	// one element.
	ErrEmpty = errors.New("list is empty")
	// ErrNotFound is wrapped by the panic of an edit relative to an
	// element that is not in the list.
	ErrNotFound = errors.New("element not found in list")
)

// Node is an element of a List. Each node owns the node after it.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the node following n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// List is a singly linked list. The zero value is an empty list ready
// to use, though Find, InsertAfter, InsertBefore and Delete need the
// equal func given to New.
type List[T any] struct {
	head  *Node[T]
	tail  *Node[T]
	len   int
	equal func(a, b T) bool
}

// New returns an empty list that compares elements with equal.
func New[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{equal: equal}
}

// NewComparable returns an empty list that compares elements with ==.
func NewComparable[T comparable]() *List[T] {
	return New(func(a, b T) bool { return a == b })
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Front returns the first node of l or nil.
func (l *List[T]) Front() *Node[T] {
	return l.head
}

// Back returns the last node of l or nil.
func (l *List[T]) Back() *Node[T] {
	return l.tail
}

// Clear drops every element of l.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Append adds v at the end of l.
func (l *List[T]) Append(v T) {
	n := &Node[T]{Value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// Prepend adds v at the front of l.
func (l *List[T]) Prepend(v T) {
	n := &Node[T]{Value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

// InsertAfter inserts v right after the first element equal to given.
func (l *List[T]) InsertAfter(v, given T) {
	if l.IsEmpty() {
		panic(errors.WithMessage(ErrEmpty, "insert after"))
	}
	n := l.FindFunc(l.matches(given))
	if n == nil {
		panic(errors.Wrapf(ErrNotFound, "insert after %v", given))
	}
	n.next = &Node[T]{Value: v, next: n.next}
	if l.tail == n {
		l.tail = n.next
	}
	l.len++
}

// InsertBefore inserts v right before the first element equal to given.
func (l *List[T]) InsertBefore(v, given T) {
	if l.IsEmpty() {
		panic(errors.WithMessage(ErrEmpty, "insert before"))
	}
	eq := l.matches(given)
	for link := &l.head; *link != nil; link = &(*link).next {
		if eq((*link).Value) {
			*link = &Node[T]{Value: v, next: *link}
			l.len++
			return
		}
	}
	panic(errors.Wrapf(ErrNotFound, "insert before %v", given))
}

// Find returns the position of the first element equal to v.
func (l *List[T]) Find(v T) (int, bool) {
	eq := l.matches(v)
	i := 0
	for n := l.head; n != nil; n = n.next {
		if eq(n.Value) {
			return i, true
		}
		i++
	}
	return -1, false
}

// FindFunc returns the first node whose value satisfies f, or nil. The
// node's Value may be modified in place.
func (l *List[T]) FindFunc(f func(T) bool) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if f(n.Value) {
			return n
		}
	}
	return nil
}

// DeleteFirst removes and returns the first element of l.
func (l *List[T]) DeleteFirst() T {
	if l.IsEmpty() {
		panic(errors.WithMessage(ErrEmpty, "delete first"))
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.len--
	return n.Value
}

// DeleteLast removes and returns the last element of l.
func (l *List[T]) DeleteLast() T {
	if l.IsEmpty() {
		panic(errors.WithMessage(ErrEmpty, "delete last"))
	}
	last := l.tail
	if l.head == last {
		l.Clear()
		return last.Value
	}
	prev := l.head
	for prev.next != last {
		prev = prev.next
	}
	prev.next = nil
	l.tail = prev
	l.len--
	return last.Value
}

// Delete removes the first element equal to v.
func (l *List[T]) Delete(v T) {
	if l.IsEmpty() {
		panic(errors.WithMessage(ErrEmpty, "delete"))
	}
	if _, ok := l.RemoveFunc(l.matches(v)); !ok {
		panic(errors.Wrapf(ErrNotFound, "delete %v", v))
	}
}

// RemoveFunc unlinks the first element satisfying f and returns it. The
// order of the remaining elements is unchanged.
func (l *List[T]) RemoveFunc(f func(T) bool) (T, bool) {
	var prev *Node[T]
	for link := &l.head; *link != nil; link = &(*link).next {
		n := *link
		if !f(n.Value) {
			prev = n
			continue
		}
		// hand ownership of the successor to n's owner
		*link = n.next
		if l.tail == n {
			l.tail = prev
		}
		n.next = nil
		l.len--
		return n.Value, true
	}
	var zero T
	return zero, false
}

// All returns an iterator over the elements of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// String formats l as "a -> b -> c".
func (l *List[T]) String() string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(" -> ")
		}
		fmt.Fprint(&b, n.Value)
	}
	return b.String()
}

func (l *List[T]) matches(v T) func(T) bool {
	if l.equal == nil {
		panic("list: equal func not set, use New or NewComparable")
	}
	return func(x T) bool { return l.equal(x, v) }
}
