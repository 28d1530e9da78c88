// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stack provides a LIFO stack backed by a slice.
package stack

// Stack holds items in last-in first-out order. The zero value is an
// empty stack.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return new(Stack[T])
}

// Len returns the number of items in s.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether s holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Push adds item on top of s.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Pop removes and returns the top item. It returns false when s is
// empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := len(s.items) - 1
	item := s.items[top]
	// clear the slot in case it holds pointers
	s.items[top] = zero
	s.items = s.items[:top]
	return item, true
}
