// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package queue provides a FIFO queue backed by a ring buffer.
package queue

// DefaultCapacity is the initial capacity of a Queue and the amount
// its capacity grows by once full.
const DefaultCapacity = 256

// Queue holds items in first-in first-out order. The zero value is an
// empty queue that allocates on first Enqueue.
type Queue[T any] struct {
	buf   []T
	head  int // index of the front item
	count int
}

// New returns an empty queue with DefaultCapacity slots.
func New[T any]() *Queue[T] {
	return &Queue[T]{buf: make([]T, DefaultCapacity)}
}

// Len returns the number of items in q.
func (q *Queue[T]) Len() int {
	return q.count
}

// Cap returns the number of items q can hold before it grows.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}

// IsEmpty reports whether q holds no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

// IsFull reports whether the next Enqueue will grow q.
func (q *Queue[T]) IsFull() bool {
	return q.count == len(q.buf)
}

// Enqueue adds item at the back of q, growing q by DefaultCapacity
// slots when it is full.
func (q *Queue[T]) Enqueue(item T) {
	if q.IsFull() {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = item
	q.count++
}

// Dequeue removes and returns the front item. It returns false when q
// is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return item, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

func (q *Queue[T]) grow() {
	buf := make([]T, len(q.buf)+DefaultCapacity)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
