// Copyright (c) Arista Networks, Inc. 2024
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewQueueIsEmpty(t *testing.T) {
	q := New[int]()
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Len())
	require.Equal(t, DefaultCapacity, q.Cap())
	_, ok := q.Dequeue()
	require.False(t, ok)
	_, ok = q.Peek()
	require.False(t, ok)
}

func TestEnqueueDequeueOrder(t *testing.T) {
	q := New[string]()
	for _, s := range []string{"A", "B", "C"} {
		q.Enqueue(s)
	}
	front, ok := q.Peek()
	require.True(t, ok)
	require.Equal(t, "A", front)
	require.Equal(t, 3, q.Len())

	for _, want := range []string{"A", "B", "C"} {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.True(t, q.IsEmpty())
}

func TestQueueIsFull(t *testing.T) {
	q := New[int]()
	for i := 0; i < DefaultCapacity; i++ {
		require.False(t, q.IsFull())
		q.Enqueue(i)
	}
	require.True(t, q.IsFull())
}

func TestGrowPreservesOrder(t *testing.T) {
	var q Queue[int]
	require.True(t, q.IsFull(), "zero queue has no room")

	// Wrap the ring before growing so that grow has to unroll it.
	for i := 0; i < DefaultCapacity; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 10; i++ {
		got, _ := q.Dequeue()
		require.Equal(t, i, got)
	}
	for i := DefaultCapacity; i < DefaultCapacity+20; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 2*DefaultCapacity, q.Cap())
	require.Equal(t, DefaultCapacity+10, q.Len())

	for want := 10; want < DefaultCapacity+20; want++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, want, got)
	}
	require.True(t, q.IsEmpty())
}
