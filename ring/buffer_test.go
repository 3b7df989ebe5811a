// File: ring/buffer_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCapacity = 8

func TestBuffer_NewIsEmpty(t *testing.T) {
	rb := New[int](testCapacity)

	assert.Equal(t, 0, rb.Len())
	assert.Equal(t, testCapacity, rb.Cap())
	assert.True(t, rb.IsEmpty())
	assert.False(t, rb.IsFull())
}

func TestBuffer_InvalidCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](1) })
	assert.NotPanics(t, func() { New[int](2) })
}

func TestBuffer_ExtendAndTakeSimple(t *testing.T) {
	rb := New[int](testCapacity)

	written := rb.Extend([]int{1, 2, 3})
	require.Equal(t, 3, written)
	require.Equal(t, 3, rb.Len())

	assert.Equal(t, []int{1, 2, 3}, rb.Take(3))
	assert.True(t, rb.IsEmpty())
}

func TestBuffer_ExtendOverCapacityTruncates(t *testing.T) {
	rb := New[int](testCapacity)

	input := make([]int, 20)
	for i := range input {
		input[i] = i
	}

	// One slot always stays free: equal cursors must mean empty, not full.
	written := rb.Extend(input)
	assert.Equal(t, testCapacity-1, written)
	assert.True(t, rb.IsFull())
	assert.Equal(t, testCapacity-1, rb.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, rb.TakeAll())
}

func TestBuffer_TruncationTakesPrefix(t *testing.T) {
	rb := New[int](testCapacity)
	rb.Extend([]int{1, 2, 3, 4})

	// 3 slots usable, so exactly min(k, C-u-1) = 3 of the burst land.
	written := rb.Extend([]int{5, 6, 7, 8, 9})
	assert.Equal(t, 3, written)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, rb.TakeAll())
}

func TestBuffer_TakeMoreThanAvailable(t *testing.T) {
	rb := New[int](testCapacity)

	rb.Extend([]int{1, 2, 3})
	assert.Equal(t, []int{1, 2, 3}, rb.Take(10))
	assert.True(t, rb.IsEmpty())
	assert.Empty(t, rb.Take(4))
}

func TestBuffer_WraparoundBehavior(t *testing.T) {
	rb := New[int](testCapacity)

	written := rb.Extend([]int{1, 2, 3, 4, 5, 6, 7})
	require.Equal(t, 7, written)
	require.True(t, rb.IsFull())
	assert.Equal(t, []int{1, 2, 3, 4}, rb.Take(4))
	assert.Equal(t, 3, rb.Len())

	// The second write straddles the physical end of the store.
	written = rb.Extend([]int{8, 9, 10})
	require.Equal(t, 3, written)
	assert.Equal(t, 6, rb.Len())
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10}, rb.Take(6))
	assert.True(t, rb.IsEmpty())
}

func TestBuffer_MultipleSmallWritesAndReads(t *testing.T) {
	rb := New[int](testCapacity)

	for i := 0; i < 5; i++ {
		require.Equal(t, 1, rb.Extend([]int{i}))
	}
	require.Equal(t, 5, rb.Len())

	for i := 0; i < 5; i++ {
		assert.Equal(t, []int{i}, rb.Take(1))
	}
	assert.True(t, rb.IsEmpty())
}

func TestBuffer_PushAndTakeOne(t *testing.T) {
	rb := New[string](4)

	assert.Equal(t, 1, rb.Push("a"))
	assert.Equal(t, 1, rb.Push("b"))
	assert.Equal(t, "a", rb.TakeOne())
	assert.Equal(t, "b", rb.TakeOne())

	// Empty buffer yields the zero value, indistinguishable on purpose.
	assert.Equal(t, "", rb.TakeOne())
}

func TestBuffer_PushOnFullWritesNothing(t *testing.T) {
	rb := New[int](4)
	require.Equal(t, 3, rb.Extend([]int{1, 2, 3}))
	require.True(t, rb.IsFull())

	assert.Equal(t, 0, rb.Push(4))
	assert.Equal(t, []int{1, 2, 3}, rb.TakeAll())
}

func TestBuffer_TakeAllAfterWrap(t *testing.T) {
	rb := New[int](4)

	rb.Extend([]int{1, 2, 3})
	rb.Take(2)
	rb.Extend([]int{4, 5})

	assert.Equal(t, []int{3, 4, 5}, rb.TakeAll())
	assert.True(t, rb.IsEmpty())
}

func TestBuffer_RawDataRotatesToReadCursor(t *testing.T) {
	rb := New[int](testCapacity)

	rb.Extend([]int{1, 2, 3, 4, 5})
	rb.Take(2)

	// Snapshot of every physically present slot, rotated so index 0 is
	// the read cursor; consumed-but-unoverwritten values are included.
	assert.Equal(t, []int{3, 4, 5, 0, 0, 0, 1, 2}, rb.RawData())

	// RawData does not consume.
	assert.Equal(t, 3, rb.Len())
	assert.Equal(t, []int{3, 4, 5}, rb.TakeAll())
}

func TestBuffer_NegativeTakeAmount(t *testing.T) {
	rb := New[int](4)
	rb.Extend([]int{1, 2})

	assert.Empty(t, rb.Take(-3))
	assert.Equal(t, 2, rb.Len())
}

func TestBuffer_SentinelInvariantUnderChurn(t *testing.T) {
	rb := New[int](5)
	next := 0

	for round := 0; round < 50; round++ {
		in := make([]int, round%7)
		for i := range in {
			in[i] = next
			next++
		}
		rb.Extend(in)
		require.LessOrEqual(t, rb.Len(), rb.Cap()-1)
		rb.Take(round % 3)
		require.LessOrEqual(t, rb.Len(), rb.Cap()-1)
	}
}
