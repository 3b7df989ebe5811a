// File: ring/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/ringbuf/api"

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Buffer[any])(nil)

// Buffer is a single-reader ring whose capacity is chosen at construction.
// Storage is allocated exactly once and never reallocated or moved for the
// buffer's lifetime, so indexed access stays on the same memory block.
// Not safe for concurrent use; see the package documentation.
type Buffer[T any] struct {
	buf[T]
}

// New allocates a ring of the given capacity, zero-filled. Capacity must
// be at least 2: one slot is permanently reserved as the sentinel gap, so
// a smaller ring could never store anything. Panics otherwise.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 2 {
		panic("ring: capacity must be at least 2")
	}
	return &Buffer[T]{buf[T]{data: make([]T, capacity)}}
}
