// File: ring/fixed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import "github.com/momentics/ringbuf/api"

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Fixed[any])(nil)

// Fixed is a single-reader ring over caller-supplied backing storage.
// Go has no const-generic array sizes, so the static-capacity construction
// path is expressed by handing the ring a slice the caller owns, typically
// a package-level array:
//
//	var store [256]int16
//	var rb = ring.NewFixed(store[:])
//
// Construction performs no allocation and the ring writes through to the
// provided storage. The slice must not be resized or shared once handed
// over. Not safe for concurrent use; see the package documentation.
type Fixed[T any] struct {
	buf[T]
}

// NewFixed wraps the provided backing storage as a ring. The existing
// contents serve as the default values visible through RawData until
// overwritten. Panics if len(backing) < 2, since one slot is permanently
// reserved as the sentinel gap.
func NewFixed[T any](backing []T) *Fixed[T] {
	if len(backing) < 2 {
		panic("ring: backing storage must hold at least 2 slots")
	}
	return &Fixed[T]{buf[T]{data: backing}}
}

// NewFixedCap allocates zero-filled storage of the given capacity and
// wraps it. Equivalent to NewFixed(make([]T, capacity)).
func NewFixedCap[T any](capacity int) *Fixed[T] {
	if capacity < 2 {
		panic("ring: capacity must be at least 2")
	}
	return NewFixed(make([]T, capacity))
}
