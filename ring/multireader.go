// File: ring/multireader.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Single-writer/multi-reader ring. Each reader owns an independent cursor
// into the shared backing store; the writer may never advance past the
// slowest reader.

package ring

import "github.com/momentics/ringbuf/api"

// Ensure compile-time interface compliance.
var _ api.MultiRing[any] = (*MultiReader[any])(nil)

// MultiReader is a bounded ring with one write cursor and a fixed-size
// registry of read cursors allocated on demand. Every reader perceives an
// independent FIFO view of the written stream; availability for the writer
// is capacity minus the largest per-cursor backlog, so a reader that never
// takes eventually stalls the writer at Cap()-1 backlog. That stall is the
// intended backpressure, not a fault.
//
// Not safe for concurrent use: multiple readers means multiple logical
// positions, not thread safety. See the package documentation.
type MultiReader[T any] struct {
	data    []T
	cursors []int // registry of read positions; slots [0, count) are live
	count   int
	write   int
}

// NewMultiReader allocates a ring of the given capacity with room for up
// to maxCursors readers. Panics if capacity < 2 (the sentinel gap needs
// one slot) or maxCursors < 1.
func NewMultiReader[T any](capacity, maxCursors int) *MultiReader[T] {
	if capacity < 2 {
		panic("ring: capacity must be at least 2")
	}
	if maxCursors < 1 {
		panic("ring: maxCursors must be at least 1")
	}
	return &MultiReader[T]{
		data:    make([]T, capacity),
		cursors: make([]int, maxCursors),
	}
}

// CreateReadCursor allocates the next registry slot, positioned at the
// current write cursor so the new reader sees only data written after its
// creation. Once maxCursors readers exist the registry has no spare
// capacity and ErrResourceExhausted is returned; cursors are never
// destroyed individually and stay valid for the buffer's lifetime.
func (m *MultiReader[T]) CreateReadCursor() (api.Cursor, error) {
	if m.count >= len(m.cursors) {
		return 0, api.NewError(api.ErrCodeResourceExhausted, "ring: read cursor registry is full").
			WithContext("max_cursors", len(m.cursors))
	}
	id := m.count
	m.count++
	m.cursors[id] = m.write
	return api.Cursor(id), nil
}

// SkipCurrentData fast-forwards the cursor to the current write position,
// discarding its unread backlog. Other cursors are unaffected.
func (m *MultiReader[T]) SkipCurrentData(cursor api.Cursor) {
	if !m.valid(cursor) {
		return
	}
	m.cursors[cursor] = m.write
}

// Extend appends input in order and returns the count actually written.
// Available space is computed against the least-advanced cursor; when the
// input does not fit, only the prefix that preserves the sentinel gap for
// every reader is written. Splits across the physical end of the store
// are performed as two contiguous copies.
func (m *MultiReader[T]) Extend(input []T) int {
	capacity := len(m.data)

	largest := 0
	for id := 0; id < m.count; id++ {
		if used := m.lenAt(id); used > largest {
			largest = used
		}
	}
	if available := capacity - largest; len(input) >= available {
		input = input[:available-1]
	}

	written := 0
	for written < len(input) {
		run := len(input) - written
		if straight := capacity - m.write; run > straight {
			run = straight
		}
		copy(m.data[m.write:m.write+run], input[written:written+run])
		m.write = (m.write + run) % capacity
		written += run
	}
	return written
}

// Push appends a single value, returning 0 or 1.
func (m *MultiReader[T]) Push(value T) int {
	return m.Extend([]T{value})
}

// Take removes and returns up to amount values as seen by the cursor,
// advancing only that cursor. Fewer values are returned when fewer are
// unread; a cursor this buffer never issued yields nil.
func (m *MultiReader[T]) Take(amount int, cursor api.Cursor) []T {
	if !m.valid(cursor) || amount < 0 {
		return nil
	}
	if unread := m.lenAt(int(cursor)); amount > unread {
		amount = unread
	}
	out := make([]T, amount)
	taken := m.takeInto(out, int(cursor))
	return out[:taken]
}

// TakeOne removes and returns one value for the cursor, the zero value if
// nothing is unread.
func (m *MultiReader[T]) TakeOne(cursor api.Cursor) (value T) {
	if !m.valid(cursor) {
		return value
	}
	var single [1]T
	if m.takeInto(single[:], int(cursor)) == 1 {
		value = single[0]
	}
	return value
}

// TakeAll removes and returns everything currently unread by the cursor.
func (m *MultiReader[T]) TakeAll(cursor api.Cursor) []T {
	return m.Take(m.Len(cursor), cursor)
}

// takeInto fills out from the cursor's position, splitting across the
// physical end of the store when needed, and stores the advanced position
// back into the registry.
func (m *MultiReader[T]) takeInto(out []T, id int) int {
	unread := m.lenAt(id)
	if unread == 0 {
		return 0
	}
	wanted := len(out)
	if wanted > unread {
		wanted = unread
	}

	read := m.cursors[id]
	taken := 0
	for taken < wanted {
		run := wanted - taken
		if straight := len(m.data) - read; run > straight {
			run = straight
		}
		copy(out[taken:taken+run], m.data[read:read+run])
		read = (read + run) % len(m.data)
		taken += run
	}
	m.cursors[id] = read
	return taken
}

// RawData snapshots the full backing store rotated so index 0 is the
// cursor's position. Diagnostic view only; the cursor does not advance.
func (m *MultiReader[T]) RawData(cursor api.Cursor) []T {
	if !m.valid(cursor) {
		return nil
	}
	read := m.cursors[cursor]
	out := make([]T, len(m.data))
	n := copy(out, m.data[read:])
	copy(out[n:], m.data[:read])
	return out
}

// Len returns the count of values unread by the cursor. A cursor this
// buffer never issued reports 0.
func (m *MultiReader[T]) Len(cursor api.Cursor) int {
	if !m.valid(cursor) {
		return 0
	}
	return m.lenAt(int(cursor))
}

// Cap returns the physical capacity; usable capacity is Cap()-1.
func (m *MultiReader[T]) Cap() int {
	return len(m.data)
}

// IsEmpty reports whether the cursor has nothing unread.
func (m *MultiReader[T]) IsEmpty(cursor api.Cursor) bool {
	return m.Len(cursor) == 0
}

// IsFull reports whether the cursor's backlog is at the maximum reachable
// length, Cap()-1.
func (m *MultiReader[T]) IsFull(cursor api.Cursor) bool {
	if !m.valid(cursor) {
		return false
	}
	return m.lenAt(int(cursor)) == len(m.data)-1
}

// Cursors returns how many read cursors have been allocated.
func (m *MultiReader[T]) Cursors() int {
	return m.count
}

// MaxCursors returns the registry size fixed at construction.
func (m *MultiReader[T]) MaxCursors() int {
	return len(m.cursors)
}

// valid reports whether the cursor indexes a live registry slot. Handles
// are plain slot indices; anything outside [0, count) is inert.
func (m *MultiReader[T]) valid(cursor api.Cursor) bool {
	return cursor >= 0 && int(cursor) < m.count
}

func (m *MultiReader[T]) lenAt(id int) int {
	used := m.write - m.cursors[id]
	if used < 0 {
		used += len(m.data)
	}
	return used
}
