// File: api/ring.go
// Author: momentics <momentics@gmail.com>
//
// Contracts for the bounded ring buffer variants.

package api

// Ring is the single-writer/single-reader bounded ring contract.
//
// Writes truncate silently when space runs out and reads come back short
// when data runs out; neither is an error. Implementations carry no
// internal locking: one logical writer, one logical reader, and any
// cross-thread handoff is the caller's responsibility.
type Ring[T any] interface {
	// Extend appends input in order and returns the count actually written.
	Extend(input []T) int
	// Push appends a single value, returning 0 or 1.
	Push(value T) int
	// Take removes and returns up to amount values in write order.
	Take(amount int) []T
	// TakeOne removes and returns one value, the zero value if empty.
	TakeOne() T
	// TakeAll removes and returns everything currently readable.
	TakeAll() []T
	// RawData snapshots the full backing store rotated to the read cursor.
	RawData() []T
	// Len returns the count of unread values.
	Len() int
	// Cap returns the physical capacity; usable capacity is Cap()-1.
	Cap() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// IsFull reports whether Len() == Cap()-1.
	IsFull() bool
}

// Cursor identifies one reader's slot in a multi-reader ring registry.
// It carries no data of its own; all indexing goes through the buffer
// that issued it. A Cursor is only meaningful to that buffer.
type Cursor int

// MultiRing is the single-writer/multi-reader bounded ring contract.
// Each reader owns an independent Cursor into the same backing store; the
// writer's available space is governed by the least-advanced cursor.
type MultiRing[T any] interface {
	// CreateReadCursor allocates a new reader positioned at the current
	// write cursor. Returns ErrResourceExhausted once the registry is full.
	CreateReadCursor() (Cursor, error)
	// SkipCurrentData fast-forwards one cursor past its unread backlog.
	SkipCurrentData(cursor Cursor)
	// Extend appends input in order and returns the count actually written.
	Extend(input []T) int
	// Push appends a single value, returning 0 or 1.
	Push(value T) int
	// Take removes up to amount values as seen by the given cursor.
	Take(amount int, cursor Cursor) []T
	// TakeOne removes one value for the cursor, the zero value if empty.
	TakeOne(cursor Cursor) T
	// TakeAll removes everything currently readable by the cursor.
	TakeAll(cursor Cursor) []T
	// RawData snapshots the backing store rotated to the cursor's position.
	RawData(cursor Cursor) []T
	// Len returns the count of values unread by the cursor.
	Len(cursor Cursor) int
	// Cap returns the physical capacity; usable capacity is Cap()-1.
	Cap() int
	// IsEmpty reports whether Len(cursor) == 0.
	IsEmpty(cursor Cursor) bool
	// IsFull reports whether Len(cursor) == Cap()-1.
	IsFull(cursor Cursor) bool
}
