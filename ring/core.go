// File: ring/core.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared wraparound arithmetic for the single-reader ring variants.
// Fixed and Buffer embed buf and differ only in storage provenance.

package ring

// buf holds the backing store and the two cursors of a single-reader ring.
// Invariant: read and write stay in [0, len(data)); read == write means
// empty. One slot is always kept unused so that full never aliases empty.
type buf[T any] struct {
	data  []T
	read  int
	write int
}

// Extend appends input in order and returns the count actually written.
// When input does not fit, only the prefix that preserves the sentinel gap
// is written; the rest is dropped. A write crossing the physical end of
// the store is performed as two contiguous copies.
func (b *buf[T]) Extend(input []T) int {
	capacity := len(b.data)
	if capacity == 0 {
		return 0
	}

	// Truncate so at least one slot stays free after the write.
	if available := capacity - b.Len(); len(input) >= available {
		input = input[:available-1]
	}

	written := 0
	for written < len(input) {
		run := len(input) - written
		if straight := capacity - b.write; run > straight {
			run = straight
		}
		copy(b.data[b.write:b.write+run], input[written:written+run])
		b.write = (b.write + run) % capacity
		written += run
	}
	return written
}

// Push appends a single value, returning 0 or 1.
func (b *buf[T]) Push(value T) int {
	return b.Extend([]T{value})
}

// Take removes and returns up to amount values in write order. Fewer than
// amount values are returned when fewer are stored; never an error.
func (b *buf[T]) Take(amount int) []T {
	if amount < 0 {
		amount = 0
	}
	if stored := b.Len(); amount > stored {
		amount = stored
	}
	out := make([]T, amount)
	taken := b.takeInto(out)
	return out[:taken]
}

// TakeOne removes and returns one value, the zero value if empty.
func (b *buf[T]) TakeOne() (value T) {
	var single [1]T
	if b.takeInto(single[:]) == 1 {
		value = single[0]
	}
	return value
}

// TakeAll removes and returns everything currently readable.
func (b *buf[T]) TakeAll() []T {
	return b.Take(b.Len())
}

// takeInto fills out from the read cursor, splitting across the physical
// end of the store when needed, and returns the count taken.
func (b *buf[T]) takeInto(out []T) int {
	stored := b.Len()
	if stored == 0 {
		return 0
	}
	wanted := len(out)
	if wanted > stored {
		wanted = stored
	}

	taken := 0
	for taken < wanted {
		run := wanted - taken
		if straight := len(b.data) - b.read; run > straight {
			run = straight
		}
		copy(out[taken:taken+run], b.data[b.read:b.read+run])
		b.read = (b.read + run) % len(b.data)
		taken += run
	}
	return taken
}

// RawData snapshots the full backing store rotated so index 0 is the
// current read cursor. Already-consumed slots that have not been
// overwritten are included; this is a diagnostic view, not a read.
func (b *buf[T]) RawData() []T {
	out := make([]T, len(b.data))
	n := copy(out, b.data[b.read:])
	copy(out[n:], b.data[:b.read])
	return out
}

// Len returns the count of unread values.
func (b *buf[T]) Len() int {
	used := b.write - b.read
	if used < 0 {
		used += len(b.data)
	}
	return used
}

// Cap returns the physical capacity; usable capacity is Cap()-1.
func (b *buf[T]) Cap() int {
	return len(b.data)
}

// IsEmpty reports whether no unread values are stored.
func (b *buf[T]) IsEmpty() bool {
	return b.Len() == 0
}

// IsFull reports whether the ring is at its maximum reachable length,
// Cap()-1. The sentinel gap makes this the same state as "at capacity".
func (b *buf[T]) IsFull() bool {
	return b.Len() == len(b.data)-1
}
