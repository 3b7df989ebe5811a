// Package adapters composes the core rings with overflow policies.
//
// SpillRing[T] turns the bounded ring's silent truncation into lossless
// buffering by parking rejected values in an unbounded FIFO.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/ringbuf/api"
)

// SpillRing wraps an api.Ring so that writes never lose data: values the
// ring truncates are appended to an unbounded spill queue and re-offered
// to the ring ahead of any newer input, preserving global write order.
// The ring stays the bounded hot path; the spill only fills while the
// consumer lags further than Cap()-1 values behind.
//
// Like the rings themselves, SpillRing is not synchronized internally.
type SpillRing[T any] struct {
	ring  api.Ring[T]
	spill *queue.Queue
}

// NewSpillRing wraps ring with an empty spill queue.
func NewSpillRing[T any](ring api.Ring[T]) *SpillRing[T] {
	return &SpillRing[T]{
		ring:  ring,
		spill: queue.New(),
	}
}

// Extend accepts every element of input and returns len(input). Elements
// the ring has no room for are spilled; once anything sits in the spill
// queue, all newer input spills too so order is never reordered around it.
func (s *SpillRing[T]) Extend(input []T) int {
	total := len(input)
	s.refill()
	if s.spill.Length() == 0 {
		written := s.ring.Extend(input)
		input = input[written:]
	}
	for _, value := range input {
		s.spill.Add(value)
	}
	return total
}

// Push accepts a single value, returning 1.
func (s *SpillRing[T]) Push(value T) int {
	return s.Extend([]T{value})
}

// Take removes up to amount values in write order, draining the spill
// queue into the ring as space frees up.
func (s *SpillRing[T]) Take(amount int) []T {
	s.refill()
	out := s.ring.Take(amount)
	s.refill()
	return out
}

// TakeOne removes one value, the zero value if nothing is buffered.
func (s *SpillRing[T]) TakeOne() T {
	s.refill()
	value := s.ring.TakeOne()
	s.refill()
	return value
}

// TakeAll removes everything currently held in the ring. Spilled values
// beyond the ring's capacity stay queued for subsequent takes.
func (s *SpillRing[T]) TakeAll() []T {
	s.refill()
	out := s.ring.TakeAll()
	s.refill()
	return out
}

// Len returns the total buffered count, ring plus spill.
func (s *SpillRing[T]) Len() int {
	return s.ring.Len() + s.spill.Length()
}

// Pending returns how many values currently sit in the spill queue.
func (s *SpillRing[T]) Pending() int {
	return s.spill.Length()
}

// refill moves spilled values into the ring until one no longer fits.
func (s *SpillRing[T]) refill() {
	for s.spill.Length() > 0 {
		value := s.spill.Peek().(T)
		if s.ring.Push(value) == 0 {
			return
		}
		s.spill.Remove()
	}
}
