// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package event buffers events polled from an external
// source once per frame.
package event

import (
	"iter"
)

// Poller is the interface that wraps the non-blocking
// Poll method.
type Poller[E any] interface {
	// Poll returns the next pending event, if any.
	// It must not block.
	Poll() (E, bool)
}

// PollerFunc is an adapter to allow the use of ordinary
// functions as Pollers.
type PollerFunc[E any] func() (E, bool)

// Poll calls f().
func (f PollerFunc[E]) Poll() (E, bool) { return f() }

// DefaultCapacity is the initial capacity of a Queue.
const DefaultCapacity = 16

// Queue holds the events captured by the last call to
// Poll.
type Queue[E any] struct {
	src Poller[E]
	buf []E
	n   int
}

// NewQueue creates a queue that polls src.
func NewQueue[E any](src Poller[E]) *Queue[E] {
	return &Queue[E]{
		src: src,
		buf: make([]E, DefaultCapacity),
	}
}

// Poll discards the previously captured events and
// captures every event that src has pending.
// It returns the number of events captured.
func (q *Queue[E]) Poll() int {
	q.n = 0
	for {
		e, ok := q.src.Poll()
		if !ok {
			break
		}
		if q.n == len(q.buf) {
			buf := make([]E, max(DefaultCapacity, 2*len(q.buf)))
			copy(buf, q.buf)
			q.buf = buf
		}
		q.buf[q.n] = e
		q.n++
	}
	return q.n
}

// Events returns the events captured by the last call
// to Poll.
// The returned slice aliases q's buffer, so it must
// not be modified and is only valid until the next
// call to Poll.
func (q *Queue[E]) Events() []E { return q.buf[:q.n:q.n] }

// All returns an iterator over the events captured by
// the last call to Poll.
func (q *Queue[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := 0; i < q.n; i++ {
			if !yield(q.buf[i]) {
				return
			}
		}
	}
}

// Len returns the number of events captured by the
// last call to Poll.
func (q *Queue[E]) Len() int { return q.n }

// Cap returns the capacity of q's buffer.
func (q *Queue[E]) Cap() int { return len(q.buf) }
