// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package clock measures frame time.
package clock

import (
	"time"
)

// TimeSource is the interface that provides a monotonic
// high-resolution counter.
type TimeSource interface {
	// Counter returns the current value of the counter.
	// It must never decrease.
	Counter() uint64

	// Frequency returns the number of counter ticks per
	// second. It must be greater than zero.
	Frequency() uint64
}

// MonotonicSource is a TimeSource backed by the
// monotonic clock of the Go runtime.
// Its counter measures nanoseconds since its creation.
type MonotonicSource struct {
	origin time.Time
}

// NewMonotonicSource creates a MonotonicSource.
func NewMonotonicSource() *MonotonicSource {
	return &MonotonicSource{origin: time.Now()}
}

// Counter implements TimeSource.
func (s *MonotonicSource) Counter() uint64 { return uint64(time.Since(s.origin)) }

// Frequency implements TimeSource.
func (s *MonotonicSource) Frequency() uint64 { return uint64(time.Second) }

// ManualSource is a TimeSource whose counter only
// changes when told to.
// Its frequency is one tick per nanosecond.
type ManualSource struct {
	ticks uint64
}

// Counter implements TimeSource.
func (s *ManualSource) Counter() uint64 { return s.ticks }

// Frequency implements TimeSource.
func (s *ManualSource) Frequency() uint64 { return uint64(time.Second) }

// Advance moves the counter forward by d.
// Negative durations are ignored.
func (s *ManualSource) Advance(d time.Duration) {
	if d > 0 {
		s.ticks += uint64(d)
	}
}

// Time is the frame time passed to update callbacks.
type Time struct {
	// Seconds elapsed since the previous frame.
	Delta float64
	// Seconds elapsed since the clock was started.
	Total float64
	// Number of frames ticked so far.
	Frame uint64
}

// Clock tracks frame time.
// Tick must be called exactly once per frame, before
// any time is read in that frame.
type Clock struct {
	src    TimeSource
	freq   float64
	origin uint64
	prev   uint64
	curr   uint64
	delta  float64
	total  float64
	frame  uint64
}

// New creates a clock that samples src.
// If src is nil, a MonotonicSource is used.
func New(src TimeSource) *Clock {
	if src == nil {
		src = NewMonotonicSource()
	}
	return &Clock{
		src:  src,
		freq: float64(src.Frequency()),
	}
}

// Start begins sampling elapsed time and zeroes the
// frame counter.
// The current sample becomes both the previous sample
// and the origin of Total.
func (c *Clock) Start() {
	now := c.src.Counter()
	c.origin, c.prev, c.curr = now, now, now
	c.delta, c.total, c.frame = 0, 0, 0
}

// Tick advances the clock by one frame.
func (c *Clock) Tick() {
	c.prev = c.curr
	c.curr = c.src.Counter()
	c.delta = float64(c.curr-c.prev) / c.freq
	c.total = float64(c.curr-c.origin) / c.freq
	c.frame++
}

// Reset zeroes the frame time and the frame counter and
// restarts sampling.
// It is not necessary to call Start afterwards.
func (c *Clock) Reset() { c.Start() }

// Delta returns the seconds elapsed between the last
// two ticks.
func (c *Clock) Delta() float64 { return c.delta }

// Total returns the seconds elapsed between Start and
// the last tick.
func (c *Clock) Total() float64 { return c.total }

// Frame returns the number of ticks since Start.
func (c *Clock) Frame() uint64 { return c.frame }

// FramesPerSecond returns the frame rate implied by
// the last delta, or 0 if the delta is not positive.
func (c *Clock) FramesPerSecond() float64 {
	if c.delta > 0 {
		return 1 / c.delta
	}
	return 0
}

// Now returns the current frame time.
func (c *Clock) Now() Time {
	return Time{Delta: c.delta, Total: c.total, Frame: c.frame}
}
