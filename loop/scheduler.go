// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package loop

import (
	"math"
)

// DefaultMaxSteps is the default maximum number of fixed
// steps per frame.
const DefaultMaxSteps = 8

// Scheduler converts variable frame time into a bounded
// number of fixed-size simulation steps.
type Scheduler struct {
	rate       float64
	fixedDelta float64
	maxSteps   int
	acc        float64
}

// NewScheduler creates a scheduler that runs updateRate
// steps per second, at most maxSteps per frame.
// maxSteps is raised to 1 if it is less than that.
// If updateRate is not positive, the scheduler never
// yields any steps.
func NewScheduler(updateRate float64, maxSteps int) *Scheduler {
	s := &Scheduler{
		rate:     updateRate,
		maxSteps: max(1, maxSteps),
	}
	if updateRate > 0 {
		s.fixedDelta = 1 / updateRate
	}
	return s
}

// Rate returns the number of steps per second.
func (s *Scheduler) Rate() float64 { return s.rate }

// FixedDelta returns the duration of a step in seconds.
func (s *Scheduler) FixedDelta() float64 { return s.fixedDelta }

// MaxSteps returns the maximum number of steps per frame.
func (s *Scheduler) MaxSteps() int { return s.maxSteps }

// Accumulator returns the time carried over to the next
// call to Accumulate.
func (s *Scheduler) Accumulator() float64 { return s.acc }

// Accumulate adds frameDelta seconds to the accumulator
// and returns how many steps to run in this frame.
// Negative deltas count as zero.
// If the time left after the steps is worth more than
// MaxSteps steps, it is dropped down to a single step,
// so that a long stall does not cause an ever-growing
// backlog.
func (s *Scheduler) Accumulate(frameDelta float64) int {
	if s.fixedDelta <= 0 {
		return 0
	}
	// Negative and NaN deltas count as no time.
	if !(frameDelta > 0) {
		frameDelta = 0
	}
	s.acc += frameDelta
	n := int(min(math.Floor(s.acc/s.fixedDelta), float64(s.maxSteps)))
	s.acc -= float64(n) * s.fixedDelta
	if s.acc > s.fixedDelta*float64(s.maxSteps) {
		s.acc = s.fixedDelta
	}
	return n
}

// Alpha returns how far the accumulator is into the next
// step, in the range [0, 1) under normal operation.
// It is meant for interpolating between the last two
// simulation states when rendering.
func (s *Scheduler) Alpha() float64 {
	if s.fixedDelta <= 0 {
		return 0
	}
	return s.acc / s.fixedDelta
}

// Reset empties the accumulator.
func (s *Scheduler) Reset() { s.acc = 0 }
