// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package clock

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	var src ManualSource
	src.Advance(time.Hour)
	c := New(&src)
	c.Start()
	if c.Delta() != 0 || c.Total() != 0 || c.Frame() != 0 {
		t.Fatalf("Clock.Start\nhave %v\nwant zero", c.Now())
	}
	if fps := c.FramesPerSecond(); fps != 0 {
		t.Fatalf("Clock.FramesPerSecond\nhave %v\nwant 0", fps)
	}

	src.Advance(250 * time.Millisecond)
	c.Tick()
	if have := c.Now(); have != (Time{Delta: 0.25, Total: 0.25, Frame: 1}) {
		t.Fatalf("Clock.Tick\nhave %+v\nwant {0.25 0.25 1}", have)
	}
	if fps := c.FramesPerSecond(); fps != 4 {
		t.Fatalf("Clock.FramesPerSecond\nhave %v\nwant 4", fps)
	}

	src.Advance(500 * time.Millisecond)
	c.Tick()
	if have := c.Now(); have != (Time{Delta: 0.5, Total: 0.75, Frame: 2}) {
		t.Fatalf("Clock.Tick\nhave %+v\nwant {0.5 0.75 2}", have)
	}

	// A tick with no elapsed time guards the frame rate.
	c.Tick()
	if c.Delta() != 0 || c.FramesPerSecond() != 0 {
		t.Fatalf("Clock.Tick: zero delta\nhave %v, %v\nwant 0, 0", c.Delta(), c.FramesPerSecond())
	}
	if c.Frame() != 3 {
		t.Fatalf("Clock.Frame\nhave %d\nwant 3", c.Frame())
	}
}

func TestReset(t *testing.T) {
	var src ManualSource
	c := New(&src)
	c.Start()
	for range 10 {
		src.Advance(time.Second)
		c.Tick()
	}
	c.Reset()
	if have := c.Now(); have != (Time{}) {
		t.Fatalf("Clock.Reset\nhave %+v\nwant zero", have)
	}
	// No Start needed.
	src.Advance(2 * time.Second)
	c.Tick()
	if have := c.Now(); have != (Time{Delta: 2, Total: 2, Frame: 1}) {
		t.Fatalf("Clock.Tick after Reset\nhave %+v\nwant {2 2 1}", have)
	}
}

func TestMonotonic(t *testing.T) {
	c := New(nil)
	c.Start()
	prev := 0.0
	for range 5 {
		time.Sleep(time.Millisecond)
		c.Tick()
		if c.Delta() <= 0 {
			t.Fatalf("Clock.Delta\nhave %v\nwant > 0", c.Delta())
		}
		if c.Total() < prev {
			t.Fatalf("Clock.Total decreased: %v < %v", c.Total(), prev)
		}
		prev = c.Total()
	}
}

func TestRestart(t *testing.T) {
	var src ManualSource
	c := New(&src)
	c.Start()
	for range 3 {
		src.Advance(time.Second)
		c.Tick()
	}
	c.Start()
	if have := c.Now(); have != (Time{}) {
		t.Fatalf("Clock.Start: restart\nhave %+v\nwant zero", have)
	}
	src.Advance(time.Second)
	c.Tick()
	if c.Frame() != 1 || c.Total() != 1 {
		t.Fatalf("Clock.Frame/Total\nhave %d, %v\nwant 1, 1", c.Frame(), c.Total())
	}
}
