// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package wsi

// Headless is a Window that exists only in memory.
// Events are fed to it with Push and consumed with Poll,
// so it also serves as an input source.
type Headless struct {
	width, height int
	visible       bool
	closed        bool
	pending       []Event
}

// NewHeadless creates a hidden headless window.
func NewHeadless(width, height int) *Headless {
	return &Headless{width: width, height: height}
}

// Show implements Window.
func (w *Headless) Show() error {
	if w.closed {
		return ErrClosed
	}
	w.visible = true
	return nil
}

// Hide implements Window.
func (w *Headless) Hide() error {
	if w.closed {
		return ErrClosed
	}
	w.visible = false
	return nil
}

// Size implements Window.
func (w *Headless) Size() (width, height int) { return w.width, w.height }

// Close implements Window.
// It queues a Quit event.
func (w *Headless) Close() {
	if !w.closed {
		w.closed = true
		w.visible = false
		w.pending = append(w.pending, Event{Type: Quit})
	}
}

// Visible returns whether w is being shown.
func (w *Headless) Visible() bool { return w.visible }

// Push queues events.
// Resize events also change the size of w.
func (w *Headless) Push(events ...Event) {
	for _, e := range events {
		if e.Type == Resize {
			w.width, w.height = e.Width, e.Height
		}
	}
	w.pending = append(w.pending, events...)
}

// Poll returns the oldest queued event.
func (w *Headless) Poll() (e Event, ok bool) {
	if len(w.pending) == 0 {
		return
	}
	e = w.pending[0]
	w.pending = w.pending[1:]
	return e, true
}
