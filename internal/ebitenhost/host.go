// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package ebitenhost runs a loop.Loop inside an ebiten
// window.
// The host is the loop's window, input source and
// renderer: ebiten owns the main loop and calls
// loop.Loop.Frame once per tick.
package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gviegas/stage/loop"
	"github.com/gviegas/stage/wsi"
)

// Host is an ebiten-backed window.
type Host struct {
	title     string
	width     int
	height    int
	closed    bool
	minimized bool
	focused   bool
	pending   []wsi.Event
	keys      []ebiten.Key
	loop      *loop.Loop
	canvas    canvas
}

// New creates a host for a window of the given size.
// The window is only created by Run.
func New(width, height int, title string) *Host {
	return &Host{
		title:   title,
		width:   width,
		height:  height,
		focused: true,
	}
}

// Show implements wsi.Window.
func (h *Host) Show() error {
	if h.closed {
		return wsi.ErrClosed
	}
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	return nil
}

// Hide implements wsi.Window.
// ebiten windows cannot be unmapped, so the window is
// minimized instead.
func (h *Host) Hide() error {
	if h.closed {
		return wsi.ErrClosed
	}
	ebiten.MinimizeWindow()
	return nil
}

// Size implements wsi.Window.
func (h *Host) Size() (width, height int) { return h.width, h.height }

// Close implements wsi.Window.
// The loop receives a Quit event on its next frame.
func (h *Host) Close() {
	if !h.closed {
		h.closed = true
		h.pending = append(h.pending, wsi.Event{Type: wsi.Quit})
	}
}

// Poll implements event.Poller.
func (h *Host) Poll() (e wsi.Event, ok bool) {
	if len(h.pending) == 0 {
		return
	}
	e = h.pending[0]
	h.pending = h.pending[1:]
	return e, true
}

// sample turns changes in ebiten's window and keyboard
// state since the last tick into events.
func (h *Host) sample() {
	if ebiten.IsWindowBeingClosed() {
		h.Close()
	}
	if m := ebiten.IsWindowMinimized(); m != h.minimized {
		h.minimized = m
		if m {
			h.pending = append(h.pending, wsi.Event{Type: wsi.Minimize})
		} else {
			h.pending = append(h.pending, wsi.Event{Type: wsi.Restore})
		}
	}
	if f := ebiten.IsFocused(); f != h.focused {
		h.focused = f
		if f {
			h.pending = append(h.pending, wsi.Event{Type: wsi.FocusGained})
		} else {
			h.pending = append(h.pending, wsi.Event{Type: wsi.FocusLost})
		}
	}
	if w, ht := ebiten.WindowSize(); w > 0 && ht > 0 && (w != h.width || ht != h.height) {
		h.width, h.height = w, ht
		h.pending = append(h.pending, wsi.Event{Type: wsi.Resize, Width: w, Height: ht})
	}
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.pending = append(h.pending, wsi.Event{Type: wsi.KeyDown, Key: mapKey(k)})
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		h.pending = append(h.pending, wsi.Event{Type: wsi.KeyUp, Key: mapKey(k)})
	}
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	h.sample()
	if !h.loop.Frame() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) { h.canvas.draw(screen, h.loop) }

// Layout implements ebiten.Game.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run runs l until it stops or the window is closed.
// l must have been created with h as its window, input
// source and renderer.
// It blocks and must be called from the main goroutine.
func (h *Host) Run(l *loop.Loop, tps int) error {
	h.loop = l
	if err := l.Begin(); err != nil {
		return err
	}
	defer l.End()
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

var keymap = map[ebiten.Key]wsi.Key{
	ebiten.KeyEscape:     wsi.KeyEsc,
	ebiten.KeyEnter:      wsi.KeyReturn,
	ebiten.KeySpace:      wsi.KeySpace,
	ebiten.KeyTab:        wsi.KeyTab,
	ebiten.KeyBackspace:  wsi.KeyBackspace,
	ebiten.KeyArrowUp:    wsi.KeyArrowUp,
	ebiten.KeyArrowDown:  wsi.KeyArrowDown,
	ebiten.KeyArrowLeft:  wsi.KeyArrowLeft,
	ebiten.KeyArrowRight: wsi.KeyArrowRight,
	ebiten.KeyW:          wsi.KeyW,
	ebiten.KeyA:          wsi.KeyA,
	ebiten.KeyS:          wsi.KeyS,
	ebiten.KeyD:          wsi.KeyD,
	ebiten.KeyQ:          wsi.KeyQ,
	ebiten.KeyE:          wsi.KeyE,
	ebiten.KeyF1:         wsi.KeyF1,
}

func mapKey(k ebiten.Key) wsi.Key {
	if key, ok := keymap[k]; ok {
		return key
	}
	return wsi.KeyUnknown
}
