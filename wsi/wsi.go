// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package wsi defines the window system integration (WSI)
// used by the frame loop.
// Windows are provided by a host (see Headless for one
// that needs no window system).
package wsi

import (
	"errors"
)

// ErrClosed means that a window has been closed.
var ErrClosed = errors.New("wsi: window closed")

// Window is the interface that defines a window.
type Window interface {
	// Show makes the window visible.
	Show() error

	// Hide hides the window.
	Hide() error

	// Size returns the window's size in pixels.
	Size() (width, height int)

	// Close closes the window.
	Close()
}

// EventType is the type of window events.
type EventType int

// Event types.
const (
	// The user asked to quit.
	Quit EventType = iota
	// The window was resized.
	// Width and Height hold the new size.
	Resize
	Minimize
	Restore
	FocusGained
	FocusLost
	// A key was pressed/released.
	// Key holds the key.
	KeyDown
	KeyUp
)

func (t EventType) String() string {
	switch t {
	case Quit:
		return "Quit"
	case Resize:
		return "Resize"
	case Minimize:
		return "Minimize"
	case Restore:
		return "Restore"
	case FocusGained:
		return "FocusGained"
	case FocusLost:
		return "FocusLost"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	}
	return "EventType(?)"
}

// Event is a window or input event.
type Event struct {
	Type          EventType
	Width, Height int
	Key           Key
}

// Key is the type of keyboard keys.
type Key int

// Keyboard keys.
const (
	KeyUnknown Key = iota
	KeyEsc
	KeyReturn
	KeySpace
	KeyTab
	KeyBackspace
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyF1
)
