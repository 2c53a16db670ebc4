// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package loop implements the frame loop that drives a
// scene: poll events, run fixed updates, run the variable
// update and render.
//
// A Loop is not safe for concurrent use. Everything it
// calls runs on the goroutine that called Run or Frame.
package loop

import (
	"errors"
	"fmt"
	"log"

	"github.com/gviegas/stage/clock"
	"github.com/gviegas/stage/event"
	"github.com/gviegas/stage/scene"
	"github.com/gviegas/stage/wsi"
)

const dflUpdateRate = 60

// Config is used to configure a Loop.
type Config struct {
	// Number of fixed updates per second.
	//
	// Default is 60.
	UpdateRate float64

	// The maximum number of fixed updates per frame.
	//
	// Default is DefaultMaxSteps.
	MaxSteps int

	// Source of frame time.
	//
	// Default is nil, meaning clock.MonotonicSource.
	TimeSource clock.TimeSource

	// Logger for state transitions.
	//
	// Default is nil, meaning no logging.
	Logger *log.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UpdateRate: dflUpdateRate,
		MaxSteps:   DefaultMaxSteps,
	}
}

// Renderer is the interface that a rendering backend
// implements to be driven by a Loop.
type Renderer interface {
	// Render renders a scene.
	Render(s *scene.Scene)

	// OnResize is called when the window is resized.
	OnResize(width, height int)
}

// Hooks are the callbacks invoked by a Loop.
// Any of them may be nil.
type Hooks struct {
	// Load is called once before the first frame.
	// If it fails, the loop does not start.
	Load func() error

	// FixedUpdate is called zero or more times per
	// frame with a constant step of dt seconds.
	FixedUpdate func(t clock.Time, dt float64)

	// Update is called once per frame.
	Update func(t clock.Time)

	// Input is called for every key event.
	Input func(e wsi.Event)

	// Shutdown is called once after the last frame.
	Shutdown func()
}

// State is the state of a Loop.
type State int

// Loop states.
const (
	NotStarted State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Stopped:
		return "Stopped"
	}
	return "State(?)"
}

// ErrStarted means that a Loop has already been started.
var ErrStarted = errors.New("loop: already started")

// Loop is a fixed-timestep frame loop.
type Loop struct {
	win       wsi.Window
	events    *event.Queue[wsi.Event]
	rend      Renderer
	scene     *scene.Scene
	clock     *clock.Clock
	sched     *Scheduler
	hooks     Hooks
	log       *log.Logger
	state     State
	running   bool
	width     int
	height    int
	minimized bool
	focused   bool
}

// New creates a loop.
// win is shown when the loop starts. input is polled
// once per frame for window and key events. rend may
// be nil, in which case nothing is rendered.
// If config is nil, DefaultConfig is used.
func New(win wsi.Window, input event.Poller[wsi.Event], rend Renderer, hooks Hooks, config *Config) *Loop {
	if config == nil {
		c := DefaultConfig()
		config = &c
	}
	l := &Loop{
		win:     win,
		events:  event.NewQueue(input),
		rend:    rend,
		clock:   clock.New(config.TimeSource),
		sched:   NewScheduler(config.UpdateRate, config.MaxSteps),
		hooks:   hooks,
		log:     config.Logger,
		focused: true,
	}
	l.width, l.height = win.Size()
	return l
}

func (l *Loop) logf(format string, v ...any) {
	if l.log != nil {
		l.log.Printf(format, v...)
	}
}

// SetScene sets the scene that is rendered every frame.
// It resets the scheduler so that the time spent loading
// s does not turn into a burst of fixed updates.
func (l *Loop) SetScene(s *scene.Scene) {
	l.scene = s
	l.sched.Reset()
}

// Scene returns the scene being rendered.
func (l *Loop) Scene() *scene.Scene { return l.scene }

// Clock returns the loop's clock.
func (l *Loop) Clock() *clock.Clock { return l.clock }

// Scheduler returns the loop's scheduler.
func (l *Loop) Scheduler() *Scheduler { return l.sched }

// State returns the state of the loop.
func (l *Loop) State() State { return l.state }

// Running returns whether the loop will run another
// frame.
func (l *Loop) Running() bool { return l.running }

// Size returns the last known window size.
func (l *Loop) Size() (width, height int) { return l.width, l.height }

// Minimized returns whether the window is minimized.
func (l *Loop) Minimized() bool { return l.minimized }

// Focused returns whether the window has focus.
func (l *Loop) Focused() bool { return l.focused }

// Quit stops the loop.
// The current frame runs to completion.
func (l *Loop) Quit() { l.running = false }

// Run runs the loop until Quit is called or a Quit
// event is received.
// It can only be called once.
func (l *Loop) Run() error {
	if err := l.Begin(); err != nil {
		return err
	}
	for l.Frame() {
	}
	l.End()
	return nil
}

// Begin shows the window, calls the Load hook and starts
// the clock.
// Run calls it; hosts that own the main loop call Begin,
// then Frame once per host tick, then End.
func (l *Loop) Begin() error {
	if l.state != NotStarted {
		return ErrStarted
	}
	if err := l.win.Show(); err != nil {
		return fmt.Errorf("loop: show window: %w", err)
	}
	if l.hooks.Load != nil {
		if err := l.hooks.Load(); err != nil {
			return fmt.Errorf("loop: load: %w", err)
		}
	}
	l.running = true
	l.state = Running
	l.clock.Start()
	l.logf("loop: running at %v updates/s", l.sched.Rate())
	return nil
}

// Frame runs a single frame.
// It returns whether the loop is still running.
func (l *Loop) Frame() bool {
	if !l.running {
		return false
	}
	l.clock.Tick()
	l.events.Poll()
	for e := range l.events.All() {
		switch e.Type {
		case wsi.Quit:
			l.running = false
			return false
		case wsi.Resize:
			l.width, l.height = e.Width, e.Height
			if l.rend != nil {
				l.rend.OnResize(e.Width, e.Height)
			}
		case wsi.Minimize:
			l.minimized = true
		case wsi.Restore:
			l.minimized = false
		case wsi.FocusGained:
			l.focused = true
		case wsi.FocusLost:
			l.focused = false
		case wsi.KeyDown, wsi.KeyUp:
			if l.hooks.Input != nil {
				l.hooks.Input(e)
			}
		}
	}
	if !l.running || l.minimized {
		return l.running
	}
	t := l.clock.Now()
	if n := l.sched.Accumulate(t.Delta); n > 0 && l.hooks.FixedUpdate != nil {
		dt := l.sched.FixedDelta()
		for range n {
			l.hooks.FixedUpdate(t, dt)
		}
	}
	if l.hooks.Update != nil {
		l.hooks.Update(t)
	}
	if l.rend != nil && l.scene != nil {
		l.rend.Render(l.scene)
	}
	return l.running
}

// End calls the Shutdown hook and stops the loop for
// good.
// It does nothing if the loop is not running.
func (l *Loop) End() {
	if l.state != Running {
		return
	}
	l.running = false
	l.state = Stopped
	if l.hooks.Shutdown != nil {
		l.hooks.Shutdown()
	}
	l.logf("loop: stopped after %d frames", l.clock.Frame())
}
