// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Orbit is a small scene that exercises the frame loop.
// A sun light sits at the origin and a pivot node carries
// a few planets around it at a fixed update rate.
//
// Usage:
//
//	orbit [-headless] [-hz rate] [-frames n] [-width w] [-height h]
package main

import (
	"context"
	"flag"
	"log"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gviegas/stage/clock"
	"github.com/gviegas/stage/internal/ebitenhost"
	"github.com/gviegas/stage/linear"
	"github.com/gviegas/stage/loop"
	"github.com/gviegas/stage/node"
	"github.com/gviegas/stage/scene"
	"github.com/gviegas/stage/wsi"
)

// orbit is the demo state shared by the loop hooks.
type orbit struct {
	world   *scene.World
	scene   *scene.Scene
	pivot   node.Node
	planets []node.Node
	angle   float32
	paused  bool
}

func newOrbit() (*orbit, error) {
	w := scene.NewWorld()
	o := &orbit{world: w, scene: w.NewScene()}

	sun := (&scene.PointLight{Intensity: 1000, R: 1, G: 0.9, B: 0.6}).Light()
	o.scene.Add(w.NewLight("sun", &sun))

	o.pivot = w.New("pivot", scene.EmptyNode)
	o.scene.Add(o.pivot)
	for i := range 4 {
		p, err := w.CreateChild(o.pivot, "planet", scene.MeshNode)
		if err != nil {
			return nil, err
		}
		r := float32(i + 2)
		a := float64(i) * math.Pi / 2
		w.Graph().SetLocalPosition(p, &linear.V3{r * float32(math.Cos(a)), 0, r * float32(math.Sin(a))})
		// Each planet has a moon that inherits its motion.
		m, err := w.CreateChild(p, "moon", scene.MeshNode)
		if err != nil {
			return nil, err
		}
		w.Graph().SetLocalPosition(m, &linear.V3{0.6, 0, 0})
		o.planets = append(o.planets, p)
	}

	// A beacon above the sun that sweeps with the pivot.
	beam := (&scene.SpotLight{
		Direction:  linear.V3{1, -1, 0},
		InnerAngle: 0.2,
		OuterAngle: 0.35,
		Range:      6,
		Intensity:  400,
		R:          0.4,
		G:          0.8,
		B:          1,
	}).Light()
	beacon := w.NewLight("beacon", &beam)
	w.Graph().SetLocalPosition(beacon, &linear.V3{0, 3, 0})
	if err := w.AddChild(o.pivot, beacon); err != nil {
		return nil, err
	}

	cam := scene.DefaultCamera()
	eye := w.NewCamera("eye", &cam)
	w.Graph().SetLocalPosition(eye, &linear.V3{0, 4, 14})
	var tilt linear.Q
	tilt.Rotate(-0.28, &linear.V3{1, 0, 0})
	w.Graph().SetLocalRotation(eye, &tilt)
	o.scene.Add(eye)
	o.scene.SetMainCamera(eye)
	return o, nil
}

func (o *orbit) fixedUpdate(_ clock.Time, dt float64) {
	if o.paused {
		return
	}
	o.angle += float32(dt) * 0.5
	var q linear.Q
	q.Rotate(o.angle, &linear.V3{0, 1, 0})
	o.world.Graph().SetLocalRotation(o.pivot, &q)
	var spin linear.Q
	spin.Rotate(o.angle*3, &linear.V3{0, 1, 0})
	for _, p := range o.planets {
		o.world.Graph().SetLocalRotation(p, &spin)
	}
}

func (o *orbit) input(win wsi.Window) func(wsi.Event) {
	return func(e wsi.Event) {
		if e.Type != wsi.KeyDown {
			return
		}
		switch e.Key {
		case wsi.KeyEsc, wsi.KeyQ:
			win.Close()
		case wsi.KeySpace:
			o.paused = !o.paused
		}
	}
}

func main() {
	var (
		headless bool
		hz       float64
		frames   uint64
		width    int
		height   int
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.Float64Var(&hz, "hz", 60, "Fixed update rate.")
	flag.Uint64Var(&frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.IntVar(&width, "width", 960, "Window width.")
	flag.IntVar(&height, "height", 540, "Window height.")
	flag.Parse()

	o, err := newOrbit()
	if err != nil {
		log.Fatal(err)
	}
	cfg := loop.DefaultConfig()
	cfg.UpdateRate = hz
	cfg.Logger = log.Default()

	if headless {
		if err := runHeadless(o, &cfg, width, height, frames); err != nil {
			log.Fatal(err)
		}
		return
	}

	host := ebitenhost.New(width, height, "orbit")
	l := loop.New(host, host, host, loop.Hooks{
		FixedUpdate: o.fixedUpdate,
		Input:       o.input(host),
	}, &cfg)
	l.SetScene(o.scene)
	if err := host.Run(l, int(math.Ceil(hz))); err != nil {
		log.Fatal(err)
	}
}

// runHeadless paces the loop with a ticker instead of a
// window, logging the pivot position once per second.
func runHeadless(o *orbit, cfg *loop.Config, width, height int, frames uint64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	win := wsi.NewHeadless(width, height)
	l := loop.New(win, win, nil, loop.Hooks{
		FixedUpdate: o.fixedUpdate,
		Update: func(t clock.Time) {
			if frames > 0 && t.Frame >= frames {
				win.Close()
			}
			if t.Frame%uint64(max(1, cfg.UpdateRate)) == 0 {
				pos := o.world.Graph().WorldPosition(o.planets[0])
				log.Printf("frame %d t=%.2fs planet at (%.2f, %.2f, %.2f)", t.Frame, t.Total, pos[0], pos[1], pos[2])
			}
		},
	}, cfg)
	l.SetScene(o.scene)

	if err := l.Begin(); err != nil {
		return err
	}
	defer l.End()
	tk := time.NewTicker(time.Duration(float64(time.Second) / max(1, cfg.UpdateRate)))
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tk.C:
			if !l.Frame() {
				return nil
			}
		}
	}
}
