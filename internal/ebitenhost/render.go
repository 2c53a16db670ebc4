// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package ebitenhost

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gviegas/stage/linear"
	"github.com/gviegas/stage/loop"
	"github.com/gviegas/stage/node"
	"github.com/gviegas/stage/scene"
)

// Lights with no range are drawn as if they reached
// this far.
const defaultReach = 4

// point is a node projected onto the window.
type point struct {
	x, y float32
	// Distance to the camera along -Z.
	dist  float32
	size  float32
	color color.RGBA
}

// ray is a line segment in window coordinates.
type ray struct {
	x0, y0 float32
	x1, y1 float32
	color  color.RGBA
}

// canvas holds what the last call to Render produced.
type canvas struct {
	points []point
	rays   []ray
	width  int
	height int
}

var (
	background = color.RGBA{16, 16, 24, 255}
	palette    = map[node.Kind]color.RGBA{
		scene.EmptyNode:  {160, 160, 160, 255},
		scene.CameraNode: {80, 200, 255, 255},
		scene.MeshNode:   {240, 240, 240, 255},
	}
)

// toMat4 converts a linear.M4 to a mgl32.Mat4.
// Both are column-major.
func toMat4(m *linear.M4) (n mgl32.Mat4) {
	for i := range m {
		for j := range m[i] {
			n[i*4+j] = m[i][j]
		}
	}
	return
}

// viewProj returns the view and projection matrices for
// the main camera of s. A scene with no camera is viewed
// from (0, 0, 10), looking at the origin.
func viewProj(s *scene.Scene, aspect float32) (view, proj mgl32.Mat4) {
	w := s.World()
	cam := scene.DefaultCamera()
	if n := s.MainCamera(); n != node.Nil && w.Graph().Valid(n) {
		if c, ok := w.Camera(n); ok {
			cam = c
		}
		view = toMat4(w.Graph().World(n)).Inv()
	} else {
		view = mgl32.LookAtV(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	}
	proj = mgl32.Perspective(cam.YFov, aspect, cam.ZNear, cam.ZFar)
	return
}

// lightColor converts the color of l to RGBA, brightened
// by its intensity.
func lightColor(l *scene.Light) color.RGBA {
	r, g, b := l.Color()
	k := min(1, 0.5+l.Intensity()/2000)
	c := func(v float32) uint8 { return uint8(255 * min(1, max(0, v*k))) }
	return color.RGBA{c(r), c(g), c(b), 255}
}

// projector maps world positions to the window.
type projector struct {
	view, proj    mgl32.Mat4
	width, height int
}

// project returns the window position of pos and its
// distance to the camera. ok is false if pos is behind
// the camera.
func (p *projector) project(pos linear.V3) (x, y, dist float32, ok bool) {
	eye := p.view.Mul4x1(mgl32.Vec4{pos[0], pos[1], pos[2], 1})
	if eye.Z() >= 0 {
		return
	}
	win := mgl32.Project(mgl32.Vec3(pos), p.view, p.proj, 0, 0, p.width, p.height)
	return win.X(), float32(p.height) - win.Y(), -eye.Z(), true
}

// Render implements loop.Renderer.
// It projects the position of every active node of s.
// Lights are drawn in their own color and size by their
// reach. Directional and spot lights also get a ray
// along their direction, and spot lights the edges of
// their outer cone.
func (h *Host) Render(s *scene.Scene) {
	c := &h.canvas
	c.width, c.height = h.width, h.height
	c.points = c.points[:0]
	c.rays = c.rays[:0]
	if c.width <= 0 || c.height <= 0 {
		return
	}
	p := projector{width: c.width, height: c.height}
	p.view, p.proj = viewProj(s, float32(c.width)/float32(c.height))
	w := s.World()
	g := w.Graph()
	add := func(n node.Node) {
		if !g.Active(n) {
			return
		}
		pos := g.WorldPosition(n)
		x, y, dist, ok := p.project(pos)
		if !ok {
			return
		}
		pt := point{x: x, y: y, dist: dist, size: 80 / dist}
		light, isLight := w.Light(n)
		if !isLight {
			clr, ok := palette[g.Kind(n)]
			if !ok {
				clr = palette[scene.EmptyNode]
			}
			pt.color = clr
			c.points = append(c.points, pt)
			return
		}
		reach := light.Reach(defaultReach)
		pt.color = lightColor(&light)
		pt.size = 20 * reach / dist
		c.points = append(c.points, pt)
		if g.Kind(n) == scene.PointLightNode {
			return
		}
		dir := light.Direction()
		var end linear.V3
		end.Scale(reach, &dir)
		end.Add(&pos, &end)
		x1, y1, _, ok := p.project(end)
		if !ok {
			return
		}
		c.rays = append(c.rays, ray{x0: x, y0: y, x1: x1, y1: y1, color: pt.color})
		if g.Kind(n) != scene.SpotLightNode {
			return
		}
		_, outer := light.ConeAngles()
		dx, dy := x1-x, y1-y
		for _, a := range [2]float64{float64(outer), -float64(outer)} {
			sin, cos := math.Sincos(a)
			c.rays = append(c.rays, ray{
				x0:    x,
				y0:    y,
				x1:    x + dx*float32(cos) - dy*float32(sin),
				y1:    y + dx*float32(sin) + dy*float32(cos),
				color: pt.color,
			})
		}
	}
	for _, n := range s.Roots() {
		add(n)
		g.ForEach(n, add)
	}
}

// OnResize implements loop.Renderer.
func (h *Host) OnResize(width, height int) {
	h.canvas.width, h.canvas.height = width, height
}

func (c *canvas) draw(screen *ebiten.Image, l *loop.Loop) {
	screen.Fill(background)
	for _, r := range c.rays {
		vector.StrokeLine(screen, r.x0, r.y0, r.x1, r.y1, 1, r.color, false)
	}
	for _, p := range c.points {
		sz := min(max(p.size, 2), 24)
		vector.DrawFilledRect(screen, p.x-sz/2, p.y-sz/2, sz, sz, p.color, false)
	}
	if l != nil {
		ck := l.Clock()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  frame %d  nodes %d",
			ck.FramesPerSecond(), ck.Frame(), len(c.points)), 4, 4)
	}
}
