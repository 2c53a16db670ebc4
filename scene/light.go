// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"math"

	"github.com/gviegas/stage/linear"
	"github.com/gviegas/stage/node"
)

// Light is the data a World keeps for a light node.
// Create one from a DirectionalLight, PointLight or
// SpotLight descriptor; the zero value has no kind.
// A light is positioned by its node.
type Light struct {
	kind      int8
	direction linear.V3
	intensity float32
	rng       float32
	color     linear.V3
	inner     float32
	outer     float32
}

const (
	noLight int8 = iota
	directionalLight
	pointLight
	spotLight
)

// Kind returns the node kind for l.
func (l *Light) Kind() node.Kind {
	switch l.kind {
	case directionalLight:
		return DirectionalLightNode
	case pointLight:
		return PointLightNode
	case spotLight:
		return SpotLightNode
	}
	return EmptyNode
}

// SetDirection sets the direction of l.
// It does not normalize d.
// Only applies to directional and spot lights.
func (l *Light) SetDirection(d *linear.V3) { l.direction = *d }

// Direction returns the direction of l.
// Only applies to directional and spot lights.
func (l *Light) Direction() linear.V3 { return l.direction }

// SetIntensity sets the intensity of l.
func (l *Light) SetIntensity(i float32) { l.intensity = max(0, i) }

// Intensity returns the intensity of l.
func (l *Light) Intensity() float32 { return l.intensity }

// SetRange sets the falloff range of l.
// Only applies to point and spot lights.
func (l *Light) SetRange(r float32) { l.rng = r }

// Range returns the falloff range of l.
// Only applies to point and spot lights.
func (l *Light) Range() float32 { return l.rng }

// SetColor sets the RGB color of l.
func (l *Light) SetColor(r, g, b float32) { l.color = linear.V3{r, g, b} }

// Color returns the RGB color of l.
func (l *Light) Color() (r, g, b float32) {
	return l.color[0], l.color[1], l.color[2]
}

// SetConeAngles sets the cone angles of a spot light,
// in radians.
// Both angles are clamped to [0, math.Pi/2], and outer
// is raised so that it is never less than inner.
func (l *Light) SetConeAngles(inner, outer float32) {
	const right = math.Pi / 2
	l.inner = max(0, min(inner, right))
	l.outer = max(l.inner, min(outer, right))
}

// ConeAngles returns the clamped cone angles of l.
func (l *Light) ConeAngles() (inner, outer float32) { return l.inner, l.outer }

// Reach returns how far from its node l is visible.
// Lights with no range use fallback.
func (l *Light) Reach(fallback float32) float32 {
	if l.rng > 0 {
		return l.rng
	}
	return fallback
}

// DirectionalLight describes a light that shines along
// Direction everywhere in the scene, like the sun.
type DirectionalLight struct {
	Direction linear.V3
	Intensity float32
	R, G, B   float32
}

// Light returns the Light that t describes.
func (t *DirectionalLight) Light() (light Light) {
	light.kind = directionalLight
	light.SetIntensity(t.Intensity)
	light.SetColor(t.R, t.G, t.B)
	light.SetDirection(&t.Direction)
	return
}

// PointLight describes a light that shines in every
// direction from its node, up to Range.
// A Range of 0 or less means unbounded.
type PointLight struct {
	Range     float32
	Intensity float32
	R, G, B   float32
}

// Light returns the Light that t describes.
func (t *PointLight) Light() (light Light) {
	light.kind = pointLight
	light.SetIntensity(t.Intensity)
	light.SetRange(t.Range)
	light.SetColor(t.R, t.G, t.B)
	return
}

// SpotLight describes a cone of light that leaves its
// node along Direction.
type SpotLight struct {
	Direction  linear.V3
	InnerAngle float32
	OuterAngle float32
	Range      float32
	Intensity  float32
	R, G, B    float32
}

// Light returns the Light that t describes.
// The cone angles are clamped by SetConeAngles.
func (t *SpotLight) Light() (light Light) {
	light.kind = spotLight
	light.SetIntensity(t.Intensity)
	light.SetRange(t.Range)
	light.SetColor(t.R, t.G, t.B)
	light.SetConeAngles(t.InnerAngle, t.OuterAngle)
	light.SetDirection(&t.Direction)
	return
}
