// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package scene provides functionality for creating and
// querying scene graphs.
//
// A World owns the nodes of one or more scenes. A Scene
// holds a list of root nodes and indexes them by type
// tag and light category.
package scene

import (
	"iter"
	"slices"

	"github.com/gviegas/stage/node"
)

// World owns a node graph and the scenes whose nodes
// are stored in it.
type World struct {
	graph     node.Graph
	scenes    map[node.Owner]*Scene
	nextOwner node.Owner
	kinds     [][]Tag
	nextTag   Tag
	lights    map[node.Node]Light
	cameras   map[node.Node]Camera
}

// NewWorld creates an initialized world.
func NewWorld() *World { return new(World).Init() }

// Init initializes a world.
func (w *World) Init() *World {
	*w = World{
		scenes:    make(map[node.Owner]*Scene),
		nextOwner: node.NoOwner + 1,
		kinds:     make([][]Tag, 0, builtinKinds),
		nextTag:   TagUser,
		lights:    make(map[node.Node]Light),
		cameras:   make(map[node.Node]Camera),
	}
	for _, tags := range builtinTags {
		w.kinds = append(w.kinds, tags)
	}
	return w
}

// Graph returns the node graph of w.
// Transforms should be set through it directly.
// Changes to the hierarchy of nodes that may be scene
// roots should go through w's AddChild, RemoveChild
// and Delete methods instead. A root moved under another
// node through the graph stays a root of its scene, and
// Scene.Remove still removes it.
func (w *World) Graph() *node.Graph { return &w.graph }

// New creates a standalone node.
func (w *World) New(name string, kind node.Kind) node.Node {
	return w.graph.New(name, kind)
}

// NewCamera creates a standalone camera node.
func (w *World) NewCamera(name string, cam *Camera) node.Node {
	n := w.graph.New(name, CameraNode)
	w.cameras[n] = *cam
	return n
}

// Camera returns the camera attached to n.
func (w *World) Camera(n node.Node) (cam Camera, ok bool) {
	cam, ok = w.cameras[n]
	return
}

// NewLight creates a standalone light node.
// Its kind is determined by light.
func (w *World) NewLight(name string, light *Light) node.Node {
	n := w.graph.New(name, light.Kind())
	w.lights[n] = *light
	return n
}

// Light returns the light attached to n.
func (w *World) Light(n node.Node) (light Light, ok bool) {
	light, ok = w.lights[n]
	return
}

// SetLight replaces the light attached to n.
// light must have the same kind as n.
func (w *World) SetLight(n node.Node, light *Light) {
	if _, ok := w.lights[n]; ok && light.Kind() == w.graph.Kind(n) {
		w.lights[n] = *light
	}
}

// unroot removes n from the roots of every scene that
// lists it.
func (w *World) unroot(n node.Node) {
	for _, s := range w.scenes {
		s.Remove(n)
	}
}

// AddChild is like node.Graph.AddChild, except that a
// child that is the root of a scene is removed from that
// scene first.
func (w *World) AddChild(parent, child node.Node) error {
	if !w.graph.Valid(parent) || !w.graph.Valid(child) {
		return node.ErrInvalid
	}
	if child == parent || w.graph.IsAncestor(child, parent) {
		return node.ErrCycle
	}
	w.unroot(child)
	return w.graph.AddChild(parent, child)
}

// CreateChild is like node.Graph.CreateChild.
func (w *World) CreateChild(parent node.Node, name string, kind node.Kind) (node.Node, error) {
	return w.graph.CreateChild(parent, name, kind)
}

// RemoveChild is like node.Graph.RemoveChild.
func (w *World) RemoveChild(parent, child node.Node) { w.graph.RemoveChild(parent, child) }

// Delete destroys n and its descendants, removing them
// from the roots of any scene and clearing any main
// camera slot that refers to a destroyed node.
func (w *World) Delete(n node.Node) {
	if !w.graph.Valid(n) {
		return
	}
	forget := func(n node.Node) {
		w.unroot(n)
		delete(w.lights, n)
		delete(w.cameras, n)
		for _, s := range w.scenes {
			if s.camera == n {
				s.camera = node.Nil
			}
		}
	}
	forget(n)
	w.graph.ForEach(n, forget)
	w.graph.Delete(n)
}

// NewScene creates an empty scene in w.
func (w *World) NewScene() *Scene {
	s := &Scene{
		world: w,
		id:    w.nextOwner,
		index: make(map[Tag][]node.Node),
	}
	w.nextOwner++
	w.scenes[s.id] = s
	return s
}

// Scene returns the scene identified by id, or nil if
// there is none.
func (w *World) Scene(id node.Owner) *Scene { return w.scenes[id] }

// Scene defines a scene graph.
type Scene struct {
	world       *World
	id          node.Owner
	roots       []node.Node
	index       map[Tag][]node.Node
	directional []node.Node
	point       []node.Node
	spot        []node.Node
	camera      node.Node
}

// Close clears s and removes it from its world.
func (s *Scene) Close() {
	s.Clear()
	delete(s.world.scenes, s.id)
}

// World returns the world that stores s's nodes.
func (s *Scene) World() *World { return s.world }

// ID returns the identifier of s.
// Nodes owned by s report it as their owner.
func (s *Scene) ID() node.Owner { return s.id }

// lightList returns the light list for kind, or nil if
// kind is not a light kind.
func (s *Scene) lightList(kind node.Kind) *[]node.Node {
	switch kind {
	case DirectionalLightNode:
		return &s.directional
	case PointLightNode:
		return &s.point
	case SpotLightNode:
		return &s.spot
	}
	return nil
}

// Add inserts n as a root of s.
// If n is owned by another scene, it is removed from
// that scene first. If n has a parent, it is removed
// from its parent.
// Adding a root of s again has no effect.
func (s *Scene) Add(n node.Node) {
	g := &s.world.graph
	if !g.Valid(n) {
		return
	}
	if p := g.Parent(n); p != node.Nil {
		g.RemoveChild(p, n)
	}
	if slices.Contains(s.roots, n) {
		g.SetOwner(n, s.id)
		return
	}
	s.world.unroot(n)
	s.roots = append(s.roots, n)
	g.SetOwner(n, s.id)
	kind := g.Kind(n)
	for _, t := range s.world.Tags(kind) {
		s.index[t] = append(s.index[t], n)
	}
	if l := s.lightList(kind); l != nil {
		*l = append(*l, n)
	}
}

// Remove removes n from the roots of s.
// It does nothing if n is not a root of s.
// If the main camera is n or one of its descendants,
// the slot is cleared.
func (s *Scene) Remove(n node.Node) {
	i := slices.Index(s.roots, n)
	if i < 0 {
		return
	}
	s.roots = slices.Delete(s.roots, i, i+1)
	// The kind of n cannot be trusted if its storage
	// was freed behind the world's back.
	for t, ns := range s.index {
		s.index[t] = remove(ns, n)
	}
	s.directional = remove(s.directional, n)
	s.point = remove(s.point, n)
	s.spot = remove(s.spot, n)
	g := &s.world.graph
	if s.camera == n || (g.Valid(n) && g.Valid(s.camera) && g.IsAncestor(n, s.camera)) {
		s.camera = node.Nil
	}
	if g.Valid(n) && g.Owner(n) == s.id {
		g.SetOwner(n, node.NoOwner)
	}
}

// remove removes the first occurrence of n from ns,
// preserving order.
func remove(ns []node.Node, n node.Node) []node.Node {
	if i := slices.Index(ns, n); i >= 0 {
		return slices.Delete(ns, i, i+1)
	}
	return ns
}

// Clear removes every root from s and clears the main
// camera slot.
func (s *Scene) Clear() {
	g := &s.world.graph
	for _, n := range s.roots {
		if g.Valid(n) && g.Owner(n) == s.id {
			g.SetOwner(n, node.NoOwner)
		}
	}
	s.roots = s.roots[:0]
	clear(s.index)
	s.directional = s.directional[:0]
	s.point = s.point[:0]
	s.spot = s.spot[:0]
	s.camera = node.Nil
}

// Len returns the number of roots in s.
func (s *Scene) Len() int { return len(s.roots) }

// Roots returns a copy of the roots of s, in insertion
// order.
func (s *Scene) Roots() []node.Node { return slices.Clone(s.roots) }

// ObjectsOfType returns a snapshot of the roots of s
// that satisfy tag.
// Later changes to s do not affect the returned slice.
func (s *Scene) ObjectsOfType(tag Tag) []node.Node { return slices.Clone(s.index[tag]) }

// FindObjects returns an iterator over the roots of s
// that satisfy both tag and match.
// Unlike ObjectsOfType, it reads the current state of
// s each time it is iterated.
// s must not be changed during iteration.
func (s *Scene) FindObjects(tag Tag, match func(node.Node) bool) iter.Seq[node.Node] {
	return func(yield func(node.Node) bool) {
		for _, n := range s.index[tag] {
			if match(n) && !yield(n) {
				return
			}
		}
	}
}

// HasObjectsOfType checks whether s has any root that
// satisfies tag.
func (s *Scene) HasObjectsOfType(tag Tag) bool { return len(s.index[tag]) > 0 }

// CountObjectsOfType returns the number of roots of s
// that satisfy tag.
func (s *Scene) CountObjectsOfType(tag Tag) int { return len(s.index[tag]) }

// DirectionalLights returns a snapshot of the directional
// lights of s.
func (s *Scene) DirectionalLights() []node.Node { return slices.Clone(s.directional) }

// PointLights returns a snapshot of the point lights of s.
func (s *Scene) PointLights() []node.Node { return slices.Clone(s.point) }

// SpotLights returns a snapshot of the spot lights of s.
func (s *Scene) SpotLights() []node.Node { return slices.Clone(s.spot) }

// SetMainCamera sets the main camera of s.
func (s *Scene) SetMainCamera(n node.Node) { s.camera = n }

// MainCamera returns the main camera of s, or node.Nil
// if there is none.
func (s *Scene) MainCamera() node.Node { return s.camera }

// ClearMainCamera clears the main camera slot of s.
func (s *Scene) ClearMainCamera() { s.camera = node.Nil }
