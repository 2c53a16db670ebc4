// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package node implements the scene's graph.
//
// Nodes are stored in a Graph and referred to by Node
// handles. The graph owns every node; the parent of a
// node and the scene that owns it are back-references
// that never govern lifetime.
package node

import (
	"errors"
	"iter"

	"github.com/gviegas/stage/internal/bitvec"
	"github.com/gviegas/stage/linear"
)

// Node identifies a node in a Graph.
type Node int

// Nil represents an invalid Node.
const Nil Node = 0

// Kind identifies the variant of a node.
// Graph does not interpret it.
type Kind uint8

// Owner identifies the scene that owns a node.
type Owner uint32

// NoOwner means that a node is not owned by any scene.
const NoOwner Owner = 0

var (
	// ErrCycle means that inserting a node would make
	// it a descendant of itself.
	ErrCycle = errors.New("node: insertion would create a cycle")

	// ErrInvalid means that a Node handle does not
	// refer to a node in the graph.
	ErrInvalid = errors.New("node: invalid node")
)

type link struct {
	parent Node
	next   Node
	prev   Node
	first  Node
	last   Node
}

type data struct {
	name   string
	kind   Kind
	active bool
	owner  Owner
	pos    linear.V3
	rot    linear.Q
	scale  linear.V3
	world  linear.M4
	// If dirty is set, then world is stale and
	// so is the world of every descendant.
	dirty bool
}

// Graph is a node graph.
// The zero value is an empty graph ready for use.
type Graph struct {
	links   []link
	data    []data
	nodeMap bitvec.V[uint32]
	// Number of world matrix computations.
	recomputes int
}

// Len returns the number of nodes in g.
func (g *Graph) Len() int { return g.nodeMap.Len() - g.nodeMap.Rem() }

// Valid checks whether n refers to a node in g.
func (g *Graph) Valid(n Node) bool {
	return n > Nil && int(n) <= len(g.data) && g.nodeMap.IsSet(int(n)-1)
}

// New creates a standalone node.
// Its local transform is the identity.
func (g *Graph) New(name string, kind Kind) Node {
	if g.nodeMap.Rem() == 0 {
		g.nodeMap.Grow(max(1, len(g.data)/32))
	}
	idx, _ := g.nodeMap.Search()
	g.nodeMap.Set(idx)
	if idx >= len(g.data) {
		n := g.nodeMap.Len()
		g.links = append(g.links, make([]link, n-len(g.links))...)
		g.data = append(g.data, make([]data, n-len(g.data))...)
	}
	g.links[idx] = link{}
	g.data[idx] = data{
		name:   name,
		kind:   kind,
		active: true,
		scale:  linear.V3{1, 1, 1},
		rot:    linear.Q{R: 1},
		dirty:  true,
	}
	return Node(idx + 1)
}

func (g *Graph) linkOf(n Node) *link { return &g.links[n-1] }
func (g *Graph) dataOf(n Node) *data { return &g.data[n-1] }

// Name returns the name of n.
func (g *Graph) Name(n Node) string { return g.dataOf(n).name }

// SetName sets the name of n.
func (g *Graph) SetName(n Node, name string) { g.dataOf(n).name = name }

// Kind returns the kind n was created with.
func (g *Graph) Kind(n Node) Kind { return g.dataOf(n).kind }

// Active returns whether n is active.
func (g *Graph) Active(n Node) bool { return g.dataOf(n).active }

// SetActive sets whether n is active.
// It does not affect the world transform.
func (g *Graph) SetActive(n Node, active bool) { g.dataOf(n).active = active }

// Owner returns the scene that owns n.
func (g *Graph) Owner(n Node) Owner { return g.dataOf(n).owner }

// SetOwner sets the owner of n and of every descendant
// of n.
func (g *Graph) SetOwner(n Node, owner Owner) {
	g.dataOf(n).owner = owner
	g.ForEach(n, func(n Node) { g.dataOf(n).owner = owner })
}

// Parent returns the immediate ancestor of n, or Nil
// if n has none.
func (g *Graph) Parent(n Node) Node { return g.linkOf(n).parent }

// Children returns an iterator over the immediate
// descendants of n, in insertion order.
// The graph must not be changed during iteration.
func (g *Graph) Children(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for c := g.linkOf(n).first; c != Nil; c = g.linkOf(c).next {
			if !yield(c) {
				return
			}
		}
	}
}

// ForEach calls f for each descendant of node n.
// Ancestors are processed first.
// The graph must not be changed until this method
// returns.
func (g *Graph) ForEach(n Node, f func(Node)) {
	sub := g.linkOf(n).first
	if sub == Nil {
		return
	}
	que := []Node{sub}
	for len(que) > 0 {
		for nd := que[0]; nd != Nil; nd = g.linkOf(nd).next {
			f(nd)
			if sub := g.linkOf(nd).first; sub != Nil {
				que = append(que, sub)
			}
		}
		que = que[1:]
	}
}

// invalidate marks n and its descendants as dirty.
// A dirty node never has clean descendants, so the
// walk stops at nodes that are dirty already.
func (g *Graph) invalidate(n Node) {
	d := g.dataOf(n)
	if d.dirty {
		return
	}
	d.dirty = true
	for c := g.linkOf(n).first; c != Nil; c = g.linkOf(c).next {
		g.invalidate(c)
	}
}

// LocalPosition returns the local position of n.
func (g *Graph) LocalPosition(n Node) linear.V3 { return g.dataOf(n).pos }

// LocalRotation returns the local rotation of n.
func (g *Graph) LocalRotation(n Node) linear.Q { return g.dataOf(n).rot }

// LocalScale returns the local scale of n.
func (g *Graph) LocalScale(n Node) linear.V3 { return g.dataOf(n).scale }

// SetLocalPosition sets the local position of n.
func (g *Graph) SetLocalPosition(n Node, p *linear.V3) {
	g.dataOf(n).pos = *p
	g.invalidate(n)
}

// SetLocalRotation sets the local rotation of n.
// r must be a unit quaternion.
func (g *Graph) SetLocalRotation(n Node, r *linear.Q) {
	g.dataOf(n).rot = *r
	g.invalidate(n)
}

// SetLocalScale sets the local scale of n.
func (g *Graph) SetLocalScale(n Node, s *linear.V3) {
	g.dataOf(n).scale = *s
	g.invalidate(n)
}

// World returns the world transform of n.
// It is computed only if n was changed (or any of its
// ancestors) since the last call.
// The returned matrix must not be modified and is
// invalidated by subsequent changes to the graph.
func (g *Graph) World(n Node) *linear.M4 {
	d := g.dataOf(n)
	if d.dirty {
		d.world.TRS(&d.pos, &d.rot, &d.scale)
		if p := g.linkOf(n).parent; p != Nil {
			d.world.Mul(g.World(p), &d.world)
		}
		d.dirty = false
		g.recomputes++
	}
	return &d.world
}

// WorldPosition returns the translation component of
// n's world transform.
func (g *Graph) WorldPosition(n Node) linear.V3 { return g.World(n).Translation() }

// IsAncestor checks whether anc is an ancestor of n.
func (g *Graph) IsAncestor(anc, n Node) bool {
	for a := g.linkOf(n).parent; a != Nil; a = g.linkOf(a).parent {
		if a == anc {
			return true
		}
	}
	return false
}

// AddChild inserts child as the last immediate descendant
// of parent, removing it from its current parent first.
// child and its descendants take on parent's owner.
// It fails with ErrCycle if child is parent or one of
// its ancestors.
func (g *Graph) AddChild(parent, child Node) error {
	if !g.Valid(parent) || !g.Valid(child) {
		return ErrInvalid
	}
	if child == parent || g.IsAncestor(child, parent) {
		return ErrCycle
	}
	g.detach(child)
	pl, cl := g.linkOf(parent), g.linkOf(child)
	cl.parent = parent
	cl.prev = pl.last
	if pl.last != Nil {
		g.linkOf(pl.last).next = child
	} else {
		pl.first = child
	}
	pl.last = child
	g.SetOwner(child, g.dataOf(parent).owner)
	g.invalidate(child)
	return nil
}

// CreateChild creates a new node and inserts it as the
// last immediate descendant of parent.
func (g *Graph) CreateChild(parent Node, name string, kind Kind) (Node, error) {
	if !g.Valid(parent) {
		return Nil, ErrInvalid
	}
	n := g.New(name, kind)
	// Cannot fail.
	g.AddChild(parent, n)
	return n, nil
}

// RemoveChild removes child from parent, making it a
// standalone node that no scene owns.
// It does nothing if child is not an immediate
// descendant of parent.
func (g *Graph) RemoveChild(parent, child Node) {
	if !g.Valid(parent) || !g.Valid(child) || g.linkOf(child).parent != parent {
		return
	}
	g.detach(child)
	g.SetOwner(child, NoOwner)
	g.invalidate(child)
}

// detach unlinks n from its parent, if any.
func (g *Graph) detach(n Node) {
	nl := g.linkOf(n)
	if nl.parent == Nil {
		return
	}
	pl := g.linkOf(nl.parent)
	if nl.prev != Nil {
		g.linkOf(nl.prev).next = nl.next
	} else {
		pl.first = nl.next
	}
	if nl.next != Nil {
		g.linkOf(nl.next).prev = nl.prev
	} else {
		pl.last = nl.prev
	}
	nl.parent, nl.next, nl.prev = Nil, Nil, Nil
}

// Delete removes n from its parent and destroys it
// together with all of its descendants.
// The handles of destroyed nodes may be reused by
// subsequent calls to New.
func (g *Graph) Delete(n Node) {
	if !g.Valid(n) {
		return
	}
	g.detach(n)
	sub := []Node{n}
	g.ForEach(n, func(n Node) { sub = append(sub, n) })
	for _, n := range sub {
		g.links[n-1] = link{}
		g.data[n-1] = data{}
		g.nodeMap.Unset(int(n) - 1)
	}
}
