// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package scene

import (
	"slices"

	"github.com/gviegas/stage/node"
)

// Node kinds known by the scene.
const (
	EmptyNode node.Kind = iota
	CameraNode
	MeshNode
	DirectionalLightNode
	PointLightNode
	SpotLightNode
	builtinKinds
)

// Tag is a type tag under which scenes index their
// objects.
type Tag int

// Built-in tags.
const (
	// Every object has TagObject.
	TagObject Tag = iota
	TagCamera
	TagMesh
	TagLight
	TagDirectionalLight
	TagPointLight
	TagSpotLight
	// Tags created by NewTag start from here.
	TagUser
)

// builtinTags maps each built-in kind to the tags it
// satisfies.
var builtinTags = [builtinKinds][]Tag{
	EmptyNode:            {TagObject},
	CameraNode:           {TagObject, TagCamera},
	MeshNode:             {TagObject, TagMesh},
	DirectionalLightNode: {TagObject, TagLight, TagDirectionalLight},
	PointLightNode:       {TagObject, TagLight, TagPointLight},
	SpotLightNode:        {TagObject, TagLight, TagSpotLight},
}

// NewTag creates a tag distinct from every built-in tag
// and from every tag previously created by w.
func (w *World) NewTag() Tag {
	t := w.nextTag
	w.nextTag++
	return t
}

// RegisterKind creates a node kind that satisfies the
// given tags, in addition to TagObject and to the tags
// of base.
// base is typically EmptyNode, but any kind works.
func (w *World) RegisterKind(base node.Kind, tags ...Tag) node.Kind {
	if len(w.kinds) > 255 {
		panic("scene: too many node kinds")
	}
	set := append([]Tag(nil), w.Tags(base)...)
	for _, t := range tags {
		if !slices.Contains(set, t) {
			set = append(set, t)
		}
	}
	w.kinds = append(w.kinds, set)
	return node.Kind(len(w.kinds) - 1)
}

// Tags returns the tags satisfied by kind.
// Unknown kinds satisfy TagObject only.
// The returned slice must not be modified.
func (w *World) Tags(kind node.Kind) []Tag {
	if int(kind) < len(w.kinds) {
		return w.kinds[kind]
	}
	return builtinTags[EmptyNode]
}
