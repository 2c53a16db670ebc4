// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package scene

// Camera describes a perspective projection.
// The view of a camera is given by the world transform
// of the node it is attached to, looking down -Z.
type Camera struct {
	// Vertical field of view in radians.
	YFov float32
	// Near and far clipping planes.
	ZNear, ZFar float32
}

// DefaultCamera returns a camera with a 60 degree
// field of view.
func DefaultCamera() Camera {
	return Camera{
		YFov:  1.0471976,
		ZNear: 0.1,
		ZFar:  1000,
	}
}
