// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
)

// Q is a quaternion of float32.
// The zero value is not a valid rotation; call I
// or Rotate to initialize it.
type Q struct {
	V V3
	R float32
}

// I makes q an identity quaternion.
func (q *Q) I() { *q = Q{R: 1} }

// Mul sets q to contain l ⋅ r.
func (q *Q) Mul(l, r *Q) {
	var v, w V3
	v.Scale(r.R, &l.V)
	w.Scale(l.R, &r.V)
	v.Add(&v, &w)
	w.Cross(&l.V, &r.V)
	d := l.V.Dot(&r.V)
	q.V.Add(&v, &w)
	q.R = l.R*r.R - d
}

// Rotate sets q to contain a rotation of angle radians
// around axis.
// axis must be a unit vector.
func (q *Q) Rotate(angle float32, axis *V3) {
	sin, cos := math.Sincos(float64(angle) / 2)
	q.V.Scale(float32(sin), axis)
	q.R = float32(cos)
}
