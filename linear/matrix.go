// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
// m may alias l and/or r.
func (m *M4) Mul(l, r *M4) {
	var n M4
	for i := range n {
		for j := range n {
			for k := range n {
				n[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = n
}

// Translate sets m to contain a translation matrix.
func (m *M4) Translate(x, y, z float32) {
	m.I()
	m[3] = V4{x, y, z, 1}
}

// Scale sets m to contain a scale matrix.
func (m *M4) Scale(x, y, z float32) { *m = M4{{x}, {1: y}, {2: z}, {3: 1}} }

// RotateQ sets m to contain the rotation described
// by the unit quaternion q.
func (m *M4) RotateQ(q *Q) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	*m = M4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}

// TRS sets m to contain T ⋅ R ⋅ S, which, applied to a
// column vector, scales, then rotates, then translates.
func (m *M4) TRS(t *V3, r *Q, s *V3) {
	m.RotateQ(r)
	for i := range 3 {
		m[i][0] *= s[i]
		m[i][1] *= s[i]
		m[i][2] *= s[i]
	}
	m[3] = V4{t[0], t[1], t[2], 1}
}

// Translation returns the translation component of m.
func (m *M4) Translation() V3 { return V3{m[3][0], m[3][1], m[3][2]} }
