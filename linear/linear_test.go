// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestV(t *testing.T) {
	var u V3
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u.Add(&v, &w); u != (V3{1, 1, 6}) {
		t.Fatalf("V3.Add\nhave %v\nwant [1 1 6]", u)
	}
	if u.Sub(&v, &w); u != (V3{1, 3, 2}) {
		t.Fatalf("V3.Sub\nhave %v\nwant [1 3 2]", u)
	}
	if u.Scale(-1, &v); u != (V3{-1, -2, -4}) {
		t.Fatalf("V3.Scale\nhave %v\nwant [-1 -2 -4]", u)
	}
	if d := v.Dot(&w); d != 6 {
		t.Fatalf("V3.Dot\nhave %v\nwant 6", d)
	}
	if l := v.Len(); l != float32(math.Sqrt(21)) {
		t.Fatalf("V3.Len\nhave %v\nwant %v", l, math.Sqrt(21))
	}

	v = V3{0, 0, -2}
	w = V3{0, 4, 0}

	if v.Norm(&v); v != (V3{0, 0, -1}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 0 -1]", v)
	}
	if w.Norm(&w); w != (V3{0, 1, 0}) {
		t.Fatalf("V3.Norm\nhave %v\nwant [0 1 0]", w)
	}
	if u.Cross(&v, &w); u != (V3{1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [1 0 0]", u)
	}
	if u.Cross(&w, &v); u != (V3{-1, 0, 0}) {
		t.Fatalf("V3.Cross\nhave %v\nwant [-1 0 0]", u)
	}
}

func TestM(t *testing.T) {
	var l M4
	m := M4{
		{1, 5, 9, 13},
		{2, 6, 10, 14},
		{3, 7, 11, 15},
		{4, 8, 12, 16},
	}
	if l.I(); l != (M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}}) {
		t.Fatalf("M4.I\nhave %v\nwant identity", l)
	}
	if l.Mul(&m, &l); l != m {
		t.Fatalf("M4.Mul\nhave %v\nwant %v", l, m)
	}
	// Aliasing both operands.
	l.I()
	l.Mul(&l, &l)
	if l != (M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}}) {
		t.Fatalf("M4.Mul (aliased)\nhave %v\nwant identity", l)
	}
	l.Translate(1, 2, 3)
	if x := l.Translation(); x != (V3{1, 2, 3}) {
		t.Fatalf("M4.Translation\nhave %v\nwant [1 2 3]", x)
	}
}

func TestQ(t *testing.T) {
	var r Q
	q := Q{V: V3{1, 0, 0}, R: 3}
	p := Q{V: V3{0, 1, 0}, R: 3}

	if r.Mul(&q, &p); r.V != (V3{3, 3, 1}) || r.R != 9 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[3 3 1] 9}", r)
	}
	if r.Mul(&p, &q); r.V != (V3{3, 3, -1}) || r.R != 9 {
		t.Fatalf("Q.Mul\nhave %v\nwant {[3 3 -1] 9}", r)
	}
	if r.I(); r.V != (V3{}) || r.R != 1 {
		t.Fatalf("Q.I\nhave %v\nwant {[0 0 0] 1}", r)
	}
}

func TestTRS(t *testing.T) {
	var x, r, s M4
	var q Q

	x.Translate(-1, -2, -3)
	q.Rotate(0, &V3{1})
	r.RotateQ(&q)
	s.Scale(5, 5, 5)
	x.Mul(&x, &r)
	x.Mul(&x, &s)
	if x != (M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}}) {
		t.Fatalf("T*R*S\nhave %v\nwant %v", x, M4{{5}, {1: 5}, {2: 5}, {-1, -2, -3, 1}})
	}
	v := V4{1, 1, 1, 1}
	v.Mul(&x, &v)
	if v != (V4{4, 3, 2, 1}) {
		t.Fatalf("TRS*v\nhave %v\nwant %v", v, V4{4, 3, 2, 1})
	}

	var y M4
	y.TRS(&V3{-1, -2, -3}, &q, &V3{5, 5, 5})
	if y != x {
		t.Fatalf("M4.TRS\nhave %v\nwant %v", y, x)
	}
}

// TestMathGL checks TRS against mathgl's composition.
func TestMathGL(t *testing.T) {
	for _, x := range [...]struct {
		t     V3
		angle float32
		axis  V3
		s     V3
	}{
		{V3{1, 2, 3}, math.Pi / 2, V3{0, 1, 0}, V3{1, 1, 1}},
		{V3{-4, 0, 0.5}, math.Pi / 3, V3{1, 0, 0}, V3{2, 3, 4}},
		{V3{0, 0, 0}, -math.Pi / 5, V3{0, 0, 1}, V3{0.5, 0.5, 2}},
	} {
		var q Q
		var m M4
		q.Rotate(x.angle, &x.axis)
		m.TRS(&x.t, &q, &x.s)

		gq := mgl32.QuatRotate(x.angle, mgl32.Vec3(x.axis))
		gm := mgl32.Translate3D(x.t[0], x.t[1], x.t[2]).
			Mul4(gq.Mat4()).
			Mul4(mgl32.Scale3D(x.s[0], x.s[1], x.s[2]))

		for i := range m {
			for j := range m[i] {
				if d := m[i][j] - gm.At(j, i); d > 1e-5 || d < -1e-5 {
					t.Fatalf("M4.TRS [%d][%d]\nhave %v\nwant %v", i, j, m[i][j], gm.At(j, i))
				}
			}
		}
	}
}
