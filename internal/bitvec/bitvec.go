// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package bitvec defines a bit vector type used to track
// free slots in arena-backed storage.
package bitvec

import (
	"iter"
	"math/bits"
	"unsafe"
)

// Uint represents the granularity of a bit vector.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// V is a growable bit vector with custom granularity.
// Set bits denote slots in use.
type V[T Uint] struct {
	s   []T
	rem int
}

// nbit returns the number of bits in T.
func (*V[T]) nbit() int { return int(unsafe.Sizeof(T(0))) * 8 }

// Len returns the number of bits in the vector.
func (v *V[_]) Len() int { return len(v.s) * v.nbit() }

// Rem returns the number of unset bits in the vector.
func (v *V[_]) Rem() int { return v.rem }

// Grow appends nplus unset Uints to the vector.
// It returns the value of v.Len prior to growing,
// which is the index of the first new bit.
func (v *V[T]) Grow(nplus int) (index int) {
	index = v.Len()
	if nplus > 0 {
		v.rem += nplus * v.nbit()
		v.s = append(v.s, make([]T, nplus)...)
	}
	return
}

func (v *V[T]) split(index int) (int, T) {
	n := v.nbit()
	return index / n, T(1) << (index % n)
}

// Set sets a given bit.
func (v *V[T]) Set(index int) {
	i, b := v.split(index)
	if v.s[i]&b == 0 {
		v.s[i] |= b
		v.rem--
	}
}

// Unset unsets a given bit.
func (v *V[T]) Unset(index int) {
	i, b := v.split(index)
	if v.s[i]&b != 0 {
		v.s[i] &^= b
		v.rem++
	}
}

// IsSet checks whether a given bit is set.
func (v *V[T]) IsSet(index int) bool {
	i, b := v.split(index)
	return v.s[i]&b != 0
}

// Search locates the lowest unset bit in the vector.
// It fails only when v.Rem() == 0.
func (v *V[T]) Search() (index int, ok bool) {
	if v.rem == 0 {
		return
	}
	for i, x := range v.s {
		if x == ^T(0) {
			continue
		}
		return i*v.nbit() + bits.TrailingZeros64(uint64(^x)), true
	}
	return
}

// Clear unsets every bit in the vector.
func (v *V[T]) Clear() {
	clear(v.s)
	v.rem = v.Len()
}

// All returns an iterator over the indices of set bits,
// in increasing order.
func (v *V[T]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		n := v.nbit()
		for i, x := range v.s {
			for x != 0 {
				b := bits.TrailingZeros64(uint64(x))
				if !yield(i*n + b) {
					return
				}
				x &^= T(1) << b
			}
		}
	}
}
