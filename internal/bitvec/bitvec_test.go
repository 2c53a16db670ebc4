// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package bitvec

import (
	"slices"
	"testing"
	"unsafe"
)

func TestNbit(t *testing.T) {
	for _, x := range [...][2]int{
		{int(unsafe.Sizeof(uint8(0))) * 8, (&V[uint8]{}).nbit()},
		{int(unsafe.Sizeof(uint16(0))) * 8, (&V[uint16]{}).nbit()},
		{int(unsafe.Sizeof(uint32(0))) * 8, (&V[uint32]{}).nbit()},
		{int(unsafe.Sizeof(uint64(0))) * 8, (&V[uint64]{}).nbit()},
	} {
		if x[0] != x[1] {
			t.Fatalf("V[T].nbit:\nhave %d\nwant %d", x[0], x[1])
		}
	}
}

func TestZero(t *testing.T) {
	var v16 V[uint16]
	if n := v16.Len(); n != 0 {
		t.Fatalf("v16.Len:\nhave %d\nwant 0", n)
	}
	if n := v16.Rem(); n != 0 {
		t.Fatalf("v16.Rem:\nhave %d\nwant 0", n)
	}
	if _, ok := v16.Search(); ok {
		t.Fatal("v16.Search:\nhave true\nwant false")
	}
}

func TestGrow(t *testing.T) {
	var v32 V[uint32]
	for _, x := range [...]struct {
		nplus, wantLen int
	}{
		{1, 32},
		{2, 96},
		{0, 96},
		{-1, 96},
		{16, 608},
	} {
		if n, i := v32.Len(), v32.Grow(x.nplus); n != i {
			t.Fatalf("v32.Grow:\nhave %d\nwant %d", i, n)
		}
		if n := v32.Len(); n != x.wantLen {
			t.Fatalf("v32.Grow: Len:\nhave %d\nwant %d", n, x.wantLen)
		}
		if n := v32.Rem(); n != x.wantLen {
			t.Fatalf("v32.Grow: Rem:\nhave %d\nwant %d", n, x.wantLen)
		}
	}
}

func TestSetUnset(t *testing.T) {
	var v8 V[uint8]
	v8.Grow(2)
	v8.Set(6)
	v8.Set(1)
	if v8.s[0] != 0x42 {
		t.Fatalf("v8.s[0]:\nhave 0x%x\nwant 0x42", v8.s[0])
	}
	v8.Set(1)
	if n := v8.Rem(); n != 14 {
		t.Fatalf("v8.Rem:\nhave %d\nwant 14", n)
	}
	v8.Unset(6)
	v8.Unset(6)
	if n := v8.Rem(); n != 15 {
		t.Fatalf("v8.Rem:\nhave %d\nwant 15", n)
	}
	if !v8.IsSet(1) || v8.IsSet(6) {
		t.Fatalf("v8.IsSet:\nhave %t, %t\nwant true, false", v8.IsSet(1), v8.IsSet(6))
	}
	v8.Set(9)
	if v8.s[1] != 0x02 {
		t.Fatalf("v8.s[1]:\nhave 0x%x\nwant 0x02", v8.s[1])
	}
}

func TestSearch(t *testing.T) {
	var v8 V[uint8]
	v8.Grow(2)
	for i := range 16 {
		idx, ok := v8.Search()
		if !ok || idx != i {
			t.Fatalf("v8.Search:\nhave %d, %t\nwant %d, true", idx, ok, i)
		}
		v8.Set(idx)
	}
	if _, ok := v8.Search(); ok {
		t.Fatal("v8.Search: full vector\nhave true\nwant false")
	}
	v8.Unset(11)
	v8.Unset(3)
	if idx, _ := v8.Search(); idx != 3 {
		t.Fatalf("v8.Search:\nhave %d\nwant 3", idx)
	}
	v8.Clear()
	if n := v8.Rem(); n != 16 {
		t.Fatalf("v8.Clear: Rem:\nhave %d\nwant 16", n)
	}
}

func TestAll(t *testing.T) {
	var v64 V[uint64]
	v64.Grow(3)
	want := []int{0, 5, 63, 64, 100, 191}
	for _, i := range want {
		v64.Set(i)
	}
	if have := slices.Collect(v64.All()); !slices.Equal(have, want) {
		t.Fatalf("v64.All:\nhave %v\nwant %v", have, want)
	}
	for i := range v64.All() {
		if i != 0 {
			t.Fatalf("v64.All: early break\nhave %d\nwant 0", i)
		}
		break
	}
}
