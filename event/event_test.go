// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package event

import (
	"slices"
	"testing"
)

// fifo is a Poller that serves pushed values in order.
type fifo []int

func (f *fifo) push(v ...int) { *f = append(*f, v...) }

func (f *fifo) Poll() (v int, ok bool) {
	if len(*f) == 0 {
		return
	}
	v, *f = (*f)[0], (*f)[1:]
	return v, true
}

func TestPoll(t *testing.T) {
	var src fifo
	q := NewQueue[int](&src)
	if n := q.Poll(); n != 0 || q.Len() != 0 {
		t.Fatalf("Queue.Poll: no events\nhave %d\nwant 0", n)
	}
	src.push(1, 2, 3)
	if n := q.Poll(); n != 3 {
		t.Fatalf("Queue.Poll\nhave %d\nwant 3", n)
	}
	if have := q.Events(); !slices.Equal(have, []int{1, 2, 3}) {
		t.Fatalf("Queue.Events\nhave %v\nwant [1 2 3]", have)
	}
	if have := slices.Collect(q.All()); !slices.Equal(have, []int{1, 2, 3}) {
		t.Fatalf("Queue.All\nhave %v\nwant [1 2 3]", have)
	}
	// Back-to-back polls with nothing new.
	if n := q.Poll(); n != 0 {
		t.Fatalf("Queue.Poll: second call\nhave %d\nwant 0", n)
	}
	if have := q.Events(); len(have) != 0 {
		t.Fatalf("Queue.Events: stale events\nhave %v\nwant []", have)
	}
	for e := range q.All() {
		t.Fatalf("Queue.All: stale event %d", e)
	}
}

func TestGrow(t *testing.T) {
	var src fifo
	q := NewQueue[int](&src)
	want := make([]int, 3*DefaultCapacity+1)
	for i := range want {
		want[i] = i
	}
	src.push(want...)
	if n := q.Poll(); n != len(want) {
		t.Fatalf("Queue.Poll\nhave %d\nwant %d", n, len(want))
	}
	if c := q.Cap(); c != 4*DefaultCapacity {
		t.Fatalf("Queue.Cap\nhave %d\nwant %d", c, 4*DefaultCapacity)
	}
	if have := q.Events(); !slices.Equal(have, want) {
		t.Fatalf("Queue.Events\nhave %v\nwant %v", have, want)
	}
	// Capacity is kept; length is not.
	src.push(7)
	q.Poll()
	if have := q.Events(); !slices.Equal(have, []int{7}) || q.Cap() != 4*DefaultCapacity {
		t.Fatalf("Queue.Events\nhave %v (cap %d)\nwant [7] (cap %d)", have, q.Cap(), 4*DefaultCapacity)
	}
	// The view cannot be extended into stale entries.
	if have := q.Events(); cap(have) != 1 {
		t.Fatalf("cap(Queue.Events)\nhave %d\nwant 1", cap(have))
	}
}

func TestPollerFunc(t *testing.T) {
	n := 0
	q := NewQueue[string](PollerFunc[string](func() (string, bool) {
		if n == 2 {
			return "", false
		}
		n++
		return "e", true
	}))
	if have := q.Poll(); have != 2 {
		t.Fatalf("Queue.Poll\nhave %d\nwant 2", have)
	}
	var cnt int
	for range q.All() {
		if cnt++; cnt == 1 {
			break
		}
	}
	if cnt != 1 {
		t.Fatalf("Queue.All: early break\nhave %d\nwant 1", cnt)
	}
}
