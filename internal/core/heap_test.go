// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "testing"

func TestHeapBumpAndRead(t *testing.T) {
	h := NewHeap(4)
	a, ok := h.Bump(2)
	if !ok {
		t.Fatal("Bump failed on an empty heap with room")
	}
	if a != h.Start() {
		t.Fatalf("first Bump returned %v, want heap start", a)
	}
	h.Write(a, 42)
	h.Write(a.Add(1), 43)
	if got := h.Read(a); got != 42 {
		t.Fatalf("Read(a) = %d, want 42", got)
	}
	if got := h.Read(a.Add(1)); got != 43 {
		t.Fatalf("Read(a+1) = %d, want 43", got)
	}
	if h.Free() != 2 {
		t.Fatalf("Free() = %d, want 2", h.Free())
	}
}

func TestHeapBumpFailsPastCapacity(t *testing.T) {
	h := NewHeap(2)
	if _, ok := h.Bump(3); ok {
		t.Fatal("Bump succeeded past capacity")
	}
	if h.Ptr() != h.Start() {
		t.Fatal("a failed Bump moved the pointer")
	}
}

func TestHeapContains(t *testing.T) {
	h := NewHeap(4)
	if !h.Contains(h.Start()) || !h.Contains(h.End().Add(-1)) {
		t.Fatal("Contains rejected an in-range address")
	}
	if h.Contains(h.End()) || h.Contains(h.Start().Add(-1)) {
		t.Fatal("Contains accepted an out-of-range address")
	}
}

func TestHeapCopyDownOverlapping(t *testing.T) {
	h := NewHeap(8)
	for i := int64(0); i < 5; i++ {
		h.Write(h.Start().Add(i), uint64(i+1))
	}
	// slide [2,5) down onto [0,3): an overlapping shift, as compaction does.
	h.CopyDown(h.Start(), h.Start().Add(2), 3)
	want := []uint64{3, 4, 5}
	for i, w := range want {
		if got := h.Read(h.Start().Add(int64(i))); got != w {
			t.Fatalf("word %d = %d, want %d", i, got, w)
		}
	}
}

func TestHeapSetPtrOutOfBoundsPanics(t *testing.T) {
	h := NewHeap(4)
	defer func() {
		if recover() == nil {
			t.Fatal("SetPtr with an out-of-bounds address did not panic")
		}
	}()
	h.SetPtr(h.End().Add(1))
}
