// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"testing"

	"github.com/snek-lang/snekvm/internal/core"
)

func TestCollectEmptyHeapIsNoop(t *testing.T) {
	h := core.NewHeap(0)
	s := core.NewStack()
	c := NewCollector(h, s)

	newPtr, err := c.Collect()
	if err != nil {
		t.Fatalf("Collect on an empty heap returned an error: %v", err)
	}
	if newPtr != h.Start() {
		t.Fatalf("new heap ptr = %v, want heap start", newPtr)
	}
	if c.State() != StateBetween {
		t.Fatalf("state after Collect = %v, want between", c.State())
	}
}

func TestCollectBetweenCollectionsIsNoop(t *testing.T) {
	h := core.NewHeap(32)
	s := core.NewStack()
	addr, _ := Alloc(h, []Value{NewInt(1), NewInt(2)})
	root := s.Push(uint64(Ref(addr)))
	c := NewCollector(h, s)

	ptr1, err := c.Collect()
	if err != nil {
		t.Fatalf("first Collect: %v", err)
	}
	v1 := Value(s.At(root))

	ptr2, err := c.Collect()
	if err != nil {
		t.Fatalf("second Collect: %v", err)
	}
	v2 := Value(s.At(root))

	if ptr1 != ptr2 {
		t.Fatalf("heap ptr changed on an idempotent collection: %v -> %v", ptr1, ptr2)
	}
	if v1 != v2 {
		t.Fatalf("rooted value changed on an idempotent collection: %v -> %v", v1, v2)
	}
}

func TestUnreachableObjectIsReclaimed(t *testing.T) {
	h := core.NewHeap(32)
	s := core.NewStack()
	Alloc(h, []Value{NewInt(1), NewInt(2), NewInt(3)})
	before := h.Ptr()

	c := NewCollector(h, s)
	newPtr, err := c.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if newPtr != h.Start() {
		t.Fatalf("new heap ptr = %v, want heap start (nothing reachable)", newPtr)
	}
	if newPtr == before {
		t.Fatal("collection did not reclaim the unreachable object")
	}
}

func TestReachableObjectSurvivesWithSameContent(t *testing.T) {
	h := core.NewHeap(32)
	s := core.NewStack()

	// garbage ahead of the live object so compaction actually moves it
	Alloc(h, []Value{NewInt(100), NewInt(200)})
	live, _ := Alloc(h, []Value{NewInt(7), NewInt(8), NewInt(9)})
	root := s.Push(uint64(Ref(live)))

	c := NewCollector(h, s)
	newPtr, err := c.Collect()
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	rootVal := Value(s.At(root))
	if !rootVal.IsRef(h) {
		t.Fatal("root slot no longer holds a reference after collection")
	}
	newAddr := rootVal.Object()
	if newAddr == live {
		t.Fatal("expected the live object to move during compaction")
	}
	if got := Length(h, newAddr); got != 3 {
		t.Fatalf("Length after move = %d, want 3", got)
	}
	want := []Value{NewInt(7), NewInt(8), NewInt(9)}
	for i, w := range want {
		if got := Payload(h, newAddr, int64(i)); got != w {
			t.Fatalf("Payload(%d) after move = %v, want %v", i, got, w)
		}
	}
	if header(h, newAddr) != 0 {
		t.Fatalf("mark word after compaction = %#x, want 0", header(h, newAddr))
	}
	if newPtr != newAddr.Add(Size(h, newAddr)) {
		t.Fatalf("new heap ptr = %v, want one past the surviving object", newPtr)
	}
}

func TestHeapPointerStaysInBoundsAcrossCollections(t *testing.T) {
	h := core.NewHeap(64)
	s := core.NewStack()
	c := NewCollector(h, s)

	live, _ := Alloc(h, []Value{NewInt(1)})
	root := s.Push(uint64(Ref(live)))

	var last core.Address
	for i := 0; i < 3; i++ {
		Alloc(h, []Value{NewInt(int64(i))}) // extra garbage each round
		newPtr, err := c.Collect()
		if err != nil {
			t.Fatalf("Collect round %d: %v", i, err)
		}
		if newPtr < h.Start() || newPtr > h.End() {
			t.Fatalf("round %d: new heap ptr %v out of bounds", i, newPtr)
		}
		last = newPtr
	}
	rootVal := Value(s.At(root))
	if !rootVal.IsRef(h) || Length(h, rootVal.Object()) != 1 {
		t.Fatal("root object did not survive repeated collections intact")
	}
	if last != rootVal.Object().Add(Size(h, rootVal.Object())) {
		t.Fatal("final heap ptr inconsistent with the one surviving object")
	}
}

func TestSelfReferentialObjectSurvives(t *testing.T) {
	h := core.NewHeap(16)
	s := core.NewStack()

	addr, _ := Alloc(h, []Value{NewInt(0)})
	SetPayload(h, addr, 0, Ref(addr))
	root := s.Push(uint64(Ref(addr)))

	c := NewCollector(h, s)
	if _, err := c.Collect(); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	rootVal := Value(s.At(root))
	if !rootVal.IsRef(h) {
		t.Fatal("self-referential root did not survive")
	}
	self := Payload(h, rootVal.Object(), 0)
	if self != rootVal {
		t.Fatalf("self-reference payload = %v, want %v (itself)", self, rootVal)
	}
}

func TestCyclicObjectsSurviveTogether(t *testing.T) {
	h := core.NewHeap(32)
	s := core.NewStack()

	a, _ := Alloc(h, []Value{NewInt(0)})
	b, _ := Alloc(h, []Value{Ref(a)})
	SetPayload(h, a, 0, Ref(b))
	root := s.Push(uint64(Ref(a)))

	c := NewCollector(h, s)
	if _, err := c.Collect(); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	rootVal := Value(s.At(root))
	if !rootVal.IsRef(h) {
		t.Fatal("cyclic root did not survive")
	}
	aNew := rootVal.Object()
	bRef := Payload(h, aNew, 0)
	if !bRef.IsRef(h) {
		t.Fatal("a's reference to b did not survive")
	}
	aBack := Payload(h, bRef.Object(), 0)
	if aBack != Ref(aNew) {
		t.Fatal("the cycle was not preserved after compaction")
	}
}

func TestForwardingPlanRejectsMisalignedHeap(t *testing.T) {
	h := core.NewHeap(8)
	addr, _ := Alloc(h, []Value{NewInt(1)})
	setHeader(h, addr, 2) // neither 0 (garbage) nor 1 (marked)

	err := Plan(h, h.Ptr())
	if err == nil {
		t.Fatal("Plan accepted a mark word that is neither 0 nor 1")
	}
	var me *MisalignmentError
	if !asMisalignment(err, &me) {
		t.Fatalf("Plan error = %v, want *MisalignmentError", err)
	}
	if me.At != addr || me.Word != 2 {
		t.Fatalf("MisalignmentError = %+v, want At=%v Word=2", me, addr)
	}
}

func asMisalignment(err error, target **MisalignmentError) bool {
	me, ok := err.(*MisalignmentError)
	if ok {
		*target = me
	}
	return ok
}
