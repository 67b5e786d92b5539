// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "testing"

func TestStackPushPopOrder(t *testing.T) {
	s := NewStack()
	a1 := s.Push(1)
	a2 := s.Push(2)
	if a2 == a1 {
		t.Fatal("successive pushes returned the same address")
	}
	if got := s.Pop(); got != 2 {
		t.Fatalf("Pop() = %d, want 2", got)
	}
	if got := s.Pop(); got != 1 {
		t.Fatalf("Pop() = %d, want 1", got)
	}
	if s.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0 after popping everything", s.Depth())
	}
}

func TestStackWalkOrderAndAddresses(t *testing.T) {
	s := NewStack()
	s.Push(10)
	s.Push(20)
	s.Push(30)

	var addrs []Address
	var vals []uint64
	s.Walk(func(addr Address, val uint64) {
		addrs = append(addrs, addr)
		vals = append(vals, val)
	})

	if len(vals) != 3 {
		t.Fatalf("Walk visited %d slots, want 3", len(vals))
	}
	// Walk must proceed address-decreasing from Base(), i.e. in push order.
	wantVals := []uint64{10, 20, 30}
	for i, w := range wantVals {
		if vals[i] != w {
			t.Fatalf("vals[%d] = %d, want %d", i, vals[i], w)
		}
	}
	if addrs[0] != s.Base() {
		t.Fatalf("first walked address = %v, want Base() = %v", addrs[0], s.Base())
	}
	for i := 1; i < len(addrs); i++ {
		if addrs[i] >= addrs[i-1] {
			t.Fatalf("Walk addresses are not strictly decreasing: %v then %v", addrs[i-1], addrs[i])
		}
	}
}

func TestStackSetAt(t *testing.T) {
	s := NewStack()
	addr := s.Push(99)
	s.SetAt(addr, 100)
	if got := s.At(addr); got != 100 {
		t.Fatalf("At(addr) after SetAt = %d, want 100", got)
	}
}

func TestStackEmptyHasEmptyScanRange(t *testing.T) {
	s := NewStack()
	if s.Top() <= s.Base() {
		t.Fatalf("empty stack's Top() = %v should be strictly above Base() = %v", s.Top(), s.Base())
	}
}
