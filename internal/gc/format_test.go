// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"testing"

	"github.com/snek-lang/snekvm/internal/core"
)

func TestFormatScalars(t *testing.T) {
	h := core.NewHeap(8)
	cases := []struct {
		v    Value
		want string
	}{
		{True, "true"},
		{False, "false"},
		{Nil, "nil"},
		{NewInt(42), "42"},
		{NewInt(-7), "-7"},
		{NewInt(0), "0"},
	}
	for _, c := range cases {
		if got := Format(h, c.v); got != c.want {
			t.Errorf("Format(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestFormatVector(t *testing.T) {
	h := core.NewHeap(16)
	addr, _ := Alloc(h, []Value{NewInt(1), NewInt(2), NewInt(3)})
	if got, want := Format(h, Ref(addr)), "[1, 2, 3]"; got != want {
		t.Errorf("Format(vector) = %q, want %q", got, want)
	}
}

func TestFormatNestedVector(t *testing.T) {
	h := core.NewHeap(32)
	inner, _ := Alloc(h, []Value{NewInt(1), NewInt(2)})
	outer, _ := Alloc(h, []Value{Ref(inner), NewInt(3)})
	if got, want := Format(h, Ref(outer)), "[[1, 2], 3]"; got != want {
		t.Errorf("Format(nested) = %q, want %q", got, want)
	}
}

func TestFormatCycleGuard(t *testing.T) {
	h := core.NewHeap(16)
	addr, _ := Alloc(h, []Value{NewInt(0)})
	SetPayload(h, addr, 0, Ref(addr))
	if got, want := Format(h, Ref(addr)), "[[...]]"; got != want {
		t.Errorf("Format(self-referential) = %q, want %q", got, want)
	}
}

func TestFormatSharedSubgraphIsNotACycle(t *testing.T) {
	h := core.NewHeap(32)
	shared, _ := Alloc(h, []Value{NewInt(9)})
	outer, _ := Alloc(h, []Value{Ref(shared), Ref(shared)})
	if got, want := Format(h, Ref(outer)), "[[9], [9]]"; got != want {
		t.Errorf("Format(shared subgraph) = %q, want %q", got, want)
	}
}
