// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package program supplies the mutator harness: a small set of fixed,
// hand-written programs that play the role of the (out of scope)
// compiler's generated code, so the collector can be exercised and
// tested end-to-end without a native backend. Every allocation a program
// performs follows the exact calling convention of spec.md §6: locals
// that hold live heap references are spilled onto the simulated machine
// stack before any call that might trigger a collection.
package program

import (
	"github.com/snek-lang/snekvm/internal/core"
	"github.com/snek-lang/snekvm/internal/gc"
	"github.com/snek-lang/snekvm/runtime"
)

// Machine is the simulated register/stack file a Program runs against.
// It owns no state of its own beyond the Runtime; its methods exist to
// make the spill discipline explicit and hard to get wrong at each call
// site, the way a compiler's register allocator would.
type Machine struct {
	RT *runtime.Runtime
}

// NewMachine wraps rt for a program to drive.
func NewMachine(rt *runtime.Runtime) *Machine {
	return &Machine{RT: rt}
}

// AllocVec allocates a new vector with the given payload. Every element
// is first spilled onto the machine stack (so the root scanner can find
// it, and so it comes back correctly forwarded if a collection runs
// during this call), then popped back off and written into the freshly
// bumped object. This is the one place a program needs to reason about
// the spill discipline directly; every higher-level helper goes through
// it.
func (m *Machine) AllocVec(elems []gc.Value) core.Address {
	n := int64(len(elems))
	for _, e := range elems {
		m.RT.Stack.Push(uint64(e))
	}
	addr := m.allocRaw(n)
	for i := n - 1; i >= 0; i-- {
		v := gc.Value(m.RT.Stack.Pop())
		gc.SetPayload(m.RT.Heap, addr, i, v)
	}
	return addr
}

// AllocRef is AllocVec plus wrapping the new object's address as a
// tagged reference, which is the form every program actually wants to
// hold onto.
func (m *Machine) AllocRef(elems ...gc.Value) gc.Value {
	return gc.Ref(m.AllocVec(elems))
}

// allocRaw performs the bump-allocate-or-collect retry dance of spec.md
// §6: try the bump allocator; on failure call the allocation-failure
// handler (which may run a full collection) and retry exactly once. A
// second failure after a successful collection indicates the handler's
// own out-of-memory check (TryGC) already terminated the process; if
// execution reaches past that call without room, something is wrong
// with the runtime's accounting, not with the mutator.
func (m *Machine) allocRaw(n int64) core.Address {
	payload := make([]gc.Value, n)
	if addr, ok := gc.Alloc(m.RT.Heap, payload); ok {
		return addr
	}
	m.RT.TryGC(n + 2)
	addr, ok := gc.Alloc(m.RT.Heap, payload)
	if !ok {
		panic("program: allocator still has no room after a successful collection")
	}
	return addr
}
