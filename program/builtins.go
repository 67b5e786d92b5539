// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import (
	"github.com/snek-lang/snekvm/internal/gc"
	"github.com/snek-lang/snekvm/runtime"
)

// Program is a fixed mutator, standing in for one compiled snek source
// file: it receives the parsed input value and returns the final tagged
// value the hosting binary prints, exactly as our_code_starts_here does
// in the calling convention of spec.md §6.
type Program func(m *Machine, input gc.Value) gc.Value

// Registry lists the demo programs named in spec.md §8's end-to-end
// scenarios, by name.
var Registry = map[string]Program{
	"make_vec":                  MakeVec,
	"vec":                       Vec,
	"vec_get":                   VecGet,
	"linked_list_manipulations": LinkedListManipulations,
	"bst":                       BSTLoop,
	"bst_loop":                  BSTLoop,
	"set_gc_set":                SetGCSet,
	"zeros_vec":                 ZerosVec,
	"simple_garbage":            SimpleGarbage,
	"empty_heap_gc":             EmptyHeapGC,
}

// MakeVec allocates a vector of input zeros (spec.md §8 scenario 1/2).
func MakeVec(m *Machine, input gc.Value) gc.Value {
	n := input.Int()
	zeros := make([]gc.Value, n)
	for i := range zeros {
		zeros[i] = gc.NewInt(0)
	}
	return m.AllocRef(zeros...)
}

// Vec allocates the fixed vector [0, 1, 2, 3], ignoring input.
func Vec(m *Machine, input gc.Value) gc.Value {
	return m.AllocRef(gc.NewInt(0), gc.NewInt(1), gc.NewInt(2), gc.NewInt(3))
}

// VecGet allocates [0, 1, 2, 3] and returns element input, reporting an
// index-out-of-bounds runtime error if input is out of range.
func VecGet(m *Machine, input gc.Value) gc.Value {
	vec := Vec(m, input)
	idx := input.Int()
	obj := vec.Object()
	n := gc.Length(m.RT.Heap, obj)
	if idx < 0 || idx >= n {
		m.RT.Error(runtime.ErrIndexOutOfBounds)
		return gc.Nil
	}
	return gc.Payload(m.RT.Heap, obj, idx)
}

// LinkedListManipulations builds the list 1->2->3->4->5->nil, prints it
// forward, reverses it in place with explicit payload stores, prints it
// reversed, and returns nil -- the hosting harness's final auto-print of
// the return value supplies the trailing "nil" line, so together this
// produces spec.md §8 scenario 3's eleven lines of output.
func LinkedListManipulations(m *Machine, input gc.Value) gc.Value {
	head := gc.Nil
	for v := int64(5); v >= 1; v-- {
		head = m.AllocRef(gc.NewInt(v), head)
	}

	for n := head; !n.IsNil(); n = gc.Payload(m.RT.Heap, n.Object(), 1) {
		m.RT.SnekPrint(gc.Payload(m.RT.Heap, n.Object(), 0))
	}

	var prev gc.Value = gc.Nil
	cur := head
	for !cur.IsNil() {
		next := gc.Payload(m.RT.Heap, cur.Object(), 1)
		gc.SetPayload(m.RT.Heap, cur.Object(), 1, prev)
		prev = cur
		cur = next
	}
	head = prev

	for n := head; !n.IsNil(); n = gc.Payload(m.RT.Heap, n.Object(), 1) {
		m.RT.SnekPrint(gc.Payload(m.RT.Heap, n.Object(), 0))
	}

	return gc.Nil
}

// bstInsert persistently inserts v into tree (which is False for an empty
// subtree, matching a language whose only falsy sentinel is the boolean
// false). Every node on the path to the insertion point is rebuilt, so
// -- as in a real persistent-tree insert -- the old nodes along that path
// become garbage immediately, which is what gives bst_loop its GC
// pressure at modest heap sizes even though the final tree is small.
func bstInsert(m *Machine, tree gc.Value, v int64) gc.Value {
	if tree == gc.False {
		return m.AllocRef(gc.NewInt(v), gc.False, gc.False)
	}
	h := m.RT.Heap
	addr := tree.Object()
	val := gc.Payload(h, addr, 0)
	left := gc.Payload(h, addr, 1)
	right := gc.Payload(h, addr, 2)

	if v < val.Int() {
		m.RT.Stack.Push(uint64(right)) // protect the untouched branch across the recursive call
		newLeft := bstInsert(m, left, v)
		right = gc.Value(m.RT.Stack.Pop())
		return m.AllocRef(val, newLeft, right)
	}
	m.RT.Stack.Push(uint64(left))
	newRight := bstInsert(m, right, v)
	left = gc.Value(m.RT.Stack.Pop())
	return m.AllocRef(val, left, newRight)
}

// BSTLoop inserts 1..input in ascending order, producing the fully
// right-nested tree literal of spec.md §8 scenarios 4/5.
func BSTLoop(m *Machine, input gc.Value) gc.Value {
	n := input.Int()
	tree := gc.False
	for v := int64(1); v <= n; v++ {
		tree = bstInsert(m, tree, v)
	}
	return tree
}

// SetGCSet allocates a throwaway vector (immediately unreachable), then
// the target vector [4, 5, 6]; under a tight heap the second allocation
// must collect the first before it fits, exercising spec.md §8 scenario
// 6.
func SetGCSet(m *Machine, input gc.Value) gc.Value {
	_ = m.AllocRef(gc.NewInt(1), gc.NewInt(2), gc.NewInt(3), gc.NewInt(4), gc.NewInt(5))
	return m.AllocRef(gc.NewInt(4), gc.NewInt(5), gc.NewInt(6))
}

// ZerosVec builds a vector of three zeros, mutates every slot to 1 with
// explicit payload stores, prints it, and returns 0.
func ZerosVec(m *Machine, input gc.Value) gc.Value {
	vec := m.AllocRef(gc.NewInt(0), gc.NewInt(0), gc.NewInt(0))
	obj := vec.Object()
	for i := int64(0); i < gc.Length(m.RT.Heap, obj); i++ {
		gc.SetPayload(m.RT.Heap, obj, i, gc.NewInt(1))
	}
	m.RT.SnekPrint(vec)
	return gc.NewInt(0)
}

// SimpleGarbage allocates a vector it never keeps a handle to, then
// returns 0; run with a small heap this exercises a collection with no
// roots at all.
func SimpleGarbage(m *Machine, input gc.Value) gc.Value {
	m.AllocRef(gc.NewInt(1), gc.NewInt(2), gc.NewInt(3))
	return gc.NewInt(0)
}

// EmptyHeapGC performs no allocation at all, so it runs to completion even
// against a zero-word heap (spec.md §8's "heap of size 0" boundary).
func EmptyHeapGC(m *Machine, input gc.Value) gc.Value {
	return gc.NewInt(0)
}
