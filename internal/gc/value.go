// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gc implements the mark-forward-compact garbage collector for
// the tagged-vector heap: the value encoding, heap object layout, root
// scanner, and the four collection passes (mark, plan, rewrite, compact).
package gc

import "github.com/snek-lang/snekvm/internal/core"

// Value is a 64-bit tagged word as spec.md §3 describes it.
type Value uint64

// The three tagged constants. All other even words are integers; all
// other odd words in heap range are references.
const (
	True  Value = 7
	False Value = 3
	Nil   Value = 1
)

// IsInt reports whether v encodes a signed integer (even word).
func (v Value) IsInt() bool { return v&1 == 0 }

// Int returns the logical integer value of v. Callers must check IsInt.
func (v Value) Int() int64 { return int64(v) >> 1 }

// NewInt encodes n as a tagged integer.
func NewInt(n int64) Value { return Value(n << 1) }

// IsBool reports whether v is one of the two boolean constants.
func (v Value) IsBool() bool { return v == True || v == False }

// Bool returns the logical boolean value of v. Callers must check IsBool.
func (v Value) Bool() bool { return v == True }

// NewBool encodes b as a tagged boolean.
func NewBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// IsNil reports whether v is the nil constant.
func (v Value) IsNil() bool { return v == Nil }

// IsRef reports whether v is a heap reference into the heap bounded by
// [Start, End], End included, using exactly the predicate of spec.md §3:
// odd, not one of the three special constants, and in range.
//
// This predicate is imprecise in the general sense described by spec.md:
// an arbitrary odd word in range would be misclassified as a reference.
// The tag scheme guarantees integers are always even, so no such
// collision occurs for well-typed mutator state.
func (v Value) IsRef(h *core.Heap) bool {
	if v&1 == 0 {
		return false
	}
	if v == True || v == False || v == Nil {
		return false
	}
	lo := 2*uint64(h.Start()) + 1
	hi := 2*uint64(h.End()) + 1
	return uint64(v) >= lo && uint64(v) <= hi
}

// Object returns the address of the heap object v refers to. Callers must
// check IsRef first.
//
// On the real x86-64 target a reference is a byte address one past an
// object whose start is always 8-byte (word) aligned, so its low bit is
// guaranteed 0 before the tag is applied regardless of the object's
// length. internal/core.Address instead counts in whole heap words, where
// an object's word offset has no such guarantee (an odd-length payload
// puts the next object at an odd word offset). Object and Ref restore the
// same guarantee by tagging twice the word offset rather than the word
// offset itself, which is always even before the low bit is set, and is
// otherwise exactly the spec's word-1 encoding.
func (v Value) Object() core.Address {
	return core.Address((uint64(v) - 1) / 2)
}

// Ref encodes a reference to the object starting at addr.
func Ref(addr core.Address) Value {
	return Value(2*uint64(addr) + 1)
}
