// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import "github.com/snek-lang/snekvm/internal/core"

// Heap object layout (spec.md §3):
//
//	offset 0       mark/forwarding word
//	offset 1       length N, a raw (untagged) word count
//	offset 2..2+N  payload words, each a tagged Value
//
// Total object size is N+2 words.

const (
	headerMark   int64 = 0
	headerLength int64 = 1
	headerWords  int64 = 2
)

// header reads the mark/forwarding word of the object at obj.
func header(h *core.Heap, obj core.Address) uint64 {
	return h.Read(obj.Add(headerMark))
}

// setHeader overwrites the mark/forwarding word of the object at obj.
func setHeader(h *core.Heap, obj core.Address, word uint64) {
	h.Write(obj.Add(headerMark), word)
}

// Length returns the payload word count of the object at obj.
func Length(h *core.Heap, obj core.Address) int64 {
	return int64(h.Read(obj.Add(headerLength)))
}

// Size returns the total word footprint (header+payload) of the object at
// obj, per invariant 3 (length truth): the length word is always an
// accurate count the collector can trust to skip to the next object.
func Size(h *core.Heap, obj core.Address) int64 {
	return headerWords + Length(h, obj)
}

// slot returns the address of payload word i of the object at obj.
func slot(obj core.Address, i int64) core.Address {
	return obj.Add(headerWords + i)
}

// Payload returns payload word i of the object at obj.
func Payload(h *core.Heap, obj core.Address, i int64) Value {
	return Value(h.Read(slot(obj, i)))
}

// SetPayload overwrites payload word i of the object at obj.
func SetPayload(h *core.Heap, obj core.Address, i int64, v Value) {
	h.Write(slot(obj, i), uint64(v))
}

// Alloc bump-allocates a new object of n payload words, with mark word 0
// (the between-collection invariant) and the given payload values. It
// reports false if the heap does not have n+2 free words, in which case
// the heap pointer is left unchanged.
func Alloc(h *core.Heap, payload []Value) (core.Address, bool) {
	n := int64(len(payload))
	addr, ok := h.Bump(headerWords + n)
	if !ok {
		return 0, false
	}
	setHeader(h, addr, 0)
	h.Write(addr.Add(headerLength), uint64(n))
	for i, v := range payload {
		SetPayload(h, addr, int64(i), v)
	}
	return addr, true
}
