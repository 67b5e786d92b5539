// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "fmt"

// heapBase is the simulated virtual address of the first heap word. A
// real process never maps its heap at address 0, and the tagged-value
// scheme relies on that: a reference's tagged encoding must stay above
// the small constants 1 (nil), 3 (false), and 7 (true), which it cannot
// do if the heap itself starts at 0. heapBase stands in for "wherever the
// OS actually mapped this region," the way stackBase does for the stack.
const heapBase = Address(1 << 20)

// Heap is the fixed-size, contiguous arena generated code bumps a pointer
// through. Its size is fixed at construction and never resized, per the
// collector's non-goals: no heap growth, no virtual-memory tricks.
type Heap struct {
	words []uint64
	ptr   int64 // offset of the bump pointer, in words, from Start
}

// NewHeap allocates a heap of the given word capacity. A zero-size heap is
// legal: every allocation against it fails immediately.
func NewHeap(words int) *Heap {
	return &Heap{words: make([]uint64, words)}
}

// Start is the address of the first word of the heap.
func (h *Heap) Start() Address { return heapBase }

// End is the address one past the last word of the heap.
func (h *Heap) End() Address { return heapBase.Add(int64(len(h.words))) }

// Ptr is the current bump pointer: the address immediately past the last
// allocated object.
func (h *Heap) Ptr() Address { return heapBase.Add(h.ptr) }

// SetPtr moves the bump pointer. Callers (the allocator and the compactor)
// are responsible for keeping Start<=Ptr<=End.
func (h *Heap) SetPtr(a Address) {
	offset := a.Sub(heapBase)
	if offset < 0 || offset > int64(len(h.words)) {
		panic(fmt.Sprintf("core: heap pointer %v out of bounds [%v,%v]", a, heapBase, h.End()))
	}
	h.ptr = offset
}

// Cap returns the heap's total word capacity.
func (h *Heap) Cap() int64 { return int64(len(h.words)) }

// Free returns the number of words left between Ptr and End.
func (h *Heap) Free() int64 { return h.Cap() - h.ptr }

// Contains reports whether addr refers to a word within [Start, End).
func (h *Heap) Contains(addr Address) bool {
	offset := addr.Sub(heapBase)
	return offset >= 0 && offset < int64(len(h.words))
}

// Read returns the word at addr.
func (h *Heap) Read(addr Address) uint64 {
	return h.words[addr.Sub(heapBase)]
}

// Write stores val at addr.
func (h *Heap) Write(addr Address, val uint64) {
	h.words[addr.Sub(heapBase)] = val
}

// Bump reserves n words at the current pointer and returns their start
// address, or false if doing so would exceed End.
func (h *Heap) Bump(n int64) (Address, bool) {
	if h.ptr+n > int64(len(h.words)) {
		return 0, false
	}
	start := heapBase.Add(h.ptr)
	h.ptr += n
	return start, true
}

// CopyDown copies n words from src to dst, dst <= src, within the heap.
// Used by the compactor to slide live objects toward the heap start.
func (h *Heap) CopyDown(dst, src Address, n int64) {
	d := dst.Sub(heapBase)
	s := src.Sub(heapBase)
	copy(h.words[d:d+n], h.words[s:s+n])
}
