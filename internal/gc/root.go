// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import "github.com/snek-lang/snekvm/internal/core"

// ScanRoots walks the machine stack from its base down to its current top,
// inclusive, and returns the ordered collection of stack slot addresses
// whose current content satisfies the heap-reference predicate.
//
// This is a conservative over-approximation restricted to the tagged-value
// discipline (spec.md §4.C): every slot holding a reference is included,
// no slot that does not satisfy the predicate is included, and the whole
// span is inspected because the mutator harness carries no per-frame root
// map (there is no compiler-emitted stack map in this repo, matching
// spec.md §9's "conservative vs precise" design note).
func ScanRoots(stack *core.Stack, h *core.Heap) []core.Address {
	var roots []core.Address
	stack.Walk(func(addr core.Address, val uint64) {
		if Value(val).IsRef(h) {
			roots = append(roots, addr)
		}
	})
	return roots
}
