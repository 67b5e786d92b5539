// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import "github.com/snek-lang/snekvm/internal/core"

// Mark runs the mark phase (spec.md §4.D) from the given root slots: every
// transitively reachable object has its mark word set to 1. It uses an
// explicit worklist rather than native recursion, per spec.md §9's design
// note that deep reference chains (e.g. long linked lists) could otherwise
// exhaust the machine stack.
func Mark(h *core.Heap, stack *core.Stack, roots []core.Address) {
	var work []core.Address

	push := func(obj core.Address) {
		if header(h, obj) == 1 {
			return // already marked; cycle/shared-subgraph protection
		}
		setHeader(h, obj, 1)
		work = append(work, obj)
	}

	for _, r := range roots {
		v := Value(stack.At(r))
		if v.IsRef(h) {
			push(v.Object())
		}
	}

	for len(work) > 0 {
		obj := work[len(work)-1]
		work = work[:len(work)-1]

		n := Length(h, obj)
		for i := int64(0); i < n; i++ {
			v := Payload(h, obj, i)
			if v.IsRef(h) {
				push(v.Object())
			}
		}
	}
}
