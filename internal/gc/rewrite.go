// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import "github.com/snek-lang/snekvm/internal/core"

// Rewrite runs the reference rewriter (spec.md §4.F) over every root slot
// and the payloads of every live object they reach: root slots are
// patched to the new address of their target, and every payload reference
// inside a live object is patched to the new address of its target.
//
// Like Mark, the payload walk uses an explicit worklist instead of
// recursion, with a separate visited set guarding against revisiting an
// object reachable more than once (a shared subgraph, a cycle, or a
// second root into the same structure). The visited set is deliberately
// not folded into the mark word itself: every live object's mark word
// must stay exactly the odd forwarding pointer Plan computed for it until
// Compact consumes it, since Compact tells a live object from garbage by
// whether that word is 0, and Plan's odd encoding is never 0.
//
// Must run after Plan and before Compact.
func Rewrite(h *core.Heap, stack *core.Stack, roots []core.Address) {
	visited := map[core.Address]bool{}
	for _, s := range roots {
		v := Value(stack.At(s))
		if !v.IsRef(h) {
			continue
		}
		obj := v.Object()
		rewritePayloads(h, obj, visited)
		newAddr := forwardedAddr(header(h, obj))
		stack.SetAt(s, uint64(Ref(newAddr)))
	}
}

func rewritePayloads(h *core.Heap, start core.Address, visited map[core.Address]bool) {
	work := []core.Address{start}
	for len(work) > 0 {
		obj := work[len(work)-1]
		work = work[:len(work)-1]

		if visited[obj] {
			continue
		}
		visited[obj] = true

		n := Length(h, obj)
		for i := int64(0); i < n; i++ {
			p := Payload(h, obj, i)
			if !p.IsRef(h) {
				continue
			}
			referent := p.Object()
			newAddr := forwardedAddr(header(h, referent))
			SetPayload(h, obj, i, Ref(newAddr))
			if !visited[referent] {
				work = append(work, referent)
			}
		}
	}
}
