// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import "github.com/snek-lang/snekvm/internal/core"

// Plan runs the forwarding planner (spec.md §4.E): a single address-order
// pass over the heap from Start to ptr, assigning each live object its new
// post-compaction address and recording it, odd-encoded, in the object's
// mark word. Unmarked (garbage) objects are left with mark word 0.
//
// Plan must run after Mark and before Rewrite; the three passes share the
// mark word as their communication channel (spec.md §9's "in-place
// forwarding versus a side table").
func Plan(h *core.Heap, ptr core.Address) error {
	from := h.Start()
	to := h.Start()

	for from < ptr {
		word := header(h, from)
		size := Size(h, from)
		switch word {
		case 1: // marked live
			// to itself may be even or odd (an odd-length payload pushes
			// the running destination to an odd word offset), so the tag
			// bit can't simply be OR'd in the way the byte-addressed
			// source does -- an odd `to` would OR to itself and the later
			// strip would recover the wrong address. Encode exactly as
			// Value.Ref does (double then tag), decoded with the matching
			// (word-1)/2 in rewrite.go, so the tag is unambiguous
			// regardless of to's parity.
			setHeader(h, from, 2*uint64(to)+1)
			to = to.Add(size)
		case 0: // unmarked garbage
			// left as 0; only from advances
		default:
			return &MisalignmentError{At: from, Word: word}
		}
		from = from.Add(size)
	}
	return nil
}

// forwardedAddr decodes the planned new address Plan encoded into a live
// object's mark word, mirroring Value.Ref/Object's double-then-tag scheme
// rather than a plain low-bit mask, since the planned address itself may
// be odd.
func forwardedAddr(word uint64) core.Address {
	return core.Address((word - 1) / 2)
}
