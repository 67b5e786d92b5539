// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import "github.com/snek-lang/snekvm/internal/core"

// Compact runs the compactor (spec.md §4.G): a single address-order pass
// from Start to ptr that slides every live object down by the number of
// garbage words seen so far, clears its mark word back to 0 (restoring
// the between-collection invariant), and returns the new heap pointer.
//
// The destination for each live object is exactly the address Plan
// computed for it: both passes sum object sizes in address order, so
// they agree by construction without needing to re-read the planned
// address (Size still reads the untouched length word at offset 1).
//
// Must run after Rewrite.
func Compact(h *core.Heap, ptr core.Address) core.Address {
	from := h.Start()
	var shift int64

	for from < ptr {
		size := Size(h, from)
		garbage := header(h, from) == 0
		if garbage {
			shift += size
		} else {
			dst := from.Add(-shift)
			if shift > 0 {
				h.CopyDown(dst, from, size)
			}
			setHeader(h, dst, 0)
		}
		from = from.Add(size)
	}
	return ptr.Add(-shift)
}
