// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"strconv"
	"strings"

	"github.com/snek-lang/snekvm/internal/core"
)

// Format renders v per spec.md §6: booleans and nil as their literal
// words, integers in decimal, and vectors recursively as
// "[e0, e1, ..., en-1]". A vector currently being printed (found again
// while still inside its own recursive print) renders as "[...]" at the
// point of re-entry, matching the mutator's own snek_str cycle guard: the
// visited set gains an entry on entry to a vector's print and loses it on
// exit.
func Format(h *core.Heap, v Value) string {
	var b strings.Builder
	format(&b, h, v, map[Value]bool{})
	return b.String()
}

func format(b *strings.Builder, h *core.Heap, v Value, seen map[Value]bool) {
	switch {
	case v == True:
		b.WriteString("true")
	case v == False:
		b.WriteString("false")
	case v == Nil:
		b.WriteString("nil")
	case v.IsInt():
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case v.IsRef(h):
		if seen[v] {
			b.WriteString("[...]")
			return
		}
		seen[v] = true
		defer delete(seen, v)

		obj := v.Object()
		n := Length(h, obj)
		b.WriteByte('[')
		for i := int64(0); i < n; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, h, Payload(h, obj, i), seen)
		}
		b.WriteByte(']')
	default:
		b.WriteString("unknown value")
	}
}
