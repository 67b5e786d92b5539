// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtime

import "github.com/snek-lang/snekvm/internal/gc"

// SnekPrint is the print entry point (spec.md §4.H, §6): it formats val
// per the print format and returns it unchanged, so generated code can
// chain the call.
func (rt *Runtime) SnekPrint(val gc.Value) gc.Value {
	rt.Print(gc.Format(rt.Heap, val))
	return val
}
