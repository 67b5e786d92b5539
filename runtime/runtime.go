// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtime

import (
	"golang.org/x/sys/unix"

	"github.com/snek-lang/snekvm/internal/core"
	"github.com/snek-lang/snekvm/internal/gc"
)

// Exit and WriteStderr are indirected through exported package variables
// so the CLI and the mutator harness drive the real process, while tests
// can substitute an in-process stand-in rather than terminating the test
// binary. The production implementation uses golang.org/x/sys/unix
// directly: by the time this path runs, the program has already detected
// heap exhaustion or a tag-check failure, and a runtime diagnostic is
// exactly the place that should not risk a further allocation (as
// fmt.Fprintf can) to report it.
var (
	Exit        = unix.Exit
	WriteStderr = func(msg string) {
		unix.Write(2, []byte(msg+"\n"))
	}
)

// Runtime holds the heap, simulated stack, and collector a running
// program is calling into, and implements the three fixed entry points
// spec.md §6 names.
type Runtime struct {
	Heap  *core.Heap
	Stack *core.Stack
	GC    *gc.Collector

	// Print writes through this function; it defaults to stdout but
	// tests may substitute a buffer.
	Print func(string)
}

// New builds a runtime over a fresh heap of the given word capacity and
// an empty simulated stack.
func New(heapWords int) *Runtime {
	h := core.NewHeap(heapWords)
	s := core.NewStack()
	return &Runtime{
		Heap:  h,
		Stack: s,
		GC:    gc.NewCollector(h, s),
		Print: func(s string) { println_(s) },
	}
}

// TryGC is the allocation-failure handler (spec.md §4.H): called when
// generated code wants to allocate count words and the bump allocator has
// no room left. It runs a full collection and, if the freed heap still
// cannot satisfy the request, reports out-of-memory and exits with code 5.
// Any other collector failure (a broken invariant) is fatal through a
// distinct, non-user-facing path.
func (rt *Runtime) TryGC(count int64) core.Address {
	newPtr, err := rt.GC.Collect()
	if err != nil {
		WriteStderr(err.Error())
		Exit(MisalignedExitCode)
		return 0
	}
	if int64(newPtr)+count > int64(rt.Heap.End()) {
		rt.Error(ErrOutOfMemory)
		return 0
	}
	return newPtr
}

// Error is the error reporter (spec.md §4.H, §7): it prints the message
// for errcode and terminates the process with that code as exit status.
// All five kinds are fatal; nothing is recovered.
func (rt *Runtime) Error(code ErrCode) {
	WriteStderr(code.String())
	Exit(int(code))
}

// println_ is the default Print sink; kept as a tiny indirection so New's
// zero-configuration Runtime still prints somewhere sensible without
// importing fmt at the Runtime-construction call site.
func println_(s string) {
	unix.Write(1, []byte(s+"\n"))
}
