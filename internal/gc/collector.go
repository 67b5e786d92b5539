// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"time"

	"github.com/snek-lang/snekvm/internal/core"
)

// State is one of the collector's three visible states (spec.md §4.H).
type State int

const (
	// StateBetween is the steady state outside a collection: every mark
	// word is 0, and the heap is compact from Start up to the current
	// bump pointer.
	StateBetween State = iota
	// StateMarking holds while mark words are in {0, 1} and no
	// references have yet been rewritten.
	StateMarking
	// StateForwarding holds once every live object's mark word carries
	// its planned new address and root/payload rewriting is underway.
	StateForwarding
)

func (s State) String() string {
	switch s {
	case StateBetween:
		return "between"
	case StateMarking:
		return "marking"
	case StateForwarding:
		return "forwarding"
	default:
		return "unknown"
	}
}

// Collector drives the root scan and the four collection passes
// (C→D→E→F→G) over one heap
// and stack, and tracks the collector's visible state and running Stats.
// The only legal transition sequence is between → marking → forwarding →
// between (spec.md §4.H).
type Collector struct {
	heap  *core.Heap
	stack *core.Stack
	stats *Stats
	state State
}

// NewCollector returns a collector for the given heap and stack, starting
// in the between-collection state.
func NewCollector(h *core.Heap, s *core.Stack) *Collector {
	return &Collector{heap: h, stack: s, stats: NewStats()}
}

// State reports the collector's current visible state.
func (c *Collector) State() State { return c.state }

// Stats returns the collector's running counters.
func (c *Collector) Stats() *Stats { return c.stats }

// Collect runs one full collection: root scan, mark, plan, rewrite,
// compact. It returns the new heap pointer. The only failure mode is
// ErrMisaligned, a broken invariant in the forwarding pass; any other
// condition (including running with an empty heap) completes normally,
// per spec.md §8's empty-heap boundary behavior.
func (c *Collector) Collect() (core.Address, error) {
	started := time.Now()
	ptr := c.heap.Ptr()

	roots := ScanRoots(c.stack, c.heap)

	c.state = StateMarking
	Mark(c.heap, c.stack, roots)

	if err := Plan(c.heap, ptr); err != nil {
		c.state = StateBetween
		return 0, err
	}

	c.state = StateForwarding
	Rewrite(c.heap, c.stack, roots)

	newPtr := Compact(c.heap, ptr)
	c.heap.SetPtr(newPtr)
	c.state = StateBetween

	live := newPtr.Sub(c.heap.Start())
	garbage := ptr.Sub(newPtr)
	c.stats.record(live, garbage, time.Since(started))

	return newPtr, nil
}
