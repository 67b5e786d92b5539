// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import (
	"errors"
	"fmt"

	"github.com/snek-lang/snekvm/internal/core"
)

// ErrMisaligned wraps the collector's one internal fault (spec.md §4.E,
// §7): the forwarding planner found a mark word that is neither 0 nor 1.
// This indicates a broken invariant upstream (a malformed object length,
// or a bug in the mutator harness), not a user-visible error kind, and is
// never recovered.
var ErrMisaligned = errors.New("gc: heap misalignment during forwarding")

// MisalignmentError reports exactly where the invariant broke.
type MisalignmentError struct {
	At   core.Address
	Word uint64
}

func (e *MisalignmentError) Error() string {
	return fmt.Sprintf("gc: heap misalignment at %v: mark word %#x is neither 0 nor 1", e.At, e.Word)
}

func (e *MisalignmentError) Unwrap() error { return ErrMisaligned }
