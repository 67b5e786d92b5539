// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runtime implements the three fixed-name entry points generated
// code calls into (spec.md §4.H, §6): the allocation-failure handler, the
// error reporter, and print. It is the calling-convention boundary
// between the (out of scope) compiler and the collector in internal/gc.
package runtime

import "fmt"

// ErrCode is one of the five user-visible, fatal error kinds of spec.md
// §7. All five terminate the process with the numeric code as exit
// status.
type ErrCode int

const (
	ErrInvalidArgument  ErrCode = 1
	ErrOverflow         ErrCode = 2
	ErrIndexOutOfBounds ErrCode = 3
	ErrInvalidVecSize   ErrCode = 4
	ErrOutOfMemory      ErrCode = 5
)

// MisalignedExitCode is the process exit status used for the collector's
// one internal fault (a broken heap invariant detected during forwarding,
// gc.ErrMisaligned). It is deliberately outside the 1-5 range reserved for
// the user-visible error kinds above, following the sysexits.h convention
// for an unrecoverable internal software fault.
const MisalignedExitCode = 70

var messages = map[ErrCode]string{
	ErrInvalidArgument:  "invalid argument",
	ErrOverflow:         "overflow",
	ErrIndexOutOfBounds: "index out of bounds",
	ErrInvalidVecSize:   "vector size must be non-negative",
	ErrOutOfMemory:      "out of memory",
}

func (c ErrCode) String() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return fmt.Sprintf("an error occurred %d", int(c))
}
