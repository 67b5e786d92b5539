// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the word-addressed memory arenas (a heap and a
// simulated machine stack) that the collector and mutator harness operate
// on. It plays the role that a ptrace'd process's address space plays in
// a post-mortem debugger: a flat, bounds-checked region of memory that
// other packages read and write by address rather than by Go value.
package core

import "fmt"

// Address is a word offset into one of this process's own simulated
// arenas. Unlike a real virtual address it is never dereferenced by the
// Go runtime directly; it is always resolved through a Heap or Stack.
type Address uint64

// Add returns the address n words past a.
func (a Address) Add(n int64) Address {
	return Address(int64(a) + n)
}

// Sub returns the word distance from b to a.
func (a Address) Sub(b Address) int64 {
	return int64(a) - int64(b)
}

func (a Address) String() string {
	return fmt.Sprintf("0x%x", uint64(a))
}
