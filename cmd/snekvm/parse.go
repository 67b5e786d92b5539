// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/snek-lang/snekvm/internal/gc"
)

// parseInput implements spec.md §6's input grammar: the literal "true" or
// "false", or a signed base-10 integer. Anything else is a usage error.
func parseInput(s string) (gc.Value, error) {
	switch s {
	case "true":
		return gc.NewBool(true), nil
	case "false":
		return gc.NewBool(false), nil
	}
	n, err := strconv.ParseInt(s, 10, 63)
	if err != nil {
		return gc.Nil, fmt.Errorf("snekvm: invalid input %q: want true, false, or a signed integer", s)
	}
	return gc.NewInt(n), nil
}

// parseHeapSize parses a non-negative word count.
func parseHeapSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("snekvm: invalid heap_size %q: want a non-negative integer", s)
	}
	return n, nil
}
