// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/snek-lang/snekvm/runtime"
)

// logSummary writes a one-line-per-field collector summary to stderr once
// a run completes successfully, and only when --verbose is set; otherwise
// it writes nothing. It is a diagnostic, not program output --
// it never touches stdout, so it cannot be confused with the values a
// program prints through SnekPrint (SPEC_FULL.md §4.L). It is built on
// the standard library's log and text/tabwriter packages directly,
// matching the teacher's own choice of ambient logging: nothing in the
// retrieved pack reaches for a third-party structured logger, so doing so
// here would be inventing a dependency rather than learning one.
func logSummary(cmd *cobra.Command, rt *runtime.Runtime) {
	if !verboseSummary {
		return
	}
	w := tabwriter.NewWriter(os.Stderr, 0, 2, 2, ' ', 0)
	logger := log.New(w, "snekvm: ", 0)
	stats := rt.GC.Stats()
	logger.Printf("collections\t%d", stats.Collections())
	logger.Printf("live words\t%d", stats.Live())
	logger.Printf("garbage words\t%d", stats.Garbage())
	logger.Printf("total pause\t%s", stats.Pause())
	w.Flush()
}

var verboseSummary bool
