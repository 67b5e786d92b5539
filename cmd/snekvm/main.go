// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The snekvm tool hosts the runtime and mutator harness described by
// SPEC_FULL.md: it runs one of the fixed demo programs against a
// fixed-size heap and prints its result, exactly as a binary produced by
// the (out of scope) snek compiler would.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snek-lang/snekvm/program"
	"github.com/snek-lang/snekvm/runtime"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func newRootCmd() *cobra.Command {
	var inputFlag string
	var heapSizeFlag int

	root := &cobra.Command{
		Use:   "snekvm <program> [input] [heap_size]",
		Short: "Run a snek demo program against the mark-forward-compact collector",
		Long: `snekvm hosts the runtime for a small dynamically-typed language
whose compiler is out of scope for this repository. Instead of a real
compiled binary, it runs one of a fixed set of demo programs through the
exact calling convention a compiled binary would use: a bump allocator,
an allocation-failure handler that triggers a mark-forward-compact
collection, and a final print of the program's result.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			input := inputFlag
			if len(args) > 1 {
				input = args[1]
			}
			heapSize := heapSizeFlag
			if len(args) > 2 {
				n, err := parseHeapSize(args[2])
				if err != nil {
					return err
				}
				heapSize = n
			}
			return run(cmd, name, input, heapSize)
		},
	}
	root.Flags().StringVar(&inputFlag, "input", "false", `"true", "false", or a signed decimal integer`)
	root.Flags().IntVar(&heapSizeFlag, "heap-size", 10000, "heap capacity, in words")
	root.Flags().BoolVar(&verboseSummary, "verbose", false, "log a collector summary to stderr after the run")

	root.AddCommand(newListCmd())
	root.AddCommand(newInspectCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demo programs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for name := range program.Registry {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// run executes the named program with the given parsed input and heap
// size, following spec.md §6's CLI contract exactly: exit 0 on success,
// and the numeric error code on any of the five fatal error kinds. Exit
// code 2 is reserved for argument-parsing failures, matching the
// teacher's own usage-error convention.
func run(cmd *cobra.Command, name, rawInput string, heapSize int) error {
	prog, ok := program.Registry[name]
	if !ok {
		return fmt.Errorf("snekvm: unknown program %q (see 'snekvm list')", name)
	}
	input, err := parseInput(rawInput)
	if err != nil {
		return err
	}

	rt := runtime.New(heapSize)
	rt.Print = func(s string) { fmt.Fprintln(cmd.OutOrStdout(), s) }
	m := program.NewMachine(rt)

	result := prog(m, input)
	rt.SnekPrint(result)
	logSummary(cmd, rt)
	return nil
}
