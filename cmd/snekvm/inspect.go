// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/snek-lang/snekvm/internal/core"
	"github.com/snek-lang/snekvm/internal/gc"
	"github.com/snek-lang/snekvm/program"
	"github.com/snek-lang/snekvm/runtime"
)

// newInspectCmd builds the "inspect" subcommand: it runs a named demo
// program to completion against a (usually small) heap, then drops into a
// readline REPL for poking at the frozen heap and collector statistics
// afterward -- the same post-mortem inspection style cmd/viewcore uses on
// a core dump, just over an in-process heap instead of one read from
// disk.
func newInspectCmd() *cobra.Command {
	var input string
	var heapSize int

	cmd := &cobra.Command{
		Use:   "inspect <program>",
		Short: "Run a demo program, then inspect the resulting heap interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], input, heapSize)
		},
	}
	cmd.Flags().StringVar(&input, "input", "false", `"true", "false", or a signed decimal integer`)
	cmd.Flags().IntVar(&heapSize, "heap-size", 64, "heap capacity, in words (kept small so collections actually trigger)")
	return cmd
}

func runInspect(cmd *cobra.Command, name, rawInput string, heapSize int) error {
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

	fmt.Fprintf(cmd.OutOrStdout(), "%s ran to completion, result = %s\n", name, gc.Format(rt.Heap, result))
	fmt.Fprintln(cmd.OutOrStdout(), "commands: heap, stats, collect, quit")

	rl, err := readline.New("(snekvm-inspect) ")
	if err != nil {
		return fmt.Errorf("snekvm: opening readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "heap":
			printHeap(cmd.OutOrStdout(), rt.Heap)
		case "stats":
			printStats(cmd.OutOrStdout(), rt.GC.Stats())
		case "collect":
			// The program has returned and the stack is empty, so this
			// collection finds no roots and reclaims every object on the
			// heap, the result included; a second collect is then a no-op.
			newPtr, err := rt.GC.Collect()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "collected; heap ptr = %s, state = %s\n", newPtr, rt.GC.State())
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintln(cmd.OutOrStdout(), "commands: heap, stats, collect, quit")
		}
	}
}

func printHeap(w io.Writer, h *core.Heap) {
	fmt.Fprintf(w, "heap: %s..%s, ptr=%s, free=%d words\n", h.Start(), h.End(), h.Ptr(), h.Free())
}

func printStats(w io.Writer, s *gc.Stats) {
	fmt.Fprintf(w, "collections=%d live=%d garbage=%d pause=%s\n",
		s.Collections(), s.Live(), s.Garbage(), s.Pause())
}
