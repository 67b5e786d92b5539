// Copyright 2026 The Snekvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gc

import "time"

// Stat is a node in a small named-counter tree, in the same shape as the
// teacher's memory-usage breakdown tree: leaves hold a value directly,
// groups hold the sum of their children.
type Stat struct {
	Name  string
	Value int64

	children map[string]*Stat
}

func leafStat(name string, value int64) *Stat {
	return &Stat{Name: name, Value: value}
}

func groupStat(name string, children ...*Stat) *Stat {
	m := make(map[string]*Stat, len(children))
	var total int64
	for _, c := range children {
		m[c.Name] = c
		total += c.Value
	}
	return &Stat{Name: name, Value: total, children: m}
}

// Sub walks a chain of child names and returns the resulting node, or nil
// if any name along the chain is absent.
func (s *Stat) Sub(chain ...string) *Stat {
	for _, name := range chain {
		if s == nil {
			return nil
		}
		s = s.children[name]
	}
	return s
}

func (s *Stat) setChild(child *Stat) {
	if old, ok := s.children[child.Name]; ok {
		s.Value -= old.Value
	}
	s.children[child.Name] = child
	s.Value += child.Value
}

// Stats tracks running totals across the lifetime of one Collector: how
// many collections have run, how many words are currently live, how many
// garbage words have been reclaimed in total, and cumulative pause time.
type Stats struct {
	root *Stat
}

// NewStats returns an empty stats tree.
func NewStats() *Stats {
	return &Stats{root: groupStat("heap",
		leafStat("live", 0),
		leafStat("garbage", 0),
		leafStat("collections", 0),
		leafStat("pause_ns", 0),
	)}
}

// record folds the result of one collection into the running totals.
func (s *Stats) record(liveWords, garbageWords int64, pause time.Duration) {
	s.root.setChild(leafStat("live", liveWords))
	s.root.setChild(leafStat("garbage", s.root.Sub("garbage").Value+garbageWords))
	s.root.setChild(leafStat("collections", s.root.Sub("collections").Value+1))
	s.root.setChild(leafStat("pause_ns", s.root.Sub("pause_ns").Value+pause.Nanoseconds()))
}

// Live returns the word count reachable as of the most recent collection.
func (s *Stats) Live() int64 { return s.root.Sub("live").Value }

// Garbage returns the cumulative word count reclaimed across all
// collections run so far.
func (s *Stats) Garbage() int64 { return s.root.Sub("garbage").Value }

// Collections returns the number of collections run so far.
func (s *Stats) Collections() int64 { return s.root.Sub("collections").Value }

// Pause returns the cumulative time spent collecting.
func (s *Stats) Pause() time.Duration { return time.Duration(s.root.Sub("pause_ns").Value) }
