// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mpmlog prints run progress and records a post-run summary, in
// the teacher's fem.Summary + gosl/io colored-console idiom.
package mpmlog

import (
	"time"

	"github.com/cpmech/gosl/io"
)

// Summary records the timeline of one solver run: the tick each
// recorded sample was taken at, the live particle count, and whether
// the finite-state check passed, so a caller can inspect the whole
// run after the fact instead of only the last printed line.
type Summary struct {
	Ticks        []int
	ParticleCnts []int
	Finite       []bool
	started      time.Time
}

// Start resets the summary and records the run's start time.
func (s *Summary) Start() {
	s.Ticks = s.Ticks[:0]
	s.ParticleCnts = s.ParticleCnts[:0]
	s.Finite = s.Finite[:0]
	s.started = time.Now()
}

// Sample appends one recorded data point.
func (s *Summary) Sample(tick, particleCount int, finite bool) {
	s.Ticks = append(s.Ticks, tick)
	s.ParticleCnts = append(s.ParticleCnts, particleCount)
	s.Finite = append(s.Finite, finite)
}

// Elapsed returns the wall-clock time since Start.
func (s *Summary) Elapsed() time.Duration {
	return time.Since(s.started)
}

// AnyNonFinite reports whether any sample recorded a non-finite state.
func (s *Summary) AnyNonFinite() bool {
	for _, ok := range s.Finite {
		if !ok {
			return true
		}
	}
	return false
}

// PrintProgress writes one status line, in the teacher's "> message"
// console idiom (fem.fem.go's "> Solving stages"-style lines).
func PrintProgress(tick int, particleCount int) {
	io.Pf("> tick %6d  particles %6d\n", tick, particleCount)
}

// PrintDone prints a final status line, colored red if the run ended in
// a non-finite state (mirrors main.go's io.PfRed error reporting).
func (s *Summary) PrintDone() {
	if s.AnyNonFinite() {
		io.PfRed("! run ended with non-finite particle state\n")
		return
	}
	last := 0
	if n := len(s.ParticleCnts); n > 0 {
		last = s.ParticleCnts[n-1]
	}
	io.Pf("> run complete: %d ticks, %d particles, %v elapsed\n", len(s.Ticks), last, s.Elapsed())
}
