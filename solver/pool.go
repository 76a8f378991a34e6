// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the Material Point Method step pipeline
// (spec.md section 4.5): P2G, UpdateNodes, G2P, UpdateParticles and
// ResetGrid, plus particle seeding and mid-simulation injection.
package solver

import (
	"math"
	"runtime"
	"sync/atomic"
	"unsafe"
)

// pool is a fixed-size fork-join worker pool over an index range,
// grounded on the goroutine/channel barrier pattern in
// shp/t_racedetect_test.go. Two scheduling modes are offered: static
// contiguous chunks for the dense particle-parallel phases (P2G, G2P,
// UpdateParticles), and a shared atomic cursor for the sparse
// node-parallel phases (UpdateNodes, ResetGrid), per spec.md section 5.
type pool struct {
	workers int
}

// newPool builds a pool with the given worker count, defaulting to
// runtime.GOMAXPROCS(0) when workers <= 0.
func newPool(workers int) *pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &pool{workers: workers}
}

// RunStatic partitions [0,n) into one contiguous chunk per worker and
// runs fn(i) over every index, blocking until every worker is done.
func (p *pool) RunStatic(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			done <- struct{}{}
			continue
		}
		go func(lo, hi int) {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			done <- struct{}{}
		}(lo, hi)
	}
	for w := 0; w < workers; w++ {
		<-done
	}
}

// RunDynamic hands out individual indices from a shared atomic cursor,
// so idle workers never wait behind a worker stuck with inactive nodes.
func (p *pool) RunDynamic(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	workers := p.workers
	if workers > n {
		workers = n
	}
	var cursor int64
	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= n {
					break
				}
				fn(i)
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}
}

// atomicAddFloat64 adds delta to *addr using a compare-and-swap loop on
// the IEEE-754 bit pattern (spec.md section 5: "either lock-free atomic
// floating-point addition... acceptable", resolved here since Go has no
// native atomic float64). Used during P2G, where several particle
// goroutines may deposit onto the same grid node concurrently.
func atomicAddFloat64(addr *float64, delta float64) {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		next := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(bits, old, next) {
			return
		}
	}
}
