// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"math/rand"

	"github.com/cpmech/mpm2d/algebra"
	"github.com/cpmech/mpm2d/config"
	"github.com/cpmech/mpm2d/grid"
	"github.com/cpmech/mpm2d/interp"
	"github.com/cpmech/mpm2d/mat"
)

// Solver links particles and the grid lattice and executes the
// per-step transfer pipeline (spec.md section 4.5). It is the
// counterpart of the teacher's Driver, but data-parallel over many
// material points instead of a single stress path.
type Solver struct {
	Config    config.Config
	Kernel    interp.Kernel
	Lattice   *grid.Lattice
	Particles []mat.Model

	rng  *rand.Rand
	pool *pool
	tick int
}

// New validates cfg and builds a Solver with an empty particle set.
// Workers defaults to runtime.GOMAXPROCS(0); pass workers > 0 to
// override (used by tests that want determinism on a single goroutine).
func New(cfg config.Config, rng *rand.Rand, workers int) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	variant, err := interp.ParseVariant(cfg.Interpolation)
	if err != nil {
		return nil, err
	}
	return &Solver{
		Config:  cfg,
		Kernel:  interp.NewKernel(variant),
		Lattice: grid.NewLattice(cfg.XGrid, cfg.YGrid, cfg.HInv, cfg.CUB),
		rng:     rng,
		pool:    newPool(workers),
	}, nil
}

// AddParticle appends a single particle to the simulation.
func (s *Solver) AddParticle(m mat.Model) {
	s.Particles = append(s.Particles, m)
}

// baseNode returns the grid coordinates of the bottom-left node of a
// particle's interpolation stencil, per spec.md section 4.1's node_base
// formula: floor(Xp*HInv - Translation).
func (s *Solver) baseNode(xp algebra.Vector2) (int, int) {
	hInv := s.Config.HInv
	t := s.Kernel.Translation
	return int(math.Floor(xp.X0*hInv - t.X0)), int(math.Floor(xp.X1*hInv - t.X1))
}

// P2G transfers mass, APIC-reconstructed momentum and the stress-driven
// force increment from every particle onto the nodes in its stencil
// (spec.md section 4.5 "P2G"). Node-field writes are atomic because
// multiple particle goroutines can share nodes. Stencil points outside
// the lattice are skipped (spec.md section 7): with the default wall
// inset (CUB >= kernel support) no particle's stencil ever reaches one,
// but a misconfigured CUB should not index out of the node array.
func (s *Solver) P2G() {
	kernel := s.Kernel
	hInv := s.Config.HInv
	dScal := kernel.DScal * hInv * hInv

	s.pool.RunStatic(len(s.Particles), func(p int) {
		particle := s.Particles[p]
		base := particle.Particle()
		ap := particle.StressContribution()
		gx, gy := s.baseNode(base.Xp)

		for dy := kernel.BNI; dy < 3; dy++ {
			for dx := kernel.BNI; dx < 3; dx++ {
				nx, ny := gx+dx, gy+dy
				if !s.Lattice.InBounds(nx, ny) {
					continue
				}
				nodeID := s.Lattice.Index(nx, ny)
				node := &s.Lattice.Nodes[nodeID]

				dist := base.Xp.Sub(node.X)
				wip := kernel.Weight(dist)
				dwip := kernel.Gradient(dist)

				dm := wip * base.Mp
				dv := base.Vp.Add(base.Bp.MulVec(dist.Neg()).Scale(dScal)).Scale(wip * base.Mp)
				df := ap.MulVec(dwip)

				atomicAddFloat64(&node.M, dm)
				atomicAddFloat64(&node.V.X0, dv.X0)
				atomicAddFloat64(&node.V.X1, dv.X1)
				atomicAddFloat64(&node.F.X0, df.X0)
				atomicAddFloat64(&node.F.X1, df.X1)
			}
		}
	})
}

// UpdateNodes finishes the momentum-to-velocity conversion, integrates
// gravity and internal force, and resolves collisions/friction on every
// active (mass-bearing) node (spec.md section 4.3 and 4.5).
func (s *Solver) UpdateNodes() {
	cfg := s.Config
	s.pool.RunDynamic(len(s.Lattice.Nodes), func(i int) {
		node := &s.Lattice.Nodes[i]
		if node.M > 0 {
			node.Update(cfg.DT, cfg.G, s.Lattice.Borders, cfg.CFRI, cfg.Friction)
		}
	})
}

// G2P gathers the post-friction nodal velocity field back onto every
// particle, reconstructing both the velocity and the APIC affine field
// (spec.md section 4.5 "G2P").
func (s *Solver) G2P() {
	kernel := s.Kernel

	s.pool.RunStatic(len(s.Particles), func(p int) {
		particle := s.Particles[p]
		base := particle.Particle()
		gx, gy := s.baseNode(base.Xp)

		var vp algebra.Vector2
		var bp algebra.Matrix2
		for dy := kernel.BNI; dy < 3; dy++ {
			for dx := kernel.BNI; dx < 3; dx++ {
				nx, ny := gx+dx, gy+dy
				if !s.Lattice.InBounds(nx, ny) {
					continue
				}
				nodeID := s.Lattice.Index(nx, ny)
				node := &s.Lattice.Nodes[nodeID]

				dist := base.Xp.Sub(node.X)
				wip := kernel.Weight(dist)

				vp = vp.Add(node.VFri.Scale(wip))
				bp = bp.Add(node.VFri.OuterProduct(dist.Neg()).Scale(wip))
			}
		}
		base.Vp = vp
		base.Bp = bp
	})
}

// UpdateParticles advects every particle's position using the
// pre-friction collided velocity and accumulates the nodal velocity
// gradient T driving each material's deformation update (spec.md
// section 4.5 "UpdateParticles").
func (s *Solver) UpdateParticles() {
	kernel := s.Kernel
	dt := s.Config.DT

	s.pool.RunStatic(len(s.Particles), func(p int) {
		particle := s.Particles[p]
		base := particle.Particle()
		xpBuf := base.Xp
		gx, gy := s.baseNode(xpBuf)

		var newXp algebra.Vector2
		var t algebra.Matrix2
		for dy := kernel.BNI; dy < 3; dy++ {
			for dx := kernel.BNI; dx < 3; dx++ {
				nx, ny := gx+dx, gy+dy
				if !s.Lattice.InBounds(nx, ny) {
					continue
				}
				nodeID := s.Lattice.Index(nx, ny)
				node := &s.Lattice.Nodes[nodeID]

				dist := xpBuf.Sub(node.X)
				wip := kernel.Weight(dist)
				dwip := kernel.Gradient(dist)

				newXp = newXp.Add(node.X.Add(node.VCol.Scale(dt)).Scale(wip))
				t = t.Add(node.VCol.OuterProduct(dwip))
			}
		}
		base.Xp = newXp
		particle.UpdateDeformation(dt, t)
	})
}

// ResetGrid clears every node touched this step, so the next P2G starts
// from a clean accumulator (spec.md section 4.5 "ResetGrid").
func (s *Solver) ResetGrid() {
	s.pool.RunDynamic(len(s.Lattice.Nodes), func(i int) {
		node := &s.Lattice.Nodes[i]
		if node.M > 0 {
			node.Reset()
		}
	})
}

// Step runs one full P2G -> UpdateNodes -> G2P -> UpdateParticles ->
// ResetGrid pass and, for the Water material, injects a new jet batch
// every DTRob ticks up to MaxParts (spec.md section 4.5, main.cpp's
// step loop).
func (s *Solver) Step() {
	s.P2G()
	s.UpdateNodes()
	s.G2P()
	s.UpdateParticles()
	s.ResetGrid()
	s.tick++
	s.injectParticles()
}

// injectParticles mirrors main.cpp's periodic AddParticles() call. Only
// Water has a non-empty AddParticles batch in the source; DrySand, Snow
// and Elastic all return an empty vector (see SPEC_FULL.md section 4).
func (s *Solver) injectParticles() {
	if s.Config.Material != config.Water {
		return
	}
	if s.tick%s.Config.DTRob != 0 {
		return
	}
	for _, w := range SeedWaterJet(s.Config, s.rng) {
		if len(s.Particles) >= s.Config.MaxParts {
			return
		}
		s.Particles = append(s.Particles, w)
	}
}

// CheckFinite reports whether every particle's position and velocity is
// finite and within +-1e30 (larger magnitudes count as blow-up), a diagnostic invariant useful after long integration runs
// (spec.md section 7: "numerical blow-up... detectable, not silently
// tolerated").
func (s *Solver) CheckFinite() bool {
	for _, particle := range s.Particles {
		base := particle.Particle()
		for _, v := range []float64{base.Xp.X0, base.Xp.X1, base.Vp.X0, base.Vp.X1} {
			if v != v || v > 1e30 || v < -1e30 { // NaN or blow-up
				return false
			}
		}
	}
	return true
}
