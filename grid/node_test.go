// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mpm2d/algebra"
)

func Test_node01_reset_clears_accumulators(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node01: Reset clears mass, momentum, force and collisions")

	n := Node{
		X:          algebra.NewVector2(1, 2),
		M:          3.5,
		V:          algebra.NewVector2(1, 1),
		F:          algebra.NewVector2(1, 1),
		Collisions: []int{0, 2},
	}
	n.Reset()

	chk.Scalar(tst, "M", 1e-15, n.M, 0)
	chk.Scalar(tst, "Vx", 1e-15, n.V.X0, 0)
	chk.Scalar(tst, "Vy", 1e-15, n.V.X1, 0)
	chk.Scalar(tst, "Fx", 1e-15, n.F.X0, 0)
	chk.Scalar(tst, "Fy", 1e-15, n.F.X1, 0)
	if len(n.Collisions) != 0 {
		tst.Errorf("collisions should be empty after reset, got %v", n.Collisions)
	}
	chk.Scalar(tst, "Xx unchanged", 1e-15, n.X.X0, 1)
	chk.Scalar(tst, "Xy unchanged", 1e-15, n.X.X1, 2)
}

func Test_node02_update_free_fall(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node02: Update integrates momentum and gravity away from any border")

	n := Node{
		X: algebra.NewVector2(50, 50), // far from the walls in border03-style setup
		M: 2.0,
		V: algebra.NewVector2(4.0, 0.0), // momentum = M*velocity, so velocity = (2, 0)
		F: algebra.NewVector2(0.0, 0.0), // no internal force contribution
	}
	gravity := algebra.NewVector2(0, -10)
	dt := 0.1

	n.Update(dt, gravity, nil, 0.3, false)

	// v = p/M = (2,0); f = (-f/M + g)*dt = (0,-10)*0.1 = (0,-1); v += f => (2,-1)
	chk.Scalar(tst, "Vx", 1e-12, n.V.X0, 2.0)
	chk.Scalar(tst, "Vy", 1e-12, n.V.X1, -1.0)
	chk.Scalar(tst, "VColx", 1e-12, n.VCol.X0, 2.0)
	chk.Scalar(tst, "VColy", 1e-12, n.VCol.X1, -1.0)
	chk.Scalar(tst, "VFrix", 1e-12, n.VFri.X0, 2.0)
	chk.Scalar(tst, "VFriy", 1e-12, n.VFri.X1, -1.0)
	if len(n.Collisions) != 0 {
		tst.Errorf("no border should be touched, got %v", n.Collisions)
	}
}

func Test_node03_update_with_sticky_wall(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node03: Update applies a sticky wall; enabled friction has no recorded border to act on")

	borders := []Border{
		NewBorder(Sticky, algebra.NewVector2(1, 0), algebra.NewVector2(0, 0)),
	}
	n := Node{
		X: algebra.NewVector2(-0.5, 0), // distance = -0.5 < 0: inside the sticky wall
		M: 1.0,
		V: algebra.NewVector2(3.0, 3.0),
		F: algebra.NewVector2(0, 0),
	}
	n.Update(1.0, algebra.Vector2{}, borders, 0.3, true)

	chk.Scalar(tst, "VColx", 1e-15, n.VCol.X0, 0)
	chk.Scalar(tst, "VColy", 1e-15, n.VCol.X1, 0)
	chk.Scalar(tst, "VFrix", 1e-15, n.VFri.X0, 0)
	chk.Scalar(tst, "VFriy", 1e-15, n.VFri.X1, 0)
	if len(n.Collisions) != 0 {
		tst.Errorf("sticky borders are never recorded for friction, got %v", n.Collisions)
	}
}
