// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mpm2d/algebra"
)

func Test_border01_sticky(tst *testing.T) {

	//verbose()
	chk.PrintTitle("border01: sticky collision zeroes velocity (spec.md section 8, scenario 2)")

	b := NewBorder(Sticky, algebra.NewVector2(1, 0), algebra.NewVector2(1, 0))
	x := algebra.NewVector2(0.5, 0.5)
	v := algebra.NewVector2(-3, 7)

	vNew, recorded := b.Collide(1.0, x, v)
	chk.Scalar(tst, "vx", 1e-15, vNew.X0, 0)
	chk.Scalar(tst, "vy", 1e-15, vNew.X1, 0)
	if recorded {
		tst.Errorf("sticky border must not be recorded for friction")
	}
}

func Test_border02_separating_grazing(tst *testing.T) {

	//verbose()
	chk.PrintTitle("border02: separating collision, grazing case (spec.md section 8, scenario 3)")

	b := NewBorder(Separating, algebra.NewVector2(1, 0), algebra.NewVector2(1, 0))
	x := algebra.NewVector2(1.1, 0)
	v := algebra.NewVector2(-1, 1)

	vNew, recorded := b.Collide(1.0, x, v)
	if !recorded {
		tst.Errorf("border should be recorded")
	}
	chk.Scalar(tst, "vx", 1e-12, vNew.X0, -0.1)
	chk.Scalar(tst, "vy", 1e-12, vNew.X1, 1)
}

func Test_border03_separating_no_penetration(tst *testing.T) {

	//verbose()
	chk.PrintTitle("border03: separating collision, moving away never records")

	b := NewBorder(Separating, algebra.NewVector2(1, 0), algebra.NewVector2(0, 0))
	x := algebra.NewVector2(5, 0)
	v := algebra.NewVector2(3, 0)

	vNew, recorded := b.Collide(1.0, x, v)
	if recorded {
		tst.Errorf("a node moving further outside should not be recorded")
	}
	chk.Scalar(tst, "vx unchanged", 1e-15, vNew.X0, 3)
}

func Test_border04_friction(tst *testing.T) {

	//verbose()
	chk.PrintTitle("border04: Coulomb friction removes tangential velocity up to the bound")

	b := NewBorder(Sliding, algebra.NewVector2(0, 1), algebra.NewVector2(0, 0))
	vCol := algebra.NewVector2(2, 0) // sliding along the wall after collision
	v := algebra.NewVector2(2, -5)   // pre-collision velocity (normal component removed by collision)
	vFri := vCol

	out := b.Friction(0.3, vFri, vCol, v)
	// tangential speed is 2, bound is 0.3*||vCol-v|| = 0.3*5 = 1.5 < 2, so friction is capped
	chk.Scalar(tst, "vx", 1e-12, out.X0, 2-1.5)
	chk.Scalar(tst, "vy", 1e-12, out.X1, 0)
}
