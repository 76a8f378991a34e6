// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mpm2d/algebra"
	"github.com/cpmech/mpm2d/config"
)

func Test_model01_factory_roundtrip(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01: New allocates every registered material and rejects unknown names")

	for _, name := range []string{"Water", "DrySand", "Snow", "Elastic"} {
		m, err := New(name)
		if err != nil {
			tst.Errorf("unexpected error allocating %q: %v", name, err)
		}
		if m == nil {
			tst.Errorf("New(%q) returned a nil model", name)
		}
	}

	if _, err := New("Mud"); err == nil {
		tst.Errorf("unknown material name should return an error")
	}
}

func Test_driver01_constant_compression(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver01: driving Water with a constant compressive velocity gradient drives Ap negative")

	var d Driver
	if err := d.Init("Water", 1.0e-3, nil); err != nil {
		tst.Fatalf("driver init failed: %v", err)
	}

	T := algebra.NewMatrix2(-1, 0, 0, -1) // pure isotropic compression
	path := make([]algebra.Matrix2, 20)
	for i := range path {
		path[i] = T
	}
	out := d.Run(path)

	if len(out) != len(path) {
		tst.Fatalf("expected %d recorded steps, got %d", len(path), len(out))
	}
	last := out[len(out)-1]
	if last.M00 >= 0 {
		tst.Errorf("sustained compression should eventually produce a negative stress coefficient, got %v", last.M00)
	}
}

func Test_driver02_prms_override(tst *testing.T) {

	//verbose()
	chk.PrintTitle("driver02: Init applies named fun.Prms overrides on top of a material's defaults")

	var d Driver
	prms := fun.Prms{
		&fun.Prm{N: "rho", V: config.DefaultWaterParams().Rho},
		&fun.Prm{N: "K", V: 999.0},
		&fun.Prm{N: "gamma", V: 7.0},
	}
	if err := d.Init("Water", 1.0e-3, prms); err != nil {
		tst.Fatalf("driver init failed: %v", err)
	}

	w, ok := d.Model.(*Water)
	if !ok {
		tst.Fatalf("expected *Water, got %T", d.Model)
	}
	chk.Scalar(tst, "K", 1e-12, w.Params.K, 999.0)
	chk.Scalar(tst, "gamma", 1e-12, w.Params.Gamma, 7.0)

	prmsDry := config.DrySandPrms()
	for _, p := range prmsDry {
		if p.N == "H0" {
			p.V = 0.1
		}
	}
	var dDry Driver
	if err := dDry.Init("DrySand", 1.0e-3, prmsDry); err != nil {
		tst.Fatalf("driver init failed: %v", err)
	}
	sand, ok := dDry.Model.(*DrySand)
	if !ok {
		tst.Fatalf("expected *DrySand, got %T", dDry.Model)
	}
	chk.Scalar(tst, "H0", 1e-12, sand.Params.H0, 0.1)
	wantAlpha := drySandAlpha(sand.Params, 0)
	chk.Scalar(tst, "Alpha recomputed from overridden H0", 1e-12, sand.Alpha, wantAlpha)
}
