// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

func Test_config01_default_is_valid(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config01: default configuration validates")

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		tst.Errorf("default config should validate: %v", err)
	}
}

func Test_config02_rejects_bad_values(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config02: invalid configurations are rejected")

	base := Default()

	bad := base
	bad.DT = 0
	if err := bad.Validate(); err == nil {
		tst.Errorf("DT=0 should be rejected")
	}

	bad = base
	bad.XGrid = 0
	if err := bad.Validate(); err == nil {
		tst.Errorf("XGrid=0 should be rejected")
	}

	bad = base
	bad.CUB = 100
	if err := bad.Validate(); err == nil {
		tst.Errorf("CUB larger than half the grid should be rejected")
	}

	bad = base
	bad.Interpolation = "Quartic"
	if err := bad.Validate(); err == nil {
		tst.Errorf("unknown interpolation should be rejected")
	}

	bad = base
	bad.WaterParams.K = -1
	if err := bad.Validate(); err == nil {
		tst.Errorf("negative bulk modulus should be rejected")
	}
}

func Test_config03_material_string_roundtrip(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config03: material name round-trip")

	for _, m := range []Material{Water, DrySand, Snow, Elastic} {
		parsed, err := ParseMaterial(m.String())
		if err != nil {
			tst.Errorf("unexpected error parsing %q: %v", m.String(), err)
		}
		if parsed != m {
			tst.Errorf("round-trip mismatch: %v != %v", parsed, m)
		}
	}

	if _, err := ParseMaterial("Clay"); err == nil {
		tst.Errorf("unknown material name should return an error")
	}
}

func Test_config04_prms_roundtrip_and_apply(tst *testing.T) {

	//verbose()
	chk.PrintTitle("config04: *Prms() round-trips into ApplyPrms and recognised names override the defaults")

	water := DefaultWaterParams()
	water.ApplyPrms(WaterPrms())
	chk.Scalar(tst, "water.K unchanged by round-trip", 1e-12, water.K, DefaultWaterParams().K)

	water.ApplyPrms(fun.Prms{&fun.Prm{N: "K", V: 123.0}})
	chk.Scalar(tst, "water.K overridden", 1e-12, water.K, 123.0)

	sand := DefaultDrySandParams()
	sand.ApplyPrms(fun.Prms{&fun.Prm{N: "E", V: 1.0e6}, &fun.Prm{N: "nu", V: 0.25}})
	wantLambda, wantMu := LameFromEV(1.0e6, 0.25)
	chk.Scalar(tst, "dry-sand Lambda recomputed from overridden E,nu", 1e-9, sand.Lambda, wantLambda)
	chk.Scalar(tst, "dry-sand Mu recomputed from overridden E,nu", 1e-9, sand.Mu, wantMu)

	snow := DefaultSnowParams()
	snow.ApplyPrms(SnowPrms())
	chk.Scalar(tst, "snow.ThetaC unchanged by round-trip", 1e-12, snow.ThetaC, DefaultSnowParams().ThetaC)

	elastic := DefaultElasticParams()
	elastic.ApplyPrms(ElasticPrms())
	chk.Scalar(tst, "elastic.E unchanged by round-trip", 1e-12, elastic.E, DefaultElasticParams().E)
}
