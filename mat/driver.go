// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mpm2d/algebra"
)

// Driver runs a single material point through a prescribed sequence of
// nodal velocity gradients, outside of any grid or solver, for isolated
// constitutive-model testing (grounded on mdl/solid.Driver).
type Driver struct {
	Model Model
	DT    float64

	// Res accumulates one snapshot per step, taken after
	// UpdateDeformation.
	Res []DriverState
}

// DriverState is one recorded step of a Driver run.
type DriverState struct {
	Ap algebra.Matrix2
	Vp algebra.Vector2
}

// Init builds a Driver around a named material, for tests that only
// care about the material's response and not about the particular
// seeding used by a full simulation. prms overrides the material's
// default parameters by name (config.WaterPrms/DrySandPrms/SnowPrms/
// ElasticPrms document the recognised names); pass nil to keep the
// defaults. This mirrors mdl/solid's Init(ndim, pstress, prms fun.Prms)
// pattern, minus the ndim/pstress arguments this model has no use for.
func (d *Driver) Init(materialName string, dt float64, prms fun.Prms) (err error) {
	d.Model, err = New(materialName)
	if err != nil {
		return chk.Err("driver: %v", err)
	}
	d.DT = dt
	if len(prms) == 0 {
		return nil
	}
	switch m := d.Model.(type) {
	case *Water:
		m.Params.ApplyPrms(prms)
	case *DrySand:
		m.Params.ApplyPrms(prms)
		m.Alpha = drySandAlpha(m.Params, m.Q)
	case *Snow:
		m.Params.ApplyPrms(prms)
		m.Lambda, m.Mu = m.Params.Lambda, m.Params.Mu
	case *Elastic:
		m.Params.ApplyPrms(prms)
		m.Lambda, m.Mu = m.Params.Lambda, m.Params.Mu
	}
	return nil
}

// Step applies one velocity-gradient increment T: it computes the
// pre-update stress contribution, advances the deformation state, and
// records a snapshot.
func (d *Driver) Step(T algebra.Matrix2) algebra.Matrix2 {
	ap := d.Model.StressContribution()
	d.Model.UpdateDeformation(d.DT, T)
	d.Res = append(d.Res, DriverState{Ap: ap, Vp: d.Model.Particle().Vp})
	return ap
}

// Run applies a sequence of velocity-gradient increments in order,
// returning the stress contribution recorded at every step.
func (d *Driver) Run(path []algebra.Matrix2) []algebra.Matrix2 {
	out := make([]algebra.Matrix2, len(path))
	for i, T := range path {
		out[i] = d.Step(T)
	}
	return out
}
