// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat implements the material-point constitutive models (spec.md
// section 4.4): Water, DrySand, Snow and Elastic, all sharing the Base
// particle state and the Model interface consumed by package solver.
package mat

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mpm2d/algebra"
)

// Base holds the state common to every material (spec.md section 3
// "Particle"). Concrete materials embed Base and add their own
// deformation/hardening state.
type Base struct {
	Vp0 float64         // initial volume, constant
	Mp  float64         // mass, constant
	Xp  algebra.Vector2 // position
	Vp  algebra.Vector2 // velocity
	Bp  algebra.Matrix2 // APIC affine velocity field
}

// Model is implemented by every material-point type. StressContribution
// returns the matrix Ap such that a particle deposits force Ap.∇W on a
// node (spec.md section 4.4); scalar stress coefficients (Water) are
// represented as an isotropic Ap = ap*I. UpdateDeformation advances the
// particle's internal deformation/hardening state given the nodal
// velocity gradient T accumulated during UpdateParticles.
type Model interface {
	Particle() *Base
	StressContribution() algebra.Matrix2
	UpdateDeformation(dt float64, T algebra.Matrix2)
}

// New allocates a zero-valued model of the named material, for use by
// generic code (e.g. the Driver) that only knows the material by name.
func New(name string) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material %q is not available in 'mat' database", name)
	}
	return allocator(), nil
}

// allocators holds all available materials; material name => allocator.
var allocators = map[string]func() Model{}
