// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"github.com/cpmech/mpm2d/algebra"
	"github.com/cpmech/mpm2d/config"
)

func init() {
	allocators["Elastic"] = func() Model { return NewElastic(0, 0, algebra.Vector2{}, algebra.Vector2{}, config.DefaultElasticParams()) }
}

// Elastic is a purely corotated-elastic solid with no plastic flow and a
// fixed per-particle Lame pair (spec.md section 4.4, "Elastic").
type Elastic struct {
	Base
	Params config.ElasticParams

	Fe algebra.Matrix2

	Lambda, Mu float64 // per-particle Lame parameters (may differ from Params for stiffness variants)

	Ap algebra.Matrix2
}

// NewElastic builds an Elastic particle at Fe=I, using the Lame pair from
// params. Callers seeding stiffness variants (spec.md section 4.5's
// three-cube demo scenario) should override Lambda/Mu after construction.
func NewElastic(vp0, mp float64, xp, vp algebra.Vector2, params config.ElasticParams) *Elastic {
	return &Elastic{
		Base:   Base{Vp0: vp0, Mp: mp, Xp: xp, Vp: vp},
		Params: params,
		Fe:     algebra.Identity2,
		Lambda: params.Lambda,
		Mu:     params.Mu,
	}
}

func (e *Elastic) Particle() *Base { return &e.Base }

// StressContribution implements Model (spec.md section 4.4, same
// corotated stress expression as Snow but without hardening).
func (e *Elastic) StressContribution() algebra.Matrix2 {
	re, _ := e.Fe.PolarDecomp()
	je := e.Fe.Det()
	dFe := e.Fe.Sub(re).MulMat(e.Fe.Transpose()).Scale(2 * e.Mu).Add(
		algebra.Identity2.Scale(e.Lambda * (je - 1) * je))
	e.Ap = dFe.Scale(e.Vp0)
	return e.Ap
}

// UpdateDeformation implements Model (spec.md section 4.4: "Fe = (I +
// DT.T).Fe", no plastic split).
func (e *Elastic) UpdateDeformation(dt float64, T algebra.Matrix2) {
	e.Fe = algebra.Identity2.Add(T.Scale(dt)).MulMat(e.Fe)
}
