// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"math"

	"github.com/cpmech/mpm2d/algebra"
	"github.com/cpmech/mpm2d/config"
)

func init() {
	allocators["DrySand"] = func() Model { return NewDrySand(0, 0, algebra.Vector2{}, algebra.Vector2{}, config.DefaultDrySandParams()) }
}

// DrySand is a frictional granular material using a Drucker-Prager yield
// surface over a StVK-Hencky elastic response, with a hardening cohesion
// angle (spec.md section 4.4, "DrySand").
type DrySand struct {
	Base
	Params config.DrySandParams

	Fe, FeTr algebra.Matrix2 // (trial) elastic deformation
	Fp, FpTr algebra.Matrix2 // (trial) plastic deformation

	Q     float64 // accumulated plastic dissipation
	Alpha float64 // friction parameter, derived from Q

	Ap algebra.Matrix2
}

// NewDrySand builds a DrySand particle at its undeformed, unhardened
// rest state (Fe=Fp=I, q=0).
func NewDrySand(vp0, mp float64, xp, vp algebra.Vector2, params config.DrySandParams) *DrySand {
	d := &DrySand{
		Base:   Base{Vp0: vp0, Mp: mp, Xp: xp, Vp: vp},
		Params: params,
		Fe:     algebra.Identity2,
		FeTr:   algebra.Identity2,
		Fp:     algebra.Identity2,
		FpTr:   algebra.Identity2,
	}
	d.Alpha = drySandAlpha(params, 0)
	return d
}

func (d *DrySand) Particle() *Base { return &d.Base }

// drySandAlpha computes the friction parameter from the hardening
// cohesion angle (spec.md section 4.4: "phi = H0 + (H1.q - H3).exp(-H2.q);
// alpha = sqrt(2/3).2.sin(phi)/(3-sin(phi))").
func drySandAlpha(p config.DrySandParams, q float64) float64 {
	phi := p.H0 + (p.H1*q-p.H3)*math.Exp(-p.H2*q)
	return math.Sqrt(2.0/3.0) * 2 * math.Sin(phi) / (3 - math.Sin(phi))
}

// StressContribution implements Model (spec.md section 4.4, step 4):
// Ap = V0.U.diag(dFe).V^T.Fe^T, with dFe the StVK-Hencky stress in the
// principal frame.
func (d *DrySand) StressContribution() algebra.Matrix2 {
	u, eps, v := d.Fe.SVD()
	logEps := eps.Log()
	dFe := eps.Inv().Scale(2 * d.Params.Mu).Mul(logEps).Add(
		eps.Inv().Scale(d.Params.Lambda * logEps.Sum()))
	d.Ap = u.DiagMul(dFe).MulMat(v.Transpose()).MulMat(d.Fe.Transpose()).Scale(d.Vp0)
	return d.Ap
}

// UpdateDeformation implements Model (spec.md section 4.4, steps 1-2):
// forms the trial elastic deformation and runs the return-mapping
// projection.
func (d *DrySand) UpdateDeformation(dt float64, T algebra.Matrix2) {
	d.FeTr = algebra.Identity2.Add(T.Scale(dt)).MulMat(d.Fe)
	d.FpTr = d.Fp
	d.plasticity()
}

// plasticity implements the return-mapping step (spec.md section 4.4,
// steps 3-5): SVD the trial elastic deformation, project the singular
// values, rebuild Fe/Fp and update the hardening state.
func (d *DrySand) plasticity() {
	u, eps, v := d.FeTr.SVD()
	t, dq := d.project(eps)

	d.Fe = u.DiagMul(t).MulMat(v.Transpose())
	d.Fp = v.DiagMulInv(t).DiagMul(eps).MulMat(v.Transpose()).MulMat(d.FpTr)

	d.Q += dq
	d.Alpha = drySandAlpha(d.Params, d.Q)
}

// project implements the cone-tip / no-projection / yield-surface
// return-mapping cases (spec.md section 4.4, "Projection").
func (d *DrySand) project(eps algebra.Vector2) (t algebra.Vector2, dq float64) {
	e := eps.Log()
	sum := e.Sum()
	ec := e.Sub(algebra.Splat(sum / 2.0))

	if ec.Norm() < 1e-8 || sum > 0 {
		return algebra.Splat(1), e.Norm()
	}

	dg := ec.Norm() + (d.Params.Lambda+d.Params.Mu)/d.Params.Mu*sum*d.Alpha
	if dg <= 0 {
		return eps, 0
	}

	hm := e.Sub(ec.Scale(dg / ec.Norm()))
	return hm.Exp(), dg
}
