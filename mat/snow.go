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
	allocators["Snow"] = func() Model { return NewSnow(0, 0, algebra.Vector2{}, algebra.Vector2{}, config.DefaultSnowParams()) }
}

// Snow is a corotated-elastic, fixed-corotated-plastic material with a
// clamp-based return mapping and exponential hardening driven by the
// plastic volume change (spec.md section 4.4, "Snow").
type Snow struct {
	Base
	Params config.SnowParams

	Fe, FeTr algebra.Matrix2
	Fp, FpTr algebra.Matrix2
	Je, Jp   float64

	Lambda, Mu float64 // current (hardened) Lame parameters

	Ap algebra.Matrix2
}

// NewSnow builds a Snow particle at its undeformed rest state.
func NewSnow(vp0, mp float64, xp, vp algebra.Vector2, params config.SnowParams) *Snow {
	return &Snow{
		Base:   Base{Vp0: vp0, Mp: mp, Xp: xp, Vp: vp},
		Params: params,
		Fe:     algebra.Identity2,
		FeTr:   algebra.Identity2,
		Fp:     algebra.Identity2,
		FpTr:   algebra.Identity2,
		Je:     1.0,
		Jp:     1.0,
		Lambda: params.Lambda,
		Mu:     params.Mu,
	}
}

func (s *Snow) Particle() *Base { return &s.Base }

// StressContribution implements Model (spec.md section 4.4: corotated
// stress "Ap = V0.(2.mu.(Fe-Re).Fe^T + lambda.(Je-1).Je.I)").
func (s *Snow) StressContribution() algebra.Matrix2 {
	re, _ := s.Fe.PolarDecomp()
	dFe := s.Fe.Sub(re).MulMat(s.Fe.Transpose()).Scale(2 * s.Mu).Add(
		algebra.Identity2.Scale(s.Lambda * (s.Je - 1) * s.Je))
	s.Ap = dFe.Scale(s.Vp0)
	return s.Ap
}

// UpdateDeformation implements Model (spec.md section 4.4, steps 1-2):
// forms the trial elastic deformation and runs the clamp-based return
// mapping with exponential hardening.
func (s *Snow) UpdateDeformation(dt float64, T algebra.Matrix2) {
	s.FeTr = algebra.Identity2.Add(T.Scale(dt)).MulMat(s.Fe)
	s.FpTr = s.Fp
	s.plasticity()
}

func (s *Snow) plasticity() {
	u, eps, v := s.FeTr.SVD()
	t := eps.Clamp(1-s.Params.ThetaC, 1+s.Params.ThetaS)

	s.Fe = u.DiagMul(t).MulMat(v.Transpose())
	s.Fp = v.DiagMulInv(t).DiagMul(eps).MulMat(v.Transpose()).MulMat(s.FpTr)

	s.Je = s.Fe.Det()
	s.Jp = s.Fp.Det()

	harden := math.Exp(s.Params.Xi * (1.0 - s.Jp))
	s.Lambda = s.Params.Lambda * harden
	s.Mu = s.Params.Mu * harden
}
