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
	allocators["Water"] = func() Model { return NewWater(0, 0, algebra.Vector2{}, algebra.Vector2{}, config.DefaultWaterParams()) }
}

// Water is a weakly-compressible fluid (spec.md section 4.4, "Water"),
// penalizing deviation of the determinant Jp from 1 with a Tait-like
// equation of state.
type Water struct {
	Base
	Params config.WaterParams

	Jp float64 // determinant of the accumulated deformation gradient
	Ap float64 // stress coefficient, recomputed each P2G pass
}

// NewWater builds a Water particle with Jp=1 (undeformed rest state).
func NewWater(vp0, mp float64, xp, vp algebra.Vector2, params config.WaterParams) *Water {
	return &Water{
		Base:   Base{Vp0: vp0, Mp: mp, Xp: xp, Vp: vp},
		Params: params,
		Jp:     1.0,
	}
}

func (w *Water) Particle() *Base { return &w.Base }

// StressContribution implements Model (spec.md section 4.4: "Ap =
// -K.(Jp^-gamma - 1).V0.Jp"), represented isotropically as Ap*I.
func (w *Water) StressContribution() algebra.Matrix2 {
	dJp := -w.Params.K * (1.0/math.Pow(w.Jp, w.Params.Gamma) - 1.0)
	w.Ap = dJp * w.Vp0 * w.Jp
	return algebra.NewMatrix2(w.Ap, 0, 0, w.Ap)
}

// UpdateDeformation implements Model (spec.md section 4.4: "Jp = (1 +
// DT.tr(T)).Jp").
func (w *Water) UpdateDeformation(dt float64, T algebra.Matrix2) {
	w.Jp = (1 + dt*T.Trace()) * w.Jp
}
