// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp implements the cubic and quadratic B-spline
// interpolation kernels used to transfer data between material points
// and the background grid (spec.md section 4.1).
package interp

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mpm2d/algebra"
)

// Variant selects the B-spline interpolation kernel.
type Variant int

const (
	// Cubic is the cubic B-spline, support [-2,2].
	Cubic Variant = iota
	// Quadratic is the quadratic B-spline, support [-1.5,1.5].
	Quadratic
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Cubic:
		return "Cubic"
	case Quadratic:
		return "Quadratic"
	default:
		return "unknown"
	}
}

// ParseVariant converts a configuration string ("Cubic"/"Quadratic")
// into a Variant, mirroring config.Config's "INTERPOLATION" option.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "Cubic":
		return Cubic, nil
	case "Quadratic":
		return Quadratic, nil
	default:
		return Cubic, chk.Err("interp: variant named %q is not available; use \"Cubic\" or \"Quadratic\"", name)
	}
}

// Kernel bundles the constants that depend on the chosen B-spline
// variant (spec.md section 4.1 table): CUB (stencil half-width), BNI
// (lower corner offset of the stencil), DScal (the APIC inverse-D
// scalar factor) and Translation (the particle-position shift that
// aligns the stencil's base-node formula with the chosen support).
type Kernel struct {
	Variant     Variant
	CUB         float64
	BNI         int
	DScal       float64
	Translation algebra.Vector2
}

// NewKernel builds the Kernel for the given variant.
func NewKernel(v Variant) Kernel {
	switch v {
	case Quadratic:
		return Kernel{
			Variant:     Quadratic,
			CUB:         1.5,
			BNI:         0,
			DScal:       4,
			Translation: algebra.NewVector2(0.5, 0.5),
		}
	default:
		return Kernel{
			Variant:     Cubic,
			CUB:         2,
			BNI:         -1,
			DScal:       3,
			Translation: algebra.NewVector2(0, 0),
		}
	}
}

// Bspline evaluates the 1D kernel at x.
func (k Kernel) Bspline(x float64) float64 {
	if k.Variant == Quadratic {
		return quadraticBspline(x)
	}
	return cubicBspline(x)
}

// DBspline evaluates the 1D kernel derivative at x.
func (k Kernel) DBspline(x float64) float64 {
	if k.Variant == Quadratic {
		return quadraticDBspline(x)
	}
	return cubicDBspline(x)
}

// Weight returns the 2D tensor-product weight W_ip for dist = Xp - Xi.
func (k Kernel) Weight(dist algebra.Vector2) float64 {
	return k.Bspline(dist.X0) * k.Bspline(dist.X1)
}

// Gradient returns the 2D tensor-product weight gradient dW_ip.
func (k Kernel) Gradient(dist algebra.Vector2) algebra.Vector2 {
	return algebra.NewVector2(
		k.DBspline(dist.X0)*k.Bspline(dist.X1),
		k.Bspline(dist.X0)*k.DBspline(dist.X1),
	)
}

// cubicBspline is the cubic B-spline, support [-2,2] (spec.md section 4.1).
func cubicBspline(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 1:
		return x*x*x/2.0 - x*x + 2.0/3.0
	case x < 2:
		return (2 - x) * (2 - x) * (2 - x) / 6.0
	default:
		return 0
	}
}

// cubicDBspline is the derivative of cubicBspline.
func cubicDBspline(x float64) float64 {
	xAbs := math.Abs(x)
	switch {
	case xAbs < 1:
		return 1.5*x*xAbs - 2.0*x
	case xAbs < 2:
		return -x*xAbs/2.0 + 2*x - 2*x/xAbs
	default:
		return 0
	}
}

// quadraticBspline is the quadratic B-spline, support [-1.5,1.5].
func quadraticBspline(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x < 0.5:
		return -x*x + 3.0/4.0
	case x < 1.5:
		return x*x/2.0 - 3*x/2.0 + 9.0/8.0
	default:
		return 0
	}
}

// quadraticDBspline is the derivative of quadraticBspline.
func quadraticDBspline(x float64) float64 {
	xAbs := math.Abs(x)
	switch {
	case xAbs < 0.5:
		return -2.0 * x
	case xAbs < 1.5:
		return x - 3.0/2.0*x/xAbs
	default:
		return 0
	}
}
