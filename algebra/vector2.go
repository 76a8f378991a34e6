// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algebra implements the fixed-size 2-vector and 2x2 matrix
// arithmetic (including SVD and polar decomposition) used by the MPM
// particle-grid transfers and constitutive models.
package algebra

import "math"

// Vector2 is a 2-component vector, passed and returned by value.
type Vector2 struct {
	X0, X1 float64
}

// NewVector2 builds a vector from its two components.
func NewVector2(x0, x1 float64) Vector2 {
	return Vector2{X0: x0, X1: x1}
}

// Splat builds a vector with both components set to x.
func Splat(x float64) Vector2 {
	return Vector2{X0: x, X1: x}
}

// At returns component i (0 or 1).
func (v Vector2) At(i int) float64 {
	if i == 0 {
		return v.X0
	}
	return v.X1
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X0, -v.X1}
}

// Add returns v+u.
func (v Vector2) Add(u Vector2) Vector2 {
	return Vector2{v.X0 + u.X0, v.X1 + u.X1}
}

// Sub returns v-u.
func (v Vector2) Sub(u Vector2) Vector2 {
	return Vector2{v.X0 - u.X0, v.X1 - u.X1}
}

// Mul returns the element-wise product v*u.
func (v Vector2) Mul(u Vector2) Vector2 {
	return Vector2{v.X0 * u.X0, v.X1 * u.X1}
}

// Scale returns v*s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X0 * s, v.X1 * s}
}

// Dot returns v.u.
func (v Vector2) Dot(u Vector2) float64 {
	return v.X0*u.X0 + v.X1*u.X1
}

// Norm returns ||v||.
func (v Vector2) Norm() float64 {
	return math.Sqrt(v.X0*v.X0 + v.X1*v.X1)
}

// Sum returns v.X0+v.X1.
func (v Vector2) Sum() float64 {
	return v.X0 + v.X1
}

// Inv returns the element-wise inverse 1/v.
func (v Vector2) Inv() Vector2 {
	return Vector2{1.0 / v.X0, 1.0 / v.X1}
}

// Log returns the element-wise natural logarithm.
func (v Vector2) Log() Vector2 {
	return Vector2{math.Log(v.X0), math.Log(v.X1)}
}

// Exp returns the element-wise exponential.
func (v Vector2) Exp() Vector2 {
	return Vector2{math.Exp(v.X0), math.Exp(v.X1)}
}

// Clamp clamps each component to [low, high].
func (v Vector2) Clamp(low, high float64) Vector2 {
	return Vector2{clampFloat(v.X0, low, high), clampFloat(v.X1, low, high)}
}

func clampFloat(x, low, high float64) float64 {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

// OuterProduct returns v*u^T as a 2x2 matrix.
func (v Vector2) OuterProduct(u Vector2) Matrix2 {
	return Matrix2{
		M00: v.X0 * u.X0, M01: v.X0 * u.X1,
		M10: v.X1 * u.X0, M11: v.X1 * u.X1,
	}
}

// Diag builds the diagonal matrix diag(v).
func (v Vector2) Diag() Matrix2 {
	return Matrix2{M00: v.X0, M01: 0, M10: 0, M11: v.X1}
}
