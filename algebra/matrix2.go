// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import "math"

// svdEpsilon is the threshold below which Matrix2.SVD treats a near-zero
// off-diagonal element as exactly zero (spec.md section 7: 1e-6).
const svdEpsilon = 1e-6

// Identity2 is the 2x2 identity matrix.
var Identity2 = Matrix2{M00: 1, M01: 0, M10: 0, M11: 1}

// Matrix2 is a 2x2 matrix, row-major, passed and returned by value.
type Matrix2 struct {
	M00, M01 float64
	M10, M11 float64
}

// NewMatrix2 builds a matrix from its four entries, row-major.
func NewMatrix2(m00, m01, m10, m11 float64) Matrix2 {
	return Matrix2{M00: m00, M01: m01, M10: m10, M11: m11}
}

// Zero2 returns the zero matrix.
func Zero2() Matrix2 {
	return Matrix2{}
}

// Neg returns -M.
func (m Matrix2) Neg() Matrix2 {
	return Matrix2{-m.M00, -m.M01, -m.M10, -m.M11}
}

// Add returns M+N.
func (m Matrix2) Add(n Matrix2) Matrix2 {
	return Matrix2{m.M00 + n.M00, m.M01 + n.M01, m.M10 + n.M10, m.M11 + n.M11}
}

// Sub returns M-N.
func (m Matrix2) Sub(n Matrix2) Matrix2 {
	return Matrix2{m.M00 - n.M00, m.M01 - n.M01, m.M10 - n.M10, m.M11 - n.M11}
}

// Scale returns M*s.
func (m Matrix2) Scale(s float64) Matrix2 {
	return Matrix2{m.M00 * s, m.M01 * s, m.M10 * s, m.M11 * s}
}

// Trace returns tr(M).
func (m Matrix2) Trace() float64 {
	return m.M00 + m.M11
}

// Det returns det(M).
func (m Matrix2) Det() float64 {
	return m.M00*m.M11 - m.M01*m.M10
}

// Transpose returns M^T.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m.M00, m.M10, m.M01, m.M11}
}

// Inv returns the inverse of M. Callers must ensure Det(M) != 0; this
// mirrors the source, which never guards the division (spec.md section 8
// only asserts the det(inv)*det==1 invariant for non-singular M).
func (m Matrix2) Inv() Matrix2 {
	d := m.Det()
	return Matrix2{m.M11, -m.M01, -m.M10, m.M00}.Scale(1.0 / d)
}

// MulMat returns the matrix product M*N.
func (m Matrix2) MulMat(n Matrix2) Matrix2 {
	return Matrix2{
		M00: m.M00*n.M00 + m.M01*n.M10,
		M01: m.M00*n.M01 + m.M01*n.M11,
		M10: m.M10*n.M00 + m.M11*n.M10,
		M11: m.M10*n.M01 + m.M11*n.M11,
	}
}

// MulVec returns M*v.
func (m Matrix2) MulVec(v Vector2) Vector2 {
	return Vector2{
		X0: m.M00*v.X0 + m.M01*v.X1,
		X1: m.M10*v.X0 + m.M11*v.X1,
	}
}

// DiagMul returns M with each column j scaled by v[j] (M * diag(v)).
func (m Matrix2) DiagMul(v Vector2) Matrix2 {
	return Matrix2{m.M00 * v.X0, m.M01 * v.X1, m.M10 * v.X0, m.M11 * v.X1}
}

// DiagMulInv returns M * diag(v)^-1, i.e. each column j divided by v[j].
func (m Matrix2) DiagMulInv(v Vector2) Matrix2 {
	return Matrix2{m.M00 / v.X0, m.M01 / v.X1, m.M10 / v.X0, m.M11 / v.X1}
}

// SVD computes the singular value decomposition M = U * diag(sigma) * V^T
// with U, V orthogonal and sigma sorted descending. Ported from the
// closed-form 2x2 solver in original_source/MPM2D/ext/Algebra/algebra.cpp
// (itself after http://www.ualberta.ca/~mlipsett/ENGM541/Readings/svd_ellis.pdf).
func (m Matrix2) SVD() (u Matrix2, sigma Vector2, v Matrix2) {
	defer func() {
		// swapping the columns of U and V together leaves U.diag(sigma).V^T unchanged
		if sigma.X0 < sigma.X1 {
			sigma, u, v = Vector2{sigma.X1, sigma.X0}, Matrix2{u.M01, u.M00, u.M11, u.M10}, Matrix2{v.M01, v.M00, v.M11, v.M10}
		}
		// a zero singular value leaves V's second column undetermined (0/0)
		if x := v.M01 + v.M11; math.IsNaN(x) || math.IsInf(x, 0) {
			v.M01, v.M11 = -v.M10, v.M00
		}
	}()

	if math.Abs(m.M01-m.M10) < svdEpsilon && math.Abs(m.M01) < svdEpsilon {
		// near-diagonal fast path
		u00, u11 := 1.0, 1.0
		if m.M00 < 0 {
			u00 = -1.0
		}
		if m.M11 < 0 {
			u11 = -1.0
		}
		u = Matrix2{u00, 0, 0, u11}
		sigma = Vector2{math.Abs(m.M00), math.Abs(m.M11)}
		v = Identity2
		return
	}

	j := m.M00*m.M00 + m.M01*m.M01
	k := m.M10*m.M10 + m.M11*m.M11
	vc := m.M00*m.M10 + m.M01*m.M11

	if math.Abs(vc) < svdEpsilon {
		s1 := math.Sqrt(j)
		s2 := s1
		if math.Abs(j-k) >= svdEpsilon {
			s2 = math.Sqrt(k)
		}
		sigma = Vector2{s1, s2}
		u = Identity2
		v = Matrix2{
			M00: m.M00 / s1, M01: m.M10 / s2,
			M10: m.M01 / s1, M11: m.M11 / s2,
		}
		return
	}

	jmk := j - k
	jpk := j + k
	root := math.Sqrt(jmk*jmk + 4*vc*vc)
	eig := (jpk + root) / 2
	s1 := math.Sqrt(eig)
	s2 := s1
	if math.Abs(root) >= svdEpsilon {
		s2 = math.Sqrt((jpk - root) / 2)
	}
	sigma = Vector2{s1, s2}

	vs := eig - j
	vlen := math.Sqrt(vs*vs + vc*vc)
	vcN := vc / vlen
	vsN := vs / vlen
	u = Matrix2{vcN, -vsN, vsN, vcN}
	v = Matrix2{
		M00: (m.M00*vcN + m.M10*vsN) / s1,
		M01: (m.M10*vcN - m.M00*vsN) / s2,
		M10: (m.M01*vcN + m.M11*vsN) / s1,
		M11: (m.M11*vcN - m.M01*vsN) / s2,
	}
	return
}

// PolarDecomp computes the polar decomposition M = R*S with R a rotation
// built from theta = atan2(m10-m01, m00+m11), per spec.md section 3.
func (m Matrix2) PolarDecomp() (r, s Matrix2) {
	theta := math.Atan2(m.M10-m.M01, m.M00+m.M11)
	c, sn := math.Cos(theta), math.Sin(theta)
	r = Matrix2{c, -sn, sn, c}
	s = r.Transpose().MulMat(m)
	return
}
