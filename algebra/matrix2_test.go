// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algebra

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_matrix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix01: basic algebra")

	m := NewMatrix2(2, 1, 0, 3)
	chk.Scalar(tst, "det(M)", 1e-15, m.Det(), 6)
	chk.Scalar(tst, "tr(M)", 1e-15, m.Trace(), 5)

	mt := m.Transpose()
	mtt := mt.Transpose()
	chk.Scalar(tst, "(M^T)^T.m00", 1e-15, mtt.M00, m.M00)
	chk.Scalar(tst, "(M^T)^T.m01", 1e-15, mtt.M01, m.M01)
	chk.Scalar(tst, "(M^T)^T.m10", 1e-15, mtt.M10, m.M10)
	chk.Scalar(tst, "(M^T)^T.m11", 1e-15, mtt.M11, m.M11)

	minv := m.Inv()
	chk.Scalar(tst, "det(inv(M))*det(M)", 1e-13, minv.Det()*m.Det(), 1)

	v := NewVector2(1.3, -0.7)
	lhs := m.MulVec(v).Dot(v)
	rhs := v.Dot(mt.MulVec(v))
	chk.Scalar(tst, "(M.v).v == v.(M^T.v)", 1e-13, lhs, rhs)
}

func Test_matrix02_svd(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix02: SVD reconstructs M and U,V are orthogonal")

	cases := []Matrix2{
		NewMatrix2(2, 0, 0, 3),
		NewMatrix2(1, 0.5, 0.5, 1),
		NewMatrix2(1.2, -0.3, 0.4, 0.9),
		NewMatrix2(0.5, 0.5, 0.5, 0.5),
		NewMatrix2(-1.0, 0.2, 0.3, -2.0),
	}

	for _, m := range cases {
		u, sigma, v := m.SVD()

		// sigma >= 0
		if sigma.X0 < 0 || sigma.X1 < 0 {
			tst.Errorf("singular values must be non-negative: %v", sigma)
		}
		// sorted descending
		if sigma.X0 < sigma.X1-1e-12 {
			tst.Errorf("singular values must be sorted descending: %v", sigma)
		}

		rec := u.MulMat(sigma.Diag()).MulMat(v.Transpose())
		errFro := math.Hypot(math.Hypot(rec.M00-m.M00, rec.M01-m.M01), math.Hypot(rec.M10-m.M10, rec.M11-m.M11))
		if errFro > 1e-5 {
			tst.Errorf("U.Sigma.V^T != M: frobenius error = %v (M=%v)", errFro, m)
		}

		utu := u.Transpose().MulMat(u)
		chk.Scalar(tst, "U^T.U[00]", 1e-6, utu.M00, 1)
		chk.Scalar(tst, "U^T.U[11]", 1e-6, utu.M11, 1)
		chk.Scalar(tst, "U^T.U[01]", 1e-6, utu.M01, 0)

		vtv := v.Transpose().MulMat(v)
		chk.Scalar(tst, "V^T.V[00]", 1e-6, vtv.M00, 1)
		chk.Scalar(tst, "V^T.V[11]", 1e-6, vtv.M11, 1)
		chk.Scalar(tst, "V^T.V[01]", 1e-6, vtv.M01, 0)
	}
}

func Test_matrix03_polar(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix03: polar decomposition")

	cases := []Matrix2{
		NewMatrix2(2, 0, 0, 3),
		NewMatrix2(1.2, -0.3, 0.4, 0.9),
		Identity2,
	}

	for _, m := range cases {
		r, s := m.PolarDecomp()

		rec := r.MulMat(s)
		errFro := math.Hypot(math.Hypot(rec.M00-m.M00, rec.M01-m.M01), math.Hypot(rec.M10-m.M10, rec.M11-m.M11))
		if errFro > 1e-10 {
			tst.Errorf("R.S != M: frobenius error = %v", errFro)
		}

		if r.Det() <= 0 {
			tst.Errorf("R must be a rotation (det>0), got det=%v", r.Det())
		}
		rtr := r.Transpose().MulMat(r)
		chk.Scalar(tst, "R^T.R[00]", 1e-12, rtr.M00, 1)
		chk.Scalar(tst, "R^T.R[11]", 1e-12, rtr.M11, 1)
		chk.Scalar(tst, "R^T.R[01]", 1e-12, rtr.M01, 0)

		// S symmetric
		chk.Scalar(tst, "S symmetric", 1e-10, s.M01, s.M10)
	}
}
