// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the background node lattice and its boundary
// descriptors (spec.md sections 3, 4.2 and 4.3).
package grid

import (
	"math"

	"github.com/cpmech/mpm2d/algebra"
)

// BorderKind selects the collision rule a Border enforces.
type BorderKind int

const (
	// Sticky zeroes velocity inside the boundary.
	Sticky BorderKind = iota
	// Separating removes only the outward-penetrating velocity component.
	Separating
	// Sliding is like Separating but only while already inside the boundary.
	Sliding
)

// Border is a straight boundary segment (spec.md section 3). Normal must
// have unit length; a node is "inside" when normal.(X-corner) < 0.
type Border struct {
	Kind   BorderKind
	Normal algebra.Vector2
	Corner algebra.Vector2
}

// NewBorder builds a Border, normalizing Normal (the source always
// constructs borders with already-unit normals; normalizing here keeps
// the invariant even if a caller passes an un-normalized vector).
func NewBorder(kind BorderKind, normal, corner algebra.Vector2) Border {
	n := normal.Norm()
	if n > 0 {
		normal = normal.Scale(1.0 / n)
	}
	return Border{Kind: kind, Normal: normal, Corner: corner}
}

// Distance returns the signed outward-positive distance from x to the
// boundary line.
func (b Border) Distance(x algebra.Vector2) float64 {
	return b.Normal.Dot(x.Sub(b.Corner))
}

// Collide applies the border's collision rule to (x,v) (spec.md section
// 4.2). It returns the corrected velocity and whether the border should
// be recorded in the node's collision list (for later friction).
func (b Border) Collide(dt float64, x, v algebra.Vector2) (algebra.Vector2, bool) {
	distance := b.Distance(x)

	if b.Kind == Sticky {
		if distance < 0 {
			return algebra.Vector2{}, false
		}
		return v, false
	}

	predicted := x.Add(v.Scale(dt))
	dPrime := b.Distance(predicted)
	delta := dPrime - math.Min(distance, 0)

	record := (b.Kind == Separating && delta < 0) || (b.Kind == Sliding && distance < 0)
	if record {
		v = v.Sub(b.Normal.Scale(delta / dt))
		return v, true
	}
	return v, false
}

// Friction applies Coulomb friction to an already-recorded border
// (spec.md section 4.2), given the pre-friction velocity vFri (updated
// in place across borders by the caller), the post-collision velocity
// vCol and the pre-collision velocity v.
func (b Border) Friction(cfri float64, vFri, vCol, v algebra.Vector2) algebra.Vector2 {
	const tangentialEpsilon = 1e-7

	vt := vCol.Sub(b.Normal.Scale(b.Normal.Dot(vFri)))
	vtNorm := vt.Norm()
	if vtNorm > tangentialEpsilon {
		t := vt.Scale(1.0 / vtNorm)
		mag := math.Min(vtNorm, cfri*vCol.Sub(v).Norm())
		vFri = vFri.Sub(t.Scale(mag))
	}
	return vFri
}
