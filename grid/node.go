// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/mpm2d/algebra"

// Node is a background grid node (spec.md section 3). X is constant
// after construction; M, V and F are accumulated during P2G and
// consumed/reset once per step.
type Node struct {
	X Vec // position, constant after Init

	M float64 // mass
	V Vec     // momentum during P2G, velocity after UpdateNodes step 1-3
	F Vec     // force accumulator during P2G, DT*(gravity+internal) after step 2

	VCol Vec // post-collision velocity
	VFri Vec // post-friction velocity

	Collisions []int // indices into the Lattice's Borders this node currently touches
}

// Vec is an alias kept local to grid so node.go reads close to the
// source's Vector2f fields without importing algebra under a different
// name at every call site.
type Vec = algebra.Vector2

// Reset clears a node's per-step accumulators (spec.md section 4.3:
// "m=0, v=0, f=0, collision list cleared"). X, VCol and VFri are left
// untouched since they are overwritten before use.
func (n *Node) Reset() {
	n.M = 0
	n.V = Vec{}
	n.F = Vec{}
	n.Collisions = n.Collisions[:0]
}

// Update performs the per-node step (spec.md section 4.3 steps 1-5):
// momentum to velocity, gravity + internal force integration,
// collision resolution and (if friction is requested) friction.
func (n *Node) Update(dt float64, gravity Vec, borders []Border, cfri float64, useFriction bool) {
	n.V = n.V.Scale(1.0 / n.M)
	n.F = n.F.Scale(-1.0 / n.M).Add(gravity).Scale(dt)
	n.V = n.V.Add(n.F)

	n.VCol = n.V
	for bi := range borders {
		v, collided := borders[bi].Collide(dt, n.X, n.VCol)
		n.VCol = v
		if collided {
			n.Collisions = append(n.Collisions, bi)
		}
	}

	if useFriction {
		n.VFri = n.VCol
		vPre := n.V
		for _, bi := range n.Collisions {
			n.VFri = borders[bi].Friction(cfri, n.VFri, n.VCol, vPre)
		}
	} else {
		n.VFri = n.VCol
	}
}
