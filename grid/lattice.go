// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "github.com/cpmech/mpm2d/algebra"

// Lattice is the dense (XGrid+1)x(YGrid+1) background node array plus
// the domain's boundary walls (spec.md section 3 "Node" and section 6
// "Boundaries").
type Lattice struct {
	XGrid, YGrid int
	HInv         float64
	Nodes        []Node
	Borders      []Border
}

// NewLattice builds the node array at integer positions scaled by the
// cell size h=1/HInv, and the four Separating walls inset by cub from
// the grid edges (spec.md section 6).
func NewLattice(xGrid, yGrid int, hInv, cub float64) *Lattice {
	l := &Lattice{XGrid: xGrid, YGrid: yGrid, HInv: hInv}

	l.Nodes = make([]Node, (xGrid+1)*(yGrid+1))
	h := 1.0 / hInv
	for y := 0; y <= yGrid; y++ {
		for x := 0; x <= xGrid; x++ {
			l.Nodes[l.Index(x, y)].X = algebra.NewVector2(float64(x)*h, float64(y)*h)
		}
	}

	fx, fy := float64(xGrid), float64(yGrid)
	l.Borders = []Border{
		NewBorder(Separating, algebra.NewVector2(1, 0), algebra.NewVector2(cub, cub)),
		NewBorder(Separating, algebra.NewVector2(-1, 0), algebra.NewVector2(fx-cub, fy-cub)),
		NewBorder(Separating, algebra.NewVector2(0, 1), algebra.NewVector2(cub, cub)),
		NewBorder(Separating, algebra.NewVector2(0, -1), algebra.NewVector2(fx-cub, fy-cub)),
	}
	return l
}

// Index returns the flat index of node (x,y), matching the source's
// row-major "(X_GRID+1)*y + x" addressing.
func (l *Lattice) Index(x, y int) int {
	return (l.XGrid+1)*y + x
}

// InBounds reports whether (x,y) is a valid node coordinate.
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x <= l.XGrid && y >= 0 && y <= l.YGrid
}
