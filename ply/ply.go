// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ply writes ASCII PLY point clouds, one frame per file, in the
// format solver.cpp's WriteToFile produces for external viewers such as
// Houdini (spec.md section 6).
package ply

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/mpm2d/algebra"
)

// WriteFrame writes positions as an ASCII PLY point cloud (x,y,z=0, no
// faces) to dirout/frame_<frame>.ply, mirroring solver.cpp's WriteToFile.
func WriteFrame(dirout string, frame int, positions []algebra.Vector2) {
	var buf bytes.Buffer
	io.Ff(&buf, "ply\n")
	io.Ff(&buf, "format ascii 1.0\n")
	io.Ff(&buf, "element vertex %d\n", len(positions))
	io.Ff(&buf, "property float x\n")
	io.Ff(&buf, "property float y\n")
	io.Ff(&buf, "property float z\n")
	io.Ff(&buf, "element face 0\n")
	io.Ff(&buf, "property list uint int vertex_indices\n")
	io.Ff(&buf, "end_header\n")
	for _, p := range positions {
		io.Ff(&buf, "%g %g 0\n", p.X0, p.X1)
	}
	fn := io.Sf("%s/frame_%d.ply", dirout, frame)
	io.WriteFileV(fn, &buf)
}
