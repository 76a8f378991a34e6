// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mpm2d/algebra"
)

func Test_ply01_writeFrame(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ply01: WriteFrame emits a well-formed ASCII PLY header and one line per vertex")

	dir := tst.TempDir()
	positions := []algebra.Vector2{
		algebra.NewVector2(1, 2),
		algebra.NewVector2(3.5, -4.25),
		algebra.NewVector2(0, 0),
	}

	WriteFrame(dir, 7, positions)

	data, err := os.ReadFile(filepath.Join(dir, "frame_7.ply"))
	if err != nil {
		tst.Fatalf("could not read written file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	chk.IntAssert(len(lines), 9+len(positions))
	if lines[0] != "ply" {
		tst.Errorf("expected first line 'ply', got %q", lines[0])
	}
	if lines[2] != "element vertex 3" {
		tst.Errorf("expected vertex count line, got %q", lines[2])
	}
	if lines[8] != "end_header" {
		tst.Errorf("expected end_header, got %q", lines[8])
	}
	if lines[9] != "1 2 0" {
		tst.Errorf("expected first vertex line '1 2 0', got %q", lines[9])
	}
}

func Test_ply02_emptyFrame(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ply02: WriteFrame handles zero particles without writing any vertex lines")

	dir := tst.TempDir()
	WriteFrame(dir, 0, nil)

	data, err := os.ReadFile(filepath.Join(dir, "frame_0.ply"))
	if err != nil {
		tst.Fatalf("could not read written file: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	chk.IntAssert(len(lines), 9)
	if lines[2] != "element vertex 0" {
		tst.Errorf("expected zero vertex count, got %q", lines[2])
	}
}
