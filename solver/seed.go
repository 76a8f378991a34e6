// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solver

import (
	"math"
	"math/rand"

	"github.com/cpmech/mpm2d/algebra"
	"github.com/cpmech/mpm2d/config"
	"github.com/cpmech/mpm2d/mat"
)

// jitteredSquare scatters n points approximately uniformly over
// [0,1]x[0,1] on a jittered regular sub-grid, used in place of the
// source's Poisson-disk sampler (out of scope per spec.md section 1;
// only the resulting placement regions and counts are in scope, see
// SPEC_FULL.md section 4). The number of points returned is the square
// closest to n that divides evenly into rows/columns, not exactly n.
func jitteredSquare(rng *rand.Rand, n int) []algebra.Vector2 {
	side := int(math.Round(math.Sqrt(float64(n))))
	if side < 1 {
		side = 1
	}
	cell := 1.0 / float64(side)
	points := make([]algebra.Vector2, 0, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			jx := (float64(x) + rng.Float64()) * cell
			jy := (float64(y) + rng.Float64()) * cell
			points = append(points, algebra.NewVector2(jx, jy))
		}
	}
	return points
}

// jitteredDisk scatters points over the unit disk by rejection sampling
// a jittered square, for the same reason as jitteredSquare.
func jitteredDisk(rng *rand.Rand, n int) []algebra.Vector2 {
	candidates := jitteredSquare(rng, int(4.0/math.Pi*float64(n))+1)
	points := make([]algebra.Vector2, 0, n)
	for _, c := range candidates {
		x, y := 2*c.X0-1, 2*c.X1-1
		if x*x+y*y <= 1 {
			points = append(points, algebra.NewVector2(x, y))
		}
	}
	if len(points) == 0 {
		points = append(points, algebra.Vector2{})
	}
	return points
}

// SeedWaterJet builds one injection batch of 8 Water particles at the
// jet nozzle, mirroring particle.h's Water::AddParticles() placement
// formula `(CUB, Y_GRID - 2*CUB - 0.5*p - r)`.
func SeedWaterJet(cfg config.Config, rng *rand.Rand) []*mat.Water {
	v := algebra.NewVector2(30, 0)
	out := make([]*mat.Water, 0, 8)
	for p := 0; p < 8; p++ {
		r := rng.Float64()
		pos := algebra.NewVector2(cfg.CUB, float64(cfg.YGrid)-2*cfg.CUB-0.5*float64(p)-r)
		out = append(out, mat.NewWater(1.14, 0.0005, pos, v, cfg.WaterParams))
	}
	return out
}

// SeedDrySandColumn places n DrySand particles in a rectangular column
// (particle.h's DrySand::InitializeParticles geometry): width
// X_GRID/8, height 0.9*(Y_GRID-2*CUB), resting on the bottom wall.
func SeedDrySandColumn(cfg config.Config, rng *rand.Rand, n int) []*mat.DrySand {
	wCol := float64(cfg.XGrid) / 8.0
	hCol := (float64(cfg.YGrid) - 2*cfg.CUB) * 0.9
	xCol := (float64(cfg.XGrid) - wCol) / 2.0
	yCol := cfg.CUB

	points := jitteredSquare(rng, n)
	vol := wCol * hCol / float64(len(points))
	mass := vol * cfg.DrySandParams.Rho / 100.0

	out := make([]*mat.DrySand, 0, len(points))
	for _, pc := range points {
		pos := algebra.NewVector2(pc.X0*wCol+xCol, pc.X1*hCol+yCol)
		out = append(out, mat.NewDrySand(vol, mass, pos, algebra.Vector2{}, cfg.DrySandParams))
	}
	return out
}

// SeedSnowballs places two counter-moving snowballs (particle.h's
// Snow::InitializeParticles geometry): radius 0.33*min(X_GRID,Y_GRID),
// one launched rightward from the upper-left (centre 0.3*X_GRID,
// 0.55*Y_GRID), one leftward from the lower-right (centre 0.7*X_GRID,
// 0.45*Y_GRID).
func SeedSnowballs(cfg config.Config, rng *rand.Rand, n int) []*mat.Snow {
	xg, yg := float64(cfg.XGrid), float64(cfg.YGrid)
	rBall := math.Min(xg, yg) * 0.33
	xBall := xg * 0.3
	yBall := yg * 0.45

	points := jitteredDisk(rng, n)
	vol := 2 * math.Pi * rBall * rBall / float64(len(points))
	mass := vol * cfg.SnowParams.Rho / 100.0
	v := algebra.NewVector2(40, 0)

	out := make([]*mat.Snow, 0, 2*len(points))
	for _, pc := range points {
		pos := algebra.NewVector2(pc.X0*rBall+xBall, pc.X1*rBall+yg-yBall)
		out = append(out, mat.NewSnow(vol, mass, pos, v, cfg.SnowParams))
	}
	for _, pc := range points {
		pos := algebra.NewVector2(pc.X0*rBall+xg-xBall, pc.X1*rBall+yBall)
		out = append(out, mat.NewSnow(vol, mass, pos, v.Neg(), cfg.SnowParams))
	}
	return out
}

// elasticCubeVariant describes one of the three stiffness/placement
// variants in particle.h's Elastic::InitializeParticles.
type elasticCubeVariant struct {
	xFrac, yFrac float64
	stiffness    float64
}

var elasticCubeVariants = []elasticCubeVariant{
	{xFrac: 0.1, yFrac: 1.0 / 3.0, stiffness: 0.1},
	{xFrac: 0.325, yFrac: 0.5, stiffness: 1.0},
	{xFrac: 0.55, yFrac: 2.0 / 3.0, stiffness: 100.0},
}

// SeedElasticCubes places three square point clouds with increasing
// stiffness (0.1x, 1x, 100x the base Lame parameters), reproducing
// particle.h's three-cube demo scenario exactly (deterministic, no
// sampling involved in the source).
func SeedElasticCubes(cfg config.Config) []*mat.Elastic {
	xg, yg := float64(cfg.XGrid), float64(cfg.YGrid)
	side := math.Max(xg, yg) / 8.0

	var positions []algebra.Vector2
	for i := 0.0; i < side; i++ {
		for j := 0.0; j < side; j++ {
			positions = append(positions, algebra.NewVector2(i, j))
		}
	}

	vol := math.Max(xg, yg) * math.Max(xg, yg) / 16.0
	mass := vol * cfg.ElasticParams.Rho / 100.0
	v := algebra.NewVector2(30, 0)

	out := make([]*mat.Elastic, 0, len(positions)*len(elasticCubeVariants))
	for _, variant := range elasticCubeVariants {
		for _, pc := range positions {
			pos := algebra.NewVector2(pc.X0+xg*variant.xFrac, pc.X1+yg*variant.yFrac)
			e := mat.NewElastic(vol, mass, pos, v, cfg.ElasticParams)
			e.Lambda = cfg.ElasticParams.Lambda * variant.stiffness
			e.Mu = cfg.ElasticParams.Mu * variant.stiffness
			out = append(out, e)
		}
	}
	return out
}
