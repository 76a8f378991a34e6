// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config defines the simulation configuration recognised by the
// solver (spec.md section 6) and validates it at construction time
// (spec.md section 7: "Configuration errors... reject at construction").
package config

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/mpm2d/algebra"
)

// Material selects the constitutive model used by every particle in a
// simulation (spec.md's "Material polymorphism": one tagged variant
// chosen per simulation).
type Material int

const (
	// Water is the weakly-compressible fluid model.
	Water Material = iota
	// DrySand is the Drucker-Prager granular model.
	DrySand
	// Snow is the fixed-threshold-hardening snow model.
	Snow
	// Elastic is the neo-Hookean-flavoured corotated elastic model.
	Elastic
)

// String implements fmt.Stringer.
func (m Material) String() string {
	switch m {
	case Water:
		return "Water"
	case DrySand:
		return "DrySand"
	case Snow:
		return "Snow"
	case Elastic:
		return "Elastic"
	default:
		return "unknown"
	}
}

// ParseMaterial converts a configuration string into a Material.
func ParseMaterial(name string) (Material, error) {
	switch name {
	case "Water":
		return Water, nil
	case "DrySand":
		return DrySand, nil
	case "Snow":
		return Snow, nil
	case "Elastic":
		return Elastic, nil
	default:
		return Water, chk.Err("config: material named %q is not available", name)
	}
}

// WaterParams holds K_water/GAMMA_water (spec.md section 4.4 Water).
type WaterParams struct {
	Rho   float64 // density
	K     float64 // bulk modulus
	Gamma float64 // EOS exponent
}

// DrySandParams holds the Drucker-Prager/hardening constants (spec.md
// section 4.4 DrySand).
type DrySandParams struct {
	Rho          float64 // density
	E, V         float64 // Young's modulus, Poisson's ratio
	Lambda, Mu   float64 // Lame parameters, derived from E,V
	H0, H1, H2, H3 float64 // hardening parameters
}

// SnowParams holds the snow constants (spec.md section 4.4 Snow).
type SnowParams struct {
	Rho       float64
	E, V      float64
	Lambda, Mu float64
	ThetaC    float64 // critical compression
	ThetaS    float64 // critical stretch
	Xi        float64 // hardening coefficient
}

// ElasticParams holds the per-particle fixed Lame parameters for the
// Elastic material. spec.md's original_source omits these constants
// (see SPEC_FULL.md section 4); DefaultElasticParams documents the
// resolved values.
type ElasticParams struct {
	Rho        float64
	E, V       float64
	Lambda, Mu float64
}

// LameFromEV derives (lambda, mu) from Young's modulus E and Poisson's
// ratio V, the formula used throughout original_source/MPM2D/src/constants.h
// for dry sand and snow.
func LameFromEV(e, v float64) (lambda, mu float64) {
	lambda = e * v / (1.0 + v) / (1.0 - 2.0*v)
	mu = e / (1.0 + v) / 2.0
	return
}

// DefaultWaterParams mirrors RHO_water/K_water/GAMMA_water.
func DefaultWaterParams() WaterParams {
	return WaterParams{Rho: 1.0, K: 50.0, Gamma: 3.0}
}

// DefaultDrySandParams mirrors RHO_dry_sand/E_dry_sand/V_dry_sand/H0..H3.
func DefaultDrySandParams() DrySandParams {
	const pi = 3.1415927
	lam, mu := LameFromEV(3.537e5, 0.3)
	return DrySandParams{
		Rho: 1600.0, E: 3.537e5, V: 0.3, Lambda: lam, Mu: mu,
		H0: 35 * pi / 180.0, H1: 9 * pi / 180.0, H2: 0.2, H3: 10 * pi / 180.0,
	}
}

// DefaultSnowParams mirrors RHO_snow/E_snow/V_snow/THT_C_snow/THT_S_snow/KSI_snow.
func DefaultSnowParams() SnowParams {
	lam, mu := LameFromEV(1.4e5, 0.2)
	return SnowParams{
		Rho: 4.0e2, E: 1.4e5, V: 0.2, Lambda: lam, Mu: mu,
		ThetaC: 2.0e-2, ThetaS: 6.0e-3, Xi: 10,
	}
}

// DefaultElasticParams resolves the Open Question in SPEC_FULL.md section 4:
// original_source truncates RHO_elastic/E_elastic/V_elastic. The density
// sits between the snow and dry-sand densities used elsewhere in the
// source; the Young's modulus (5e4) is softer than both snow (1.4e5) and
// dry sand (3.537e5).
func DefaultElasticParams() ElasticParams {
	lam, mu := LameFromEV(5.0e4, 0.2)
	return ElasticParams{Rho: 1.0e3, E: 5.0e4, V: 0.2, Lambda: lam, Mu: mu}
}

// Config holds every option the solver recognises (spec.md section 6).
type Config struct {
	// Grid
	XGrid, YGrid int     // domain extents in cells
	HInv         float64 // inverse cell size

	// Transfer
	DT            float64 // time step
	Interpolation string  // "Cubic" or "Quadratic"

	// Material
	Material Material
	Friction bool // spec.md Open Question (b): friction is per-simulation, not per-material
	G        algebra.Vector2
	CFRI     float64 // Coulomb friction coefficient
	CUB      float64 // inset of walls from grid edges
	DTRob    int     // ticks between particle injections
	MaxParts int     // cap on total particle count (3000 in the source)

	WaterParams   WaterParams
	DrySandParams DrySandParams
	SnowParams    SnowParams
	ElasticParams ElasticParams
}

// Default returns a Config with the source's default values
// (original_source/MPM2D/ext/Eigen/.../constants.h: 128x32 grid, DT=1e-3).
func Default() Config {
	return Config{
		XGrid: 128, YGrid: 32, HInv: 1.0,
		DT:            1.0e-3,
		Interpolation: "Cubic",
		Material:      Water,
		Friction:      false,
		G:             algebra.NewVector2(0, -9.81),
		CFRI:          0.3,
		CUB:           2,
		DTRob:         30,
		MaxParts:      3000,
		WaterParams:   DefaultWaterParams(),
		DrySandParams: DefaultDrySandParams(),
		SnowParams:    DefaultSnowParams(),
		ElasticParams: DefaultElasticParams(),
	}
}

// Validate rejects configurations the solver cannot safely run
// (spec.md section 7: "Configuration errors... reject at construction").
func (c Config) Validate() error {
	if c.DT <= 0 {
		return chk.Err("config: DT must be positive, got %v", c.DT)
	}
	if c.XGrid < 1 || c.YGrid < 1 {
		return chk.Err("config: XGrid and YGrid must be >= 1, got (%d,%d)", c.XGrid, c.YGrid)
	}
	if c.HInv <= 0 {
		return chk.Err("config: HInv must be positive, got %v", c.HInv)
	}
	if c.CUB < 0 {
		return chk.Err("config: CUB must be non-negative, got %v", c.CUB)
	}
	minDim := float64(c.XGrid)
	if float64(c.YGrid) < minDim {
		minDim = float64(c.YGrid)
	}
	if 2*c.CUB >= minDim {
		return chk.Err("config: CUB=%v leaves no interior domain for a %dx%d grid", c.CUB, c.XGrid, c.YGrid)
	}
	if _, err := ParseMaterial(c.Material.String()); err != nil {
		return err
	}
	if c.Interpolation != "Cubic" && c.Interpolation != "Quadratic" {
		return chk.Err("config: interpolation named %q is not available", c.Interpolation)
	}
	switch c.Material {
	case Water:
		if c.WaterParams.Rho <= 0 || c.WaterParams.K <= 0 {
			return chk.Err("config: water parameters must be positive (rho=%v, K=%v)", c.WaterParams.Rho, c.WaterParams.K)
		}
	case DrySand:
		if c.DrySandParams.Rho <= 0 || c.DrySandParams.E <= 0 {
			return chk.Err("config: dry-sand parameters must be positive (rho=%v, E=%v)", c.DrySandParams.Rho, c.DrySandParams.E)
		}
	case Snow:
		if c.SnowParams.Rho <= 0 || c.SnowParams.E <= 0 {
			return chk.Err("config: snow parameters must be positive (rho=%v, E=%v)", c.SnowParams.Rho, c.SnowParams.E)
		}
	case Elastic:
		if c.ElasticParams.Rho <= 0 || c.ElasticParams.E <= 0 {
			return chk.Err("config: elastic parameters must be positive (rho=%v, E=%v)", c.ElasticParams.Rho, c.ElasticParams.E)
		}
	}
	if c.CFRI < 0 {
		return chk.Err("config: CFRI must be non-negative, got %v", c.CFRI)
	}
	if c.DTRob < 1 {
		return chk.Err("config: DTRob must be >= 1, got %d", c.DTRob)
	}
	return nil
}

// WaterPrms / DrySandPrms / SnowPrms / ElasticPrms expose the default
// material parameters as fun.Prms, in the teacher's mdl/solid.GetPrms()
// idiom, so callers can parse/override them the way gofem parses .sim
// material blocks. ApplyPrms on each Params type is the Init-from-Prms
// counterpart (mdl/solid/elasticity.go's SmallElasticity.Init loop);
// mat.Driver.Init consumes both, so a Driver can be built against
// non-default parameters without a bespoke constructor per material.
func WaterPrms() fun.Prms {
	p := DefaultWaterParams()
	return fun.Prms{
		&fun.Prm{N: "rho", V: p.Rho},
		&fun.Prm{N: "K", V: p.K},
		&fun.Prm{N: "gamma", V: p.Gamma},
	}
}

// ApplyPrms overrides named fields from prms; unrecognised names are
// ignored, mirroring elasticity.go's switch-over-p.N loop.
func (p *WaterParams) ApplyPrms(prms fun.Prms) {
	for _, prm := range prms {
		switch prm.N {
		case "rho":
			p.Rho = prm.V
		case "K":
			p.K = prm.V
		case "gamma":
			p.Gamma = prm.V
		}
	}
}

func DrySandPrms() fun.Prms {
	p := DefaultDrySandParams()
	return fun.Prms{
		&fun.Prm{N: "rho", V: p.Rho},
		&fun.Prm{N: "E", V: p.E},
		&fun.Prm{N: "nu", V: p.V},
		&fun.Prm{N: "H0", V: p.H0},
		&fun.Prm{N: "H1", V: p.H1},
		&fun.Prm{N: "H2", V: p.H2},
		&fun.Prm{N: "H3", V: p.H3},
	}
}

// ApplyPrms overrides named fields from prms and recomputes the derived
// Lame parameters from E/nu, as LameFromEV does at construction.
func (p *DrySandParams) ApplyPrms(prms fun.Prms) {
	for _, prm := range prms {
		switch prm.N {
		case "rho":
			p.Rho = prm.V
		case "E":
			p.E = prm.V
		case "nu":
			p.V = prm.V
		case "H0":
			p.H0 = prm.V
		case "H1":
			p.H1 = prm.V
		case "H2":
			p.H2 = prm.V
		case "H3":
			p.H3 = prm.V
		}
	}
	p.Lambda, p.Mu = LameFromEV(p.E, p.V)
}

func SnowPrms() fun.Prms {
	p := DefaultSnowParams()
	return fun.Prms{
		&fun.Prm{N: "rho", V: p.Rho},
		&fun.Prm{N: "E", V: p.E},
		&fun.Prm{N: "nu", V: p.V},
		&fun.Prm{N: "ThetaC", V: p.ThetaC},
		&fun.Prm{N: "ThetaS", V: p.ThetaS},
		&fun.Prm{N: "Xi", V: p.Xi},
	}
}

// ApplyPrms overrides named fields from prms and recomputes the derived
// Lame parameters from E/nu.
func (p *SnowParams) ApplyPrms(prms fun.Prms) {
	for _, prm := range prms {
		switch prm.N {
		case "rho":
			p.Rho = prm.V
		case "E":
			p.E = prm.V
		case "nu":
			p.V = prm.V
		case "ThetaC":
			p.ThetaC = prm.V
		case "ThetaS":
			p.ThetaS = prm.V
		case "Xi":
			p.Xi = prm.V
		}
	}
	p.Lambda, p.Mu = LameFromEV(p.E, p.V)
}

func ElasticPrms() fun.Prms {
	p := DefaultElasticParams()
	return fun.Prms{
		&fun.Prm{N: "rho", V: p.Rho},
		&fun.Prm{N: "E", V: p.E},
		&fun.Prm{N: "nu", V: p.V},
	}
}

// ApplyPrms overrides named fields from prms and recomputes the derived
// Lame parameters from E/nu.
func (p *ElasticParams) ApplyPrms(prms fun.Prms) {
	for _, prm := range prms {
		switch prm.N {
		case "rho":
			p.Rho = prm.V
		case "E":
			p.E = prm.V
		case "nu":
			p.V = prm.V
		}
	}
	p.Lambda, p.Mu = LameFromEV(p.E, p.V)
}
