// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// NeoHookeanComp implements the compressible Neo-Hookean hyperelastic model:
//
//   σ = (μ/J)·(b − I) + (λ/J)·ln(J)·I
//
// with the spatial tangent, in Voigt notation:
//
//   normal block:  Λ' + 2μ' on the diagonal, Λ' off-diagonal
//   shear block:   μ' on the diagonal, zero cross terms
//
// where μ' = (μ − λ·ln J)/J and Λ' = λ/J.
// Voigt ordering: 2D => (xx, yy, xy); 3D => (xx, yy, zz, xy, xz, yz).
type NeoHookeanComp struct {

	// constants
	Ndim int // space dimension
	Bdim int // number of Voigt components: 3 (2D) or 6 (3D)

	// parameters
	Mu    float64 // μ: shear modulus
	Lam   float64 // λ: Lamé parameter
	Kappa float64 // κ: bulk modulus (for the mean-dilatation term)
	Rho   float64 // ρ: density
}

// add model to factory
func init() {
	allocators["nh-comp"] = func() Model { return new(NeoHookeanComp) }
}

// Init initialises model
func (o *NeoHookeanComp) Init(ndim int, prms dbf.Params) (err error) {

	// constants
	if ndim < 2 || ndim > 3 {
		return chk.Err("nh-comp: ndim=%d is invalid; must be 2 or 3", ndim)
	}
	o.Ndim = ndim
	o.Bdim = 3
	if ndim == 3 {
		o.Bdim = 6
	}

	// parameters
	var E, nu float64
	var hasE, hasNu bool
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "lam":
			o.Lam = p.V
		case "E":
			E = p.V
			hasE = true
		case "nu":
			nu = p.V
			hasNu = true
		case "kap":
			o.Kappa = p.V
		case "rho":
			o.Rho = p.V
		}
	}

	// derived: engineering constants take precedence when both are given
	if hasE && hasNu {
		o.Mu = E / (2.0 * (1.0 + nu))
		o.Lam = E * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
	}
	if o.Kappa == 0 {
		o.Kappa = o.Lam + 2.0*o.Mu/3.0
	}
	if o.Mu <= 0 {
		return chk.Err("nh-comp: shear modulus must be positive; got mu=%g", o.Mu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o NeoHookeanComp) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 5000},
		&dbf.P{N: "nu", V: 0.35},
		&dbf.P{N: "rho", V: 7850},
	}
}

// CalcD computes the material tangent operator for the current deformation state.
// D must be pre-allocated with [Bdim][Bdim].
func (o *NeoHookeanComp) CalcD(D [][]float64, s *State) (err error) {

	// degenerate configuration
	if s.Jf <= 0 {
		return chk.Err("nh-comp: degenerate configuration: J=%g", s.Jf)
	}

	// effective coefficients
	muP := (o.Mu - o.Lam*math.Log(s.Jf)) / s.Jf
	lamP := o.Lam / s.Jf

	// isotropic block: normal components first, then shear components
	nnorm := 2
	if o.Ndim == 3 {
		nnorm = 3
	}
	for i := 0; i < o.Bdim; i++ {
		for j := 0; j < o.Bdim; j++ {
			D[i][j] = 0.0
		}
	}
	for i := 0; i < nnorm; i++ {
		for j := 0; j < nnorm; j++ {
			if i == j {
				D[i][j] = lamP + 2.0*muP
			} else {
				D[i][j] = lamP
			}
		}
	}
	for i := nnorm; i < o.Bdim; i++ {
		D[i][i] = muP
	}
	return
}

// CalcSig computes the 3x3 Cauchy stress tensor for the current deformation state.
// sig must be pre-allocated with [3][3].
func (o *NeoHookeanComp) CalcSig(sig [][]float64, s *State) (err error) {

	// degenerate configuration
	if s.Jf <= 0 {
		return chk.Err("nh-comp: degenerate configuration: J=%g", s.Jf)
	}

	// σ = (μ/J)·(b − I) + (λ/J)·ln(J)·I
	muJ := o.Mu / s.Jf
	lamJ := o.Lam / s.Jf
	lnJ := math.Log(s.Jf)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dij := 0.0
			if i == j {
				dij = 1.0
			}
			sig[i][j] = muJ*(s.B[i][j]-dij) + lamJ*lnJ*dij
		}
	}
	return
}
