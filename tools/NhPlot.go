// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"flag"
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/strucmech/nlfem/msolid"
)

// NhPlot plots the uniaxial plane-strain stress-stretch response of the
// compressible Neo-Hookean model:
//   go run NhPlot.go [mu] [lam] [maxStretch] [npts]
func main() {

	// input data
	mu := 1000.0
	lam := 1500.0
	maxStretch := 1.5
	npts := 101

	// parse flags
	flag.Parse()
	if len(flag.Args()) > 0 {
		mu = io.Atof(flag.Arg(0))
	}
	if len(flag.Args()) > 1 {
		lam = io.Atof(flag.Arg(1))
	}
	if len(flag.Args()) > 2 {
		maxStretch = io.Atof(flag.Arg(2))
	}
	if len(flag.Args()) > 3 {
		npts = io.Atoi(flag.Arg(3))
	}

	// print input data
	io.Pf("\nInput data\n")
	io.Pf("==========\n")
	io.Pf("  mu         = %23v // shear modulus\n", mu)
	io.Pf("  lam        = %23v // Lamé constant\n", lam)
	io.Pf("  maxStretch = %23v // maximum stretch\n", maxStretch)
	io.Pf("  npts       = %23v // number of points\n", npts)
	io.Pf("\n")

	// model
	var mdl msolid.NeoHookeanComp
	err := mdl.Init(2, []*dbf.P{
		&dbf.P{N: "mu", V: mu},
		&dbf.P{N: "lam", V: lam},
	})
	if err != nil {
		io.PfRed("model initialisation failed:\n%v\n", err)
		return
	}

	// uniaxial stretch along x with lateral stretch one: F = diag(λ, 1, 1)
	sig := [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	state := msolid.NewState()
	stretch := utl.LinSpace(0.5, maxStretch, npts)
	sxx := make([]float64, npts)
	syy := make([]float64, npts)
	for i, l := range stretch {
		state.F[0][0] = l
		state.F[1][1] = 1
		state.F[2][2] = 1
		state.Jf = l
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				state.B[r][c] = 0
				for k := 0; k < 3; k++ {
					state.B[r][c] += state.F[r][k] * state.F[c][k]
				}
			}
		}
		if err = mdl.CalcSig(sig, state); err != nil {
			io.PfRed("stress computation failed at λ=%v:\n%v\n", l, err)
			return
		}
		sxx[i] = sig[0][0]
		syy[i] = sig[1][1]
	}

	// check incompressibility trend: σxx−σyy = μ(λ²−1)/λ
	dev := make([]float64, npts)
	for i, l := range stretch {
		dev[i] = mu * (l*l - 1.0) / l
	}
	maxdiff := 0.0
	for i := range stretch {
		maxdiff = math.Max(maxdiff, math.Abs(sxx[i]-syy[i]-dev[i]))
	}
	io.Pf("max |σxx−σyy − μ(λ²−1)/λ| = %v\n", maxdiff)

	// plot
	plt.Plot(stretch, sxx, "'b-', label='$\\sigma_{xx}$', clip_on=0")
	plt.Plot(stretch, syy, "'c-', label='$\\sigma_{yy}$', clip_on=0")
	plt.Cross()
	plt.Gll("$\\lambda$", "$\\sigma$ (Cauchy)", "")
	plt.Show()
}
