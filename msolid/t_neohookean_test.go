// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_nhcomp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhcomp01. identity deformation gives zero stress")

	var m NeoHookeanComp
	err := m.Init(2, []*dbf.P{
		&dbf.P{N: "mu", V: 1000},
		&dbf.P{N: "lam", V: 2000},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	io.Pforan("mu=%g lam=%g kap=%g\n", m.Mu, m.Lam, m.Kappa)
	chk.Scalar(tst, "kap", 1e-12, m.Kappa, 2000.0+2.0*1000.0/3.0)

	// F = I  =>  b = I, J = 1
	s := NewState()
	for i := 0; i < 3; i++ {
		s.F[i][i] = 1.0
		s.B[i][i] = 1.0
	}
	s.Jf = 1.0

	sig := la.MatAlloc(3, 3)
	err = m.CalcSig(sig, s)
	if err != nil {
		tst.Errorf("CalcSig failed:\n%v", err)
		return
	}
	chk.Matrix(tst, "sig(F=I)", 1e-15, sig, [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	// small-strain limit: D equals the plane-strain linear-elastic matrix
	D := la.MatAlloc(3, 3)
	err = m.CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	mu, lam := m.Mu, m.Lam
	chk.Matrix(tst, "D(J=1)", 1e-12, D, [][]float64{
		{lam + 2*mu, lam, 0},
		{lam, lam + 2*mu, 0},
		{0, 0, mu},
	})
}

func Test_nhcomp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhcomp02. uniform stretch 1.1 in plane strain")

	var m NeoHookeanComp
	err := m.Init(2, []*dbf.P{
		&dbf.P{N: "E", V: 2600},
		&dbf.P{N: "nu", V: 0.3},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "mu", 1e-12, m.Mu, 1000.0)

	// x = 1.1 X in-plane with the plane-strain closure F33 = 1
	s := NewState()
	s.F[0][0], s.F[1][1], s.F[2][2] = 1.1, 1.1, 1.0
	for i := 0; i < 3; i++ {
		s.B[i][i] = s.F[i][i] * s.F[i][i]
	}
	s.Jf = 1.21

	// stress is isotropic in-plane with μ/J scaling
	sig := la.MatAlloc(3, 3)
	err = m.CalcSig(sig, s)
	if err != nil {
		tst.Errorf("CalcSig failed:\n%v", err)
		return
	}
	muJ := m.Mu / 1.21
	io.Pforan("sig = %v\n", sig)
	chk.Scalar(tst, "sig00 == sig11", 1e-14, sig[0][0], sig[1][1])
	chk.Scalar(tst, "sig01", 1e-15, sig[0][1], 0.0)
	if sig[0][0] < muJ*(1.21-1.0) {
		tst.Errorf("in-plane stress %g lost the μ/J·(b−1) part (%g)\n", sig[0][0], muJ*(1.21-1.0))
		return
	}

	// D must be symmetric for any J > 0
	D := la.MatAlloc(3, 3)
	err = m.CalcD(D, s)
	if err != nil {
		tst.Errorf("CalcD failed:\n%v", err)
		return
	}
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			chk.Scalar(tst, io.Sf("D[%d][%d] == D[%d][%d]", i, j, j, i), 1e-15, D[i][j], D[j][i])
		}
	}
}

func Test_nhcomp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhcomp03. degenerate configuration must fail loudly")

	var m NeoHookeanComp
	err := m.Init(3, []*dbf.P{
		&dbf.P{N: "mu", V: 1000},
		&dbf.P{N: "lam", V: 2000},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// collapsed element: J = 0
	s := NewState()
	s.Jf = 0.0
	D := la.MatAlloc(6, 6)
	sig := la.MatAlloc(3, 3)
	if err = m.CalcD(D, s); err == nil {
		tst.Errorf("CalcD must fail with J=0\n")
		return
	}
	io.Pf("CalcD error (expected): %v\n", err)
	if err = m.CalcSig(sig, s); err == nil {
		tst.Errorf("CalcSig must fail with J=0\n")
		return
	}
	io.Pf("CalcSig error (expected): %v\n", err)
}

func Test_nhcomp04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("nhcomp04. model registry")

	mdl, err := New("nh-comp")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if _, ok := mdl.(Large); !ok {
		tst.Errorf("nh-comp must implement the Large interface\n")
		return
	}
	if _, err = New("unknown-model"); err == nil {
		tst.Errorf("New must fail for unknown models\n")
		return
	}
}
