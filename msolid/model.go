// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements constitutive models for solids
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for solid models
type Model interface {
	Init(ndim int, prms dbf.Params) error // initialises model
	GetPrms() dbf.Params                  // gets (an example) of parameters
}

// Large defines models for large deformation (finite strain) analyses.
// Both operations are pure functions of the given deformation state;
// implementations must not cache results between calls.
type Large interface {
	Model
	CalcD(D [][]float64, s *State) error     // computes the material tangent in Voigt notation: 3x3 (2D) or 6x6 (3D)
	CalcSig(sig [][]float64, s *State) error // computes the 3x3 Cauchy stress tensor
}

// New returns a new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
