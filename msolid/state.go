// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/la"

// State holds the deformation state at one integration point.
// All fields are recomputed by the assembler at every Gauss point;
// nothing here carries over between points.
type State struct {
	F  [][]float64 // deformation gradient [3][3]
	B  [][]float64 // left Cauchy-Green tensor b = F·Fᵀ [3][3]
	Jf float64     // determinant of F: local volume ratio
}

// NewState allocates a state structure for large deformation analyses
func NewState() *State {
	var state State
	state.F = la.MatAlloc(3, 3)
	state.B = la.MatAlloc(3, 3)
	return &state
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	la.MatCopy(o.F, 1, other.F)
	la.MatCopy(o.B, 1, other.B)
	o.Jf = other.Jf
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState()
	other.Set(o)
	return other
}
