// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"github.com/cpmech/gosl/la"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type      string      // name; e.g. "qua4"
	Func      ShpFunc     // shape/derivs function callback function
	Gndim     int         // geometry dimension; e.g. "qua4" => 2
	Nverts    int         // number of vertices in cell; e.g. "hex8" => 8
	NatCoords [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdR
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)
}

// newShape allocates a shape structure including its scratchpad
func newShape(geoType string, gndim, nverts int, fcn ShpFunc, natCoords [][]float64) *Shape {
	var o Shape
	o.Type = geoType
	o.Func = fcn
	o.Gndim = gndim
	o.Nverts = nverts
	o.NatCoords = natCoords
	o.S = make([]float64, nverts)
	o.G = la.MatAlloc(nverts, gndim)
	o.DSdR = la.MatAlloc(nverts, gndim)
	o.DxdR = la.MatAlloc(gndim, gndim)
	o.DRdx = la.MatAlloc(gndim, gndim)
	return &o
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := newShape(o.Type, o.Gndim, o.Nverts, o.Func, o.NatCoords)
	copy(p.S, o.S)
	la.MatCopy(p.G, 1, o.G)
	p.J = o.J
	la.MatCopy(p.DSdR, 1, o.DSdR)
	la.MatCopy(p.DxdR, 1, o.DxdR)
	la.MatCopy(p.DRdx, 1, o.DRdx)
	return p
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns an existent Shape structure
//  Note: 1) returns nil on errors
//        2) use goroutineId > 0 to get a copy
func Get(geoType string, goroutineId int) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	if goroutineId > 0 {
		return s.GetCopy()
	}
	return s
}

// CalcAtIp calculates volume data such as S and G at integration point ip
//  Input:
//   x[gndim][nverts] -- coordinates matrix of solid element
//   ip               -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs)
	if !derivs {
		return
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = la.MatInv(o.DRdx, o.DxdR, MINDET)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dx_j := sum_i dS^m/dR_i * dR_i/dx_j
	la.MatMul(o.G, 1, o.DSdR, o.DRdx)
	return
}

// CalcAtR calculates volume data such as S and G at natural coordinate r
func (o *Shape) CalcAtR(x [][]float64, R []float64, derivs bool) (err error) {
	return o.CalcAtIp(x, R, derivs)
}
