// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element assembly of finite-strain
// nonlinear elasticity: element data providers, the tangent-matrix
// assembler, the mean-dilatation corrector and a static Newton solver
package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/strucmech/nlfem/shp"
)

// Element is the narrow interface between the tangent-matrix assembler and
// the element data provider. Gradients and Jacobians are exposed for two
// quadrature rules: the full rule (constitutive and stress terms) and the
// reduced rule (pressure/mean-dilatation term).
type Element interface {

	// information
	Nverts() int // number of vertices
	Ndim() int   // space dimension
	Nip() int    // number of integration points of the full rule
	NipP() int   // number of integration points of the reduced (pressure) rule

	// initialisation (per call)
	Clear()           // zeroes the stiffness and force accumulators
	ClearFi()         // zeroes the internal force accumulator only
	CalcGrads() error // computes gradients/Jacobians at all integration points

	// full rule data
	Weight(idx int) float64           // quadrature weight
	JacX(idx int) float64             // reference configuration Jacobian
	Jacx(idx int) float64             // current configuration Jacobian
	GradX(m, idx, i int) float64      // reference config gradient dNm/dX_i
	Gradx(m, idx, i int) float64      // current config gradient dNm/dx_i

	// reduced rule data
	WeightP(idx int) float64          // quadrature weight
	JacXP(idx int) float64            // reference configuration Jacobian
	JacxP(idx int) float64            // current configuration Jacobian
	GradxP(m, idx, i int) float64     // current config gradient dNm/dx_i

	// coordinates
	CurrCoord(m, i int) float64 // current coordinate of vertex m

	// accumulators
	AddKab(kab [][]float64, a, b int)  // adds material stiffness block to pair (a,b)
	AddKabT(kab [][]float64, b, a int) // adds transposed material stiffness block to pair (b,a)
	AddKs(ks float64, a, b int)        // adds geometric stiffness scalar to the diagonal of block (a,b)
	SetKk(kk [][]float64, a, b int)    // overwrites the pressure stiffness block of pair (a,b)
	AddFi(val float64, m, i int)       // adds internal force component i of vertex m
}

// ElemSolid is a solid element data provider backed by a shape structure.
// Each instance owns a private shape copy and private accumulators, hence
// distinct elements can be processed concurrently.
type ElemSolid struct {

	// basic data
	Id   int         // element id
	X    [][]float64 // reference coordinates [ndim][nverts]
	Xc   [][]float64 // current coordinates [ndim][nverts]
	Shp  *shp.Shape  // shape structure (private copy)
	Umap []int       // global equation numbers [nu]

	// integration points
	IpsElem []shp.Ipoint // full rule
	IpsP    []shp.Ipoint // reduced rule for the pressure term

	// dimensions
	ndim   int
	nverts int
	nu     int // ndim * nverts

	// gradient/Jacobian caches. computed by CalcGrads
	gradX  [][][]float64 // [nip][nverts][ndim] reference config, full rule
	gradx  [][][]float64 // [nip][nverts][ndim] current config, full rule
	jacX   []float64     // [nip] reference Jacobians, full rule
	jacx   []float64     // [nip] current Jacobians, full rule
	gradxP [][][]float64 // [nipP][nverts][ndim] current config, reduced rule
	jacXP  []float64     // [nipP]
	jacxP  []float64     // [nipP]

	// accumulators
	Kt [][]float64 // [nu][nu] material + geometric tangent stiffness
	Kk [][]float64 // [nu][nu] pressure (mean dilatation) stiffness
	Fi []float64   // [nu] internal forces
}

// NewElemSolid returns a new solid element
//  nip  -- number of integration points of the full rule; 0 => default
//  nipP -- number of integration points of the pressure rule; 0 => reduced rule
func NewElemSolid(id, ndim int, cellType string, x [][]float64, nip, nipP int) (o *ElemSolid, err error) {

	// configuration-time invariants
	if ndim < 2 || ndim > 3 {
		return nil, chk.Err("elemsolid: ndim=%d is invalid; must be 2 or 3", ndim)
	}
	nvertsMax := 4
	if ndim == 3 {
		nvertsMax = 8
	}

	// basic data. goroutineId > 0 forces a private shape copy
	o = new(ElemSolid)
	o.Id = id
	o.Shp = shp.Get(cellType, id+1)
	if o.Shp == nil {
		return nil, chk.Err("elemsolid: cannot get shape structure for %q", cellType)
	}
	if o.Shp.Gndim != ndim {
		return nil, chk.Err("elemsolid: shape %q has gndim=%d; simulation has ndim=%d", cellType, o.Shp.Gndim, ndim)
	}
	o.ndim = ndim
	o.nverts = o.Shp.Nverts
	if o.nverts > nvertsMax {
		return nil, chk.Err("elemsolid: nverts=%d exceeds the %dD maximum (%d)", o.nverts, ndim, nvertsMax)
	}
	if len(x) != ndim || len(x[0]) != o.nverts {
		return nil, chk.Err("elemsolid: coordinates matrix must be [%d][%d]", ndim, o.nverts)
	}
	o.nu = o.ndim * o.nverts
	o.X = la.MatClone(x)
	o.Xc = la.MatClone(x)

	// integration points
	o.IpsElem, err = shp.GetIps(cellType, nip)
	if err != nil {
		return nil, err
	}
	if nipP == 0 {
		o.IpsP, err = shp.GetIpsReduced(cellType)
	} else {
		o.IpsP, err = shp.GetIps(cellType, nipP)
	}
	if err != nil {
		return nil, err
	}

	// caches
	nipe, nipp := len(o.IpsElem), len(o.IpsP)
	o.gradX = make([][][]float64, nipe)
	o.gradx = make([][][]float64, nipe)
	for idx := 0; idx < nipe; idx++ {
		o.gradX[idx] = la.MatAlloc(o.nverts, o.ndim)
		o.gradx[idx] = la.MatAlloc(o.nverts, o.ndim)
	}
	o.jacX = make([]float64, nipe)
	o.jacx = make([]float64, nipe)
	o.gradxP = make([][][]float64, nipp)
	for idx := 0; idx < nipp; idx++ {
		o.gradxP[idx] = la.MatAlloc(o.nverts, o.ndim)
	}
	o.jacXP = make([]float64, nipp)
	o.jacxP = make([]float64, nipp)

	// accumulators
	o.Kt = la.MatAlloc(o.nu, o.nu)
	o.Kk = la.MatAlloc(o.nu, o.nu)
	o.Fi = make([]float64, o.nu)
	return
}

// SetUmap sets the global equation numbers of this element's dofs
func (o *ElemSolid) SetUmap(eqs []int) (err error) {
	if len(eqs) != o.nu {
		return chk.Err("elemsolid: umap must have %d entries; got %d", o.nu, len(eqs))
	}
	o.Umap = make([]int, o.nu)
	copy(o.Umap, eqs)
	return
}

// SetDisp updates the current coordinates from a global displacement vector
func (o *ElemSolid) SetDisp(u []float64) {
	for m := 0; m < o.nverts; m++ {
		for i := 0; i < o.ndim; i++ {
			o.Xc[i][m] = o.X[i][m] + u[o.Umap[i+m*o.ndim]]
		}
	}
}

// information /////////////////////////////////////////////////////////////////////////////////////

func (o *ElemSolid) Nverts() int { return o.nverts }
func (o *ElemSolid) Ndim() int   { return o.ndim }
func (o *ElemSolid) Nip() int    { return len(o.IpsElem) }
func (o *ElemSolid) NipP() int   { return len(o.IpsP) }

// initialisation //////////////////////////////////////////////////////////////////////////////////

// Clear zeroes the stiffness and force accumulators. Restarts the element:
// avoids adding over results from a previous iteration.
func (o *ElemSolid) Clear() {
	la.MatFill(o.Kt, 0)
	la.MatFill(o.Kk, 0)
	la.VecFill(o.Fi, 0)
}

// ClearFi zeroes the internal force accumulator only
func (o *ElemSolid) ClearFi() {
	la.VecFill(o.Fi, 0)
}

// CalcGrads computes shape function gradients and Jacobians at all
// integration points of both rules, in both configurations. A singular
// mapping in the reference configuration is a mesh error; a singular
// mapping in the current configuration marks the point with a zero
// current Jacobian so the degenerate-element policy can act on it.
func (o *ElemSolid) CalcGrads() (err error) {

	// full rule
	for idx, ip := range o.IpsElem {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return chk.Err("elemsolid %d: reference configuration is singular at ip %d:\n%v", o.Id, idx, err)
		}
		o.jacX[idx] = o.Shp.J
		la.MatCopy(o.gradX[idx], 1, o.Shp.G)
		o.calcCurrentAtIp(ip, o.gradx[idx], &o.jacx[idx])
	}

	// reduced rule
	for idx, ip := range o.IpsP {
		err = o.Shp.CalcAtIp(o.X, ip, true)
		if err != nil {
			return chk.Err("elemsolid %d: reference configuration is singular at pressure ip %d:\n%v", o.Id, idx, err)
		}
		o.jacXP[idx] = o.Shp.J
		o.calcCurrentAtIp(ip, o.gradxP[idx], &o.jacxP[idx])
	}
	return
}

// calcCurrentAtIp computes current-configuration gradients at one ip
func (o *ElemSolid) calcCurrentAtIp(ip shp.Ipoint, grad [][]float64, jac *float64) {
	if err := o.Shp.CalcAtIp(o.Xc, ip, true); err != nil {
		*jac = 0
		la.MatFill(grad, 0)
		return
	}
	*jac = o.Shp.J
	la.MatCopy(grad, 1, o.Shp.G)
}

// full rule data //////////////////////////////////////////////////////////////////////////////////

func (o *ElemSolid) Weight(idx int) float64      { return o.IpsElem[idx][3] }
func (o *ElemSolid) JacX(idx int) float64        { return o.jacX[idx] }
func (o *ElemSolid) Jacx(idx int) float64        { return o.jacx[idx] }
func (o *ElemSolid) GradX(m, idx, i int) float64 { return o.gradX[idx][m][i] }
func (o *ElemSolid) Gradx(m, idx, i int) float64 { return o.gradx[idx][m][i] }

// reduced rule data ///////////////////////////////////////////////////////////////////////////////

func (o *ElemSolid) WeightP(idx int) float64      { return o.IpsP[idx][3] }
func (o *ElemSolid) JacXP(idx int) float64        { return o.jacXP[idx] }
func (o *ElemSolid) JacxP(idx int) float64        { return o.jacxP[idx] }
func (o *ElemSolid) GradxP(m, idx, i int) float64 { return o.gradxP[idx][m][i] }

// coordinates /////////////////////////////////////////////////////////////////////////////////////

func (o *ElemSolid) CurrCoord(m, i int) float64 { return o.Xc[i][m] }

// accumulators ////////////////////////////////////////////////////////////////////////////////////

// AddKab adds a material stiffness block to the pair (a,b)
func (o *ElemSolid) AddKab(kab [][]float64, a, b int) {
	for i := 0; i < o.ndim; i++ {
		for j := 0; j < o.ndim; j++ {
			o.Kt[a*o.ndim+i][b*o.ndim+j] += kab[i][j]
		}
	}
}

// AddKabT adds the transpose of a material stiffness block to the pair (b,a)
func (o *ElemSolid) AddKabT(kab [][]float64, b, a int) {
	for i := 0; i < o.ndim; i++ {
		for j := 0; j < o.ndim; j++ {
			o.Kt[b*o.ndim+i][a*o.ndim+j] += kab[j][i]
		}
	}
}

// AddKs adds a geometric stiffness scalar to the diagonal of block (a,b)
func (o *ElemSolid) AddKs(ks float64, a, b int) {
	for i := 0; i < o.ndim; i++ {
		o.Kt[a*o.ndim+i][b*o.ndim+i] += ks
	}
}

// SetKk overwrites the pressure stiffness block of pair (a,b)
func (o *ElemSolid) SetKk(kk [][]float64, a, b int) {
	for i := 0; i < o.ndim; i++ {
		for j := 0; j < o.ndim; j++ {
			o.Kk[a*o.ndim+i][b*o.ndim+j] = kk[i][j]
		}
	}
}

// AddFi adds an internal force component
func (o *ElemSolid) AddFi(val float64, m, i int) {
	o.Fi[i+m*o.ndim] += val
}
