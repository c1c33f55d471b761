// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/strucmech/nlfem/msolid"
)

// NonlinElast assembles the element tangent stiffness matrix, the
// mean-dilatation pressure stiffness and the internal force vector of a
// finite-strain nonlinear elastic solid.
//
// All scratch tensors are allocated at construction and owned exclusively
// by this instance; one assembler must not be shared between goroutines,
// but independent assemblers can process distinct elements concurrently.
type NonlinElast struct {

	// constants
	Ndim  int     // space dimension
	Bdim  int     // number of Voigt components: 3 (2D) or 6 (3D)
	Kappa float64 // κ: bulk modulus for the mean-dilatation term

	// material model
	Mdl msolid.Large

	// LegacySkip reproduces the original skip-and-continue policy on
	// degenerate states: a zero Jacobian reuses the constitutive matrix and
	// stress tensor of the last successful evaluation, and a zero volume
	// reuses the last averaged gradients and bulk modulus. When false
	// (default) degenerate states are returned as errors.
	LegacySkip bool

	// SpatialQuad integrates the tangent and internal force terms with the
	// current configuration gradients and Jacobians (updated Lagrangian
	// quadrature). Default: reference configuration. The deformation
	// gradient always comes from the reference gradients.
	SpatialQuad bool

	// scratchpad: deformation state. recomputed at each Gauss point
	state *msolid.State

	// scratchpad: constitutive data
	D   [][]float64 // [bdim][bdim] material tangent
	sig [][]float64 // [3][3] Cauchy stress

	// scratchpad: strain-displacement operators and products
	Ba   [][]float64 // [bdim][ndim]
	Bb   [][]float64 // [bdim][ndim]
	BaTD [][]float64 // [ndim][bdim] BaᵀD
	kab  [][]float64 // [ndim][ndim] material stiffness block
	kk   [][]float64 // [ndim][ndim] pressure stiffness block
	fs   []float64   // [ndim] ∇Nₐ·σ row

	// scratchpad: mean dilatation
	accG   [][]float64 // [nvertsMax][ndim] volume-weighted gradient accumulator
	avgG   [][]float64 // [nvertsMax][ndim] averaged current config gradients
	avgKap float64     // κ·Vcur/Vref of the last successful averaging

	// legacy policy bookkeeping
	haveDSig bool // constitutive data from a previous evaluation is available
	haveAvg  bool // averaged gradients from a previous evaluation are available
}

// NewNonlinElast returns a new assembler
//  kappa -- bulk modulus κ for the mean-dilatation pressure term
func NewNonlinElast(ndim int, mdl msolid.Large, kappa float64) *NonlinElast {
	var o NonlinElast
	o.Ndim = ndim
	o.Bdim = 3
	nvertsMax := 4
	if ndim == 3 {
		o.Bdim = 6
		nvertsMax = 8
	}
	o.Kappa = kappa
	o.Mdl = mdl
	o.state = msolid.NewState()
	o.D = la.MatAlloc(o.Bdim, o.Bdim)
	o.sig = la.MatAlloc(3, 3)
	o.Ba = la.MatAlloc(o.Bdim, ndim)
	o.Bb = la.MatAlloc(o.Bdim, ndim)
	o.BaTD = la.MatAlloc(ndim, o.Bdim)
	o.kab = la.MatAlloc(ndim, ndim)
	o.kk = la.MatAlloc(ndim, ndim)
	o.fs = make([]float64, ndim)
	o.accG = la.MatAlloc(nvertsMax, ndim)
	o.avgG = la.MatAlloc(nvertsMax, ndim)
	return &o
}

// TangentMatrix computes the element tangent stiffness matrix: full
// integration of the constitutive (material) and stress (geometric) terms.
// The element accumulators are reset first; previous results never leak in.
func (o *NonlinElast) TangentMatrix(e Element) (err error) {

	// restart the element and compute gradients
	if e.Ndim() != o.Ndim {
		return chk.Err("nlelast: element has ndim=%d; assembler has ndim=%d", e.Ndim(), o.Ndim)
	}
	e.Clear()
	err = e.CalcGrads()
	if err != nil {
		return
	}
	nverts := e.Nverts()
	grad, jac := e.GradX, e.JacX
	if o.SpatialQuad {
		grad, jac = e.Gradx, e.Jacx
	}

	// full integration of the constitutive and stress terms
	for idx := 0; idx < e.Nip(); idx++ {

		weight := e.Weight(idx)
		jcb := jac(idx)

		// deformation state @ this Gauss point
		err = o.calcState(e, idx, nverts)
		if err != nil {
			return
		}

		// for each vertex a
		for a := 0; a < nverts; a++ {

			// strain-displacement operator of vertex a
			o.calcB(o.Ba, grad, a, idx)

			// refresh the constitutive matrix and stress tensor. the pair
			// loop below is restricted to b >= a, which halves these
			// evaluations; the transposed blocks are written explicitly
			if o.state.Jf == 0 && o.LegacySkip {
				if !o.haveDSig {
					return chk.Err("nlelast: degenerate element %d: J=0 with no previous constitutive state", elemId(e))
				}
				// keep previous D and σ
			} else {
				err = o.Mdl.CalcD(o.D, o.state)
				if err != nil {
					return chk.Err("nlelast: degenerate element %d at ip %d:\n%v", elemId(e), idx, err)
				}
				err = o.Mdl.CalcSig(o.sig, o.state)
				if err != nil {
					return chk.Err("nlelast: degenerate element %d at ip %d:\n%v", elemId(e), idx, err)
				}
				o.haveDSig = true
			}

			// BaᵀD
			for i := 0; i < o.Ndim; i++ {
				for j := 0; j < o.Bdim; j++ {
					o.BaTD[i][j] = 0.0
					for k := 0; k < o.Bdim; k++ {
						o.BaTD[i][j] += o.Ba[k][i] * o.D[k][j]
					}
				}
			}

			// ∇Nₐ·σ row for the geometric term
			for i := 0; i < o.Ndim; i++ {
				o.fs[i] = 0.0
				for j := 0; j < o.Ndim; j++ {
					o.fs[i] += grad(a, idx, j) * o.sig[j][i]
				}
			}

			// for each vertex b >= a (symmetry)
			for b := a; b < nverts; b++ {

				o.calcB(o.Bb, grad, b, idx)

				// material stiffness block: Weight · BaᵀD·Bb · Jac
				for i := 0; i < o.Ndim; i++ {
					for j := 0; j < o.Ndim; j++ {
						o.kab[i][j] = 0.0
						for k := 0; k < o.Bdim; k++ {
							o.kab[i][j] += weight * o.BaTD[i][k] * o.Bb[k][j] * jcb
						}
					}
				}

				// geometric stiffness scalar: Weight · ∇Nₐ·σ·∇N_b · Jac
				ks := 0.0
				for i := 0; i < o.Ndim; i++ {
					ks += weight * o.fs[i] * grad(b, idx, i) * jcb
				}

				e.AddKab(o.kab, a, b)
				e.AddKs(ks, a, b)

				// mirrored blocks
				if a != b {
					e.AddKabT(o.kab, b, a)
					e.AddKs(ks, b, a)
				}
			}
		}
	}
	return
}

// MeanDilatation computes the mean-dilatation pressure stiffness: under
// integration of the volumetric term to mitigate locking in nearly
// incompressible materials. The element's pressure blocks are overwritten,
// not accumulated.
func (o *NonlinElast) MeanDilatation(e Element) (err error) {

	if e.Ndim() != o.Ndim {
		return chk.Err("nlelast: element has ndim=%d; assembler has ndim=%d", e.Ndim(), o.Ndim)
	}
	nverts := e.Nverts()

	// volume-weighted average of the current configuration gradients
	for m := 0; m < nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			o.accG[m][i] = 0.0
		}
	}
	volX, volx := 0.0, 0.0
	for idx := 0; idx < e.NipP(); idx++ {
		weight := e.WeightP(idx)
		jacx := e.JacxP(idx)
		for m := 0; m < nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				o.accG[m][i] += weight * e.GradxP(m, idx, i) * jacx
			}
		}
		volX += weight * e.JacXP(idx)
		volx += weight * jacx
	}

	// averaged gradients and bulk modulus scaled by the volume ratio
	if volx != 0.0 && volX != 0.0 {
		for m := 0; m < nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				o.avgG[m][i] = o.accG[m][i] / volx
			}
		}
		o.avgKap = o.Kappa * volx / volX
		o.haveAvg = true
	} else {
		if !o.LegacySkip || !o.haveAvg {
			return chk.Err("nlelast: degenerate element %d: Vref=%g, Vcur=%g", elemId(e), volX, volx)
		}
		// keep previous averaged gradients and bulk modulus
	}

	// all pairs: the pressure block is not symmetric-shortcut
	for a := 0; a < nverts; a++ {
		for b := 0; b < nverts; b++ {
			for i := 0; i < o.Ndim; i++ {
				for j := 0; j < o.Ndim; j++ {
					o.kk[i][j] = o.avgKap * volx * o.avgG[a][i] * o.avgG[b][j]
				}
			}
			e.SetKk(o.kk, a, b)
		}
	}
	return
}

// InternalForce computes the internal force vector consistent with the
// tangent matrix: fiₐ = Σ_ip Weight · σ·∇Nₐ · JacX
func (o *NonlinElast) InternalForce(e Element) (err error) {

	if e.Ndim() != o.Ndim {
		return chk.Err("nlelast: element has ndim=%d; assembler has ndim=%d", e.Ndim(), o.Ndim)
	}
	e.ClearFi()
	nverts := e.Nverts()
	grad, jac := e.GradX, e.JacX
	if o.SpatialQuad {
		grad, jac = e.Gradx, e.Jacx
	}

	for idx := 0; idx < e.Nip(); idx++ {

		weight := e.Weight(idx)
		jcb := jac(idx)

		// deformation state and stress @ this Gauss point
		err = o.calcState(e, idx, nverts)
		if err != nil {
			return
		}
		if o.state.Jf == 0 && o.LegacySkip {
			if !o.haveDSig {
				return chk.Err("nlelast: degenerate element %d: J=0 with no previous constitutive state", elemId(e))
			}
		} else {
			err = o.Mdl.CalcSig(o.sig, o.state)
			if err != nil {
				return chk.Err("nlelast: degenerate element %d at ip %d:\n%v", elemId(e), idx, err)
			}
		}

		for m := 0; m < nverts; m++ {
			for i := 0; i < o.Ndim; i++ {
				val := 0.0
				for j := 0; j < o.Ndim; j++ {
					val += weight * o.sig[i][j] * grad(m, idx, j) * jcb
				}
				e.AddFi(val, m, i)
			}
		}
	}
	return
}

// calcState computes the deformation gradient, its determinant and the left
// Cauchy-Green tensor at one Gauss point; nothing is carried over from the
// previous point
func (o *NonlinElast) calcState(e Element, idx, nverts int) (err error) {

	F, b := o.state.F, o.state.B
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			F[i][j] = 0.0
			b[i][j] = 0.0
		}
	}

	// deformation gradient from current coordinates and reference gradients
	for m := 0; m < nverts; m++ {
		for i := 0; i < o.Ndim; i++ {
			for j := 0; j < o.Ndim; j++ {
				F[i][j] += e.CurrCoord(m, i) * e.GradX(m, idx, j)
			}
		}
	}

	// plane strain closure
	if o.Ndim == 2 {
		F[2][2] = 1.0
	}

	// determinant of F: full 3x3 cofactor expansion
	o.state.Jf = F[0][0]*F[1][1]*F[2][2] +
		F[0][1]*F[1][2]*F[2][0] +
		F[0][2]*F[1][0]*F[2][1] -
		F[0][2]*F[1][1]*F[2][0] -
		F[1][2]*F[2][1]*F[0][0] -
		F[2][2]*F[0][1]*F[1][0]

	// left Cauchy-Green tensor: b = F·Fᵀ
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				b[i][j] += F[i][k] * F[j][k]
			}
		}
	}
	return
}

// calcB builds the strain-displacement operator of vertex m from the given
// gradient accessor, in the fixed Voigt layout: 2D => (xx, yy, xy);
// 3D => (xx, yy, zz, xy, xz, yz). Only the fixed nonzero slots are written;
// the remaining entries stay zero from allocation.
func (o *NonlinElast) calcB(B [][]float64, grad func(m, idx, i int) float64, m, idx int) {
	if o.Ndim == 2 {
		B[0][0] = grad(m, idx, 0)
		B[1][1] = grad(m, idx, 1)
		B[2][0] = grad(m, idx, 1)
		B[2][1] = grad(m, idx, 0)
		return
	}
	B[0][0] = grad(m, idx, 0)
	B[1][1] = grad(m, idx, 1)
	B[2][2] = grad(m, idx, 2)
	B[3][0] = grad(m, idx, 1)
	B[3][1] = grad(m, idx, 0)
	B[4][0] = grad(m, idx, 2)
	B[4][2] = grad(m, idx, 0)
	B[5][1] = grad(m, idx, 2)
	B[5][2] = grad(m, idx, 1)
}

// elemId returns the id of concrete elements for error messages
func elemId(e Element) int {
	if es, ok := e.(*ElemSolid); ok {
		return es.Id
	}
	return -1
}
