// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Solver runs static Newton iterations with the consistent tangent:
// at each iteration the domain is re-assembled at the current
// configuration and K·Δu = fext − fint is solved on the free dofs
type Solver struct {

	// input
	Dom      *Domain
	Tol      float64 // residual norm tolerance
	MaxIt    int     // maximum number of Newton iterations
	Nworkers int     // concurrent assembly workers
	Verbose  bool

	// solution
	U      []float64 // [Ny] displacements
	Fext   []float64 // [Ny] external nodal forces
	It     int       // number of iterations taken by the last Run
	LinErr float64   // ‖K·Δu − R‖ of the last linear solve

	// free/fixed dof maps
	fixed []bool
	free  []int // global equation numbers of free dofs
}

// NewSolver returns a solver with boundary conditions taken from the deck
func NewSolver(dom *Domain) (o *Solver, err error) {

	o = new(Solver)
	o.Dom = dom
	o.Tol = dom.Sim.Solver.Tol
	o.MaxIt = dom.Sim.Solver.MaxIt
	o.Nworkers = dom.Sim.Solver.Nworkers
	o.U = make([]float64, dom.Ny)
	o.Fext = make([]float64, dom.Ny)
	o.fixed = make([]bool, dom.Ny)

	// essential conditions
	for _, fx := range dom.Sim.Fixed {
		for _, i := range fx.Dofs {
			eq := fx.Vert*dom.Ndim + i
			if eq < 0 || eq >= dom.Ny {
				return nil, chk.Err("fixed dof (vert=%d, dof=%d) is out of range", fx.Vert, i)
			}
			o.fixed[eq] = true
		}
	}
	for eq, isFixed := range o.fixed {
		if !isFixed {
			o.free = append(o.free, eq)
		}
	}

	// point loads
	for _, ld := range dom.Sim.Loads {
		eq := ld.Vert*dom.Ndim + ld.Dof
		if eq < 0 || eq >= dom.Ny {
			return nil, chk.Err("load (vert=%d, dof=%d) is out of range", ld.Vert, ld.Dof)
		}
		o.Fext[eq] += ld.Value
	}
	return
}

// Run performs the Newton iterations
func (o *Solver) Run() (err error) {

	nfree := len(o.free)
	if nfree == 0 {
		return chk.Err("solver: all dofs are fixed")
	}

	// dense stiffness and residual on free dofs
	A := mat.NewDense(nfree, nfree, nil)
	b := mat.NewVecDense(nfree, nil)
	x := mat.NewVecDense(nfree, nil)

	for o.It = 0; o.It < o.MaxIt; o.It++ {

		// assemble at the current configuration
		o.Dom.SetDisp(o.U)
		err = o.Dom.Assemble(o.Nworkers)
		if err != nil {
			return
		}

		// residual: R = fext − fint on free dofs
		rnorm := 0.0
		for k, eq := range o.free {
			r := o.Fext[eq] - o.Dom.Fint[eq]
			b.SetVec(k, r)
			rnorm += r * r
		}
		rnorm = math.Sqrt(rnorm)
		if o.Verbose {
			io.Pf("it=%2d  resid=%23.15e\n", o.It, rnorm)
		}
		if rnorm < o.Tol {
			return
		}

		// reduced stiffness
		Kd := o.Dom.Kb.ToMatrix(nil).ToDense()
		dok := sparse.NewDOK(nfree, nfree)
		for p, I := range o.free {
			for q, J := range o.free {
				A.Set(p, q, Kd[I][J])
				if Kd[I][J] != 0 {
					dok.Set(p, q, Kd[I][J])
				}
			}
		}

		// solve K·Δu = R
		var lu mat.LU
		lu.Factorize(A)
		err = lu.SolveVecTo(x, false, b)
		if err != nil {
			return chk.Err("solver: tangent matrix is singular at iteration %d:\n%v", o.It, err)
		}

		// solve-quality residual: ‖K·Δu − R‖ via a sparse matvec
		csr := dok.ToCSR()
		var kx mat.VecDense
		kx.MulVec(csr, x)
		snorm := 0.0
		for k := 0; k < nfree; k++ {
			d := kx.AtVec(k) - b.AtVec(k)
			snorm += d * d
		}
		o.LinErr = math.Sqrt(snorm)
		if o.Verbose {
			io.Pfgrey("       linsol err=%g\n", o.LinErr)
		}

		// update displacements
		for k, eq := range o.free {
			o.U[eq] += x.AtVec(k)
		}
	}
	return chk.Err("solver did not converge after %d iterations", o.MaxIt)
}

// Reactions returns the reaction forces at the fixed dofs: the internal
// forces of the converged configuration minus the applied external forces
func (o *Solver) Reactions() (reac []float64) {
	reac = make([]float64, o.Dom.Ny)
	for eq, isFixed := range o.fixed {
		if isFixed {
			reac[eq] = o.Dom.Fint[eq] - o.Fext[eq]
		}
	}
	return
}
