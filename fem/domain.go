// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/strucmech/nlfem/inp"
	"github.com/strucmech/nlfem/msolid"
)

// Domain holds the elements of one mesh and assembles their tangent
// stiffness and internal force contributions into global storage
type Domain struct {

	// basic data
	Ndim  int
	Sim   *inp.Simulation
	Mdl   msolid.Large
	Kappa float64 // bulk modulus of the material, for the pressure term

	// LegacySkip propagates the degenerate-state policy to the assemblers
	LegacySkip bool

	// elements and equations
	Elems []*ElemSolid
	Ny    int // total number of equations: nverts * ndim

	// global storage
	Kb   *la.Triplet // tangent + pressure stiffness
	Fint []float64   // internal forces
}

// NewDomain builds a domain from a simulation deck: initialises the
// material model, allocates elements with private shape copies and assigns
// equation numbers
func NewDomain(sim *inp.Simulation) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Ndim = sim.Ndim
	o.Sim = sim

	// material model
	model, err := msolid.New(sim.Material.Model)
	if err != nil {
		return nil, err
	}
	err = model.Init(sim.Ndim, sim.Material.GetPrms())
	if err != nil {
		return nil, err
	}
	large, ok := model.(msolid.Large)
	if !ok {
		return nil, chk.Err("model %q cannot handle large deformations", sim.Material.Model)
	}
	o.Mdl = large
	if nh, ok := model.(*msolid.NeoHookeanComp); ok {
		o.Kappa = nh.Kappa
	}

	// elements
	o.Elems = make([]*ElemSolid, len(sim.Cells))
	nnz := 0
	for i, cell := range sim.Cells {

		// coordinates matrix [ndim][nverts]
		x := la.MatAlloc(o.Ndim, len(cell.Verts))
		for m, v := range cell.Verts {
			for j := 0; j < o.Ndim; j++ {
				x[j][m] = sim.Verts[v][j]
			}
		}

		// new element
		o.Elems[i], err = NewElemSolid(i, o.Ndim, cell.Type, x, sim.Nip, sim.NipP)
		if err != nil {
			return nil, err
		}

		// equation numbers: dof i of vertex v => v*ndim + i
		eqs := make([]int, len(cell.Verts)*o.Ndim)
		for m, v := range cell.Verts {
			for j := 0; j < o.Ndim; j++ {
				eqs[j+m*o.Ndim] = v*o.Ndim + j
			}
		}
		err = o.Elems[i].SetUmap(eqs)
		if err != nil {
			return nil, err
		}
		nnz += len(eqs) * len(eqs)
	}

	// global storage
	o.Ny = len(sim.Verts) * o.Ndim
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Ny, o.Ny, nnz)
	o.Fint = make([]float64, o.Ny)
	return
}

// SetDisp updates all elements' current coordinates from a global
// displacement vector u [Ny]
func (o *Domain) SetDisp(u []float64) {
	for _, e := range o.Elems {
		e.SetDisp(u)
	}
}

// Assemble computes the tangent matrix, mean-dilatation term and internal
// forces of all elements and gathers them into the global triplet and
// internal force vector.
//
// Elements are distributed over nworkers goroutines; each worker owns a
// private assembler scratchpad, and each element owns its accumulators, so
// workers never share mutable tensor state. Within one element the tangent
// and mean-dilatation passes run sequentially because they write
// overlapping stiffness storage. The gather into the global triplet is
// serial.
func (o *Domain) Assemble(nworkers int) (err error) {

	// concurrent per-element computation
	if nworkers < 1 {
		nworkers = 1
	}
	jobs := make(chan *ElemSolid, len(o.Elems))
	errs := make(chan error, nworkers)
	var wg sync.WaitGroup
	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ne := NewNonlinElast(o.Ndim, o.Mdl, o.Kappa)
			ne.LegacySkip = o.LegacySkip
			var ferr error
			for e := range jobs {
				if ferr != nil {
					continue
				}
				if ferr = ne.TangentMatrix(e); ferr != nil {
					continue
				}
				if ferr = ne.MeanDilatation(e); ferr != nil {
					continue
				}
				ferr = ne.InternalForce(e)
			}
			errs <- ferr
		}()
	}
	for _, e := range o.Elems {
		jobs <- e
	}
	close(jobs)
	wg.Wait()
	close(errs)
	for werr := range errs {
		if werr != nil && err == nil {
			err = werr
		}
	}
	if err != nil {
		return
	}

	// serial gather
	o.Kb.Start()
	la.VecFill(o.Fint, 0)
	for _, e := range o.Elems {
		for r, I := range e.Umap {
			o.Fint[I] += e.Fi[r]
			for c, J := range e.Umap {
				o.Kb.Put(I, J, e.Kt[r][c]+e.Kk[r][c])
			}
		}
	}
	return
}
