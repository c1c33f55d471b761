// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data decks (simulation files)
package inp

import (
	"sort"

	"github.com/ghodss/yaml"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Cell holds element connectivity data
type Cell struct {
	Type  string `yaml:"Type"`  // shape type; e.g. "qua4", "hex8"
	Verts []int  `yaml:"Verts"` // vertex ids
}

// Material holds material data: model name and parameters
type Material struct {
	Name  string             `yaml:"Name"`
	Model string             `yaml:"Model"` // model name in the msolid database; e.g. "nh-comp"
	Prms  map[string]float64 `yaml:"Prms"`
}

// GetPrms converts the parameters map into a gosl parameter set.
// Keys are sorted so model initialisation is deterministic.
func (o *Material) GetPrms() dbf.Params {
	keys := make([]string, 0, len(o.Prms))
	for name := range o.Prms {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	prms := make([]*dbf.P, len(keys))
	for i, name := range keys {
		prms[i] = &dbf.P{N: name, V: o.Prms[name]}
	}
	return prms
}

// FixDof holds essential boundary condition data: fixed displacement dofs
type FixDof struct {
	Vert int   `yaml:"Vert"` // vertex id
	Dofs []int `yaml:"Dofs"` // dof indices: 0 => ux, 1 => uy, 2 => uz
}

// Load holds a nodal point load
type Load struct {
	Vert  int     `yaml:"Vert"`
	Dof   int     `yaml:"Dof"`
	Value float64 `yaml:"Value"`
}

// SolverData holds solver control constants
type SolverData struct {
	Tol      float64 `yaml:"Tol"`      // residual norm tolerance
	MaxIt    int     `yaml:"MaxIt"`    // maximum number of Newton iterations
	Nworkers int     `yaml:"Nworkers"` // number of concurrent assembly workers
}

// Simulation holds one complete input deck
type Simulation struct {
	Title    string      `yaml:"Title"`
	Ndim     int         `yaml:"Ndim"`
	Verts    [][]float64 `yaml:"Verts"` // [nverts][ndim] reference coordinates
	Cells    []Cell      `yaml:"Cells"`
	Material Material    `yaml:"Material"`
	Nip      int         `yaml:"Nip"`  // full rule; 0 => default
	NipP     int         `yaml:"NipP"` // pressure rule; 0 => reduced (1 point)
	Fixed    []FixDof    `yaml:"Fixed"`
	Loads    []Load      `yaml:"Loads"`
	Solver   SolverData  `yaml:"Solver"`
}

// Parse parses a simulation deck from YAML data and applies defaults
func (o *Simulation) Parse(data []byte) (err error) {
	err = yaml.Unmarshal(data, o)
	if err != nil {
		return chk.Err("cannot parse simulation deck:\n%v", err)
	}
	return o.check()
}

// ReadSim reads a simulation deck from a YAML file
func ReadSim(simfile string) (sim *Simulation, err error) {
	data, err := io.ReadFile(simfile)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfile, err)
	}
	sim = new(Simulation)
	err = sim.Parse(data)
	if err != nil {
		return nil, err
	}
	return
}

// check validates the deck and applies defaults
func (o *Simulation) check() (err error) {
	if o.Ndim < 2 || o.Ndim > 3 {
		return chk.Err("simulation has invalid ndim=%d; must be 2 or 3", o.Ndim)
	}
	for i, c := range o.Verts {
		if len(c) != o.Ndim {
			return chk.Err("vertex %d has %d coordinates; ndim=%d", i, len(c), o.Ndim)
		}
	}
	nverts := len(o.Verts)
	for i, cell := range o.Cells {
		for _, v := range cell.Verts {
			if v < 0 || v >= nverts {
				return chk.Err("cell %d references unknown vertex %d", i, v)
			}
		}
	}
	if o.Material.Model == "" {
		return chk.Err("simulation must define a material model")
	}
	if o.Solver.Tol == 0 {
		o.Solver.Tol = 1e-8
	}
	if o.Solver.MaxIt == 0 {
		o.Solver.MaxIt = 20
	}
	if o.Solver.Nworkers == 0 {
		o.Solver.Nworkers = 1
	}
	return
}
