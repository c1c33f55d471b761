// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deck = `
Title: stretched square
Ndim: 2
Verts:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
Cells:
  - Type: qua4
    Verts: [0, 1, 2, 3]
Material:
  Name: softrubber
  Model: nh-comp
  Prms:
    mu: 1000
    lam: 1500
Fixed:
  - Vert: 0
    Dofs: [0, 1]
  - Vert: 3
    Dofs: [0, 1]
Loads:
  - Vert: 1
    Dof: 0
    Value: 5
  - Vert: 2
    Dof: 0
    Value: 5
Solver:
  Tol: 1.0e-10
  MaxIt: 30
  Nworkers: 4
`

func TestParse(t *testing.T) {
	var sim Simulation
	require.NoError(t, sim.Parse([]byte(deck)))

	assert.Equal(t, "stretched square", sim.Title)
	assert.Equal(t, 2, sim.Ndim)
	require.Len(t, sim.Verts, 4)
	assert.Equal(t, []float64{1, 1}, sim.Verts[2])
	require.Len(t, sim.Cells, 1)
	assert.Equal(t, "qua4", sim.Cells[0].Type)
	assert.Equal(t, []int{0, 1, 2, 3}, sim.Cells[0].Verts)
	assert.Equal(t, "nh-comp", sim.Material.Model)
	require.Len(t, sim.Fixed, 2)
	assert.Equal(t, []int{0, 1}, sim.Fixed[0].Dofs)
	require.Len(t, sim.Loads, 2)
	assert.Equal(t, 5.0, sim.Loads[1].Value)
	assert.Equal(t, 1e-10, sim.Solver.Tol)
	assert.Equal(t, 30, sim.Solver.MaxIt)
	assert.Equal(t, 4, sim.Solver.Nworkers)
}

func TestGetPrms(t *testing.T) {
	mat := Material{
		Name:  "softrubber",
		Model: "nh-comp",
		Prms:  map[string]float64{"mu": 1000, "lam": 1500},
	}
	prms := mat.GetPrms()
	require.Len(t, prms, 2)
	// keys come out sorted regardless of map iteration order
	assert.Equal(t, "lam", prms[0].N)
	assert.Equal(t, 1500.0, prms[0].V)
	assert.Equal(t, "mu", prms[1].N)
	assert.Equal(t, 1000.0, prms[1].V)
}

func TestDefaults(t *testing.T) {
	minimal := `
Ndim: 2
Verts:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
Cells:
  - Type: qua4
    Verts: [0, 1, 2, 3]
Material:
  Model: nh-comp
  Prms:
    mu: 1000
`
	var sim Simulation
	require.NoError(t, sim.Parse([]byte(minimal)))
	assert.Equal(t, 1e-8, sim.Solver.Tol)
	assert.Equal(t, 20, sim.Solver.MaxIt)
	assert.Equal(t, 1, sim.Solver.Nworkers)
	assert.Equal(t, 0, sim.Nip)  // 0 => element default rule
	assert.Equal(t, 0, sim.NipP) // 0 => reduced rule
}

func TestBadDecks(t *testing.T) {
	cases := []struct {
		name string
		deck string
	}{
		{"bad ndim", "Ndim: 4\nVerts:\n  - [0, 0, 0, 0]\n"},
		{"wrong coord count", "Ndim: 2\nVerts:\n  - [0, 0, 0]\n"},
		{"unknown vertex", `
Ndim: 2
Verts:
  - [0, 0]
Cells:
  - Type: qua4
    Verts: [0, 1, 2, 3]
Material:
  Model: nh-comp
`},
		{"missing model", `
Ndim: 2
Verts:
  - [0, 0]
`},
		{"not yaml", ": : :"},
	}
	for _, tc := range cases {
		var sim Simulation
		assert.Error(t, sim.Parse([]byte(tc.deck)), tc.name)
	}
}

func TestReadSim(t *testing.T) {
	dir, err := ioutil.TempDir("", "nlfem")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	fn := filepath.Join(dir, "square.yaml")
	require.NoError(t, ioutil.WriteFile(fn, []byte(deck), 0644))

	sim, err := ReadSim(fn)
	require.NoError(t, err)
	assert.Equal(t, "stretched square", sim.Title)
	require.Len(t, sim.Cells, 1)

	_, err = ReadSim(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}
