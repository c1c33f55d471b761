// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/strucmech/nlfem/fem"
	"github.com/strucmech/nlfem/inp"
)

var runCmd = &cobra.Command{
	Use:   "run [simulation file]",
	Short: "run one simulation deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("profile") {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		return runSim(args[0])
	},
}

func init() {
	runCmd.Flags().IntP("nworkers", "n", 0, "number of assembly workers (0 => deck value)")
	runCmd.Flags().Bool("legacy", false, "skip degenerate elements instead of failing")
	runCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
	viper.BindPFlag("nworkers", runCmd.Flags().Lookup("nworkers"))
	viper.BindPFlag("legacy", runCmd.Flags().Lookup("legacy"))
	viper.BindPFlag("profile", runCmd.Flags().Lookup("profile"))
	rootCmd.AddCommand(runCmd)
}

// runSim reads one deck, solves it and prints the solution
func runSim(simfile string) (err error) {

	sim, err := inp.ReadSim(simfile)
	if err != nil {
		return
	}
	if sim.Title != "" {
		io.Pf("%s\n", sim.Title)
	}

	dom, err := fem.NewDomain(sim)
	if err != nil {
		return
	}
	dom.LegacySkip = viper.GetBool("legacy")

	sol, err := fem.NewSolver(dom)
	if err != nil {
		return
	}
	if n := viper.GetInt("nworkers"); n > 0 {
		sol.Nworkers = n
	}
	sol.Verbose = viper.GetBool("verbose")

	err = sol.Run()
	if err != nil {
		return chk.Err("simulation %q failed:\n%v", simfile, err)
	}
	io.Pf("converged in %d iterations\n", sol.It)

	// nodal displacements and reactions
	reac := sol.Reactions()
	for v := 0; v < len(sim.Verts); v++ {
		io.Pf("vert %3d: u =", v)
		for i := 0; i < sim.Ndim; i++ {
			io.Pf(" %13.6e", sol.U[v*sim.Ndim+i])
		}
		io.Pf("  reac =")
		for i := 0; i < sim.Ndim; i++ {
			io.Pf(" %13.6e", reac[v*sim.Ndim+i])
		}
		io.Pf("\n")
	}
	return
}
