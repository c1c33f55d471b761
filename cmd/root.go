// Copyright 2016 The Nlfem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "nlfem",
	Short: "finite-strain nonlinear elasticity finite element solver",
	Long: `nlfem solves static finite-strain nonlinear elasticity problems on
quadrilateral and hexahedral meshes with a compressible Neo-Hookean
material and a mean-dilatation treatment of near incompressibility.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print iteration progress")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
