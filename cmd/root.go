// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command-line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "piledesigner",
	Short: "Laterally Loaded Pile Analysis Tool",
	Long: `piledesigner - nonlinear analysis of laterally loaded piles

Solves the beam-on-nonlinear-foundation problem with the finite-difference
method and empirical p-y curves:
  - Matlock (1970) soft clay
  - Reese, Cox and Koop (1975) stiff clay
  - API RP 2A sand
  - linear subgrade and user-tabulated curves

Input is a JSON (.sim) file describing the pile, the layered soil profile,
the loads and the solver configuration. Results comprise deflection,
bending moment, shear and mobilised soil reaction profiles.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
