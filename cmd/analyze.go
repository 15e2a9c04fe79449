// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/mjamiv/pile-designer/fdm"
	"github.com/mjamiv/pile-designer/inp"
	"github.com/mjamiv/pile-designer/out"
)

var (
	analyzeJSON     string
	analyzeReport   string
	analyzeDiagrams string
	analyzeAscii    bool
	analyzeShowR    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.sim>",
	Short: "Run the analysis defined in a .sim input file",
	Long: `Read a simulation file, run the nonlinear finite-difference analysis
and print a report with the deflection, moment, shear and soil reaction
profiles.

Examples:
  # analyze and print the text report
  piledesigner analyze softclay.sim

  # write results to a JSON file and profile diagrams to a directory
  piledesigner analyze softclay.sim --json results.json --diagrams ./plots

  # show terminal plots of the profiles
  piledesigner analyze softclay.sim --ascii`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "write results to this JSON file")
	analyzeCmd.Flags().StringVar(&analyzeReport, "report", "", "write the text report to this file")
	analyzeCmd.Flags().StringVar(&analyzeDiagrams, "diagrams", "", "write profile diagrams (PNG) to this directory")
	analyzeCmd.Flags().BoolVar(&analyzeAscii, "ascii", false, "show terminal plots of the profiles")
	analyzeCmd.Flags().BoolVar(&analyzeShowR, "showr", false, "show residuals during iterations")
}

func runAnalyze(cmd *cobra.Command, args []string) error {

	sim, err := inp.ReadSim(args[0])
	if err != nil {
		return err
	}
	if analyzeShowR {
		sim.Solver.ShowR = true
	}

	// interrupt stops the analysis at the next load step
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := fdm.Solve(ctx, sim)
	if err != nil {
		return err
	}

	io.Pf("%s", out.Report(sim, res))
	if analyzeAscii {
		io.Pf("%s", out.AsciiProfiles(res))
	}

	if analyzeReport != "" {
		out.SaveReport(filepath.Dir(analyzeReport), filepath.Base(analyzeReport), sim, res)
	}
	if analyzeJSON != "" {
		err = out.SaveJSON(filepath.Dir(analyzeJSON), filepath.Base(analyzeJSON), res)
		if err != nil {
			return err
		}
	}
	if analyzeDiagrams != "" {
		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		for name, export := range map[string]func(*fdm.Results, string) error{
			"defl":  out.ExportDeflectionDiagram,
			"mom":   out.ExportMomentDiagram,
			"shear": out.ExportShearDiagram,
			"soil":  out.ExportReactionDiagram,
		} {
			fn := filepath.Join(analyzeDiagrams, io.Sf("%s_%s.png", base, name))
			if err = export(res, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
