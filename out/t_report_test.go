// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/mjamiv/pile-designer/fdm"
	"github.com/mjamiv/pile-designer/inp"
)

func testSim() *inp.Simulation {
	sim := new(inp.Simulation)
	sim.Desc = "uniform linear soil"
	sim.Solver.SetDefault()
	sim.Pile.Length = 20
	sim.Pile.Diameter = 0.6
	sim.Pile.EI = 50000
	sim.Soil.Layers = []*inp.LayerData{{
		Ztop:  0,
		Zbot:  20,
		Model: "lin",
		Prms:  dbf.Params{&dbf.P{N: "k0", V: 5000}},
	}}
	sim.Load.Lateral = 100
	sim.Solver.Nsteps = 1
	return sim
}

func Test_report01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report01. text report and terminal plots")

	sim := testSim()
	res, err := fdm.Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	rep := Report(sim, res)
	if chk.Verbose {
		io.Pf("%s\n", rep)
	}
	for _, want := range []string{"uniform linear soil", "converged", "max deflection", "z [m]"} {
		if !strings.Contains(rep, want) {
			tst.Errorf("report is missing %q", want)
			return
		}
	}
	if strings.Contains(rep, "FAILED") {
		tst.Errorf("converged analysis reported as failed")
	}

	txt := AsciiProfiles(res)
	if chk.Verbose {
		io.Pf("%s\n", txt)
	}
	if !strings.Contains(txt, "deflection [mm]") || !strings.Contains(txt, "bending moment [kNm]") {
		tst.Errorf("terminal plots are incomplete")
	}
}

func Test_report02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report02. JSON file with the result keys")

	sim := testSim()
	res, err := fdm.Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	err = SaveJSON("/tmp/piledesigner", "report02.json", res)
	if err != nil {
		tst.Errorf("SaveJSON failed:\n%v", err)
		return
	}
	b, err := io.ReadFile("/tmp/piledesigner/report02.json")
	if err != nil {
		tst.Errorf("cannot read JSON file:\n%v", err)
		return
	}
	s := string(b)
	for _, key := range []string{"converged", "iterations", "depths", "deflections", "moments",
		"shears", "soilReactions", "maxDeflection", "maxMoment", "maxShear", "deflectionAtLoad"} {
		if !strings.Contains(s, "\""+key+"\"") {
			tst.Errorf("JSON output is missing key %q", key)
			return
		}
	}
}

func Test_report03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("report03. diagram files")

	sim := testSim()
	res, err := fdm.Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	err = ExportDeflectionDiagram(res, "/tmp/piledesigner/report03_defl.png")
	if err != nil {
		tst.Errorf("ExportDeflectionDiagram failed:\n%v", err)
		return
	}
	err = ExportMomentDiagram(res, "/tmp/piledesigner/report03_mom.png")
	if err != nil {
		tst.Errorf("ExportMomentDiagram failed:\n%v", err)
	}
}
