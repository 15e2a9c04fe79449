// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting: text tables, JSON files and diagrams
package out

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/mjamiv/pile-designer/fdm"
	"github.com/mjamiv/pile-designer/inp"
)

// Report returns a text report with the analysis summary and the profile table
func Report(sim *inp.Simulation, res *fdm.Results) string {

	var b bytes.Buffer

	// summary
	io.Ff(&b, "%s\n", sim.Desc)
	status := "converged"
	if !res.Converged {
		status = io.Sf("FAILED (carried %.1f %% of the load)", 100.0*res.LoadFraction)
	}
	io.Ff(&b, "status             %s\n", status)
	io.Ff(&b, "load steps         %d\n", res.LoadSteps)
	io.Ff(&b, "iterations         %d (cumulative)\n", res.Iterations)
	io.Ff(&b, "max deflection     %12.6f m   at z = %.3f m\n", res.MaxDeflection, res.MaxDeflectionDepth)
	io.Ff(&b, "max moment         %12.3f kNm at z = %.3f m\n", res.MaxMoment, res.MaxMomentDepth)
	io.Ff(&b, "max shear          %12.3f kN  at z = %.3f m\n", res.MaxShear, res.MaxShearDepth)
	io.Ff(&b, "defl. at load      %12.6f m\n\n", res.DeflectionAtLoad)

	// profile table
	io.Ff(&b, "%10s%14s%14s%14s%14s\n", "z [m]", "y [m]", "M [kNm]", "V [kN]", "p [kN/m]")
	for i, z := range res.Depths {
		io.Ff(&b, "%10.3f%14.6e%14.6e%14.6e%14.6e\n", z,
			res.Deflections[i], res.Moments[i], res.Shears[i], res.SoilReactions[i])
	}
	return b.String()
}

// SaveReport writes the text report to dirout/fn
func SaveReport(dirout, fn string, sim *inp.Simulation, res *fdm.Results) {
	io.WriteStringToFileD(dirout, fn, Report(sim, res))
}

// SaveJSON writes the results to dirout/fn as an indented JSON file
func SaveJSON(dirout, fn string, res *fdm.Results) (err error) {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal results:\n%v", err)
	}
	io.WriteStringToFileD(dirout, fn, string(b))
	return
}
