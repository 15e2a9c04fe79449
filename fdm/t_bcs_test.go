// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/mjamiv/pile-designer/ana"
)

func Test_bcs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs01. free head with zero load stays at rest")

	sim := linSim(51)
	sim.Load.Lateral = 0
	res, err := Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("analysis did not converge")
		return
	}
	for i, y := range res.Deflections {
		if math.Abs(y) > 1e-12 {
			tst.Errorf("node %d: nonzero deflection %g under zero load", i, y)
			return
		}
	}
	chk.Scalar(tst, "maxM", 1e-9, res.MaxMoment, 0)
}

func Test_bcs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs02. head moment on a free-head pile vs Winkler solution")

	sim := linSim(101)
	sim.Load.Lateral = 0
	sim.Load.Moment = 50
	res, err := Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("analysis did not converge")
		return
	}

	sol := new(ana.Winkler)
	sol.Init(dbf.Params{
		&dbf.P{N: "EI", V: 50000},
		&dbf.P{N: "k", V: 5000},
		&dbf.P{N: "F", V: 0},
		&dbf.P{N: "M", V: 50},
	})
	y0 := sol.Deflection(0)
	if chk.Verbose {
		io.Pforan("y(0) num = %v\n", res.Deflections[0])
		io.Pforan("y(0) ana = %v\n", y0)
	}
	chk.Scalar(tst, "y(0)", 0.05*math.Abs(y0), res.Deflections[0], y0)

	// the moment at the head must match the input
	chk.Scalar(tst, "M(0)", 0.05*50.0, res.Moments[0], 50)
}

func Test_bcs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs03. fixed head holds deflection and slope at zero")

	sim := linSim(101)
	sim.Solver.Head = "fixed"
	sim.Load.Depth = 5 // load below the clamp, pile bends underneath
	res, err := Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("analysis did not converge")
		return
	}
	if res.MaxDeflection < 1e-6 {
		tst.Errorf("pile did not deflect under the embedded load")
		return
	}

	// prescribed deflection is exact; the slope estimate must vanish with O(h²)
	chk.Scalar(tst, "y(0)", 1e-15, res.Deflections[0], 0)
	h := sim.Pile.Length / float64(sim.Solver.Nnodes-1)
	slope := (-3*res.Deflections[0] + 4*res.Deflections[1] - res.Deflections[2]) / (2 * h)
	if chk.Verbose {
		io.Pforan("slope(0) = %v\n", slope)
		io.Pforan("ymax     = %v\n", res.MaxDeflection)
	}
	if math.Abs(slope) > 1e-3 {
		tst.Errorf("head slope %g is not zero", slope)
	}
}

func Test_bcs04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs04. pinned head holds deflection and moment at zero")

	sim := linSim(101)
	sim.Solver.Head = "pinned"
	sim.Load.Depth = 5
	res, err := Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("analysis did not converge")
		return
	}
	chk.Scalar(tst, "y(0)", 1e-15, res.Deflections[0], 0)
	if math.Abs(res.Moments[0]) > 0.05*res.MaxMoment {
		tst.Errorf("head moment %g is not zero (max moment %g)", res.Moments[0], res.MaxMoment)
	}
}

func Test_bcs05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcs05. axial compression increases the head deflection")

	simA := linSim(101)
	resA, err := Solve(context.Background(), simA)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	simB := linSim(101)
	simB.Load.Axial = 500
	resB, err := Solve(context.Background(), simB)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if chk.Verbose {
		io.Pforan("y(0) P=0   = %v\n", resA.Deflections[0])
		io.Pforan("y(0) P=500 = %v\n", resB.Deflections[0])
	}
	if resB.Deflections[0] <= resA.Deflections[0] {
		tst.Errorf("beam-column effect missing: %g <= %g", resB.Deflections[0], resA.Deflections[0])
		return
	}

	// the softening must be moderate for P well below the buckling load
	ratio := resB.Deflections[0] / resA.Deflections[0]
	if ratio < 1.01 || ratio > 1.10 {
		tst.Errorf("amplification ratio %g outside the expected band", ratio)
	}
}
