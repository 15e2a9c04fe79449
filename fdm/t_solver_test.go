// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/mjamiv/pile-designer/inp"
)

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. steel pipe pile in soft clay, free head")

	sim, err := inp.ReadSim("data/softclay.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	res, err := Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if !res.Converged {
		tst.Errorf("analysis did not converge")
		return
	}
	if chk.Verbose {
		io.Pforan("ymax = %v at z = %v\n", res.MaxDeflection, res.MaxDeflectionDepth)
		io.Pforan("Mmax = %v at z = %v\n", res.MaxMoment, res.MaxMomentDepth)
		io.Pforan("iterations = %v in %v steps\n", res.Iterations, res.LoadSteps)
	}

	// the full load is carried in the requested number of steps
	chk.IntAssert(res.LoadSteps, 10)
	chk.Scalar(tst, "λ", 1e-15, res.LoadFraction, 1)
	if res.Iterations < res.LoadSteps {
		tst.Errorf("iteration count %d is too low for %d steps", res.Iterations, res.LoadSteps)
	}

	// head deflection in the tens of millimetres
	if res.MaxDeflection < 0.005 || res.MaxDeflection > 0.2 {
		tst.Errorf("maximum deflection %g m is out of the expected range", res.MaxDeflection)
	}
	chk.Scalar(tst, "deflectionAtLoad", 1e-14, res.DeflectionAtLoad, res.Deflections[0])
	chk.Scalar(tst, "zymax", 1e-15, res.MaxDeflectionDepth, 0)

	// the largest moment occurs below the surface and the tip is moment-free
	if res.MaxMomentDepth <= 0 {
		tst.Errorf("maximum moment must occur below the head")
	}
	n := len(res.Moments)
	if math.Abs(res.Moments[n-1]) > 0.01*res.MaxMoment {
		tst.Errorf("tip moment %g is not negligible", res.Moments[n-1])
	}
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. load path independence at equilibrium")

	simA, err := inp.ReadSim("data/softclay.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	resA, err := Solve(context.Background(), simA)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	simB, err := inp.ReadSim("data/softclay.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	simB.Solver.Nsteps = 2
	resB, err := Solve(context.Background(), simB)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}
	if !resA.Converged || !resB.Converged {
		tst.Errorf("analyses did not converge")
		return
	}
	chk.Scalar(tst, "y(0)", 1e-5, resB.Deflections[0], resA.Deflections[0])
	chk.IntAssert(resB.LoadSteps, 2)
}

func Test_solver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver03. cancellation before the first load step")

	sim, err := inp.ReadSim("data/softclay.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Solve(ctx, sim)
	if err != context.Canceled {
		tst.Errorf("expected context.Canceled, got %v", err)
	}
	if res != nil {
		tst.Errorf("cancelled solve must not return results")
	}
}

func Test_solver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver04. continuation from a previous solution")

	sim, err := inp.ReadSim("data/softclay.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	resA, err := Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve failed:\n%v", err)
		return
	}

	// re-solve a slightly larger load seeded with the previous field
	simB, err := inp.ReadSim("data/softclay.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	simB.Load.Lateral = 160
	resB, err := SolveFrom(context.Background(), simB, resA.Deflections)
	if err != nil {
		tst.Errorf("SolveFrom failed:\n%v", err)
		return
	}
	if !resB.Converged {
		tst.Errorf("continued analysis did not converge")
		return
	}
	if resB.Deflections[0] <= resA.Deflections[0] {
		tst.Errorf("larger load must deflect more: %g <= %g", resB.Deflections[0], resA.Deflections[0])
	}
}

func Test_solver05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver05. load beyond soil capacity fails gracefully")

	sim, err := inp.ReadSim("data/softclay.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	sim.Load.Lateral = 3000 // above the lateral capacity of the profile
	res, err := Solve(context.Background(), sim)
	if err != nil {
		tst.Errorf("Solve must report failure via the results, not an error:\n%v", err)
		return
	}
	if res.Converged {
		tst.Errorf("analysis cannot converge beyond the soil capacity")
	}
	if res.LoadFraction <= 0 || res.LoadFraction >= 1 {
		tst.Errorf("best-effort load fraction %g must be inside (0, 1)", res.LoadFraction)
	}
	if chk.Verbose {
		io.Pforan("λ = %v\n", res.LoadFraction)
	}
}

func Test_solver06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver06. decreasing custom curve is a configuration error")

	sim := linSim(51)
	sim.Soil.Layers[0].Model = "custom"
	sim.Soil.Layers[0].Prms = dbf.Params{
		&dbf.P{N: "y0", V: 0}, &dbf.P{N: "p0", V: 0},
		&dbf.P{N: "y1", V: 0.01}, &dbf.P{N: "p1", V: 50},
		&dbf.P{N: "y2", V: 0.02}, &dbf.P{N: "p2", V: 40},
	}
	res, err := Solve(context.Background(), sim)
	if err == nil {
		tst.Errorf("a curve with decreasing reaction must be rejected")
		return
	}
	if res != nil {
		tst.Errorf("a rejected analysis must not return results")
	}

	// the error names the curve, not the iteration
	if !strings.Contains(err.Error(), "ill-posed") {
		tst.Errorf("unexpected error:\n%v", err)
	}
}

func Test_solver07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver07. equilibrium is independent of the step count")

	solve := func(nsteps int) *Results {
		sim, err := inp.ReadSim("data/softclay.sim")
		if err != nil {
			tst.Errorf("ReadSim failed:\n%v", err)
			return nil
		}
		sim.Solver.Nsteps = nsteps
		res, err := Solve(context.Background(), sim)
		if err != nil {
			tst.Errorf("Solve failed:\n%v", err)
			return nil
		}
		if !res.Converged {
			tst.Errorf("analysis with %d steps did not converge", nsteps)
			return nil
		}
		chk.IntAssert(res.LoadSteps, nsteps)
		if res.Iterations < res.LoadSteps {
			tst.Errorf("iteration count %d is too low for %d steps", res.Iterations, res.LoadSteps)
		}
		return res
	}

	ref := solve(20)
	if ref == nil {
		return
	}
	for _, nsteps := range []int{2, 5, 10} {
		res := solve(nsteps)
		if res == nil {
			return
		}
		if chk.Verbose {
			io.Pforan("nsteps=%2d  y(0) = %v\n", nsteps, res.Deflections[0])
		}
		chk.Scalar(tst, io.Sf("y(0) nsteps=%d", nsteps), 1e-5, res.Deflections[0], ref.Deflections[0])
	}
}
