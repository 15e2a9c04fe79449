// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"context"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/mjamiv/pile-designer/inp"
)

// Solve validates the simulation data, discretises the pile and runs the
// nonlinear analysis up to the full load. On cancellation the context error
// is returned and any partial solution is discarded.
func Solve(ctx context.Context, sim *inp.Simulation) (res *Results, err error) {
	return SolveFrom(ctx, sim, nil)
}

// SolveFrom runs the analysis seeding the first load step with a previous
// deflection field (continuation across solves, e.g. a nearby load case).
// The guess is copied in, never aliased; nil means starting from rest.
func SolveFrom(ctx context.Context, sim *inp.Simulation, yprev []float64) (res *Results, err error) {
	err = sim.Init()
	if err != nil {
		return
	}
	dom := NewDomain(sim)
	defer dom.Free()
	if yprev != nil {
		dom.SetInitialGuess(yprev)
	}
	return dom.Run(ctx)
}

// Run applies the load in increments with adaptive step control. Each load
// step is solved with Newton-Raphson iterations; a step that fails to
// converge is retried from the backed-up state with half the increment.
// When the increment falls below MinFrac of the total load the last
// converged state is reported with Converged set to false.
func (o *Domain) Run(ctx context.Context) (res *Results, err error) {

	dat := o.Sim.Solver
	Δλini := 1.0 / float64(dat.Nsteps)
	Δλ := Δλini
	λ := 0.0

	res = new(Results)
	backup := make([]float64, o.N)

	for λ < 1 {

		// cancellation is honoured at load-step boundaries only
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// trial load fraction
		λnew := λ + Δλ
		if λnew > 1 {
			λnew = 1
		}

		// backup and iterate
		la.VecCopy(backup, 1, o.Y)
		it, diverging, e := o.iterate(λnew)
		if e != nil {
			return nil, e
		}

		// restore and reduce the increment
		if diverging {
			if dat.ShowR {
				io.Pfred(". . . load step diverging (λ=%g) . . .\n", λnew)
			}
			la.VecCopy(o.Y, 1, backup)
			Δλ *= 0.5
			if Δλ < dat.MinFrac {
				err = o.extract(res)
				if err != nil {
					return nil, err
				}
				res.LoadFraction = λ
				return res, nil
			}
			continue
		}

		// accept the step
		λ = λnew
		Δλ = Δλini
		res.LoadSteps++
		res.Iterations += it
	}

	err = o.extract(res)
	if err != nil {
		return nil, err
	}
	res.Converged = true
	res.LoadFraction = λ
	return
}

// iterate solves the nonlinear equilibrium at load fraction λ starting from
// the current deflection state. A residual that grows on two consecutive
// iterations, or an exhausted iteration budget, triggers under-relaxation:
// the last increment is halved and reapplied, up to NmaxRlx times. When
// relaxation is also exhausted the step is flagged as diverging.
func (o *Domain) iterate(λ float64) (it int, diverging bool, err error) {

	dat := o.Sim.Solver
	var largFb, largFb0, prevFb float64
	var ndvg, nrlx int

	if dat.ShowR {
		io.Pf("\n%13s%4s%23s\n", "λ", "it", "‖fb‖")
		defer func() {
			io.Pf("%13.6e%4d%23.15e\n", λ, it, largFb)
		}()
	}

	for {

		// assemble right-hand side (negative of residual) and tangent matrix
		err = o.assemble(λ)
		if err != nil {
			return
		}
		largFb = la.VecNorm(o.Fb)
		if it == 0 {
			largFb0 = largFb
		}
		if dat.ShowR {
			io.Pf("%13.6e%4d%23.15e\n", λ, it, largFb)
		}

		// convergence checks (after the first update)
		if it > 0 {
			if o.converged(largFb) {
				return
			}
		}

		// divergence and relaxation control
		relax := false
		if it > 1 {
			if largFb > prevFb {
				ndvg++
			} else {
				ndvg = 0
			}
			if ndvg >= 2 {
				relax = true
			}
		}
		if it >= dat.NmaxIt {
			relax = true
		}
		if relax {
			if nrlx >= dat.NmaxRlx {
				diverging = true
				return
			}
			for i := 0; i < o.N; i++ {
				o.ΔY[i] *= 0.5
				o.Y[i] = o.Yprv[i] + o.ΔY[i]
			}
			nrlx++
			ndvg = 0
			prevFb = largFb0
			continue
		}
		prevFb = largFb

		// initialise linear solver (first iteration of the first step only)
		if o.InitLSol {
			err = o.LinSol.InitR(o.Kb, false, false, false)
			if err != nil {
				err = chk.Err("cannot initialise linear solver:\n%v", err)
				return
			}
			o.InitLSol = false
		}

		// factorise and solve for the increment
		err = o.LinSol.Fact()
		if err != nil {
			err = chk.Err("factorisation failed:\n%v", err)
			return
		}
		err = o.LinSol.SolveR(o.Wb, o.Fb, false)
		if err != nil {
			err = chk.Err("solve failed:\n%v", err)
			return
		}

		// update deflections
		la.VecCopy(o.Yprv, 1, o.Y)
		for i := 0; i < o.N; i++ {
			o.Y[i] += o.Wb[i]
			o.ΔY[i] = o.Wb[i]
		}
		it++
	}
}

// converged applies the three convergence criteria to the current state:
// relative residual, relative increment and relative energy. All three must
// hold simultaneously; each falls back to an absolute check when its
// reference quantity vanishes.
func (o *Domain) converged(normFb float64) bool {

	tol := o.Sim.Solver.Tol

	// residual: ‖R‖ against ‖Fext‖
	normFext := la.VecNorm(o.Fext)
	den := normFext
	if den < tol {
		den = 1
	}
	if normFb >= tol*den {
		return false
	}

	// increment: ‖δy‖ against ‖y‖
	normΔy := la.VecNorm(o.ΔY)
	normY := la.VecNorm(o.Y)
	den = normY
	if den < tol {
		den = 1
	}
	if normΔy >= tol*den {
		return false
	}

	// energy: |δy·R| against |y·Fext|
	eden := math.Abs(la.VecDot(o.Y, o.Fext))
	if eden < tol {
		eden = 1
	}
	return math.Abs(la.VecDot(o.ΔY, o.Fb)) < tol*tol*eden
}
