// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdm implements the finite-difference solver for laterally loaded
// piles: mesh generation, banded assembly of the beam-column operator with
// nonlinear soil reaction, boundary-condition enforcement and the
// Newton-Raphson iteration with adaptive load stepping.
package fdm

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"

	"github.com/mjamiv/pile-designer/inp"
	"github.com/mjamiv/pile-designer/mdl/reaction"
)

// head condition codes
const (
	HeadFree = iota
	HeadFixed
	HeadPinned
)

// Domain holds the discretised pile, the soil-layer binding and all
// workspace vectors for one solve. Each solve owns its Domain exclusively;
// concurrent analyses must use separate Domains.
type Domain struct {

	// input
	Sim *inp.Simulation // input data

	// mesh
	N        int              // number of nodes
	H        float64          // node spacing
	B        float64          // pile width/diameter
	Z        []float64        // [N] node depths, 0 at the head
	EI       []float64        // [N] flexural rigidity at each node
	Mdl      []reaction.Model // [N] p-y model bound to each node
	LoadNode int              // node receiving the lateral load
	Head     int              // head condition code

	// reduced stencil coefficients (ghost nodes eliminated at setup, §bcs.go)
	stenCol [][]int     // [N] column indices of the structural part
	stenC   [][]float64 // [N] structural (EI) coefficients
	stenGol [][]int     // [N] column indices of the axial part
	stenG   [][]float64 // [N] axial-term patterns (to be multiplied by λP/h²)
	dirich  []bool      // [N] Dirichlet (prescribed deflection) rows
	wq      []float64   // [N] soil quadrature weight (½ at the ends)
	fextF   []float64   // [N] external force pattern per unit lateral load
	fextM   []float64   // [N] external force pattern per unit head moment

	// solution and workspace
	Y    []float64   // [N] current deflections
	Yprv []float64   // [N] deflections before the last Newton update
	ΔY   []float64   // [N] last applied Newton increment
	Fb   []float64   // [N] right-hand side: negative of residual
	Wb   []float64   // [N] linear solver workspace (increment)
	Fext []float64   // [N] external force vector at the current load fraction
	Kb   *la.Triplet // tangent matrix (pentadiagonal, triplet form)

	// linear solver
	LinSol   la.LinSol // banded/sparse direct solver
	InitLSol bool      // linear solver needs initialisation
}

// NewDomain builds the mesh, samples pile properties at the nodes, binds
// soil layers to nodes and prepares the reduced stencil coefficients.
// The Simulation must have been validated with Init beforehand.
func NewDomain(sim *inp.Simulation) (o *Domain) {

	o = new(Domain)
	o.Sim = sim

	// mesh
	o.N = sim.Solver.Nnodes
	o.H = sim.Pile.Length / float64(o.N-1)
	o.B = sim.Pile.Diameter
	o.Z = utl.LinSpace(0, sim.Pile.Length, o.N)

	// per-node properties and layer binding
	o.EI = make([]float64, o.N)
	o.Mdl = make([]reaction.Model, o.N)
	for i := 0; i < o.N; i++ {
		o.EI[i] = sim.Pile.EIat(o.Z[i])
		o.Mdl[i] = sim.Soil.Layers[sim.Soil.LayerAt(o.Z[i])].Mdl
	}

	// load application node
	o.LoadNode = int(math.Floor(sim.Load.Depth/o.H + 0.5))
	if o.LoadNode > o.N-1 {
		o.LoadNode = o.N - 1
	}

	// head condition
	switch sim.Solver.Head {
	case "fixed":
		o.Head = HeadFixed
	case "pinned":
		o.Head = HeadPinned
	default:
		o.Head = HeadFree
	}

	// reduced stencil coefficients
	o.buildStencils()

	// workspace
	o.Y = make([]float64, o.N)
	o.Yprv = make([]float64, o.N)
	o.ΔY = make([]float64, o.N)
	o.Fb = make([]float64, o.N)
	o.Wb = make([]float64, o.N)
	o.Fext = make([]float64, o.N)
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.N, o.N, 9*o.N)

	// linear solver
	o.LinSol = la.GetSolver("umfpack")
	o.InitLSol = true
	return
}

// Free frees the linear solver resources
func (o *Domain) Free() {
	if !o.InitLSol {
		o.LinSol.Free()
	}
	o.InitLSol = true
}

// SetInitialGuess seeds the deflection field with a previous solution
// (continuation across solves). The values are copied, never aliased.
func (o *Domain) SetInitialGuess(y []float64) {
	n := len(y)
	if n > o.N {
		n = o.N
	}
	copy(o.Y[:n], y[:n])
}
