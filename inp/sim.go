// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/mjamiv/pile-designer/mdl/reaction"
)

// SectionData holds one depth-bounded pile section with constant flexural rigidity
type SectionData struct {
	Zbot float64 `json:"zbot"` // bottom depth of section [m]
	EI   float64 `json:"ei"`   // flexural rigidity [kN·m²]
}

// PileData holds pile geometry and properties
type PileData struct {
	Length   float64        `json:"length"`   // embedded length [m]
	Diameter float64        `json:"diameter"` // diameter or width [m]
	EI       float64        `json:"ei"`       // flexural rigidity [kN·m²]; ignored if sections are given
	Sections []*SectionData `json:"sections"` // piecewise-constant EI sections, ordered by depth
	Material string         `json:"material"` // material tag; informational only
}

// LayerData holds one soil layer and its p-y model
type LayerData struct {

	// input
	Ztop  float64    `json:"ztop"`  // top depth of layer [m]
	Zbot  float64    `json:"zbot"`  // bottom depth of layer [m]
	Model string     `json:"model"` // p-y model name: "matlock", "reese", "apisand", "lin", "custom"
	Prms  dbf.Params `json:"prms"`  // model parameters

	// derived
	Mdl reaction.Model `json:"-"` // allocated and initialised p-y model
}

// SoilData holds the soil profile
type SoilData struct {
	Layers []*LayerData `json:"layers"` // ordered, depth-contiguous layers covering [0, L]
}

// LoadData holds the applied loads
type LoadData struct {
	Lateral float64 `json:"lateral"` // lateral load [kN]
	Moment  float64 `json:"moment"`  // moment applied at the head [kN·m]
	Axial   float64 `json:"axial"`   // axial load [kN]; compression positive
	Depth   float64 `json:"depth"`   // application depth of the lateral load [m]; normally 0 (head)
}

// SolverData holds solver configuration
type SolverData struct {
	Nnodes  int     `json:"nnodes"`  // number of finite-difference nodes
	NmaxIt  int     `json:"nmaxit"`  // max Newton iterations per load step
	Tol     float64 `json:"tol"`     // convergence tolerance
	Nsteps  int     `json:"nsteps"`  // number of load steps
	Head    string  `json:"head"`    // head condition: "free", "fixed", "pinned"
	ShowR   bool    `json:"showr"`   // show residuals during iterations
	NmaxRlx int     `json:"nmaxrlx"` // under-relaxation retry budget
	MinFrac float64 `json:"minfrac"` // minimum load increment, as a fraction of the total load, before giving up
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.Nnodes = 50
	o.NmaxIt = 50
	o.Tol = 1e-6
	o.Nsteps = 10
	o.Head = "free"
	o.NmaxRlx = 4
	o.MinFrac = 1.0 / 64.0
}

// Simulation holds all simulation data
type Simulation struct {
	Desc   string     `json:"desc"`   // description of simulation
	Pile   PileData   `json:"pile"`   // pile data
	Soil   SoilData   `json:"soil"`   // soil profile
	Load   LoadData   `json:"load"`   // load case
	Solver SolverData `json:"solver"` // solver configuration
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q", simfilepath)
	}
	o = new(Simulation)
	o.Solver.SetDefault()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init validates the input data and allocates the p-y models. Call it before
// solving when the Simulation was built in memory instead of read with ReadSim.
func (o *Simulation) Init() (err error) {

	// pile
	if o.Pile.Length <= 0 {
		return chk.Err("pile length must be positive. L = %g is invalid", o.Pile.Length)
	}
	if o.Pile.Diameter <= 0 {
		return chk.Err("pile diameter must be positive. D = %g is invalid", o.Pile.Diameter)
	}
	if len(o.Pile.Sections) == 0 {
		if o.Pile.EI <= 0 {
			return chk.Err("pile flexural rigidity must be positive. EI = %g is invalid", o.Pile.EI)
		}
	} else {
		zprev := 0.0
		for i, sec := range o.Pile.Sections {
			if sec.EI <= 0 {
				return chk.Err("section %d: flexural rigidity must be positive. EI = %g is invalid", i, sec.EI)
			}
			if sec.Zbot <= zprev {
				return chk.Err("section %d: bottom depth %g must be greater than %g (sections ordered by depth)", i, sec.Zbot, zprev)
			}
			zprev = sec.Zbot
		}
		if zprev < o.Pile.Length {
			return chk.Err("pile sections end at depth %g but the pile is %g long", zprev, o.Pile.Length)
		}
	}

	// soil profile: ordered, contiguous, covering [0, L]
	if len(o.Soil.Layers) == 0 {
		return chk.Err("soil profile must have at least one layer")
	}
	zprev := 0.0
	for i, lay := range o.Soil.Layers {
		if lay.Ztop != zprev {
			if lay.Ztop > zprev {
				return chk.Err("layer %d: gap in soil profile between depths %g and %g", i, zprev, lay.Ztop)
			}
			return chk.Err("layer %d: overlap in soil profile at depth %g", i, lay.Ztop)
		}
		if lay.Zbot <= lay.Ztop {
			return chk.Err("layer %d: bottom depth %g must be below top depth %g", i, lay.Zbot, lay.Ztop)
		}
		lay.Mdl, err = reaction.New(lay.Model)
		if err != nil {
			return chk.Err("layer %d: %v", i, err)
		}
		err = lay.Mdl.Init(lay.Prms)
		if err != nil {
			return chk.Err("layer %d: %v", i, err)
		}
		zprev = lay.Zbot
	}
	if zprev < o.Pile.Length {
		return chk.Err("soil profile ends at depth %g but the pile is %g long", zprev, o.Pile.Length)
	}

	// load case
	if o.Load.Depth < 0 || o.Load.Depth > o.Pile.Length {
		return chk.Err("lateral load depth %g is outside the pile [0, %g]", o.Load.Depth, o.Pile.Length)
	}

	// solver configuration
	if o.Solver.Nnodes < 5 {
		return chk.Err("number of nodes must be at least 5. nnodes = %d is invalid", o.Solver.Nnodes)
	}
	if o.Solver.NmaxIt < 1 {
		return chk.Err("max number of iterations must be at least 1. nmaxit = %d is invalid", o.Solver.NmaxIt)
	}
	if o.Solver.Tol <= 0 {
		return chk.Err("convergence tolerance must be positive. tol = %g is invalid", o.Solver.Tol)
	}
	if o.Solver.Nsteps < 1 {
		return chk.Err("number of load steps must be at least 1. nsteps = %d is invalid", o.Solver.Nsteps)
	}
	if o.Solver.NmaxRlx < 1 {
		o.Solver.NmaxRlx = 4
	}
	if o.Solver.MinFrac <= 0 {
		o.Solver.MinFrac = 1.0 / 64.0
	}
	switch o.Solver.Head {
	case "free", "fixed", "pinned":
	default:
		return chk.Err("head condition %q is incorrect; options are \"free\", \"fixed\" and \"pinned\"", o.Solver.Head)
	}
	return
}

// EIat returns the flexural rigidity at depth z (piecewise-constant by depth)
func (o *PileData) EIat(z float64) float64 {
	if len(o.Sections) == 0 {
		return o.EI
	}
	for _, sec := range o.Sections {
		if z <= sec.Zbot {
			return sec.EI
		}
	}
	return o.Sections[len(o.Sections)-1].EI
}

// LayerAt returns the index of the layer containing depth z
func (o *SoilData) LayerAt(z float64) int {
	for i, lay := range o.Layers {
		if z <= lay.Zbot {
			return i
		}
	}
	return len(o.Layers) - 1
}
