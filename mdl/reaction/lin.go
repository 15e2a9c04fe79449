// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear reaction model: p(y) := k0 * y
// It corresponds to a uniform Winkler (elastic subgrade) foundation and is
// mainly used to validate the solver against closed-form elastic solutions.
type Lin struct {
	k0 float64 // subgrade modulus [kN/m²]
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "k0":
			o.k0 = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect", p.N)
		}
	}
	if o.k0 <= 0 {
		return chk.Err("lin: subgrade modulus k0 must be positive. k0 = %g is invalid", o.k0)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "k0", V: 5000},
	}
}

// P computes reaction and tangent stiffness
func (o Lin) P(z, y, b float64) (p, dpdy float64, err error) {
	return o.k0 * y, o.k0, nil
}

// Pult returns the ultimate resistance; a linear spring never yields
func (o Lin) Pult(z, b float64) float64 {
	return math.MaxFloat64
}
