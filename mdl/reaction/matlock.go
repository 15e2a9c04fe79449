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

// Matlock implements the soft clay p-y curve of Matlock (1970) [1]
//
//   pu  = min(3 + γ'z/cu + J z/b, 9) cu b
//   y50 = 2.5 ε50 b
//   p   = 0.5 pu (y/y50)^(1/3)   for 0 < y < 8 y50
//   p   = pu                     for y ≥ 8 y50
//
// The analytic tangent is infinite at y = 0; the returned tangent is capped
// at kcap to keep the linearised system well-posed on the first iteration.
type Matlock struct {

	// parameters
	cu   float64 // undrained shear strength [kPa]
	γ    float64 // effective unit weight [kN/m³]
	ε50  float64 // strain at 50% of maximum deviatoric stress
	J    float64 // empirical depth coefficient (0.25 to 0.5)
	kcap float64 // cap on the initial tangent stiffness [kN/m²]
}

// add model to factory
func init() {
	allocators["matlock"] = func() Model { return new(Matlock) }
}

// Init initialises model
func (o *Matlock) Init(prms dbf.Params) (err error) {
	o.J = 0.5
	o.kcap = 1e6
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cu":
			o.cu = p.V
		case "gam":
			o.γ = p.V
		case "eps50":
			o.ε50 = p.V
		case "j":
			o.J = p.V
		case "kcap":
			o.kcap = p.V
		default:
			return chk.Err("matlock: parameter named %q is incorrect", p.N)
		}
	}
	if o.cu <= 0 {
		return chk.Err("matlock: undrained shear strength cu must be positive. cu = %g is invalid", o.cu)
	}
	if o.ε50 <= 0 {
		return chk.Err("matlock: strain parameter eps50 must be positive. eps50 = %g is invalid", o.ε50)
	}
	if o.γ < 0 {
		return chk.Err("matlock: effective unit weight gam cannot be negative. gam = %g is invalid", o.γ)
	}
	if o.kcap <= 0 {
		return chk.Err("matlock: tangent stiffness cap kcap must be positive. kcap = %g is invalid", o.kcap)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Matlock) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "cu", V: 40},
		&dbf.P{N: "gam", V: 8},
		&dbf.P{N: "eps50", V: 0.01},
		&dbf.P{N: "j", V: 0.5},
		&dbf.P{N: "kcap", V: 1e6},
	}
}

// Pult returns the ultimate resistance at depth z (shallow/deep envelope)
func (o Matlock) Pult(z, b float64) float64 {
	np := 3.0 + o.γ*z/o.cu + o.J*z/b
	if np > 9.0 {
		np = 9.0
	}
	return np * o.cu * b
}

// P computes reaction and tangent stiffness
func (o Matlock) P(z, y, b float64) (p, dpdy float64, err error) {
	pu := o.Pult(z, b)
	y50 := 2.5 * o.ε50 * b
	ya := math.Abs(y)
	if ya >= 8.0*y50 {
		p = pu
		dpdy = 0
	} else {
		p = 0.5 * pu * math.Cbrt(ya/y50)
		// dp/dy = p/(3y) blows up at the origin; cap it
		dpdy = o.kcap
		if ya > 0 {
			dpdy = p / (3.0 * ya)
			if dpdy > o.kcap {
				dpdy = o.kcap
			}
		}
	}
	if y < 0 {
		p = -p
	}
	return
}
