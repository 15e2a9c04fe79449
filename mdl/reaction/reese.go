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

// Reese implements the stiff clay p-y curve of Reese, Cox and Koop (1975) [2]
//
// The curve is the lower envelope of an initial linear branch with slope ks·z
// and a five-segment backbone parameterised by the critical deflection yc:
//
//   (1) p = ks z y                                      initial linear branch
//   (2) p = 0.5 pu (y/yc)^(1/2)                         rising branch,  y ≤ As yc
//   (3) p = 0.5 pu (y/yc)^(1/2)
//         - 0.055 pu ((y - As yc)/(As yc))^(5/4)        peak and softening, y ≤ 6 As yc
//   (4) p = p6 - 0.0625 (pu/yc) (y - 6 As yc)           softening branch,   y ≤ 18 As yc
//   (5) p = p6 - 0.75 pu As                             residual plateau
//
// with p6 the value of branch (3) at y = 6 As yc. Branches share their values
// at the breakpoints by construction, so the curve is continuous; on softening
// branches the returned tangent is zero (never negative) to preserve the
// diagonal dominance of the assembled system.
type Reese struct {

	// parameters
	cu  float64 // undrained shear strength [kPa]
	γ   float64 // effective unit weight [kN/m³]
	ε50 float64 // strain at 50% of maximum deviatoric stress
	ks  float64 // initial modulus of subgrade reaction per unit depth [kN/m³]
	As  float64 // empirical static loading coefficient
	J   float64 // empirical depth coefficient for the shallow envelope
}

// add model to factory
func init() {
	allocators["reese"] = func() Model { return new(Reese) }
}

// Init initialises model
func (o *Reese) Init(prms dbf.Params) (err error) {
	o.As = 0.6
	o.J = 0.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "cu":
			o.cu = p.V
		case "gam":
			o.γ = p.V
		case "eps50":
			o.ε50 = p.V
		case "ks":
			o.ks = p.V
		case "as":
			o.As = p.V
		case "j":
			o.J = p.V
		default:
			return chk.Err("reese: parameter named %q is incorrect", p.N)
		}
	}
	if o.cu <= 0 {
		return chk.Err("reese: undrained shear strength cu must be positive. cu = %g is invalid", o.cu)
	}
	if o.ε50 <= 0 {
		return chk.Err("reese: strain parameter eps50 must be positive. eps50 = %g is invalid", o.ε50)
	}
	if o.ks <= 0 {
		return chk.Err("reese: site stiffness parameter ks must be positive. ks = %g is invalid", o.ks)
	}
	if o.As <= 0 {
		return chk.Err("reese: coefficient As must be positive. As = %g is invalid", o.As)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Reese) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "cu", V: 100},
		&dbf.P{N: "gam", V: 9},
		&dbf.P{N: "eps50", V: 0.005},
		&dbf.P{N: "ks", V: 135000},
		&dbf.P{N: "as", V: 0.6},
		&dbf.P{N: "j", V: 0.5},
	}
}

// Pult returns the ultimate resistance at depth z (shallow/deep envelope)
func (o Reese) Pult(z, b float64) float64 {
	np := 3.0 + o.γ*z/o.cu + o.J*z/b
	if np > 11.0 {
		np = 11.0
	}
	return np * o.cu * b
}

// backbone evaluates branches (2)-(5) at deflection ya ≥ 0
func (o Reese) backbone(ya, pu, yc float64) (p, dpdy float64) {
	yp := o.As * yc // peak deflection
	switch {
	case ya <= yp: // rising branch
		if ya == 0 {
			return 0, 0 // the initial linear branch governs near the origin
		}
		p = 0.5 * pu * math.Sqrt(ya/yc)
		dpdy = p / (2.0 * ya)
	case ya <= 6.0*yp: // peak and softening
		p = 0.5*pu*math.Sqrt(ya/yc) - 0.055*pu*math.Pow((ya-yp)/yp, 1.25)
		dpdy = 0
	case ya <= 18.0*yp: // linear softening
		p6 := 0.5*pu*math.Sqrt(6.0*o.As) - 0.055*pu*math.Pow(5.0, 1.25)
		p = p6 - 0.0625*(pu/yc)*(ya-6.0*yp)
		dpdy = 0
	default: // residual plateau
		p = 0.5*pu*math.Sqrt(6.0*o.As) - 0.055*pu*math.Pow(5.0, 1.25) - 0.75*pu*o.As
		dpdy = 0
	}
	if p < 0 {
		p = 0
	}
	return
}

// P computes reaction and tangent stiffness
func (o Reese) P(z, y, b float64) (p, dpdy float64, err error) {
	pu := o.Pult(z, b)
	yc := o.ε50 * b
	ya := math.Abs(y)
	kini := o.ks * z
	plin := kini * ya
	p, dpdy = o.backbone(ya, pu, yc)
	if ya == 0 || plin < p {
		p = plin
		dpdy = kini
	}
	if y < 0 {
		p = -p
	}
	return
}
