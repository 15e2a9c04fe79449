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

// Sand implements the API RP 2A sand p-y curve [3]
//
//   pu = min(C1 z + C2 b, C3 b) γ' z
//   p  = A pu tanh(k z y / (A pu))
//
// where C1, C2, C3 follow from the friction angle, k is the initial modulus
// of subgrade reaction (explicit k0 or correlated from relative density) and
// A is the loading-type factor: A = max(3 - 0.8 z/b, 0.9) for static loading
// and A = 0.9 for cyclic loading.
type Sand struct {

	// parameters
	φ      float64 // friction angle [degrees]
	γ      float64 // effective unit weight [kN/m³]
	Dr     float64 // relative density (0 to 1); used when k0 is not given
	k0     float64 // explicit initial modulus of subgrade reaction [kN/m³]
	cyclic bool    // cyclic loading

	// derived
	c1, c2, c3 float64 // resistance coefficients
	k          float64 // initial modulus actually used [kN/m³]
}

// add model to factory
func init() {
	allocators["apisand"] = func() Model { return new(Sand) }
}

// Init initialises model
func (o *Sand) Init(prms dbf.Params) (err error) {
	o.Dr = -1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "phi":
			o.φ = p.V
		case "gam":
			o.γ = p.V
		case "dr":
			o.Dr = p.V
		case "k0":
			o.k0 = p.V
		case "cyc":
			o.cyclic = p.V > 0
		default:
			return chk.Err("apisand: parameter named %q is incorrect", p.N)
		}
	}
	if o.φ <= 0 || o.φ >= 45 {
		return chk.Err("apisand: friction angle phi must be within (0, 45) degrees. phi = %g is invalid", o.φ)
	}
	if o.γ <= 0 {
		return chk.Err("apisand: effective unit weight gam must be positive. gam = %g is invalid", o.γ)
	}
	if o.k0 <= 0 && o.Dr < 0 {
		return chk.Err("apisand: either the initial modulus k0 or the relative density dr must be given")
	}

	// resistance coefficients (API RP 2A commentary)
	φ := o.φ * math.Pi / 180.0
	α := φ / 2.0
	β := math.Pi/4.0 + φ/2.0
	K0 := 0.4
	Ka := math.Pow(math.Tan(math.Pi/4.0-φ/2.0), 2.0)
	tβ := math.Tan(β)
	tβφ := math.Tan(β - φ)
	o.c1 = K0*math.Tan(φ)*math.Sin(β)/(tβφ*math.Cos(α)) + tβ*tβ*math.Tan(α)/tβφ + K0*tβ*(math.Tan(φ)*math.Sin(β)-math.Tan(α))
	o.c2 = tβ/tβφ - Ka
	o.c3 = Ka*(math.Pow(tβ, 8.0)-1.0) + K0*math.Tan(φ)*math.Pow(tβ, 4.0)

	// initial modulus
	o.k = o.k0
	if o.k <= 0 {
		o.k = modulusFromDr(o.Dr)
	}
	return
}

// modulusFromDr correlates the initial modulus of subgrade reaction [kN/m³]
// with the relative density (submerged sand)
func modulusFromDr(dr float64) float64 {
	switch {
	case dr < 0.35: // loose
		return 5400
	case dr < 0.50: // medium
		return 16300
	case dr < 0.70: // medium dense
		return 24400
	}
	return 34000 // dense
}

// GetPrms gets (an example) of parameters
func (o Sand) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "phi", V: 35},
		&dbf.P{N: "gam", V: 10},
		&dbf.P{N: "dr", V: 0.6},
		&dbf.P{N: "cyc", V: 0},
	}
}

// Pult returns the ultimate resistance at depth z (shallow/deep envelope)
func (o Sand) Pult(z, b float64) float64 {
	pus := (o.c1*z + o.c2*b) * o.γ * z
	pud := o.c3 * b * o.γ * z
	if pud < pus {
		return pud
	}
	return pus
}

// afactor returns the depth/loading-type factor A
func (o Sand) afactor(z, b float64) float64 {
	if o.cyclic {
		return 0.9
	}
	A := 3.0 - 0.8*z/b
	if A < 0.9 {
		A = 0.9
	}
	return A
}

// P computes reaction and tangent stiffness
func (o Sand) P(z, y, b float64) (p, dpdy float64, err error) {
	pu := o.Pult(z, b)
	A := o.afactor(z, b)
	if A*pu < 1e-12 { // at the surface resistance vanishes
		return 0, 0, nil
	}
	ya := math.Abs(y)
	arg := o.k * z * ya / (A * pu)
	p = A * pu * math.Tanh(arg)
	sech := 1.0 / math.Cosh(arg)
	dpdy = o.k * z * sech * sech
	if y < 0 {
		p = -p
	}
	return
}
