// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verification
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Winkler computes the closed-form solution for a semi-infinite pile in soil
// with constant subgrade modulus, loaded at the head by a lateral force and
// a moment. With the characteristic length 1/β where
//
//   β = (k / (4 EI))^(1/4)
//
// the deflection is
//
//   y(z) = exp(-βz) [ c1 cos(βz) + c2 sin(βz) ]
//   c1   = 2β (F - M₀ β) / k
//   c2   = 2 M₀ β² / k
//
// Bending moment and shear follow from M = -EI y″ and V = -EI y‴. The
// solution is valid for piles longer than about 4/β.
type Winkler struct {

	// input
	EI float64 // flexural rigidity
	K  float64 // subgrade modulus (force per unit length per unit deflection)
	F  float64 // lateral force at the head
	M0 float64 // moment at the head

	// derived
	β      float64 // relative stiffness
	c1, c2 float64 // integration constants
}

// Init initialises this structure
func (o *Winkler) Init(prms dbf.Params) {

	// default values
	o.EI = 50000.0
	o.K = 5000.0
	o.F = 100.0
	o.M0 = 0.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "EI":
			o.EI = p.V
		case "k":
			o.K = p.V
		case "F":
			o.F = p.V
		case "M":
			o.M0 = p.V
		}
	}

	// derived
	o.β = math.Pow(o.K/(4.0*o.EI), 0.25)
	o.c1 = 2.0 * o.β * (o.F - o.M0*o.β) / o.K
	o.c2 = 2.0 * o.M0 * o.β * o.β / o.K
}

// Beta returns the relative stiffness β
func (o Winkler) Beta() float64 { return o.β }

// Deflection returns the lateral deflection at depth z
func (o Winkler) Deflection(z float64) float64 {
	s, c := math.Sincos(o.β * z)
	return math.Exp(-o.β*z) * (o.c1*c + o.c2*s)
}

// Moment returns the bending moment at depth z
func (o Winkler) Moment(z float64) float64 {
	s, c := math.Sincos(o.β * z)
	return o.K / (2.0 * o.β * o.β) * math.Exp(-o.β*z) * (o.c2*c - o.c1*s)
}

// Shear returns the shear force at depth z
func (o Winkler) Shear(z float64) float64 {
	s, c := math.Sincos(o.β * z)
	return -o.K / (2.0 * o.β) * math.Exp(-o.β*z) * ((o.c1+o.c2)*c + (o.c2-o.c1)*s)
}

// CheckDeflection compares a computed deflection profile against this solution
func (o Winkler) CheckDeflection(tst *testing.T, z, y []float64, tol float64) {
	for i, zi := range z {
		chk.Scalar(tst, io.Sf("y(%g)", zi), tol, y[i], o.Deflection(zi))
	}
}
