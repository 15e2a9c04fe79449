// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package reaction implements models for lateral soil reaction (p-y) curves
//  References:
//   [1] Matlock H (1970) Correlations for design of laterally loaded piles in soft clay,
//       Proceedings of the 2nd Offshore Technology Conference, Houston, 577-594
//   [2] Reese LC, Cox WR and Koop FD (1975) Field testing and analysis of laterally
//       loaded piles in stiff clay, Proceedings of the 7th Offshore Technology
//       Conference, Houston, 671-690
//   [3] API RP 2A-WSD (2000) Recommended practice for planning, designing and
//       constructing fixed offshore platforms, 21st edition, American Petroleum Institute
package reaction

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for p-y curves: the lateral soil reaction p [kN/m]
// mobilised at depth z [m] when the pile deflects y [m] sideways, and the tangent
// stiffness dp/dy [kN/m²] used to linearise the soil term.
//  Notes: 1) p must be an odd function of y (reaction opposes deflection)
//         2) dpdy must be non-negative for all y to keep the tangent system
//            diagonally dominant; softening branches return dpdy = 0
type Model interface {
	Init(prms dbf.Params) error                     // initialises model with layer parameters
	GetPrms(example bool) dbf.Params                // gets (an example of) parameters
	P(z, y, b float64) (p, dpdy float64, err error) // computes reaction and tangent
	Pult(z, b float64) float64                      // ultimate resistance at depth z
}

// New returns a new soil reaction model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("p-y model %q is not available in 'reaction' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
