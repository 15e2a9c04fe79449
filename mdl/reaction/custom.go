// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Custom implements a user-supplied tabulated p-y curve, interpolated
// piecewise-linearly and extended as an odd function of y. Points are given
// as numbered parameter pairs y0/p0, y1/p1, ... with deflections in metres
// and reactions in kN/m; beyond the last point the reaction stays constant.
//
// A curve whose reaction decreases anywhere is a configuration error; it is
// detected lazily on the first evaluation and reported distinctly from
// numerical non-convergence.
type Custom struct {

	// parameters
	Y []float64 // deflection abscissae (must start at 0)
	Pvals []float64 // reaction ordinates

	// derived
	checked bool // curve already validated on first evaluation
}

// add model to factory
func init() {
	allocators["custom"] = func() Model { return new(Custom) }
}

// Init initialises model
func (o *Custom) Init(prms dbf.Params) (err error) {
	ys := make(map[int]float64)
	ps := make(map[int]float64)
	nmax := -1
	for _, p := range prms {
		name := strings.ToLower(p.N)
		if len(name) < 2 {
			return chk.Err("custom: parameter named %q is incorrect", p.N)
		}
		idx, aerr := strconv.Atoi(name[1:])
		if aerr != nil {
			return chk.Err("custom: parameter named %q is incorrect", p.N)
		}
		switch name[0] {
		case 'y':
			ys[idx] = p.V
		case 'p':
			ps[idx] = p.V
		default:
			return chk.Err("custom: parameter named %q is incorrect", p.N)
		}
		if idx > nmax {
			nmax = idx
		}
	}
	if nmax < 1 {
		return chk.Err("custom: at least two (y, p) points are required")
	}
	idxs := make([]int, 0, nmax+1)
	for i := range ys {
		if _, ok := ps[i]; !ok {
			return chk.Err("custom: point %d has y%d but no p%d", i, i, i)
		}
		idxs = append(idxs, i)
	}
	if len(idxs) != len(ps) {
		return chk.Err("custom: numbers of y and p parameters do not match")
	}
	sort.Ints(idxs)
	o.Y = make([]float64, len(idxs))
	o.Pvals = make([]float64, len(idxs))
	for j, i := range idxs {
		o.Y[j] = ys[i]
		o.Pvals[j] = ps[i]
	}
	if o.Y[0] != 0 || o.Pvals[0] != 0 {
		return chk.Err("custom: curve must start at the origin; got y=%g p=%g", o.Y[0], o.Pvals[0])
	}
	for j := 1; j < len(o.Y); j++ {
		if o.Y[j] <= o.Y[j-1] {
			return chk.Err("custom: deflection abscissae must be strictly increasing; y[%d]=%g y[%d]=%g", j-1, o.Y[j-1], j, o.Y[j])
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Custom) GetPrms(example bool) dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "y0", V: 0}, &dbf.P{N: "p0", V: 0},
		&dbf.P{N: "y1", V: 0.01}, &dbf.P{N: "p1", V: 50},
		&dbf.P{N: "y2", V: 0.05}, &dbf.P{N: "p2", V: 90},
	}
}

// Pult returns the last tabulated reaction
func (o Custom) Pult(z, b float64) float64 {
	return o.Pvals[len(o.Pvals)-1]
}

// P computes reaction and tangent stiffness
func (o *Custom) P(z, y, b float64) (p, dpdy float64, err error) {
	if !o.checked {
		for j := 1; j < len(o.Pvals); j++ {
			if o.Pvals[j] < o.Pvals[j-1] {
				return 0, 0, chk.Err("custom: ill-posed p-y curve: reaction decreases from p=%g to p=%g at y=%g; curves must be monotonically non-decreasing", o.Pvals[j-1], o.Pvals[j], o.Y[j])
			}
		}
		o.checked = true
	}
	ya := math.Abs(y)
	n := len(o.Y)
	if ya >= o.Y[n-1] {
		p = o.Pvals[n-1]
		dpdy = 0
	} else {
		j := sort.SearchFloat64s(o.Y, ya)
		if o.Y[j] > ya {
			j--
		}
		slope := (o.Pvals[j+1] - o.Pvals[j]) / (o.Y[j+1] - o.Y[j])
		p = o.Pvals[j] + slope*(ya-o.Y[j])
		dpdy = slope
	}
	if y < 0 {
		p = -p
	}
	return
}
