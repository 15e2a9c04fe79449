// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import "math"

// Results holds the converged (or best-effort) solution profiles and their
// extrema. The JSON keys follow the report format consumed downstream.
type Results struct {

	// status
	Converged    bool    `json:"converged"`    // all load steps converged
	Iterations   int     `json:"iterations"`   // cumulative Newton iterations
	LoadSteps    int     `json:"loadSteps"`    // number of accepted load steps
	LoadFraction float64 `json:"loadFraction"` // fraction of the load carried by this solution

	// profiles
	Depths        []float64 `json:"depths"`        // [N] node depths
	Deflections   []float64 `json:"deflections"`   // [N] lateral deflections
	Moments       []float64 `json:"moments"`       // [N] bending moments
	Shears        []float64 `json:"shears"`        // [N] shear forces
	SoilReactions []float64 `json:"soilReactions"` // [N] mobilised soil reaction per unit length

	// extrema (absolute values) and their locations
	MaxDeflection      float64 `json:"maxDeflection"`
	MaxDeflectionDepth float64 `json:"maxDeflectionDepth"`
	MaxMoment          float64 `json:"maxMoment"`
	MaxMomentDepth     float64 `json:"maxMomentDepth"`
	MaxShear           float64 `json:"maxShear"`
	MaxShearDepth      float64 `json:"maxShearDepth"`

	// deflection at the load application point
	DeflectionAtLoad float64 `json:"deflectionAtLoad"`
}

// extract derives moments, shears and soil reactions from the deflection
// field. Moments use the central second difference at interior nodes and
// one-sided second-order formulas at the ends. Shears are the first
// difference of the moment profile.
func (o *Domain) extract(res *Results) (err error) {

	n := o.N
	m := n - 1
	h := o.H
	h2 := h * h

	res.Depths = make([]float64, n)
	res.Deflections = make([]float64, n)
	res.Moments = make([]float64, n)
	res.Shears = make([]float64, n)
	res.SoilReactions = make([]float64, n)
	copy(res.Depths, o.Z)
	copy(res.Deflections, o.Y)

	// moments: M = -EI y″
	res.Moments[0] = -o.EI[0] * (2*o.Y[0] - 5*o.Y[1] + 4*o.Y[2] - o.Y[3]) / h2
	res.Moments[m] = -o.EI[m] * (2*o.Y[m] - 5*o.Y[m-1] + 4*o.Y[m-2] - o.Y[m-3]) / h2
	for i := 1; i < m; i++ {
		res.Moments[i] = -o.EI[i] * (o.Y[i-1] - 2*o.Y[i] + o.Y[i+1]) / h2
	}

	// shears: V = dM/dz
	res.Shears[0] = (-3*res.Moments[0] + 4*res.Moments[1] - res.Moments[2]) / (2 * h)
	res.Shears[m] = (3*res.Moments[m] - 4*res.Moments[m-1] + res.Moments[m-2]) / (2 * h)
	for i := 1; i < m; i++ {
		res.Shears[i] = (res.Moments[i+1] - res.Moments[i-1]) / (2 * h)
	}

	// mobilised soil reaction
	for i := 0; i < n; i++ {
		res.SoilReactions[i], _, err = o.Mdl[i].P(o.Z[i], o.Y[i], o.B)
		if err != nil {
			return
		}
	}

	// extrema
	res.MaxDeflection, res.MaxDeflectionDepth = absmax(res.Deflections, o.Z)
	res.MaxMoment, res.MaxMomentDepth = absmax(res.Moments, o.Z)
	res.MaxShear, res.MaxShearDepth = absmax(res.Shears, o.Z)
	res.DeflectionAtLoad = o.Y[o.LoadNode]
	return
}

// absmax returns the largest absolute value in v and the depth where it occurs
func absmax(v, z []float64) (vmax, zmax float64) {
	for i, x := range v {
		if a := math.Abs(x); a > vmax {
			vmax, zmax = a, z[i]
		}
	}
	return
}
