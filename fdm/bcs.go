// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// buildStencils derives the reduced finite-difference coefficients with the
// ghost nodes eliminated algebraically. The governing equation at node i is
//
//   EIᵢ/h⁴ (yᵢ₋₂ - 4yᵢ₋₁ + 6yᵢ - 4yᵢ₊₁ + yᵢ₊₂) + P/h² (yᵢ₋₁ - 2yᵢ + yᵢ₊₁) + p(zᵢ,yᵢ) = Fᵢ
//
// and the stencils at nodes 0, 1, N-2, N-1 reach two ghost nodes beyond each
// end. The ghosts are expressed through the boundary conditions:
//
//   free head:   -EI y″(0) = M₀             y₋₁ = 2y₀ - y₁ - α,  α = M₀h²/EI₀
//                 EI y‴(0) + P y′(0) = F    y₋₂ = 4y₀ - 4y₁ + y₂ - 2α + γ + μ(2y₁ - 2y₀ + α)
//                                            γ = -2h³F/EI₀,  μ = Ph²/EI₀
//   fixed head:   y₀ = 0, y′(0) = 0         y₋₁ = y₁
//   pinned head:  y₀ = 0, M(0) = 0          y₋₁ = 2y₀ - y₁
//   free tip:     M = 0                     yₘ₊₁ = 2yₘ - yₘ₋₁
//                 EI y‴(L) + P y′(L) = 0    yₘ₊₂ = 4yₘ - 4yₘ₋₁ + yₘ₋₂ - 2μₘ(yₘ - yₘ₋₁)
//
// The end shear of a beam-column carries the axial contribution P y′, so the
// shear eliminations couple the axial load into the end rows: after the ½
// scaling of the end rows (the end nodes represent half an interval, which
// restores the symmetry of the reduced operator) the extra term is exactly
// P/h² (y₁ - y₀) at the head and P/h² (yₘ₋₁ - yₘ) at the tip, stored with
// the axial stencils. The μα piece cancels the head-moment contribution of
// the interior axial term, so no P·M₀ coupling survives in the external
// forces. The load-dependent elimination constants are stored as unit
// patterns (fextF, fextM) and scaled by the current load fraction during
// assembly.
func (o *Domain) buildStencils() {

	m := o.N - 1
	h2 := o.H * o.H
	h4 := h2 * h2
	c := make([]float64, o.N)
	for i := 0; i < o.N; i++ {
		c[i] = o.EI[i] / h4
	}

	o.stenCol = make([][]int, o.N)
	o.stenC = make([][]float64, o.N)
	o.stenGol = make([][]int, o.N)
	o.stenG = make([][]float64, o.N)
	o.dirich = make([]bool, o.N)
	o.wq = make([]float64, o.N)
	o.fextF = make([]float64, o.N)
	o.fextM = make([]float64, o.N)

	// interior nodes
	for i := 2; i <= m-2; i++ {
		o.stenCol[i] = []int{i - 2, i - 1, i, i + 1, i + 2}
		o.stenC[i] = []float64{c[i], -4 * c[i], 6 * c[i], -4 * c[i], c[i]}
		o.stenGol[i] = []int{i - 1, i, i + 1}
		o.stenG[i] = []float64{1, -2, 1}
		o.wq[i] = 1
	}

	// head rows
	switch o.Head {
	case HeadFree:
		o.stenCol[0] = []int{0, 1, 2}
		o.stenC[0] = []float64{c[0], -2 * c[0], c[0]}
		o.stenGol[0] = []int{0, 1}
		o.stenG[0] = []float64{-1, 1}
		o.wq[0] = 0.5
		o.stenCol[1] = []int{0, 1, 2, 3}
		o.stenC[1] = []float64{-2 * c[1], 5 * c[1], -4 * c[1], c[1]}
		o.stenGol[1] = []int{0, 1, 2}
		o.stenG[1] = []float64{1, -2, 1}
		o.wq[1] = 1
		// elimination constants: row 0 gets F/h - M₀/h²; row 1 gets c₁α
		o.fextM[0] = -1.0 / h2
		o.fextM[1] = o.EI[1] / o.EI[0] / h2
	case HeadFixed:
		o.dirich[0] = true
		o.stenCol[1] = []int{0, 1, 2, 3}
		o.stenC[1] = []float64{-4 * c[1], 7 * c[1], -4 * c[1], c[1]}
		o.stenGol[1] = []int{0, 1, 2}
		o.stenG[1] = []float64{1, -2, 1}
		o.wq[1] = 1
	case HeadPinned:
		o.dirich[0] = true
		o.stenCol[1] = []int{0, 1, 2, 3}
		o.stenC[1] = []float64{-2 * c[1], 5 * c[1], -4 * c[1], c[1]}
		o.stenGol[1] = []int{0, 1, 2}
		o.stenG[1] = []float64{1, -2, 1}
		o.wq[1] = 1
	}

	// tip rows (always free: M = 0 and V = 0)
	o.stenCol[m] = []int{m - 2, m - 1, m}
	o.stenC[m] = []float64{c[m], -2 * c[m], c[m]}
	o.stenGol[m] = []int{m - 1, m}
	o.stenG[m] = []float64{1, -1}
	o.wq[m] = 0.5
	o.stenCol[m-1] = []int{m - 3, m - 2, m - 1, m}
	o.stenC[m-1] = []float64{c[m-1], -4 * c[m-1], 5 * c[m-1], -2 * c[m-1]}
	o.stenGol[m-1] = []int{m - 2, m - 1, m}
	o.stenG[m-1] = []float64{1, -2, 1}
	o.wq[m-1] = 1

	// lateral load as an equivalent nodal force (tributary length h;
	// for a free head at node 0 this is exactly the elimination constant)
	if !o.dirich[o.LoadNode] {
		o.fextF[o.LoadNode] = 1.0 / o.H
	}
}
