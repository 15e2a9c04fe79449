// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// assemble computes the external force vector, the negative residual -R
// (stored in Fb) and the tangent matrix Kb at the load fraction λ and the
// current deflection state Y. Duplicated triplet entries are summed during
// the conversion to compressed-column form, so structural, axial and soil
// contributions are Put independently.
func (o *Domain) assemble(λ float64) (err error) {

	F := λ * o.Sim.Load.Lateral
	M0 := λ * o.Sim.Load.Moment
	P := λ * o.Sim.Load.Axial
	g := P / (o.H * o.H)

	// external forces
	for i := 0; i < o.N; i++ {
		o.Fext[i] = F*o.fextF[i] + M0*o.fextM[i]
	}

	o.Kb.Start()
	for i := 0; i < o.N; i++ {

		// prescribed deflection
		if o.dirich[i] {
			o.Fb[i] = -o.Y[i]
			o.Kb.Put(i, i, 1)
			continue
		}

		// structural part
		r := 0.0
		for k, j := range o.stenCol[i] {
			r += o.stenC[i][k] * o.Y[j]
			o.Kb.Put(i, j, o.stenC[i][k])
		}

		// axial (beam-column) part
		if P != 0 {
			for k, j := range o.stenGol[i] {
				r += g * o.stenG[i][k] * o.Y[j]
				o.Kb.Put(i, j, g*o.stenG[i][k])
			}
		}

		// soil reaction
		var p, dpdy float64
		p, dpdy, err = o.Mdl[i].P(o.Z[i], o.Y[i], o.B)
		if err != nil {
			return
		}
		r += o.wq[i] * p
		o.Kb.Put(i, i, o.wq[i]*dpdy)

		o.Fb[i] = o.Fext[i] - r
	}
	return
}
