// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"

	"github.com/mjamiv/pile-designer/fdm"
)

// AsciiProfiles renders the deflection, moment and shear profiles as
// terminal plots. The horizontal axis runs along the pile, head on the left.
func AsciiProfiles(res *fdm.Results) string {

	var b bytes.Buffer

	// deflections in millimetres for readable axis labels
	ymm := make([]float64, len(res.Deflections))
	for i, y := range res.Deflections {
		ymm[i] = 1000.0 * y
	}

	io.Ff(&b, "\n%s\n\n", asciigraph.Plot(ymm,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("deflection [mm] along the pile")))

	io.Ff(&b, "%s\n\n", asciigraph.Plot(res.Moments,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("bending moment [kNm] along the pile")))

	io.Ff(&b, "%s\n", asciigraph.Plot(res.Shears,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("shear force [kN] along the pile")))

	return b.String()
}
