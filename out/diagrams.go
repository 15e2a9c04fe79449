// Copyright 2017 The PileDesigner Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mjamiv/pile-designer/fdm"
)

// ExportDeflectionDiagram saves the deflected shape to an image file.
// Depth grows downwards on the vertical axis, matching the usual
// presentation of pile analysis results.
func ExportDeflectionDiagram(res *fdm.Results, filename string) error {
	return exportProfile(res.Depths, res.Deflections, "Deflected Shape", "Deflection (m)", filename)
}

// ExportMomentDiagram saves the bending moment profile to an image file
func ExportMomentDiagram(res *fdm.Results, filename string) error {
	return exportProfile(res.Depths, res.Moments, "Bending Moment", "Moment (kNm)", filename)
}

// ExportShearDiagram saves the shear force profile to an image file
func ExportShearDiagram(res *fdm.Results, filename string) error {
	return exportProfile(res.Depths, res.Shears, "Shear Force", "Shear (kN)", filename)
}

// ExportReactionDiagram saves the mobilised soil reaction profile to an image file
func ExportReactionDiagram(res *fdm.Results, filename string) error {
	return exportProfile(res.Depths, res.SoilReactions, "Soil Reaction", "Reaction (kN/m)", filename)
}

func exportProfile(z, v []float64, title, xlabel, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Depth (m)"

	// depth increases downwards
	p.Y.Min = z[len(z)-1]
	p.Y.Max = 0

	pts := make(plotter.XYs, len(z))
	for i := range z {
		pts[i] = plotter.XY{X: v[i], Y: z[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 90, B: 181, A: 255}
	p.Add(line)

	// pile axis reference
	axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: z[len(z)-1]}})
	if err != nil {
		return err
	}
	axis.LineStyle.Color = color.Gray{Y: 128}
	axis.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(axis)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}
	return p.Save(5*vg.Inch, 7*vg.Inch, filename)
}
