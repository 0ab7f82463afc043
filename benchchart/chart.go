// Copyright 2025 The benchtab Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders quick-look charts from the aggregate
// datasets. The publication plots are typeset elsewhere from the
// exported files; these renderings exist to eyeball a run without a
// typesetting toolchain.
package benchchart

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/rtlearn/benchtab/benchagg"
)

// CrossScatter plots the model sizes of two tools against each other,
// one point per (statesA, statesB) pair, with a y=x reference line.
func CrossScatter(points []benchagg.ScatterPoint, toolA, toolB string) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = toolA + " vs " + toolB
	pl.X.Label.Text = toolA + " states"
	pl.Y.Label.Text = toolB + " states"

	xys := make(plotter.XYs, len(points))
	max := 1.0
	for i, p := range points {
		xys[i].X = float64(p.StatesA)
		xys[i].Y = float64(p.StatesB)
		if xys[i].X > max {
			max = xys[i].X
		}
		if xys[i].Y > max {
			max = xys[i].Y
		}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Radius = vg.Points(2)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: max, Y: max}})
	if err != nil {
		return nil, err
	}
	diag.LineStyle.Color = color.Gray{Y: 0xa0}

	pl.Add(plotter.NewGrid(), diag, s)
	return pl, nil
}

// ToolScatter plots one tool's model sizes against the benchmark
// sample counts.
func ToolScatter(points []benchagg.SamplePoint, tool string) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = tool
	pl.X.Label.Text = "samples"
	pl.Y.Label.Text = "states"

	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = float64(p.Samples)
		xys[i].Y = float64(p.States)
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Radius = vg.Points(2)

	pl.Add(plotter.NewGrid(), s)
	return pl, nil
}

// Box plots the distribution of one tool's model sizes over its
// computed runs. values is the sorted states sample from the
// aggregator.
func Box(values []float64, tool string) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = tool
	pl.Y.Label.Text = "states"

	b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
	if err != nil {
		return nil, err
	}
	pl.Add(b)
	pl.NominalX(tool)
	return pl, nil
}

// SavePNG renders pl to a PNG file.
func SavePNG(pl *plot.Plot, path string) error {
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(16*vg.Centimeter, 12*vg.Centimeter),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
