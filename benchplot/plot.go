// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders joined benchmark sets as per-benchmark
// bar charts with error bars, one bar per source.
//
// The image formats (png, svg, pdf, eps) are drawn in-process with
// gonum/plot. The gnuplot format instead emits a native gnuplot script
// per benchmark and pipes it to a spawned gnuplot process.
package benchplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/benchkit/benchcmp/benchproc"
)

// A Format is a chart output format.
type Format string

const (
	PNG     Format = "png"
	SVG     Format = "svg"
	PDF     Format = "pdf"
	EPS     Format = "eps"
	Gnuplot Format = "gnuplot"
)

// ParseFormat validates a format name from the configuration surface.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case PNG, SVG, PDF, EPS, Gnuplot:
		return f, nil
	}
	return "", fmt.Errorf("unknown chart format %q (want png, svg, pdf, eps, or gnuplot)", s)
}

// Options configures chart rendering.
type Options struct {
	// Dir is the output directory. It is created if missing.
	Dir string

	Format Format

	// LogScale draws the ns/iter axis on a log scale.
	LogScale bool
}

// Render writes one chart per set into opt.Dir and returns the number
// of charts written. File names derive from the benchmark name with
// the "::" qualifier separator replaced to stay filesystem-safe.
func Render(sets []benchproc.NameSet, opt Options) (int, error) {
	if err := os.MkdirAll(opt.Dir, 0777); err != nil {
		return 0, fmt.Errorf("creating chart directory: %w", err)
	}

	for i, set := range sets {
		path := filepath.Join(opt.Dir, fileName(set.Name)+"."+string(opt.Format))
		var err error
		if opt.Format == Gnuplot {
			err = renderGnuplot(set, path, opt.LogScale)
		} else {
			err = renderImage(set, path, opt.LogScale)
		}
		if err != nil {
			return i, fmt.Errorf("plotting %s: %w", set.Name, err)
		}
	}
	return len(sets), nil
}

// fileName maps a benchmark name to a filesystem-safe base name.
func fileName(name string) string {
	name = strings.ReplaceAll(name, benchproc.Separator, "..")
	return strings.ReplaceAll(name, "/", "-")
}

var barColor = color.RGBA{R: 54, G: 162, B: 235, A: 255}

func renderImage(set benchproc.NameSet, path string, logScale bool) error {
	p := plot.New()
	p.Title.Text = set.Name
	p.Y.Label.Text = "ns/iter"
	if logScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}

	values := make(plotter.Values, len(set.Assocs))
	labels := make([]string, len(set.Assocs))
	errs := make(errorPoints, len(set.Assocs))
	var yMax float64
	for i, assoc := range set.Assocs {
		values[i] = float64(assoc.Record.Ns)
		labels[i] = assoc.Label
		errs[i].x = float64(i)
		errs[i].y = float64(assoc.Record.Ns)
		errs[i].err = float64(assoc.Record.Variance)
		if top := errs[i].y + errs[i].err; top > yMax {
			yMax = top
		}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return err
	}
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(labels...)

	ebars, err := plotter.NewYErrorBars(errs)
	if err != nil {
		return err
	}
	p.Add(ebars)

	if !logScale {
		// Headroom so the tallest error bar is not flush with the
		// axis.
		p.Y.Min = 0
		p.Y.Max = yMax * 1.02
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

// errorPoints adapts per-source measurements to gonum's XYer and
// YErrorer, with a symmetric error equal to the reported variance.
type errorPoints []struct {
	x, y, err float64
}

func (e errorPoints) Len() int                    { return len(e) }
func (e errorPoints) XY(i int) (float64, float64) { return e[i].x, e[i].y }
func (e errorPoints) YError(i int) (float64, float64) {
	return e[i].err, e[i].err
}
