// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/splot/hist"
	"github.com/aclements/splot/internal/colormap"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultPercents are the one and two sigma fractions of a normal
// distribution, in percent.
var DefaultPercents = []float64{68.27, 95.45}

var defaultContourStyles = []string{"solid", "dashed", "dotted"}

// SigmaContOptions controls SigmaCont. Color, CVal, LineStyle and
// Label hold one value for every contour or one per contour.
type SigmaContOptions struct {
	// Percent lists the percentages of the sample each contour
	// encloses. Nil means DefaultPercents.
	Percent []float64

	// Bins gives the binning of both axes, or of x and y
	// separately.
	Bins []hist.Bins

	// Color names contour colours. If it is empty, CVal gives
	// positions in [0, 1] along the colour map. If both are empty,
	// up to three contours share the next cycle colour and more
	// are spread across CLim of the colour map.
	Color []string
	CVal  []float64

	// ColorMap names the colour map. Empty means Params.ColorMap.
	ColorMap string

	// CLim is the span of the colour map used for many contours.
	// Nil means [0.33, 0.67].
	CLim []float64

	// LineStyle defaults to solid, dashed and dotted for up to
	// three contours and solid otherwise. Colour-mapped contours
	// are always solid.
	LineStyle []string

	// Label defaults to each contour's percentage. A single label
	// names only the first contour.
	Label []string

	Style Options
	AxisOptions
}

// SigmaCont draws contours around the densest regions of the points
// (x[i], y[i]) that enclose each fraction in o.Percent of the sample.
// It returns the underlying histogram and the contour levels.
func (a *Axes) SigmaCont(x, y []float64, o SigmaContOptions) (*hist.Grid, []float64, error) {
	percent := o.Percent
	if percent == nil {
		percent = DefaultPercents
	}
	n := len(percent)
	for _, p := range percent {
		if !(p > 0 && p <= 100) {
			return nil, nil, fmt.Errorf("contour percentage %v: %w", p, hist.ErrBadFraction)
		}
	}
	bins, err := Broadcast("bins", o.Bins, 2, hist.Bins{})
	if err != nil {
		return nil, nil, err
	}
	g, err := hist.New2D(x, y, hist.Options2D{X: bins[0], Y: bins[1], XLog: o.XLog, YLog: o.YLog})
	if err != nil {
		return nil, nil, err
	}
	if err := checkLogEdges(g, o.XLog, o.YLog); err != nil {
		return nil, nil, err
	}

	colors, styles, err := a.contourColors(&o, n)
	if err != nil {
		return nil, nil, err
	}
	labels := o.Label
	if labels == nil {
		labels = make([]string, n)
		for i, p := range percent {
			labels[i] = fmt.Sprintf("%.1f%%", p)
		}
	} else if len(labels) == 1 && n > 1 {
		labels = append(labels[:1:1], make([]string, n-1)...)
	}
	if labels, err = Broadcast("label", labels, n, ""); err != nil {
		return nil, nil, err
	}
	opts, err := o.Style.Splice(n, nil)
	if err != nil {
		return nil, nil, err
	}

	grid := gridXYZ{g.XCenters(o.XLog), g.YCenters(o.YLog), g.Values}
	levels := make([]float64, n)
	for i, p := range percent {
		level, err := g.PercentLevel(p / 100)
		if err != nil {
			return nil, nil, err
		}
		levels[i] = level

		st, err := a.resolveStyle(Options{"linestyle": styles[i], "color": colors[i]}.Merge(opts[i]), "")
		if err != nil {
			return nil, nil, fmt.Errorf("contour %d: %w", i, err)
		}
		c := plotter.NewContour(grid, []float64{level}, nil)
		c.Min, c.Max = level, level
		c.LineStyles = []draw.LineStyle{st.Line}
		a.add(c)
		a.legend(labels[i], &plotter.Line{LineStyle: st.Line})
	}
	for _, x := range grid.x {
		for _, y := range grid.y {
			a.observe(x, y)
		}
	}
	return g, levels, a.Finalize(o.AxisOptions)
}

// contourColors resolves the colour and line style of n contours.
func (a *Axes) contourColors(o *SigmaContOptions, n int) ([]color.Color, []string, error) {
	styles := o.LineStyle
	if styles == nil {
		if n <= len(defaultContourStyles) {
			styles = defaultContourStyles[:n]
		} else {
			styles = []string{"solid"}
		}
	}

	var colors []color.Color
	switch {
	case len(o.Color) > 0:
		names, err := Broadcast("color", o.Color, n, "")
		if err != nil {
			return nil, nil, err
		}
		for _, name := range names {
			c, err := colormap.Parse(name)
			if err != nil {
				return nil, nil, err
			}
			colors = append(colors, c)
		}

	case len(o.CVal) > 0 || n > len(defaultContourStyles):
		name := o.ColorMap
		if name == "" {
			name = a.Params.ColorMap
		}
		cm, err := colormap.New(name)
		if err != nil {
			return nil, nil, err
		}
		cval := o.CVal
		if len(cval) == 0 {
			clim := o.CLim
			if clim == nil {
				clim = []float64{0.33, 0.67}
			}
			if len(clim) != 2 {
				return nil, nil, fmt.Errorf("clim has %d entries, want 2", len(clim))
			}
			cval = vec.Linspace(clim[0], clim[1], n)
		} else {
			styles = []string{"solid"}
		}
		if cval, err = Broadcast("cval", cval, n, 0); err != nil {
			return nil, nil, err
		}
		for _, v := range cval {
			colors = append(colors, cm.Clamped(v))
		}

	default:
		c := a.nextColor()
		for i := 0; i < n; i++ {
			colors = append(colors, c)
		}
	}

	styles, err := Broadcast("linestyle", styles, n, "solid")
	if err != nil {
		return nil, nil, err
	}
	return colors, styles, nil
}
