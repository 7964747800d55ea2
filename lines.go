// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/splot/internal/colormap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LineOptions controls Line.
type LineOptions struct {
	// N is the number of points sampled along the line. Zero means
	// 10.
	N int

	// Color defaults to black.
	Color string

	// Alpha is the opacity. Zero means opaque.
	Alpha float64

	LineStyle string
	Label     string

	Style Options
	AxisOptions
}

// Line draws a straight segment from (x[0], y[0]) to (x[1], y[1]).
// On log axes the segment is sampled evenly in log space, so it stays
// straight on screen.
func (a *Axes) Line(x, y [2]float64, o LineOptions) error {
	n := o.N
	if n == 0 {
		n = 10
	}
	if n < 2 {
		return fmt.Errorf("line needs at least 2 points, got %d", n)
	}
	xs, err := sample(x, n, o.XLog)
	if err != nil {
		return fmt.Errorf("line x: %w", err)
	}
	ys, err := sample(y, n, o.YLog)
	if err != nil {
		return fmt.Errorf("line y: %w", err)
	}

	style := Options{}
	if o.Alpha != 0 {
		style["alpha"] = o.Alpha
	}
	if o.LineStyle != "" {
		style["linestyle"] = o.LineStyle
	}
	col := o.Color
	if col == "" {
		col = "k"
	}
	st, err := a.resolveStyle(style.Merge(o.Style), col)
	if err != nil {
		return err
	}
	pts, _ := a.points(xs, ys, o.XLog, o.YLog)
	if len(pts) < 2 {
		return fmt.Errorf("line from (%v, %v) to (%v, %v) cannot be drawn on these axes", x[0], y[0], x[1], y[1])
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle = st.Line
	a.add(l)
	a.legend(o.Label, l)
	return a.Finalize(o.AxisOptions)
}

func sample(ends [2]float64, n int, log bool) ([]float64, error) {
	if !log {
		return vec.Linspace(ends[0], ends[1], n), nil
	}
	if ends[0] <= 0 || ends[1] <= 0 {
		return nil, fmt.Errorf("end points %v must be positive on a log axis", ends)
	}
	return vec.Logspace(math.Log10(ends[0]), math.Log10(ends[1]), n, 10), nil
}

// PlotOptions controls Plot. Every slice holds either one value for
// all series or one value per series.
type PlotOptions struct {
	// Alpha is the opacity. Zero means opaque.
	Alpha []float64

	// LineStyle defaults to solid.
	LineStyle []string

	// LineColor defaults to the next colour of the cycle.
	LineColor []string

	// MarkerSize is the marker radius in points. Zero draws no
	// markers.
	MarkerSize []float64

	// Marker defaults to a circle.
	Marker []string

	// MarkerFaceColor defaults to black.
	MarkerFaceColor []string

	// MarkerEdgeColor, when MarkerEdgeWidth is positive, outlines
	// each marker. It defaults to black.
	MarkerEdgeColor []string
	MarkerEdgeWidth []float64

	Label []string

	Style Options
	AxisOptions
}

// Plot draws each series (x[i], y[i]) as a line with optional
// markers.
func (a *Axes) Plot(x, y [][]float64, o PlotOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has %d series but y has %d", len(x), len(y))
	}
	n := len(x)
	lens := make([]int, n)
	for i := range x {
		if len(x[i]) != len(y[i]) {
			return fmt.Errorf("series %d: x has %d points but y has %d", i, len(x[i]), len(y[i]))
		}
		lens[i] = len(x[i])
	}

	alpha, err := Broadcast("alpha", o.Alpha, n, 0)
	if err != nil {
		return err
	}
	ls, err := Broadcast("linestyle", o.LineStyle, n, "solid")
	if err != nil {
		return err
	}
	lc, err := Broadcast("linecolor", o.LineColor, n, "")
	if err != nil {
		return err
	}
	ms, err := Broadcast("markersize", o.MarkerSize, n, 0)
	if err != nil {
		return err
	}
	marker, err := Broadcast("marker", o.Marker, n, "o")
	if err != nil {
		return err
	}
	mfc, err := Broadcast("markerfacecolor", o.MarkerFaceColor, n, "k")
	if err != nil {
		return err
	}
	mec, err := Broadcast("markeredgecolor", o.MarkerEdgeColor, n, "k")
	if err != nil {
		return err
	}
	mew, err := Broadcast("markeredgewidth", o.MarkerEdgeWidth, n, 0)
	if err != nil {
		return err
	}
	labels, err := Broadcast("label", o.Label, n, "")
	if err != nil {
		return err
	}
	styles, err := o.Style.Splice(n, lens)
	if err != nil {
		return err
	}

	for i := range x {
		base := Options{"linestyle": ls[i], "marker": marker[i]}
		if alpha[i] != 0 {
			base["alpha"] = alpha[i]
		}
		st, err := a.resolveStyle(base.Merge(styles[i]), lc[i])
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		pts, _ := a.points(x[i], y[i], o.XLog, o.YLog)
		if len(pts) == 0 {
			Logger.Warn("nothing to plot", "series", i)
			continue
		}

		var thumbs []plot.Thumbnailer
		if !st.NoLine {
			l, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			l.LineStyle = st.Line
			a.add(l)
			thumbs = append(thumbs, l)
		}
		if ms[i] > 0 && st.Glyph.Shape != nil {
			face, err := plotter.NewScatter(pts)
			if err != nil {
				return err
			}
			face.GlyphStyle = st.Glyph
			face.GlyphStyle.Radius = vg.Points(ms[i])
			if face.GlyphStyle.Color, err = opaqueColor(mfc[i], alpha[i]); err != nil {
				return err
			}
			a.add(face)
			thumbs = append(thumbs, face)
			if mew[i] > 0 {
				edge, err := plotter.NewScatter(pts)
				if err != nil {
					return err
				}
				edge.GlyphStyle = face.GlyphStyle
				edge.GlyphStyle.Shape = outline(st.Glyph.Shape)
				edge.GlyphStyle.Radius += vg.Points(mew[i]) / 2
				if edge.GlyphStyle.Color, err = opaqueColor(mec[i], alpha[i]); err != nil {
					return err
				}
				a.add(edge)
				thumbs = append(thumbs, edge)
			}
		}
		a.legend(labels[i], thumbs...)
	}
	return a.Finalize(o.AxisOptions)
}

// opaqueColor parses name and applies alpha, where zero means opaque.
func opaqueColor(name string, alpha float64) (color.Color, error) {
	c, err := colormap.Parse(name)
	if err != nil {
		return nil, err
	}
	if alpha == 0 {
		return c, nil
	}
	return withAlpha(c, alpha), nil
}
