// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"

	"github.com/aclements/splot/internal/colormap"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ScatterOptions controls Scatter. Every slice holds either one value
// for all series or one value per series.
//
// Style may give per-point marker sizes: a markersize or s value with
// one entry per point of a series applies point by point.
type ScatterOptions struct {
	// Color is used for series without colour values.
	Color []string

	// Marker defaults to a circle.
	Marker []string

	Label []string

	// ColorAxis maps colour values to colours. It shares one
	// scale across all series.
	ColorAxis

	Style Options
	AxisOptions
}

// Scatter plots the points of each series (x[i], y[i]). If c[i] is
// non-nil, it holds a value per point that is mapped to a colour. c
// may be nil, hold one slice for every series, or one per series.
func (a *Axes) Scatter(x, y, c [][]float64, o ScatterOptions) error {
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
	cs, err := Broadcast("c", c, n, nil)
	if err != nil {
		return err
	}
	colors, err := Broadcast("color", o.Color, n, "")
	if err != nil {
		return err
	}
	markers, err := Broadcast("marker", o.Marker, n, "o")
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

	logScale := o.ColorAxis.log(false)
	var mapped [][]float64
	for i, ci := range cs {
		if ci == nil {
			continue
		}
		if len(ci) != lens[i] {
			return fmt.Errorf("series %d: c has %d values, want %d", i, len(ci), lens[i])
		}
		mapped = append(mapped, ci)
	}
	mapped = colorValues(mapped, logScale, false)

	var cm *colormap.Map
	if len(mapped) > 0 {
		if cm, err = a.colorScale(&o.ColorAxis, mapped, logScale); err != nil {
			return err
		}
	}

	k := 0
	for i := range x {
		var sizes []float64
		so := Options{"marker": markers[i]}.Merge(styles[i])
		for _, key := range []string{"markersize", "ms", "s"} {
			if v, ok := so[key]; ok {
				if vs, ok := perPoint(v, lens[i]); ok {
					sizes = vs
					delete(so, key)
				}
			}
		}
		col := colors[i]
		if cs[i] != nil && col == "" {
			// Keep the cycle from advancing for mapped series.
			col = "k"
		}
		st, err := a.resolveStyle(so, col)
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		if st.Glyph.Shape == nil {
			st.Glyph.Shape = draw.CircleGlyph{}
		}

		pts, idx := a.points(x[i], y[i], o.XLog, o.YLog)
		var cv []float64
		if cs[i] != nil {
			cv = mapped[k]
			k++
		}
		if len(pts) == 0 {
			Logger.Warn("nothing to plot", "series", i)
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle = st.Glyph
		if cv != nil {
			s.GlyphStyle.Color = cm.Clamped((cm.Min() + cm.Max()) / 2)
		}
		if cv != nil || sizes != nil {
			base := st.Glyph
			s.GlyphStyleFunc = func(j int) draw.GlyphStyle {
				g := base
				if cv != nil {
					g.Color = cm.Clamped(cv[idx[j]])
				}
				if sizes != nil {
					g.Radius = vg.Points(sizes[idx[j]])
				}
				return g
			}
		}
		a.add(s)
		a.legend(labels[i], s)
	}
	if cm != nil && (o.ColorBar || o.ColorAxis.Label != "") {
		a.setColorBar(cm, o.ColorAxis.Label, o.Invert, logScale)
	}
	return a.Finalize(o.AxisOptions)
}

// perPoint reports whether v holds exactly n numbers, and returns
// them.
func perPoint(v interface{}, n int) ([]float64, bool) {
	switch v := v.(type) {
	case []float64:
		return v, len(v) == n
	case []interface{}:
		if len(v) != n {
			return nil, false
		}
		out := make([]float64, n)
		for i, e := range v {
			f, err := toFloat("", e)
			if err != nil {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}
