// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"image/color"

	"github.com/aclements/splot/hist"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// HistOptions controls Hist and HistStep. Every slice holds either
// one value for all series or one value per series.
type HistOptions struct {
	// Bins selects the binning of each series. The zero Bins
	// uses hist.DefaultCount bins.
	Bins []hist.Bins

	// Counts plots raw counts rather than probability densities.
	Counts []bool

	// Norm, if non-zero, rescales a density so it integrates to
	// N/Norm, where N is the series size.
	Norm []float64

	Color []string
	Label []string

	// HistType is the HistStep drawing style: step (the default),
	// stepfilled or bar. Hist ignores it.
	HistType string

	Style Options
	AxisOptions
}

type histSeries struct {
	h     *hist.Hist1D
	style *style
	label string
}

func (a *Axes) histograms(data [][]float64, o *HistOptions) ([]histSeries, error) {
	n := len(data)
	bins, err := Broadcast("bins", o.Bins, n, hist.Bins{})
	if err != nil {
		return nil, err
	}
	counts, err := Broadcast("counts", o.Counts, n, false)
	if err != nil {
		return nil, err
	}
	norms, err := Broadcast("norm", o.Norm, n, 0)
	if err != nil {
		return nil, err
	}
	colors, err := Broadcast("color", o.Color, n, "")
	if err != nil {
		return nil, err
	}
	labels, err := Broadcast("label", o.Label, n, "")
	if err != nil {
		return nil, err
	}
	styles, err := o.Style.Splice(n, nil)
	if err != nil {
		return nil, err
	}

	out := make([]histSeries, n)
	for i, d := range data {
		h, err := hist.New1D(d, bins[i], o.XLog, !counts[i])
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		if o.XLog && h.Edges[0] <= 0 {
			return nil, fmt.Errorf("series %d: bin edges %v must be positive on a log axis", i, h.Edges)
		}
		h.Normalize(norms[i])
		st, err := a.resolveStyle(styles[i], colors[i])
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		out[i] = histSeries{h, st, labels[i]}
	}
	return out, nil
}

// Hist plots a line through the bin centers of a histogram of each
// series in data, and returns the histograms.
func (a *Axes) Hist(data [][]float64, o HistOptions) ([]*hist.Hist1D, error) {
	series, err := a.histograms(data, &o)
	if err != nil {
		return nil, err
	}
	hs := make([]*hist.Hist1D, len(series))
	for i, s := range series {
		hs[i] = s.h
		pts, _ := a.points(s.h.Centers(o.XLog), s.h.Values, o.XLog, o.YLog)
		if len(pts) == 0 {
			Logger.Warn("nothing to plot", "series", i)
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		l.LineStyle = s.style.Line
		a.add(l)
		a.legend(s.label, l)
	}
	return hs, a.Finalize(o.AxisOptions)
}

// HistStep plots each series in data as a stepped histogram, and
// returns the histograms.
func (a *Axes) HistStep(data [][]float64, o HistOptions) ([]*hist.Hist1D, error) {
	switch o.HistType {
	case "":
		o.HistType = "step"
	case "step", "stepfilled", "bar":
	default:
		return nil, fmt.Errorf("unknown histogram type %q", o.HistType)
	}
	series, err := a.histograms(data, &o)
	if err != nil {
		return nil, err
	}
	hs := make([]*hist.Hist1D, len(series))
	for i, s := range series {
		hs[i] = s.h
		base := 0.0
		if o.YLog {
			base = logFloor(s.h.Values)
		}
		for j, v := range s.h.Values {
			if v > 0 || !o.YLog {
				a.observe(s.h.Edges[j], v)
				a.observe(s.h.Edges[j+1], v)
			}
		}
		fill := s.style.Fill
		if fill == nil {
			fill = s.style.Color
		}

		var thumb plot.Thumbnailer
		if o.HistType == "bar" {
			thumb, err = a.bars(s.h, base, fill, s.style)
		} else {
			thumb, err = a.steps(s.h, base, o.HistType == "stepfilled", fill, s.style)
		}
		if err != nil {
			return nil, err
		}
		a.legend(s.label, thumb)
	}
	return hs, a.Finalize(o.AxisOptions)
}

// logFloor returns a stand-in for zero on a log axis: a decade below
// the smallest positive value.
func logFloor(vs []float64) float64 {
	floor := 0.0
	for _, v := range vs {
		if v > 0 && (floor == 0 || v < floor) {
			floor = v
		}
	}
	if floor == 0 {
		return 1
	}
	return floor / 10
}

func (a *Axes) steps(h *hist.Hist1D, base float64, filled bool, fill color.Color, st *style) (plot.Thumbnailer, error) {
	n := len(h.Values)
	pts := make(plotter.XYs, 0, n+3)
	clamp := func(v float64) float64 {
		if v < base {
			return base
		}
		return v
	}
	pts = append(pts, plotter.XY{X: h.Edges[0], Y: base})
	for i, v := range h.Values {
		pts = append(pts, plotter.XY{X: h.Edges[i], Y: clamp(v)})
	}
	pts = append(pts,
		plotter.XY{X: h.Edges[n], Y: clamp(h.Values[n-1])},
		plotter.XY{X: h.Edges[n], Y: base})
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.StepStyle = plotter.PostStep
	l.LineStyle = st.Line
	if filled {
		l.FillColor = fill
	}
	a.add(l)
	return l, nil
}

func (a *Axes) bars(h *hist.Hist1D, base float64, fill color.Color, st *style) (plot.Thumbnailer, error) {
	var first plot.Thumbnailer
	for i, v := range h.Values {
		if v <= base {
			continue
		}
		lo, hi := h.Edges[i], h.Edges[i+1]
		poly, err := plotter.NewPolygon(plotter.XYs{{X: lo, Y: base}, {X: lo, Y: v}, {X: hi, Y: v}, {X: hi, Y: base}})
		if err != nil {
			return nil, err
		}
		poly.Color = fill
		poly.LineStyle = st.Line
		if st.Edge != nil {
			poly.LineStyle.Color = st.Edge
		} else {
			poly.LineStyle = draw.LineStyle{Color: color.Transparent}
		}
		a.add(poly)
		if first == nil {
			first = poly
		}
	}
	if first == nil {
		return &plotter.Polygon{Color: fill}, nil
	}
	return first, nil
}
