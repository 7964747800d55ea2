// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Errors gives the distances below (Low) and above (High) each point
// of a series. Each of Low and High may be empty, meaning zero, hold
// one value for every point, or hold one value per point.
type Errors struct {
	Low, High []float64
}

// Sym returns symmetric errors.
func Sym(e ...float64) Errors {
	return Errors{Low: e, High: e}
}

// IsZero reports whether e holds no errors.
func (e Errors) IsZero() bool {
	return len(e.Low) == 0 && len(e.High) == 0
}

func (e Errors) expand(name string, n int) (low, high []float64, err error) {
	if low, err = Broadcast(name+" low", e.Low, n, 0); err != nil {
		return nil, nil, err
	}
	if high, err = Broadcast(name+" high", e.High, n, 0); err != nil {
		return nil, nil, err
	}
	for i := range low {
		if low[i] < 0 || high[i] < 0 {
			return nil, nil, fmt.Errorf("%s at point %d is negative", name, i)
		}
	}
	return low, high, nil
}

// ErrBarOptions controls ErrBar. Every slice holds either one value
// for all series or one value per series.
type ErrBarOptions struct {
	XErr, YErr []Errors

	Color []string

	// Marker defaults to a circle.
	Marker []string

	Label []string

	Style Options
	AxisOptions
}

// errPoints is a series with errors in both directions.
type errPoints struct {
	plotter.XYs
	plotter.XErrors
	plotter.YErrors
}

// errSeries returns the drawable points of one series with their
// errors. On a log axis, lower errors reaching zero are cut off a
// decade below the point.
func (a *Axes) errSeries(x, y []float64, xe, ye Errors, o *AxisOptions) (*errPoints, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x has %d points but y has %d", len(x), len(y))
	}
	xlo, xhi, err := xe.expand("xerr", len(x))
	if err != nil {
		return nil, err
	}
	ylo, yhi, err := ye.expand("yerr", len(y))
	if err != nil {
		return nil, err
	}
	pts, idx := a.points(x, y, o.XLog, o.YLog)
	ep := &errPoints{
		XYs:     pts,
		XErrors: make(plotter.XErrors, len(pts)),
		YErrors: make(plotter.YErrors, len(pts)),
	}
	for k, i := range idx {
		ep.XErrors[k].Low, ep.XErrors[k].High = clipLow(x[i], xlo[i], o.XLog), xhi[i]
		ep.YErrors[k].Low, ep.YErrors[k].High = clipLow(y[i], ylo[i], o.YLog), yhi[i]
		a.observe(x[i]-ep.XErrors[k].Low, y[i]-ep.YErrors[k].Low)
	}
	return ep, nil
}

func clipLow(v, low float64, log bool) float64 {
	if log && v-low <= 0 {
		return v - v/10
	}
	return low
}

// ErrBar plots each series (x[i], y[i]) as markers with error bars.
func (a *Axes) ErrBar(x, y [][]float64, o ErrBarOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has %d series but y has %d", len(x), len(y))
	}
	n := len(x)
	xerr, err := Broadcast("xerr", o.XErr, n, Errors{})
	if err != nil {
		return err
	}
	yerr, err := Broadcast("yerr", o.YErr, n, Errors{})
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
	styles, err := o.Style.Splice(n, nil)
	if err != nil {
		return err
	}

	for i := range x {
		st, err := a.resolveStyle(Options{"marker": markers[i]}.Merge(styles[i]), colors[i])
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		ep, err := a.errSeries(x[i], y[i], xerr[i], yerr[i], &o.AxisOptions)
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		if len(ep.XYs) == 0 {
			Logger.Warn("nothing to plot", "series", i)
			continue
		}
		bar := st.Line
		bar.Dashes = nil
		var thumbs []plot.Thumbnailer
		if !xerr[i].IsZero() {
			xb, err := plotter.NewXErrorBars(ep)
			if err != nil {
				return err
			}
			xb.LineStyle, xb.CapWidth = bar, st.CapSize
			a.add(xb)
		}
		if !yerr[i].IsZero() {
			yb, err := plotter.NewYErrorBars(ep)
			if err != nil {
				return err
			}
			yb.LineStyle, yb.CapWidth = bar, st.CapSize
			a.add(yb)
		}
		if st.Glyph.Shape != nil {
			s, err := plotter.NewScatter(ep.XYs)
			if err != nil {
				return err
			}
			s.GlyphStyle = st.Glyph
			a.add(s)
			thumbs = append(thumbs, s)
		}
		if len(thumbs) == 0 {
			// Error bars have no legend thumbnail of their own.
			thumbs = append(thumbs, &plotter.Line{LineStyle: bar})
		}
		a.legend(labels[i], thumbs...)
	}
	return a.Finalize(o.AxisOptions)
}

// BoxType is the shape drawn by ErrBox.
type BoxType int

const (
	Ellipse BoxType = iota
	Rectangle
)

// ParseBoxType accepts any prefix of at least three letters of
// "ellipse" or "rectangle". The empty string means Ellipse.
func ParseBoxType(s string) (BoxType, error) {
	switch {
	case s == "":
		return Ellipse, nil
	case len(s) >= 3 && strings.HasPrefix("ellipse", s):
		return Ellipse, nil
	case len(s) >= 3 && strings.HasPrefix("rectangle", s):
		return Rectangle, nil
	}
	return 0, fmt.Errorf("unknown box type %q", s)
}

// ErrBoxOptions controls ErrBox. Every slice holds either one value
// for all series or one value per series.
type ErrBoxOptions struct {
	XErr, YErr []Errors

	BoxType BoxType

	Color []string
	Label []string

	Style Options
	AxisOptions
}

// ellipseSegments is the number of vertices of an ellipse.
const ellipseSegments = 48

// ErrBox plots each point of each series as a filled box or ellipse
// spanning its errors. Boxes are translucent unless Style sets alpha.
func (a *Axes) ErrBox(x, y [][]float64, o ErrBoxOptions) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has %d series but y has %d", len(x), len(y))
	}
	n := len(x)
	xerr, err := Broadcast("xerr", o.XErr, n, Errors{})
	if err != nil {
		return err
	}
	yerr, err := Broadcast("yerr", o.YErr, n, Errors{})
	if err != nil {
		return err
	}
	colors, err := Broadcast("color", o.Color, n, "")
	if err != nil {
		return err
	}
	labels, err := Broadcast("label", o.Label, n, "")
	if err != nil {
		return err
	}
	styles, err := o.Style.Splice(n, nil)
	if err != nil {
		return err
	}

	for i := range x {
		st, err := a.resolveStyle(Options{"alpha": 0.5}.Merge(styles[i]), colors[i])
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		ep, err := a.errSeries(x[i], y[i], xerr[i], yerr[i], &o.AxisOptions)
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		fill := st.Fill
		if fill == nil {
			fill = st.Color
		}
		edge := draw.LineStyle{Color: color.Transparent}
		if st.Edge != nil {
			edge = st.Line
			edge.Color = st.Edge
		}

		var first plot.Thumbnailer
		for k, p := range ep.XYs {
			x0, x1 := p.X-ep.XErrors[k].Low, p.X+ep.XErrors[k].High
			y0, y1 := p.Y-ep.YErrors[k].Low, p.Y+ep.YErrors[k].High
			var ring plotter.XYs
			if o.BoxType == Rectangle {
				ring = plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
			} else {
				ring = ellipse(x0, x1, y0, y1)
			}
			a.observe(x1, y1)
			poly, err := plotter.NewPolygon(ring)
			if err != nil {
				return err
			}
			poly.Color = fill
			poly.LineStyle = edge
			a.add(poly)
			if first == nil {
				first = poly
			}
		}
		if first == nil {
			Logger.Warn("nothing to plot", "series", i)
			continue
		}
		a.legend(labels[i], first)
	}
	return a.Finalize(o.AxisOptions)
}

// ellipse returns the vertices of the ellipse inscribed in the box
// [x0, x1] by [y0, y1].
func ellipse(x0, x1, y0, y1 float64) plotter.XYs {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	ring := make(plotter.XYs, ellipseSegments)
	for i := range ring {
		t := 2 * math.Pi * float64(i) / ellipseSegments
		ring[i] = plotter.XY{X: cx + rx*math.Cos(t), Y: cy + ry*math.Sin(t)}
	}
	return ring
}
