// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"image/color"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/splot/internal/colormap"
	"github.com/kballard/go-shellquote"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options holds pass-through style settings, keyed by name. A value
// may be a scalar, which applies to every series, or a slice holding
// one value per series.
//
// Recognized keys are:
//
//	color, c            colour of lines, markers and fills
//	alpha               opacity in [0, 1]
//	linewidth, lw       line width in points
//	linestyle, ls       solid (-), dashed (--), dotted (:), dashdot (-.) or none
//	marker              o . s D ^ p x + or none
//	markersize, ms, s   marker radius in points
//	facecolor, fc       fill colour of boxes and markers
//	edgecolor, ec       outline colour of boxes
//	capsize             error bar cap width in points
//
// Unknown keys are logged once per Axes and otherwise ignored.
type Options map[string]interface{}

// Merge returns a new Options holding o's settings overridden by
// each of more in turn.
func (o Options) Merge(more ...Options) Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	for _, m := range more {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// Splice splits o into n per-series Options. A slice value of
// length n is split element-wise. If lens is non-nil, a slice value
// whose length equals lens[i] is instead passed whole to series i,
// for per-point settings. Scalars and strings are passed whole to
// every series. Any other slice length is a *LengthError.
func (o Options) Splice(n int, lens []int) ([]Options, error) {
	out := make([]Options, n)
	for i := range out {
		out[i] = make(Options, len(o))
	}
	for k, v := range o {
		rv := reflect.ValueOf(v)
		if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
			for i := range out {
				out[i][k] = v
			}
			continue
		}
		l := rv.Len()
		for i := range out {
			switch {
			case lens != nil && l == lens[i]:
				out[i][k] = v
			case l == n:
				out[i][k] = rv.Index(i).Interface()
			default:
				return nil, &LengthError{k, l, n}
			}
		}
	}
	return out, nil
}

// ParseOptions parses a list of key=value settings, as written on a
// shell command line. Numeric values become float64 and
// comma-separated values become slices.
func ParseOptions(s string) (Options, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, err
	}
	o := make(Options)
	for _, w := range words {
		k, v, ok := strings.Cut(w, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("bad style setting %q: want key=value", w)
		}
		if !strings.Contains(v, ",") {
			o[k] = parseScalar(v)
			continue
		}
		var vals []interface{}
		for _, f := range strings.Split(v, ",") {
			vals = append(vals, parseScalar(f))
		}
		o[k] = vals
	}
	return o, nil
}

func parseScalar(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func toFloat(key string, v interface{}) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("style %s: want a number, got %v", key, v)
}

func toString(key string, v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("style %s: want a string, got %v", key, v)
}

func toColor(key string, v interface{}) (color.Color, error) {
	switch v := v.(type) {
	case color.Color:
		return v, nil
	case string:
		c, err := colormap.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", key, err)
		}
		return c, nil
	case float64:
		return colormap.Parse(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return nil, fmt.Errorf("style %s: want a colour, got %v", key, v)
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil || alpha >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// Dashes returns the dash pattern for a line style name, scaled to
// width. ok is false for "none".
func Dashes(name string, width vg.Length) (dashes []vg.Length, ok bool, err error) {
	if width < 1 {
		width = 1
	}
	switch name {
	case "", "-", "solid":
		return nil, true, nil
	case "--", "dashed":
		return []vg.Length{3.7 * width, 1.6 * width}, true, nil
	case ":", "dotted":
		return []vg.Length{1 * width, 1.65 * width}, true, nil
	case "-.", "dashdot":
		return []vg.Length{6.4 * width, 1.6 * width, 1 * width, 1.6 * width}, true, nil
	case "none", " ":
		return nil, false, nil
	}
	return nil, false, fmt.Errorf("unknown line style %q", name)
}

// Marker returns the glyph for a marker name, or nil for "none".
func Marker(name string) (draw.GlyphDrawer, error) {
	switch name {
	case "o", ".", "circle":
		return draw.CircleGlyph{}, nil
	case "s", "square":
		return draw.BoxGlyph{}, nil
	case "D", "d", "diamond":
		return draw.SquareGlyph{}, nil
	case "^", "triangle":
		return draw.PyramidGlyph{}, nil
	case "p", "v":
		return draw.TriangleGlyph{}, nil
	case "x":
		return draw.CrossGlyph{}, nil
	case "+":
		return draw.PlusGlyph{}, nil
	case "none", "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown marker %q", name)
}

// outline returns the open variant of a filled glyph.
func outline(g draw.GlyphDrawer) draw.GlyphDrawer {
	switch g.(type) {
	case draw.CircleGlyph:
		return draw.RingGlyph{}
	case draw.BoxGlyph:
		return draw.SquareGlyph{}
	case draw.PyramidGlyph:
		return draw.TriangleGlyph{}
	}
	return g
}

// style is the resolved look of one series.
type style struct {
	Color color.Color
	Line  draw.LineStyle
	Glyph draw.GlyphStyle
	Fill  color.Color
	Edge  color.Color

	// NoLine is set by linestyle=none.
	NoLine  bool
	CapSize vg.Length
}

// styleKeys are consumed by individual plot functions rather than
// by resolveStyle.
var styleKeys = map[string]bool{"cmap": true, "label": true, "zorder": true, "rasterized": true}

// resolveStyle builds a series style from o. A non-empty col
// overrides any colour in o, and a series with no colour at all takes
// the next colour of the cycle.
func (a *Axes) resolveStyle(o Options, col string) (*style, error) {
	st := &style{
		Line:    draw.LineStyle{Width: vg.Points(a.Params.LineWidth)},
		Glyph:   draw.GlyphStyle{Shape: draw.CircleGlyph{}, Radius: vg.Points(a.Params.MarkerSize)},
		CapSize: vg.Points(4),
	}
	alpha := 1.0
	ls := "solid"

	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := o[k]
		var err error
		var f float64
		switch k {
		case "color", "c":
			st.Color, err = toColor(k, v)
		case "alpha":
			alpha, err = toFloat(k, v)
			if err == nil && (alpha < 0 || alpha > 1) {
				err = fmt.Errorf("style alpha: %v not in [0, 1]", alpha)
			}
		case "linewidth", "lw":
			f, err = toFloat(k, v)
			st.Line.Width = vg.Points(f)
		case "linestyle", "ls":
			ls, err = toString(k, v)
		case "marker":
			var name string
			if name, err = toString(k, v); err == nil {
				st.Glyph.Shape, err = Marker(name)
			}
		case "markersize", "ms", "s":
			f, err = toFloat(k, v)
			st.Glyph.Radius = vg.Points(f)
		case "facecolor", "fc":
			st.Fill, err = toColor(k, v)
		case "edgecolor", "ec":
			st.Edge, err = toColor(k, v)
		case "capsize":
			f, err = toFloat(k, v)
			st.CapSize = vg.Points(f)
		default:
			if !styleKeys[k] {
				a.warnOnce(k)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	if col != "" {
		c, err := colormap.Parse(col)
		if err != nil {
			return nil, err
		}
		st.Color = c
	}
	if st.Color == nil {
		st.Color = a.nextColor()
	}
	dashes, ok, err := Dashes(ls, st.Line.Width)
	if err != nil {
		return nil, err
	}
	st.Line.Dashes, st.NoLine = dashes, !ok

	st.Color = withAlpha(st.Color, alpha)
	st.Fill = withAlpha(st.Fill, alpha)
	st.Edge = withAlpha(st.Edge, alpha)
	st.Line.Color = st.Color
	st.Glyph.Color = st.Color
	return st, nil
}

func (a *Axes) warnOnce(key string) {
	if a.warned[key] {
		return
	}
	a.warned[key] = true
	Logger.Warn("ignoring unknown style option", "key", key)
}
