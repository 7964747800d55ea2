// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/splot/hist"
	"github.com/aclements/splot/internal/colormap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// gridXYZ adapts a matrix indexed [x][y] to plotter.GridXYZ.
type gridXYZ struct {
	x, y []float64
	z    [][]float64
}

func (g gridXYZ) Dims() (c, r int)   { return len(g.x), len(g.y) }
func (g gridXYZ) Z(c, r int) float64 { return g.z[c][r] }
func (g gridXYZ) X(c int) float64    { return g.x[c] }
func (g gridXYZ) Y(r int) float64    { return g.y[r] }

// ColorAxis controls how values map to colours.
type ColorAxis struct {
	// Lim, if non-nil, is [min, max] of the colour scale. Values
	// outside it take the end colours. A NaN entry leaves that end
	// to autoscaling.
	Lim []float64

	// Log, if non-nil, overrides the Params default for a log10
	// colour scale. Non-positive values are not drawn on a log
	// scale.
	Log *bool

	// Map names the colour map. Empty means Params.ColorMap.
	Map string

	// A colour bar is drawn if ColorBar is set or Label is
	// non-empty. Invert flips it.
	ColorBar bool
	Label    string
	Invert   bool
}

func (ca *ColorAxis) log(def bool) bool {
	if ca.Log != nil {
		return *ca.Log
	}
	return def
}

// colorScale returns the colour map for ca spanning the finite values of
// z, which are already log10 values if logScale is set.
func (a *Axes) colorScale(ca *ColorAxis, z [][]float64, logScale bool) (*colormap.Map, error) {
	name := ca.Map
	if name == "" {
		name = a.Params.ColorMap
	}
	cm, err := colormap.New(name)
	if err != nil {
		return nil, err
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, row := range z {
		for _, v := range row {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				lo, hi = math.Min(lo, v), math.Max(hi, v)
			}
		}
	}
	if ca.Lim != nil {
		if len(ca.Lim) != 2 {
			return nil, fmt.Errorf("clim has %d entries, want 2", len(ca.Lim))
		}
		for i, v := range ca.Lim {
			if math.IsNaN(v) {
				continue
			}
			if logScale {
				if v <= 0 {
					return nil, fmt.Errorf("clim %v must be positive on a log colour scale", ca.Lim)
				}
				v = math.Log10(v)
			}
			if i == 0 {
				lo = v
			} else {
				hi = v
			}
		}
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, errors.New("no values to colour")
	}
	if lo > hi {
		return nil, fmt.Errorf("empty colour range [%v, %v]", lo, hi)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	cm.SetMin(lo)
	cm.SetMax(hi)
	return cm, nil
}

// heatMap draws z on cells centred at xc and yc. Cell boundaries fall
// midway between centres. If raster is set the map is drawn as one
// image.
func (a *Axes) heatMap(xc, yc []float64, z [][]float64, ca *ColorAxis, logScale, raster bool) error {
	cm, err := a.colorScale(ca, z, logScale)
	if err != nil {
		return err
	}
	pal := cm.Palette(256)
	cs := pal.Colors()
	h := plotter.NewHeatMap(gridXYZ{xc, yc, z}, pal)
	h.Min, h.Max = cm.Min(), cm.Max()
	h.NaN = color.Transparent
	h.Underflow, h.Overflow = cs[0], cs[len(cs)-1]
	h.Rasterized = raster
	a.add(h)
	a.colorBar(ca, cm, logScale)
	return nil
}

func (a *Axes) colorBar(ca *ColorAxis, cm *colormap.Map, logScale bool) {
	if ca.ColorBar || ca.Label != "" {
		a.setColorBar(cm, ca.Label, ca.Invert, logScale)
	}
}

// cells draws a grid of coloured rectangles between explicit edges,
// so bins keep their true extent on log axes and for uneven edges.
// NaN cells are not drawn.
type cells struct {
	xe, ye []float64
	z      [][]float64
	cm     *colormap.Map
}

func (g *cells) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, col := range g.z {
		x0, x1 := trX(g.xe[i]), trX(g.xe[i+1])
		for j, v := range col {
			if math.IsNaN(v) {
				continue
			}
			y0, y1 := trY(g.ye[j]), trY(g.ye[j+1])
			pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
			c.FillPolygon(g.cm.Clamped(v), c.ClipPolygonXY(pts))
		}
	}
}

func (g *cells) DataRange() (xmin, xmax, ymin, ymax float64) {
	return g.xe[0], g.xe[len(g.xe)-1], g.ye[0], g.ye[len(g.ye)-1]
}

// colorValues returns a copy of z prepared for colouring. On a log
// scale it holds log10 values, with non-positive values as NaN.
// Otherwise, if hideZero is set, zeros become NaN.
func colorValues(z [][]float64, logScale, hideZero bool) [][]float64 {
	out := make([][]float64, len(z))
	for i, row := range z {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			switch {
			case logScale && v <= 0:
				v = math.NaN()
			case logScale:
				v = math.Log10(v)
			case hideZero && v == 0:
				v = math.NaN()
			}
			out[i][j] = v
		}
	}
	return out
}

// Hist2DOptions controls Hist2D.
type Hist2DOptions struct {
	// Bins gives the binning of both axes, or of x and y
	// separately.
	Bins []hist.Bins

	// Counts plots raw counts rather than probability densities.
	Counts bool

	// Scale, if non-zero, multiplies counts or densities by
	// N/Scale.
	Scale float64

	// C holds a value per point. If set, each bin shows Stat of
	// the values that fell in it rather than a count. Stat
	// defaults to hist.Mean.
	C    []float64
	Stat hist.Statistic

	// Bins holding fewer than NMin points are not drawn.
	NMin int

	ColorAxis
	AxisOptions
}

// Hist2D plots a two-dimensional histogram of the points (x[i], y[i])
// as a heat map, and returns the histogram. Empty bins are not drawn.
func (a *Axes) Hist2D(x, y []float64, o Hist2DOptions) (*hist.Grid, error) {
	bins, err := Broadcast("bins", o.Bins, 2, hist.Bins{})
	if err != nil {
		return nil, err
	}
	stat := o.Stat
	if stat == nil && o.C != nil {
		stat = hist.Mean
	}
	g, err := hist.New2D(x, y, hist.Options2D{
		X:       bins[0],
		Y:       bins[1],
		XLog:    o.XLog,
		YLog:    o.YLog,
		Density: !o.Counts,
		Scale:   o.Scale,
		C:       o.C,
		Stat:    stat,
		NMin:    o.NMin,
	})
	if err != nil {
		return nil, err
	}
	if err := checkLogEdges(g, o.XLog, o.YLog); err != nil {
		return nil, err
	}
	logScale := o.ColorAxis.log(a.Params.Hist2DCAxisLog)
	z := colorValues(g.Values, logScale, stat == nil)
	cm, err := a.colorScale(&o.ColorAxis, z, logScale)
	if err != nil {
		return nil, err
	}
	a.add(&cells{xe: g.XEdges, ye: g.YEdges, z: z, cm: cm})
	a.observe(g.XEdges[0], g.YEdges[0])
	a.colorBar(&o.ColorAxis, cm, logScale)
	return g, a.Finalize(o.AxisOptions)
}

func checkLogEdges(g *hist.Grid, xlog, ylog bool) error {
	if xlog && g.XEdges[0] <= 0 {
		return fmt.Errorf("x bin edges %v must be positive on a log axis", g.XEdges)
	}
	if ylog && g.YEdges[0] <= 0 {
		return fmt.Errorf("y bin edges %v must be positive on a log axis", g.YEdges)
	}
	return nil
}

// ImgOptions controls Img.
type ImgOptions struct {
	// X and Y are the pixel edges, of length one more than the
	// number of columns and rows of the image. Nil means 0, 1, 2...
	X, Y []float64

	ColorAxis

	// AxisOptions applies, except that Img never uses log axes.
	AxisOptions
}

// Img draws im, indexed [x][y], as an image of coloured pixels.
// Pixel boundaries fall midway between the centres of X and Y, so
// they match the given edges exactly only for even spacing.
func (a *Axes) Img(im [][]float64, o ImgOptions) error {
	if len(im) == 0 || len(im[0]) == 0 {
		return errors.New("empty image")
	}
	nx, ny := len(im), len(im[0])
	for i, col := range im {
		if len(col) != ny {
			return fmt.Errorf("image column %d has %d pixels, want %d", i, len(col), ny)
		}
	}
	xe, err := pixelEdges("x", o.X, nx)
	if err != nil {
		return err
	}
	ye, err := pixelEdges("y", o.Y, ny)
	if err != nil {
		return err
	}
	logScale := o.ColorAxis.log(a.Params.ImgCAxisLog)
	z := colorValues(im, logScale, false)
	if err := a.heatMap(hist.Centers(xe, false), hist.Centers(ye, false), z, &o.ColorAxis, logScale, !o.XInvert && !o.YInvert); err != nil {
		return err
	}
	a.observe(xe[0], ye[0])
	ao := o.AxisOptions
	ao.XLog, ao.YLog = false, false
	return a.Finalize(ao)
}

func pixelEdges(name string, edges []float64, n int) ([]float64, error) {
	if edges == nil {
		edges = make([]float64, n+1)
		for i := range edges {
			edges[i] = float64(i)
		}
		return edges, nil
	}
	if len(edges) != n+1 {
		return nil, fmt.Errorf("%s has %d edges, want %d", name, len(edges), n+1)
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, fmt.Errorf("%s edges must be strictly increasing: %w", name, hist.ErrBadEdges)
		}
	}
	return edges, nil
}
