// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/splot/hist"
	"github.com/aclements/splot/internal/colormap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Axes is a single set of plot axes, plus an optional colour bar.
// Plot functions draw into an Axes; Save and Render write it out.
type Axes struct {
	Params *Params

	p        *plot.Plot
	colorbar *plot.Plot

	ncolor int
	grid   bool
	warned map[string]bool

	// posMin is the smallest positive x and y coordinate plotted,
	// used to bound log axes.
	posMin [2]float64
}

// NewAxes returns an empty Axes. A nil params means DefaultParams.
func NewAxes(params *Params) *Axes {
	if params == nil {
		params = DefaultParams()
	}
	return &Axes{Params: params, p: plot.New(), warned: make(map[string]bool)}
}

// Backend returns the underlying gonum plot, for styling beyond
// what AxisOptions covers.
func (a *Axes) Backend() *plot.Plot {
	return a.p
}

// nextColor returns the next colour of the series cycle.
func (a *Axes) nextColor() color.Color {
	c := colormap.Cycle(a.ncolor)
	a.ncolor++
	return c
}

func (a *Axes) add(ps ...plot.Plotter) {
	a.p.Add(ps...)
}

// legend adds an entry for label. An empty label adds nothing.
func (a *Axes) legend(label string, thumbs ...plot.Thumbnailer) {
	if label == "" {
		return
	}
	a.p.Legend.Add(label, thumbs...)
}

// points pairs xs with ys, dropping points that cannot be drawn:
// non-finite coordinates, and non-positive coordinates on log axes.
// It returns the surviving points and their indexes into xs.
func (a *Axes) points(xs, ys []float64, xlog, ylog bool) (plotter.XYs, []int) {
	pts := make(plotter.XYs, 0, len(xs))
	idx := make([]int, 0, len(xs))
	dropped := 0
	for i := range xs {
		x, y := xs[i], ys[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		if (xlog && x <= 0) || (ylog && y <= 0) {
			dropped++
			continue
		}
		a.observe(x, y)
		pts = append(pts, plotter.XY{X: x, Y: y})
		idx = append(idx, i)
	}
	if dropped > 0 {
		Logger.Warn("dropping non-positive points on log axis", "count", dropped)
	}
	return pts, idx
}

func (a *Axes) observe(x, y float64) {
	for i, v := range [2]float64{x, y} {
		if v > 0 && (a.posMin[i] == 0 || v < a.posMin[i]) {
			a.posMin[i] = v
		}
	}
}

// setColorBar attaches a vertical colour bar for cm beside the axes.
// If logScale is set, cm spans log10 values and ticks are labelled
// as powers of ten.
func (a *Axes) setColorBar(cm *colormap.Map, label string, invert, logScale bool) {
	const steps = 256
	if cm.Max() == cm.Min() {
		cm.SetMin(cm.Min() - 0.5)
		cm.SetMax(cm.Max() + 0.5)
	}
	edges := vec.Linspace(cm.Min(), cm.Max(), steps+1)
	bar := &cells{xe: []float64{0, 1}, ye: edges, z: [][]float64{hist.Centers(edges, false)}, cm: cm}

	cb := plot.New()
	cb.HideX()
	cb.Add(bar)
	cb.Y.Label.Text = label
	if logScale {
		cb.Y.Tick.Marker = powerTicks{}
	}
	if invert {
		cb.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	}
	a.colorbar = cb
}

// powerTicks labels the ticks of a log10 axis as powers of ten.
type powerTicks struct{}

func (powerTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, t := range ticks {
		if t.Label != "" {
			ticks[i].Label = fmt.Sprintf("1e%g", t.Value)
		}
	}
	return ticks
}

func (a *Axes) size() (w, h vg.Length) {
	return vg.Length(a.Params.Width) * vg.Inch, vg.Length(a.Params.Height) * vg.Inch
}

func (a *Axes) draw(dc draw.Canvas) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rendering plot: %v", r)
		}
	}()
	if a.colorbar == nil {
		a.p.Draw(dc)
		return nil
	}
	w, _ := a.size()
	cbw := vg.Length(a.Params.ColorBarWidth) * vg.Inch
	a.p.Draw(draw.Crop(dc, 0, -cbw, 0, 0))
	a.colorbar.Draw(draw.Crop(dc, w-cbw, 0, 0, 0))
	return nil
}

// Render writes the figure to w in the given format: one of eps,
// jpg, jpeg, pdf, png, svg, tex, tif or tiff.
func (a *Axes) Render(w io.Writer, format string) error {
	c, err := a.canvas(format)
	if err != nil {
		return err
	}
	_, err = c.WriteTo(w)
	return err
}

func (a *Axes) canvas(format string) (vg.CanvasWriterTo, error) {
	width, height := a.size()
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return nil, err
	}
	if err := a.draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c, nil
}

// Image renders the figure to an in-memory image at dpi dots per
// inch.
func (a *Axes) Image(dpi int) (image.Image, error) {
	if dpi <= 0 {
		return nil, fmt.Errorf("bad resolution %d dpi", dpi)
	}
	width, height := a.size()
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	if err := a.draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// Save writes the figure to path, choosing the format from its
// extension.
func (a *Axes) Save(path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	c, err := a.canvas(format)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
