// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Loc is a legend location. The values follow the conventional
// numeric location codes.
type Loc int

const (
	Best Loc = iota
	UpperRight
	UpperLeft
	LowerLeft
	LowerRight
	Right
	CenterLeft
	CenterRight
	LowerCenter
	UpperCenter
	Center
)

// top and left report where the legend is anchored. Locations
// between corners snap to the nearest one.
func (l Loc) top() bool {
	switch l {
	case Best, UpperRight, UpperLeft, UpperCenter:
		return true
	}
	return false
}

func (l Loc) left() bool {
	switch l {
	case UpperLeft, LowerLeft, CenterLeft:
		return true
	}
	return false
}

// AxisOptions is the common axis styling applied after plotting.
type AxisOptions struct {
	// XLog and YLog select log10 axis scales. They also control
	// log-spaced binning in the histogram functions.
	XLog, YLog bool

	XInvert, YInvert bool

	// XLim and YLim, if non-nil, are [min, max]. A NaN entry
	// leaves that end to autoscaling.
	XLim, YLim []float64

	Title, XLabel, YLabel string

	// Grid overrides Params.Grid.
	Grid *bool

	// LegendLoc overrides Params.LegendLoc.
	LegendLoc *Loc

	// Multi skips finalization, so several plot calls can share
	// one Axes. The last call should clear Multi or the caller
	// should call Finalize directly.
	Multi bool
}

// Finalize applies o to a. It is idempotent: applying the same
// options twice gives the same axes.
func (a *Axes) Finalize(o AxisOptions) error {
	if err := checkLim("xlim", o.XLim, o.XLog); err != nil {
		return err
	}
	if err := checkLim("ylim", o.YLim, o.YLog); err != nil {
		return err
	}
	if o.Multi {
		return nil
	}

	a.finalizeAxis(&a.p.X, o.XLog, o.XInvert, o.XLim, a.posMin[0])
	a.finalizeAxis(&a.p.Y, o.YLog, o.YInvert, o.YLim, a.posMin[1])

	if o.Title != "" {
		a.p.Title.Text = o.Title
	}
	if o.XLabel != "" {
		a.p.X.Label.Text = o.XLabel
	}
	if o.YLabel != "" {
		a.p.Y.Label.Text = o.YLabel
	}

	grid := a.Params.Grid
	if o.Grid != nil {
		grid = *o.Grid
	}
	if grid && !a.grid {
		a.add(plotter.NewGrid())
		a.grid = true
	}

	loc := a.Params.LegendLoc
	if o.LegendLoc != nil {
		loc = *o.LegendLoc
	}
	a.p.Legend.Top = loc.top()
	a.p.Legend.Left = loc.left()
	return nil
}

func checkLim(name string, lim []float64, log bool) error {
	if lim == nil {
		return nil
	}
	if len(lim) != 2 {
		return fmt.Errorf("%s has %d entries, want 2", name, len(lim))
	}
	if log {
		for _, v := range lim {
			if v <= 0 {
				return fmt.Errorf("%s %v must be positive on a log axis", name, lim)
			}
		}
	}
	if lim[0] >= lim[1] {
		return fmt.Errorf("%s %v is empty; use the invert option to reverse an axis", name, lim)
	}
	return nil
}

func (a *Axes) finalizeAxis(ax *plot.Axis, log, invert bool, lim []float64, posMin float64) {
	var scale plot.Normalizer = plot.LinearScale{}
	if log {
		scale = plot.LogScale{}
		ax.Tick.Marker = plot.LogTicks{Prec: -1}
		if ax.Min <= 0 && posMin > 0 {
			ax.Min = posMin
		}
	} else if _, ok := ax.Tick.Marker.(plot.LogTicks); ok {
		ax.Tick.Marker = plot.DefaultTicks{}
	}
	if invert {
		scale = plot.InvertedScale{Normalizer: scale}
	}
	ax.Scale = scale

	if lim != nil {
		if !math.IsNaN(lim[0]) {
			ax.Min = lim[0]
		}
		if !math.IsNaN(lim[1]) {
			ax.Max = lim[1]
		}
	}
}
