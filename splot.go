// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splot provides single-call helpers for common plots on top
// of gonum.org/v1/plot: histograms, lines and points, 2D binned
// statistics, error bars and boxes, and density contours.
//
// Each helper is a method on Axes. Helpers take one or more data
// series and an options struct. Per-series options are slices that
// may hold a single value, which is broadcast across every series, or
// exactly one value per series. Any other length is a *LengthError.
// Pass-through style options (see Options) are spliced across series
// the same way.
//
// After plotting, every helper applies the common axis styling in
// AxisOptions (scales, inversion, limits, labels, grid and legend)
// unless AxisOptions.Multi is set, which lets several helpers share
// one Axes and finalize once.
//
// Defaults that are not per-call come from Params, which an Axes
// carries for its whole life.
package splot

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger reports conditions that don't prevent the production of a
// plot, but may lead to unexpected results.
var Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "splot"})
