// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/splot"
	"github.com/aclements/splot/dataset"
	"github.com/aclements/splot/hist"
	"github.com/spf13/cobra"
)

// binFlags selects a binning on the command line.
type binFlags struct {
	typ   string
	num   int
	width float64
	edges []float64
}

// register adds the binning flags, with each name prefixed by axis.
func (b *binFlags) register(cmd *cobra.Command, axis string) {
	what := "bins"
	if axis != "" {
		what = axis + " bins"
	}
	f := cmd.Flags()
	f.StringVar(&b.typ, axis+"bin-type", "", "`strategy` for "+what+": number, width, edges or equal")
	f.IntVar(&b.num, axis+"bins", 0, "number of "+what+" (default n^0.4)")
	f.Float64Var(&b.width, axis+"bin-width", 0, "width of "+what)
	f.Float64SliceVar(&b.edges, axis+"bin-edges", nil, "explicit edges of "+what)
}

func (b *binFlags) bins() (hist.Bins, error) {
	t, err := hist.ParseBinType(b.typ)
	if err != nil {
		return hist.Bins{}, err
	}
	return hist.Bins{Type: t, Num: b.num, Width: b.width, Edges: b.edges}, nil
}

// colorFlags sets a ColorAxis on the command line.
type colorFlags struct {
	lim      string
	log      bool
	cmap     string
	colorbar bool
	label    string
	invert   bool
}

func (c *colorFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&c.lim, "clim", "", "colour limits as `min,max`")
	f.BoolVar(&c.log, "clog", false, "use a log colour scale (default from params)")
	f.StringVar(&c.cmap, "cmap", "", "colour `map` (default from params)")
	f.BoolVar(&c.colorbar, "colorbar", false, "draw a colour bar")
	f.StringVar(&c.label, "clabel", "", "colour bar label; implies --colorbar")
	f.BoolVar(&c.invert, "cinvert", false, "invert the colour bar")
}

func (c *colorFlags) axis(cmd *cobra.Command) (splot.ColorAxis, error) {
	lim, err := parseLim(c.lim)
	if err != nil {
		return splot.ColorAxis{}, fmt.Errorf("--clim: %w", err)
	}
	ca := splot.ColorAxis{
		Lim:      lim,
		Map:      c.cmap,
		ColorBar: c.colorbar,
		Label:    c.label,
		Invert:   c.invert,
	}
	if cmd.Flags().Changed("clog") {
		ca.Log = &c.log
	}
	return ca, nil
}

func histCommand(g *globals, name, short string) *cobra.Command {
	var (
		col      string
		bins     binFlags
		counts   bool
		norm     float64
		histType string
		showTab  bool
	)
	cmd := &cobra.Command{
		Use:   name + " [files...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := readTables(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			s, err := columns(tables, col)
			if err != nil {
				return err
			}
			b, err := bins.bins()
			if err != nil {
				return err
			}
			o := splot.HistOptions{
				Bins:        []hist.Bins{b},
				Counts:      []bool{counts},
				Norm:        []float64{norm},
				Label:       s.labels,
				HistType:    histType,
				Style:       g.options,
				AxisOptions: g.axis,
			}
			a := splot.NewAxes(g.p)
			var hs []*hist.Hist1D
			if name == "hist" {
				hs, err = a.Hist(s.data, o)
			} else {
				hs, err = a.HistStep(s.data, o)
			}
			if err != nil {
				return err
			}
			if showTab {
				printTable(cmd, histTable(hs, s.labels))
				return nil
			}
			return g.write(cmd, a)
		},
	}
	f := cmd.Flags()
	f.StringVar(&col, "col", "1", "column to histogram, by name or 1-based index")
	bins.register(cmd, "")
	f.BoolVar(&counts, "counts", false, "plot raw counts instead of densities")
	f.Float64Var(&norm, "norm", 0, "scale densities to integrate to n/`norm`")
	if name == "histstep" {
		f.StringVar(&histType, "type", "step", "drawing `style`: step, stepfilled or bar")
	}
	f.BoolVar(&showTab, "table", false, "print the bins instead of plotting")
	return cmd
}

func histTable(hs []*hist.Hist1D, labels []string) table.Grouping {
	var series []string
	var lo, hi, val []float64
	for i, h := range hs {
		for j, v := range h.Values {
			series = append(series, labels[i])
			lo = append(lo, h.Edges[j])
			hi = append(hi, h.Edges[j+1])
			val = append(val, v)
		}
	}
	return new(table.Builder).
		Add("series", series).
		Add("lo", lo).
		Add("hi", hi).
		Add("value", val).
		Done()
}

func plotCommand(g *globals) *cobra.Command {
	var (
		xcol, ycol string
		marker     string
		msize      float64
		lstyle     string
	)
	cmd := &cobra.Command{
		Use:   "plot [files...]",
		Short: "Plot lines and markers",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := readTables(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			xs, err := columns(tables, xcol)
			if err != nil {
				return err
			}
			ys, err := columns(tables, ycol)
			if err != nil {
				return err
			}
			a := splot.NewAxes(g.p)
			err = a.Plot(xs.data, ys.data, splot.PlotOptions{
				LineStyle:   []string{lstyle},
				Marker:      []string{marker},
				MarkerSize:  []float64{msize},
				Label:       ys.labels,
				Style:       g.options,
				AxisOptions: g.axis,
			})
			if err != nil {
				return err
			}
			return g.write(cmd, a)
		},
	}
	f := cmd.Flags()
	f.StringVar(&xcol, "x", "1", "x column")
	f.StringVar(&ycol, "y", "2", "y column")
	f.StringVar(&lstyle, "linestyle", "solid", "line `style`: solid, dashed, dotted, dashdot or none")
	f.StringVar(&marker, "marker", "o", "marker `shape`")
	f.Float64Var(&msize, "marker-size", 0, "marker size in points (default none)")
	return cmd
}

func scatterCommand(g *globals) *cobra.Command {
	var (
		xcol, ycol, ccol string
		marker           string
		colors           colorFlags
	)
	cmd := &cobra.Command{
		Use:   "scatter [files...]",
		Short: "Plot points, optionally coloured by a third column",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := readTables(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			xs, err := columns(tables, xcol)
			if err != nil {
				return err
			}
			ys, err := columns(tables, ycol)
			if err != nil {
				return err
			}
			var c [][]float64
			if ccol != "" {
				cs, err := columns(tables, ccol)
				if err != nil {
					return err
				}
				c = cs.data
			}
			ca, err := colors.axis(cmd)
			if err != nil {
				return err
			}
			a := splot.NewAxes(g.p)
			err = a.Scatter(xs.data, ys.data, c, splot.ScatterOptions{
				Marker:      []string{marker},
				Label:       ys.labels,
				ColorAxis:   ca,
				Style:       g.options,
				AxisOptions: g.axis,
			})
			if err != nil {
				return err
			}
			return g.write(cmd, a)
		},
	}
	f := cmd.Flags()
	f.StringVar(&xcol, "x", "1", "x column")
	f.StringVar(&ycol, "y", "2", "y column")
	f.StringVar(&ccol, "c", "", "column mapped to colour")
	f.StringVar(&marker, "marker", "o", "marker `shape`")
	colors.register(cmd)
	return cmd
}

func errbarCommand(g *globals) *cobra.Command {
	var (
		xcol, ycol   string
		xerrs, yerrs []string
		box          string
	)
	cmd := &cobra.Command{
		Use:   "errbar [files...]",
		Short: "Plot points with error bars or error boxes",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := readTables(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			xs, err := columns(tables, xcol)
			if err != nil {
				return err
			}
			ys, err := columns(tables, ycol)
			if err != nil {
				return err
			}
			xe, err := errorColumns(tables, "--xerr", xerrs)
			if err != nil {
				return err
			}
			ye, err := errorColumns(tables, "--yerr", yerrs)
			if err != nil {
				return err
			}
			a := splot.NewAxes(g.p)
			if box != "" {
				bt, err := splot.ParseBoxType(box)
				if err != nil {
					return err
				}
				err = a.ErrBox(xs.data, ys.data, splot.ErrBoxOptions{
					XErr:        xe,
					YErr:        ye,
					BoxType:     bt,
					Label:       ys.labels,
					Style:       g.options,
					AxisOptions: g.axis,
				})
				if err != nil {
					return err
				}
				return g.write(cmd, a)
			}
			err = a.ErrBar(xs.data, ys.data, splot.ErrBarOptions{
				XErr:        xe,
				YErr:        ye,
				Label:       ys.labels,
				Style:       g.options,
				AxisOptions: g.axis,
			})
			if err != nil {
				return err
			}
			return g.write(cmd, a)
		},
	}
	f := cmd.Flags()
	f.StringVar(&xcol, "x", "1", "x column")
	f.StringVar(&ycol, "y", "2", "y column")
	f.StringSliceVar(&xerrs, "xerr", nil, "x error `column`, or low,high columns")
	f.StringSliceVar(&yerrs, "yerr", nil, "y error `column`, or low,high columns")
	f.StringVar(&box, "box", "", "draw error boxes of `type` ellipse or rectangle")
	return cmd
}

// errorColumns reads the error columns of every table. A single
// column gives symmetric errors; two give the low and high errors.
func errorColumns(tables []*dataset.Table, flag string, cols []string) ([]splot.Errors, error) {
	if len(cols) == 0 {
		return nil, nil
	}
	if len(cols) > 2 {
		return nil, fmt.Errorf("%s: want 1 or 2 columns, got %d", flag, len(cols))
	}
	low, err := columns(tables, cols[0])
	if err != nil {
		return nil, err
	}
	high := low
	if len(cols) == 2 {
		if high, err = columns(tables, cols[1]); err != nil {
			return nil, err
		}
	}
	es := make([]splot.Errors, len(tables))
	for i := range es {
		es[i] = splot.Errors{Low: low.data[i], High: high.data[i]}
	}
	return es, nil
}

func hist2dCommand(g *globals) *cobra.Command {
	var (
		xcol, ycol, ccol string
		xbins, ybins     binFlags
		counts           bool
		scale            float64
		stat             string
		nmin             int
		colors           colorFlags
		showTab          bool
	)
	cmd := &cobra.Command{
		Use:   "hist2d [files...]",
		Short: "Plot a two-dimensional histogram of all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := readTables(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			x, err := concat(tables, xcol)
			if err != nil {
				return err
			}
			y, err := concat(tables, ycol)
			if err != nil {
				return err
			}
			o := splot.Hist2DOptions{
				Counts:      counts,
				Scale:       scale,
				NMin:        nmin,
				AxisOptions: g.axis,
			}
			if o.ColorAxis, err = colors.axis(cmd); err != nil {
				return err
			}
			if ccol != "" {
				if o.C, err = concat(tables, ccol); err != nil {
					return err
				}
			}
			if stat != "" {
				if o.Stat, err = hist.ParseStatistic(stat); err != nil {
					return err
				}
			}
			xb, err := xbins.bins()
			if err != nil {
				return err
			}
			yb, err := ybins.bins()
			if err != nil {
				return err
			}
			o.Bins = []hist.Bins{xb, yb}

			a := splot.NewAxes(g.p)
			grid, err := a.Hist2D(x, y, o)
			if err != nil {
				return err
			}
			if showTab {
				printTable(cmd, gridTable(grid))
				return nil
			}
			return g.write(cmd, a)
		},
	}
	f := cmd.Flags()
	f.StringVar(&xcol, "x", "1", "x column")
	f.StringVar(&ycol, "y", "2", "y column")
	f.StringVar(&ccol, "c", "", "column reduced in each bin by --stat")
	xbins.register(cmd, "x")
	ybins.register(cmd, "y")
	f.BoolVar(&counts, "counts", false, "plot raw counts instead of densities")
	f.Float64Var(&scale, "scale", 0, "multiply values by n/`scale`")
	f.StringVar(&stat, "stat", "", "bin `statistic` of --c: count, sum, mean, median, min or max")
	f.IntVar(&nmin, "nmin", 0, "hide bins with fewer points")
	f.BoolVar(&showTab, "table", false, "print the bins instead of plotting")
	colors.register(cmd)
	return cmd
}

func gridTable(g *hist.Grid) table.Grouping {
	var xlo, xhi, ylo, yhi, val, n []float64
	for i := range g.Values {
		for j, v := range g.Values[i] {
			xlo = append(xlo, g.XEdges[i])
			xhi = append(xhi, g.XEdges[i+1])
			ylo = append(ylo, g.YEdges[j])
			yhi = append(yhi, g.YEdges[j+1])
			val = append(val, v)
			n = append(n, g.Counts[i][j])
		}
	}
	return new(table.Builder).
		Add("xlo", xlo).
		Add("xhi", xhi).
		Add("ylo", ylo).
		Add("yhi", yhi).
		Add("value", val).
		Add("n", n).
		Done()
}

func contourCommand(g *globals) *cobra.Command {
	var (
		xcol, ycol   string
		percent      []float64
		xbins, ybins binFlags
		colors       []string
		showTab      bool
	)
	cmd := &cobra.Command{
		Use:   "contour [files...]",
		Short: "Draw contours enclosing fractions of all points",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := readTables(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			x, err := concat(tables, xcol)
			if err != nil {
				return err
			}
			y, err := concat(tables, ycol)
			if err != nil {
				return err
			}
			xb, err := xbins.bins()
			if err != nil {
				return err
			}
			yb, err := ybins.bins()
			if err != nil {
				return err
			}
			a := splot.NewAxes(g.p)
			_, levels, err := a.SigmaCont(x, y, splot.SigmaContOptions{
				Percent:     percent,
				Bins:        []hist.Bins{xb, yb},
				Color:       colors,
				Style:       g.options,
				AxisOptions: g.axis,
			})
			if err != nil {
				return err
			}
			if showTab {
				if percent == nil {
					percent = splot.DefaultPercents
				}
				printTable(cmd, new(table.Builder).
					Add("percent", percent).
					Add("level", levels).
					Done())
				return nil
			}
			return g.write(cmd, a)
		},
	}
	f := cmd.Flags()
	f.StringVar(&xcol, "x", "1", "x column")
	f.StringVar(&ycol, "y", "2", "y column")
	f.Float64SliceVar(&percent, "percent", nil, "enclosed percentages (default 68.27,95.45)")
	xbins.register(cmd, "x")
	ybins.register(cmd, "y")
	f.StringSliceVar(&colors, "color", nil, "contour colours, one for all or one per percentage")
	f.BoolVar(&showTab, "table", false, "print the contour levels instead of plotting")
	return cmd
}
