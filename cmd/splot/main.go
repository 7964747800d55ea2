// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command splot plots numeric tables.
//
// splot reads one or more dataset files (see package dataset), or
// standard input if none are given, and draws one series for each
// table in them:
//
//	splot hist -o dist.svg samples.txt
//	splot plot --x t --y v --ylog -o trace.pdf run1.txt run2.txt
//	splot contour --x ra --y dec --percent 50,90 -o sky.png stars.txt
//
// The output format follows the -o file's extension unless --format
// is given. Binary formats are not written to a terminal.
//
// Each table's "label" configuration names its series in the
// legend.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/aclements/splot"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRoot().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "splot:", err)
		os.Exit(1)
	}
}

// globals holds the flags shared by every subcommand.
type globals struct {
	verbose bool
	params  string
	out     string
	format  string
	thumb   string
	style   string

	xlog, ylog       bool
	xinvert, yinvert bool
	xlim, ylim       string
	title            string
	xlabel, ylabel   string
	grid             bool
	loc              int

	// Set by PersistentPreRunE.
	p       *splot.Params
	options splot.Options
	axis    splot.AxisOptions
}

func newRoot() *cobra.Command {
	g := new(globals)
	root := &cobra.Command{
		Use:           "splot",
		Short:         "Plot numeric tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&g.params, "params", "", "read default parameters from TOML or YAML `file`")
	f.StringVarP(&g.out, "output", "o", "", "write plot to `file` (default: stdout)")
	f.StringVar(&g.format, "format", "", "output `format` (default: from -o, or svg)")
	f.StringVar(&g.thumb, "thumb", "", "write a PNG thumbnail of `WxH` pixels instead")
	f.StringVar(&g.style, "style", "", "extra style settings as `\"key=value ...\"`")
	f.BoolVar(&g.xlog, "xlog", false, "use a log x axis")
	f.BoolVar(&g.ylog, "ylog", false, "use a log y axis")
	f.BoolVar(&g.xinvert, "xinvert", false, "invert the x axis")
	f.BoolVar(&g.yinvert, "yinvert", false, "invert the y axis")
	f.StringVar(&g.xlim, "xlim", "", "x axis limits as `min,max`; either may be empty")
	f.StringVar(&g.ylim, "ylim", "", "y axis limits as `min,max`; either may be empty")
	f.StringVar(&g.title, "title", "", "plot title")
	f.StringVar(&g.xlabel, "xlabel", "", "x axis label")
	f.StringVar(&g.ylabel, "ylabel", "", "y axis label")
	f.BoolVar(&g.grid, "grid", false, "draw a grid (default from params)")
	f.IntVar(&g.loc, "loc", -1, "legend location `code` (default from params)")

	root.AddCommand(
		histCommand(g, "hist", "Plot histograms as lines through bin centres"),
		histCommand(g, "histstep", "Plot stepped histograms"),
		plotCommand(g),
		scatterCommand(g),
		errbarCommand(g),
		hist2dCommand(g),
		contourCommand(g),
	)
	return root
}

func (g *globals) setup(cmd *cobra.Command) error {
	if g.verbose {
		splot.Logger.SetLevel(log.DebugLevel)
	}

	g.p = splot.DefaultParams()
	if g.params != "" {
		p, err := splot.LoadParams(g.params)
		if err != nil {
			return err
		}
		g.p = p
	}

	o, err := splot.ParseOptions(g.style)
	if err != nil {
		return fmt.Errorf("--style: %w", err)
	}
	g.options = o

	xlim, err := parseLim(g.xlim)
	if err != nil {
		return fmt.Errorf("--xlim: %w", err)
	}
	ylim, err := parseLim(g.ylim)
	if err != nil {
		return fmt.Errorf("--ylim: %w", err)
	}
	g.axis = splot.AxisOptions{
		XLog:    g.xlog,
		YLog:    g.ylog,
		XInvert: g.xinvert,
		YInvert: g.yinvert,
		XLim:    xlim,
		YLim:    ylim,
		Title:   g.title,
		XLabel:  g.xlabel,
		YLabel:  g.ylabel,
	}
	if cmd.Flags().Changed("grid") {
		g.axis.Grid = &g.grid
	}
	if g.loc >= 0 {
		loc := splot.Loc(g.loc)
		if loc > splot.Center {
			return fmt.Errorf("--loc: unknown legend location %d", g.loc)
		}
		g.axis.LegendLoc = &loc
	}
	return nil
}
