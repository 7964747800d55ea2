// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/splot"
	"github.com/aclements/splot/dataset"
)

// readTables parses every table in the named files, or in r if there
// are no names. The name "-" also reads r.
func readTables(r io.Reader, names []string) ([]*dataset.Table, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	var all []*dataset.Table
	for _, name := range names {
		var tables []*dataset.Table
		var err error
		if name == "-" {
			tables, err = dataset.Parse(r)
		} else {
			var f *os.File
			f, err = os.Open(name)
			if err == nil {
				tables, err = dataset.Parse(f)
				f.Close()
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		splot.Logger.Debug("read input", "file", name, "tables", len(tables))
		all = append(all, tables...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no data")
	}
	return all, nil
}

// series holds one column from each table.
type series struct {
	data   [][]float64
	labels []string
}

// columns extracts the named column from every table.
func columns(tables []*dataset.Table, name string) (*series, error) {
	s := &series{
		data:   make([][]float64, len(tables)),
		labels: make([]string, len(tables)),
	}
	for i, t := range tables {
		col, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("table at line %d: %w", t.Line, err)
		}
		s.data[i] = col
		s.labels[i] = t.Label()
	}
	return s, nil
}

// concat joins the named column of every table into one sample.
func concat(tables []*dataset.Table, name string) ([]float64, error) {
	s, err := columns(tables, name)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, d := range s.data {
		out = append(out, d...)
	}
	return out, nil
}

// parseLim parses axis limits of the form "min,max". An empty bound
// is left to autoscaling.
func parseLim(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("want min,max, got %q", s)
	}
	lim := make([]float64, 2)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			lim[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad limit %q", p)
		}
		lim[i] = v
	}
	return lim, nil
}

// parseSize parses a pixel size of the form "WxH".
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	if w, err = strconv.Atoi(ws); err == nil {
		h, err = strconv.Atoi(hs)
	}
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("bad size %q", s)
	}
	return w, h, nil
}
