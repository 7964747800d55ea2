// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aclements/splot/internal/colormap"
	"gopkg.in/yaml.v3"
)

// Params holds the defaults shared by every plot on an Axes.
type Params struct {
	// Grid draws a grid unless AxisOptions.Grid says otherwise.
	Grid bool `toml:"grid" yaml:"grid"`

	// Hist2DCAxisLog and ImgCAxisLog default the colour axis of
	// Hist2D and Img to a log scale.
	Hist2DCAxisLog bool `toml:"hist2d_caxis_log" yaml:"hist2d_caxis_log"`
	ImgCAxisLog    bool `toml:"img_caxis_log" yaml:"img_caxis_log"`

	// LegendLoc places the legend unless AxisOptions.LegendLoc is
	// set.
	LegendLoc Loc `toml:"legend_loc" yaml:"legend_loc"`

	// ColorMap names the default colour map.
	ColorMap string `toml:"colormap" yaml:"colormap"`

	// Width and Height are the figure size in inches.
	// ColorBarWidth is the share of Width given to a colour bar.
	Width         float64 `toml:"width" yaml:"width"`
	Height        float64 `toml:"height" yaml:"height"`
	ColorBarWidth float64 `toml:"colorbar_width" yaml:"colorbar_width"`

	// LineWidth and MarkerSize are in points.
	LineWidth  float64 `toml:"line_width" yaml:"line_width"`
	MarkerSize float64 `toml:"marker_size" yaml:"marker_size"`
}

// DefaultParams returns the built-in defaults.
func DefaultParams() *Params {
	return &Params{
		LegendLoc:     Best,
		ColorMap:      "viridis",
		Width:         6,
		Height:        4.5,
		ColorBarWidth: 1,
		LineWidth:     1.5,
		MarkerSize:    3,
	}
}

// LoadParams reads Params from a TOML (.toml) or YAML (.yaml, .yml)
// file. Settings missing from the file keep their defaults.
func LoadParams(path string) (*Params, error) {
	p := DefaultParams()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, p); err != nil {
			return nil, fmt.Errorf("reading params: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading params: %w", err)
		}
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("reading params %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("reading params %s: unknown format %q", path, ext)
	}
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("params %s: %w", path, err)
	}
	return p, nil
}

func (p *Params) check() error {
	if _, err := colormap.Lookup(p.ColorMap); err != nil {
		return err
	}
	if !(p.Width > 0 && p.Height > 0) {
		return fmt.Errorf("figure size %vx%v must be positive", p.Width, p.Height)
	}
	if !(p.ColorBarWidth >= 0 && p.ColorBarWidth < p.Width) {
		return fmt.Errorf("colour bar width %v must be in [0, %v)", p.ColorBarWidth, p.Width)
	}
	if p.LegendLoc < Best || p.LegendLoc > Center {
		return fmt.Errorf("unknown legend location %d", p.LegendLoc)
	}
	return nil
}
