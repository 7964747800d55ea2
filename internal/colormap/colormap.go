// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides named continuous colour maps, the default
// series colour cycle, and colour name parsing.
package colormap

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	ggpalette "github.com/aclements/go-gg/palette"
	"gonum.org/v1/plot/palette"
)

func hex(s string) color.RGBA {
	c, err := parseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func gradient(stops ...string) ggpalette.RGBGradient {
	g := ggpalette.RGBGradient{Colors: make([]color.RGBA, len(stops))}
	for i, s := range stops {
		g.Colors[i] = hex(s)
	}
	return g
}

var gradients = map[string]ggpalette.Continuous{
	"viridis": gradient("#440154", "#472c7a", "#3b518b", "#2c718e", "#21908d", "#27ad81", "#5cc863", "#aadc32", "#fde725"),
	"magma":   gradient("#000004", "#1c1044", "#4f127b", "#812581", "#b5367a", "#e55064", "#fb8761", "#fec287", "#fcfdbf"),
	"plasma":  gradient("#0d0887", "#4c02a1", "#7e03a8", "#a92395", "#cc4778", "#e56b5d", "#f89441", "#fdc328", "#f0f921"),
	"inferno": gradient("#000004", "#1f0c48", "#550f6d", "#88226a", "#ba3655", "#e35933", "#f98c0a", "#f9c932", "#fcffa4"),
	"cividis": gradient("#00224e", "#123570", "#3b496c", "#575d6d", "#707173", "#8a8779", "#a69d75", "#c4b56c", "#fee838"),
	"gray":    gradient("#000000", "#ffffff"),
	"greys":   gradient("#ffffff", "#000000"),
	"coolwarm": gradient("#3b4cc0", "#6788ee", "#9abbff", "#c9d7f0", "#edd1c2",
		"#f7a889", "#e26952", "#b40426"),
}

// Names returns the names of the known colour maps, not including
// their reversed "_r" variants.
func Names() []string {
	names := make([]string, 0, len(gradients))
	for name := range gradients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type reversed struct {
	c ggpalette.Continuous
}

func (r reversed) Map(x float64) color.Color { return r.c.Map(1 - x) }

// Lookup returns the continuous palette called name. A "_r" suffix
// reverses the map.
func Lookup(name string) (ggpalette.Continuous, error) {
	base := strings.TrimSuffix(name, "_r")
	g, ok := gradients[base]
	if !ok {
		return nil, fmt.Errorf("unknown colour map %q", name)
	}
	if base != name {
		return reversed{g}, nil
	}
	return g, nil
}

// Map is a palette.ColorMap over a continuous palette.
type Map struct {
	c        ggpalette.Continuous
	min, max float64
	alpha    float64
}

// New returns a Map over the named colour map, spanning [0, 1].
func New(name string) (*Map, error) {
	c, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return &Map{c: c, max: 1, alpha: 1}, nil
}

// At implements palette.ColorMap.
func (m *Map) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return color.Transparent, palette.ErrNaN
	case v < m.min:
		return m.at(0), palette.ErrUnderflow
	case v > m.max:
		return m.at(1), palette.ErrOverflow
	}
	if m.max == m.min {
		return m.at(0.5), nil
	}
	return m.at((v - m.min) / (m.max - m.min)), nil
}

func (m *Map) at(x float64) color.Color {
	c := color.NRGBAModel.Convert(m.c.Map(x)).(color.NRGBA)
	c.A = uint8(float64(c.A)*m.alpha + 0.5)
	return c
}

// Clamped returns the colour of v, clamping it to the map's range.
// NaN maps to transparent.
func (m *Map) Clamped(v float64) color.Color {
	c, _ := m.At(v)
	return c
}

func (m *Map) Min() float64           { return m.min }
func (m *Map) Max() float64           { return m.max }
func (m *Map) SetMin(v float64)       { m.min = v }
func (m *Map) SetMax(v float64)       { m.max = v }
func (m *Map) Alpha() float64         { return m.alpha }
func (m *Map) SetAlpha(alpha float64) { m.alpha = alpha }

// Palette returns n colours evenly sampled from the map.
func (m *Map) Palette(n int) palette.Palette {
	cs := make(Colors, n)
	for i := range cs {
		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		cs[i] = m.at(x)
	}
	return cs
}

// Colors is a fixed palette.Palette.
type Colors []color.Color

func (c Colors) Colors() []color.Color { return c }
