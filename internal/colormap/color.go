// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// cycle is the default sequence of series colours.
var cycle = []color.RGBA{
	hex("#1f77b4"), hex("#ff7f0e"), hex("#2ca02c"), hex("#d62728"), hex("#9467bd"),
	hex("#8c564b"), hex("#e377c2"), hex("#7f7f7f"), hex("#bcbd22"), hex("#17becf"),
}

// Cycle returns the i'th colour of the default series cycle.
func Cycle(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return cycle[i%len(cycle)]
}

var shorthand = map[string]string{
	"k": "black",
	"w": "white",
	"r": "red",
	"g": "green",
	"b": "blue",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
}

// Parse parses a colour given as a single-letter code (k, r, g, b, c,
// m, y, w), a cycle reference C0 through C9, a hex string (#rgb,
// #rrggbb or #rrggbbaa), a grey level between 0 and 1, or an SVG
// colour name. "none" parses as transparent.
func Parse(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "none":
		return color.Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case len(s) == 2 && s[0] == 'c' && s[1] >= '0' && s[1] <= '9':
		return Cycle(int(s[1] - '0')), nil
	}
	if long, ok := shorthand[s]; ok {
		s = long
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if g, err := strconv.ParseFloat(s, 64); err == nil && g >= 0 && g <= 1 {
		v := uint8(g*255 + 0.5)
		return color.RGBA{v, v, v, 0xff}, nil
	}
	return nil, fmt.Errorf("unknown colour %q", s)
}

func parseHex(s string) (color.RGBA, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) == 6 {
		digits += "ff"
	}
	if len(digits) != 8 {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	// color.RGBA is alpha-premultiplied.
	nc := color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
	return color.RGBAModel.Convert(nc).(color.RGBA), nil
}
