// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/splot"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/image/draw"
)

// textFormats are the formats safe to write to a terminal.
var textFormats = map[string]bool{"svg": true, "eps": true, "tex": true}

// outputFormat returns the format to write, from --format or the
// output file's extension.
func (g *globals) outputFormat() string {
	switch {
	case g.thumb != "":
		return "png"
	case g.format != "":
		return strings.ToLower(g.format)
	case g.out != "" && g.out != "-":
		if ext := filepath.Ext(g.out); ext != "" {
			return strings.ToLower(ext[1:])
		}
	}
	return "svg"
}

// write renders a to the output selected by -o.
func (g *globals) write(cmd *cobra.Command, a *splot.Axes) error {
	format := g.outputFormat()
	w := cmd.OutOrStdout()
	if g.out != "" && g.out != "-" {
		f, err := os.Create(g.out)
		if err != nil {
			return err
		}
		if err := g.render(f, a, format); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", g.out, err)
		}
		splot.Logger.Debug("wrote plot", "file", g.out, "format", format)
		return f.Close()
	}
	if f, ok := w.(*os.File); ok && !textFormats[format] && terminal.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("not writing %s to a terminal; use -o", format)
	}
	return g.render(w, a, format)
}

func (g *globals) render(w io.Writer, a *splot.Axes, format string) error {
	if g.thumb == "" {
		return a.Render(w, format)
	}
	tw, th, err := parseSize(g.thumb)
	if err != nil {
		return fmt.Errorf("--thumb: %w", err)
	}
	img, err := a.Image(thumbDPI(g.p, tw, th))
	if err != nil {
		return err
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}

// thumbDPI returns a resolution at which the figure is at least twice
// the thumbnail size in each dimension.
func thumbDPI(p *splot.Params, w, h int) int {
	dpi := math.Max(float64(w)/p.Width, float64(h)/p.Height)
	return int(math.Ceil(2 * dpi))
}

// printTable writes tab as aligned text to the command's output.
func printTable(cmd *cobra.Command, tab table.Grouping) {
	table.Fprint(cmd.OutOrStdout(), tab)
}
