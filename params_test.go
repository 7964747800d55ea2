// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o666))
	return path
}

func TestLoadParams(t *testing.T) {
	for _, test := range []struct {
		name, data string
	}{
		{"p.toml", "grid = true\nlegend_loc = 2\ncolormap = \"magma_r\"\nwidth = 8.0\n"},
		{"p.yaml", "grid: true\nlegend_loc: 2\ncolormap: magma_r\nwidth: 8\n"},
	} {
		p, err := LoadParams(writeFile(t, test.name, test.data))
		require.NoError(t, err, test.name)
		want := DefaultParams()
		want.Grid = true
		want.LegendLoc = UpperLeft
		want.ColorMap = "magma_r"
		want.Width = 8
		assert.Equal(t, want, p, test.name)
	}
}

func TestLoadParamsErrors(t *testing.T) {
	for _, test := range []struct {
		name, data string
	}{
		{"p.ini", "grid = true\n"},
		{"p.toml", "grid = \n"},
		{"p.yaml", "grid: [\n"},
		{"p.toml", "colormap = \"jet\"\n"},
		{"p.toml", "width = -1.0\n"},
		{"p.toml", "legend_loc = 11\n"},
		{"p.toml", "colorbar_width = 10.0\n"},
	} {
		_, err := LoadParams(writeFile(t, test.name, test.data))
		assert.Error(t, err, "%s: %s", test.name, test.data)
	}
	_, err := LoadParams(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
