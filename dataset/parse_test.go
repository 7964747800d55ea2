// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		input string
		want  []*Table
	}{
		// Basic table.
		{`
1 2
3 4`,
			[]*Table{
				{map[string]string{}, []string{"col1", "col2"}, [][]float64{{1, 2}, {3, 4}}, 2},
			},
		},

		// Commas, comments and named columns.
		{`
# a comment
columns: x, y
label: first
1,2
# between rows
3,	4`,
			[]*Table{
				{map[string]string{"columns": "x, y", "label": "first"}, []string{"x", "y"}, [][]float64{{1, 2}, {3, 4}}, 5},
			},
		},

		// Blank lines and configuration split tables, and
		// configuration carries forward.
		{`
label: a
1
2

3
label: b
4`,
			[]*Table{
				{map[string]string{"label": "a"}, []string{"col1"}, [][]float64{{1}, {2}}, 3},
				{map[string]string{"label": "a"}, []string{"col1"}, [][]float64{{3}}, 6},
				{map[string]string{"label": "b"}, []string{"col1"}, [][]float64{{4}}, 8},
			},
		},

		// Empty configuration value.
		{`
label:
5 6 7`,
			[]*Table{
				{map[string]string{"label": ""}, []string{"col1", "col2", "col3"}, [][]float64{{5, 6, 7}}, 3},
			},
		},

		// No data.
		{`
# nothing
label: x`,
			nil,
		},
	} {
		got, err := Parse(strings.NewReader(test.input))
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, got, test.input)
	}
}

func TestParseSpecialValues(t *testing.T) {
	got, err := Parse(strings.NewReader("NaN Inf -inf 1e3\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	row := got[0].Rows[0]
	assert.True(t, math.IsNaN(row[0]))
	assert.True(t, math.IsInf(row[1], 1))
	assert.True(t, math.IsInf(row[2], -1))
	assert.Equal(t, 1000.0, row[3])
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		input string
		line  int
	}{
		{"1 2\n3\n", 2},
		{"1 2\n\n3 x\n", 3},
		{"columns: a b c\n1 2\n", 2},
		{"Label: a\n", 1},
	} {
		_, err := Parse(strings.NewReader(test.input))
		var serr *SyntaxError
		require.ErrorAs(t, err, &serr, test.input)
		assert.Equal(t, test.line, serr.Line, test.input)
	}
}

func TestColumn(t *testing.T) {
	tabs, err := Parse(strings.NewReader("columns: x y\n1 2\n3 4\n"))
	require.NoError(t, err)
	tab := tabs[0]

	for _, name := range []string{"y", "2"} {
		col, err := tab.Column(name)
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 4}, col)
	}
	for _, name := range []string{"z", "0", "3"} {
		_, err := tab.Column(name)
		assert.ErrorIs(t, err, ErrColumn, name)
	}
}

func TestRoundTrip(t *testing.T) {
	input := `
columns: x y
label: one
1 10
2.5 NaN

-3 +Inf
label: two
1e-09 0
`
	tabs, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, tabs, 3)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tabs))
	again, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, again, len(tabs))
	for i := range tabs {
		assert.Equal(t, tabs[i].Config, again[i].Config)
		assert.Equal(t, tabs[i].Columns, again[i].Columns)
		require.Len(t, again[i].Rows, len(tabs[i].Rows))
		for j, row := range tabs[i].Rows {
			for k, v := range row {
				w := again[i].Rows[j][k]
				if math.IsNaN(v) {
					assert.True(t, math.IsNaN(w))
				} else {
					assert.Equal(t, v, w)
				}
			}
		}
	}
}

func TestRoundTripColumnReset(t *testing.T) {
	tabs := []*Table{
		{Config: map[string]string{}, Columns: []string{"x", "y"}, Rows: [][]float64{{1, 2}}},
		{Config: map[string]string{}, Columns: []string{"col1", "col2"}, Rows: [][]float64{{3, 4}}},
		{Config: map[string]string{"columns": "stale"}, Columns: []string{"a", "b"}, Rows: [][]float64{{5, 6}}},
	}
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, tabs))
	text := buf.String()
	again, err := Parse(strings.NewReader(text))
	require.NoError(t, err, "re-parsing:\n%s", text)
	require.Len(t, again, len(tabs))
	for i := range tabs {
		assert.Equal(t, tabs[i].Columns, again[i].Columns, "table %d", i)
		assert.Equal(t, tabs[i].Rows, again[i].Rows, "table %d", i)
	}

	// An empty columns value restores the default names.
	tabs, err = Parse(strings.NewReader("columns: x\n1\n\ncolumns:\n2 3\n"))
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, []string{"col1", "col2"}, tabs[1].Columns)
}

func TestFprintAlignment(t *testing.T) {
	tab := &Table{Columns: []string{"col1", "col2"}, Rows: [][]float64{{1, 100}, {10, 2}}}
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, []*Table{tab}))
	assert.Equal(t, " 1  100\n10    2\n", buf.String())
}
