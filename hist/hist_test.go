// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestCountEdgeInclusion(t *testing.T) {
	edges := []float64{0, 1, 2}
	counts := Count([]float64{-1, 0, 0.5, 1, 1.5, 2, 3, math.NaN()}, edges)
	assert.Equal(t, []float64{2, 3}, counts)
}

func TestRawCountsSumToSampleSize(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, bins := range []Bins{{}, {Num: 13}, {Width: 0.3}, {Type: Equal, Num: 9}} {
		data := make([]float64, 517)
		for i := range data {
			data[i] = rng.ExpFloat64()
		}
		for _, log := range []bool{false, true} {
			h, err := New1D(data, bins, log, false)
			require.NoError(t, err)
			assert.Equal(t, float64(len(data)), floats.Sum(h.Values), "%+v log=%v", bins, log)
			assert.Equal(t, len(data), h.N)
			assert.False(t, h.Density)
		}
	}
}

func TestDensityIntegratesToOne(t *testing.T) {
	data := []float64{1, 2, 2, 3, 3, 3, 4, 4, 4, 4}
	h, err := New1D(data, Bins{Num: 4}, false, true)
	require.NoError(t, err)
	area := 0.0
	for i, v := range h.Values {
		area += v * (h.Edges[i+1] - h.Edges[i])
	}
	assert.InDelta(t, 1, area, 1e-12)

	h.Normalize(5)
	area = 0
	for i, v := range h.Values {
		area += v * (h.Edges[i+1] - h.Edges[i])
	}
	assert.InDelta(t, 2, area, 1e-12)
}

func TestCenters(t *testing.T) {
	assert.Equal(t, []float64{0.5, 1.5}, Centers([]float64{0, 1, 2}, false))
	got := Centers([]float64{1, 100, 10000}, true)
	assert.InDeltaSlice(t, []float64{10, 1000}, got, 1e-9)
	assert.Nil(t, Centers([]float64{1}, false))
}

func TestNew2DCounts(t *testing.T) {
	x := []float64{0, 0, 1, 1, 1, 2}
	y := []float64{0, 2, 0, 2, 2, 2}
	g, err := New2D(x, y, Options2D{X: Bins{Edges: []float64{0, 1, 2}}, Y: Bins{Edges: []float64{0, 1, 2}}})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {1, 3}}, g.Values)
	assert.Equal(t, g.Values, g.Counts)
	assert.Equal(t, 6.0, floats.Sum(g.Flat()))
}

func TestNew2DDensityAndScale(t *testing.T) {
	x := []float64{0.5, 0.5, 1.5, 1.5}
	y := []float64{0.5, 1.5, 0.5, 0.5}
	opts := Options2D{
		X:       Bins{Edges: []float64{0, 1, 2}},
		Y:       Bins{Edges: []float64{0, 2}},
		Density: true,
	}
	g, err := New2D(x, y, opts)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.25}, g.Flat(), 1e-12)

	opts.Scale = 2
	g, err = New2D(x, y, opts)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, g.Flat(), 1e-12)
}

func TestNew2DStatistic(t *testing.T) {
	x := []float64{0, 0, 0, 1.5}
	y := []float64{0, 0, 0, 0}
	c := []float64{1, 2, 6, 5}
	edges := Bins{Edges: []float64{0, 1, 2}}
	for _, test := range []struct {
		stat string
		want []float64
	}{
		{"count", []float64{3, 0, 1, 0}},
		{"sum", []float64{9, 0, 5, 0}},
		{"mean", []float64{3, math.NaN(), 5, math.NaN()}},
		{"median", []float64{2, math.NaN(), 5, math.NaN()}},
		{"min", []float64{1, math.NaN(), 5, math.NaN()}},
		{"max", []float64{6, math.NaN(), 5, math.NaN()}},
	} {
		stat, err := ParseStatistic(test.stat)
		require.NoError(t, err)
		g, err := New2D(x, y, Options2D{X: edges, Y: edges, C: c, Stat: stat})
		require.NoError(t, err)
		got := g.Flat()
		require.Len(t, got, len(test.want))
		for i := range got {
			if math.IsNaN(test.want[i]) {
				assert.True(t, math.IsNaN(got[i]), "%s[%d] = %v, want NaN", test.stat, i, got[i])
			} else {
				assert.Equal(t, test.want[i], got[i], "%s[%d]", test.stat, i)
			}
		}
	}
	_, err := ParseStatistic("mode")
	assert.Error(t, err)
}

func TestMedianEven(t *testing.T) {
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
}

func TestNew2DNMin(t *testing.T) {
	x := []float64{0.5, 0.5, 1.5}
	y := []float64{0.5, 0.5, 0.5}
	e := Bins{Edges: []float64{0, 1, 2}}
	g, err := New2D(x, y, Options2D{X: e, Y: Bins{Edges: []float64{0, 1}}, NMin: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, g.Values[0][0])
	assert.True(t, math.IsNaN(g.Values[1][0]))
	assert.Equal(t, 1.0, g.Counts[1][0])
}

func TestNew2DLengthMismatch(t *testing.T) {
	_, err := New2D([]float64{1, 2}, []float64{1}, Options2D{})
	assert.Error(t, err)
	_, err = New2D([]float64{1, 2}, []float64{1, 2}, Options2D{Stat: Mean, C: []float64{1}})
	assert.Error(t, err)
}
