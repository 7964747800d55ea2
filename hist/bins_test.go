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
)

func TestParseBinType(t *testing.T) {
	for _, test := range []struct {
		in   string
		want BinType
	}{
		{"", Auto},
		{"number", Number},
		{"width", Width},
		{"edges", Edges},
		{"equal", Equal},
	} {
		got, err := ParseBinType(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
		if test.in != "" {
			assert.Equal(t, test.in, got.String())
		}
	}
	_, err := ParseBinType("bogus")
	assert.Error(t, err)
}

func TestKind(t *testing.T) {
	for _, test := range []struct {
		bins Bins
		want BinType
	}{
		{Bins{}, Number},
		{Bins{Num: 4}, Number},
		{Bins{Width: 0.5}, Width},
		{Bins{Edges: []float64{0, 1}, Width: 2}, Edges},
		{Bins{Type: Equal, Width: 2}, Equal},
	} {
		assert.Equal(t, test.want, test.bins.Kind(), "%+v", test.bins)
	}
}

func TestDefaultCount(t *testing.T) {
	assert.Equal(t, 1, DefaultCount(0))
	assert.Equal(t, 1, DefaultCount(1))
	assert.Equal(t, 6, DefaultCount(100))
	assert.Equal(t, 15, DefaultCount(1000))
}

func TestLinearEdgesEvenlySpaced(t *testing.T) {
	data := []float64{3, -1, 7, 2, 5, math.NaN()}
	edges, err := Bins{Num: 4}.Resolve(data, false)
	require.NoError(t, err)
	require.Len(t, edges, 5)
	assert.Equal(t, -1.0, edges[0])
	assert.Equal(t, 7.0, edges[4])
	for i := 1; i < len(edges); i++ {
		assert.InDelta(t, 2.0, edges[i]-edges[i-1], 1e-12)
	}
}

func TestLogEdgesEvenlySpaced(t *testing.T) {
	data := []float64{1, 10, 1000, -5, 0, 100}
	edges, err := Bins{Num: 3}.Resolve(data, true)
	require.NoError(t, err)
	require.Len(t, edges, 4)
	assert.Equal(t, 1.0, edges[0])
	assert.Equal(t, 1000.0, edges[3])
	for i := 1; i < len(edges); i++ {
		assert.InDelta(t, 1.0, math.Log10(edges[i])-math.Log10(edges[i-1]), 1e-12)
	}
}

func TestDegenerateRange(t *testing.T) {
	edges, err := Bins{Num: 2}.Resolve([]float64{4, 4, 4}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 4, 4.5}, edges)
}

func TestWidthEdges(t *testing.T) {
	edges, err := Bins{Width: 2}.Resolve([]float64{0, 1, 5}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6}, edges)

	edges, err = Bins{Type: Width, Width: 1}.Resolve([]float64{1, 100}, true)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.InDelta(t, 10, edges[1], 1e-9)

	_, err = Bins{Type: Width}.Resolve([]float64{1, 2}, false)
	assert.Error(t, err)
}

func TestExplicitEdges(t *testing.T) {
	in := []float64{0, 1, 3}
	edges, err := Bins{Edges: in}.Resolve(nil, false)
	require.NoError(t, err)
	assert.Equal(t, in, edges)
	edges[0] = 42
	assert.Equal(t, 0.0, in[0], "Resolve must copy explicit edges")

	for _, bad := range [][]float64{{1}, {0, 0}, {2, 1}} {
		_, err := Bins{Edges: bad}.Resolve(nil, false)
		assert.ErrorIs(t, err, ErrBadEdges)
	}
}

func TestNoData(t *testing.T) {
	_, err := Bins{}.Resolve([]float64{math.NaN(), math.Inf(1)}, false)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = Bins{}.Resolve([]float64{-1, 0}, true)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestEqualOccupancy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{7, 50, 101, 1000} {
		data := make([]float64, n)
		for i := range data {
			data[i] = rng.NormFloat64()
		}
		for _, nbins := range []int{1, 3, 5, 7} {
			edges, err := Bins{Type: Equal, Num: nbins}.Resolve(data, false)
			require.NoError(t, err)
			require.Len(t, edges, nbins+1)
			lo, hi := n/nbins, (n+nbins-1)/nbins
			for i, c := range Count(data, edges) {
				assert.True(t, int(c) == lo || int(c) == hi,
					"n=%d bins=%d: bin %d has %v points, want %d or %d", n, nbins, i, c, lo, hi)
			}
		}
	}
}

func TestEqualMoreBinsThanData(t *testing.T) {
	edges, err := Bins{Type: Equal, Num: 10}.Resolve([]float64{3, 1, 2}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 2.5, 3}, edges)
}

func TestEqualOccupancyTies(t *testing.T) {
	data := []float64{1, 1, 1, 1, 2, 3}
	edges, err := Bins{Type: Equal, Num: 3}.Resolve(data, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1.5, 3}, edges)

	h, err := New1D(data, Bins{Type: Equal, Num: 3}, false, true)
	require.NoError(t, err)
	for i, v := range h.Values {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "bin %d density %v", i, v)
	}

	rng := rand.New(rand.NewSource(4))
	ints := make([]float64, 200)
	for i := range ints {
		ints[i] = float64(1 + rng.Intn(4))
	}
	for _, log := range []bool{false, true} {
		edges, err := Bins{Type: Equal, Num: 6}.Resolve(ints, log)
		require.NoError(t, err)
		_, err = checkEdges(edges)
		assert.NoError(t, err, "edges %v not strictly increasing", edges)
		total := 0.0
		for _, c := range Count(ints, edges) {
			assert.Greater(t, c, 0.0, "edges %v", edges)
			total += c
		}
		assert.Equal(t, float64(len(ints)), total)
	}
}
