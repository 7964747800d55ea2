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

func massAtOrAbove(vs []float64, level float64, strict bool) float64 {
	sum := 0.0
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		if v > level || (!strict && v == level) {
			sum += v
		}
	}
	return sum
}

func TestLevel(t *testing.T) {
	for _, test := range []struct {
		values []float64
		frac   float64
		want   float64
	}{
		{[]float64{1, 2, 3, 4}, 0.4, 4},
		{[]float64{1, 2, 3, 4}, 0.41, 3},
		{[]float64{1, 2, 3, 4}, 0.7, 3},
		{[]float64{1, 2, 3, 4}, 1, 1},
		{[]float64{5, 5, 0, 0}, 0.5, 5},
		{[]float64{2, math.NaN(), 2, 1}, 0.9, 1},
	} {
		got, err := Level(test.values, test.frac)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "Level(%v, %v)", test.values, test.frac)
	}
}

func TestLevelIsMinimalThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 50; iter++ {
		vs := make([]float64, 1+rng.Intn(200))
		total := 0.0
		for i := range vs {
			vs[i] = float64(rng.Intn(20))
			total += vs[i]
		}
		if total == 0 {
			continue
		}
		for _, pct := range []float64{10, 38.3, 68.27, 95.45, 99.7} {
			frac := pct / 100
			level, err := Level(vs, frac)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, massAtOrAbove(vs, level, false), frac*total)
			assert.Less(t, massAtOrAbove(vs, level, true), frac*total)
		}
	}
}

func TestLevelErrors(t *testing.T) {
	for _, frac := range []float64{0, -0.5, 1.5, math.NaN()} {
		_, err := Level([]float64{1, 2}, frac)
		assert.ErrorIs(t, err, ErrBadFraction, "frac %v", frac)
	}
	_, err := Level([]float64{0, 0}, 0.5)
	assert.Error(t, err)
	_, err = Level(nil, 0.5)
	assert.Error(t, err)
}

func TestGridPercentLevel(t *testing.T) {
	g := &Grid{Values: [][]float64{{1, 9}, {0, 0}}}
	level, err := g.PercentLevel(0.9)
	require.NoError(t, err)
	assert.Equal(t, 9.0, level)
}
