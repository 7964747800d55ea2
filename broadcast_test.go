// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcast(t *testing.T) {
	for _, test := range []struct {
		vals []int
		n    int
		want []int
	}{
		{nil, 3, []int{7, 7, 7}},
		{[]int{1}, 3, []int{1, 1, 1}},
		{[]int{1, 2, 3}, 3, []int{1, 2, 3}},
		{[]int{4}, 1, []int{4}},
		{nil, 0, []int{}},
	} {
		got, err := Broadcast("p", test.vals, test.n, 7)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "Broadcast(%v, %d)", test.vals, test.n)
	}
}

func TestBroadcastLengths(t *testing.T) {
	// For every length, Broadcast either succeeds with n entries
	// or fails with a LengthError naming the parameter.
	for n := 0; n < 6; n++ {
		for l := 0; l < 8; l++ {
			vals := make([]string, l)
			got, err := Broadcast("color", vals, n, "")
			if l == 0 || l == 1 || l == n {
				require.NoError(t, err)
				assert.Len(t, got, n)
				continue
			}
			var lerr *LengthError
			require.ErrorAs(t, err, &lerr, "len %d, n %d", l, n)
			assert.Equal(t, LengthError{"color", l, n}, *lerr)
		}
	}
}

func TestBroadcastCopies(t *testing.T) {
	vals := []float64{1, 2}
	got, err := Broadcast("x", vals, 2, 0)
	require.NoError(t, err)
	got[0] = 9
	assert.Equal(t, 1.0, vals[0])
}
