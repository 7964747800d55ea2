// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrBadFraction is returned by Level for fractions outside (0, 1].
var ErrBadFraction = errors.New("enclosed fraction must be in (0, 1]")

// Level returns the density-contour level of values enclosing frac of
// their total mass. That is, the largest L such that
//
//	sum(v for v in values if v >= L) >= frac * sum(values)
//
// so that the bins strictly above L hold less than frac of the mass.
// NaN values are ignored.
func Level(values []float64, frac float64) (float64, error) {
	if !(frac > 0 && frac <= 1) {
		return 0, ErrBadFraction
	}
	vs := make([]float64, 0, len(values))
	total := 0.0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		vs = append(vs, v)
		total += v
	}
	if !(total > 0) {
		return 0, fmt.Errorf("total mass %v is not positive", total)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vs)))

	target := frac * total
	sum := 0.0
	for i, v := range vs {
		sum += v
		// Bins tied at v are all included once the level is v,
		// so only stop at the last of a run of equal values.
		if i+1 < len(vs) && vs[i+1] == v {
			continue
		}
		if sum >= target {
			return v, nil
		}
	}
	// Rounding can leave sum a hair under total; every bin is in.
	return vs[len(vs)-1], nil
}
