// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splot

import "fmt"

// A LengthError reports a per-series parameter whose length is
// neither 1 nor the number of series.
type LengthError struct {
	Param     string
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s has %d entries, want 1 or %d", e.Param, e.Got, e.Want)
}

// Broadcast expands a per-series parameter to n entries. An empty
// vals yields n copies of def, a single value is repeated n times,
// and n values are copied as is.
func Broadcast[T any](param string, vals []T, n int, def T) ([]T, error) {
	out := make([]T, n)
	switch len(vals) {
	case 0:
		for i := range out {
			out[i] = def
		}
	case 1:
		for i := range out {
			out[i] = vals[0]
		}
	case n:
		copy(out, vals)
	default:
		return nil, &LengthError{param, len(vals), n}
	}
	return out, nil
}
