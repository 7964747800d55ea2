// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hist computes the binned summaries behind splot's
// histogram, 2D statistic, and density contour plots.
//
// Bin edges are resolved from a Bins value, which names one
// of four strategies: a fixed number of bins, a fixed bin width,
// explicit edges, or bins holding (as close as possible) an equal
// number of samples. On logarithmic axes, edges are generated in
// log10 space.
package hist

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

var (
	// ErrNoData is returned when no usable samples remain after
	// dropping non-finite values (and non-positive values on log
	// axes).
	ErrNoData = errors.New("no finite data to bin")

	// ErrBadEdges is returned for explicit edges that are too
	// short or not strictly increasing.
	ErrBadEdges = errors.New("bin edges must be strictly increasing with at least two entries")
)

// BinType is a strategy for deriving bin edges.
type BinType int

const (
	// Auto infers the strategy from which fields of Bins are set.
	Auto BinType = iota

	// Number divides the data range into Num equal bins.
	Number

	// Width divides the data range into bins of size Width.
	Width

	// Edges uses the given Edges as is.
	Edges

	// Equal makes Num bins each holding floor(n/Num) or
	// ceil(n/Num) samples.
	Equal
)

var binTypeNames = []string{"auto", "number", "width", "edges", "equal"}

func (t BinType) String() string {
	if t < 0 || int(t) >= len(binTypeNames) {
		return fmt.Sprintf("BinType(%d)", int(t))
	}
	return binTypeNames[t]
}

// ParseBinType returns the BinType named by s. The empty string
// means Auto.
func ParseBinType(s string) (BinType, error) {
	if s == "" {
		return Auto, nil
	}
	for i, name := range binTypeNames {
		if s == name {
			return BinType(i), nil
		}
	}
	return Auto, fmt.Errorf("unknown bin type %q", s)
}

// Bins specifies how to bin a sample. Only the field relevant to Type
// is consulted. The zero Bins uses DefaultCount bins.
type Bins struct {
	Type  BinType
	Num   int
	Width float64
	Edges []float64
}

// DefaultCount returns the number of bins used for n samples when no
// count is given.
func DefaultCount(n int) int {
	c := int(math.Pow(float64(n), 0.4))
	if c < 1 {
		c = 1
	}
	return c
}

// Kind returns the resolved strategy of b. For Auto, explicit edges
// take precedence, then a positive width, and otherwise a bin count.
func (b Bins) Kind() BinType {
	if b.Type != Auto {
		return b.Type
	}
	switch {
	case b.Edges != nil:
		return Edges
	case b.Width > 0:
		return Width
	}
	return Number
}

// Resolve returns the bin edges for data. If log is true, edges are
// spaced in log10 space and non-positive samples are ignored.
// Non-finite samples are always ignored.
func (b Bins) Resolve(data []float64, log bool) ([]float64, error) {
	kind := b.Kind()
	if kind == Edges {
		return checkEdges(b.Edges)
	}

	xs := usable(data, log)
	if len(xs) == 0 {
		return nil, ErrNoData
	}
	n := b.Num
	if n <= 0 {
		n = DefaultCount(len(xs))
	}

	switch kind {
	case Number:
		lo, hi := stats.Bounds(xs)
		return spaced(lo, hi, n, log), nil

	case Width:
		if !(b.Width > 0) {
			return nil, fmt.Errorf("bin width must be positive, got %v", b.Width)
		}
		return widthEdges(xs, b.Width, log), nil

	case Equal:
		return equalEdges(xs, n, log), nil
	}
	return nil, fmt.Errorf("unknown bin type %v", kind)
}

// usable returns the finite values of data, also dropping
// non-positive values if log is set.
func usable(data []float64, log bool) []float64 {
	xs := make([]float64, 0, len(data))
	for _, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) || (log && x <= 0) {
			continue
		}
		xs = append(xs, x)
	}
	return xs
}

func checkEdges(edges []float64) ([]float64, error) {
	if len(edges) < 2 {
		return nil, ErrBadEdges
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, ErrBadEdges
		}
	}
	return append([]float64(nil), edges...), nil
}

// spaced returns n+1 edges covering [lo, hi], evenly spaced in linear
// or log10 space. A degenerate range is widened by 0.5 (in dex on log
// axes) on each side.
func spaced(lo, hi float64, n int, log bool) []float64 {
	if !log {
		if lo == hi {
			lo, hi = lo-0.5, hi+0.5
		}
		edges := vec.Linspace(lo, hi, n+1)
		edges[n] = hi
		return edges
	}
	llo, lhi := math.Log10(lo), math.Log10(hi)
	if llo == lhi {
		llo, lhi = llo-0.5, lhi+0.5
		lo, hi = math.Pow(10, llo), math.Pow(10, lhi)
	}
	edges := vec.Logspace(llo, lhi, n+1, 10)
	// Pin the ends so rounding in Pow never drops the extremes.
	edges[0], edges[n] = lo, hi
	return edges
}

func widthEdges(xs []float64, width float64, log bool) []float64 {
	min, max := stats.Bounds(xs)
	lo, hi := min, max
	if log {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	k := int(math.Ceil((hi - lo) / width))
	if k < 1 {
		k = 1
	}
	// Guard against the last step falling short through rounding.
	if lo+float64(k)*width < hi {
		k++
	}
	edges := make([]float64, k+1)
	for i := range edges {
		e := lo + float64(i)*width
		if log {
			e = math.Pow(10, e)
		}
		edges[i] = e
	}
	edges[0] = min
	if edges[k] < max {
		edges[k] = max
	}
	return edges
}

// equalEdges splits the sorted sample into groups whose sizes differ
// by at most one. Group i holds sorted indexes
// [floor(i*len/n), floor((i+1)*len/n)). A split that falls between
// tied samples moves up to the next change in value, and coinciding
// splits merge, so tied data may yield fewer than n bins.
func equalEdges(xs []float64, n int, log bool) []float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if n > len(sorted) {
		n = len(sorted)
	}
	edges := make([]float64, n+1)
	edges[0], edges[n] = sorted[0], sorted[len(sorted)-1]
	for i := 1; i < n; i++ {
		k := i * len(sorted) / n
		for k < len(sorted) && sorted[k-1] == sorted[k] {
			k++
		}
		if k == len(sorted) {
			edges[i] = edges[n]
			continue
		}
		a, b := sorted[k-1], sorted[k]
		if log {
			edges[i] = math.Sqrt(a * b)
		} else {
			edges[i] = (a + b) / 2
		}
	}
	if edges[0] == edges[n] {
		// Every sample is equal; give the single bin some extent.
		return spaced(edges[0], edges[n], n, log)
	}
	out := edges[:1]
	for _, e := range edges[1:] {
		if e > out[len(out)-1] {
			out = append(out, e)
		}
	}
	return out
}
