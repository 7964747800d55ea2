// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
)

// A Statistic reduces the values that fell in one bin to a single
// number. It is never called with a nil slice, but may be called with
// an empty one.
type Statistic func(vals []float64) float64

// CountStat returns the number of values.
func CountStat(vals []float64) float64 { return float64(len(vals)) }

// Sum returns the sum of the values, 0 for an empty bin.
func Sum(vals []float64) float64 { return floats.Sum(vals) }

// Mean returns the mean of the values, NaN for an empty bin.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return stats.Mean(vals)
}

// Median returns the median of the values, averaging the two middle
// values of an even-sized bin. It is NaN for an empty bin.
func Median(vals []float64) float64 {
	n := len(vals)
	if n == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// Min returns the smallest value, NaN for an empty bin.
func Min(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return floats.Min(vals)
}

// Max returns the largest value, NaN for an empty bin.
func Max(vals []float64) float64 {
	if len(vals) == 0 {
		return math.NaN()
	}
	return floats.Max(vals)
}

var statistics = map[string]Statistic{
	"count":  CountStat,
	"sum":    Sum,
	"mean":   Mean,
	"median": Median,
	"min":    Min,
	"max":    Max,
}

// ParseStatistic returns the named statistic: one of count, sum,
// mean, median, min or max.
func ParseStatistic(name string) (Statistic, error) {
	if s, ok := statistics[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("unknown statistic %q", name)
}

// Options2D controls New2D.
type Options2D struct {
	// X and Y give the binning along each axis.
	X, Y Bins

	// XLog and YLog resolve edges in log10 space.
	XLog, YLog bool

	// Density normalizes counts to a probability density. It is
	// ignored when Stat is set.
	Density bool

	// Scale, if non-zero, multiplies counts or densities by
	// N/Scale.
	Scale float64

	// C holds the values reduced by Stat. If Stat is nil, C is
	// ignored and points are counted.
	C    []float64
	Stat Statistic

	// Bins holding fewer than NMin points are set to NaN.
	NMin int
}

// Grid is a two-dimensional histogram or binned statistic. Values and
// Counts are indexed [x bin][y bin].
type Grid struct {
	XEdges, YEdges []float64
	Values         [][]float64
	Counts         [][]float64
}

// New2D bins the points (x[i], y[i]).
func New2D(x, y []float64, opts Options2D) (*Grid, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y lengths differ: %d != %d", len(x), len(y))
	}
	if opts.Stat != nil && len(opts.C) != len(x) {
		return nil, fmt.Errorf("c has length %d, want %d", len(opts.C), len(x))
	}
	xe, err := opts.X.Resolve(x, opts.XLog)
	if err != nil {
		return nil, fmt.Errorf("x bins: %w", err)
	}
	ye, err := opts.Y.Resolve(y, opts.YLog)
	if err != nil {
		return nil, fmt.Errorf("y bins: %w", err)
	}

	nx, ny := len(xe)-1, len(ye)-1
	g := &Grid{XEdges: xe, YEdges: ye, Values: newMatrix(nx, ny), Counts: newMatrix(nx, ny)}
	var groups [][][]float64
	if opts.Stat != nil {
		groups = make([][][]float64, nx)
		for i := range groups {
			groups[i] = make([][]float64, ny)
		}
	}

	n := 0
	for k := range x {
		i, j := binIndex(xe, x[k]), binIndex(ye, y[k])
		if i < 0 || j < 0 {
			continue
		}
		g.Counts[i][j]++
		n++
		if groups != nil {
			groups[i][j] = append(groups[i][j], opts.C[k])
		}
	}

	for i := range g.Values {
		for j := range g.Values[i] {
			switch {
			case groups != nil:
				vals := groups[i][j]
				if vals == nil {
					vals = []float64{}
				}
				g.Values[i][j] = opts.Stat(vals)
			case opts.Density && n > 0:
				area := (xe[i+1] - xe[i]) * (ye[j+1] - ye[j])
				g.Values[i][j] = g.Counts[i][j] / (float64(n) * area)
			default:
				g.Values[i][j] = g.Counts[i][j]
			}
		}
	}

	if opts.Stat == nil && opts.Scale != 0 {
		for _, row := range g.Values {
			floats.Scale(float64(n)/opts.Scale, row)
		}
	}
	if opts.NMin > 0 {
		for i, row := range g.Counts {
			for j, c := range row {
				if c < float64(opts.NMin) {
					g.Values[i][j] = math.NaN()
				}
			}
		}
	}
	return g, nil
}

func newMatrix(nx, ny int) [][]float64 {
	m := make([][]float64, nx)
	back := make([]float64, nx*ny)
	for i := range m {
		m[i] = back[i*ny : (i+1)*ny : (i+1)*ny]
	}
	return m
}

// Flat returns all of g's values in one slice.
func (g *Grid) Flat() []float64 {
	out := make([]float64, 0, len(g.Values)*len(g.YEdges))
	for _, row := range g.Values {
		out = append(out, row...)
	}
	return out
}

// XCenters returns the centers of the x bins.
func (g *Grid) XCenters(log bool) []float64 { return Centers(g.XEdges, log) }

// YCenters returns the centers of the y bins.
func (g *Grid) YCenters(log bool) []float64 { return Centers(g.YEdges, log) }

// PercentLevel returns the level enclosing frac of g's total mass.
// See Level.
func (g *Grid) PercentLevel(frac float64) (float64, error) {
	return Level(g.Flat(), frac)
}
