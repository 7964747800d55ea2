// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Hist1D is a one-dimensional histogram.
type Hist1D struct {
	// Edges are the len(Values)+1 bin boundaries.
	Edges []float64

	// Values are the counts, or the densities if Density is set.
	Values []float64

	// N is the number of samples that fell within Edges.
	N int

	Density bool
}

// New1D bins data according to bins. If density is true, the values
// are normalized so the histogram integrates to 1.
func New1D(data []float64, bins Bins, log, density bool) (*Hist1D, error) {
	edges, err := bins.Resolve(data, log)
	if err != nil {
		return nil, err
	}
	counts := Count(data, edges)
	h := &Hist1D{Edges: edges, Values: counts, N: int(floats.Sum(counts))}
	if density {
		h.Values = Density(counts, edges)
		h.Density = true
	}
	return h, nil
}

// Centers returns the midpoint of each bin. If log is true, these are
// geometric midpoints.
func (h *Hist1D) Centers(log bool) []float64 {
	return Centers(h.Edges, log)
}

// Normalize rescales a density histogram so it integrates to N/norm
// rather than 1. It does nothing for count histograms or if norm is 0.
func (h *Hist1D) Normalize(norm float64) {
	if !h.Density || norm == 0 {
		return
	}
	floats.Scale(float64(h.N)/norm, h.Values)
}

// Centers returns the midpoints between successive edges.
func Centers(edges []float64, log bool) []float64 {
	if len(edges) < 2 {
		return nil
	}
	cs := make([]float64, len(edges)-1)
	for i := range cs {
		if log {
			cs[i] = math.Sqrt(edges[i] * edges[i+1])
		} else {
			cs[i] = (edges[i] + edges[i+1]) / 2
		}
	}
	return cs
}

// Count returns the number of values of data in each bin. Bins are
// half-open [edges[i], edges[i+1]) except the last, which also
// includes its upper edge. Values outside the edges and NaNs are
// ignored.
func Count(data, edges []float64) []float64 {
	if len(edges) < 2 {
		return nil
	}
	counts := make([]float64, len(edges)-1)
	for _, x := range data {
		if i := binIndex(edges, x); i >= 0 {
			counts[i]++
		}
	}
	return counts
}

// binIndex returns the bin of edges containing x, or -1.
func binIndex(edges []float64, x float64) int {
	n := len(edges) - 1
	if math.IsNaN(x) || x < edges[0] || x > edges[n] {
		return -1
	}
	if x == edges[n] {
		return n - 1
	}
	// First edge strictly greater than x, minus one.
	return sort.Search(len(edges), func(i int) bool { return edges[i] > x }) - 1
}

// Density converts counts to a probability density over edges.
func Density(counts, edges []float64) []float64 {
	dens := make([]float64, len(counts))
	total := floats.Sum(counts)
	if total == 0 {
		return dens
	}
	for i, c := range counts {
		dens[i] = c / (total * (edges[i+1] - edges[i]))
	}
	return dens
}
