/*
 * nbsearch.go, part of polarcontacts.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package nbsearch finds all the pairs of points within a cutoff distance of each other.
Two backends are offered: a uniform cell grid (the default) and a k-d tree. Both
return exactly the same pairs, in the same order.
*/
package nbsearch

import (
	"fmt"
	"math"
	"slices"
	"strings"

	v3 "github.com/rmera/polarcontacts/v3"
	"gonum.org/v1/gonum/floats"
)

// Pair is a pair of points within the cutoff. I and J are positions in the
// index list given to Search, with I < J. Dist is the euclidean distance.
type Pair struct {
	I, J int
	Dist float64
}

// Backend is the algorithm used for the search.
type Backend int

const (
	Grid Backend = iota
	KDTree
)

func (b Backend) String() string {
	switch b {
	case Grid:
		return "grid"
	case KDTree:
		return "kdtree"
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend returns the backend named s ("grid" or "kdtree").
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "":
		return Grid, nil
	case "kdtree", "kd-tree":
		return KDTree, nil
	}
	return Grid, fmt.Errorf("Unknown search backend %q, use grid or kdtree", s)
}

type options struct {
	backend Backend
	workers int
}

// Option modifies the behavior of Search.
type Option func(*options)

// WithBackend selects the search algorithm.
func WithBackend(b Backend) Option {
	return func(o *options) { o.backend = b }
}

// Workers sets the number of goroutines used by the grid backend.
// Values lower than 2 mean a sequential search. The result doesn't
// depend on the number of workers.
func Workers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Search returns every unordered pair of the points in coords with indexes in indexes
// that are within cutoff of each other (distance <= cutoff). Each pair is returned
// exactly once, and the pairs are sorted by I, then by J. If indexes is nil, all the
// points in coords are searched.
func Search(coords *v3.Matrix, indexes []int, cutoff float64, opts ...Option) ([]Pair, error) {
	o := &options{backend: Grid, workers: 1}
	for _, f := range opts {
		f(o)
	}
	if cutoff <= 0 || math.IsNaN(cutoff) || math.IsInf(cutoff, 0) {
		return nil, fmt.Errorf("nbsearch: cutoff must be a positive finite number, got %v", cutoff)
	}
	if coords == nil {
		return nil, fmt.Errorf("nbsearch: nil coordinates")
	}
	if indexes == nil {
		indexes = make([]int, coords.NVecs())
		for i := range indexes {
			indexes[i] = i
		}
	}
	if err := coords.Finite(indexes); err != nil {
		return nil, fmt.Errorf("nbsearch: %w", err)
	}
	if len(indexes) < 2 {
		return []Pair{}, nil
	}
	points := make([][]float64, len(indexes))
	for i, v := range indexes {
		points[i] = coords.Vec(v)
	}
	var pairs []Pair
	switch o.backend {
	case Grid:
		min, _ := coords.Bounds(indexes)
		pairs = gridSearch(points, min, cutoff, o.workers)
	case KDTree:
		pairs = kdSearch(points, cutoff)
	default:
		return nil, fmt.Errorf("nbsearch: unknown backend %v", o.backend)
	}
	sortPairs(pairs)
	return pairs, nil
}

// distance is used by all backends, so they agree on borderline pairs.
func distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// newPair returns the pair with the lower position first.
func newPair(i, j int, d float64) Pair {
	if i > j {
		i, j = j, i
	}
	return Pair{I: i, J: j, Dist: d}
}

func sortPairs(p []Pair) {
	slices.SortFunc(p, func(a, b Pair) int {
		if a.I != b.I {
			return a.I - b.I
		}
		return a.J - b.J
	})
}
