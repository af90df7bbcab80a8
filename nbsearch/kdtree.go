/*
 * kdtree.go, part of polarcontacts.
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

package nbsearch

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// point is a kdtree.Comparable carrying its position in the searched list.
type point struct {
	pos int
	c   []float64
}

// Compare satisfies the axis comparisons method of the kdtree.Comparable interface.
func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	return p.c[d] - q.c[d]
}

// Dims returns the number of dimensions to be considered.
func (p point) Dims() int { return 3 }

// Distance returns the squared distance between the receiver and c.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	var sum float64
	for k := 0; k < 3; k++ {
		d := p.c[k] - q.c[k]
		sum += d * d
	}
	return sum
}

// points is a collection of point that satisfies kdtree.Interface.
type points []point

func (p points) Index(i int) kdtree.Comparable         { return p[i] }
func (p points) Len() int                              { return len(p) }
func (p points) Pivot(d kdtree.Dim) int                { return plane{points: p, Dim: d}.Pivot() }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane is required to help points.
type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool {
	return p.points[i].c[p.Dim] < p.points[j].c[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// kdSearch runs a range query for each point. The squared-distance keeper gets
// a little slack so the final decision is taken with the same distance function
// the grid uses.
func kdSearch(pts [][]float64, cutoff float64) []Pair {
	data := make(points, len(pts))
	for i, c := range pts {
		data[i] = point{pos: i, c: c}
	}
	//the tree reorders the slice it gets.
	t := kdtree.New(append(points(nil), data...), false)
	var ret []Pair
	for _, q := range data {
		keep := kdtree.NewDistKeeper(cutoff * cutoff * (1 + 1e-9))
		t.NearestSet(keep, q)
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			other := c.Comparable.(point)
			if other.pos <= q.pos {
				continue
			}
			if d := distance(q.c, other.c); d <= cutoff {
				ret = append(ret, newPair(q.pos, other.pos, d))
			}
		}
	}
	return ret
}
