/*
 * grid.go, part of polarcontacts.
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
	"math"
	"slices"
)

type cell [3]int

func cellCompare(a, b cell) int {
	for k := 0; k < 3; k++ {
		if a[k] != b[k] {
			return a[k] - b[k]
		}
	}
	return 0
}

// halfShell are the 13 neighbor offsets that are "after" the origin in
// lexicographic order. Visiting only these, plus the cell itself, finds
// every pair of neighbor cells once.
var halfShell = func() []cell {
	var ret []cell
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				c := cell{x, y, z}
				if cellCompare(c, cell{}) > 0 {
					ret = append(ret, c)
				}
			}
		}
	}
	return ret
}()

type grid struct {
	cutoff float64
	cells  map[cell][]int
	keys   []cell //sorted
}

// cellSlack widens the cells so rounding in the cell assignment never puts
// two points within the cutoff more than one cell apart.
const cellSlack = 1e-9

// newGrid puts the points in cells with an edge slightly larger than cutoff,
// starting at min, the lowest value of each coordinate.
func newGrid(points [][]float64, min [3]float64, cutoff float64) *grid {
	g := &grid{cutoff: cutoff, cells: make(map[cell][]int)}
	edge := cutoff * (1 + cellSlack)
	for i, p := range points {
		var c cell
		for k := 0; k < 3; k++ {
			c[k] = int(math.Floor((p[k] - min[k]) / edge))
		}
		if _, ok := g.cells[c]; !ok {
			g.keys = append(g.keys, c)
		}
		g.cells[c] = append(g.cells[c], i)
	}
	slices.SortFunc(g.keys, cellCompare)
	return g
}

// pairs returns the pairs with at least one member in
// the cells keys, and the other in the same cell or in its half shell.
func (g *grid) pairs(points [][]float64, keys []cell) []Pair {
	var ret []Pair
	for _, c := range keys {
		here := g.cells[c]
		for a, i := range here {
			for _, j := range here[a+1:] {
				if d := distance(points[i], points[j]); d <= g.cutoff {
					ret = append(ret, newPair(i, j, d))
				}
			}
		}
		for _, off := range halfShell {
			there, ok := g.cells[cell{c[0] + off[0], c[1] + off[1], c[2] + off[2]}]
			if !ok {
				continue
			}
			for _, i := range here {
				for _, j := range there {
					if d := distance(points[i], points[j]); d <= g.cutoff {
						ret = append(ret, newPair(i, j, d))
					}
				}
			}
		}
	}
	return ret
}

// gridSearch splits the occupied cells in up to workers contiguous groups,
// searches them concurrently and concatenates the results in group order.
func gridSearch(points [][]float64, min [3]float64, cutoff float64, workers int) []Pair {
	g := newGrid(points, min, cutoff)
	if workers < 2 || len(g.keys) < 2 {
		return g.pairs(points, g.keys)
	}
	if workers > len(g.keys) {
		workers = len(g.keys)
	}
	chunk := (len(g.keys) + workers - 1) / workers
	var pipes []chan []Pair
	for start := 0; start < len(g.keys); start += chunk {
		end := start + chunk
		if end > len(g.keys) {
			end = len(g.keys)
		}
		pipe := make(chan []Pair, 1)
		pipes = append(pipes, pipe)
		go func(keys []cell, pipe chan []Pair) {
			pipe <- g.pairs(points, keys)
		}(g.keys[start:end], pipe)
	}
	var ret []Pair
	for _, pipe := range pipes {
		ret = append(ret, <-pipe...)
	}
	return ret
}
