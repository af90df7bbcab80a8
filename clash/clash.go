/*
 * clash.go, part of polarcontacts.
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

// Package clash measures how close two residues get: their closest atom pair
// and the largest overlap of van der Waals radii between them.
package clash

import (
	"math"

	"github.com/rmera/polarcontacts/top"
	"gonum.org/v1/gonum/floats"
)

// Overlap is the closest approach between two sets of atoms. The atom
// indexes are topology indexes, -1 if there were no atoms to compare.
type Overlap struct {
	Dist      float64 //lowest interatomic distance
	DistAtoms [2]int
	Over      float64 //largest sum of radii minus distance. Negative if no radii overlap
	OverAtoms [2]int
}

// LowestDist returns the lowest distance between an atom in test and one in clash,
// and the indexes of that pair. If either set is empty, it returns 0 and {-1,-1}.
func LowestDist(test, clash []*top.AtomView) (dist float64, indexes [2]int) {
	dist = math.Inf(1)
	indexes = [2]int{-1, -1}
	for _, a := range test {
		for _, b := range clash {
			if d := floats.Distance(a.Coord, b.Coord, 2); d < dist {
				dist = d
				indexes = [2]int{a.Index, b.Index}
			}
		}
	}
	if indexes[0] < 0 {
		dist = 0
	}
	return
}

// HighestOverlap returns the largest overlap of van der Waals radii, (Ri+Rj) - d,
// between an atom in test and one in clash, and the indexes of that pair.
// If either set is empty, it returns 0 and {-1,-1}.
func HighestOverlap(test, clash []*top.AtomView) (over float64, indexes [2]int) {
	over = math.Inf(-1)
	indexes = [2]int{-1, -1}
	for _, a := range test {
		for _, b := range clash {
			d := floats.Distance(a.Coord, b.Coord, 2)
			if ov := a.Radius + b.Radius - d; ov > over {
				over = ov
				indexes = [2]int{a.Index, b.Index}
			}
		}
	}
	if indexes[0] < 0 {
		over = 0
	}
	return
}

// Residues returns the closest approach between the atoms of two residue views.
func Residues(a, b *top.ResidueView) Overlap {
	var o Overlap
	o.Dist, o.DistAtoms = LowestDist(a.Atoms, b.Atoms)
	o.Over, o.OverAtoms = HighestOverlap(a.Atoms, b.Atoms)
	return o
}
