/*
 * contacts.go, part of polarcontacts.
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
Package contacts turns the atom pairs found by a neighbor search into polar contacts,
and groups those contacts by residue pair.

The criterion is purely geometric: two polar atoms (N, O or S with the usual
PDB names) of different, non-adjacent residues that are closer than a cutoff
but not as close as a covalent bond. There are no donor/acceptor or angle
criteria, so the contacts are putative hydrogen bonds and salt bridges, not
assigned ones.
*/
package contacts

import (
	"slices"

	chem "github.com/rmera/polarcontacts"
	"github.com/rmera/polarcontacts/nbsearch"
)

// Sets are the atom and residue names that drive the selection and the filtering.
type Sets struct {
	AllPolars      []string
	BackbonePolars []string
	Waters         []string
}

// DefaultSets returns fresh copies of the default name sets.
func DefaultSets() Sets {
	return Sets{
		AllPolars: []string{
			"N", "ND1", "ND2", "NE", "NE1", "NE2", "NH1", "NH2", "NZ",
			"O", "OD1", "OD2", "OE1", "OE2", "OG", "OG1", "OH",
			"S", "SD", "SG",
		},
		BackbonePolars: []string{"N", "O"},
		Waters:         []string{"WAT", "HOH"},
	}
}

// Options control the filtering.
type Options struct {
	Covalent      float64 //pairs closer than this are taken as bonded. Default 2.0
	ChainAware    bool    //if true, the adjacency rule only applies within a chain
	ExcludeWaters bool
}

// DefaultOptions returns the default filter options.
func DefaultOptions() Options {
	return Options{Covalent: 2.0}
}

// Contact is a polar contact. At1 and At2 are topology indexes, and
// the serial number of At1 is lower than that of At2.
type Contact struct {
	At1, At2 int
	Dist     float64
}

// Select returns the topology indexes of the atoms whose names are among the backbone polars,
// if backboneOnly is true, or among all polars otherwise. Indexes are in topology order.
func Select(top chem.Atomer, sets Sets, backboneOnly bool) []int {
	names := sets.AllPolars
	if backboneOnly {
		names = sets.BackbonePolars
	}
	var ret []int
	for i := 0; i < top.Len(); i++ {
		if slices.Contains(names, top.Atom(i).Name) {
			ret = append(ret, i)
		}
	}
	return ret
}

// Filter applies, in order, the following exclusions to the pairs, which must come from a
// search over indexes: same residue, distance under opts.Covalent, sequence numbers differing
// by exactly one and, if opts.ExcludeWaters is set, either residue being a water. The surviving
// pairs are returned as contacts, in the order of pairs, with the lower serial first.
func Filter(top chem.Residuer, pairs []nbsearch.Pair, indexes []int, sets Sets, opts Options) []Contact {
	ret := make([]Contact, 0, len(pairs)/2)
	for _, p := range pairs {
		a1, a2 := indexes[p.I], indexes[p.J]
		r1, r2 := top.Residue(top.Atom(a1).Res), top.Residue(top.Atom(a2).Res)
		if r1.Index == r2.Index {
			continue
		}
		if p.Dist < opts.Covalent {
			continue
		}
		if adjacent(r1, r2, opts.ChainAware) {
			continue
		}
		if opts.ExcludeWaters && (slices.Contains(sets.Waters, r1.Name) || slices.Contains(sets.Waters, r2.Name)) {
			continue
		}
		if top.Atom(a1).ID > top.Atom(a2).ID {
			a1, a2 = a2, a1
		}
		ret = append(ret, Contact{At1: a1, At2: a2, Dist: p.Dist})
	}
	return ret
}

func adjacent(r1, r2 *chem.Residue, chainAware bool) bool {
	if chainAware && r1.Chain != r2.Chain {
		return false
	}
	d := r1.MolID - r2.MolID
	return d == 1 || d == -1
}
