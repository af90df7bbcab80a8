/*
 * aggregate.go, part of polarcontacts.
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

package contacts

import (
	"slices"

	chem "github.com/rmera/polarcontacts"
)

// ResPair is a pair of topology residue indexes. Res1 is the residue
// with the lower sequence number (on ties, the lower index).
type ResPair struct {
	Res1, Res2 int
}

// SortContacts sorts cs by the serial number of At1, then of At2.
// The sort is stable.
func SortContacts(top chem.Atomer, cs []Contact) {
	slices.SortStableFunc(cs, func(a, b Contact) int {
		if d := top.Atom(a.At1).ID - top.Atom(b.At1).ID; d != 0 {
			return d
		}
		return top.Atom(a.At2).ID - top.Atom(b.At2).ID
	})
}

// ResiduePairs returns the distinct residue pairs in cs, regardless of order,
// in the order of first appearance.
func ResiduePairs(top chem.Residuer, cs []Contact) []ResPair {
	seen := make(map[ResPair]bool)
	var ret []ResPair
	for _, c := range cs {
		rp := NewResPair(top, top.Atom(c.At1).Res, top.Atom(c.At2).Res)
		if seen[rp] {
			continue
		}
		seen[rp] = true
		ret = append(ret, rp)
	}
	return ret
}

// NewResPair returns the canonical pair for residues r1 and r2 of top.
func NewResPair(top chem.Residuer, r1, r2 int) ResPair {
	m1, m2 := top.Residue(r1).MolID, top.Residue(r2).MolID
	if m1 > m2 || (m1 == m2 && r1 > r2) {
		r1, r2 = r2, r1
	}
	return ResPair{Res1: r1, Res2: r2}
}

// SortResPairs sorts rps by the sequence number of Res1, then that of Res2, then by
// residue index. The sort is stable.
func SortResPairs(top chem.Residuer, rps []ResPair) {
	slices.SortStableFunc(rps, func(a, b ResPair) int {
		if d := top.Residue(a.Res1).MolID - top.Residue(b.Res1).MolID; d != 0 {
			return d
		}
		if d := top.Residue(a.Res2).MolID - top.Residue(b.Res2).MolID; d != 0 {
			return d
		}
		if a.Res1 != b.Res1 {
			return a.Res1 - b.Res1
		}
		return a.Res2 - b.Res2
	})
}
