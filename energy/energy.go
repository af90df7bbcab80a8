/*
 * energy.go, part of polarcontacts.
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
Package energy computes non-bonded interaction energies (electrostatic and
Lennard-Jones) between pairs of residues, in kcal/mol. Every atom of one
residue is paired with every atom of the other; there is no cutoff.
*/
package energy

import (
	"fmt"
	"math"
	"strings"

	"github.com/rmera/polarcontacts/top"
	"gonum.org/v1/gonum/floats"
)

// Coulomb constant in kcal·A/(mol·e^2)
const CoulombK = 332.16

// Rule is a Lennard-Jones combination rule.
type Rule int

const (
	// Amber uses the sum of the radii as the minimum-energy distance
	// and E = eps*((R/r)^12 - 2(R/r)^6).
	Amber Rule = iota
	// Geometric takes sigma as the geometric mean of the radii
	// and E = 4eps*((s/r)^12 - (s/r)^6).
	Geometric
)

func (r Rule) String() string {
	switch r {
	case Amber:
		return "amber"
	case Geometric:
		return "geometric"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule returns the rule named s ("amber" or "geometric").
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "amber", "":
		return Amber, nil
	case "geometric":
		return Geometric, nil
	}
	return Amber, fmt.Errorf("Unknown combination rule %q, use amber or geometric", s)
}

// Model holds the settings for the energy evaluation.
type Model struct {
	Dielectric float64 //relative dielectric constant. 0 means the Mehler-Solmajer distance-dependent one
	Combine    Rule
	MinDist    float64 //distances below this are taken as MinDist
}

// DefaultModel returns the model with dielectric 1, the amber rule and a 0.5 A distance floor.
func DefaultModel() Model {
	return Model{Dielectric: 1, Combine: Amber, MinDist: 0.5}
}

// Validate returns an error if the model can't be used.
func (M Model) Validate() error {
	if M.Dielectric < 0 || math.IsNaN(M.Dielectric) || math.IsInf(M.Dielectric, 0) {
		return fmt.Errorf("energy: dielectric must be 0 (distance-dependent) or positive, got %v", M.Dielectric)
	}
	if M.MinDist <= 0 || math.IsNaN(M.MinDist) || math.IsInf(M.MinDist, 0) {
		return fmt.Errorf("energy: the distance floor must be positive, got %v", M.MinDist)
	}
	if M.Combine != Amber && M.Combine != Geometric {
		return fmt.Errorf("energy: unknown combination rule %v", M.Combine)
	}
	return nil
}

// Result is the interaction energy between two residues.
type Result struct {
	Elec    float64
	VdW     float64
	Clamped int //atom pairs closer than the distance floor
}

// Total returns the sum of the electrostatic and van der Waals terms.
func (R Result) Total() float64 { return R.Elec + R.VdW }

// MehlerSolmajer returns the distance-dependent dielectric of Mehler and Solmajer
// (Protein Eng. 4, 903, 1991) at distance r.
func MehlerSolmajer(r float64) float64 {
	return 86.9525/(1+7.7839*math.Exp(-0.3153*r)) - 8.5525
}

// Coulomb returns the electrostatic energy between charges q1 and q2 at distance r.
// If diel is 0, the Mehler-Solmajer dielectric is used.
func Coulomb(q1, q2, r, diel float64) float64 {
	if diel == 0 {
		diel = MehlerSolmajer(r)
	}
	return CoulombK * q1 * q2 / (diel * r)
}

// LJ returns the Lennard-Jones energy between atoms with parameters p1 and p2
// at distance r, using the combination rule rule.
func LJ(p1, p2 top.Params, r float64, rule Rule) float64 {
	eps := math.Sqrt(p1.WellDepth * p2.WellDepth)
	if rule == Geometric {
		s6 := math.Pow(math.Sqrt(p1.Radius*p2.Radius)/r, 6)
		return 4 * eps * (s6*s6 - s6)
	}
	r6 := math.Pow((p1.Radius+p2.Radius)/r, 6)
	return eps * (r6*r6 - 2*r6)
}

// distances calls fn with every atom pair of a and b, and its distance,
// saturated at the distance floor. It returns the number of saturated distances.
func (M Model) distances(a, b *top.ResidueView, fn func(x, y *top.AtomView, r float64)) int {
	clamped := 0
	for _, x := range a.Atoms {
		for _, y := range b.Atoms {
			r := floats.Distance(x.Coord, y.Coord, 2)
			if r < M.MinDist {
				r = M.MinDist
				clamped++
			}
			fn(x, y, r)
		}
	}
	return clamped
}

// Electrostatic returns the Coulomb interaction between the residues a and b.
func (M Model) Electrostatic(a, b *top.ResidueView) Result {
	var e float64
	c := M.distances(a, b, func(x, y *top.AtomView, r float64) {
		e += Coulomb(x.Charge, y.Charge, r, M.Dielectric)
	})
	return Result{Elec: e, Clamped: c}
}

// VanDerWaals returns the Lennard-Jones interaction between the residues a and b.
func (M Model) VanDerWaals(a, b *top.ResidueView) Result {
	var e float64
	c := M.distances(a, b, func(x, y *top.AtomView, r float64) {
		e += LJ(x.Params, y.Params, r, M.Combine)
	})
	return Result{VdW: e, Clamped: c}
}

// Interaction returns both terms of the interaction between the residues a and b.
func (M Model) Interaction(a, b *top.ResidueView) Result {
	var elec, vdw float64
	c := M.distances(a, b, func(x, y *top.AtomView, r float64) {
		elec += Coulomb(x.Charge, y.Charge, r, M.Dielectric)
		vdw += LJ(x.Params, y.Params, r, M.Combine)
	})
	return Result{Elec: elec, VdW: vdw, Clamped: c}
}
