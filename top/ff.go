/*
 * ff.go, part of polarcontacts.
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

package top

import (
	"fmt"
	"log"
	"strings"

	chem "github.com/rmera/polarcontacts"
	v3 "github.com/rmera/polarcontacts/v3"
)

// AtomType contains the van der Waals parameters for one atom type.
type AtomType struct {
	Name      string
	WellDepth float64 //epsilon, kcal/mol
	Radius    float64 //sigma column of the file, A
	Mass      float64
	Fsrf      float64
}

// ResAtom is a residue library entry.
type ResAtom struct {
	ResName  string
	AtomName string
	Type     string
	Charge   float64
}

// Params are the physical parameters resolved for one atom.
type Params struct {
	Type      string
	Charge    float64
	Radius    float64
	WellDepth float64
}

type resAtomKey struct {
	res  string
	atom string
}

func canon(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func key(res, atom string) resAtomKey {
	return resAtomKey{canon(res), canon(atom)}
}

// FF is a force field: a van der Waals set plus a residue library.
// It is not modified after loading, so it can be shared.
type FF struct {
	types    map[string]*AtomType
	resatoms map[resAtomKey]*ResAtom
}

// NewFF returns an empty force field, to be filled with FillTypes and FillResLib.
func NewFF() *FF {
	return &FF{types: make(map[string]*AtomType), resatoms: make(map[resAtomKey]*ResAtom)}
}

// NTypes returns the number of atom types loaded.
func (F *FF) NTypes() int { return len(F.types) }

// NResAtoms returns the number of residue library entries loaded.
func (F *FF) NResAtoms() int { return len(F.resatoms) }

// Type returns the atom type with the given name, and whether it was found.
func (F *FF) Type(name string) (*AtomType, bool) {
	t, ok := F.types[canon(name)]
	return t, ok
}

// Lookup resolves the parameters for the atom atomname in the residue resname,
// first through the residue library, to get the atom type and charge,
// and then through the van der Waals set. Failures are *ParameterNotFoundError.
func (F *FF) Lookup(resname, atomname string) (Params, error) {
	k := key(resname, atomname)
	ra, ok := F.resatoms[k]
	if !ok {
		return Params{}, &ParameterNotFoundError{ResName: k.res, AtomName: k.atom, Reason: "not in residue library"}
	}
	at, ok := F.types[ra.Type]
	if !ok {
		return Params{}, &ParameterNotFoundError{ResName: k.res, AtomName: k.atom, AtomType: ra.Type, Reason: "atom type not in van der Waals set"}
	}
	return Params{Type: at.Name, Charge: ra.Charge, Radius: at.Radius, WellDepth: at.WellDepth}, nil
}

// ParameterNotFoundError is returned when an atom can't be assigned parameters.
type ParameterNotFoundError struct {
	ResName  string
	AtomName string
	AtomType string //empty if the failure happened in the residue library
	Reason   string
}

func (err *ParameterNotFoundError) Error() string {
	if err.AtomType != "" {
		return fmt.Sprintf("No parameters for atom %s of residue %s (type %s): %s", err.AtomName, err.ResName, err.AtomType, err.Reason)
	}
	return fmt.Sprintf("No parameters for atom %s of residue %s: %s", err.AtomName, err.ResName, err.Reason)
}

// MissingPolicy decides what happens to atoms without parameters.
type MissingPolicy int

const (
	MissingFail MissingPolicy = iota //the lookup error aborts the run
	MissingSkip                      //the atom is left out of the energy sums
)

func (m MissingPolicy) String() string {
	switch m {
	case MissingFail:
		return "fail"
	case MissingSkip:
		return "skip"
	}
	return fmt.Sprintf("MissingPolicy(%d)", int(m))
}

// ParseMissingPolicy returns the policy named s ("fail" or "skip").
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fail", "":
		return MissingFail, nil
	case "skip":
		return MissingSkip, nil
	}
	return MissingFail, fmt.Errorf("Unknown missing-parameter policy %q, use fail or skip", s)
}

// AtomView is a read-only pairing of a topology atom with its
// coordinates and resolved parameters.
type AtomView struct {
	Index int //in the topology
	Atom  *chem.Atom
	Coord []float64 //shares data with the coordinate matrix
	Params
}

// AtomView returns the view for the i-th atom of top, with coordinates from coords.
func (F *FF) AtomView(top *chem.Topology, coords *v3.Matrix, i int) (*AtomView, error) {
	at := top.Atom(i)
	p, err := F.Lookup(top.Residue(at.Res).Name, at.Name)
	if err != nil {
		return nil, err
	}
	return &AtomView{Index: i, Atom: at, Coord: coords.Vec(i), Params: p}, nil
}

// ResidueView is a read-only view of a residue with the atoms that could be parameterized.
type ResidueView struct {
	Residue *chem.Residue
	Atoms   []*AtomView
	Skipped []int //topology indexes of the atoms left out
}

// ResidueView returns the view for the r-th residue of top. With MissingFail the first lookup failure
// is returned. With MissingSkip the failing atoms are left out and a warning is logged for each.
func (F *FF) ResidueView(top *chem.Topology, coords *v3.Matrix, r int, policy MissingPolicy) (*ResidueView, error) {
	res := top.Residue(r)
	ret := &ResidueView{Residue: res, Atoms: make([]*AtomView, 0, len(res.Atoms))}
	for _, i := range res.Atoms {
		av, err := F.AtomView(top, coords, i)
		if err != nil {
			if policy != MissingSkip {
				return nil, fmt.Errorf("%s: %w", top.AtomID(i), err)
			}
			log.Printf("Warning: %s left out of energy sums: %v", top.AtomID(i), err)
			ret.Skipped = append(ret.Skipped, i)
			continue
		}
		ret.Atoms = append(ret.Atoms, av)
	}
	return ret, nil
}
