/*
 * chem.go, part of polarcontacts.
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

package chem

import (
	"fmt"
	"strconv"
	"strings"

	v3 "github.com/rmera/polarcontacts/v3"
)

//Atom contains the atoms read except for the coordinates, which will be in a matrix
//and the b-factors, which are in a separate slice of float64.
type Atom struct {
	Name      string
	ID        int //the serial number in the structure file
	Index     int //0-based position in the Topology
	MolName   string
	MolID     int
	InsCode   byte
	Chain     string
	Occupancy float64
	Symbol    string
	Het       bool // is hetatm in the pdb file?
	Res       int  //index of the residue containing this atom in the Topology
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

//Residue groups the atoms that share chain, residue number,
//insertion code and residue name. The atoms are not owned by the residue,
//it only keeps their indexes in the Topology.
type Residue struct {
	Name    string
	Chain   string
	MolID   int
	InsCode byte
	Index   int   //0-based position in the Topology residue table
	Atoms   []int //topology indexes, in file order
}

//ID returns a human-readable identifier for the residue, i.e. "ASP A23".
//The chain is omitted if blank.
func (R *Residue) ID() string {
	num := strconv.Itoa(R.MolID)
	if R.InsCode != 0 && R.InsCode != ' ' {
		num += string(R.InsCode)
	}
	ch := strings.TrimSpace(R.Chain)
	return fmt.Sprintf("%s %s%s", R.Name, ch, num)
}

//resKey identifies the residue an atom belongs to.
type resKey struct {
	chain   string
	molID   int
	insCode byte
	name    string
}

func keyOf(at *Atom) resKey {
	return resKey{chain: at.Chain, molID: at.MolID, insCode: at.InsCode, name: at.MolName}
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates and b-factors)
type Topology struct {
	Atoms    []*Atom
	Residues []*Residue
}

//NewTopology builds a topology from the atoms given. Indexes are reset to the
//order of the slice and atoms with the same chain, residue number,
//insertion code and residue name are grouped into residues, even if they
//are not consecutive.
func NewTopology(ats []*Atom) (*Topology, error) {
	if ats == nil {
		return nil, fmt.Errorf("Supplied a nil Atom slice")
	}
	top := new(Topology)
	top.Atoms = ats
	top.FillResidues()
	return top, nil
}

//FillResidues (re)builds the residue table of the topology and sets the Index and
//Res fields of every atom. Residues are in order of first appearance.
func (T *Topology) FillResidues() {
	T.Residues = T.Residues[:0]
	seen := make(map[resKey]*Residue)
	for i, at := range T.Atoms {
		at.Index = i
		k := keyOf(at)
		cur, ok := seen[k]
		if !ok {
			cur = &Residue{Name: at.MolName, Chain: at.Chain, MolID: at.MolID, InsCode: at.InsCode, Index: len(T.Residues)}
			T.Residues = append(T.Residues, cur)
			seen[k] = cur
		}
		cur.Atoms = append(cur.Atoms, i)
		at.Res = cur.Index
	}
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i < 0 || i >= T.Len() {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Residue returns the i-th residue of the topology. Panics if out of range.
func (T *Topology) Residue(i int) *Residue {
	if i < 0 || i >= len(T.Residues) {
		panic("Topology: Requested Residue out of bounds")
	}
	return T.Residues[i]
}

//NRes returns the number of residues in the topology
func (T *Topology) NRes() int {
	return len(T.Residues)
}

//ResidueOf returns the residue containing the i-th atom.
func (T *Topology) ResidueOf(i int) *Residue {
	return T.Residue(T.Atom(i).Res)
}

//AtomID returns a human-readable identifier for the i-th atom, i.e. "ASP A23.OD1"
func (T *Topology) AtomID(i int) string {
	return T.ResidueOf(i).ID() + "." + T.Atom(i).Name
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
//Coordinates and b-factors are stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords   []*v3.Matrix
	Bfactors [][]float64
}

//NewMolecule makes a molecule with ats topology, coords coordinates and bfactors b-factors
//and returns it. It checks that every frame has as many coordinates as atoms in the topology.
func NewMolecule(ats *Topology, coords []*v3.Matrix, bfactors [][]float64) (*Molecule, error) {
	if ats == nil {
		return nil, fmt.Errorf("Supplied a nil Topology")
	}
	if len(coords) == 0 {
		return nil, fmt.Errorf("Supplied no coordinates")
	}
	mol := &Molecule{Topology: ats, Coords: coords, Bfactors: bfactors}
	if err := mol.Corrupted(); err != nil {
		return nil, err
	}
	return mol, nil
}

//Coord returns a view of the coords for the atom atom in the frame frame.
//panics if frame or coords are out of range.
func (M *Molecule) Coord(atom, frame int) *v3.Matrix {
	if frame >= len(M.Coords) {
		panic(fmt.Sprintf("Frame requested (%d) out of range", frame))
	}
	return M.Coords[frame].VecView(atom)
}

//Corrupted checks whether the molecule is corrupted, i.e. the
//coordinates don't match the number of atoms.
func (M *Molecule) Corrupted() error {
	for i, c := range M.Coords {
		if c == nil || c.NVecs() != M.Len() {
			n := 0
			if c != nil {
				n = c.NVecs()
			}
			return fmt.Errorf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, M.Len(), n)
		}
	}
	return nil
}

//LenFrames returns the number of frames (models) in the molecule
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}
