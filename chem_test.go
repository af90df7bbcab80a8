package chem

import (
	"testing"

	v3 "github.com/rmera/polarcontacts/v3"
)

func TestTopologyResidues(Te *testing.T) {
	ats := []*Atom{
		{Name: "N", ID: 1, MolName: "GLY", MolID: 1, Chain: "A"},
		{Name: "O", ID: 2, MolName: "GLY", MolID: 1, Chain: "A"},
		{Name: "N", ID: 3, MolName: "GLY", MolID: 1, InsCode: 'A', Chain: "A"},
		{Name: "N", ID: 4, MolName: "ALA", MolID: 1, Chain: "B"},
		{Name: "O", ID: 5, MolName: "HOH", MolID: 7},
	}
	top, err := NewTopology(ats)
	if err != nil {
		Te.Fatal(err)
	}
	if top.NRes() != 4 {
		Te.Fatalf("Expected 4 residues, got %d", top.NRes())
	}
	ids := []string{"GLY A1", "GLY A1A", "ALA B1", "HOH 7"}
	for i, id := range ids {
		if got := top.Residue(i).ID(); got != id {
			Te.Errorf("Residue %d: got id %q, expected %q", i, got, id)
		}
	}
	if top.Atom(1).Res != 0 || top.Atom(4).Res != 3 || top.Atom(4).Index != 4 {
		Te.Errorf("Wrong back-references: %+v %+v", top.Atom(1), top.Atom(4))
	}
	if len(top.Residue(0).Atoms) != 2 {
		Te.Errorf("Wrong atoms in first residue: %v", top.Residue(0).Atoms)
	}
	if id := top.AtomID(4); id != "HOH 7.O" {
		Te.Errorf("Wrong atom id %q", id)
	}
}

func TestSplitResidue(Te *testing.T) {
	ats := []*Atom{
		{Name: "C1", ID: 1, MolName: "NAG", MolID: 301, Chain: "A", Het: true},
		{Name: "N", ID: 2, MolName: "SER", MolID: 12, Chain: "A"},
		{Name: "O", ID: 3, MolName: "SER", MolID: 12, Chain: "A"},
		{Name: "O5", ID: 4, MolName: "NAG", MolID: 301, Chain: "A", Het: true},
		{Name: "N", ID: 5, MolName: "SER", MolID: 12, Chain: "B"},
	}
	top, err := NewTopology(ats)
	if err != nil {
		Te.Fatal(err)
	}
	if top.NRes() != 3 {
		Te.Fatalf("Expected 3 residues, got %d", top.NRes())
	}
	if top.Atom(0).Res != top.Atom(3).Res || top.Atom(3).Res != 0 {
		Te.Errorf("The records of NAG A301 should be one residue: %d %d", top.Atom(0).Res, top.Atom(3).Res)
	}
	if a := top.Residue(0).Atoms; len(a) != 2 || a[0] != 0 || a[1] != 3 {
		Te.Errorf("Wrong atoms in NAG A301: %v", a)
	}
	if top.Atom(4).Res != 2 || top.Residue(2).ID() != "SER B12" {
		Te.Errorf("SER B12 is not SER A12: %+v", top.Residue(top.Atom(4).Res))
	}
}

func TestAtomCopy(Te *testing.T) {
	a := &Atom{Name: "OG", ID: 10, MolName: "SER"}
	b := a.Copy()
	b.Name = "N"
	if a.Name != "OG" {
		Te.Errorf("Copy shares data with the original")
	}
}

func TestNewMolecule(Te *testing.T) {
	top, _ := NewTopology([]*Atom{{Name: "N", MolName: "GLY", MolID: 1}, {Name: "O", MolName: "GLY", MolID: 1}})
	good := v3.Zeros(2)
	bad := v3.Zeros(3)
	if _, err := NewMolecule(top, []*v3.Matrix{good}, nil); err != nil {
		Te.Error(err)
	}
	if _, err := NewMolecule(top, []*v3.Matrix{good, bad}, nil); err == nil {
		Te.Error("Inconsistent coordinates should be rejected")
	}
	if _, err := NewMolecule(top, nil, nil); err == nil {
		Te.Error("A molecule without coordinates should be rejected")
	}
}
