package top

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/polarcontacts"
	v3 "github.com/rmera/polarcontacts/v3"
)

const vdwSet = `# type eps sig mass fsrf
N   0.1700  1.8240  14.01  0.79
O   0.2100  1.6612  16.00  0.85
CT  0.1094  1.9080
`

const resLib = `# aa library
SER  N    N    -0.4157
ser  og   O    -0.6546 # lower case is fine
GLY  N    N    -0.4157
GLY  O    O    -0.5679
GLY  CA   XX    0.0
`

func testFF(Te *testing.T) *FF {
	F := NewFF()
	if err := F.FillTypes(bufio.NewReader(strings.NewReader(vdwSet))); err != nil {
		Te.Fatal(err)
	}
	if err := F.FillResLib(bufio.NewReader(strings.NewReader(resLib))); err != nil {
		Te.Fatal(err)
	}
	return F
}

func TestFill(Te *testing.T) {
	F := testFF(Te)
	if F.NTypes() != 3 || F.NResAtoms() != 5 {
		Te.Errorf("Loaded %d types and %d residue atoms, expected 3 and 5", F.NTypes(), F.NResAtoms())
	}
	n, ok := F.Type("n")
	if !ok || n.Mass != 14.01 || n.Fsrf != 0.79 {
		Te.Errorf("Wrong type N: %+v", n)
	}
	ct, _ := F.Type("CT")
	if ct.Mass != 0 {
		Te.Errorf("Optional mass should default to 0, got %v", ct.Mass)
	}
}

func TestFillErrors(Te *testing.T) {
	F := NewFF()
	if err := F.FillTypes(bufio.NewReader(strings.NewReader("N 0.17\n"))); err == nil {
		Te.Error("Short vdW line should fail")
	}
	if err := F.FillResLib(bufio.NewReader(strings.NewReader("SER N N\n"))); err == nil {
		Te.Error("Short residue library line should fail")
	}
	err := F.FillResLib(bufio.NewReader(strings.NewReader("# comment\n\nSER N N abc\n")))
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		Te.Errorf("Expected an error on line 3, got %v", err)
	}
}

func TestLookup(Te *testing.T) {
	F := testFF(Te)
	p, err := F.Lookup("SER", "OG")
	if err != nil {
		Te.Fatal(err)
	}
	if p.Type != "O" || p.Charge != -0.6546 || p.Radius != 1.6612 || p.WellDepth != 0.21 {
		Te.Errorf("Wrong parameters %+v", p)
	}
	var perr *ParameterNotFoundError
	_, err = F.Lookup("TRP", "NE1")
	if !errors.As(err, &perr) || perr.ResName != "TRP" || perr.AtomName != "NE1" || perr.AtomType != "" {
		Te.Errorf("Expected a residue library failure, got %v", err)
	}
	_, err = F.Lookup("GLY", "CA")
	if !errors.As(err, &perr) || perr.AtomType != "XX" {
		Te.Errorf("Expected a vdW set failure, got %v", err)
	}
}

func TestMissingPolicy(Te *testing.T) {
	for s, want := range map[string]MissingPolicy{"fail": MissingFail, "SKIP": MissingSkip, "": MissingFail} {
		got, err := ParseMissingPolicy(s)
		if err != nil || got != want {
			Te.Errorf("ParseMissingPolicy(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseMissingPolicy("ignore"); err == nil {
		Te.Error("Unknown policy should fail")
	}
}

func TestResidueView(Te *testing.T) {
	F := testFF(Te)
	top, err := chem.NewTopology([]*chem.Atom{
		{Name: "N", ID: 1, MolName: "GLY", MolID: 1, Chain: "A"},
		{Name: "CA", ID: 2, MolName: "GLY", MolID: 1, Chain: "A"},
		{Name: "O", ID: 3, MolName: "GLY", MolID: 1, Chain: "A"},
	})
	if err != nil {
		Te.Fatal(err)
	}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 2, 0, 0})
	if _, err := F.ResidueView(top, coords, 0, MissingFail); err == nil {
		Te.Error("MissingFail should return the lookup error")
	} else {
		var perr *ParameterNotFoundError
		if !errors.As(err, &perr) {
			Te.Errorf("The lookup error should be recognisable, got %v", err)
		}
	}
	rv, err := F.ResidueView(top, coords, 0, MissingSkip)
	if err != nil {
		Te.Fatal(err)
	}
	if len(rv.Atoms) != 2 || len(rv.Skipped) != 1 || rv.Skipped[0] != 1 {
		Te.Errorf("Wrong view: %d atoms, skipped %v", len(rv.Atoms), rv.Skipped)
	}
	if rv.Atoms[1].Coord[0] != 2 || rv.Atoms[1].Charge != -0.5679 {
		Te.Errorf("Wrong atom view %+v", rv.Atoms[1])
	}
}

func TestFFFromFiles(Te *testing.T) {
	dir := Te.TempDir()
	vdw := filepath.Join(dir, "vdw.prm")
	lib := filepath.Join(dir, "aa.lib")
	os.WriteFile(vdw, []byte(vdwSet), 0o644)
	os.WriteFile(lib, []byte(resLib), 0o644)
	F, err := FFFromFiles(vdw, lib)
	if err != nil {
		Te.Fatal(err)
	}
	if F.NTypes() != 3 {
		Te.Errorf("Loaded %d types", F.NTypes())
	}
	if _, err := FFFromFiles(vdw, filepath.Join(dir, "nope.lib")); err == nil {
		Te.Error("Missing library should fail")
	}
	if _, err := FFFromFiles("", lib); err == nil {
		Te.Error("Empty file name should fail")
	}
}
