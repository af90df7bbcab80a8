/*
 * files.go, part of polarcontacts.
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/polarcontacts/v3"
)

//PDB reading family

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

//*zstd.Decoder doesn't implement io.ReadCloser, as
//its Close method has no return value.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close closes the decoder. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//nopCloser wraps a plain reader.
type nopCloser struct {
	io.Reader
}

func (n nopCloser) Close() error { return nil }

//anyReader returns a reader that transparently decompresses
//gzip and zstd data. The format is detected from the first bytes of the stream,
//not from the file extension.
func anyReader(r io.Reader) (io.ReadCloser, error) {
	b := bufio.NewReader(r)
	head, err := b.Peek(4)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}
	switch {
	case hasMagic(head, zstdMagic):
		d, err := zstd.NewReader(b)
		if err != nil {
			return nil, err
		}
		return stdql{d.Close, d}, nil
	case hasMagic(head, gzipMagic):
		return gzip.NewReader(b)
	default:
		return nopCloser{b}, nil
	}
}

func hasMagic(head, magic []byte) bool {
	if len(head) < len(magic) {
		return false
	}
	for i, v := range magic {
		if head[i] != v {
			return false
		}
	}
	return true
}

//ReadFile reads the structure file name, which can be gzip- or zstd-compressed.
//Files named *.cif or *.mmcif, before any .gz, .zst or .zstd suffix, are read as PDBx/mmCIF,
//everything else as PDB.
func ReadFile(name string) (*Molecule, error) {
	base := strings.ToLower(name)
	for _, ext := range []string{".gz", ".zst", ".zstd"} {
		base = strings.TrimSuffix(base, ext)
	}
	if strings.HasSuffix(base, ".cif") || strings.HasSuffix(base, ".mmcif") {
		return PDBxFileRead(name)
	}
	return PDBFileRead(name)
}

//fileRead opens name and reads it with read, setting the file name
//in the returned *LoadError, if any.
func fileRead(name, caller string, read func(io.Reader) (*Molecule, error)) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &LoadError{FileName: name, Err: err, deco: []string{caller}}
	}
	defer f.Close()
	mol, err := read(f)
	if err != nil {
		var lerr *LoadError
		if errors.As(err, &lerr) {
			lerr.FileName = name
		}
		return nil, errDecorate(err, caller)
	}
	return mol, nil
}

//PDBFileRead reads the PDB file pdbname, which can be gzip- or zstd-compressed,
//and returns a molecule with all the models in the file as frames.
//All errors are of type *LoadError.
func PDBFileRead(pdbname string) (*Molecule, error) {
	return fileRead(pdbname, "PDBFileRead", PDBRead)
}

//PDBRead reads a PDB-formatted structure from pdb. The first model defines the topology,
//the following ones only contribute coordinates and b-factors. Models with a number of
//atoms different from the first one are dropped, with a warning.
//For atoms with alternate locations, only the first location is kept.
//Reading stops at the first END record.
func PDBRead(pdb io.Reader) (*Molecule, error) {
	r, err := anyReader(pdb)
	if err != nil {
		return nil, &LoadError{Err: err, deco: []string{"PDBRead"}}
	}
	defer r.Close()
	mol, err := pdbBufIORead(bufio.NewReader(r))
	return mol, errDecorate(err, "PDBRead")
}

func pdbBufIORead(pdb *bufio.Reader) (*Molecule, error) {
	var atoms []*Atom
	coords := [][]float64{nil}
	bfactors := [][]float64{nil}
	seen := make(map[string]bool) //alternate locations already read in this model
	lineno := 0
	for {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &LoadError{Line: lineno + 1, Err: err, deco: []string{"pdbBufIORead"}}
		}
		if line == "" && err == io.EOF {
			break
		}
		lineno++
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM") {
			frame := len(coords) - 1
			at, c, bf, perr := readPDBLine(line)
			if perr != nil {
				return nil, &LoadError{Line: lineno, Err: perr, deco: []string{"pdbBufIORead"}}
			}
			if alt := line[16]; alt != ' ' {
				key := line[12:16] + line[17:27]
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			if frame == 0 {
				atoms = append(atoms, at)
			}
			coords[frame] = append(coords[frame], c[:]...)
			bfactors[frame] = append(bfactors[frame], bf)
		} else if strings.HasPrefix(line, "MODEL") {
			if len(coords[len(coords)-1]) > 0 {
				coords = append(coords, nil)
				bfactors = append(bfactors, nil)
			}
			seen = make(map[string]bool)
		} else if strings.TrimSpace(line) == "END" {
			break
		}
		if err == io.EOF {
			break
		}
	}
	return buildMolecule(atoms, coords, bfactors)
}

//buildMolecule assembles a molecule from the atoms of the first model and the flat
//coordinates and b-factors of every model. Models that don't have one set of coordinates
//per atom are dropped with a warning. The last model can be empty.
func buildMolecule(atoms []*Atom, coords, bfactors [][]float64) (*Molecule, error) {
	if len(atoms) == 0 {
		return nil, &LoadError{Err: fmt.Errorf("no atoms found"), deco: []string{"buildMolecule"}}
	}
	natoms := len(atoms)
	mcoords := make([]*v3.Matrix, 0, len(coords))
	mbfactors := make([][]float64, 0, len(coords))
	for i, c := range coords {
		if len(c) != 3*natoms {
			if len(c) > 0 || i < len(coords)-1 {
				log.Printf("Model %d has %d atoms, expected %d. Model will be ignored", i+1, len(c)/3, natoms)
			}
			continue
		}
		m, err := v3.NewMatrix(c)
		if err != nil {
			return nil, &LoadError{Err: err, deco: []string{"buildMolecule"}}
		}
		mcoords = append(mcoords, m)
		mbfactors = append(mbfactors, bfactors[i])
	}
	top, err := NewTopology(atoms)
	if err != nil {
		return nil, &LoadError{Err: err, deco: []string{"buildMolecule"}}
	}
	mol, err := NewMolecule(top, mcoords, mbfactors)
	if err != nil {
		return nil, &LoadError{Err: err, deco: []string{"buildMolecule"}}
	}
	return mol, nil
}

//readPDBLine parses a valid ATOM or HETATM line of a PDB file, returns an Atom
//object with the info except for the coordinates and b-factors, which are returned
//separately as an array of 3 float64 and a float64, respectively.
//Occupancy, b-factor and element are optional. A missing occupancy is taken as 1.
func readPDBLine(line string) (*Atom, [3]float64, float64, error) {
	var coords [3]float64
	var bfactor float64
	if len(line) < 54 {
		return nil, coords, 0, fmt.Errorf("ATOM/HETATM line too short (%d characters)", len(line))
	}
	err := make([]error, 6)
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.Name = strings.TrimSpace(line[12:16])
	atom.MolName = strings.TrimSpace(line[17:20])
	atom.Chain = strings.TrimSpace(line[21:22])
	atom.MolID, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	atom.InsCode = line[26]
	coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	atom.Occupancy = 1
	if f := optField(line, 54, 60); f != "" {
		atom.Occupancy, err[5] = strconv.ParseFloat(f, 64)
	}
	for _, e := range err {
		if e != nil {
			return nil, coords, 0, e
		}
	}
	if f := optField(line, 60, 66); f != "" {
		var berr error
		bfactor, berr = strconv.ParseFloat(f, 64)
		if berr != nil {
			return nil, coords, 0, berr
		}
	}
	atom.Symbol = optField(line, 76, 78)
	if atom.Symbol == "" {
		//No error checking here, just fills symbol with the empty string the function returns
		atom.Symbol, _ = symbolFromName(atom.Name)
	}
	return atom, coords, bfactor, nil
}

//optField returns the trimmed content of the columns [from,to) of line,
//or as much of it as the line has.
func optField(line string, from, to int) string {
	if len(line) <= from {
		return ""
	}
	if len(line) < to {
		to = len(line)
	}
	return strings.TrimSpace(line[from:to])
}

//End PDB reading family
