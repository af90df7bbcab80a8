/*
 * pdbx.go, part of polarcontacts.
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
	"fmt"
	"io"
	"strconv"
	"strings"
)

//PDBx/mmCIF reading. Only the _atom_site loop is read.

//PDBxFileRead reads the PDBx/mmCIF file name, which can be gzip- or zstd-compressed.
//All errors are of type *LoadError.
func PDBxFileRead(name string) (*Molecule, error) {
	return fileRead(name, "PDBxFileRead", PDBxRead)
}

//PDBxRead reads a PDBx/mmCIF structure from r. Models, alternate locations and
//inconsistent models are handled as in PDBRead. The author (auth_) residue names, numbers,
//chains and atom names are used when present, the label_ ones otherwise.
func PDBxRead(r io.Reader) (*Molecule, error) {
	rc, err := anyReader(r)
	if err != nil {
		return nil, &LoadError{Err: err, deco: []string{"PDBxRead"}}
	}
	defer rc.Close()
	mol, err := pdbxBufIORead(bufio.NewReader(rc))
	return mol, errDecorate(err, "PDBxRead")
}

//pdbxmap maps the lower-case _atom_site item names to their column
//in the data rows.
type pdbxmap map[string]int

//get returns the column for the first of the keys present, or -1.
func (m pdbxmap) get(keys ...string) int {
	for _, k := range keys {
		if i, ok := m[k]; ok {
			return i
		}
	}
	return -1
}

//pdbxRow is a data row of the _atom_site loop.
type pdbxRow struct {
	fields []string
	m      pdbxmap
}

//value returns the content of the first of the given items present in the row, or
//"" if none is, or if the value is missing ("." or "?").
func (r pdbxRow) value(keys ...string) string {
	i := r.m.get(keys...)
	if i < 0 || i >= len(r.fields) {
		return ""
	}
	v := r.fields[i]
	if v == "." || v == "?" {
		return ""
	}
	return v
}

func (r pdbxRow) float(def float64, keys ...string) (float64, error) {
	v := r.value(keys...)
	if v == "" {
		return def, nil
	}
	return strconv.ParseFloat(v, 64)
}

//cifFields splits a CIF data line in fields. Values can be quoted with
//single or double quotes, a quote only closes a value if followed by a blank.
func cifFields(line string) []string {
	var ret []string
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i >= len(line) {
			break
		}
		if q := line[i]; q == '\'' || q == '"' {
			j := i + 1
			for j < len(line) && !(line[j] == q && (j+1 == len(line) || line[j+1] == ' ' || line[j+1] == '\t')) {
				j++
			}
			ret = append(ret, line[i+1:min(j, len(line))])
			i = j + 1
			continue
		}
		j := i
		for j < len(line) && line[j] != ' ' && line[j] != '\t' {
			j++
		}
		ret = append(ret, line[i:j])
		i = j
	}
	return ret
}

func pdbxBufIORead(pdb *bufio.Reader) (*Molecule, error) {
	var atoms []*Atom
	coords := [][]float64{nil}
	bfactors := [][]float64{nil}
	seen := make(map[string]bool)
	m := make(pdbxmap)
	var inloop, reading, done bool
	model := ""
	lineno := 0
	for !done {
		line, err := pdb.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &LoadError{Line: lineno + 1, Err: err, deco: []string{"pdbxBufIORead"}}
		}
		if line == "" && err == io.EOF {
			break
		}
		lineno++
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
		case strings.HasPrefix(line, "#"), strings.HasPrefix(lower, "loop_"), strings.HasPrefix(lower, "data_"):
			//the _atom_site loop ends at the first of these.
			done = reading
			inloop = strings.HasPrefix(lower, "loop_")
			if !done {
				m = make(pdbxmap)
			}
		case strings.HasPrefix(line, "_"):
			done = reading
			if inloop && strings.HasPrefix(lower, "_atom_site.") {
				m[strings.Fields(lower)[0]] = len(m)
			}
		case inloop && len(m) > 0:
			reading = true
			row := pdbxRow{fields: cifFields(line), m: m}
			if len(row.fields) < len(m) {
				return nil, &LoadError{Line: lineno, Err: fmt.Errorf("expected %d fields, got %d", len(m), len(row.fields)), deco: []string{"pdbxBufIORead"}}
			}
			if mod := row.value("_atom_site.pdbx_pdb_model_num"); mod != model {
				if model != "" && len(coords[len(coords)-1]) > 0 {
					coords = append(coords, nil)
					bfactors = append(bfactors, nil)
					seen = make(map[string]bool)
				}
				model = mod
			}
			at, c, bf, perr := pdbxAtom(row)
			if perr != nil {
				return nil, &LoadError{Line: lineno, Err: perr, deco: []string{"pdbxBufIORead"}}
			}
			if row.value("_atom_site.label_alt_id") != "" {
				key := fmt.Sprintf("%s %s %s %d %c", at.Name, at.MolName, at.Chain, at.MolID, at.InsCode)
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			frame := len(coords) - 1
			if frame == 0 {
				atoms = append(atoms, at)
			}
			coords[frame] = append(coords[frame], c[:]...)
			bfactors[frame] = append(bfactors[frame], bf)
		}
		if err == io.EOF {
			break
		}
	}
	return buildMolecule(atoms, coords, bfactors)
}

//pdbxAtom returns the atom, coordinates and b-factor in row.
func pdbxAtom(row pdbxRow) (*Atom, [3]float64, float64, error) {
	var c [3]float64
	var err error
	at := new(Atom)
	at.Het = row.value("_atom_site.group_pdb") == "HETATM"
	at.Name = row.value("_atom_site.auth_atom_id", "_atom_site.label_atom_id")
	at.MolName = row.value("_atom_site.auth_comp_id", "_atom_site.label_comp_id")
	at.Chain = row.value("_atom_site.auth_asym_id", "_atom_site.label_asym_id")
	if ins := row.value("_atom_site.pdbx_pdb_ins_code"); ins != "" {
		at.InsCode = ins[0]
	} else {
		at.InsCode = ' '
	}
	if at.ID, err = strconv.Atoi(row.value("_atom_site.id")); err != nil {
		return nil, c, 0, fmt.Errorf("Couldn't read atom serial: %w", err)
	}
	if at.MolID, err = strconv.Atoi(row.value("_atom_site.auth_seq_id", "_atom_site.label_seq_id")); err != nil {
		return nil, c, 0, fmt.Errorf("Couldn't read residue number: %w", err)
	}
	for i, k := range []string{"_atom_site.cartn_x", "_atom_site.cartn_y", "_atom_site.cartn_z"} {
		if c[i], err = strconv.ParseFloat(row.value(k), 64); err != nil {
			return nil, c, 0, fmt.Errorf("Couldn't read coordinate %d: %w", i, err)
		}
	}
	if at.Occupancy, err = row.float(1, "_atom_site.occupancy"); err != nil {
		return nil, c, 0, fmt.Errorf("Couldn't read occupancy: %w", err)
	}
	bf, err := row.float(0, "_atom_site.b_iso_or_equiv")
	if err != nil {
		return nil, c, 0, fmt.Errorf("Couldn't read b-factor: %w", err)
	}
	at.Symbol = row.value("_atom_site.type_symbol")
	if at.Symbol == "" {
		at.Symbol, _ = symbolFromName(at.Name)
	}
	return at, c, bf, nil
}
