/*
 * read.go, part of polarcontacts.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type StringReader interface {
	ReadString(byte) (string, error)
}

//The high-level functions

// FFFromFiles returns a force field with the atom types in the van der Waals set
// vdwname and the residue/atom entries in the residue library rlibname.
func FFFromFiles(vdwname, rlibname string) (*FF, error) {
	F := NewFF()
	err := fillFromFile(vdwname, F.FillTypes)
	if err != nil {
		return nil, err
	}
	err = fillFromFile(rlibname, F.FillResLib)
	if err != nil {
		return nil, err
	}
	return F, nil
}

func fillFromFile(name string, fill func(StringReader) error) error {
	if name == "" {
		return fmt.Errorf("No parameter file given")
	}
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("Can't open parameter file: %w", err)
	}
	defer f.Close()
	if err = fill(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("Can't read parameter file %s: %w", name, err)
	}
	return nil
}

// FillTypes will fill the receiver with the atom types read from the given StringReader, which must be
// in the van der Waals set format (TYPE EPSILON SIGMA [MASS [FSRF]]). A type
// appearing more than once keeps the last values read.
func (F *FF) FillTypes(r StringReader) error {
	return readLines(r, func(s string) error {
		at, err := AtomTypeFromString(s)
		if err != nil {
			return err
		}
		F.types[at.Name] = at
		return nil
	})
}

// FillResLib will fill the receiver with the residue library entries read from the given
// StringReader (RESNAME ATOMNAME TYPE CHARGE). An entry appearing more than once
// keeps the last values read.
func (F *FF) FillResLib(r StringReader) error {
	return readLines(r, func(s string) error {
		ra, err := ResAtomFromString(s)
		if err != nil {
			return err
		}
		F.resatoms[key(ra.ResName, ra.AtomName)] = ra
		return nil
	})
}

// readLines calls parse with each non-empty, comment-free line in r.
func readLines(r StringReader, parse func(string) error) error {
	lineno := 0
	for {
		s, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if s == "" && err == io.EOF {
			return nil
		}
		lineno++
		s = cleanString(s)
		if s != "" {
			if perr := parse(s); perr != nil {
				return fmt.Errorf("line %d: %w", lineno, perr)
			}
		}
		if err == io.EOF {
			return nil
		}
	}
}

// Returns a string without comments (sequences starting with '#'),
// trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	f := strings.Split(s, "#")[0]
	return strings.Trim(f, "\r\n\t ")
}

// AtomTypeFromString reads a van der Waals set line and returns the corresponding AtomType.
func AtomTypeFromString(s string) (*AtomType, error) {
	f := strings.Fields(cleanString(s))
	if len(f) < 3 {
		return nil, fmt.Errorf("Couldn't read atom type from string, expected at least 3 fields, got %d. String: %s", len(f), s)
	}
	nums, err := parsefloats(f[1:]...)
	if err != nil {
		return nil, fmt.Errorf("Couldn't read atom type from string. Error: %w String: %s", err, s)
	}
	ret := &AtomType{Name: canon(f[0]), WellDepth: nums[0], Radius: nums[1]}
	if len(nums) > 2 {
		ret.Mass = nums[2]
	}
	if len(nums) > 3 {
		ret.Fsrf = nums[3]
	}
	if ret.WellDepth < 0 || ret.Radius < 0 {
		return nil, fmt.Errorf("Negative well depth or radius for atom type %s", ret.Name)
	}
	return ret, nil
}

// ResAtomFromString reads a residue library line and returns the corresponding ResAtom.
func ResAtomFromString(s string) (*ResAtom, error) {
	f := strings.Fields(cleanString(s))
	if len(f) < 4 {
		return nil, fmt.Errorf("Couldn't read residue library entry from string, expected 4 fields, got %d. String: %s", len(f), s)
	}
	q, err := strconv.ParseFloat(f[3], 64)
	if err != nil {
		return nil, fmt.Errorf("Couldn't read charge from residue library entry. Error: %w String: %s", err, s)
	}
	return &ResAtom{ResName: canon(f[0]), AtomName: canon(f[1]), Type: canon(f[2]), Charge: q}, nil
}

func parsefloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		i, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}
