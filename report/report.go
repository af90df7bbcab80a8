/*
 * report.go, part of polarcontacts.
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
Package report writes the results of a polar contact run as text tables,
JSON, summary statistics or a bar chart of the residue pair energies.
All the outputs depend only on the result, so equal results give
byte-identical reports.
*/
package report

import (
	"encoding/json"
	"fmt"
	"io"

	chem "github.com/rmera/polarcontacts"
	"github.com/rmera/polarcontacts/histo"
	"github.com/rmera/polarcontacts/polar"
)

// Setting is a name/value pair printed in the settings block.
type Setting struct {
	Name  string
	Value any
}

// Settings writes the settings block, in the order given.
func Settings(w io.Writer, s []Setting) error {
	if _, err := fmt.Fprint(w, "Settings\n--------\n"); err != nil {
		return err
	}
	for _, v := range s {
		if _, err := fmt.Fprintf(w, "%-10s: %v\n", v.Name, v.Value); err != nil {
			return err
		}
	}
	return nil
}

// Contacts writes the polar contacts table.
func Contacts(w io.Writer, mol *chem.Molecule, res *polar.Result) error {
	if _, err := fmt.Fprintf(w, "\nPolar contacts\n%-13s %-13s %-6s \n", "Atom1", "Atom2", "Dist (A)"); err != nil {
		return err
	}
	for _, c := range res.Contacts {
		if _, err := fmt.Fprintf(w, "%-14s %-14s %6.3f \n", mol.AtomID(c.At1), mol.AtomID(c.At2), c.Dist); err != nil {
			return err
		}
	}
	return nil
}

// Residues writes the residue interactions table: both residues, electrostatic,
// van der Waals and total energies, in kcal/mol.
func Residues(w io.Writer, mol *chem.Molecule, res *polar.Result) error {
	if _, err := fmt.Fprint(w, "\nResidue interactions\n"); err != nil {
		return err
	}
	for _, p := range res.Pairs {
		_, err := fmt.Fprintf(w, "%-10s %-10s % 8.4f % 8.4f % 8.4f\n", mol.Residue(p.Res1).ID(), mol.Residue(p.Res2).ID(), p.Elec, p.VdW, p.Total())
		if err != nil {
			return err
		}
	}
	return nil
}

// Text writes both tables.
func Text(w io.Writer, mol *chem.Molecule, res *polar.Result) error {
	if err := Contacts(w, mol, res); err != nil {
		return err
	}
	return Residues(w, mol, res)
}

type jsonContact struct {
	Atom1 string  `json:"atom1"`
	Atom2 string  `json:"atom2"`
	Dist  float64 `json:"dist"`
}

type jsonPair struct {
	Res1    string  `json:"res1"`
	Res2    string  `json:"res2"`
	Elec    float64 `json:"elec"`
	VdW     float64 `json:"vdw"`
	Total   float64 `json:"total"`
	Closest float64 `json:"closest"`
	Overlap float64 `json:"overlap"`
}

type jsonReport struct {
	Models   int           `json:"models"`
	Contacts []jsonContact `json:"contacts"`
	Pairs    []jsonPair    `json:"residue_interactions"`
	Clamped  int           `json:"clamped,omitempty"`
	Skipped  []string      `json:"skipped,omitempty"`

	Distances *histo.Data `json:"distances,omitempty"` //normalized, bins of HistoWidth
}

// JSON writes the result as an indented JSON document.
func JSON(w io.Writer, mol *chem.Molecule, res *polar.Result) error {
	out := jsonReport{
		Models:   res.Models,
		Contacts: make([]jsonContact, 0, len(res.Contacts)),
		Pairs:    make([]jsonPair, 0, len(res.Pairs)),
		Clamped:  res.Clamped,
		Skipped:  res.Skipped,
	}
	if d := Summarize(res).Distances; d != nil {
		d.Normalize()
		out.Distances = d
	}
	for _, c := range res.Contacts {
		out.Contacts = append(out.Contacts, jsonContact{mol.AtomID(c.At1), mol.AtomID(c.At2), c.Dist})
	}
	for _, p := range res.Pairs {
		out.Pairs = append(out.Pairs, jsonPair{
			Res1:    mol.Residue(p.Res1).ID(),
			Res2:    mol.Residue(p.Res2).ID(),
			Elec:    p.Elec,
			VdW:     p.VdW,
			Total:   p.Total(),
			Closest: p.Clash.Dist,
			Overlap: p.Clash.Over,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
