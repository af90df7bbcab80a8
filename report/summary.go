/*
 * summary.go, part of polarcontacts.
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

package report

import (
	"fmt"
	"io"

	chem "github.com/rmera/polarcontacts"
	"github.com/rmera/polarcontacts/histo"
	"github.com/rmera/polarcontacts/polar"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats are summary statistics for a run.
type Stats struct {
	NContacts int
	NPairs    int
	DistMean  float64
	DistStd   float64 //0 with less than 2 contacts
	DistMin   float64
	DistMax   float64
	ElecSum   float64
	VdWSum    float64
	Strongest int         //index in Pairs of the pair with the lowest total energy, -1 if none
	Overlap   int         //index in Pairs of the pair with the largest radii overlap, -1 if none
	Distances *histo.Data //contact distances in bins of HistoWidth, nil if no contacts
}

// HistoWidth is the bin width of the contact distance histogram, in A.
const HistoWidth = 0.25

// Summarize returns the summary statistics for res.
func Summarize(res *polar.Result) Stats {
	s := Stats{NContacts: len(res.Contacts), NPairs: len(res.Pairs), Strongest: -1, Overlap: -1}
	if s.NContacts > 0 {
		d := make([]float64, s.NContacts)
		for i, c := range res.Contacts {
			d[i] = c.Dist
		}
		s.DistMean = stat.Mean(d, nil)
		if s.NContacts > 1 {
			s.DistStd = stat.StdDev(d, nil)
		}
		s.DistMin = floats.Min(d)
		s.DistMax = floats.Max(d)
		s.Distances = histo.NewData(histo.Uniform(s.DistMin, s.DistMax, HistoWidth), d)
	}
	if s.NPairs > 0 {
		elec := make([]float64, s.NPairs)
		vdw := make([]float64, s.NPairs)
		tot := make([]float64, s.NPairs)
		for i, p := range res.Pairs {
			elec[i], vdw[i], tot[i] = p.Elec, p.VdW, p.Total()
		}
		s.ElecSum = floats.Sum(elec)
		s.VdWSum = floats.Sum(vdw)
		s.Strongest = floats.MinIdx(tot)
		for i, p := range res.Pairs {
			if p.Clash.OverAtoms[0] >= 0 && (s.Overlap < 0 || p.Clash.Over > res.Pairs[s.Overlap].Clash.Over) {
				s.Overlap = i
			}
		}
	}
	return s
}

// Summary writes the summary statistics block.
func Summary(w io.Writer, mol *chem.Molecule, res *polar.Result) error {
	s := Summarize(res)
	_, err := fmt.Fprintf(w, "\nSummary\n%-22s %d\n%-22s %d\n", "Polar contacts:", s.NContacts, "Residue pairs:", s.NPairs)
	if err != nil {
		return err
	}
	if s.NContacts > 0 {
		_, err = fmt.Fprintf(w, "%-22s %6.3f +/- %6.3f (%6.3f - %6.3f)\n", "Distance (A):", s.DistMean, s.DistStd, s.DistMin, s.DistMax)
		if err != nil {
			return err
		}
	}
	if s.Strongest >= 0 {
		p := res.Pairs[s.Strongest]
		_, err = fmt.Fprintf(w, "%-22s % 10.4f\n%-22s % 10.4f\n%-22s % 10.4f\n%-22s %s %s (% 8.4f)\n",
			"Electrostatic sum:", s.ElecSum, "Van der Waals sum:", s.VdWSum, "Total sum:", s.ElecSum+s.VdWSum,
			"Strongest pair:", mol.Residue(p.Res1).ID(), mol.Residue(p.Res2).ID(), p.Total())
		if err != nil {
			return err
		}
	}
	if s.Overlap >= 0 {
		c := res.Pairs[s.Overlap].Clash
		_, err = fmt.Fprintf(w, "%-22s %s %s (% 6.3f)\n", "Largest radii overlap:", mol.AtomID(c.OverAtoms[0]), mol.AtomID(c.OverAtoms[1]), c.Over)
		if err != nil {
			return err
		}
	}
	if s.Distances != nil {
		if _, err = fmt.Fprint(w, "Contact distances (A):\n"); err != nil {
			return err
		}
		div := s.Distances.Dividers()
		for i, n := range s.Distances.View() {
			if _, err = fmt.Fprintf(w, "  %4.2f-%4.2f %5.0f\n", div[i], div[i+1], n); err != nil {
				return err
			}
		}
	}
	return nil
}
