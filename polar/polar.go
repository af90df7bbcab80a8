/*
 * polar.go, part of polarcontacts.
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
Package polar finds the polar contacts in a structure and the interaction
energies of the residue pairs involved, putting together the contacts, nbsearch,
top and energy packages.
*/
package polar

import (
	"fmt"
	"log"

	chem "github.com/rmera/polarcontacts"
	"github.com/rmera/polarcontacts/clash"
	"github.com/rmera/polarcontacts/contacts"
	"github.com/rmera/polarcontacts/energy"
	"github.com/rmera/polarcontacts/nbsearch"
	"github.com/rmera/polarcontacts/top"
)

// Options for a run.
type Options struct {
	Cutoff       float64 //contact distance cutoff, A
	BackboneOnly bool
	Sets         contacts.Sets
	Filter       contacts.Options
	Energy       energy.Model
	Missing      top.MissingPolicy
	Backend      nbsearch.Backend
	Workers      int
}

// DefaultOptions returns the options that reproduce the classical behavior:
// a 3.5 A cutoff, a 2.0 A covalent threshold and a dielectric of 1.
func DefaultOptions() Options {
	return Options{
		Cutoff:  3.5,
		Sets:    contacts.DefaultSets(),
		Filter:  contacts.DefaultOptions(),
		Energy:  energy.DefaultModel(),
		Missing: top.MissingFail,
		Backend: nbsearch.Grid,
		Workers: 1,
	}
}

// PairEnergy is the interaction energy of a residue pair, and
// their closest approach.
type PairEnergy struct {
	contacts.ResPair
	energy.Result
	Clash clash.Overlap
}

// Result contains everything found in a run.
type Result struct {
	Contacts []contacts.Contact //sorted by serial of the first atom
	Pairs    []PairEnergy       //sorted by sequence number of the first residue
	Models   int                //number of models in the input; only the first is used
	Clamped  int                //atom pairs taken at the distance floor, over all residue pairs
	Skipped  []string           //ids of the atoms left out of the energy sums
}

// Run finds the polar contacts in the first model of mol, and the
// energies of the residue pairs in contact, using the parameters in ff.
func Run(mol *chem.Molecule, ff *top.FF, opts Options) (*Result, error) {
	if mol == nil || ff == nil {
		return nil, fmt.Errorf("polar: nil molecule or force field")
	}
	if err := opts.Energy.Validate(); err != nil {
		return nil, err
	}
	if !(opts.Filter.Covalent >= 0 && opts.Filter.Covalent < opts.Cutoff) {
		return nil, fmt.Errorf("polar: the covalent threshold (%v) must be non-negative and lower than the cutoff (%v)", opts.Filter.Covalent, opts.Cutoff)
	}
	ret := &Result{Models: mol.LenFrames()}
	if ret.Models > 1 {
		log.Printf("Warning: %d models found, using only the first", ret.Models)
	}
	coords := mol.Coords[0]
	idx := contacts.Select(mol, opts.Sets, opts.BackboneOnly)
	pairs, err := nbsearch.Search(coords, idx, opts.Cutoff, nbsearch.WithBackend(opts.Backend), nbsearch.Workers(opts.Workers))
	if err != nil {
		return nil, fmt.Errorf("polar: %w", err)
	}
	ret.Contacts = contacts.Filter(mol, pairs, idx, opts.Sets, opts.Filter)
	contacts.SortContacts(mol, ret.Contacts)
	rps := contacts.ResiduePairs(mol, ret.Contacts)
	contacts.SortResPairs(mol, rps)

	//each residue is parameterized once, even if it is in several pairs.
	views := make(map[int]*top.ResidueView)
	view := func(r int) (*top.ResidueView, error) {
		if v, ok := views[r]; ok {
			return v, nil
		}
		v, err := ff.ResidueView(mol.Topology, coords, r, opts.Missing)
		if err != nil {
			return nil, err
		}
		for _, s := range v.Skipped {
			ret.Skipped = append(ret.Skipped, mol.AtomID(s))
		}
		views[r] = v
		return v, nil
	}
	ret.Pairs = make([]PairEnergy, 0, len(rps))
	for _, rp := range rps {
		a, err := view(rp.Res1)
		if err != nil {
			return nil, fmt.Errorf("polar: %w", err)
		}
		b, err := view(rp.Res2)
		if err != nil {
			return nil, fmt.Errorf("polar: %w", err)
		}
		e := opts.Energy.Interaction(a, b)
		if e.Clamped > 0 {
			log.Printf("Warning: %d atom pairs of %s and %s closer than %.2f A", e.Clamped, mol.Residue(rp.Res1).ID(), mol.Residue(rp.Res2).ID(), opts.Energy.MinDist)
		}
		ret.Clamped += e.Clamped
		ret.Pairs = append(ret.Pairs, PairEnergy{ResPair: rp, Result: e, Clash: clash.Residues(a, b)})
	}
	return ret, nil
}
