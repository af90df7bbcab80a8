/*
 * main.go, part of polarcontacts.
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

// Command polarcontacts finds the polar contacts between residues of a protein
// structure and estimates the electrostatic and van der Waals interaction of each
// pair of residues in contact.
//
// Usage:
//
//	polarcontacts [flags] structure.pdb|structure.cif
//
// Exit status is 2 for load errors, 1 for other errors and 0 otherwise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	chem "github.com/rmera/polarcontacts"
	"github.com/rmera/polarcontacts/config"
	"github.com/rmera/polarcontacts/polar"
	"github.com/rmera/polarcontacts/report"
	"github.com/rmera/polarcontacts/top"
)

const (
	exitOK   = 0
	exitRun  = 1
	exitLoad = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func flags(stderr io.Writer, c *config.Config) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("polarcontacts", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage:\n  polarcontacts [flags] structure.pdb\n\nFlags:")
		fs.PrintDefaults()
	}
	cfile := fs.String("config", "", "YAML (.yaml, .yml) or TOML (.toml) run file. Flags given explicitly override its values")
	fs.BoolVar(&c.BackOnly, "backonly", c.BackOnly, "Only consider backbone polar atoms")
	fs.BoolVar(&c.NoWaters, "nowats", c.NoWaters, "Exclude contacts involving water residues")
	fs.Float64Var(&c.Dielectric, "diel", c.Dielectric, "Relative dielectric constant. 0 uses the Mehler-Solmajer distance-dependent dielectric")
	fs.StringVar(&c.VdW, "vdw", c.VdW, "van der Waals parameter file (required)")
	fs.StringVar(&c.ResLib, "rlib", c.ResLib, "Residue library file (required)")
	fs.Float64Var(&c.Cutoff, "cutoff", c.Cutoff, "Contact distance cutoff, in A")
	fs.Float64Var(&c.Covalent, "covalent", c.Covalent, "Pairs closer than this, in A, are taken as bonded")
	fs.BoolVar(&c.ChainAware, "chainaware", c.ChainAware, "Only exclude sequence neighbors within the same chain")
	fs.StringVar(&c.Missing, "missing", c.Missing, "What to do with atoms without parameters: fail or skip")
	fs.StringVar(&c.Combine, "combine", c.Combine, "Lennard-Jones combination rule: amber or geometric")
	fs.Float64Var(&c.MinDist, "mindist", c.MinDist, "Distance floor for the energy sums, in A")
	fs.StringVar(&c.Search, "search", c.Search, "Neighbor search method: grid or kdtree")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Number of concurrent workers for the grid search")
	fs.BoolVar(&c.JSON, "json", c.JSON, "Write the results as JSON")
	fs.StringVar(&c.Plot, "plot", c.Plot, "Write a bar chart of the residue pair energies to this file")
	fs.BoolVar(&c.Summary, "summary", c.Summary, "Append summary statistics to the report")
	return fs, cfile
}

// override copies to c the values of the flags that were given
// in the command line.
func override(fs *flag.FlagSet, c, given *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backonly":
			c.BackOnly = given.BackOnly
		case "nowats":
			c.NoWaters = given.NoWaters
		case "diel":
			c.Dielectric = given.Dielectric
		case "vdw":
			c.VdW = given.VdW
		case "rlib":
			c.ResLib = given.ResLib
		case "cutoff":
			c.Cutoff = given.Cutoff
		case "covalent":
			c.Covalent = given.Covalent
		case "chainaware":
			c.ChainAware = given.ChainAware
		case "missing":
			c.Missing = given.Missing
		case "combine":
			c.Combine = given.Combine
		case "mindist":
			c.MinDist = given.MinDist
		case "search":
			c.Search = given.Search
		case "workers":
			c.Workers = given.Workers
		case "json":
			c.JSON = given.JSON
		case "plot":
			c.Plot = given.Plot
		case "summary":
			c.Summary = given.Summary
		}
	})
}

func settings(c *config.Config) []report.Setting {
	return []report.Setting{
		{Name: "pdb_path", Value: c.Structure},
		{Name: "vdw", Value: c.VdW},
		{Name: "rlib", Value: c.ResLib},
		{Name: "backonly", Value: c.BackOnly},
		{Name: "nowats", Value: c.NoWaters},
		{Name: "diel", Value: c.Dielectric},
		{Name: "cutoff", Value: c.Cutoff},
		{Name: "covalent", Value: c.Covalent},
		{Name: "chainaware", Value: c.ChainAware},
		{Name: "missing", Value: c.Missing},
		{Name: "combine", Value: c.Combine},
		{Name: "mindist", Value: c.MinDist},
		{Name: "search", Value: c.Search},
		{Name: "workers", Value: c.Workers},
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	log.SetFlags(0)
	log.SetOutput(stderr)
	given := config.Default()
	fs, cfile := flags(stderr, given)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitLoad
	}
	c := config.Default()
	if *cfile != "" {
		if err := c.LoadFile(*cfile); err != nil {
			log.Printf("#ERROR: loading run file: %v", err)
			return exitLoad
		}
	}
	override(fs, c, given)
	if fs.NArg() > 0 {
		c.Structure = fs.Arg(0)
	}
	if c.Structure == "" {
		log.Print("#ERROR: a structure file is required")
		fs.Usage()
		return exitLoad
	}
	if c.VdW == "" || c.ResLib == "" {
		log.Print("#ERROR: both -vdw and -rlib are required")
		fs.Usage()
		return exitLoad
	}
	opts, err := c.Options()
	if err != nil {
		log.Printf("#ERROR: %v", err)
		return exitRun
	}
	if !c.JSON {
		if err := report.Settings(stdout, settings(c)); err != nil {
			log.Printf("#ERROR: writing output: %v", err)
			return exitRun
		}
	}
	ff, err := top.FFFromFiles(c.VdW, c.ResLib)
	if err != nil {
		log.Printf("#ERROR: loading parameters: %v", err)
		return exitLoad
	}
	log.Printf("%d atom types loaded", ff.NTypes())
	log.Printf("%d amino acid atoms loaded", ff.NResAtoms())
	mol, err := chem.ReadFile(c.Structure)
	if err != nil {
		log.Printf("#ERROR: loading structure: %v", err)
		return exitLoad
	}
	res, err := polar.Run(mol, ff, opts)
	if err != nil {
		log.Printf("#ERROR: %v", err)
		return exitRun
	}
	if err := output(stdout, c, mol, res); err != nil {
		log.Printf("#ERROR: writing output: %v", err)
		return exitRun
	}
	return exitOK
}

func output(w io.Writer, c *config.Config, mol *chem.Molecule, res *polar.Result) error {
	var err error
	if c.JSON {
		err = report.JSON(w, mol, res)
	} else {
		err = report.Text(w, mol, res)
		if err == nil && c.Summary {
			err = report.Summary(w, mol, res)
		}
	}
	if err != nil {
		return err
	}
	if c.Plot == "" {
		return nil
	}
	if len(res.Pairs) == 0 {
		log.Printf("No residue pairs, %s not written", c.Plot)
		return nil
	}
	return report.PlotFile(c.Plot, mol, res)
}
