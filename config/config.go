/*
 * config.go, part of polarcontacts.
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
Package config holds the settings of a polar contacts run. Settings start from
the defaults, can be read from a YAML (.yaml, .yml) or TOML (.toml) run file, and
are turned into polar.Options after a check.

A YAML run file looks like:

	vdw: params/vdwprm
	rlib: params/aaLib.lib
	diel: 0
	cutoff: 3.5
	nowats: true

The TOML version uses the same keys.
*/
package config

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/rmera/polarcontacts/energy"
	"github.com/rmera/polarcontacts/nbsearch"
	"github.com/rmera/polarcontacts/polar"
	"github.com/rmera/polarcontacts/top"
	"gopkg.in/yaml.v3"
)

// Config contains the settings for a run.
type Config struct {
	Structure string //structure file
	VdW       string //van der Waals parameter set
	ResLib    string //residue library

	BackOnly   bool
	NoWaters   bool
	Dielectric float64 //0 means distance-dependent
	Cutoff     float64
	Covalent   float64
	ChainAware bool
	Missing    string //fail or skip
	Combine    string //amber or geometric
	MinDist    float64
	Search     string //grid or kdtree
	Workers    int

	JSON    bool
	Plot    string //file name for the energy chart, empty for no chart
	Summary bool
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dielectric: 1,
		Cutoff:     3.5,
		Covalent:   2.0,
		Missing:    "fail",
		Combine:    "amber",
		MinDist:    0.5,
		Search:     "grid",
		Workers:    1,
	}
}

// fileConfig is what can be given in a run file. Only the
// keys present in the file are applied. The polar atom and water
// name sets are fixed, so they are not among the keys.
type fileConfig struct {
	Structure  *string  `yaml:"structure" toml:"structure"`
	VdW        *string  `yaml:"vdw" toml:"vdw"`
	ResLib     *string  `yaml:"rlib" toml:"rlib"`
	BackOnly   *bool    `yaml:"backonly" toml:"backonly"`
	NoWaters   *bool    `yaml:"nowats" toml:"nowats"`
	Dielectric *float64 `yaml:"diel" toml:"diel"`
	Cutoff     *float64 `yaml:"cutoff" toml:"cutoff"`
	Covalent   *float64 `yaml:"covalent" toml:"covalent"`
	ChainAware *bool    `yaml:"chainaware" toml:"chainaware"`
	Missing    *string  `yaml:"missing" toml:"missing"`
	Combine    *string  `yaml:"combine" toml:"combine"`
	MinDist    *float64 `yaml:"mindist" toml:"mindist"`
	Search     *string  `yaml:"search" toml:"search"`
	Workers    *int     `yaml:"workers" toml:"workers"`
	JSON       *bool    `yaml:"json" toml:"json"`
	Plot       *string  `yaml:"plot" toml:"plot"`
	Summary    *bool    `yaml:"summary" toml:"summary"`
}

func (f *fileConfig) apply(c *Config) {
	setString(&c.Structure, f.Structure)
	setString(&c.VdW, f.VdW)
	setString(&c.ResLib, f.ResLib)
	setBool(&c.BackOnly, f.BackOnly)
	setBool(&c.NoWaters, f.NoWaters)
	setFloat(&c.Dielectric, f.Dielectric)
	setFloat(&c.Cutoff, f.Cutoff)
	setFloat(&c.Covalent, f.Covalent)
	setBool(&c.ChainAware, f.ChainAware)
	setString(&c.Missing, f.Missing)
	setString(&c.Combine, f.Combine)
	setFloat(&c.MinDist, f.MinDist)
	setString(&c.Search, f.Search)
	if f.Workers != nil {
		c.Workers = *f.Workers
	}
	setBool(&c.JSON, f.JSON)
	setString(&c.Plot, f.Plot)
	setBool(&c.Summary, f.Summary)
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// Load returns the default configuration modified by the run file path,
// which must have a .yaml, .yml or .toml extension. The returned configuration
// is not checked, as command line options could still change it.
func Load(path string) (*Config, error) {
	c := Default()
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile applies the settings in the run file path to the receiver.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bufio.NewReader(f))
		dec.KnownFields(true)
		err = dec.Decode(&fc)
	case ".toml":
		err = toml.NewDecoder(f).Strict(true).Decode(&fc)
	default:
		return fmt.Errorf("config: unknown run file format %q, use .yaml, .yml or .toml", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("config: can't decode %s: %w", path, err)
	}
	fc.apply(c)
	return nil
}

// Check checks if Config is correct. It returns an error if a field doesn't meet
// the requirements.
func (c *Config) Check() error {
	if c.VdW == "" || c.ResLib == "" {
		return fmt.Errorf("both the van der Waals set and the residue library are required")
	}
	if !positive(c.Cutoff) {
		return fmt.Errorf("the cutoff must be positive, got %v", c.Cutoff)
	}
	if !(c.Covalent >= 0 && c.Covalent < c.Cutoff) {
		return fmt.Errorf("the covalent threshold must be non-negative and lower than the cutoff, got %v", c.Covalent)
	}
	if c.Dielectric < 0 || math.IsNaN(c.Dielectric) || math.IsInf(c.Dielectric, 0) {
		return fmt.Errorf("the dielectric must be 0 or positive, got %v", c.Dielectric)
	}
	if !positive(c.MinDist) {
		return fmt.Errorf("the distance floor must be positive, got %v", c.MinDist)
	}
	if c.Workers < 1 {
		return fmt.Errorf("the number of workers must be at least 1, got %d", c.Workers)
	}
	if _, err := top.ParseMissingPolicy(c.Missing); err != nil {
		return err
	}
	if _, err := energy.ParseRule(c.Combine); err != nil {
		return err
	}
	if _, err := nbsearch.ParseBackend(c.Search); err != nil {
		return err
	}
	return nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}

// Options checks the receiver and returns the corresponding run options.
func (c *Config) Options() (polar.Options, error) {
	if err := c.Check(); err != nil {
		return polar.Options{}, fmt.Errorf("config: %w", err)
	}
	o := polar.DefaultOptions()
	o.Cutoff = c.Cutoff
	o.BackboneOnly = c.BackOnly
	o.Filter.Covalent = c.Covalent
	o.Filter.ChainAware = c.ChainAware
	o.Filter.ExcludeWaters = c.NoWaters
	o.Energy.Dielectric = c.Dielectric
	o.Energy.MinDist = c.MinDist
	o.Energy.Combine, _ = energy.ParseRule(c.Combine)
	o.Missing, _ = top.ParseMissingPolicy(c.Missing)
	o.Backend, _ = nbsearch.ParseBackend(c.Search)
	o.Workers = c.Workers
	return o, nil
}
