/*
 * interfaces.go, part of polarcontacts.
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
	"fmt"
	"strings"
)

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Residuer is an Atomer that also knows how its atoms are grouped into residues.
type Residuer interface {
	Atomer

	//Residue returns the i-th residue. Should panic if out of range.
	Residue(i int) *Residue

	NRes() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// errDecorate decorates err with the caller's name, if err implements Error.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
		return e
	}
	return err
}

// LoadError is returned when a structure can't be loaded, either because
// the file can't be opened or because its content can't be parsed.
type LoadError struct {
	FileName string
	Line     int //0 if the error is not related to a given line
	Err      error
	deco     []string
}

func (err *LoadError) Error() string {
	where := err.FileName
	if where == "" {
		where = "structure"
	}
	if err.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, err.Line)
	}
	msg := fmt.Sprintf("Can't load %s: %v", where, err.Err)
	if len(err.deco) > 0 {
		msg += " (" + strings.Join(err.deco, " < ") + ")"
	}
	return msg
}

func (err *LoadError) Unwrap() error { return err.Err }

// Decorate adds dec to the decoration slice and returns it.
func (err *LoadError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}
