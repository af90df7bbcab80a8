/*
 * doc.go, part of polarcontacts
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
Top is a package for reading simple force-field parameter files (not to be
confused with the chem Topology structure) and assigning the parameters to
the atoms of a structure.

Two plain-text files are read. A van der Waals set, with one atom type per line:

	TYPE  EPSILON  SIGMA  [MASS  [FSRF]]

and a residue library, mapping each residue/atom name pair to an atom type
and a partial charge:

	RESNAME  ATOMNAME  TYPE  CHARGE

In both, everything after a '#' is a comment. Lookups are case-insensitive.
*/
package top
