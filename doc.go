/*
 * doc.go, part of polarcontacts.
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

/*Package chem is the main package of the polarcontacts library. It provides atom, residue
and molecule structures and facilities for reading macromolecular structures
in PDB format.



	**Capabilities**


    Reads PDB files, plain or compressed with gzip or z-standard. The compression
	is detected from the content of the file, so the extension doesn't matter.

    Keeps every model of a multi-model file as a separate frame of coordinates.
	The topology (names, residues, chains) is taken from the first model.

    Groups atoms into residues and gives human-readable identifiers
	for both, i.e. "ASP A23" and "ASP A23.OD1".

The sub-packages build on this one: top assigns force field parameters to atoms,
nbsearch finds atom pairs within a distance, contacts filters those pairs into
polar contacts, energy computes residue-residue interaction energies, and polar
puts it all together.

*/
package chem
