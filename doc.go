/*
 * doc.go, part of embcluster.
 *
 * Copyright 2024 Raul Mera <rmeraatusachdotcl>
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

/*Package chem is the base package of embcluster. It provides the atom and structure types
used to describe periodic and finite solids, a simple crystal builder, bond detection and
the reading and writing of (charged) XYZ files.


	**Capabilities**


    Reads/writes XYZ files with an optional charge column and extended-XYZ
	lattice vectors, gzip or zstd compressed if the file name ends in .gz or .zst.

    Builds finite structures from a unit cell, by tiling it over a range of cells
	and removing what lies beyond a set of cutting planes.

    Lattice handling: fractional/cartesian conversion and minimum image
	displacements.

    Assigns bonds from covalent radii, using a cell list, so large
	structures are not a problem.

    Tabulated covalent radii, atomic numbers and common oxidation states.

The embedded clusters themselves are built by the cluster package, and the
QM input is written by the qm package.
*/
package chem
