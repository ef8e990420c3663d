/*
 * boundary.go, part of embcluster.
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

package cluster

import (
	"sort"

	chem "github.com/rmera/embcluster"
)

//BoundaryBond is a bond between a QC atom and a BR atom, given by local indexes.
type BoundaryBond struct {
	QC   int
	BR   int
	Dist float64
}

//Boundary holds the bonds crossing region boundaries. Cut are the QC-BR bonds,
//which get capped. Outer are the BR-PC bonds, which don't, since PC atoms
//have no basis functions.
type Boundary struct {
	Cut   []BoundaryBond
	Outer []chem.Bond
}

//ResolveBoundary finds the bonds crossing region boundaries. The cut bonds are
//sorted by QC atom and then by BR atom. A bond between a QC and a PC atom can't
//be capped, and results in a PartitionError.
func ResolveBoundary(R *Regions) (*Boundary, error) {
	B := &Boundary{Cut: make([]BoundaryBond, 0, 8), Outer: make([]chem.Bond, 0, 8)}
	for _, b := range R.Bonds.List {
		r1, r2 := R.Region[b.At1], R.Region[b.At2]
		if r1 == r2 {
			continue
		}
		switch {
		case r1 == chem.QC && r2 == chem.BR:
			B.Cut = append(B.Cut, BoundaryBond{QC: b.At1, BR: b.At2, Dist: b.Dist})
		case r1 == chem.BR && r2 == chem.QC:
			B.Cut = append(B.Cut, BoundaryBond{QC: b.At2, BR: b.At1, Dist: b.Dist})
		case r1 == chem.QC || r2 == chem.QC:
			return nil, newPartitionError("ResolveBoundary", []int{R.Atoms[b.At1], R.Atoms[b.At2]}, "a QC atom is bonded to a PC atom, the BR region is too thin")
		default:
			B.Outer = append(B.Outer, b)
		}
	}
	sort.Slice(B.Cut, func(i, j int) bool {
		if B.Cut[i].QC != B.Cut[j].QC {
			return B.Cut[i].QC < B.Cut[j].QC
		}
		return B.Cut[i].BR < B.Cut[j].BR
	})
	return B, nil
}

//CutsOf returns the cut bonds involving the BR atom with local index br.
func (B *Boundary) CutsOf(br int) []BoundaryBond {
	ret := make([]BoundaryBond, 0, 2)
	for _, v := range B.Cut {
		if v.BR == br {
			ret = append(ret, v)
		}
	}
	return ret
}
