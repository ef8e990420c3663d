/*
 * cluster.go, part of embcluster.
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
	chem "github.com/rmera/embcluster"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Cluster is a finished embedded cluster. Its atoms are ordered: QC atoms, BR atoms,
//caps, and PC atoms. A Cluster is never modified after it is built, and all its
//methods return copies.
type Cluster struct {
	atoms      []*chem.Atom
	coords     *v3.Matrix
	source     []int     //index in the source structure, -1 for caps
	dist       []float64 //distance to the central site
	charge     int
	qcCharge   int
	multi      int
	correction float64
	policy     Policy
	center     int //cluster index of the central site
	cut        []BoundaryBond
}

//Len returns the number of atoms in the cluster, caps included.
func (C *Cluster) Len() int {
	return len(C.atoms)
}

//Atom returns a copy of the ith atom.
func (C *Cluster) Atom(i int) *chem.Atom {
	at := new(chem.Atom)
	at.Copy(C.atoms[i])
	return at
}

//Coords returns a copy of the coordinates.
func (C *Cluster) Coords() *v3.Matrix {
	return C.coords.Clone()
}

//Vec returns the position of the ith atom.
func (C *Cluster) Vec(i int) r3.Vec {
	return C.coords.Vec(i)
}

//Charge returns the total charge of the cluster.
func (C *Cluster) Charge() int {
	return C.charge
}

//QCCharge returns the charge of the QC region.
func (C *Cluster) QCCharge() int {
	return C.qcCharge
}

//Multi returns the multiplicity of the QC region.
func (C *Cluster) Multi() int {
	return C.multi
}

//Charges returns the charge of every atom, in order.
func (C *Cluster) Charges() []float64 {
	ret := make([]float64, len(C.atoms))
	for i, v := range C.atoms {
		ret[i] = v.Charge
	}
	return ret
}

//Correction returns the charge added to each PC atom to reach the target charge.
func (C *Cluster) Correction() float64 {
	return C.correction
}

//Policy returns the partition policy (radii or shell counts) used to build the cluster.
func (C *Cluster) Policy() Policy {
	return C.policy
}

//Center returns the cluster index of the central site.
func (C *Cluster) Center() int {
	return C.center
}

//Source returns the index in the source structure of the ith atom, or -1 for caps.
func (C *Cluster) Source(i int) int {
	return C.source[i]
}

//Dist returns the distance from the ith atom to the central site.
func (C *Cluster) Dist(i int) float64 {
	return C.dist[i]
}

//Indexes returns the cluster indexes of the atoms in region reg. For chem.BR
//the caps are included.
func (C *Cluster) Indexes(reg chem.Region) []int {
	ret := make([]int, 0, len(C.atoms))
	for i, v := range C.atoms {
		if v.Region == reg {
			ret = append(ret, i)
		}
	}
	return ret
}

//Count returns the number of atoms in region reg, caps included for chem.BR.
func (C *Cluster) Count(reg chem.Region) int {
	n := 0
	for _, v := range C.atoms {
		if v.Region == reg {
			n++
		}
	}
	return n
}

//NCaps returns the number of caps.
func (C *Cluster) NCaps() int {
	n := 0
	for _, v := range C.atoms {
		if v.IsCap() {
			n++
		}
	}
	return n
}

//BoundaryBonds returns the capped QC-BR bonds, with the atoms given by
//their indexes in the source structure.
func (C *Cluster) BoundaryBonds() []BoundaryBond {
	ret := make([]BoundaryBond, len(C.cut))
	copy(ret, C.cut)
	return ret
}

var _ chem.AtomMultiCharger = &Cluster{}
