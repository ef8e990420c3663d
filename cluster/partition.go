/*
 * partition.go, part of embcluster.
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
	"errors"
	"fmt"
	"sort"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/chemgraph"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Regions is the result of partitioning a structure around a central site.
//Only the atoms within the PC cutoff are kept. Everything is indexed by the
//position of the atom in Atoms (the "local" index), which holds the index of
//each kept atom in the source structure, in increasing order.
type Regions struct {
	Source *chem.Structure
	Center int //local index of the central site
	Atoms  []int
	Region []chem.Region
	Coords *v3.Matrix //positions around the central site (minimum images for periodic structures)
	Dist   []float64  //distances to the central site
	Bonds  *chem.Bonds
	Policy Policy
}

//Len returns the number of kept atoms.
func (R *Regions) Len() int {
	return len(R.Atoms)
}

//Atom returns the source atom for the local index k.
func (R *Regions) Atom(k int) *chem.Atom {
	return R.Source.Atom(R.Atoms[k])
}

//Indexes returns the local indexes of the atoms in region reg, in increasing order.
func (R *Regions) Indexes(reg chem.Region) []int {
	ret := make([]int, 0, len(R.Atoms))
	for k, v := range R.Region {
		if v == reg {
			ret = append(ret, k)
		}
	}
	return ret
}

//Count returns the number of atoms in region reg.
func (R *Regions) Count(reg chem.Region) int {
	n := 0
	for _, v := range R.Region {
		if v == reg {
			n++
		}
	}
	return n
}

//CentralSite returns the index in the source structure of the central site
//selected by opts.
func CentralSite(S *chem.Structure, opts *Options) (int, error) {
	c := opts.CentralSite
	if c == -1 {
		c = S.NearestToCentroid(opts.CentralElement)
		if c < 0 {
			return -1, newPartitionError("CentralSite", nil, "no atom of element %q to use as central site", opts.CentralElement)
		}
		return c, nil
	}
	if c < 0 || c >= S.Len() {
		return -1, newPartitionError("CentralSite", nil, "central site %d does not exist in a structure of %d atoms", c, S.Len())
	}
	return c, nil
}

//Partition assigns the atoms of S within the PC cutoff of the central site to
//the QC, BR and PC regions, and finds the bonds among them.
//Ties with a boundary (within opts.Tolerance) go to the inner region.
func Partition(S *chem.Structure, opts *Options) (*Regions, error) {
	if err := opts.Validate(); err != nil {
		return nil, errDecorate(err, "Partition")
	}
	center, err := CentralSite(S, opts)
	if err != nil {
		return nil, errDecorate(err, "Partition")
	}
	P := opts.Policy
	if S.Periodic() {
		if rmax := S.Lattice.MinImageRadius(); P.PCCutoff > rmax {
			return nil, newPartitionError("Partition", nil, "pc_cutoff %g exceeds the minimum image radius %g of the lattice, use a supercell", P.PCCutoff, rmax)
		}
	}
	R, err := frame(S, center, P.PCCutoff+opts.Tolerance, opts.bondOptions())
	if err != nil {
		return nil, errDecorate(err, "Partition")
	}
	R.Policy = P
	switch P.Kind {
	case Radial:
		for k, d := range R.Dist {
			R.Region[k] = radialRegion(d, P, opts.Tolerance)
		}
	case BondShells:
		T := chemgraph.FromBonds(R.Len(), R.Bonds)
		depths := T.Shells(R.Center, P.BRShells)
		for k := range R.Region {
			d, ok := depths[k]
			switch {
			case ok && d <= P.QCShells:
				R.Region[k] = chem.QC
			case ok && d <= P.BRShells:
				R.Region[k] = chem.BR
			default:
				R.Region[k] = chem.PC
			}
		}
	}
	return R, nil
}

func radialRegion(d float64, P Policy, tol float64) chem.Region {
	switch {
	case d <= P.QCRadius+tol:
		return chem.QC
	case d <= P.BRRadius+tol:
		return chem.BR
	}
	return chem.PC
}

//frame collects the atoms within cutoff of the central site, with their positions
//around it, and assigns bonds among them.
func frame(S *chem.Structure, center int, cutoff float64, bopts *chem.BondOptions) (*Regions, error) {
	pc := S.Coords.Vec(center)
	R := &Regions{Source: S, Center: -1}
	vecs := make([]r3.Vec, 0, S.Len())
	for i := 0; i < S.Len(); i++ {
		p := S.Coords.Vec(i)
		d := r3.Sub(p, pc)
		if S.Periodic() {
			d = S.Lattice.MinimumImage(d)
			p = r3.Add(pc, d)
		}
		dist := r3.Norm(d)
		if i == center {
			dist = 0
			p = pc
			R.Center = len(R.Atoms)
		} else if dist > cutoff {
			continue
		}
		R.Atoms = append(R.Atoms, i)
		R.Dist = append(R.Dist, dist)
		vecs = append(vecs, p)
	}
	R.Region = make([]chem.Region, len(R.Atoms))
	R.Coords = v3.FromVecs(vecs)
	B, err := chem.AssignBonds(R.Coords, R, nil, bopts)
	if err != nil {
		return nil, geometryError(err, R)
	}
	R.Bonds = B
	return R, nil
}

//geometryError turns the errors from bond assignment into GeometryErrors
//with source indexes.
func geometryError(err error, R *Regions) error {
	var ov *chem.OverlapError
	var md *chem.MissingDataError
	switch {
	case errors.As(err, &ov):
		atoms := []int{R.Atoms[ov.At1], R.Atoms[ov.At2]}
		sort.Ints(atoms)
		return &GeometryError{Msg: fmt.Sprintf("atoms overlap, only %.4f A apart", ov.Dist), Atoms: atoms, deco: deco{"frame"}}
	case errors.As(err, &md):
		return &GeometryError{Msg: "no " + md.Property, Element: md.Symbol, deco: deco{"frame"}}
	}
	return errDecorate(err, "frame")
}
