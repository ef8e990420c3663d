/*
 * capping.go, part of embcluster.
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
	"fmt"
	"sort"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/ecp"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Caps are the cap atoms for the cut bonds of a Boundary, in the same order as
//the bonds. The charges of the caps are set by Balance.
type Caps struct {
	Atoms  []*chem.Atom
	Coords []r3.Vec
	Bonds  []BoundaryBond //the cut bond of each cap, local indexes
	Params []ecp.Params
}

//Len returns the number of caps
func (C *Caps) Len() int {
	return len(C.Atoms)
}

//OnBR returns the indexes (in C) of the caps standing for the BR atom with local index br.
func (C *Caps) OnBR(br int) []int {
	ret := make([]int, 0, 2)
	for i, b := range C.Bonds {
		if b.BR == br {
			ret = append(ret, i)
		}
	}
	return ret
}

//Cap puts one cap on each cut bond of B. The cap is placed on the axis from the QC
//atom to the BR atom, at the cap distance that T gives for the pair of elements,
//and carries the ECP of the BR element. A BR atom bonded to several QC atoms gets
//one cap per bond. Every element in the BR region must have an entry in T, otherwise
//a MissingECPError naming it is returned. So is the case for a cut bond with
//no cap distance. A cap closer than the minimum distance of the bond options of
//opts to any atom or other cap gives a GeometryError.
func Cap(R *Regions, B *Boundary, T *ecp.Table, opts *Options) (*Caps, error) {
	if err := checkBRElements(R, T); err != nil {
		return nil, errDecorate(err, "Cap")
	}
	C := &Caps{
		Atoms:  make([]*chem.Atom, 0, len(B.Cut)),
		Coords: make([]r3.Vec, 0, len(B.Cut)),
		Bonds:  make([]BoundaryBond, 0, len(B.Cut)),
		Params: make([]ecp.Params, 0, len(B.Cut)),
	}
	for _, b := range B.Cut {
		qc, br := R.Atom(b.QC), R.Atom(b.BR)
		p, _ := T.Get(br.Symbol)
		d, ok := T.CapLength(qc.Symbol, br.Symbol)
		if !ok {
			return nil, &MissingECPError{Element: br.Symbol, Pair: ecp.PairKey(qc.Symbol, br.Symbol), deco: deco{"Cap"}}
		}
		pos, err := stretchToDist(R.Coords, b.QC, b.BR, d)
		if err != nil {
			return nil, errDecorate(err, "Cap")
		}
		at := &chem.Atom{
			Name:   p.CapSymbol + "cap",
			Symbol: p.CapSymbol,
			Region: chem.BR,
			ECP:    p.Name,
			Cap:    &chem.CapRef{BR: R.Atoms[b.BR], QC: R.Atoms[b.QC], ECP: p.Name},
		}
		C.Atoms = append(C.Atoms, at)
		C.Coords = append(C.Coords, pos)
		C.Bonds = append(C.Bonds, b)
		C.Params = append(C.Params, p)
	}
	if err := checkCapOverlaps(R, C, opts.bondOptions().MinDistance); err != nil {
		return nil, errDecorate(err, "Cap")
	}
	return C, nil
}

//checkCapOverlaps returns a GeometryError for the first cap found closer than
//mindist to a kept atom or to another cap.
func checkCapOverlaps(R *Regions, C *Caps, mindist float64) error {
	if mindist <= 0 || C.Len() == 0 {
		return nil
	}
	n := R.Len()
	all := v3.Zeros(n + C.Len())
	all.View(0, n).Copy(R.Coords)
	for i, v := range C.Coords {
		all.SetVec(n+i, v)
	}
	//real atoms were already checked against each other when bonds were assigned.
	return chem.NewGrid(all, mindist).Pairs(func(i, j int, d float64) error {
		if j < n {
			return nil
		}
		cb := C.Bonds[j-n]
		var other string
		if i < n {
			other = fmt.Sprintf("atom %d", R.Atoms[i])
		} else {
			o := C.Bonds[i-n]
			other = fmt.Sprintf("the cap on the bond %d-%d", R.Atoms[o.QC], R.Atoms[o.BR])
		}
		return &GeometryError{
			Msg:   fmt.Sprintf("the cap on the bond between QC atom %d and BR atom %d is only %.4f A from %s", R.Atoms[cb.QC], R.Atoms[cb.BR], d, other),
			Atoms: []int{R.Atoms[cb.QC], R.Atoms[cb.BR]},
			deco:  deco{"checkCapOverlaps"},
		}
	})
}

//checkBRElements returns a MissingECPError for the first element, in alphabetical
//order, of the BR region with no entry in T.
func checkBRElements(R *Regions, T *ecp.Table) error {
	missing := make([]string, 0, 1)
	seen := make(map[string]bool)
	for _, k := range R.Indexes(chem.BR) {
		s := R.Atom(k).Symbol
		if seen[s] {
			continue
		}
		seen[s] = true
		if _, ok := T.Get(s); !ok {
			missing = append(missing, s)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingECPError{Element: missing[0], deco: deco{"checkBRElements"}}
}

//stretchToDist returns the point on the axis from atom i to atom j of coords,
//at dist from i.
func stretchToDist(coords *v3.Matrix, i, j int, dist float64) (r3.Vec, error) {
	pi := coords.Vec(i)
	axis := r3.Sub(coords.Vec(j), pi)
	n := r3.Norm(axis)
	if n < 1e-8 {
		return r3.Vec{}, &GeometryError{Msg: "bonded atoms on top of each other", Atoms: []int{i, j}, deco: deco{"stretchToDist"}}
	}
	return r3.Add(pi, r3.Scale(dist/n, axis)), nil
}
