/*
 * bonds.go, part of embcluster.
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

package chem

import (
	"sort"

	v3 "github.com/rmera/embcluster/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond joins the atoms with indexes At1<At2.
type Bond struct {
	At1   int
	At2   int
	Dist  float64
	Order float64 //Order 0 means undetermined
}

//Cross returns the index of the atom at the other end of the bond from origin.
func (B Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

//BondOptions tunes the distance criterion for bonding. The zero value
//is not useful, use DefaultBondOptions.
type BondOptions struct {
	Tolerance   float64            //added to the sum of covalent radii
	TooClose    float64            //pairs closer than this are not bonded
	MinDistance float64            //pairs closer than this are an error
	Radii       map[string]float64 //overrides the tabulated covalent radii
}

//DefaultBondOptions returns the options used by AssignBonds when none are given.
func DefaultBondOptions() *BondOptions {
	return &BondOptions{Tolerance: bondtol, TooClose: tooclose, MinDistance: 0.1}
}

//Radius returns the covalent radius for symbol, taking into account
//the overrides in O.
func (O *BondOptions) Radius(symbol string) (float64, bool) {
	if r, ok := O.Radii[symbol]; ok {
		return r, true
	}
	return CovalentRadius(symbol)
}

//Bonds is the set of bonds among the atoms of a structure.
type Bonds struct {
	List []Bond
	adj  map[int][]int
}

//Neighbors returns the indexes of the atoms bonded to i, in increasing order.
func (B *Bonds) Neighbors(i int) []int {
	return B.adj[i]
}

//Degree returns the number of bonds of atom i.
func (B *Bonds) Degree(i int) int {
	return len(B.adj[i])
}

//Bonded returns true if i and j are bonded.
func (B *Bonds) Bonded(i, j int) bool {
	for _, v := range B.adj[i] {
		if v == j {
			return true
		}
	}
	return false
}

//AssignBonds finds bonds among the atoms of mol with the given indexes
//(all of them, if indexes is nil) based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33
//The coordinates in coord are used as they are, with no periodic images.
//It returns an *OverlapError if two atoms are closer than opts.MinDistance, and
//a *MissingDataError if an element has no covalent radius.
func AssignBonds(coord *v3.Matrix, mol Atomer, indexes []int, opts *BondOptions) (*Bonds, error) {
	if opts == nil {
		opts = DefaultBondOptions()
	}
	if indexes == nil {
		indexes = make([]int, mol.Len())
		for i := range indexes {
			indexes[i] = i
		}
	}
	B := &Bonds{List: make([]Bond, 0, len(indexes)), adj: make(map[int][]int, len(indexes))}
	if len(indexes) == 0 {
		return B, nil
	}
	radii := make([]float64, len(indexes))
	maxrad := 0.0
	for k, i := range indexes {
		at := mol.Atom(i)
		r, ok := opts.Radius(at.Symbol)
		if !ok {
			return nil, &MissingDataError{Symbol: at.Symbol, Property: "covalent radius", deco: []string{"AssignBonds"}}
		}
		radii[k] = r
		if r > maxrad {
			maxrad = r
		}
	}
	sub := v3.Zeros(len(indexes))
	sub.SomeVecs(coord, indexes)
	//the grid cell must hold the longest possible bond
	cell := 2*maxrad + opts.Tolerance
	if cell < opts.MinDistance {
		cell = opts.MinDistance + appzero
	}
	G := NewGrid(sub, cell)
	err := G.Pairs(func(k, l int, d float64) error {
		if d < opts.MinDistance {
			return &OverlapError{At1: indexes[k], At2: indexes[l], Dist: d, deco: []string{"AssignBonds"}}
		}
		if d < radii[k]+radii[l]+opts.Tolerance && d > opts.TooClose {
			i, j := indexes[k], indexes[l]
			if i > j {
				i, j = j, i
			}
			B.List = append(B.List, Bond{At1: i, At2: j, Dist: d})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	B.pruneTooMany(mol)
	B.index()
	return B, nil
}

//Now we check that no atom has too many bonds, and
//remove the longest ones from those that do.
func (B *Bonds) pruneTooMany(mol Atomer) {
	count := make(map[int][]int) //atom index -> indexes in B.List
	for k, b := range B.List {
		count[b.At1] = append(count[b.At1], k)
		count[b.At2] = append(count[b.At2], k)
	}
	remove := make(map[int]bool)
	atoms := make([]int, 0, len(count))
	for i := range count {
		atoms = append(atoms, i)
	}
	sort.Ints(atoms)
	for _, i := range atoms {
		max := symbolMaxBonds[mol.Atom(i).Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		alive := make([]int, 0, len(count[i]))
		for _, k := range count[i] {
			if !remove[k] {
				alive = append(alive, k)
			}
		}
		sort.SliceStable(alive, func(a, b int) bool { return B.List[alive[a]].Dist < B.List[alive[b]].Dist })
		for _, k := range alive[min(max, len(alive)):] {
			remove[k] = true //we remove the longest bonds
		}
	}
	if len(remove) == 0 {
		return
	}
	kept := B.List[:0]
	for k, b := range B.List {
		if !remove[k] {
			kept = append(kept, b)
		}
	}
	B.List = kept
}

//index sorts the bonds by their atoms and builds the adjacency lists.
func (B *Bonds) index() {
	sort.Slice(B.List, func(i, j int) bool {
		if B.List[i].At1 != B.List[j].At1 {
			return B.List[i].At1 < B.List[j].At1
		}
		return B.List[i].At2 < B.List[j].At2
	})
	for _, b := range B.List {
		B.adj[b.At1] = append(B.adj[b.At1], b.At2)
		B.adj[b.At2] = append(B.adj[b.At2], b.At1)
	}
	for _, v := range B.adj {
		sort.Ints(v)
	}
}
