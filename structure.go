/*
 * structure.go, part of embcluster.
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
	"math"

	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Structure is a set of atoms with one set of coordinates, and, optionally,
//a periodic lattice. It is the input to the cluster builder.
type Structure struct {
	Atoms   []*Atom
	Coords  *v3.Matrix
	Lattice *Lattice //nil for finite (non-periodic) structures
	charge  int
	multi   int
}

//NewStructure makes a structure with the given atoms, coordinates and lattice (which can be nil).
//The atom indexes are reset to their position in the slice. It returns an error
//if the number of atoms and coordinates do not match, or if an atom has no symbol.
func NewStructure(atoms []*Atom, coords *v3.Matrix, lattice *Lattice) (*Structure, error) {
	if len(atoms) == 0 || coords == nil {
		return nil, newCError("NewStructure", "Supplied an empty structure")
	}
	if coords.NVecs() != len(atoms) {
		return nil, newCError("NewStructure", "%d atoms but %d coordinates", len(atoms), coords.NVecs())
	}
	for i, v := range atoms {
		if v == nil || v.Symbol == "" {
			return nil, newCError("NewStructure", "atom %d has no element symbol", i)
		}
		v.SetIndex(i)
		if v.ID == 0 {
			v.ID = i + 1
		}
	}
	return &Structure{Atoms: atoms, Coords: coords, Lattice: lattice, multi: 1}, nil
}

//Atom returns the ith atom. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	return S.Atoms[i]
}

//Len returns the number of atoms.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Periodic returns true if the structure has a lattice.
func (S *Structure) Periodic() bool {
	return S.Lattice != nil
}

//Charge gets the total charge of the structure
func (S *Structure) Charge() int {
	return S.charge
}

//Multi gets the multiplicity of the structure
func (S *Structure) Multi() int {
	return S.multi
}

//SetCharge sets the total charge of the structure to i
func (S *Structure) SetCharge(i int) {
	S.charge = i
}

//SetMulti sets the multiplicity of the structure to i
func (S *Structure) SetMulti(i int) {
	S.multi = i
}

//Copy returns a deep copy of the structure. The lattice is shared, as it is
//never modified.
func (S *Structure) Copy() *Structure {
	atoms := make([]*Atom, len(S.Atoms))
	for i, v := range S.Atoms {
		atoms[i] = new(Atom)
		atoms[i].Copy(v)
	}
	return &Structure{Atoms: atoms, Coords: S.Coords.Clone(), Lattice: S.Lattice, charge: S.charge, multi: S.multi}
}

//Charged returns true if every atom in the structure has a charge
//given explicitly.
func (S *Structure) Charged() bool {
	for _, v := range S.Atoms {
		if !v.Charged {
			return false
		}
	}
	return true
}

//SetCharges assigns the charges in q, in order, to the atoms of the structure.
func (S *Structure) SetCharges(q []float64) error {
	if len(q) != len(S.Atoms) {
		return newCError("SetCharges", "%d charges for %d atoms", len(q), len(S.Atoms))
	}
	for i, v := range S.Atoms {
		v.Charge = q[i]
		v.Charged = true
	}
	return nil
}

//SetChargesBySymbol assigns to every atom the charge given for its element in q.
//Atoms whose element is not in q are not modified.
func (S *Structure) SetChargesBySymbol(q map[string]float64) {
	for _, v := range S.Atoms {
		if c, ok := q[v.Symbol]; ok {
			v.Charge = c
			v.Charged = true
		}
	}
}

//NearestTo returns the index of the atom closest to point p, considering
//only atoms for which the optional filter returns true. It returns -1 if no
//atom qualifies. Ties are broken by the lowest index.
func (S *Structure) NearestTo(p r3.Vec, filter func(*Atom) bool) int {
	best := -1
	bestd := math.Inf(1)
	for i := 0; i < S.Coords.NVecs(); i++ {
		if filter != nil && !filter(S.Atoms[i]) {
			continue
		}
		d := r3.Sub(S.Coords.Vec(i), p)
		if S.Lattice != nil {
			d = S.Lattice.MinimumImage(d)
		}
		if n := r3.Norm(d); n < bestd-appzero {
			bestd = n
			best = i
		}
	}
	return best
}

//NearestToCentroid returns the atom nearest to the geometric center of the structure,
//among those with the given element symbol, or among all atoms if symbol is empty.
func (S *Structure) NearestToCentroid(symbol string) int {
	var filter func(*Atom) bool
	if symbol != "" {
		filter = func(a *Atom) bool { return a.Symbol == symbol }
	}
	return S.NearestTo(S.Coords.Centroid(), filter)
}

//Center translates the structure so its geometric center is at the origin,
//and returns the translation applied.
func (S *Structure) Center() r3.Vec {
	c := S.Coords.Centroid()
	S.Coords.SubVec(S.Coords, c)
	return r3.Scale(-1, c)
}

//Symbols returns the distinct element symbols in the structure, in order of first appearance.
func (S *Structure) Symbols() []string {
	seen := make(map[string]bool)
	ret := make([]string, 0, 4)
	for _, v := range S.Atoms {
		if !seen[v.Symbol] {
			seen[v.Symbol] = true
			ret = append(ret, v.Symbol)
		}
	}
	return ret
}

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.
