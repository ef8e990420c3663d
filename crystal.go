/*
 * crystal.go, part of embcluster.
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
	"fmt"
	"math"
	"strings"

	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//The Pearson symbols accepted for a crystal. They do not identify the space group
//uniquely, only the crystal family and centering.
var pearsonSymbols = map[string]bool{
	"aP": true,
	"mP": true, "mS": true,
	"oP": true, "oS": true, "oI": true, "oF": true,
	"tP": true, "tI": true,
	"hP": true, "hR": true,
	"cP": true, "cI": true, "cF": true,
}

//Cut is a plane that removes, when tiling a crystal, every atom
//at or in front of it, i.e. atoms at x for which (x-Point).Normal >= 0
type Cut struct {
	Point  r3.Vec
	Normal r3.Vec
}

//TileRange gives the half-open ranges of unit cells, [A1,A2) along a, and so on,
//that are put together when tiling.
type TileRange struct {
	A1, A2, B1, B2, C1, C2 int
}

//Cells returns the number of unit cells in the range.
func (T TileRange) Cells() int {
	n := (T.A2 - T.A1) * (T.B2 - T.B1) * (T.C2 - T.C1)
	if n < 0 {
		return 0
	}
	return n
}

//Crystal is the unit cell of a crystal: its parameters, its sites and
//the Pearson symbol of its space group.
type Crystal struct {
	A, B, C            float64 //lengths, A
	Alpha, Beta, Gamma float64 //angles, degrees
	SpaceGroup         string
	Sites              []*Atom
	Coords             *v3.Matrix //one row per site
	Fractional         bool       //Coords are fractional rather than cartesian
	lattice            *Lattice
}

//NewCrystal returns a crystal with the given cell parameters, sites and Pearson symbol.
//It returns an error for an unknown Pearson symbol, for cell angles that don't
//belong to the crystal family (orthorhombic, tetragonal and cubic must be rectangular),
//or for inconsistent sites.
func NewCrystal(a, b, c, alpha, beta, gamma float64, sites []*Atom, coords *v3.Matrix, group string) (*Crystal, error) {
	if !pearsonSymbols[group] {
		return nil, newCError("NewCrystal", "space group %q is invalid or not supported", group)
	}
	if strings.ContainsAny(group[:1], "otc") {
		for _, v := range []float64{alpha, beta, gamma} {
			if math.Abs(v-90) > 1e-6 {
				return nil, newCError("NewCrystal", "%s crystals need 90 degree angles, got %g %g %g", group, alpha, beta, gamma)
			}
		}
	}
	if len(sites) == 0 || coords == nil || coords.NVecs() != len(sites) {
		return nil, newCError("NewCrystal", "sites and coordinates do not match")
	}
	L, err := LatticeFromParameters(a, b, c, alpha, beta, gamma)
	if err != nil {
		return nil, errDecorate(err, "NewCrystal")
	}
	for i, v := range sites {
		v.SetIndex(i)
	}
	return &Crystal{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma, SpaceGroup: group, Sites: sites, Coords: coords, lattice: L}, nil
}

//NewRectangularCrystal returns a crystal with all angles equal to 90 degrees
//(orthorhombic, tetragonal or cubic).
func NewRectangularCrystal(a, b, c float64, sites []*Atom, coords *v3.Matrix, group string) (*Crystal, error) {
	if !strings.ContainsAny(group[:1], "otc") {
		return nil, newCError("NewRectangularCrystal", "invalid space group %q for a rectangular crystal", group)
	}
	C, err := NewCrystal(a, b, c, 90, 90, 90, sites, coords, group)
	return C, errDecorate(err, "NewRectangularCrystal")
}

//NewCubicCrystal returns a crystal with a=b=c and right angles.
func NewCubicCrystal(a float64, sites []*Atom, coords *v3.Matrix, group string) (*Crystal, error) {
	if group != "cP" && group != "cI" && group != "cF" {
		return nil, newCError("NewCubicCrystal", "invalid space group %q for a cubic crystal", group)
	}
	C, err := NewCrystal(a, a, a, 90, 90, 90, sites, coords, group)
	return C, errDecorate(err, "NewCubicCrystal")
}

//Lattice returns the lattice of the crystal.
func (C *Crystal) Lattice() *Lattice {
	return C.lattice
}

//Name returns the formula of the unit cell, with the elements in order of appearance.
func (C *Crystal) Name() string {
	counts := make(map[string]int)
	order := make([]string, 0, 3)
	for _, v := range C.Sites {
		if counts[v.Symbol] == 0 {
			order = append(order, v.Symbol)
		}
		counts[v.Symbol]++
	}
	var b strings.Builder
	for _, s := range order {
		b.WriteString(s)
		if counts[s] > 1 {
			fmt.Fprintf(&b, "%d", counts[s])
		}
	}
	return b.String()
}

//String returns the Pearson symbol and cell lengths, followed by the sites.
func (C *Crystal) String() string {
	lines := make([]string, 0, len(C.Sites)+1)
	lines = append(lines, fmt.Sprintf("%s, %v, %v, %v", C.SpaceGroup, C.A, C.B, C.C))
	for i, v := range C.Sites {
		c := C.Coords.Vec(i)
		lines = append(lines, fmt.Sprintf("%-4s%14.8f%14.8f%14.8f", v.Symbol, c.X, c.Y, c.Z))
	}
	return strings.Join(lines, "\n")
}

//cartesian returns the cartesian position of site i in the reference cell.
func (C *Crystal) cartesian(i int) r3.Vec {
	v := C.Coords.Vec(i)
	if C.Fractional {
		return C.lattice.Cartesian(v)
	}
	return v
}

//Cell returns the reference unit cell as a periodic structure.
func (C *Crystal) Cell() (*Structure, error) {
	vecs := make([]r3.Vec, len(C.Sites))
	atoms := make([]*Atom, len(C.Sites))
	for i, v := range C.Sites {
		vecs[i] = C.cartesian(i)
		atoms[i] = new(Atom)
		atoms[i].Copy(v)
		atoms[i].Tag = i
	}
	S, err := NewStructure(atoms, v3.FromVecs(vecs), C.lattice)
	return S, errDecorate(err, "Cell")
}

//Tile returns a finite structure built by translating the unit cell over the cells
//in r, looping over a, then b, then c, with c varying fastest. Atoms removed by any of
//the cuts are skipped. Each atom's Tag is set to the index of its site in the unit cell.
//It returns an error if no atom is left.
func (C *Crystal) Tile(r TileRange, cuts ...Cut) (*Structure, error) {
	n := r.Cells() * len(C.Sites)
	vecs := make([]r3.Vec, 0, n)
	atoms := make([]*Atom, 0, n)
	for i := r.A1; i < r.A2; i++ {
		for j := r.B1; j < r.B2; j++ {
			for k := r.C1; k < r.C2; k++ {
				t := C.lattice.Translation(i, j, k)
				for s, site := range C.Sites {
					p := r3.Add(C.cartesian(s), t)
					if cutOff(p, cuts) {
						continue
					}
					at := new(Atom)
					at.Copy(site)
					at.Tag = s
					at.ID = len(atoms) + 1
					atoms = append(atoms, at)
					vecs = append(vecs, p)
				}
			}
		}
	}
	if len(atoms) == 0 {
		return nil, newCError("Tile", "no atoms left in %s after tiling %v", C.Name(), r)
	}
	S, err := NewStructure(atoms, v3.FromVecs(vecs), nil)
	return S, errDecorate(err, "Tile")
}

func cutOff(p r3.Vec, cuts []Cut) bool {
	for _, c := range cuts {
		if r3.Dot(r3.Sub(p, c.Point), c.Normal) >= 0 {
			return true
		}
	}
	return false
}
