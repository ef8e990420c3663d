/*
 * lattice.go, part of embcluster.
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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const deg2rad = math.Pi / 180

//Lattice holds the three translation vectors of a periodic cell, in A.
type Lattice struct {
	vecs [3]r3.Vec
	inv  [3][3]float64 //inverse of the matrix with the lattice vectors as rows.
}

//NewLattice returns a Lattice with the translation vectors a, b and c.
//It returns an error if the vectors are (nearly) coplanar.
func NewLattice(a, b, c r3.Vec) (*Lattice, error) {
	L := &Lattice{vecs: [3]r3.Vec{a, b, c}}
	if v := L.Volume(); v < 1e-6 {
		return nil, newCError("NewLattice", "degenerate lattice, cell volume %.3g", v)
	}
	m := mat.NewDense(3, 3, []float64{a.X, a.Y, a.Z, b.X, b.Y, b.Z, c.X, c.Y, c.Z})
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, newCError("NewLattice", "can't invert lattice matrix: %s", err.Error())
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			L.inv[i][j] = inv.At(i, j)
		}
	}
	return L, nil
}

//LatticeFromParameters builds a lattice from the cell lengths (A) and angles (degrees),
//with a along x and b in the xy plane.
func LatticeFromParameters(a, b, c, alpha, beta, gamma float64) (*Lattice, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, newCError("LatticeFromParameters", "cell lengths must be positive: %g %g %g", a, b, c)
	}
	ca, cb, cg := cosDeg(alpha), cosDeg(beta), cosDeg(gamma)
	sg := math.Sin(gamma * deg2rad)
	if math.Abs(sg) < 1e-8 {
		return nil, newCError("LatticeFromParameters", "gamma angle of %g degrees", gamma)
	}
	cy := (ca - cb*cg) / sg
	cz2 := 1 - cb*cb - cy*cy
	if cz2 <= 0 {
		return nil, newCError("LatticeFromParameters", "impossible cell angles %g %g %g", alpha, beta, gamma)
	}
	av := r3.Vec{X: a}
	bv := r3.Vec{X: b * cg, Y: b * sg}
	cv := r3.Vec{X: c * cb, Y: c * cy, Z: c * math.Sqrt(cz2)}
	L, err := NewLattice(av, bv, cv)
	if err != nil {
		return nil, errDecorate(err, "LatticeFromParameters")
	}
	return L, nil
}

//cosDeg returns the cosine of an angle in degrees, with exact
//zeros for right angles.
func cosDeg(angle float64) float64 {
	c := math.Cos(angle * deg2rad)
	if math.Abs(c) < 1e-12 {
		return 0
	}
	return c
}

//Vectors returns the three lattice vectors.
func (L *Lattice) Vectors() [3]r3.Vec {
	return L.vecs
}

//Volume returns the volume of the cell.
func (L *Lattice) Volume() float64 {
	return math.Abs(r3.Dot(L.vecs[0], r3.Cross(L.vecs[1], L.vecs[2])))
}

//Fractional returns the fractional coordinates of the cartesian vector v.
func (L *Lattice) Fractional(v r3.Vec) r3.Vec {
	in := L.inv
	return r3.Vec{
		X: v.X*in[0][0] + v.Y*in[1][0] + v.Z*in[2][0],
		Y: v.X*in[0][1] + v.Y*in[1][1] + v.Z*in[2][1],
		Z: v.X*in[0][2] + v.Y*in[1][2] + v.Z*in[2][2],
	}
}

//Cartesian returns the cartesian vector with fractional coordinates f.
func (L *Lattice) Cartesian(f r3.Vec) r3.Vec {
	ret := r3.Scale(f.X, L.vecs[0])
	ret = r3.Add(ret, r3.Scale(f.Y, L.vecs[1]))
	return r3.Add(ret, r3.Scale(f.Z, L.vecs[2]))
}

//Translation returns i*a+j*b+k*c
func (L *Lattice) Translation(i, j, k int) r3.Vec {
	return L.Cartesian(r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)})
}

//MinimumImage returns the shortest periodic image of the displacement d.
//The result is exact for displacements shorter than MinImageRadius.
func (L *Lattice) MinimumImage(d r3.Vec) r3.Vec {
	f := L.Fractional(d)
	f.X -= math.Round(f.X)
	f.Y -= math.Round(f.Y)
	f.Z -= math.Round(f.Z)
	best := L.Cartesian(f)
	//rounding is not enough for skewed cells.
	base := best
	bestn := r3.Norm(best)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				c := r3.Add(base, L.Translation(i, j, k))
				if n := r3.Norm(c); n < bestn-appzero {
					best, bestn = c, n
				}
			}
		}
	}
	return best
}

//PlaneSpacings returns the distances between consecutive lattice planes
//perpendicular to each of the reciprocal directions.
func (L *Lattice) PlaneSpacings() [3]float64 {
	v := L.Volume()
	a, b, c := L.vecs[0], L.vecs[1], L.vecs[2]
	return [3]float64{
		v / r3.Norm(r3.Cross(b, c)),
		v / r3.Norm(r3.Cross(c, a)),
		v / r3.Norm(r3.Cross(a, b)),
	}
}

//MinImageRadius is half the smallest plane spacing. Within this radius every
//point has one and only one periodic image.
func (L *Lattice) MinImageRadius() float64 {
	s := L.PlaneSpacings()
	return math.Min(s[0], math.Min(s[1], s[2])) / 2
}

func (L *Lattice) String() string {
	v := L.vecs
	return fmt.Sprintf("%.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f %.6f", v[0].X, v[0].Y, v[0].Z, v[1].X, v[1].Y, v[1].Z, v[2].X, v[2].Y, v[2].Z)
}
