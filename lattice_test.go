/*
 * lattice_test.go, part of embcluster.
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
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLatticeParameters(Te *testing.T) {
	L, err := LatticeFromParameters(3, 4, 5, 90, 90, 90)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(L.Volume()-60) > 1e-9 {
		Te.Errorf("Wrong volume %v", L.Volume())
	}
	s := L.PlaneSpacings()
	if math.Abs(s[0]-3) > 1e-9 || math.Abs(s[1]-4) > 1e-9 || math.Abs(s[2]-5) > 1e-9 {
		Te.Errorf("Wrong plane spacings %v", s)
	}
	if math.Abs(L.MinImageRadius()-1.5) > 1e-9 {
		Te.Errorf("Wrong minimum image radius %v", L.MinImageRadius())
	}
	H, err := LatticeFromParameters(3, 3, 5, 90, 90, 120)
	if err != nil {
		Te.Fatal(err)
	}
	b := H.Vectors()[1]
	if math.Abs(r3.Norm(b)-3) > 1e-9 || math.Abs(b.X+1.5) > 1e-9 {
		Te.Errorf("Wrong b vector %v", b)
	}
	if _, err := LatticeFromParameters(1, 1, 1, 10, 10, 150); err == nil {
		Te.Error("Impossible angles should be rejected")
	}
	if _, err := NewLattice(r3.Vec{X: 1}, r3.Vec{X: 2}, r3.Vec{Z: 1}); err == nil {
		Te.Error("Coplanar vectors should be rejected")
	}
}

func TestMinimumImage(Te *testing.T) {
	L, _ := LatticeFromParameters(4, 4, 4, 90, 90, 90)
	d := L.MinimumImage(r3.Vec{X: 3.5, Y: -3.9, Z: 0.2})
	if math.Abs(d.X+0.5) > 1e-9 || math.Abs(d.Y-0.1) > 1e-9 || math.Abs(d.Z-0.2) > 1e-9 {
		Te.Errorf("Wrong minimum image %v", d)
	}
	H, _ := LatticeFromParameters(3, 3, 5, 90, 90, 120)
	p := r3.Vec{X: 0.3, Y: 1.1, Z: -2.2}
	back := H.Cartesian(H.Fractional(p))
	if r3.Norm(r3.Sub(p, back)) > 1e-9 {
		Te.Errorf("Fractional round trip failed: %v vs %v", p, back)
	}
}
