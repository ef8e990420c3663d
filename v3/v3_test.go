/*
 * v3_test.go, part of embcluster.
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

package v3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("expected an error for a slice not divisible by 3")
	}
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	view := A.VecView(1)
	view.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("changes in a VecView should be seen in the parent matrix")
	}
}

func TestSomeVecs(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18})
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	if err := B.SomeVecsSafe(A, cind); err != nil {
		Te.Fatal(err)
	}
	if B.Vec(2) != (r3.Vec{X: 16, Y: 17, Z: 18}) {
		Te.Errorf("wrong vector selected: %v", B.Vec(2))
	}
	if err := Zeros(2).SomeVecsSafe(A, cind); err == nil {
		Te.Error("expected a shape error")
	}
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	if A.At(3, 1) != 55 {
		Te.Errorf("SetVecs did not copy back, got %v", A.At(3, 1))
	}
}

func TestVecOps(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2})
	c := A.Centroid()
	if math.Abs(c.X-0.5) > appzero || math.Abs(c.Y-0.5) > appzero || math.Abs(c.Z-0.5) > appzero {
		Te.Errorf("wrong centroid %v", c)
	}
	B := Zeros(A.NVecs())
	B.SubVec(A, c)
	if B.Centroid() != (r3.Vec{}) {
		Te.Errorf("centered matrix should have a zero centroid, got %v", B.Centroid())
	}
	if d := A.Distance(1, 2); math.Abs(d-math.Sqrt(8)) > appzero {
		Te.Errorf("wrong distance %v", d)
	}
	u := Unit(r3.Vec{X: 3, Y: 4})
	if math.Abs(r3.Norm(u)-1) > appzero {
		Te.Errorf("Unit did not normalize: %v", u)
	}
	S := Zeros(A.NVecs() + B.NVecs())
	S.Stack(A, B)
	if S.Vec(4) != B.Vec(0) {
		Te.Error("Stack misplaced the second matrix")
	}
	C := A.Clone()
	C.SwapVecs(0, 1)
	if C.Vec(0) != A.Vec(1) || A.Vec(0) != (r3.Vec{}) {
		Te.Error("SwapVecs or Clone misbehaved")
	}
}
