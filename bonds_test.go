/*
 * bonds_test.go, part of embcluster.
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
	"errors"
	"testing"

	v3 "github.com/rmera/embcluster/v3"
)

func TestAssignBonds(Te *testing.T) {
	//a water molecule and a far away Na
	atoms := []*Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}, {Symbol: "Na"}}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0.96, 0, 0, -0.24, 0.93, 0, 10, 10, 10})
	S, err := NewStructure(atoms, coords, nil)
	if err != nil {
		Te.Fatal(err)
	}
	B, err := AssignBonds(S.Coords, S, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if len(B.List) != 2 {
		Te.Fatalf("Expected 2 bonds, got %v", B.List)
	}
	if B.List[0].At1 != 0 || B.List[0].At2 != 1 || B.List[1].At2 != 2 {
		Te.Errorf("Bonds not sorted: %v", B.List)
	}
	if B.Degree(0) != 2 || B.Degree(3) != 0 || !B.Bonded(2, 0) || B.Bonded(1, 2) {
		Te.Error("Wrong adjacency")
	}
	if B.List[1].Cross(2) != 0 {
		Te.Error("Cross went the wrong way")
	}
	sub, err := AssignBonds(S.Coords, S, []int{1, 2, 3}, nil)
	if err != nil || len(sub.List) != 0 {
		Te.Errorf("No bonds expected without the O: %v %v", sub, err)
	}
}

func TestBondsHydrogenLimit(Te *testing.T) {
	//H between two O, closer to the first one.
	atoms := []*Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "O"}}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 1.0, 0, 0, 2.1, 0, 0})
	S, _ := NewStructure(atoms, coords, nil)
	B, err := AssignBonds(S.Coords, S, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if B.Degree(1) != 1 || !B.Bonded(0, 1) {
		Te.Errorf("H should keep only its shortest bond: %v", B.List)
	}
}

func TestBondsErrors(Te *testing.T) {
	atoms := []*Atom{{Symbol: "Mg"}, {Symbol: "O"}, {Symbol: "O"}}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 2.1, 0, 0, 2.15, 0, 0})
	S, _ := NewStructure(atoms, coords, nil)
	_, err := AssignBonds(S.Coords, S, nil, nil)
	var ov *OverlapError
	if !errors.As(err, &ov) || ov.At1 != 1 || ov.At2 != 2 {
		Te.Errorf("Expected an overlap between 1 and 2, got %v", err)
	}
	atoms = []*Atom{{Symbol: "Xx"}, {Symbol: "O"}}
	coords, _ = v3.NewMatrix([]float64{0, 0, 0, 2, 0, 0})
	S, _ = NewStructure(atoms, coords, nil)
	_, err = AssignBonds(S.Coords, S, nil, nil)
	var md *MissingDataError
	if !errors.As(err, &md) || md.Symbol != "Xx" {
		Te.Errorf("Expected a missing radius for Xx, got %v", err)
	}
	opts := DefaultBondOptions()
	opts.Radii = map[string]float64{"Xx": 1.0}
	if B, err := AssignBonds(S.Coords, S, nil, opts); err != nil || len(B.List) != 1 {
		Te.Errorf("Radius override not used: %v", err)
	}
}
