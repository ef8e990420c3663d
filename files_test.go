/*
 * files_test.go, part of embcluster.
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
	"path/filepath"
	"strings"
	"testing"
)

const chargedXYZ = `3
Lattice="4.2 0 0 0 4.2 0 0 0 4.2" rock salt fragment
Mg   0.0 0.0 0.0  2.0
O    2.1 0.0 0.0 -2.0
O    0.0 2.1 0.0 -2.0
`

func TestXYZRead(Te *testing.T) {
	S, err := XYZRead(strings.NewReader(chargedXYZ))
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 3 || !S.Periodic() || !S.Charged() {
		Te.Fatalf("Wrong structure: %d atoms, periodic %v charged %v", S.Len(), S.Periodic(), S.Charged())
	}
	if S.Atoms[1].Charge != -2 || S.Atoms[1].Index() != 1 || S.Atoms[1].ID != 2 {
		Te.Errorf("Wrong atom %v", S.Atoms[1])
	}
	if math.Abs(S.Lattice.Volume()-4.2*4.2*4.2) > 1e-9 {
		Te.Errorf("Wrong lattice %v", S.Lattice)
	}
	bare, err := XYZRead(strings.NewReader("Na 0 0 0\nCl 2.8 0 0\n"))
	if err != nil {
		Te.Fatal(err)
	}
	if bare.Len() != 2 || bare.Periodic() || bare.Charged() {
		Te.Error("Headerless file read wrongly")
	}
	if _, err := XYZRead(strings.NewReader("2\n\nNa 0 0 0 1\nCl 2.8 0 0\n")); err == nil {
		Te.Error("Partial charge column should be an error")
	}
	if _, err := XYZRead(strings.NewReader("3\n\nNa 0 0 0\n")); err == nil {
		Te.Error("Missing atoms should be an error")
	}
}

func TestXYZWriteCompressed(Te *testing.T) {
	S, err := XYZRead(strings.NewReader(chargedXYZ))
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, name := range []string{"plain.xyz", "gz.xyz.gz", "zst.xyz.zst"} {
		p := filepath.Join(dir, name)
		if err := XYZFileWrite(p, S); err != nil {
			Te.Fatal(err)
		}
		S2, err := XYZFileRead(p)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if S2.Len() != S.Len() || S2.Atoms[2].Charge != -2 || !S2.Periodic() {
			Te.Errorf("%s was not written and read back correctly", name)
		}
		if S2.Coords.Distance(0, 1) != S.Coords.Distance(0, 1) {
			Te.Errorf("%s: coordinates changed", name)
		}
	}
}

func TestNearestToCentroid(Te *testing.T) {
	S, _ := XYZRead(strings.NewReader("Na 0 0 0\nCl 2 0 0\nNa 4 0 0\nCl 6 0 0\n"))
	if i := S.NearestToCentroid(""); i != 1 {
		Te.Errorf("Expected atom 1 (tie broken by index), got %d", i)
	}
	if i := S.NearestToCentroid("Na"); i != 2 {
		Te.Errorf("Expected Na 2, got %d", i)
	}
	if i := S.NearestToCentroid("K"); i != -1 {
		Te.Errorf("Expected -1, got %d", i)
	}
}
