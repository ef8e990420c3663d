/*
 * ecp_test.go, part of embcluster.
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

package ecp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const zirconia = `
ecps:
  Zr:
    name: SD(28,MWB)
    bond_length: 2.2
  Y:
    name: SD(28,MWB)
    cap_symbol: Y
    cap_charge: 0.5
cap_bond_length:
  Zr-O: 2.1
`

func TestRead(Te *testing.T) {
	T, err := Read(strings.NewReader(zirconia))
	if err != nil {
		Te.Fatal(err)
	}
	if !cmp.Equal(T.Elements(), []string{"Y", "Zr"}) {
		Te.Errorf("Wrong elements %v", T.Elements())
	}
	p, ok := T.Get("Zr")
	if !ok || p.CapSymbol != "Zr" || p.Name != "SD(28,MWB)" {
		Te.Errorf("Wrong Zr entry %+v", p)
	}
	if y, _ := T.Get("Y"); y.CapCharge == nil || *y.CapCharge != 0.5 {
		Te.Errorf("Cap charge not read: %+v", y)
	}
	if d, ok := T.CapLength("O", "Zr"); !ok || d != 2.1 {
		Te.Errorf("Pair length not used: %v", d)
	}
	if d, ok := T.CapLength("F", "Zr"); !ok || d != 2.2 {
		Te.Errorf("Entry bond length not used: %v", d)
	}
	if _, ok := T.CapLength("O", "Y"); ok {
		Te.Error("No length should be available for O-Y")
	}
	if len(T.Names()) != 1 {
		Te.Errorf("Expected one distinct ECP name, got %v", T.Names())
	}
}

func TestReadInvalid(Te *testing.T) {
	if _, err := Read(strings.NewReader("ecps:\n  Zr:\n    bond_length: 2\n")); err == nil {
		Te.Error("An entry with no ECP name should be rejected")
	}
	if _, err := Read(strings.NewReader("ecps: {}\ncap_bond_length:\n  ZrO: 2\n")); err == nil {
		Te.Error("A malformed pair should be rejected")
	}
}

func TestWriteRead(Te *testing.T) {
	T, err := Read(strings.NewReader(zirconia))
	if err != nil {
		Te.Fatal(err)
	}
	var b bytes.Buffer
	if err := T.Write(&b); err != nil {
		Te.Fatal(err)
	}
	T2, err := Read(&b)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(T.ToFile(), T2.ToFile()); diff != "" {
		Te.Errorf("Table changed after writing and reading (-want +got):\n%s", diff)
	}
}
