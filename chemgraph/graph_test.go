/*
 * graph_test.go, part of embcluster.
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

package chemgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/embcluster"
	v3 "github.com/rmera/embcluster/v3"
)

//a chain O-Si-O-Si-O plus a lone Na
func chain(Te *testing.T) *Topology {
	atoms := []*chem.Atom{{Symbol: "O"}, {Symbol: "Si"}, {Symbol: "O"}, {Symbol: "Si"}, {Symbol: "O"}, {Symbol: "Na"}}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 1.6, 0, 0, 3.2, 0, 0, 4.8, 0, 0, 6.4, 0, 0, 20, 20, 20})
	S, err := chem.NewStructure(atoms, coords, nil)
	if err != nil {
		Te.Fatal(err)
	}
	B, err := chem.AssignBonds(S.Coords, S, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	return FromBonds(S.Len(), B)
}

func TestShells(Te *testing.T) {
	T := chain(Te)
	d := T.Shells(2, -1)
	want := map[int]int{2: 0, 1: 1, 3: 1, 0: 2, 4: 2}
	if !cmp.Equal(d, want) {
		Te.Errorf("Wrong shells %v", d)
	}
	d = T.Shells(2, 1)
	if !cmp.Equal(d, map[int]int{2: 0, 1: 1, 3: 1}) {
		Te.Errorf("Depth limit ignored: %v", d)
	}
	if len(T.Shells(42, -1)) != 0 {
		Te.Error("Unknown origin should give no shells")
	}
}

func TestComponents(Te *testing.T) {
	T := chain(Te)
	c := T.Components()
	if !cmp.Equal(c, [][]int{{0, 1, 2, 3, 4}, {5}}) {
		Te.Errorf("Wrong components %v", c)
	}
	sub := T.Induced([]int{0, 1, 3, 4})
	if !cmp.Equal(sub.Components(), [][]int{{0, 1}, {3, 4}}) {
		Te.Errorf("Wrong induced components %v", sub.Components())
	}
}
