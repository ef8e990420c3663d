/*
 * plot_test.go, part of embcluster.
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
	"github.com/rmera/embcluster/ecp"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

func chainCluster(Te *testing.T) *cluster.Cluster {
	atoms := make([]*chem.Atom, 9)
	vecs := make([]r3.Vec, 9)
	for i := range atoms {
		atoms[i] = &chem.Atom{Symbol: "Mg"}
		if i%2 != 0 {
			atoms[i].Symbol = "O"
		}
		vecs[i] = r3.Vec{X: 2 * float64(i)}
	}
	S, err := chem.NewStructure(atoms, v3.FromVecs(vecs), nil)
	if err != nil {
		Te.Fatal(err)
	}
	T := ecp.NewTable()
	T.Add("Mg", ecp.Params{Name: "SD(10,MWB)", BondLength: 1.3})
	opts := cluster.DefaultOptions()
	opts.CentralSite = 4
	opts.Policy = cluster.Policy{Kind: cluster.BondShells, QCShells: 1, BRShells: 2, PCCutoff: 100}
	opts.Bonds.Radii = map[string]float64{"Mg": 1.0, "O": 0.8}
	opts.TargetCharge = 2
	K, err := cluster.Build(S, opts, T)
	if err != nil {
		Te.Fatal(err)
	}
	return K
}

func TestRegionProfile(Te *testing.T) {
	K := chainCluster(Te)
	P, err := RegionProfile(K, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if P.Shells() != 9 {
		Te.Fatalf("Expected 9 shells, got %d", P.Shells())
	}
	expected := map[chem.Region][]float64{
		chem.QC: {1, 0, 2, 0, 0, 0, 0, 0, 0},
		chem.BR: {0, 0, 0, 2, 2, 0, 0, 0, 0}, //caps at 3.3 A
		chem.PC: {0, 0, 0, 0, 0, 0, 2, 0, 2},
	}
	if !cmp.Equal(P.Counts, expected) {
		Te.Errorf("Wrong profile %v", P.Counts)
	}
	if _, err := RegionProfile(K, 0); err == nil {
		Te.Error("A zero shell width should be rejected")
	}
}

func TestPlots(Te *testing.T) {
	K := chainCluster(Te)
	dir := Te.TempDir()
	name := filepath.Join(dir, "profile.png")
	if err := SaveProfile(K, 0.5, "Chain profile", name); err != nil {
		Te.Fatal(err)
	}
	if info, err := os.Stat(name); err != nil || info.Size() == 0 {
		Te.Errorf("Profile plot not written: %v", err)
	}
	p, err := ChargePlot(K, "Charges")
	if err != nil {
		Te.Fatal(err)
	}
	if err := p.Save(300, 300, filepath.Join(dir, "charges.svg")); err != nil {
		Te.Error(err)
	}
}
