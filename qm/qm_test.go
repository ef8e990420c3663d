/*
 * qm_test.go, part of embcluster.
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

package qm

import (
	"bytes"
	"strings"
	"testing"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
	"github.com/rmera/embcluster/ecp"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//chainCluster builds the cluster of a 9-atom MgO chain around its central Mg:
//3 QC atoms, 2 BR atoms with one cap each, and 4 point charges.
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

func countPrefix(text, prefix string) int {
	n := 0
	for _, l := range strings.Split(text, "\n") {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestOrcaInline(Te *testing.T) {
	K := chainCluster(Te)
	O := NewOrcaWriter()
	O.Calc.Method = "B3LYP"
	O.Calc.Basis = "def2-SVP"
	O.Calc.HighBasis = "def2-TZVP"
	O.Calc.HBCentral = true
	var b bytes.Buffer
	if err := O.WriteInput(&b, K); err != nil {
		Te.Fatal(err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "! RKS B3LYP def2-SVP def2-SVP/J TightSCF D3ZERO RI\n") {
		Te.Errorf("Wrong main line in:\n%s", out)
	}
	if !strings.Contains(out, "* xyz -2 1\n") {
		Te.Errorf("Wrong charge and multiplicity in:\n%s", out)
	}
	if n := countPrefix(out, "Mg>"); n != 4 {
		Te.Errorf("Expected 4 embedding ECP atoms (2 BR + 2 caps), got %d", n)
	}
	if n := countPrefix(out, "Q "); n != 4 {
		Te.Errorf("Expected 4 point charges, got %d", n)
	}
	if n := countPrefix(out, "O "); n != 2 {
		Te.Errorf("Expected 2 QC O atoms, got %d", n)
	}
	if !strings.Contains(out, "NewECP \"SD(10,MWB)\" end") || !strings.Contains(out, "newgto \"def2-TZVP\" end") {
		Te.Errorf("ECP or central basis missing:\n%s", out)
	}
	if strings.Contains(out, "%pointcharges") {
		Te.Error("Inline point charges should not reference a file")
	}
}

func TestOrcaDefaults(Te *testing.T) {
	K := chainCluster(Te)
	O := &OrcaWriter{}
	var b bytes.Buffer
	if err := O.WriteInput(&b, K); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "! RKS PBE0 def2-TZVP def2-TZVP/J TightSCF D3ZERO RI\n") {
		Te.Errorf("Wrong default main line in:\n%s", b.String())
	}
	if O.Calc != nil {
		Te.Error("Writing an input should not change the writer")
	}
}

func TestOrcaPCFile(Te *testing.T) {
	K := chainCluster(Te)
	O := NewOrcaWriter()
	O.PCFile = "cluster.pc"
	O.Calc.RIJ = true
	var b bytes.Buffer
	if err := O.WriteInput(&b, K); err == nil {
		Te.Error("RI and RIJ together should be an error")
	}
	O.Calc.RI = false
	O.Calc.NCPU = 16
	b.Reset()
	if err := O.WriteInput(&b, K); err != nil {
		Te.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "%pointcharges \"cluster.pc\"\n") || countPrefix(out, "Q ") != 0 {
		Te.Errorf("Point charges should go to the file:\n%s", out)
	}
	if !strings.Contains(out, "RIJCOSX") || !strings.Contains(out, "%pal nprocs 16") {
		Te.Errorf("Missing RIJCOSX or pal block:\n%s", out)
	}
	var pc bytes.Buffer
	if err := O.WritePointCharges(&pc, K); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(pc.String()), "\n")
	if len(lines) != 5 || lines[0] != "4" {
		Te.Errorf("Wrong point charge file:\n%s", pc.String())
	}
	if f := strings.Fields(lines[1]); len(f) != 4 || f[0] != "2.00000" {
		Te.Errorf("Wrong point charge line %q", lines[1])
	}
}

func TestXYZWriter(Te *testing.T) {
	K := chainCluster(Te)
	var b bytes.Buffer
	var w Writer = XYZWriter{}
	if err := w.WriteInput(&b, K); err != nil {
		Te.Fatal(err)
	}
	S, err := chem.XYZRead(&b)
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != K.Len() || !S.Charged() {
		Te.Errorf("Wrong charged XYZ: %d atoms", S.Len())
	}
	var sum float64
	for _, v := range S.Atoms {
		sum += v.Charge
	}
	if sum < 2-1e-3 || sum > 2+1e-3 {
		Te.Errorf("Charges in the XYZ file add up to %g", sum)
	}
}
