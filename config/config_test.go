/*
 * config_test.go, part of embcluster.
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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mgo = `
crystal:
  a: 4.0
  b: 4.0
  c: 4.0
  space_group: cF
  fractional: true
  sites:
    - {symbol: Mg, position: [0, 0, 0]}
    - {symbol: Mg, position: [0, 0.5, 0.5]}
    - {symbol: Mg, position: [0.5, 0, 0.5]}
    - {symbol: Mg, position: [0.5, 0.5, 0]}
    - {symbol: O, position: [0.5, 0, 0]}
    - {symbol: O, position: [0, 0.5, 0]}
    - {symbol: O, position: [0, 0, 0.5]}
    - {symbol: O, position: [0.5, 0.5, 0.5]}
  tile: {a: [0, 3], b: [0, 3], c: [0, 3]}
central_element: Mg
qc_radius: 2.5
br_radius: 4.0
pc_cutoff: 5.0
target_charge: 10
ecps:
  Mg: {name: "SD(10,MWB)"}
  O: {name: O-ECP}
cap_bond_length:
  Mg-O: 1.3
covalent_radii: {Mg: 1.0, O: 0.8}
orca:
  method: PBE0
  basis: def2-SVP
output:
  input: cluster.inp
  point_charges: cluster.pc
sweep:
  qc_radii: [2.5]
  br_radii: [4.0, 4.5]
  workers: 2
logging:
  level: debug
`

func TestDefault(t *testing.T) {
	C := Default()
	assert.Equal(t, -1, C.CentralSite)
	assert.Equal(t, 1, C.Multiplicity)
	assert.Equal(t, 1.0, C.MaxChargeCorrection)
	assert.Equal(t, "info", C.Logging.Level)
	assert.Error(t, C.Validate(), "the defaults have no structure nor radii")
}

func TestReadAndBuild(t *testing.T) {
	C, err := Read(strings.NewReader(mgo))
	require.NoError(t, err)
	assert.Equal(t, "debug", C.Logging.Level)
	assert.Equal(t, "console", C.Logging.Format, "defaults survive a partial section")
	assert.True(t, C.Orca.RI)

	S, err := C.LoadStructure()
	require.NoError(t, err)
	assert.Equal(t, 216, S.Len())
	assert.False(t, S.Periodic())

	opts, err := C.Cluster()
	require.NoError(t, err)
	assert.Equal(t, cluster.Radial, opts.Policy.Kind)
	assert.Equal(t, 0.8, opts.Bonds.Radii["O"])
	assert.Equal(t, 0.45, opts.Bonds.Tolerance)

	T, err := C.ECP()
	require.NoError(t, err)
	d, ok := T.CapLength("O", "Mg")
	assert.True(t, ok)
	assert.Equal(t, 1.3, d)

	K, err := cluster.Build(S, opts, T)
	require.NoError(t, err)
	assert.Equal(t, 7, K.Count(chem.QC))
	assert.Equal(t, 30, K.NCaps())
	assert.Equal(t, 48, K.Count(chem.PC))
	assert.Equal(t, 0.0, K.Correction())

	O := C.OrcaWriter()
	assert.Equal(t, "cluster.pc", O.PCFile)
	assert.Equal(t, "def2-SVP", O.Calc.Basis)

	points := C.SweepPoints()
	require.Len(t, points, 2)
	assert.Equal(t, -1, points[0].CentralSite)
	assert.Equal(t, 4.5, points[1].BRRadius)
}

func TestInvalid(t *testing.T) {
	cases := map[string][2]string{
		"unknown policy":   {"qc_radius: 2.5", "qc_radius: 2.5\npolicy: spheres"},
		"two structures":   {"qc_radius: 2.5", "qc_radius: 2.5\nstructure: {file: a.xyz}"},
		"negative charges": {"qc_radius: 2.5", "qc_radius: 2.5\nmax_charge_correction: -1"},
		"bad radii":        {"br_radius: 4.0", "br_radius: 2.0"},
		"unknown key":      {"qc_radius: 2.5", "qc_radious: 2.5"},
		"ri and rijcosx":   {"  basis: def2-SVP", "  basis: def2-SVP\n  rijcosx: true"},
		"bad cap length":   {"Mg-O: 1.3", "Mg-O: -1.3"},
		"zero min dist":    {"qc_radius: 2.5", "qc_radius: 2.5\nmin_distance: 0"},
		"ecp_table list":   {"qc_radius: 2.5", "qc_radius: 2.5\necp_table: [a.yaml, b.yaml]"},
		"ecp with no name": {"qc_radius: 2.5", "qc_radius: 2.5\necp_table:\n  Zr: {bond_length: 2.1}"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(strings.Replace(mgo, c[0], c[1], 1)))
			assert.Error(t, err)
		})
	}
	_, err := Read(strings.NewReader(mgo + "policy: spheres\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Policy must be one of")
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	ecpfile := filepath.Join(dir, "ecp.yaml")
	require.NoError(t, os.WriteFile(ecpfile, []byte("ecps:\n  Zr:\n    name: SD(28,MWB)\n    bond_length: 2.1\n"), 0644))
	C, err := Read(strings.NewReader(mgo + "ecp_table: ecp.yaml\n"))
	require.NoError(t, err)
	name := filepath.Join(dir, "embcluster.yaml")
	require.NoError(t, C.Save(name))

	L, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, C.Crystal, L.Crystal)
	assert.Equal(t, C.QCRadius, L.QCRadius)
	assert.Equal(t, C.ECPs, L.ECPs)
	assert.Equal(t, "ecp.yaml", L.ECPTable.File)
	assert.Equal(t, C.Sweep, L.Sweep)
	assert.Equal(t, filepath.Join(dir, "cluster.inp"), L.Path(L.Output.Input))

	T, err := L.ECP()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mg", "O", "Zr"}, T.Elements())
	if _, err := C.ECP(); err == nil {
		t.Error("the ecp table should not be found from the working directory")
	}
}

func TestECPTableMapping(t *testing.T) {
	text := strings.Replace(mgo, "ecps:", "ecp_table:", 1)
	C, err := Read(strings.NewReader(text))
	require.NoError(t, err)
	assert.Empty(t, C.ECPTable.File)
	require.Len(t, C.ECPTable.Entries, 2)
	assert.Equal(t, "SD(10,MWB)", C.ECPTable.Entries["Mg"].Name)

	T, err := C.ECP()
	require.NoError(t, err)
	assert.Equal(t, []string{"Mg", "O"}, T.Elements())
	d, ok := T.CapLength("O", "Mg")
	assert.True(t, ok)
	assert.Equal(t, 1.3, d)

	name := filepath.Join(t.TempDir(), "embcluster.yaml")
	require.NoError(t, C.Save(name))
	L, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, C.ECPTable, L.ECPTable)

	//ecps entries go on top of the ecp_table ones.
	C, err = Read(strings.NewReader(text + "ecps:\n  Mg: {name: Mg-small}\n"))
	require.NoError(t, err)
	T, err = C.ECP()
	require.NoError(t, err)
	p, _ := T.Get("Mg")
	assert.Equal(t, "Mg-small", p.Name)
}
