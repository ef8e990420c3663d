/*
 * convert.go, part of embcluster.
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
	"fmt"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
	"github.com/rmera/embcluster/qm"
	"github.com/rmera/embcluster/sweep"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//CrystalConfig describes a crystal by its unit cell. Without a tile section the
//unit cell is used as a periodic structure. Angles left at 0 are taken as 90 degrees.
type CrystalConfig struct {
	A          float64      `yaml:"a" validate:"gt=0"`
	B          float64      `yaml:"b" validate:"gt=0"`
	C          float64      `yaml:"c" validate:"gt=0"`
	Alpha      float64      `yaml:"alpha,omitempty" validate:"gte=0,lt=180"`
	Beta       float64      `yaml:"beta,omitempty" validate:"gte=0,lt=180"`
	Gamma      float64      `yaml:"gamma,omitempty" validate:"gte=0,lt=180"`
	SpaceGroup string       `yaml:"space_group" validate:"required"` //Pearson symbol
	Fractional bool         `yaml:"fractional,omitempty"`
	Sites      []SiteConfig `yaml:"sites" validate:"required,min=1,dive"`
	Tile       *TileConfig  `yaml:"tile,omitempty"`
	Cuts       []CutConfig  `yaml:"cuts,omitempty" validate:"dive"`
}

//SiteConfig is one site of the unit cell.
type SiteConfig struct {
	Symbol   string     `yaml:"symbol" validate:"required"`
	Position [3]float64 `yaml:"position"`
	Charge   *float64   `yaml:"charge,omitempty"`
}

//TileConfig gives the half-open ranges of cells along each lattice vector.
type TileConfig struct {
	A [2]int `yaml:"a"`
	B [2]int `yaml:"b"`
	C [2]int `yaml:"c"`
}

//CutConfig is a plane removing the atoms in front of it when tiling.
type CutConfig struct {
	Point  [3]float64 `yaml:"point"`
	Normal [3]float64 `yaml:"normal"`
}

func vec(v [3]float64) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

func angle(a float64) float64 {
	if a == 0 {
		return 90
	}
	return a
}

//Crystal returns the crystal described in the configuration.
func (X *CrystalConfig) Crystal() (*chem.Crystal, error) {
	sites := make([]*chem.Atom, len(X.Sites))
	vecs := make([]r3.Vec, len(X.Sites))
	for i, s := range X.Sites {
		sites[i] = &chem.Atom{Symbol: s.Symbol, Name: s.Symbol}
		if s.Charge != nil {
			sites[i].Charge = *s.Charge
			sites[i].Charged = true
		}
		vecs[i] = vec(s.Position)
	}
	cr, err := chem.NewCrystal(X.A, X.B, X.C, angle(X.Alpha), angle(X.Beta), angle(X.Gamma), sites, v3.FromVecs(vecs), X.SpaceGroup)
	if err != nil {
		return nil, err
	}
	cr.Fractional = X.Fractional
	return cr, nil
}

//LoadStructure returns the structure described in the configuration: the xyz
//file, or the crystal, tiled and cut if asked for.
func (C *Config) LoadStructure() (*chem.Structure, error) {
	var S *chem.Structure
	var err error
	switch {
	case C.Crystal != nil:
		cr, cerr := C.Crystal.Crystal()
		if cerr != nil {
			return nil, cerr
		}
		if t := C.Crystal.Tile; t != nil {
			cuts := make([]chem.Cut, len(C.Crystal.Cuts))
			for i, c := range C.Crystal.Cuts {
				cuts[i] = chem.Cut{Point: vec(c.Point), Normal: vec(c.Normal)}
			}
			S, err = cr.Tile(chem.TileRange{A1: t.A[0], A2: t.A[1], B1: t.B[0], B2: t.B[1], C1: t.C[0], C2: t.C[1]}, cuts...)
		} else {
			S, err = cr.Cell()
		}
		if err != nil {
			return nil, err
		}
	case C.Structure.File != "":
		S, err = chem.XYZFileRead(C.Path(C.Structure.File))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("no structure in the configuration")
	}
	if len(C.Structure.Charges) != 0 {
		S.SetChargesBySymbol(C.Structure.Charges)
	}
	if C.Structure.Center {
		S.Center()
	}
	S.SetCharge(C.TargetCharge)
	S.SetMulti(C.Multiplicity)
	return S, nil
}

//Cluster returns the options for the cluster builder.
func (C *Config) Cluster() (*cluster.Options, error) {
	kind, err := cluster.ParsePolicyKind(C.Policy)
	if err != nil {
		return nil, err
	}
	opts := cluster.DefaultOptions()
	opts.CentralSite = C.CentralSite
	opts.CentralElement = C.CentralElement
	opts.Policy = cluster.Policy{
		Kind:     kind,
		QCRadius: C.QCRadius,
		BRRadius: C.BRRadius,
		QCShells: C.QCShells,
		BRShells: C.BRShells,
		PCCutoff: C.PCCutoff,
	}
	opts.TargetCharge = C.TargetCharge
	opts.Multiplicity = C.Multiplicity
	opts.MaxChargeCorrection = C.MaxChargeCorrection
	for k, v := range C.FormalCharges {
		opts.FormalCharges[k] = v
	}
	opts.Bonds = chem.DefaultBondOptions()
	opts.Bonds.Tolerance = C.BondTolerance
	opts.Bonds.MinDistance = C.MinDistance
	opts.Bonds.Radii = C.CovalentRadii
	opts.Tolerance = C.Tolerance
	return opts, nil
}

//Calc returns the settings of the QM calculation.
func (C *Config) Calc() *qm.Calc {
	o := C.Orca
	return &qm.Calc{
		Method:       o.Method,
		Basis:        o.Basis,
		RI:           o.RI,
		RIJ:          o.RIJ,
		HighBasis:    o.HighBasis,
		HBElements:   o.HBElements,
		HBCentral:    o.HBCentral,
		Dispersion:   o.Dispersion,
		Grid:         o.Grid,
		SCFTightness: o.SCFTightness,
		SCFConvHelp:  o.SCFConvHelp,
		Memory:       o.Memory,
		NCPU:         o.NCPU,
		Others:       o.Others,
	}
}

//OrcaWriter returns the ORCA input writer. The point charges go to a separate
//file if output.point_charges is set.
func (C *Config) OrcaWriter() *qm.OrcaWriter {
	return &qm.OrcaWriter{Calc: C.Calc(), PCFile: C.Output.PointCharges}
}

//SweepPoints returns the combinations of central sites and radii of the sweep
//section. It returns nil if there is no sweep section.
func (C *Config) SweepPoints() []sweep.Point {
	if C.Sweep == nil {
		return nil
	}
	sites, qc, br := C.Sweep.CentralSites, C.Sweep.QCRadii, C.Sweep.BRRadii
	if len(sites) == 0 {
		sites = []int{C.CentralSite}
	}
	if len(qc) == 0 {
		qc = []float64{C.QCRadius}
	}
	if len(br) == 0 {
		br = []float64{C.BRRadius}
	}
	return sweep.Grid(sites, qc, br)
}
