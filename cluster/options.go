/*
 * options.go, part of embcluster.
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

package cluster

import (
	"fmt"

	chem "github.com/rmera/embcluster"
)

//PolicyKind selects how atoms are assigned to regions.
type PolicyKind int

const (
	Radial     PolicyKind = iota //by distance to the central site
	BondShells                   //by number of bonds from the central site
)

func (P PolicyKind) String() string {
	switch P {
	case Radial:
		return "radial"
	case BondShells:
		return "bond_shells"
	}
	return fmt.Sprintf("PolicyKind(%d)", int(P))
}

//ParsePolicyKind returns the policy named s.
func ParsePolicyKind(s string) (PolicyKind, error) {
	switch s {
	case "radial", "":
		return Radial, nil
	case "bond_shells", "shells":
		return BondShells, nil
	}
	return Radial, fmt.Errorf("unknown partition policy %q", s)
}

//Policy are the region boundaries. Radial uses QCRadius and BRRadius, BondShells
//uses QCShells and BRShells. Both drop atoms beyond PCCutoff (all in A).
type Policy struct {
	Kind     PolicyKind
	QCRadius float64
	BRRadius float64
	QCShells int
	BRShells int
	PCCutoff float64
}

func (P Policy) validate() error {
	switch P.Kind {
	case Radial:
		if P.QCRadius <= 0 {
			return newPartitionError("Policy.validate", nil, "qc_radius must be positive, got %g", P.QCRadius)
		}
		if P.BRRadius <= P.QCRadius {
			return newPartitionError("Policy.validate", nil, "br_radius (%g) must be larger than qc_radius (%g)", P.BRRadius, P.QCRadius)
		}
		if P.PCCutoff <= P.BRRadius {
			return newPartitionError("Policy.validate", nil, "pc_cutoff (%g) must be larger than br_radius (%g)", P.PCCutoff, P.BRRadius)
		}
	case BondShells:
		if P.QCShells < 0 {
			return newPartitionError("Policy.validate", nil, "qc_shells can't be negative, got %d", P.QCShells)
		}
		if P.BRShells <= P.QCShells {
			return newPartitionError("Policy.validate", nil, "br_shells (%d) must be larger than qc_shells (%d)", P.BRShells, P.QCShells)
		}
		if P.PCCutoff <= 0 {
			return newPartitionError("Policy.validate", nil, "pc_cutoff must be positive, got %g", P.PCCutoff)
		}
	default:
		return newPartitionError("Policy.validate", nil, "unknown policy %v", P.Kind)
	}
	return nil
}

//Options controls the construction of a cluster.
type Options struct {
	CentralSite    int    //index in the source structure, -1 for the atom nearest to the centroid
	CentralElement string //with CentralSite -1, only atoms of this element are considered
	Policy         Policy

	TargetCharge        int     //total charge of the cluster, all regions included
	Multiplicity        int     //of the QC region
	MaxChargeCorrection float64 //largest total charge that may be spread over the PC region

	//Formal charges by element. They take precedence over the charges
	//given in the structure, which take precedence over the tabulated
	//oxidation states.
	FormalCharges map[string]float64

	Bonds     *chem.BondOptions
	Tolerance float64 //distances within this of a radius count as inside it
}

//DefaultOptions returns the options with the default values. The radii
//still need to be set.
func DefaultOptions() *Options {
	return &Options{
		CentralSite:         -1,
		Policy:              Policy{Kind: Radial},
		Multiplicity:        1,
		MaxChargeCorrection: 1.0,
		FormalCharges:       map[string]float64{},
		Bonds:               chem.DefaultBondOptions(),
		Tolerance:           1e-6,
	}
}

//Validate checks the options that don't depend on the structure.
func (O *Options) Validate() error {
	if err := O.Policy.validate(); err != nil {
		return errDecorate(err, "Options.Validate")
	}
	if O.CentralSite < -1 {
		return newPartitionError("Options.Validate", nil, "invalid central site %d", O.CentralSite)
	}
	if O.Multiplicity < 1 {
		return &ChargeBalanceError{Msg: fmt.Sprintf("multiplicity must be at least 1, got %d", O.Multiplicity), deco: deco{"Options.Validate"}}
	}
	if O.MaxChargeCorrection < 0 {
		return &ChargeBalanceError{Msg: "max_charge_correction can't be negative", deco: deco{"Options.Validate"}}
	}
	if O.Tolerance < 0 {
		return newPartitionError("Options.Validate", nil, "tolerance can't be negative")
	}
	return nil
}

func (O *Options) bondOptions() *chem.BondOptions {
	if O.Bonds == nil {
		return chem.DefaultBondOptions()
	}
	return O.Bonds
}
