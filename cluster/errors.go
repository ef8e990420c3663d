/*
 * errors.go, part of embcluster.
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

//errDecorate is a helper function that asserts that the error is
//implements chem.Error and decorates the error with the caller's name before returning it.
//if used with a non-chem.Error error, it will just return the error..
func errDecorate(err error, caller string) error {
	err2, ok := err.(chem.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

type deco []string

//Decorate Adds new information to the error
func (d *deco) Decorate(s string) []string {
	if s != "" {
		*d = append(*d, s)
	}
	return *d
}

//Critical returns true. Every error of the package aborts the
//construction of the cluster.
func (d *deco) Critical() bool { return true }

//PartitionError is returned for an invalid central site, invalid radii or shell
//counts, or a region layout that can't be capped.
type PartitionError struct {
	Msg   string
	Atoms []int //indexes in the source structure, if any
	deco
}

func (err *PartitionError) Error() string {
	if len(err.Atoms) == 0 {
		return "partition: " + err.Msg
	}
	return fmt.Sprintf("partition: %s (atoms %v)", err.Msg, err.Atoms)
}

func newPartitionError(caller string, atoms []int, format string, args ...interface{}) *PartitionError {
	return &PartitionError{Msg: fmt.Sprintf(format, args...), Atoms: atoms, deco: deco{caller}}
}

//GeometryError is returned for overlapping atoms, or atoms for which the
//geometry can't be analyzed.
type GeometryError struct {
	Msg     string
	Atoms   []int //indexes in the source structure
	Element string
	deco
}

func (err *GeometryError) Error() string {
	if err.Element != "" {
		return fmt.Sprintf("geometry: %s (element %s)", err.Msg, err.Element)
	}
	return fmt.Sprintf("geometry: %s (atoms %v)", err.Msg, err.Atoms)
}

//MissingECPError is returned when the ECP table has no entry for an element in the
//border region, or no cap distance for a severed bond.
type MissingECPError struct {
	Element string
	Pair    string //the QC-BR element pair missing a cap distance, if that is the problem
	deco
}

func (err *MissingECPError) Error() string {
	if err.Pair != "" {
		return fmt.Sprintf("missing ECP: no cap bond length for the %s pair, nor a bond_length in the ECP entry for %s", err.Pair, err.Element)
	}
	return fmt.Sprintf("missing ECP: no ECP parameters for element %s", err.Element)
}

//ChargeBalanceError is returned when the charges of the cluster can't be made
//to add up to the target charge.
type ChargeBalanceError struct {
	Msg       string
	Imbalance float64 //target minus the uncorrected sum of charges
	Element   string  //set if the problem is an element with no formal charge
	deco
}

func (err *ChargeBalanceError) Error() string {
	return fmt.Sprintf("charge balance: %s (imbalance %.6f)", err.Msg, err.Imbalance)
}

//PanicMsg is used for panics due to broken internal invariants.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

var (
	_ chem.Error = &PartitionError{}
	_ chem.Error = &GeometryError{}
	_ chem.Error = &MissingECPError{}
	_ chem.Error = &ChargeBalanceError{}
)
