/*
 * interfaces.go, part of embcluster.
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
	"fmt"
	"strings"
)

// Atomer is the basic interface for a topology.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice in the Topology. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// AtomMultiCharger is Atomer but also gives a
// charge and multiplicity
type AtomMultiCharger interface {
	Atomer

	//Charge gets the total charge of the topology
	Charge() int

	//Multi returns the multiplicity of the topology
	Multi() int
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Adds the caller to the decoration slice and returns it. An empty string only returns the current slice.
}

//CError is the general error type for the chem package.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

func (err CError) Error() string { return err.msg }

//Decorate Adds new information to the error
func (err CError) Decorate(deco string) []string {
	//the receiver is not a pointer, but deco is a slice, so the caller still sees the append
	//as long as there is capacity. Callers should use the returned slice.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err CError) Critical() bool { return err.critical }

//Trace returns the decoration of the error, outermost caller last.
func (err CError) Trace() string { return strings.Join(err.deco, " <- ") }

func newCError(caller string, format string, args ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, args...), deco: []string{caller}, critical: true}
}

//errDecorate is a helper function that asserts that the error is
//implements chem.Error and decorates the error with the caller's name before returning it.
//if used with a non-chem.Error error, it will just return the error..
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//OverlapError is returned when two atoms are closer than the minimum
//distance allowed, usually a sign of duplicated sites in the input.
type OverlapError struct {
	At1, At2 int
	Dist     float64
	deco     []string
}

func (err *OverlapError) Error() string {
	return fmt.Sprintf("atoms %d and %d are only %.4f A apart", err.At1, err.At2, err.Dist)
}

//Decorate Adds new information to the error
func (err *OverlapError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//MissingDataError is returned when a tabulated property (covalent radius,
//atomic number, oxidation state) is not available for an element.
type MissingDataError struct {
	Symbol   string
	Property string
	deco     []string
}

func (err *MissingDataError) Error() string {
	return fmt.Sprintf("no %s available for element %q", err.Property, err.Symbol)
}

//Decorate Adds new information to the error
func (err *MissingDataError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
