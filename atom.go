/*
 * atom.go, part of embcluster.
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

//Region is the part of an embedded cluster an atom belongs to.
type Region int

const (
	Unassigned Region = iota
	QC                //treated at full quantum-chemical level
	BR                //border: capped effective core potentials
	PC                //point charges
)

var regionNames = map[Region]string{
	Unassigned: "unassigned",
	QC:         "QC",
	BR:         "BR",
	PC:         "PC",
}

func (R Region) String() string {
	s, ok := regionNames[R]
	if !ok {
		return fmt.Sprintf("Region(%d)", int(R))
	}
	return s
}

//ParseRegion returns the Region named by s (case insensitive).
func ParseRegion(s string) (Region, error) {
	for k, v := range regionNames {
		if k != Unassigned && strings.EqualFold(v, s) {
			return k, nil
		}
	}
	return Unassigned, fmt.Errorf("unknown region %q", s)
}

//CapRef is the payload of a cap atom. It references, by index in the source
//structure, the real border atom it stands on and the QC atom whose bond was
//severed, plus the name of the ECP it carries.
type CapRef struct {
	BR  int
	QC  int
	ECP string
}

//Atom contains the information of an atom except for its coordinates, which
//are kept in a v3.Matrix.
type Atom struct {
	Name    string
	ID      int //1-based, as in the input file.
	Tag     int //Just added this for something that someone might want to keep that is not a float.
	Symbol  string
	Charge  float64
	Charged bool //was the charge given in the input?
	Region  Region
	ECP     string  //ECP name for border atoms and caps
	Cap     *CapRef //non-nil only for caps
	index   int
}

//Copy puts in the receiver a copy of B.
func (A *Atom) Copy(B *Atom) {
	if A == nil || B == nil {
		panic("Attempted to copy from or to a nil atom")
	}
	A.Name = B.Name
	A.ID = B.ID
	A.Tag = B.Tag
	A.Symbol = B.Symbol
	A.Charge = B.Charge
	A.Charged = B.Charged
	A.Region = B.Region
	A.ECP = B.ECP
	A.index = B.index
	A.Cap = nil
	if B.Cap != nil {
		c := *B.Cap
		A.Cap = &c
	}
}

//Index returns the position of the atom in the structure it was
//read or built in.
func (A *Atom) Index() int {
	return A.index
}

//SetIndex sets the index of the atom.
func (A *Atom) SetIndex(i int) {
	A.index = i
}

//IsCap returns true if the atom is a cap inserted at a severed bond.
func (A *Atom) IsCap() bool {
	return A.Cap != nil
}

func (A *Atom) String() string {
	cap := ""
	if A.Cap != nil {
		cap = fmt.Sprintf(" cap(BR %d, QC %d)", A.Cap.BR, A.Cap.QC)
	}
	return fmt.Sprintf("%s %d %s q=%.4f%s", A.Symbol, A.index, A.Region, A.Charge, cap)
}
