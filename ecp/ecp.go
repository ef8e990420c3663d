/*
 * ecp.go, part of embcluster.
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

//Package ecp keeps the effective core potential parameters used for the border
//region of embedded clusters: the ECP name per element, the symbol and charge
//of the caps, and the cap-atom distances.
package ecp

import (
	"fmt"
	"sort"
	"strings"
)

//Params are the ECP parameters for one element.
type Params struct {
	Name       string   `yaml:"name" validate:"required"`
	CapSymbol  string   `yaml:"cap_symbol,omitempty"`
	BondLength float64  `yaml:"bond_length,omitempty" validate:"gte=0"`
	CapCharge  *float64 `yaml:"cap_charge,omitempty"`
}

//Table maps element symbols to their ECP parameters, and element pairs
//to cap distances.
type Table struct {
	entries    map[string]Params
	capLengths map[string]float64
}

//NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Params), capLengths: make(map[string]float64)}
}

//PairKey returns the key for an unordered pair of elements, the two symbols
//in alphabetical order joined by a dash.
func PairKey(e1, e2 string) string {
	if e2 < e1 {
		e1, e2 = e2, e1
	}
	return e1 + "-" + e2
}

//ParsePair splits a key like "O-Zr" (in any order) into its two elements.
func ParsePair(key string) (string, string, error) {
	f := strings.Split(key, "-")
	if len(f) != 2 || f[0] == "" || f[1] == "" {
		return "", "", fmt.Errorf("invalid element pair %q, expected something like Zr-O", key)
	}
	return strings.TrimSpace(f[0]), strings.TrimSpace(f[1]), nil
}

//Add sets the parameters for element, replacing any previous ones.
func (T *Table) Add(element string, p Params) {
	T.entries[element] = p
}

//Get returns the parameters for element, and whether they are in the table.
//If the entry gives no cap symbol, the element itself is used.
func (T *Table) Get(element string) (Params, bool) {
	p, ok := T.entries[element]
	if ok && p.CapSymbol == "" {
		p.CapSymbol = element
	}
	return p, ok
}

//SetCapLength sets the cap distance for a pair of elements.
func (T *Table) SetCapLength(e1, e2 string, d float64) {
	T.capLengths[PairKey(e1, e2)] = d
}

//CapLength returns the distance from a QC atom of element qc to the cap standing
//for a border atom of element br. A value set for the pair takes precedence over
//the bond length of the ECP entry of br. The second value is false if neither is given.
func (T *Table) CapLength(qc, br string) (float64, bool) {
	if d, ok := T.capLengths[PairKey(qc, br)]; ok && d > 0 {
		return d, true
	}
	if p, ok := T.entries[br]; ok && p.BondLength > 0 {
		return p.BondLength, true
	}
	return 0, false
}

//Elements returns the elements in the table, sorted.
func (T *Table) Elements() []string {
	ret := make([]string, 0, len(T.entries))
	for k := range T.entries {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//Len returns the number of elements in the table.
func (T *Table) Len() int {
	return len(T.entries)
}

//Names returns the distinct ECP names in the table, sorted.
func (T *Table) Names() []string {
	seen := make(map[string]bool)
	ret := make([]string, 0, len(T.entries))
	for _, v := range T.entries {
		if !seen[v.Name] {
			seen[v.Name] = true
			ret = append(ret, v.Name)
		}
	}
	sort.Strings(ret)
	return ret
}
