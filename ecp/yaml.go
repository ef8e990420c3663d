/*
 * yaml.go, part of embcluster.
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

package ecp

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//File is the on-disk form of a Table.
type File struct {
	ECPs          map[string]Params  `yaml:"ecps" validate:"dive"`
	CapBondLength map[string]float64 `yaml:"cap_bond_length,omitempty"`
}

var validate = validator.New()

//FromMaps builds a table from per-element parameters and per-pair cap distances,
//with pair keys like "Zr-O". It returns an error for invalid entries.
func FromMaps(ecps map[string]Params, capLengths map[string]float64) (*Table, error) {
	T := NewTable()
	for el, p := range ecps {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("ecp entry for %s: %w", el, err)
		}
		T.Add(el, p)
	}
	for k, d := range capLengths {
		e1, e2, err := ParsePair(k)
		if err != nil {
			return nil, err
		}
		if d <= 0 {
			return nil, fmt.Errorf("cap bond length for %s must be positive, got %g", k, d)
		}
		T.SetCapLength(e1, e2, d)
	}
	return T, nil
}

//Read reads a table in YAML format from r.
func Read(r io.Reader) (*Table, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("reading ecp table: %w", err)
	}
	return FromMaps(f.ECPs, f.CapBondLength)
}

//ReadFile reads a table in YAML format from the file name.
func ReadFile(name string) (*Table, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	T, err := Read(fin)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return T, nil
}

//ToFile returns the table in its on-disk form.
func (T *Table) ToFile() File {
	f := File{ECPs: make(map[string]Params, len(T.entries)), CapBondLength: make(map[string]float64, len(T.capLengths))}
	for k, v := range T.entries {
		f.ECPs[k] = v
	}
	for k, v := range T.capLengths {
		f.CapBondLength[k] = v
	}
	return f
}

//Write writes the table in YAML format to w.
func (T *Table) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(T.ToFile()); err != nil {
		return err
	}
	return enc.Close()
}
