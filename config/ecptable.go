/*
 * ecptable.go, part of embcluster.
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

	"github.com/rmera/embcluster/ecp"
	"gopkg.in/yaml.v3"
)

//ECPTable is the value of the ecp_table key: the name of an ECP table file,
//or the table itself, as a mapping from element to ECP parameters.
type ECPTable struct {
	File    string
	Entries map[string]ecp.Params `validate:"omitempty,dive"`
}

//UnmarshalYAML takes a scalar as a file name and a mapping as the table entries.
func (E *ECPTable) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		E.Entries = nil
		return node.Decode(&E.File)
	case yaml.MappingNode:
		E.File = ""
		E.Entries = make(map[string]ecp.Params)
		return node.Decode(&E.Entries)
	}
	return fmt.Errorf("line %d: ecp_table must be a file name or a mapping from elements to ECP parameters", node.Line)
}

//MarshalYAML writes the table back in the form it was read.
func (E ECPTable) MarshalYAML() (interface{}, error) {
	if len(E.Entries) != 0 {
		return E.Entries, nil
	}
	return E.File, nil
}

//IsZero is true if neither a file nor entries are given, so the key is
//left out when writing.
func (E ECPTable) IsZero() bool {
	return E.File == "" && len(E.Entries) == 0
}
