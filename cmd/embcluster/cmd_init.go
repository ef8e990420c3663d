/*
 * cmd_init.go, part of embcluster.
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

package main

import (
	"fmt"
	"os"

	"github.com/rmera/embcluster/config"
	"github.com/spf13/cobra"
)

func runInit(cmd *cobra.Command, args []string) error {
	name := configFile
	if len(args) == 1 {
		name = args[0]
	}
	if _, err := os.Stat(name); err == nil {
		return fmt.Errorf("%s already exists", name)
	}
	C := config.Default()
	C.Structure.File = "structure.xyz"
	C.QCRadius = 2.5
	C.BRRadius = 4.0
	C.Output.Input = "cluster.inp"
	C.Output.Report = true
	if err := C.Save(name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
	return nil
}
