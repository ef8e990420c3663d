/*
 * cmd_build.go, part of embcluster.
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
	"io"
	"path/filepath"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/chemplot"
	"github.com/rmera/embcluster/cluster"
	"github.com/rmera/embcluster/config"
	"github.com/rmera/embcluster/qm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runBuild(cmd *cobra.Command, args []string) error {
	C, logger, err := load()
	if err != nil {
		return err
	}
	defer logger.Sync()
	S, err := C.LoadStructure()
	if err != nil {
		return err
	}
	opts, err := C.Cluster()
	if err != nil {
		return err
	}
	T, err := C.ECP()
	if err != nil {
		return err
	}
	logger.Info("structure loaded", zap.Int("atoms", S.Len()), zap.Bool("periodic", S.Periodic()), zap.Strings("elements", S.Symbols()))
	b := cluster.NewBuilder(opts, T)
	b.SetLogger(logger)
	K, err := b.Build(S)
	if err != nil {
		logger.Error("could not build the cluster", zap.Error(err))
		return err
	}
	dir := outDir
	if dir == "" {
		dir = C.Path(".")
	}
	return writeOutputs(cmd.OutOrStdout(), C, K, dir, logger)
}

//writeOutputs writes the files set in the output section of C for the
//cluster K, in the directory dir.
func writeOutputs(stdout io.Writer, C *config.Config, K *cluster.Cluster, dir string, logger *zap.Logger) error {
	o := C.Output
	path := func(name string) string {
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}
	write := func(name string, fn func(io.Writer) error) error {
		if name == "" {
			return nil
		}
		f, err := chem.CreateFile(path(name))
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Debug("wrote output", zap.String("file", path(name)))
		return nil
	}
	O := C.OrcaWriter()
	O.PCFile = filepath.Base(o.PointCharges)
	if o.PointCharges == "" {
		O.PCFile = ""
	}
	if err := write(o.Input, func(w io.Writer) error { return O.WriteInput(w, K) }); err != nil {
		return err
	}
	if err := write(o.PointCharges, func(w io.Writer) error { return O.WritePointCharges(w, K) }); err != nil {
		return err
	}
	if err := write(o.XYZ, func(w io.Writer) error { return qm.XYZWriter{}.WriteInput(w, K) }); err != nil {
		return err
	}
	if o.Plot != "" {
		if err := chemplot.SaveProfile(K, o.PlotWidth, "Regions around the central site", path(o.Plot)); err != nil {
			return fmt.Errorf("writing %s: %w", o.Plot, err)
		}
	}
	if o.Report {
		return cluster.NewReport(K).Write(stdout)
	}
	return nil
}
