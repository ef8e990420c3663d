/*
 * cmd_sweep.go, part of embcluster.
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
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rmera/embcluster/sweep"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runSweep(cmd *cobra.Command, args []string) error {
	C, logger, err := load()
	if err != nil {
		return err
	}
	defer logger.Sync()
	points := C.SweepPoints()
	if len(points) == 0 {
		return fmt.Errorf("nothing to sweep, the configuration has no valid sweep section")
	}
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
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sw := sweep.New(opts, T, C.Sweep.Workers)
	sw.SetLogger(logger)
	logger.Info("starting sweep", zap.Int("runs", len(points)))
	runs, err := sw.Run(ctx, S, points)
	if err != nil && err != context.Canceled {
		return err
	}
	base := C.Path(C.Sweep.OutputDir)
	if base == "" {
		base = C.Path(".")
	}
	out := cmd.OutOrStdout()
	for _, r := range runs {
		if r.Err != nil {
			fmt.Fprintf(out, "%3d %s site %d qc %.3f br %.3f: %v\n", r.Index, r.ID, r.Point.CentralSite, r.Point.QCRadius, r.Point.BRRadius, r.Err)
			continue
		}
		dir := filepath.Join(base, fmt.Sprintf("run-%03d-%s", r.Index, r.ID.String()[:8]))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		if err := writeOutputs(out, C, r.Cluster, dir, logger); err != nil {
			return err
		}
		fmt.Fprintf(out, "%3d %s site %d qc %.3f br %.3f: %d atoms in %s\n", r.Index, r.ID, r.Point.CentralSite, r.Point.QCRadius, r.Point.BRRadius, r.Cluster.Len(), dir)
	}
	if failed := sweep.Failed(runs); len(failed) > 0 {
		return fmt.Errorf("%d of %d runs failed", len(failed), len(runs))
	}
	return err
}
