/*
 * main.go, part of embcluster.
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

//embcluster builds embedded cluster models for X-ray spectroscopy calculations
//and writes the ORCA inputs for them.
package main

import (
	"fmt"
	"os"

	"github.com/rmera/embcluster/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configFile string
	outDir     string
)

var rootCmd = &cobra.Command{
	Use:   "embcluster",
	Short: "Embedded cluster models for X-ray spectroscopy",
	Long: `embcluster cuts a cluster around an absorption site from a periodic or
molecular structure. The cluster has a quantum-chemical (QC) region, a border
(BR) of capped effective core potentials, and a point-charge (PC) region, with
charges balanced to the target total charge.`,
	SilenceUsage: true,
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build one cluster and write its ORCA input",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Build clusters for every combination in the sweep section",
	Long: `Builds, in parallel, one cluster per combination of the central sites and
radii listed in the sweep section of the configuration. Each successful run
writes its outputs to its own directory under sweep.output_dir.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a configuration file with the default values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "embcluster.yaml", "configuration file")
	buildCmd.Flags().StringVarP(&outDir, "output", "o", "", "directory for the outputs (default: that of the configuration)")
	rootCmd.AddCommand(buildCmd, sweepCmd, initCmd)
}

//newLogger builds the logger for the configuration. --verbose always
//means debug level.
func newLogger(c config.LoggingConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

//load reads the configuration and builds the logger for it.
func load() (*config.Config, *zap.Logger, error) {
	C, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := newLogger(C.Logging)
	if err != nil {
		return nil, nil, err
	}
	return C, logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
