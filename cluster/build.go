/*
 * build.go, part of embcluster.
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
	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/chemgraph"
	"github.com/rmera/embcluster/ecp"
	"go.uber.org/zap"
)

//Builder runs the whole construction of an embedded cluster: partition,
//boundary resolution, capping, charge balance and assembly.
//A Builder can be used for several structures, but not concurrently
//if its options are changed in between.
type Builder struct {
	opts   *Options
	table  *ecp.Table
	logger *zap.Logger
}

//NewBuilder returns a builder with the given options and ECP table. If opts is nil
//DefaultOptions is used, though the radii would still need to be set.
func NewBuilder(opts *Options, table *ecp.Table) *Builder {
	if opts == nil {
		opts = DefaultOptions()
	}
	if table == nil {
		table = ecp.NewTable()
	}
	return &Builder{opts: opts, table: table, logger: zap.NewNop()}
}

//SetLogger sets the logger used to report the progress of each build.
func (B *Builder) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	B.logger = l
}

//Options returns the options of the builder.
func (B *Builder) Options() *Options {
	return B.opts
}

//Build builds the embedded cluster for the structure S. S is not modified.
//The same structure and options always give the same cluster.
func (B *Builder) Build(S *chem.Structure) (*Cluster, error) {
	log := B.logger
	R, err := Partition(S, B.opts)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("partitioned structure",
		zap.Stringer("policy", R.Policy.Kind),
		zap.Int("center", R.Atoms[R.Center]),
		zap.Int("qc", R.Count(chem.QC)),
		zap.Int("br", R.Count(chem.BR)),
		zap.Int("pc", R.Count(chem.PC)),
		zap.Int("bonds", len(R.Bonds.List)))
	B.checkQCConnected(R)
	Bd, err := ResolveBoundary(R)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("resolved boundary", zap.Int("cut", len(Bd.Cut)), zap.Int("outer", len(Bd.Outer)))
	C, err := Cap(R, Bd, B.table, B.opts)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	log.Debug("placed caps", zap.Int("caps", C.Len()))
	Q, err := Balance(R, C, B.opts)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	if Q.Correction != 0 {
		log.Warn("charge correction spread over the PC region",
			zap.Float64("residual", Q.Residual),
			zap.Float64("per_atom", Q.Correction),
			zap.Int("pc", R.Count(chem.PC)))
	}
	K := Assemble(R, Bd, C, Q, B.table, B.opts)
	log.Info("built cluster",
		zap.Int("atoms", K.Len()),
		zap.Int("qc_charge", K.QCCharge()),
		zap.Int("charge", K.Charge()),
		zap.Int("multiplicity", K.Multi()))
	return K, nil
}

//checkQCConnected warns if the QC region is made of several fragments.
//That is legal, but often means the radii are off.
func (B *Builder) checkQCConnected(R *Regions) {
	qc := R.Indexes(chem.QC)
	if len(qc) < 2 {
		return
	}
	T := chemgraph.FromBonds(R.Len(), R.Bonds)
	comps := T.Induced(qc).Components()
	if len(comps) > 1 {
		B.logger.Warn("the QC region is not connected", zap.Int("fragments", len(comps)))
	}
}

//Build builds the embedded cluster for S with the given options and ECP table.
func Build(S *chem.Structure, opts *Options, table *ecp.Table) (*Cluster, error) {
	return NewBuilder(opts, table).Build(S)
}
