/*
 * sweep.go, part of embcluster.
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

//Package sweep builds many clusters from the same structure, varying the central
//site and the radii, in parallel.
package sweep

import (
	"context"
	"runtime"
	"sort"
	"time"

	"github.com/google/uuid"
	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
	"github.com/rmera/embcluster/ecp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//Point is one combination of the swept parameters.
type Point struct {
	CentralSite int
	QCRadius    float64
	BRRadius    float64
}

//Grid returns every combination of the given central sites and radii, skipping
//those with a BR radius not larger than the QC radius. The central site varies
//slowest and the BR radius fastest.
func Grid(sites []int, qc, br []float64) []Point {
	ret := make([]Point, 0, len(sites)*len(qc)*len(br))
	for _, s := range sites {
		for _, q := range qc {
			for _, b := range br {
				if b <= q {
					continue
				}
				ret = append(ret, Point{CentralSite: s, QCRadius: q, BRRadius: b})
			}
		}
	}
	return ret
}

//Run is the result of building the cluster for one Point. Exactly one of
//Cluster and Err is nil.
type Run struct {
	ID      uuid.UUID
	Index   int //position of the point in the list given to Sweeper.Run
	Point   Point
	Cluster *cluster.Cluster
	Err     error
	Elapsed time.Duration
}

//Sweeper runs the builds of a sweep. The structure and the ECP table are
//shared, read-only, among the runs.
type Sweeper struct {
	Base    *cluster.Options
	Table   *ecp.Table
	Workers int //maximum number of simultaneous builds, 0 means one per CPU
	logger  *zap.Logger
}

//New returns a sweeper that builds the clusters with base, changed
//for each point.
func New(base *cluster.Options, table *ecp.Table, workers int) *Sweeper {
	return &Sweeper{Base: base, Table: table, Workers: workers, logger: zap.NewNop()}
}

//SetLogger sets the logger for the sweep. Each run logs with its ID.
func (S *Sweeper) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	S.logger = l
}

//options returns a copy of the base options with the values of p.
func (S *Sweeper) options(p Point) *cluster.Options {
	o := *S.Base
	o.CentralSite = p.CentralSite
	if o.Policy.Kind == cluster.Radial {
		o.Policy.QCRadius = p.QCRadius
		o.Policy.BRRadius = p.BRRadius
	}
	return &o
}

//Run builds the cluster of mol for each point. The failure of a run doesn't stop
//the others: its error is kept in the Run. If ctx is cancelled, no new runs are
//started, the runs not started get the context error, and the error is also
//returned. The runs are returned in the order of points.
func (S *Sweeper) Run(ctx context.Context, mol *chem.Structure, points []Point) ([]*Run, error) {
	workers := S.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	runs := make([]*Run, len(points))
	for i, p := range points {
		runs[i] = &Run{ID: uuid.New(), Index: i, Point: p}
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, r := range runs {
		r := r
		if ctx.Err() != nil {
			r.Err = ctx.Err()
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				r.Err = err
				return nil
			}
			S.build(r, mol)
			return nil
		})
	}
	g.Wait()
	failed := 0
	for _, r := range runs {
		if r.Err != nil {
			failed++
		}
	}
	S.logger.Info("sweep finished", zap.Int("runs", len(runs)), zap.Int("failed", failed))
	return runs, ctx.Err()
}

func (S *Sweeper) build(r *Run, mol *chem.Structure) {
	log := S.logger.With(zap.String("run", r.ID.String()), zap.Int("index", r.Index))
	b := cluster.NewBuilder(S.options(r.Point), S.Table)
	b.SetLogger(log)
	start := time.Now()
	r.Cluster, r.Err = b.Build(mol)
	r.Elapsed = time.Since(start)
	if r.Err != nil {
		log.Warn("run failed", zap.Error(r.Err))
	}
}

//Failed returns the runs that ended with an error, in order.
func Failed(runs []*Run) []*Run {
	ret := make([]*Run, 0, len(runs))
	for _, r := range runs {
		if r.Err != nil {
			ret = append(ret, r)
		}
	}
	return ret
}

//BySize returns the successful runs sorted by the number of atoms in the QC region,
//and then by their position in the sweep.
func BySize(runs []*Run) []*Run {
	ret := make([]*Run, 0, len(runs))
	for _, r := range runs {
		if r.Err == nil {
			ret = append(ret, r)
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Cluster.Count(chem.QC) < ret[j].Cluster.Count(chem.QC)
	})
	return ret
}
