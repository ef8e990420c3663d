/*
 * report.go, part of embcluster.
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
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/embcluster"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//RegionSummary has some numbers about one region of a cluster.
type RegionSummary struct {
	Region  chem.Region
	Atoms   int
	Caps    int
	Charge  float64
	MaxDist float64
	Mean    float64 //of the atomic charges
	StdDev  float64
}

//Report summarizes a cluster, region by region.
type Report struct {
	Regions    []RegionSummary
	Total      float64
	Target     int
	Correction float64
}

//NewReport computes the Report for the cluster K.
func NewReport(K *Cluster) *Report {
	r := &Report{Target: K.Charge(), Correction: K.Correction()}
	q := K.Charges()
	r.Total = floats.Sum(q)
	for _, reg := range []chem.Region{chem.QC, chem.BR, chem.PC} {
		idx := K.Indexes(reg)
		s := RegionSummary{Region: reg, Atoms: len(idx)}
		if len(idx) == 0 {
			r.Regions = append(r.Regions, s)
			continue
		}
		rq := make([]float64, len(idx))
		for i, v := range idx {
			rq[i] = q[v]
			if K.Source(v) < 0 {
				s.Caps++
			}
			if d := K.Dist(v); d > s.MaxDist {
				s.MaxDist = d
			}
		}
		s.Charge = floats.Sum(rq)
		s.Mean, s.StdDev = stat.MeanStdDev(rq, nil)
		if len(rq) < 2 {
			s.StdDev = 0
		}
		r.Regions = append(r.Regions, s)
	}
	return r
}

func (r *Report) String() string {
	var b strings.Builder
	r.Write(&b)
	return b.String()
}

//Write writes the report as a table to w.
func (r *Report) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%-6s %6s %5s %12s %10s %10s %10s\n", "Region", "Atoms", "Caps", "Charge", "Mean", "StdDev", "MaxDist")
	if err != nil {
		return err
	}
	for _, s := range r.Regions {
		_, err = fmt.Fprintf(w, "%-6s %6d %5d %12.6f %10.4f %10.4f %10.4f\n", s.Region, s.Atoms, s.Caps, s.Charge, s.Mean, s.StdDev, s.MaxDist)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Total charge %.6f (target %d), PC correction %.6g per atom\n", r.Total, r.Target, r.Correction)
	return err
}
