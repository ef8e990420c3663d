/*
 * sweep_test.go, part of embcluster.
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

package sweep

import (
	"context"
	"errors"
	"testing"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
	"github.com/rmera/embcluster/ecp"
	v3 "github.com/rmera/embcluster/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gonum.org/v1/gonum/spatial/r3"
)

//rocksalt returns a 7x7x7 cube of MgO, 2 A between neighbours, with the
//central Mg at index 171.
func rocksalt(t *testing.T) *chem.Structure {
	atoms := make([]*chem.Atom, 0, 343)
	vecs := make([]r3.Vec, 0, 343)
	for i := -3; i <= 3; i++ {
		for j := -3; j <= 3; j++ {
			for k := -3; k <= 3; k++ {
				s := "Mg"
				if (i+j+k)%2 != 0 {
					s = "O"
				}
				atoms = append(atoms, &chem.Atom{Symbol: s})
				vecs = append(vecs, r3.Vec{X: 2 * float64(i), Y: 2 * float64(j), Z: 2 * float64(k)})
			}
		}
	}
	S, err := chem.NewStructure(atoms, v3.FromVecs(vecs), nil)
	require.NoError(t, err)
	return S
}

func sweeper() *Sweeper {
	T := ecp.NewTable()
	T.Add("Mg", ecp.Params{Name: "SD(10,MWB)"})
	T.Add("O", ecp.Params{Name: "O-ECP"})
	T.SetCapLength("Mg", "O", 1.3)
	opts := cluster.DefaultOptions()
	opts.Policy = cluster.Policy{Kind: cluster.Radial, QCRadius: 2.5, BRRadius: 4.0, PCCutoff: 11}
	opts.Bonds.Radii = map[string]float64{"Mg": 1.0, "O": 0.8}
	opts.MaxChargeCorrection = 5
	return New(opts, T, 2)
}

func TestGrid(t *testing.T) {
	points := Grid([]int{1, 2}, []float64{2, 3}, []float64{2.5, 4})
	require.Len(t, points, 6)
	assert.Equal(t, Point{CentralSite: 1, QCRadius: 2, BRRadius: 2.5}, points[0])
	assert.Equal(t, Point{CentralSite: 1, QCRadius: 3, BRRadius: 4}, points[2])
	assert.Equal(t, 2, points[5].CentralSite)
	assert.Empty(t, Grid([]int{0}, []float64{3}, []float64{2}))
}

func TestRun(t *testing.T) {
	S := rocksalt(t)
	sw := sweeper()
	sw.SetLogger(zaptest.NewLogger(t))
	points := []Point{
		{CentralSite: 171, QCRadius: 2.5, BRRadius: 4.0},
		{CentralSite: 5000, QCRadius: 2.5, BRRadius: 4.0},
		{CentralSite: 171, QCRadius: 2.5, BRRadius: 4.5},
	}
	runs, err := sw.Run(context.Background(), S, points)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, r := range runs {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, points[i], r.Point)
	}
	assert.NotEqual(t, runs[0].ID, runs[2].ID)
	require.NoError(t, runs[0].Err)
	assert.Equal(t, 7, runs[0].Cluster.Count(chem.QC))
	assert.Equal(t, 26+30, runs[0].Cluster.Count(chem.BR))
	var pe *cluster.PartitionError
	assert.True(t, errors.As(runs[1].Err, &pe))
	assert.Nil(t, runs[1].Cluster)
	require.NoError(t, runs[2].Err)
	assert.Equal(t, 26+24+30, runs[2].Cluster.Count(chem.BR))

	failed := Failed(runs)
	require.Len(t, failed, 1)
	assert.Equal(t, 1, failed[0].Index)
	sized := BySize(runs)
	require.Len(t, sized, 2)
	assert.Equal(t, 0, sized[0].Index)
	//the base options are not changed by the runs
	assert.Equal(t, -1, sw.Base.CentralSite)
	assert.Equal(t, 4.0, sw.Base.Policy.BRRadius)
}

func TestRunCancelled(t *testing.T) {
	S := rocksalt(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runs, err := sweeper().Run(ctx, S, Grid([]int{171}, []float64{2.5}, []float64{4.0, 4.5}))
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, runs, 2)
	for _, r := range runs {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Cluster)
	}
}
