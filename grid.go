/*
 * grid.go, part of embcluster.
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

package chem

import (
	"math"

	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

type cellKey [3]int

//Grid is a cell list over a set of points. It finds all pairs closer than
//its cell size without comparing every point against every other.
type Grid struct {
	coords  *v3.Matrix
	cell    float64
	buckets map[cellKey][]int
	keys    []cellKey //key for each point, by position in coords
}

//NewGrid puts the points of coords in cubic cells of side cell.
func NewGrid(coords *v3.Matrix, cell float64) *Grid {
	if cell <= 0 {
		panic("NewGrid: cell size must be positive")
	}
	n := coords.NVecs()
	G := &Grid{coords: coords, cell: cell, buckets: make(map[cellKey][]int), keys: make([]cellKey, n)}
	for i := 0; i < n; i++ {
		k := G.key(coords.Vec(i))
		G.keys[i] = k
		G.buckets[k] = append(G.buckets[k], i)
	}
	return G
}

func (G *Grid) key(v r3.Vec) cellKey {
	return cellKey{
		int(math.Floor(v.X / G.cell)),
		int(math.Floor(v.Y / G.cell)),
		int(math.Floor(v.Z / G.cell)),
	}
}

//Pairs calls fn for every pair i<j of points closer than the cell size,
//with their distance. Pairs are visited in increasing order of i. If fn returns
//an error the iteration stops and the error is returned.
func (G *Grid) Pairs(fn func(i, j int, d float64) error) error {
	for i, k := range G.keys {
		vi := G.coords.Vec(i)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					nk := cellKey{k[0] + dx, k[1] + dy, k[2] + dz}
					for _, j := range G.buckets[nk] {
						if j <= i {
							continue
						}
						d := r3.Norm(r3.Sub(G.coords.Vec(j), vi))
						if d >= G.cell {
							continue
						}
						if err := fn(i, j, d); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}
