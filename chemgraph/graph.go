/*
 * graph.go, part of embcluster.
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

//Package chemgraph puts the bonds of a structure in a gonum graph, so the
//graph algorithms of gonum can be used on them.
package chemgraph

import (
	"sort"

	chem "github.com/rmera/embcluster"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

//Topology is the bond graph of a set of n atoms. The node IDs are
//the atom indexes used in the bonds.
type Topology struct {
	*simple.UndirectedGraph
}

//FromBonds builds the graph of n atoms (indexes 0 to n-1) joined by the bonds in B.
//Atoms with no bonds are still in the graph.
func FromBonds(n int, B *chem.Bonds) *Topology {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range B.List {
		if b.At1 >= n || b.At2 >= n {
			panic("FromBonds: bond to an atom out of range")
		}
		g.SetEdge(g.NewEdge(simple.Node(b.At1), simple.Node(b.At2)))
	}
	return &Topology{g}
}

//Shells returns, for every atom reachable from the atom from, the number of
//bonds in the shortest path between them. The origin is at depth 0.
//If maxdepth is not negative, atoms further than maxdepth bonds are not visited.
func (T *Topology) Shells(from, maxdepth int) map[int]int {
	depths := make(map[int]int)
	if T.Node(int64(from)) == nil {
		return depths
	}
	bf := traverse.BreadthFirst{}
	bf.Walk(T, simple.Node(from), func(n graph.Node, d int) bool {
		if maxdepth >= 0 && d > maxdepth {
			return true
		}
		depths[int(n.ID())] = d
		return false
	})
	return depths
}

//Induced returns the subgraph with only the given atoms and the bonds among them.
func (T *Topology) Induced(atoms []int) *Topology {
	g := simple.NewUndirectedGraph()
	in := make(map[int64]bool, len(atoms))
	for _, i := range atoms {
		g.AddNode(simple.Node(i))
		in[int64(i)] = true
	}
	for _, i := range atoms {
		nodes := T.From(int64(i))
		for nodes.Next() {
			j := nodes.Node().ID()
			if in[j] && int64(i) < j {
				g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}
	return &Topology{g}
}

//Components returns the connected components of the graph, each as a sorted
//slice of atom indexes. The components are sorted by their first atom.
func (T *Topology) Components() [][]int {
	comps := topo.ConnectedComponents(T.UndirectedGraph)
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		ids := make([]int, 0, len(c))
		for _, n := range c {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}
