/*
 * assemble.go, part of embcluster.
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
	"math"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/ecp"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//Assemble puts together the cluster from its regions, caps and charges. The atoms
//are ordered QC, BR, caps, PC, each group by increasing index in the source structure
//(caps in the order of their bonds). Assemble panics if the result breaks the
//invariants of a cluster, as that can only come from a bug in the previous steps.
func Assemble(R *Regions, B *Boundary, C *Caps, Q *Charges, T *ecp.Table, opts *Options) *Cluster {
	n := R.Len() + C.Len()
	K := &Cluster{
		atoms:      make([]*chem.Atom, 0, n),
		source:     make([]int, 0, n),
		dist:       make([]float64, 0, n),
		charge:     opts.TargetCharge,
		qcCharge:   Q.QC,
		multi:      opts.Multiplicity,
		correction: Q.Correction,
		policy:     R.Policy,
		center:     -1,
		cut:        make([]BoundaryBond, len(B.Cut)),
	}
	vecs := make([]r3.Vec, 0, n)
	addReal := func(k int, reg chem.Region) {
		at := new(chem.Atom)
		at.Copy(R.Atom(k))
		at.Region = reg
		at.Charge = Q.Real[k]
		at.Charged = true
		at.Cap = nil
		at.ECP = ""
		if reg == chem.BR {
			p, _ := T.Get(at.Symbol)
			at.ECP = p.Name
		}
		if k == R.Center {
			K.center = len(K.atoms)
		}
		at.SetIndex(len(K.atoms))
		K.atoms = append(K.atoms, at)
		K.source = append(K.source, R.Atoms[k])
		K.dist = append(K.dist, R.Dist[k])
		vecs = append(vecs, R.Coords.Vec(k))
	}
	for _, k := range R.Indexes(chem.QC) {
		addReal(k, chem.QC)
	}
	for _, k := range R.Indexes(chem.BR) {
		addReal(k, chem.BR)
	}
	center := R.Coords.Vec(R.Center)
	for i, v := range C.Atoms {
		at := new(chem.Atom)
		at.Copy(v)
		at.Charge = Q.Caps[i]
		at.Charged = true
		at.ID = len(K.atoms) + 1
		at.SetIndex(len(K.atoms))
		K.atoms = append(K.atoms, at)
		K.source = append(K.source, -1)
		K.dist = append(K.dist, r3.Norm(r3.Sub(C.Coords[i], center)))
		vecs = append(vecs, C.Coords[i])
	}
	for _, k := range R.Indexes(chem.PC) {
		addReal(k, chem.PC)
	}
	for i, b := range B.Cut {
		K.cut[i] = BoundaryBond{QC: R.Atoms[b.QC], BR: R.Atoms[b.BR], Dist: b.Dist}
	}
	K.coords = v3.FromVecs(vecs)
	if err := K.verify(R.Len()); err != nil {
		panic(PanicMsg("embcluster/cluster: broken invariant: " + err.Error()))
	}
	return K
}

//verify checks the invariants of the cluster: all atoms in one of the three regions,
//and in order, no source atom twice, one cap per boundary bond and the other way around,
//and a total charge equal to the target.
func (K *Cluster) verify(nreal int) error {
	order := map[chem.Region]int{chem.QC: 0, chem.BR: 1, chem.PC: 3}
	last := 0
	seen := make(map[int]bool, nreal)
	caps := make([]*chem.CapRef, 0, len(K.cut))
	var sum float64
	for i, at := range K.atoms {
		o, ok := order[at.Region]
		if !ok {
			return fmt.Errorf("atom %d in region %v", i, at.Region)
		}
		if at.IsCap() {
			if at.Region != chem.BR {
				return fmt.Errorf("cap %d outside the BR region", i)
			}
			o = 2
			caps = append(caps, at.Cap)
		} else {
			if seen[K.source[i]] {
				return fmt.Errorf("source atom %d appears twice", K.source[i])
			}
			seen[K.source[i]] = true
		}
		if o < last {
			return fmt.Errorf("atom %d out of order", i)
		}
		last = o
		sum += at.Charge
	}
	if len(seen) != nreal {
		return fmt.Errorf("%d real atoms, %d expected", len(seen), nreal)
	}
	if len(caps) != len(K.cut) {
		return fmt.Errorf("%d caps for %d boundary bonds", len(caps), len(K.cut))
	}
	for i, c := range caps {
		if c.QC != K.cut[i].QC || c.BR != K.cut[i].BR {
			return fmt.Errorf("cap %d does not match its boundary bond", i)
		}
	}
	if math.Abs(sum-float64(K.charge)) > chargeTol {
		return fmt.Errorf("total charge %.8f, target %d", sum, K.charge)
	}
	if K.center < 0 || K.atoms[K.center].Region != chem.QC {
		return fmt.Errorf("the central site is not in the QC region")
	}
	return nil
}
