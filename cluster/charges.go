/*
 * charges.go, part of embcluster.
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
	"gonum.org/v1/gonum/floats"
)

//chargeTol is the largest allowed difference between the charge of a cluster
//and its target.
const chargeTol = 1e-6

//Charges are the charges of the atoms of a cluster, before assembly.
type Charges struct {
	Real       []float64 //by local index
	Caps       []float64 //by cap index
	QC         int       //total charge of the QC region
	Residual   float64   //target minus the sum of the formal charges
	Correction float64   //added to each PC atom
}

//Sum returns the sum of all the charges.
func (Q *Charges) Sum() float64 {
	return floats.Sum(Q.Real) + floats.Sum(Q.Caps)
}

//FormalCharge returns the formal charge for atom at: the one given in
//formal for its element, the one read with the structure, or the tabulated
//oxidation state, in that order.
func FormalCharge(at *chem.Atom, formal map[string]float64) (float64, bool) {
	if q, ok := formal[at.Symbol]; ok {
		return q, true
	}
	if at.Charged {
		return at.Charge, true
	}
	return chem.OxidationState(at.Symbol)
}

//Balance assigns formal charges to the atoms kept in R and charges to the caps, and
//spreads the difference between opts.TargetCharge and their sum uniformly over the PC
//atoms. The QC charges are never changed. Each cap takes the charge set in its ECP
//entry or, if none, the formal charge of its BR atom divided by the number of bonds
//of that atom. The BR atom gives up the charges of its caps, so a BR atom and its
//caps keep the formal charge of the BR atom.
//A ChargeBalanceError is returned if an element has no formal charge, the QC charge
//is not an integer, the QC electrons don't fit the multiplicity, or the
//residual is larger than opts.MaxChargeCorrection or can't be spread for lack of
//PC atoms.
func Balance(R *Regions, C *Caps, opts *Options) (*Charges, error) {
	Q := &Charges{Real: make([]float64, R.Len()), Caps: make([]float64, C.Len())}
	for k := range R.Atoms {
		at := R.Atom(k)
		q, ok := FormalCharge(at, opts.FormalCharges)
		if !ok {
			return nil, &ChargeBalanceError{Msg: "no formal charge for element " + at.Symbol, Element: at.Symbol, deco: deco{"Balance"}}
		}
		Q.Real[k] = q
	}
	qc, err := qcCharge(R, Q.Real, opts.Multiplicity)
	if err != nil {
		return nil, errDecorate(err, "Balance")
	}
	Q.QC = qc
	for i, b := range C.Bonds {
		if c := C.Params[i].CapCharge; c != nil {
			Q.Caps[i] = *c
		} else {
			Q.Caps[i] = Q.Real[b.BR] / float64(R.Bonds.Degree(b.BR))
		}
	}
	for i, b := range C.Bonds {
		Q.Real[b.BR] -= Q.Caps[i]
	}
	Q.Residual = float64(opts.TargetCharge) - Q.Sum()
	if math.Abs(Q.Residual) <= chargeTol/10 {
		Q.Residual = 0
		return Q, nil
	}
	if math.Abs(Q.Residual) > opts.MaxChargeCorrection {
		return nil, &ChargeBalanceError{Msg: fmt.Sprintf("the correction needed is larger than the maximum allowed, %g", opts.MaxChargeCorrection), Imbalance: Q.Residual, deco: deco{"Balance"}}
	}
	pc := R.Indexes(chem.PC)
	if len(pc) == 0 {
		return nil, &ChargeBalanceError{Msg: "no PC atoms to take the correction", Imbalance: Q.Residual, deco: deco{"Balance"}}
	}
	Q.Correction = Q.Residual / float64(len(pc))
	for _, k := range pc {
		Q.Real[k] += Q.Correction
	}
	if diff := float64(opts.TargetCharge) - Q.Sum(); math.Abs(diff) > chargeTol {
		return nil, &ChargeBalanceError{Msg: "rounding errors prevent reaching the target charge", Imbalance: diff, deco: deco{"Balance"}}
	}
	return Q, nil
}

//qcCharge returns the (integer) charge of the QC region, and checks that
//the number of electrons it leaves is compatible with the multiplicity.
func qcCharge(R *Regions, q []float64, multi int) (int, error) {
	var sum float64
	var z int
	for _, k := range R.Indexes(chem.QC) {
		sum += q[k]
		s := R.Atom(k).Symbol
		n, ok := chem.AtomicNumber(s)
		if !ok {
			return 0, &ChargeBalanceError{Msg: "no atomic number for element " + s, Element: s, deco: deco{"qcCharge"}}
		}
		z += n
	}
	rounded := math.Round(sum)
	if math.Abs(sum-rounded) > chargeTol {
		return 0, &ChargeBalanceError{Msg: fmt.Sprintf("the QC region has a non-integer charge %.6f", sum), Imbalance: rounded - sum, deco: deco{"qcCharge"}}
	}
	qc := int(rounded)
	electrons := z - qc
	unpaired := multi - 1
	if electrons < unpaired || (electrons-unpaired)%2 != 0 {
		return 0, &ChargeBalanceError{Msg: fmt.Sprintf("%d electrons in the QC region can't have multiplicity %d", electrons, multi), deco: deco{"qcCharge"}}
	}
	return qc, nil
}
