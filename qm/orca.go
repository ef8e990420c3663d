/*
 * orca.go, part of embcluster.
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

package qm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
)

//Note that the default methods and basis are NOT considered part of the API,
//so they can always change.
const (
	orcaDefMethod = "PBE0"
	orcaDefBasis  = "def2-TZVP"
)

//OrcaWriter writes ORCA inputs for embedded clusters. The QC atoms are written
//as normal atoms. The BR atoms and the caps are written as embedding ECP atoms
//("Zr>  q  x y z  NewECP "name" end"), which carry a charge and an ECP but no basis
//functions. The PC atoms are written as point charges, inline ("Q q x y z") or, if
//PCFile is set, in a separate file (see WritePointCharges) referenced from the input.
type OrcaWriter struct {
	Calc   *Calc
	PCFile string
}

//NewOrcaWriter returns a writer with the default settings and inline point charges.
func NewOrcaWriter() *OrcaWriter {
	Q := new(Calc)
	Q.SetDefaults()
	return &OrcaWriter{Calc: Q}
}

//calc returns the settings of the writer, or the defaults if it has none.
func (O *OrcaWriter) calc() *Calc {
	if O.Calc != nil {
		return O.Calc
	}
	Q := new(Calc)
	Q.SetDefaults()
	return Q
}

//mainLine builds the "!" line of the input.
func mainLine(Q *Calc, multi int) (string, error) {
	method, basis := Q.Method, Q.Basis
	if method == "" {
		method = orcaDefMethod
	}
	if basis == "" {
		basis = orcaDefBasis
	}
	if Q.RI && Q.RIJ {
		return "", Error{"RI and RIJ cannot be activated at the same time", "ORCA", []string{"mainLine"}, true}
	}
	ri, aux, auxc := "", "", ""
	if Q.RI {
		ri = "RI"
		aux = basis + "/J"
	}
	if Q.RIJ {
		ri = "RIJCOSX"
		aux = basis + "/J"
		auxc = basis + "/C"
	}
	disp := ""
	if Q.Dispersion != "" {
		var ok bool
		disp, ok = orcaDisp[Q.Dispersion]
		if !ok {
			return "", Error{fmt.Sprintf("unknown dispersion correction %q", Q.Dispersion), "ORCA", []string{"mainLine"}, true}
		}
	}
	hfuhf := "RKS"
	if multi != 1 {
		hfuhf = "UKS"
	}
	conv := orcaSCFConv[Q.SCFConvHelp]
	if Q.SCFConvHelp == 0 && multi > 1 {
		conv = "SlowConv"
	}
	grid := ""
	if Q.Grid > 0 && Q.Grid <= 9 {
		grid = fmt.Sprintf("DefGrid%d", min(Q.Grid, 3))
	}
	pal := ""
	if Q.NCPU > 1 && Q.NCPU <= 8 {
		pal = fmt.Sprintf("PAL%d", Q.NCPU)
	}
	opts := []string{"!", hfuhf, method, basis, aux, auxc, orcaSCFTight[Q.SCFTightness], disp, conv, grid, ri, pal, Q.Others}
	fields := make([]string, 0, len(opts))
	for _, v := range opts {
		if v != "" {
			fields = append(fields, v)
		}
	}
	return strings.Join(fields, " ") + "\n", nil
}

//WriteInput writes the ORCA input for K to w.
func (O *OrcaWriter) WriteInput(w io.Writer, K *cluster.Cluster) error {
	Q := O.calc()
	mainline, err := mainLine(Q, K.Multi())
	if err != nil {
		return errDecorate(err, "OrcaWriter.WriteInput")
	}
	out := bufio.NewWriter(w)
	fmt.Fprint(out, mainline)
	if Q.NCPU > 8 {
		fmt.Fprintf(out, "%%pal nprocs %d\n   end\n", Q.NCPU)
	}
	if Q.Memory != 0 {
		fmt.Fprintf(out, "%%MaxCore %d\n", Q.Memory)
	}
	if len(Q.HBElements) != 0 {
		out.WriteString("%basis\n")
		for _, v := range Q.HBElements {
			fmt.Fprintf(out, "  newgto %s \"%s\" end\n", v, Q.HighBasis)
		}
		fmt.Fprint(out, "  end\n")
	}
	if O.PCFile != "" {
		fmt.Fprintf(out, "%%pointcharges \"%s\"\n", O.PCFile)
	}
	fmt.Fprintf(out, "\n* xyz %d %d\n", K.QCCharge(), K.Multi())
	for _, i := range K.Indexes(chem.QC) {
		at := K.Atom(i)
		c := K.Vec(i)
		newbasis := ""
		if Q.HBCentral && i == K.Center() && Q.HighBasis != "" {
			newbasis = fmt.Sprintf(" newgto \"%s\" end", Q.HighBasis)
		}
		fmt.Fprintf(out, "%-2s   %13.8f %13.8f %13.8f%s\n", at.Symbol, c.X, c.Y, c.Z, newbasis)
	}
	for _, i := range K.Indexes(chem.BR) {
		at := K.Atom(i)
		if at.ECP == "" {
			return Error{fmt.Sprintf("BR atom %d (%s) has no ECP", i, at.Symbol), "ORCA", []string{"OrcaWriter.WriteInput"}, true}
		}
		c := K.Vec(i)
		fmt.Fprintf(out, "%-2s>  %9.5f %13.8f %13.8f %13.8f  NewECP \"%s\" end\n", at.Symbol, at.Charge, c.X, c.Y, c.Z, at.ECP)
	}
	if O.PCFile == "" {
		for _, i := range K.Indexes(chem.PC) {
			c := K.Vec(i)
			fmt.Fprintf(out, "Q    %9.5f %13.8f %13.8f %13.8f\n", K.Atom(i).Charge, c.X, c.Y, c.Z)
		}
	}
	fmt.Fprint(out, "*\n")
	if err := out.Flush(); err != nil {
		return Error{err.Error(), "ORCA", []string{"bufio.Flush", "OrcaWriter.WriteInput"}, true}
	}
	return nil
}

//WritePointCharges writes the PC atoms of K in the format of ORCA point charge
//files: the number of charges, and one "q x y z" line per charge.
func (O *OrcaWriter) WritePointCharges(w io.Writer, K *cluster.Cluster) error {
	pc := K.Indexes(chem.PC)
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%d\n", len(pc))
	for _, i := range pc {
		c := K.Vec(i)
		fmt.Fprintf(out, "%9.5f %13.8f %13.8f %13.8f\n", K.Atom(i).Charge, c.X, c.Y, c.Z)
	}
	if err := out.Flush(); err != nil {
		return Error{err.Error(), "ORCA", []string{"bufio.Flush", "OrcaWriter.WritePointCharges"}, true}
	}
	return nil
}

//errDecorate is a helper function that asserts that the error is
//implements chem.Error and decorates the error with the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(chem.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

var orcaSCFTight = map[int]string{
	0: "",
	1: "TightSCF",
	2: "VeryTightSCF",
}

var orcaSCFConv = map[int]string{
	0: "",
	1: "SlowConv",
	2: "VerySlowConv",
}

var orcaDisp = map[string]string{
	"nodisp": "",
	"D2":     "D2",
	"D3BJ":   "D3BJ",
	"D3bj":   "D3BJ",
	"D3":     "D3ZERO",
	"D3ZERO": "D3ZERO",
	"D3Zero": "D3ZERO",
	"D3zero": "D3ZERO",
	"D4":     "D4",
	"VV10":   "NL",
	"SCVV10": "SCNL",
	"NL":     "NL",
	"SCNL":   "SCNL",
}
