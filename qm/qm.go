/*
 * qm.go, part of embcluster.
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
	"fmt"
	"io"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
)

//Writer writes the input for a QM program from an embedded cluster.
type Writer interface {
	WriteInput(w io.Writer, K *cluster.Cluster) error
}

//Calc holds the settings of the calculation that are not given by
//the cluster itself. X-ray spectroscopy calculations are usually
//single points, so there are no geometry options.
type Calc struct {
	Method       string
	Basis        string
	RI           bool
	RIJ          bool
	HighBasis    string   //a bigger basis for certain elements of the QC region
	HBElements   []string //elements of the QC region that get HighBasis
	HBCentral    bool     //the central site gets HighBasis
	Dispersion   string   //D2, D3, etc.
	Others       string   //analysis methods, TDDFT blocks, etc
	Grid         int
	SCFTightness int
	SCFConvHelp  int
	Memory       int //Max memory to be used in MB
	NCPU         int
}

//SetDefaults sets RI, D3 dispersion and tight SCF convergence.
func (Q *Calc) SetDefaults() {
	Q.RI = true
	Q.Dispersion = "D3"
	Q.SCFTightness = 1
}

//Error is the error type for the qm package.
type Error struct {
	msg      string
	program  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return fmt.Sprintf("%s error: %s", err.program, err.msg) }

//Decorate will add the deco string to the decoration slice
//and return it. An empty string only returns the slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//XYZWriter writes the cluster as a charged XYZ file, one atom per line,
//with the charge in the fifth column.
type XYZWriter struct{}

//WriteInput writes K in charged XYZ format to w.
func (X XYZWriter) WriteInput(w io.Writer, K *cluster.Cluster) error {
	if err := chem.XYZWrite(w, K.Coords(), K, nil, true); err != nil {
		return Error{err.Error(), "XYZ", []string{"chem.XYZWrite", "XYZWriter.WriteInput"}, true}
	}
	return nil
}

var (
	_ Writer     = &OrcaWriter{}
	_ Writer     = XYZWriter{}
	_ chem.Error = Error{}
)
