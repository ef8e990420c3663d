/*
 * files.go, part of embcluster.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/embcluster/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

//XYZ files with an optional fifth column holding the charge of each atom.
//The comment line can carry the lattice vectors as in extended XYZ:
//Lattice="ax ay az bx by bz cx cy cz"
//Files ending in .gz or .zst are decompressed/compressed on the fly.

var latticeRe = regexp.MustCompile(`Lattice="([^"]*)"`)

type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var err error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if e := m.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//openFile opens name for reading, decompressing it if the extension asks for it.
func openFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &multiCloser{gz, []io.Closer{f, gz}}, nil
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &multiCloser{zr, []io.Closer{f, zr.IOReadCloser()}}, nil
	}
	return f, nil
}

type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	//the compressor must be flushed before the file is closed.
	for i := len(m.closers) - 1; i >= 0; i-- {
		if e := m.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//createFile creates name for writing, compressing the output if the extension asks for it.
func createFile(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz := gzip.NewWriter(f)
		return &multiWriteCloser{gz, []io.Closer{f, gz}}, nil
	case strings.HasSuffix(name, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &multiWriteCloser{zw, []io.Closer{f, zw}}, nil
	}
	return f, nil
}

//OpenFile opens a possibly compressed file for reading.
func OpenFile(name string) (io.ReadCloser, error) {
	r, err := openFile(name)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "OpenFile"}, true}
	}
	return r, nil
}

//CreateFile creates a possibly compressed file for writing.
func CreateFile(name string) (io.WriteCloser, error) {
	w, err := createFile(name)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Create", "CreateFile"}, true}
	}
	return w, nil
}

//XYZFileRead reads a structure from the xyz file xyzname.
func XYZFileRead(xyzname string) (*Structure, error) {
	f, err := openFile(xyzname)
	if err != nil {
		return nil, CError{err.Error(), []string{"os.Open", "XYZFileRead"}, true}
	}
	defer f.Close()
	S, err := XYZRead(f)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead "+xyzname)
	}
	return S, nil
}

//XYZRead reads a structure in xyz format from r. The atom count and comment lines
//are optional: if the first line is not a number, every line is taken as an atom.
//If any atom has a charge column, all of them must have it.
func XYZRead(r io.Reader) (*Structure, error) {
	scanner := bufio.NewScanner(r)
	var lattice *Lattice
	expected := -1
	atoms := make([]*Atom, 0, 64)
	vecs := make([]r3.Vec, 0, 64)
	lineno := 0
	first := true
	charged := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineno++
		if first {
			first = false
			if n, err := strconv.Atoi(line); err == nil {
				expected = n
				if !scanner.Scan() {
					break
				}
				lineno++
				lattice, err = parseLattice(scanner.Text())
				if err != nil {
					return nil, errDecorate(err, "XYZRead")
				}
				continue
			}
		}
		if line == "" {
			if expected >= 0 {
				break //end of the first frame
			}
			continue
		}
		at, v, err := xyzLine(line, lineno)
		if err != nil {
			return nil, errDecorate(err, "XYZRead")
		}
		if at.Charged {
			charged++
		}
		at.ID = len(atoms) + 1
		atoms = append(atoms, at)
		vecs = append(vecs, v)
		if expected >= 0 && len(atoms) == expected {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, CError{err.Error(), []string{"bufio.Scanner", "XYZRead"}, true}
	}
	if expected >= 0 && len(atoms) != expected {
		return nil, newCError("XYZRead", "expected %d atoms, found %d", expected, len(atoms))
	}
	if len(atoms) == 0 {
		return nil, newCError("XYZRead", "no atoms found")
	}
	if charged != 0 && charged != len(atoms) {
		return nil, newCError("XYZRead", "only %d of %d atoms have a charge", charged, len(atoms))
	}
	S, err := NewStructure(atoms, v3.FromVecs(vecs), lattice)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return S, nil
}

func xyzLine(line string, lineno int) (*Atom, r3.Vec, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 && len(fields) != 5 {
		return nil, r3.Vec{}, newCError("xyzLine", "line %d: expected 4 or 5 fields, got %d", lineno, len(fields))
	}
	var c [4]float64
	for i, f := range fields[1:] {
		val, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, r3.Vec{}, newCError("xyzLine", "line %d: can't parse %q", lineno, f)
		}
		c[i] = val
	}
	at := &Atom{Symbol: fields[0], Name: fields[0]}
	if len(fields) == 5 {
		at.Charge = c[3]
		at.Charged = true
	}
	return at, r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

func parseLattice(comment string) (*Lattice, error) {
	m := latticeRe.FindStringSubmatch(comment)
	if m == nil {
		return nil, nil
	}
	fields := strings.Fields(m[1])
	if len(fields) != 9 {
		return nil, newCError("parseLattice", "lattice needs 9 numbers, got %d", len(fields))
	}
	var f [9]float64
	for i, v := range fields {
		var err error
		f[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, newCError("parseLattice", "can't parse %q", v)
		}
	}
	L, err := NewLattice(r3.Vec{X: f[0], Y: f[1], Z: f[2]}, r3.Vec{X: f[3], Y: f[4], Z: f[5]}, r3.Vec{X: f[6], Y: f[7], Z: f[8]})
	if err != nil {
		return nil, errDecorate(err, "parseLattice")
	}
	return L, nil
}

//XYZFileWrite writes the structure S to the file xyzname, with charges if they are
//given for every atom.
func XYZFileWrite(xyzname string, S *Structure) error {
	f, err := createFile(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "XYZFileWrite"}, true}
	}
	if err := XYZWrite(f, S.Coords, S, S.Lattice, S.Charged()); err != nil {
		f.Close()
		return errDecorate(err, "XYZFileWrite "+xyzname)
	}
	if err := f.Close(); err != nil {
		return CError{err.Error(), []string{"Close", "XYZFileWrite"}, true}
	}
	return nil
}

//XYZWrite writes the coordinates and atoms in xyz format to out. If lattice is not nil
//it is written to the comment line. If charges is true, a fifth column with the
//charge of each atom is written.
func XYZWrite(out io.Writer, coords *v3.Matrix, mol Atomer, lattice *Lattice, charges bool) error {
	if coords.NVecs() != mol.Len() {
		return newCError("XYZWrite", "%d coordinates for %d atoms", coords.NVecs(), mol.Len())
	}
	comment := "Written with embcluster"
	if lattice != nil {
		comment = fmt.Sprintf("Lattice=\"%s\" %s", lattice.String(), comment)
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d\n%s\n", mol.Len(), comment)
	for i := 0; i < mol.Len(); i++ {
		c := coords.Vec(i)
		if charges {
			fmt.Fprintf(w, "%-4s %13.8f %13.8f %13.8f %7.4f\n", mol.Atom(i).Symbol, c.X, c.Y, c.Z, mol.Atom(i).Charge)
			continue
		}
		fmt.Fprintf(w, "%-4s %13.8f %13.8f %13.8f\n", mol.Atom(i).Symbol, c.X, c.Y, c.Z)
	}
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"bufio.Flush", "XYZWrite"}, true}
	}
	return nil
}
