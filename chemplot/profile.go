/*
 * profile.go, part of embcluster.
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

//Package chemplot plots some diagnostics of embedded clusters with gonum/plot.
package chemplot

import (
	"fmt"
	"math"

	chem "github.com/rmera/embcluster"
	"github.com/rmera/embcluster/cluster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var regions = []chem.Region{chem.QC, chem.BR, chem.PC}

//Profile is the number of atoms of each region in spherical shells around
//the central site of a cluster.
type Profile struct {
	Width  float64                   //of each shell, A
	Counts map[chem.Region][]float64 //one element per shell, the same number for all regions
}

//Shells returns the number of shells in the profile.
func (P *Profile) Shells() int {
	return len(P.Counts[chem.QC])
}

//RegionProfile counts the atoms of each region of K in shells of the given width
//around the central site. Caps count in the BR region.
func RegionProfile(K *cluster.Cluster, width float64) (*Profile, error) {
	if width <= 0 {
		return nil, fmt.Errorf("shell width must be positive, got %g", width)
	}
	max := 0.0
	for i := 0; i < K.Len(); i++ {
		max = math.Max(max, K.Dist(i))
	}
	n := int(math.Floor(max/width)) + 1
	P := &Profile{Width: width, Counts: make(map[chem.Region][]float64, 3)}
	for _, r := range regions {
		P.Counts[r] = make([]float64, n)
	}
	for i := 0; i < K.Len(); i++ {
		reg := K.Atom(i).Region
		P.Counts[reg][int(K.Dist(i)/width)]++
	}
	return P, nil
}

//Plot returns a histogram of the profile, one color per region.
func (P *Profile) Plot(title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Distance to the central site (A)"
	p.Y.Label.Text = "Atoms"
	p.Add(plotter.NewGrid())
	for k, r := range regions {
		h := &plotter.Histogram{Width: P.Width, FillColor: colors(k, len(regions)), LineStyle: plotter.DefaultLineStyle}
		for i, c := range P.Counts[r] {
			if c == 0 {
				continue
			}
			lo := float64(i) * P.Width
			h.Bins = append(h.Bins, plotter.HistogramBin{Min: lo, Max: lo + P.Width, Weight: c})
		}
		if len(h.Bins) == 0 {
			continue
		}
		p.Add(h)
		p.Legend.Add(r.String(), h)
	}
	return p, nil
}

//ChargePlot returns a scatter plot of the charge of each atom of K against its
//distance to the central site, with one color and glyph per region.
func ChargePlot(K *cluster.Cluster, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance to the central site (A)"
	p.Y.Label.Text = "Charge"
	p.Add(plotter.NewGrid())
	for k, r := range regions {
		idx := K.Indexes(r)
		if len(idx) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(idx))
		for j, i := range idx {
			pts[j].X = K.Dist(i)
			pts[j].Y = K.Atom(i).Charge
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = colors(k, len(regions))
		if s.GlyphStyle.Shape, err = getShape(k); err != nil {
			return nil, err
		}
		p.Add(s)
		p.Legend.Add(r.String(), s)
	}
	return p, nil
}

//SaveProfile writes the region profile of K, with shells of the given width,
//as an image to filename. The format is given by the extension.
func SaveProfile(K *cluster.Cluster, width float64, title, filename string) error {
	P, err := RegionProfile(K, width)
	if err != nil {
		return err
	}
	p, err := P.Plot(title)
	if err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 4*vg.Inch, filename)
}
