/*
 * moleplot.go, part of chemedu.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 *
 * chemedu is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package chemplot draws plots for chemedu data using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"

	chem "github.com/rmera/chemedu"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//MoleCurve returns points (mass in g, moles) of s, for points masses evenly distributed
//between maxMass/points and maxMass.
func MoleCurve(s chem.Substance, maxMass float64, points int) (plotter.XYs, error) {
	if !(maxMass > 0) || points < 2 {
		return nil, fmt.Errorf("goChem/chemplot.MoleCurve: need a positive maximum mass and at least 2 points, got %g and %d", maxMass, points)
	}
	ret := make(plotter.XYs, points)
	for i := range ret {
		mass := maxMass * float64(i+1) / float64(points)
		r, err := chem.ComputeMoles(s, mass)
		if err != nil {
			return nil, err
		}
		ret[i].X = mass
		ret[i].Y = r.Moles
	}
	return ret, nil
}

func basicMolePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Mass (g)"
	p.Y.Label.Text = "Amount (mol)"
	p.X.Min = 0
	p.Y.Min = 0
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())
	return p
}

//MoleCurves plots moles against mass, from 0 to maxMass grams, for all the substances in subs, and
//saves the plot in filename. The format is given by the extension of filename (png, svg, pdf, ...).
//Where it falls in the plot, the point for one mole of each substance is marked.
func MoleCurves(subs []chem.Substance, maxMass float64, points int, title, filename string) error {
	if len(subs) == 0 {
		return fmt.Errorf("goChem/chemplot.MoleCurves: no substances given")
	}
	p := basicMolePlot(title)
	for key, s := range subs {
		pts, err := MoleCurve(s, maxMass, points)
		if err != nil {
			return err
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		r, g, b := colors(key, len(subs))
		c := color.RGBA{R: r, G: g, B: b, A: 255}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.String(), l)
		if s.MolarMass > maxMass {
			continue
		}
		//the point for one mole
		sc, err := plotter.NewScatter(plotter.XYs{{X: s.MolarMass, Y: 1}})
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Shape = getShape(key)
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
	}
	//here I  intentionally shadow err.
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
