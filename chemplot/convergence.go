/*
 * convergence.go, part of molmod.
 *
 * Copyright 2024 The molmod authors.
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
 */

package chemplot

import (
	"fmt"

	v3 "github.com/n1Ray/molmod/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicStepPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Step"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//steps turns values into points with the step number (from 1) as X.
func steps(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	return pts
}

func addSeries(p *plot.Plot, values []float64, name string, key, total int) error {
	l, err := plotter.NewLine(steps(values))
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Color = colors(key, total)
	p.Add(l)
	if name != "" {
		p.Legend.Add(name, l)
	}
	return nil
}

//EnergyPlot produces a PNG plot, plotname.png, of one or more series of energies
//against the step number, for instance the SCF and the molecular energies of an optimization.
//The energies are plotted in whatever unit they are given.
func EnergyPlot(title, plotname string, series ...[]float64) error {
	if len(series) == 0 {
		return fmt.Errorf("EnergyPlot: no data to plot")
	}
	p := basicStepPlot(title, "Energy")
	for key, s := range series {
		if len(s) == 0 {
			return fmt.Errorf("EnergyPlot: series %d is empty", key)
		}
		name := ""
		if len(series) > 1 {
			name = fmt.Sprintf("Series %d", key+1)
		}
		if err := addSeries(p, s, name, key, len(series)); err != nil {
			return fmt.Errorf("EnergyPlot: %w", err)
		}
	}
	if err := p.Save(5*vg.Inch, 4*vg.Inch, plotname+".png"); err != nil {
		return fmt.Errorf("EnergyPlot: %w", err)
	}
	return nil
}

//GradientPlot produces a PNG plot, plotname.png, with the RMS and the largest
//absolute component of each gradient in grads, against the step number.
func GradientPlot(title, plotname string, grads []*v3.Matrix) error {
	if len(grads) == 0 {
		return fmt.Errorf("GradientPlot: no data to plot")
	}
	rms := make([]float64, len(grads))
	maxabs := make([]float64, len(grads))
	for i, g := range grads {
		rms[i] = g.RMS()
		maxabs[i] = g.MaxAbs()
	}
	p := basicStepPlot(title, "Gradient")
	if err := addSeries(p, rms, "RMS", 0, 2); err != nil {
		return fmt.Errorf("GradientPlot: %w", err)
	}
	if err := addSeries(p, maxabs, "Max", 1, 2); err != nil {
		return fmt.Errorf("GradientPlot: %w", err)
	}
	if err := p.Save(5*vg.Inch, 4*vg.Inch, plotname+".png"); err != nil {
		return fmt.Errorf("GradientPlot: %w", err)
	}
	return nil
}
