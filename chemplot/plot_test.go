/*
 * plot_test.go, part of molmod.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/n1Ray/molmod/qm"
)

func optimization(Te *testing.T) *qm.Summary {
	Te.Helper()
	res, err := qm.NewMPQCDriver().RunFile("../test/h2o_opt.out", &qm.Calc{Optimize: true, Gradient: true})
	if err != nil {
		Te.Fatal(err)
	}
	return qm.NewSummary(res)
}

func checkPNG(Te *testing.T, name string) {
	Te.Helper()
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("%s is empty", name)
	}
}

func TestEnergyPlot(Te *testing.T) {
	S := optimization(Te)
	name := filepath.Join(Te.TempDir(), "energies")
	if err := EnergyPlot("Water optimization", name, S.SCFEnergies, S.Energies); err != nil {
		Te.Fatal(err)
	}
	checkPNG(Te, name+".png")
	if err := EnergyPlot("Nothing", name); err == nil {
		Te.Error("a plot without data should give an error")
	}
	if err := EnergyPlot("Empty", name, S.Energies, nil); err == nil {
		Te.Error("an empty series should give an error")
	}
}

func TestGradientPlot(Te *testing.T) {
	S := optimization(Te)
	name := filepath.Join(Te.TempDir(), "gradients")
	if err := GradientPlot("Water optimization", name, S.Gradients); err != nil {
		Te.Fatal(err)
	}
	checkPNG(Te, name+".png")
	if err := GradientPlot("Nothing", name, nil); err == nil {
		Te.Error("a plot without data should give an error")
	}
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 5; i++ {
		c := colors(i, 5)
		k := [3]uint8{c.R, c.G, c.B}
		if seen[k] {
			Te.Errorf("color %v repeated", c)
		}
		seen[k] = true
	}
	if r, g, b := iHVS2RGB(0, 1, 0); r != 255 || g != 255 || b != 255 {
		Te.Errorf("no saturation should give white, got %d %d %d", r, g, b)
	}
}
