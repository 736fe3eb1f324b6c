/*
 * cmd_plot.go, part of molmod.
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

package main

import (
	"fmt"

	chem "github.com/n1Ray/molmod"
	"github.com/n1Ray/molmod/chemplot"
	"github.com/n1Ray/molmod/qm"
	"github.com/spf13/cobra"
)

func toKcal(energies []float64) []float64 {
	ret := make([]float64, len(energies))
	for i, e := range energies {
		ret[i] = e * chem.H2Kcal
	}
	return ret
}

func newPlotCmd() *cobra.Command {
	var name, title string
	cmd := &cobra.Command{
		Use:   "plot <output>",
		Short: "Plot the energies (and gradients, if any) of an MPQC output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseOutput(args[0], nil)
			if err != nil {
				return err
			}
			S := qm.NewSummary(res)
			if title == "" {
				title = args[0]
			}
			series := make([][]float64, 0, 2)
			for _, s := range [][]float64{S.SCFEnergies, S.Energies} {
				if len(s) > 0 {
					series = append(series, toKcal(s))
				}
			}
			if len(series) == 0 {
				return fmt.Errorf("no energies in %s", args[0])
			}
			if err := chemplot.EnergyPlot(title+" (kcal/mol)", name, series...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name+".png")
			if len(S.Gradients) == 0 {
				return nil
			}
			if err := chemplot.GradientPlot(title+" (Hartree/bohr)", name+"_gradient", S.Gradients); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name+"_gradient.png")
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "out", "o", "energies", "name of the plot, without extension")
	cmd.Flags().StringVarP(&title, "title", "t", "", "title of the plot, the output name if not given")
	return cmd
}
