/*
 * cmd_input.go, part of molmod.
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
	"github.com/n1Ray/molmod/qm"
	"github.com/spf13/cobra"
)

func newInputCmd() *cobra.Command {
	var (
		calcFile, name     string
		index              int
		charge, multi      int
		optimize, gradient bool
		run                bool
	)
	cmd := &cobra.Command{
		Use:   "input <molecule.cml>",
		Short: "Write an MPQC input for a molecule in a CML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mols, err := chem.CMLFileRead(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if index < 0 || index >= len(mols) {
				return fmt.Errorf("%s has %d molecules, can't use molecule %d", args[0], len(mols), index)
			}
			mol := mols[index]
			calc := new(qm.Calc)
			calc.SetDefaults()
			if calcFile != "" {
				if calc, err = qm.LoadCalc(calcFile); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed("optimize") {
				calc.Optimize = optimize
			}
			if flags.Changed("gradient") {
				calc.Gradient = gradient
			}
			if flags.Changed("charge") {
				mol.SetCharge(charge)
			}
			if flags.Changed("multiplicity") {
				mol.SetMulti(multi)
			}
			if calc.Title == "" {
				calc.Title = mol.Title
			}
			mpqc := qm.NewMPQCHandle()
			mpqc.SetName(name)
			if err := mpqc.BuildInput(mol.Coords, mol, calc); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mpqc.Input())
			if !run {
				return nil
			}
			if err := mpqc.Run(true); err != nil {
				return err
			}
			E, err := mpqc.Energy()
			if err != nil && !qm.IsProbableProblem(err) {
				return err
			} else if err != nil {
				log.Warningf("%s", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Energy: %.6f kcal/mol\n", E)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&calcFile, "calc", "c", "", "TOML file with the calculation options")
	f.StringVarP(&name, "name", "n", "molmod", "name of the job, used for the input and output files")
	f.IntVar(&index, "index", 0, "molecule to use, if the CML file has several")
	f.IntVar(&charge, "charge", 0, "total charge, overrides the one in the CML file")
	f.IntVar(&multi, "multiplicity", 1, "multiplicity, overrides the one in the CML file")
	f.BoolVar(&optimize, "optimize", false, "optimize the geometry")
	f.BoolVar(&gradient, "gradient", false, "compute the gradient (single points)")
	f.BoolVar(&run, "run", false, "run MPQC and wait for it to finish")
	return cmd
}
