/*
 * cmd_geom.go, part of molmod.
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
	"path/filepath"
	"strings"

	chem "github.com/n1Ray/molmod"
	"github.com/n1Ray/molmod/qm"
	"github.com/spf13/cobra"
)

func newGeomCmd() *cobra.Command {
	var out string
	var xyz bool
	cmd := &cobra.Command{
		Use:   "geom <output>",
		Short: "Write the last geometry in an MPQC output as CML (or XYZ)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseOutput(args[0], &qm.Calc{Optimize: true})
			if err != nil {
				return err
			}
			S := qm.NewSummary(res)
			if len(S.Geometries) == 0 {
				return fmt.Errorf("no geometry in %s", args[0])
			}
			if !S.Converged {
				log.Warningf("%s: the optimization didn't converge, writing the last geometry", args[0])
			}
			mol := S.Geometries[len(S.Geometries)-1]
			mol.Title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			switch {
			case out != "" && xyz:
				return chem.XYZFileWrite(out, mol.Coords, mol)
			case out != "":
				return chem.CMLFileWrite(out, []*chem.Molecule{mol})
			case xyz:
				return chem.XYZWrite(cmd.OutOrStdout(), mol.Coords, mol)
			}
			return chem.DumpCML(cmd.OutOrStdout(), []*chem.Molecule{mol})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, standard output if not given")
	cmd.Flags().BoolVar(&xyz, "xyz", false, "write XYZ instead of CML")
	return cmd
}
