/*
 * cmd_parse.go, part of molmod.
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

	"github.com/n1Ray/molmod/chemjson"
	"github.com/n1Ray/molmod/fileparse"
	"github.com/n1Ray/molmod/qm"
	"github.com/spf13/cobra"
)

//runContext returns the Calc that decides which parsers run. Without
//--gradient or --optimize everything is parsed.
func runContext(cmd *cobra.Command, gradient, optimize bool) any {
	if !cmd.Flags().Changed("gradient") && !cmd.Flags().Changed("optimize") {
		return nil
	}
	return &qm.Calc{Gradient: gradient, Optimize: optimize}
}

//parseOutput runs the MPQC parsers over filename.
func parseOutput(filename string, run any) (fileparse.Results, error) {
	res, err := qm.NewMPQCDriver().RunFile(filename, run)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return res, nil
}

func newParseCmd() *cobra.Command {
	var gradient, optimize bool
	cmd := &cobra.Command{
		Use:   "parse <output>",
		Short: "Extract energies, flags, geometries and gradients from an MPQC output as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := parseOutput(args[0], runContext(cmd, gradient, optimize))
			if err != nil {
				return err
			}
			info, jerr := chemjson.FromResults(res)
			if jerr != nil {
				return jerr
			}
			if jerr := info.Send(cmd.OutOrStdout()); jerr != nil {
				return jerr
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&gradient, "gradient", false, "parse gradients")
	cmd.Flags().BoolVar(&optimize, "optimize", false, "parse geometries and convergence")
	return cmd
}
