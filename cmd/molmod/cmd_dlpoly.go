/*
 * cmd_dlpoly.go, part of molmod.
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

	"github.com/n1Ray/molmod/chemjson"
	"github.com/n1Ray/molmod/dlpoly"
	"github.com/n1Ray/molmod/fileparse"
	"github.com/spf13/cobra"
)

//dlpolyKind guesses the kind of a DL_POLY file from its name.
func dlpolyKind(path string) string {
	base := strings.ToUpper(filepath.Base(path))
	switch {
	case strings.Contains(base, "HISTORY"):
		return dlpoly.History
	case strings.Contains(base, "OUTPUT"):
		return dlpoly.Output
	}
	return ""
}

func newDLPolyCmd() *cobra.Command {
	var kind string
	var all bool
	cmd := &cobra.Command{
		Use:   "dlpoly <file>",
		Short: "Read a DL_POLY HISTORY or OUTPUT file and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind == "" {
				kind = dlpolyKind(args[0])
			}
			var p fileparse.LineParser
			switch kind {
			case dlpoly.History:
				p = dlpoly.NewHistoryParser()
			case dlpoly.Output:
				O := dlpoly.NewOutputParser()
				O.SkipEquilibration = !all
				p = O
			default:
				return fmt.Errorf("can't tell whether %s is a HISTORY or an OUTPUT file, use --kind", args[0])
			}
			D := fileparse.NewDriver()
			D.MustRegister(&fileparse.Spec{Name: kind, Parser: p})
			res, err := D.RunFile(args[0], nil)
			if err != nil {
				return fmt.Errorf("dlpoly %s: %w", args[0], err)
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
	cmd.Flags().StringVar(&kind, "kind", "", "history or output, guessed from the file name if not given")
	cmd.Flags().BoolVar(&all, "all", false, "keep the statistics of the equilibration period")
	return cmd
}
