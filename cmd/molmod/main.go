/*
 * main.go, part of molmod.
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
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("molmod")

func newRootCmd() *cobra.Command {
	var verbose int
	var logfile string
	rootCmd := &cobra.Command{
		Use:          "molmod",
		Short:        "Prepare MPQC calculations and extract results from their outputs",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logfile != "" {
				commonlog.Configure(verbose, &logfile)
			} else {
				commonlog.Configure(verbose, nil)
			}
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "more logging, can be repeated")
	rootCmd.PersistentFlags().StringVar(&logfile, "log", "", "write the log to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newInputCmd())
	rootCmd.AddCommand(newGeomCmd())
	rootCmd.AddCommand(newPlotCmd())
	rootCmd.AddCommand(newDLPolyCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
