/*
 * output.go, part of molmod.
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

package dlpoly

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/n1Ray/molmod/fileparse"
)

//OutputColumns names the 30 values of each row read by OutputParser.
//Energies are in the DL_POLY unit (10 J/mol), time in ps, cpu time in s,
//volume in A^3, angles in degrees and pressure in katm.
var OutputColumns = [30]string{
	"step", "eng_tot", "temp_tot", "eng_cfg", "eng_vdw", "eng_cou", "eng_bnd", "eng_ang", "eng_dih", "eng_tet",
	"time", "eng_pv", "temp_rot", "vir_cfg", "vir_vdw", "vir_cou", "vir_bnd", "vir_ang", "vir_con", "vir_tet",
	"cpu", "volume", "temp_shl", "eng_shl", "vir_shl", "alpha", "beta", "gamma", "vir_pmf", "press",
}

var (
	equilibrationPattern = fileparse.NewPattern("equilibration", `^\s*equilibration period\D*(?P<steps>\d+)`)
	markerPattern        = fileparse.NewPattern("marker", `^\s?-{100,}\s*$`)
)

//Widths of the fixed-format columns of the OUTPUT statistics.
const (
	firstWidth = 10
	colWidth   = 12
	nperline   = 10
)

//OutputParser reads the instantaneous statistics that DL_POLY prints
//every few steps in its OUTPUT file. Each printout is three lines of 10
//fixed-width numbers right after a dashed separator, and gives one row of
//30 values (see OutputColumns). The result is a [][]float64.
//Rows from the equilibration period are skipped if SkipEquilibration is set,
//and a row repeating the step of the previous one is dropped.
type OutputParser struct {
	SkipEquilibration bool

	equilibration int
	marked        bool
	row           []float64
	part          int //lines of row read so far
	last          int
	rows          [][]float64
}

//NewOutputParser returns an OutputParser that skips the equilibration period.
func NewOutputParser() *OutputParser {
	O := &OutputParser{SkipEquilibration: true}
	O.Reset()
	return O
}

func (O *OutputParser) Reset() {
	O.equilibration = 0
	O.marked = false
	O.row = nil
	O.part = 0
	O.last = -1
	O.rows = make([][]float64, 0, 8)
}

//columns splits one line of statistics into its 10 numbers.
func columns(line string) ([]float64, error) {
	if len(line) < firstWidth+(nperline-1)*colWidth {
		return nil, fmt.Errorf("statistics line too short (%d characters)", len(line))
	}
	ret := make([]float64, nperline)
	for i := range ret {
		from, to := firstWidth+(i-1)*colWidth, firstWidth+i*colWidth
		if i == 0 {
			from, to = 0, firstWidth
		}
		v, err := fileparse.ParseFloat(strings.TrimSpace(line[from:to]))
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

func (O *OutputParser) Parse(line string) error {
	if O.part > 0 {
		c, err := columns(line)
		if err != nil {
			return perr(line, err)
		}
		O.row = append(O.row, c...)
		O.part++
		if O.part == 3 {
			O.rows = append(O.rows, O.row)
			O.last = int(O.row[0])
			O.row = nil
			O.part = 0
		}
		return nil
	}
	if f, ok := equilibrationPattern.Fields(line); ok {
		n, err := strconv.Atoi(f["steps"])
		if err != nil {
			return perr(line, err)
		}
		O.equilibration = n
		return nil
	}
	wasMarked := O.marked
	if wasMarked && strings.TrimSpace(line) == "" {
		return nil
	}
	O.marked = markerPattern.Match(line)
	if !wasMarked || O.marked || len(line) < firstWidth {
		return nil
	}
	step, err := strconv.Atoi(strings.TrimSpace(line[:firstWidth]))
	if err != nil {
		return nil //a header line, not statistics
	}
	if (O.SkipEquilibration && step < O.equilibration) || step == O.last {
		return nil
	}
	c, err := columns(line)
	if err != nil {
		return perr(line, err)
	}
	O.row = c
	O.part = 1
	return nil
}

//Result returns a copy of the list of rows read.
func (O *OutputParser) Result() any {
	ret := make([][]float64, len(O.rows))
	copy(ret, O.rows)
	return ret
}

//Open reports whether the input ended in the middle of a row.
func (O *OutputParser) Open() bool {
	return O.part > 0
}

//ReadOutput returns the statistics rows of the OUTPUT file at path,
//skipping the equilibration period.
func ReadOutput(path string) ([][]float64, error) {
	D := fileparse.NewDriver()
	D.MustRegister(&fileparse.Spec{Name: Output, Parser: NewOutputParser()})
	res, err := D.RunFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("ReadOutput: %w", err)
	}
	return res[Output].([][]float64), nil
}
