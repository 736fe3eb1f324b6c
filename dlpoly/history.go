/*
 * history.go, part of molmod.
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
	v3 "github.com/n1Ray/molmod/v3"
	"github.com/tliron/commonlog"
	"gonum.org/v1/gonum/mat"
)

var log = commonlog.GetLogger("molmod.dlpoly")

//Names under which ReadHistory and ReadOutput register their parsers.
const (
	History = "history"
	Output  = "output"
)

//Frame is one configuration of a HISTORY file.
type Frame struct {
	Step     int
	Timestep float64    //ps
	Time     float64    //ps
	Cell     *v3.Matrix //one cell vector per row, A. nil without periodic boundaries.
	Symbols  []string
	Masses   []float64  //amu
	Charges  []float64  //e
	Pos      *v3.Matrix //A
	Vel      *v3.Matrix //A/ps, nil unless the file has velocities
	Frc      *v3.Matrix //amu A/ps^2, nil unless the file has forces
}

//HistoryParser reads the frames of a DL_POLY HISTORY file. Its result
//is a []*Frame. The first two lines of the file are the title and the
//trajectory key, periodic boundary key and number of atoms.
//Lines between frames that don't start a frame are ignored, but
//a malformed line inside a frame is an error.
type HistoryParser struct {
	Title  string
	Keytrj int //0 positions, 1 also velocities, 2 also forces
	Imcon  int //0 means no cell
	Natoms int

	header  int //header lines read
	frames  []*Frame
	current *Frame
	n       int //line of the current frame, the timestep line being 0
	keytrj  int
	imcon   int
}

//NewHistoryParser returns a ready HistoryParser.
func NewHistoryParser() *HistoryParser {
	H := new(HistoryParser)
	H.Reset()
	return H
}

func (H *HistoryParser) Reset() {
	H.Title = ""
	H.Keytrj, H.Imcon, H.Natoms = 0, 0, 0
	H.header = 0
	H.frames = make([]*Frame, 0, 4)
	H.current = nil
	H.n = 0
}

func ints(words []string) ([]int, error) {
	ret := make([]int, len(words))
	for i, w := range words {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, err
		}
		ret[i] = v
	}
	return ret, nil
}

//three reads the 3 numbers in line.
func three(line string) ([3]float64, error) {
	var ret [3]float64
	f := strings.Fields(line)
	if len(f) != 3 {
		return ret, fmt.Errorf("%d numbers where 3 were expected", len(f))
	}
	for i, w := range f {
		v, err := fileparse.ParseFloat(w)
		if err != nil {
			return ret, err
		}
		ret[i] = v
	}
	return ret, nil
}

func perr(line string, err error) error {
	return &fileparse.ParseError{Text: line, Err: err}
}

func (H *HistoryParser) Parse(line string) error {
	switch H.header {
	case 0:
		H.Title = strings.TrimSpace(line)
		H.header++
		return nil
	case 1:
		v, err := ints(strings.Fields(line))
		if err == nil && len(v) < 3 {
			err = fmt.Errorf("%d integers where 3 were expected", len(v))
		}
		if err != nil {
			return perr(line, err)
		}
		H.Keytrj, H.Imcon, H.Natoms = v[0], v[1], v[2]
		H.header++
		return nil
	}
	if H.current == nil {
		return H.startFrame(line)
	}
	return H.frameLine(line)
}

//startFrame reads a line like
//  timestep  4000  3  2  2  0.001000
//with the step, number of atoms, trajectory key, periodic boundary key
//and timestep. Newer versions add the time as a seventh field.
func (H *HistoryParser) startFrame(line string) error {
	f := strings.Fields(line)
	if len(f) == 0 || f[0] != "timestep" {
		return nil
	}
	if len(f) < 6 {
		return perr(line, fmt.Errorf("%d fields in a timestep line, at least 6 expected", len(f)))
	}
	v, err := ints(f[1:5])
	if err != nil {
		return perr(line, err)
	}
	if v[1] <= 0 {
		return perr(line, fmt.Errorf("%d atoms in a frame", v[1]))
	}
	fr := &Frame{Step: v[0]}
	if fr.Timestep, err = fileparse.ParseFloat(f[5]); err != nil {
		return perr(line, err)
	}
	fr.Time = float64(fr.Step) * fr.Timestep
	if len(f) > 6 {
		if fr.Time, err = fileparse.ParseFloat(f[6]); err != nil {
			return perr(line, err)
		}
	}
	natoms := v[1]
	H.keytrj, H.imcon = v[2], v[3]
	if H.keytrj > 2 {
		H.keytrj = 2
	}
	fr.Symbols = make([]string, 0, natoms)
	fr.Masses = make([]float64, natoms)
	fr.Charges = make([]float64, natoms)
	fr.Pos = v3.Zeros(natoms)
	if H.keytrj > 0 {
		fr.Vel = v3.Zeros(natoms)
	}
	if H.keytrj > 1 {
		fr.Frc = v3.Zeros(natoms)
	}
	if H.imcon > 0 {
		fr.Cell = v3.Dense2Matrix(mat.NewDense(3, 3, nil))
	}
	H.current = fr
	H.n = 1
	return nil
}

func (H *HistoryParser) cellLines() int {
	if H.imcon > 0 {
		return 3
	}
	return 0
}

func (H *HistoryParser) frameLine(line string) error {
	fr := H.current
	ncell := H.cellLines()
	defer func() { H.n++ }()
	if H.n <= ncell {
		c, err := three(line)
		if err != nil {
			return perr(line, err)
		}
		fr.Cell.SetRow(H.n-1, c[:])
		return nil
	}
	per := 2 + H.keytrj
	k := H.n - 1 - ncell
	atom, which := k/per, k%per
	switch which {
	case 0:
		f := strings.Fields(line)
		if len(f) < 4 {
			return perr(line, fmt.Errorf("atom line with %d fields, at least 4 expected", len(f)))
		}
		m, err := fileparse.ParseFloat(f[2])
		if err != nil {
			return perr(line, err)
		}
		q, err := fileparse.ParseFloat(f[3])
		if err != nil {
			return perr(line, err)
		}
		fr.Symbols = append(fr.Symbols, f[0])
		fr.Masses[atom] = m
		fr.Charges[atom] = q
		return nil
	}
	c, err := three(line)
	if err != nil {
		return perr(line, err)
	}
	target := []*v3.Matrix{nil, fr.Pos, fr.Vel, fr.Frc}[which]
	target.SetRow(atom, c[:])
	if atom == len(fr.Masses)-1 && which == per-1 {
		H.frames = append(H.frames, fr)
		H.current = nil
	}
	return nil
}

//Result returns a copy of the list of complete frames read.
func (H *HistoryParser) Result() any {
	ret := make([]*Frame, len(H.frames))
	copy(ret, H.frames)
	return ret
}

//Open reports whether the input ended in the middle of a frame.
func (H *HistoryParser) Open() bool {
	return H.current != nil
}

//ReadHistory returns all the complete frames in the HISTORY file at path.
func ReadHistory(path string) ([]*Frame, error) {
	D := fileparse.NewDriver()
	D.MustRegister(&fileparse.Spec{Name: History, Parser: NewHistoryParser()})
	res, err := D.RunFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("ReadHistory: %w", err)
	}
	frames := res[History].([]*Frame)
	log.Debugf("%s: %d frames", path, len(frames))
	return frames, nil
}
