/*
 * json.go, part of molmod.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chemjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	chem "github.com/n1Ray/molmod"
	"github.com/n1Ray/molmod/dlpoly"
	"github.com/n1Ray/molmod/fileparse"
	v3 "github.com/n1Ray/molmod/v3"
	"gonum.org/v1/gonum/mat"
)

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Parser        string //Which parser's result?
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) // Yo, dawg, I heard you like errors, so I got an error while serializing your error so you can... you know the drill.
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//A ready-to-serialize container for a geometry.
type Geometry struct {
	Title   string      `json:",omitempty"`
	Symbols []string
	Coords  [][]float64 //one row per atom, in A
}

//Information to be passed back to the calling program. Each map
//is keyed by the name of the parser that produced the data.
type Info struct {
	Parsers    []string
	FloatInfo  map[string][]float64     `json:",omitempty"` //energy series
	BoolInfo   map[string]bool          `json:",omitempty"` //flags
	Geometries map[string][]Geometry    `json:",omitempty"`
	MatrixInfo map[string][][][]float64 `json:",omitempty"` //gradients, one row per atom
	StringInfo map[string][][]string    `json:",omitempty"` //raw blocks of lines
	TableInfo  map[string][][]float64   `json:",omitempty"` //rows of numbers, such as DL_POLY statistics
	Frames     map[string][]Frame       `json:",omitempty"`
}

//A ready-to-serialize trajectory frame. Matrices have one row per atom.
type Frame struct {
	Step     int
	Timestep float64
	Time     float64
	Cell     [][]float64 `json:",omitempty"`
	Symbols  []string
	Masses   []float64
	Charges  []float64
	Pos      [][]float64
	Vel      [][]float64 `json:",omitempty"`
	Frc      [][]float64 `json:",omitempty"`
}

func newFrame(f *dlpoly.Frame) Frame {
	return Frame{
		Step:     f.Step,
		Timestep: f.Timestep,
		Time:     f.Time,
		Cell:     rows(f.Cell),
		Symbols:  f.Symbols,
		Masses:   f.Masses,
		Charges:  f.Charges,
		Pos:      rows(f.Pos),
		Vel:      rows(f.Vel),
		Frc:      rows(f.Frc),
	}
}

func rows(m *v3.Matrix) [][]float64 {
	if m == nil {
		return nil
	}
	ret := make([][]float64, m.NVecs())
	for i := range ret {
		ret[i] = mat.Row(nil, i, v3.Matrix2Dense(m))
	}
	return ret
}

//FromResults puts the results of a parsing pass in an Info. It returns an
//error for results of types it doesn't know how to serialize.
func FromResults(res fileparse.Results) (*Info, *Error) {
	const funcname = "FromResults"
	J := &Info{Parsers: res.Names()}
	for _, name := range J.Parsers {
		switch r := res[name].(type) {
		case []float64:
			if J.FloatInfo == nil {
				J.FloatInfo = make(map[string][]float64)
			}
			J.FloatInfo[name] = r
		case bool:
			if J.BoolInfo == nil {
				J.BoolInfo = make(map[string]bool)
			}
			J.BoolInfo[name] = r
		case []*chem.Molecule:
			if J.Geometries == nil {
				J.Geometries = make(map[string][]Geometry)
			}
			geos := make([]Geometry, len(r))
			for i, mol := range r {
				geos[i] = Geometry{Title: mol.Title, Symbols: mol.Symbols(), Coords: rows(mol.Coords)}
			}
			J.Geometries[name] = geos
		case []*v3.Matrix:
			if J.MatrixInfo == nil {
				J.MatrixInfo = make(map[string][][][]float64)
			}
			mats := make([][][]float64, len(r))
			for i, m := range r {
				mats[i] = rows(m)
			}
			J.MatrixInfo[name] = mats
		case [][]string:
			if J.StringInfo == nil {
				J.StringInfo = make(map[string][][]string)
			}
			J.StringInfo[name] = r
		case [][]float64:
			if J.TableInfo == nil {
				J.TableInfo = make(map[string][][]float64)
			}
			J.TableInfo[name] = r
		case []*dlpoly.Frame:
			if J.Frames == nil {
				J.Frames = make(map[string][]Frame)
			}
			frames := make([]Frame, len(r))
			for i, f := range r {
				frames[i] = newFrame(f)
			}
			J.Frames[name] = frames
		default:
			jerr := NewError("process", funcname, fmt.Errorf("can't serialize a result of type %T", r))
			jerr.Parser = name
			return nil, jerr
		}
	}
	return J, nil
}

//Send Marshals the info and writes to out, returns an error or nil
func (J *Info) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Info.Send", err)
	}
	return nil
}

//DecodeInfo reads an Info sent with Send from in.
func DecodeInfo(in io.Reader) (*Info, *Error) {
	J := new(Info)
	if err := json.NewDecoder(in).Decode(J); err != nil {
		return nil, NewError("process", "DecodeInfo", err)
	}
	return J, nil
}
