/*
 * qm.go, part of molmod.
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

package qm

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	chem "github.com/n1Ray/molmod"
	v3 "github.com/n1Ray/molmod/v3"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("molmod.qm")

//This allows to set QM calculations using different programs.
type Handle interface {

	//Sets the name for the job, used for input
	//and output files. The extentions will depend on the program.
	SetName(name string)

	//BuildInput builds an input for the QM program based int the data in
	//atoms, coords and C. returns only error.
	BuildInput(coords *v3.Matrix, atoms chem.AtomMultiCharger, Q *Calc) error

	//Run runs the QM program for a calculation previously set.
	//it waits or not for the result depending of the value of
	//wait.
	Run(wait bool) (err error)

	//Energy gets the last energy for a  calculation by parsing the
	//QM program's output file. Return error if fail. Also returns
	//Error ("Probable problem in calculation")
	//if there is a energy but the calculation didnt end properly.
	Energy() (float64, error)

	//OptimizedGeometry reads the optimized geometry from a calculation
	//output. Returns error if fail. Returns Error ("Probable problem
	//in calculation") if there is a geometry but the calculation didnt
	//end properly*
	OptimizedGeometry(atoms chem.Atomer) (*v3.Matrix, error)
}

//Calc contains the options for a calculation. The same Calc
//is meant to work with any supported program.
type Calc struct {
	Title    string `toml:"title"`
	Method   string `toml:"method"`
	Basis    string `toml:"basis"`
	Memory   string `toml:"memory"` //passed verbatim to the program, i.e. "32MB"
	Optimize bool   `toml:"optimize"`
	Gradient bool   `toml:"gradient"` //only meaningful for single points
}

//SetDefaults sets a Hartree-Fock calculation with the STO-3G basis.
func (Q *Calc) SetDefaults() {
	Q.Method = "HF"
	Q.Basis = "STO-3G"
}

//LoadCalc reads a Calc from the TOML file filename. Options missing
//from the file keep their default values.
func LoadCalc(filename string) (*Calc, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("LoadCalc: %w", err)
	}
	defer f.Close()
	return ReadCalc(f)
}

//ReadCalc is like LoadCalc, but reads the TOML document from r.
func ReadCalc(r io.Reader) (*Calc, error) {
	Q := new(Calc)
	Q.SetDefaults()
	meta, err := toml.NewDecoder(r).Decode(Q)
	if err != nil {
		return nil, fmt.Errorf("ReadCalc: %w", err)
	}
	for _, k := range meta.Undecoded() {
		log.Warningf("unknown calculation option %q ignored", k.String())
	}
	return Q, nil
}
