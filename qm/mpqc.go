/*
 * mpqc.go, part of molmod.
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

package qm

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	chem "github.com/n1Ray/molmod"
	v3 "github.com/n1Ray/molmod/v3"
)

//MPQCHandle prepares, runs and reads MPQC calculations, using the
//simple ("awk") MPQC input format.
type MPQCHandle struct {
	command   string
	inputname string
	calc      *Calc
}

//NewMPQCHandle returns a handle with the default settings.
func NewMPQCHandle() *MPQCHandle {
	run := new(MPQCHandle)
	run.SetDefaults()
	return run
}

//MPQCHandle methods

func (O *MPQCHandle) SetName(name string) {
	O.inputname = name
}

//SetCommand sets the name or path of the MPQC executable.
func (O *MPQCHandle) SetCommand(name string) {
	O.command = name
}

func (O *MPQCHandle) SetDefaults() {
	O.command = "mpqc"
	O.inputname = "molmod"
}

//SetCalc sets the calculation options used to read an output produced
//by some other means. BuildInput sets them too.
func (O *MPQCHandle) SetCalc(Q *Calc) {
	O.calc = Q
}

//Input returns the name of the input file.
func (O *MPQCHandle) Input() string {
	return O.inputname + ".in"
}

//Output returns the name of the output file.
func (O *MPQCHandle) Output() string {
	return O.inputname + ".out"
}

//Command returns the command line that runs the calculation.
func (O *MPQCHandle) Command() string {
	return fmt.Sprintf("%s -o %s %s", O.command, O.Output(), O.Input())
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

//BuildInput writes an MPQC input for the atoms and coordinates given (in A)
//with the options in Q. Single points also state whether the gradient is wanted.
func (O *MPQCHandle) BuildInput(coords *v3.Matrix, atoms chem.AtomMultiCharger, Q *Calc) error {
	if atoms == nil || coords == nil || Q == nil {
		return Error{ErrMissingCharges, MPQC, O.inputname, "", []string{"BuildInput"}, true, nil}
	}
	if coords.NVecs() != atoms.Len() {
		return Error{ErrCantInput, MPQC, O.inputname, fmt.Sprintf("%d coordinates for %d atoms", coords.NVecs(), atoms.Len()), []string{"BuildInput"}, true, nil}
	}
	title := Q.Title
	if title == "" {
		title = O.inputname
	}
	inp, err := os.Create(O.Input())
	if err != nil {
		return Error{ErrCantInput, MPQC, O.inputname, "", []string{"os.Create", "BuildInput"}, true, err}
	}
	defer inp.Close()
	w := bufio.NewWriter(inp)
	fmt.Fprintf(w, "%% %s\n", title)
	if Q.Memory != "" {
		fmt.Fprintf(w, "memory: %s\n", Q.Memory)
	}
	fmt.Fprintf(w, "method: %s\n", Q.Method)
	fmt.Fprintf(w, "basis: %s\n", Q.Basis)
	fmt.Fprintf(w, "charge: %d\n", atoms.Charge())
	fmt.Fprintf(w, "multiplicity: %d\n", atoms.Multi())
	fmt.Fprintf(w, "molecule: \n")
	for i := 0; i < atoms.Len(); i++ {
		c := coords.VecView(i)
		fmt.Fprintf(w, "   %2s  % 10.7f  % 10.7f  % 10.7f\n", atoms.Atom(i).Symbol, c.At(0, 0), c.At(0, 1), c.At(0, 2))
	}
	fmt.Fprintf(w, "optimize: %s\n", yesno(Q.Optimize))
	if !Q.Optimize {
		fmt.Fprintf(w, "gradient: %s\n", yesno(Q.Gradient))
	}
	if err := w.Flush(); err != nil {
		return Error{ErrCantInput, MPQC, O.inputname, "", []string{"bufio.Flush", "BuildInput"}, true, err}
	}
	O.calc = Q
	log.Debugf("wrote %s", O.Input())
	return nil
}

//Run runs the command given by O.Command().
//it waits or not for the result depending on wait.
//Not waiting for results works
//only for unix-compatible systems, as it uses sh and nohup.
//After a calculation that was waited for, the temporary files are removed.
func (O *MPQCHandle) Run(wait bool) (err error) {
	com := O.Command()
	log.Infof("running %s", com)
	if wait {
		command := exec.Command("sh", "-c", com)
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+com)
		err = command.Start()
	}
	if err != nil {
		return Error{ErrNotRunning, MPQC, O.inputname, "", []string{"exec.Start/Run", "Run"}, true, err}
	}
	if wait {
		return O.RemoveTemporaryFiles()
	}
	return nil
}

//RemoveTemporaryFiles removes the wavefunction files MPQC leaves behind.
func (O *MPQCHandle) RemoveTemporaryFiles() error {
	tmps, err := filepath.Glob(O.inputname + ".wfn.*.tmp")
	if err != nil {
		return Error{ErrCantOutput, MPQC, O.inputname, "", []string{"filepath.Glob", "RemoveTemporaryFiles"}, true, err}
	}
	for _, t := range tmps {
		if err := os.Remove(t); err != nil {
			return Error{ErrCantOutput, MPQC, O.inputname, "", []string{"os.Remove", "RemoveTemporaryFiles"}, true, err}
		}
	}
	return nil
}

//Summary parses the output of the calculation. What is read depends on
//the Calc given to BuildInput or SetCalc. Without one, everything is read.
func (O *MPQCHandle) Summary() (*Summary, error) {
	var run any
	if O.calc != nil {
		run = O.calc
	}
	res, err := NewMPQCDriver().RunFile(O.Output(), run)
	if err != nil {
		return nil, Error{ErrCantOutput, MPQC, O.inputname, "", []string{"Driver.RunFile", "Summary"}, true, err}
	}
	return NewSummary(res), nil
}

//Energy returns the last energy of the calculation, in kcal/mol.
//If MPQC printed warnings, the energy is returned together with
//a non-critical Error (ErrProbableProblem).
func (O *MPQCHandle) Energy() (float64, error) {
	S, err := O.Summary()
	if err != nil {
		return 0, errDecorate(err, "Energy")
	}
	energies := S.Energies
	if len(energies) == 0 {
		energies = S.SCFEnergies
	}
	if len(energies) == 0 {
		return 0, Error{ErrNoEnergy, MPQC, O.inputname, "", []string{"Energy"}, true, nil}
	}
	energy := energies[len(energies)-1] * chem.H2Kcal
	if S.Warnings {
		return energy, Error{ErrProbableProblem, MPQC, O.inputname, "MPQC printed warnings", []string{"Energy"}, false, nil}
	}
	return energy, nil
}

//OptimizedGeometry returns the last geometry of an optimization, in A.
//If the optimization didn't converge, or MPQC printed warnings, the geometry
//is returned together with a non-critical Error (ErrProbableProblem).
func (O *MPQCHandle) OptimizedGeometry(atoms chem.Atomer) (*v3.Matrix, error) {
	S, err := O.Summary()
	if err != nil {
		return nil, errDecorate(err, "OptimizedGeometry")
	}
	if len(S.Geometries) == 0 {
		return nil, Error{ErrNoGeometry, MPQC, O.inputname, "", []string{"OptimizedGeometry"}, true, nil}
	}
	last := S.Geometries[len(S.Geometries)-1]
	if atoms != nil && atoms.Len() != last.Len() {
		return nil, Error{ErrNoGeometry, MPQC, O.inputname, fmt.Sprintf("%d atoms in the output, %d expected", last.Len(), atoms.Len()), []string{"OptimizedGeometry"}, true, nil}
	}
	if !S.Converged {
		return last.Coords, Error{ErrProbableProblem, MPQC, O.inputname, "The optimization didn't converge", []string{"OptimizedGeometry"}, false, nil}
	}
	if S.Warnings {
		return last.Coords, Error{ErrProbableProblem, MPQC, O.inputname, "MPQC printed warnings", []string{"OptimizedGeometry"}, false, nil}
	}
	return last.Coords, nil
}

//Gradient returns the last gradient printed by MPQC, in Hartree/bohr.
func (O *MPQCHandle) Gradient() (*v3.Matrix, error) {
	S, err := O.Summary()
	if err != nil {
		return nil, errDecorate(err, "Gradient")
	}
	if len(S.Gradients) == 0 {
		return nil, Error{ErrNoGradient, MPQC, O.inputname, "", []string{"Gradient"}, true, nil}
	}
	return S.Gradients[len(S.Gradients)-1], nil
}
