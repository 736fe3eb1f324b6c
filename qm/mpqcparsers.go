/*
 * mpqcparsers.go, part of molmod.
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
	chem "github.com/n1Ray/molmod"
	"github.com/n1Ray/molmod/fileparse"
	v3 "github.com/n1Ray/molmod/v3"
)

//Names under which NewMPQCDriver registers its parsers.
const (
	SCFEnergies       = "scf_energies"
	MolecularEnergies = "energies"
	Warnings          = "warnings"
	Converged         = "converged"
	Geometries        = "geometries"
	Gradients         = "gradients"
)

//Patterns for the lines MPQC prints. Energies are in Hartree
//and geometries in A.
var (
	scfEnergyPattern       = fileparse.NewPattern("scf energy", `total scf energy =\s+(?P<energy>\S+)`)
	molecularEnergyPattern = fileparse.NewPattern("molecular energy", `Value of the MolecularEnergy:\s+(?P<energy>\S+)`)
	warningPattern         = fileparse.NewPattern("warning", `WARNING:`)
	convergedPattern       = fileparse.NewPattern("converged", `The optimization has converged\.`)

	geometryStart = fileparse.NewPattern("geometry start", `n\s+atoms\s+geometry`)
	geometryEnd   = fileparse.NewPattern("geometry end", `}$`)
	//both "1  O [ x y z ]" and "O x y z"
	atomPattern = fileparse.NewPattern("atom", `^\s*(?:\d+\s+)?(?P<symbol>[A-Za-z]{1,3})\s+\[?\s*(?P<x>\S+?)\s+(?P<y>\S+?)\s+(?P<z>[^\s\]]+)\s*\]?\s*$`)

	gradientStart   = fileparse.NewPattern("gradient start", `Gradient of the MolecularEnergy:`)
	gradientEnd     = fileparse.NewPattern("gradient end", `^\s*$`)
	gradientPattern = fileparse.NewPattern("gradient", `^\s*\d+\s+(?P<gradient>\S+)`)
)

//NewSCFEnergies returns a parser for the SCF energy of every SCF
//procedure in an MPQC output.
func NewSCFEnergies() *fileparse.FloatSeries {
	return fileparse.NewFloatSeries(scfEnergyPattern, "energy")
}

//NewMolecularEnergies returns a parser for the final energy of each
//step. For correlated methods these differ from the SCF energies.
func NewMolecularEnergies() *fileparse.FloatSeries {
	return fileparse.NewFloatSeries(molecularEnergyPattern, "energy")
}

//NewWarnings returns a flag raised by any MPQC warning, usually about
//the accuracy of some integral or of the SCF.
func NewWarnings() *fileparse.Flag {
	return fileparse.NewFlag(warningPattern)
}

//NewConverged returns a flag raised when a geometry optimization converges.
func NewConverged() *fileparse.Flag {
	return fileparse.NewFlag(convergedPattern)
}

//GeometryCollector turns blocks of atom lines into molecules.
//Its result is a []*chem.Molecule, one per block. Lines in a block
//that don't look like an atom are ignored.
type GeometryCollector struct {
	Atom   *fileparse.Pattern //must have the groups symbol, x, y and z
	mols   []*chem.Molecule
	atoms  []*chem.Atom
	coords []float64
}

func (G *GeometryCollector) Reset() {
	G.mols = make([]*chem.Molecule, 0, 2)
	G.atoms = nil
	G.coords = nil
}

func (G *GeometryCollector) StartCollecting() {
	G.atoms = make([]*chem.Atom, 0, 10)
	G.coords = make([]float64, 0, 30)
}

func (G *GeometryCollector) Collect(line string) error {
	f, ok := G.Atom.Fields(line)
	if !ok {
		return nil
	}
	at, err := chem.NewAtom(f["symbol"])
	if err != nil {
		return &fileparse.ParseError{Text: line, Err: err}
	}
	var xyz [3]float64
	for i, k := range []string{"x", "y", "z"} {
		xyz[i], err = fileparse.ParseFloat(f[k])
		if err != nil {
			return &fileparse.ParseError{Text: line, Err: err}
		}
	}
	G.atoms = append(G.atoms, at)
	G.coords = append(G.coords, xyz[:]...)
	return nil
}

func (G *GeometryCollector) StopCollecting() error {
	defer func() { G.atoms, G.coords = nil, nil }()
	if len(G.atoms) == 0 {
		return &fileparse.ShapeError{Len: 0, Width: 3}
	}
	coords, err := v3.NewMatrix(G.coords)
	if err != nil {
		return &fileparse.ShapeError{Len: len(G.coords), Width: 3}
	}
	mol, err := chem.NewMolecule("", G.atoms, coords)
	if err != nil {
		return err
	}
	G.mols = append(G.mols, mol)
	return nil
}

//Result returns a copy of the list of molecules read. The molecules
//themselves are shared.
func (G *GeometryCollector) Result() any {
	ret := make([]*chem.Molecule, len(G.mols))
	copy(ret, G.mols)
	return ret
}

//NewGeometryParser returns a parser for the geometry blocks delimited by
//start and end, where each atom line matches atom.
func NewGeometryParser(start, end, atom *fileparse.Pattern) *fileparse.MultiLine {
	return fileparse.NewMultiLine(start, end, &GeometryCollector{Atom: atom})
}

//NewGeometries returns a parser for the geometries MPQC prints at each
//optimization step. The last one is the optimized geometry.
func NewGeometries() *fileparse.MultiLine {
	return NewGeometryParser(geometryStart, geometryEnd, atomPattern)
}

//GradientCollector reads one number per line and turns each block into
//a Nx3 matrix. Its result is a []*v3.Matrix.
type GradientCollector struct {
	Value   *fileparse.Pattern //must have the group gradient
	grads   []*v3.Matrix
	current []float64
}

func (G *GradientCollector) Reset() {
	G.grads = make([]*v3.Matrix, 0, 2)
	G.current = nil
}

func (G *GradientCollector) StartCollecting() {
	G.current = make([]float64, 0, 30)
}

func (G *GradientCollector) Collect(line string) error {
	v, ok, err := G.Value.Float(line, "gradient")
	if err != nil {
		return err
	}
	if ok {
		G.current = append(G.current, v)
	}
	return nil
}

//StopCollecting returns a *fileparse.ShapeError if the block
//doesn't have 3 components for each atom.
func (G *GradientCollector) StopCollecting() error {
	defer func() { G.current = nil }()
	if len(G.current) == 0 || len(G.current)%3 != 0 {
		return &fileparse.ShapeError{Len: len(G.current), Width: 3}
	}
	g, err := v3.NewMatrix(G.current)
	if err != nil {
		return err
	}
	G.grads = append(G.grads, g)
	return nil
}

func (G *GradientCollector) Result() any {
	ret := make([]*v3.Matrix, len(G.grads))
	copy(ret, G.grads)
	return ret
}

//NewGradientParser returns a parser for the gradient blocks delimited
//by start and end.
func NewGradientParser(start, end, value *fileparse.Pattern) *fileparse.MultiLine {
	return fileparse.NewMultiLine(start, end, &GradientCollector{Value: value})
}

//NewGradients returns a parser for the gradients of the molecular energy
//printed by MPQC, in Hartree/bohr.
func NewGradients() *fileparse.MultiLine {
	return NewGradientParser(gradientStart, gradientEnd, gradientPattern)
}

//calcOf returns the Calc given as run context, or nil.
func calcOf(run any) *Calc {
	Q, _ := run.(*Calc)
	return Q
}

//NewMPQCDriver returns a Driver with all the MPQC parsers registered.
//The run context given to the Driver should be the *Calc of the job.
//Gradients are then only read if Calc.Gradient is set, and geometries and
//convergence only if Calc.Optimize is. With any other run context
//all parsers take part.
func NewMPQCDriver() *fileparse.Driver {
	gradient := func(run any) bool {
		Q := calcOf(run)
		return Q == nil || Q.Gradient
	}
	optimize := func(run any) bool {
		Q := calcOf(run)
		return Q == nil || Q.Optimize
	}
	D := fileparse.NewDriver()
	D.MustRegister(
		&fileparse.Spec{Name: SCFEnergies, Extension: "out", Parser: NewSCFEnergies()},
		&fileparse.Spec{Name: MolecularEnergies, Extension: "out", Parser: NewMolecularEnergies()},
		&fileparse.Spec{Name: Warnings, Extension: "out", Parser: NewWarnings()},
		&fileparse.Spec{Name: Converged, Extension: "out", Parser: NewConverged(), Condition: optimize},
		&fileparse.Spec{Name: Geometries, Extension: "out", Parser: NewGeometries(), Condition: optimize},
		&fileparse.Spec{Name: Gradients, Extension: "out", Parser: NewGradients(), Condition: gradient},
	)
	return D
}

//Summary holds what NewMPQCDriver extracts from an output. Fields for
//parsers that didn't take part in the pass are left empty.
type Summary struct {
	SCFEnergies []float64 //Hartree
	Energies    []float64 //Hartree
	Warnings    bool
	Converged   bool
	Geometries  []*chem.Molecule //A
	Gradients   []*v3.Matrix     //Hartree/bohr
}

//NewSummary collects the results of a pass of an MPQC driver.
func NewSummary(res fileparse.Results) *Summary {
	S := new(Summary)
	S.SCFEnergies, _ = res.Floats(SCFEnergies)
	S.Energies, _ = res.Floats(MolecularEnergies)
	S.Warnings, _ = res.Flag(Warnings)
	S.Converged, _ = res.Flag(Converged)
	S.Geometries, _ = res[Geometries].([]*chem.Molecule)
	S.Gradients, _ = res[Gradients].([]*v3.Matrix)
	return S
}
