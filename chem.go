/*
 * chem.go, part of molmod.
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

package chem

import (
	"fmt"

	v3 "github.com/n1Ray/molmod/v3"
)

/**Note: Some functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Those panics are related to out of bounds indexes.**/

//Atom contains the data for one atom, except for its coordinates,
//which are kept in the Coords matrix of the Molecule.
type Atom struct {
	ID     string //name of the atom in the file it was read from, if any
	Symbol string
	Number int
	Mass   float64
	Extra  map[string]string //attributes read from a file that molmod doesn't use
}

//NewAtom returns an Atom for the element with the given symbol.
func NewAtom(symbol string) (*Atom, error) {
	e, err := SymbolLookup(symbol)
	if err != nil {
		return nil, errDecorate(err, "NewAtom")
	}
	return &Atom{Symbol: e.Symbol, Number: e.Number, Mass: e.Mass}, nil
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	if A.Extra != nil {
		N.Extra = make(map[string]string, len(A.Extra))
		for k, v := range A.Extra {
			N.Extra[k] = v
		}
	}
	return &N
}

//Bond joins the atoms with indexes At1 and At2 in a Molecule.
type Bond struct {
	At1   int
	At2   int
	Order string
	Extra map[string]string
}

//Molecule is a set of atoms with one set of coordinates, in A.
type Molecule struct {
	Title  string
	Atoms  []*Atom
	Coords *v3.Matrix
	Bonds  []*Bond
	Extra  map[string]string
	charge int
	multi  int
}

//NewMolecule returns a singlet, neutral molecule made of the given atoms
//and coordinates. It fails if the number of atoms and coordinates differ.
func NewMolecule(title string, atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if coords == nil || len(atoms) != coords.NVecs() {
		n := 0
		if coords != nil {
			n = coords.NVecs()
		}
		return nil, CError{fmt.Sprintf("%d atoms but %d coordinates", len(atoms), n), []string{"NewMolecule"}}
	}
	return &Molecule{Title: title, Atoms: atoms, Coords: coords, multi: 1}, nil
}

//Name returns the title of the molecule.
func (M *Molecule) Name() string {
	return M.Title
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the Atom with index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() || i < 0 {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Charge gets the total charge of the molecule.
func (M *Molecule) Charge() int {
	return M.charge
}

//Multi returns the multiplicity of the molecule.
func (M *Molecule) Multi() int {
	return M.multi
}

//SetCharge sets the total charge of the molecule to i.
func (M *Molecule) SetCharge(i int) {
	M.charge = i
}

//SetMulti sets the multiplicity of the molecule to i.
func (M *Molecule) SetMulti(i int) {
	M.multi = i
}

//Symbols returns the element symbols of the atoms, in order.
func (M *Molecule) Symbols() []string {
	ret := make([]string, M.Len())
	for i, a := range M.Atoms {
		ret[i] = a.Symbol
	}
	return ret
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	N := &Molecule{Title: M.Title, charge: M.charge, multi: M.multi}
	N.Atoms = make([]*Atom, M.Len())
	for i, a := range M.Atoms {
		N.Atoms[i] = a.Copy()
	}
	if M.Coords != nil {
		N.Coords = v3.Zeros(M.Coords.NVecs())
		N.Coords.Copy(M.Coords)
	}
	for _, b := range M.Bonds {
		nb := *b
		N.Bonds = append(N.Bonds, &nb)
	}
	if M.Extra != nil {
		N.Extra = make(map[string]string, len(M.Extra))
		for k, v := range M.Extra {
			N.Extra[k] = v
		}
	}
	return N
}
