/*
 * chem_test.go, part of molmod.
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

package chem

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	v3 "github.com/n1Ray/molmod/v3"
	"gonum.org/v1/gonum/mat"
)

func TestSymbolLookup(Te *testing.T) {
	for _, s := range []string{"Cl", "CL", "cl", " Cl ", "chlorine"} {
		e, err := SymbolLookup(s)
		if err != nil {
			Te.Fatalf("%q: %v", s, err)
		}
		if e.Symbol != "Cl" || e.Number != 17 {
			Te.Errorf("%q: got %s (%d), wanted Cl (17)", s, e.Symbol, e.Number)
		}
	}
	if _, err := SymbolLookup("Qq"); err == nil {
		Te.Error("an unknown symbol should give an error")
	}
	e, err := NumberLookup(8)
	if err != nil || e.Symbol != "O" {
		Te.Errorf("got %v %v, wanted oxygen", e, err)
	}
	for _, z := range []int{0, -1, len(elements) + 1} {
		if _, err := NumberLookup(z); err == nil {
			Te.Errorf("atomic number %d should give an error", z)
		}
	}
	//the table must be sorted by atomic number for NumberLookup to work.
	for i, e := range elements {
		if e.Number != i+1 {
			Te.Fatalf("element %s at position %d", e.Symbol, i)
		}
	}
}

func water(Te *testing.T) *Molecule {
	Te.Helper()
	var atoms []*Atom
	for _, s := range []string{"O", "H", "H"} {
		a, err := NewAtom(s)
		if err != nil {
			Te.Fatal(err)
		}
		atoms = append(atoms, a)
	}
	coords, err := v3.NewMatrix([]float64{0, 0, 0.1173, 0, 0.7572, -0.4692, 0, -0.7572, -0.4692})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule("water", atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

func TestMolecule(Te *testing.T) {
	mol := water(Te)
	var _ AtomMultiCharger = mol
	if mol.Len() != 3 || mol.Multi() != 1 || mol.Charge() != 0 {
		Te.Errorf("got %d atoms, multiplicity %d, charge %d", mol.Len(), mol.Multi(), mol.Charge())
	}
	if got := mol.Symbols(); !reflect.DeepEqual(got, []string{"O", "H", "H"}) {
		Te.Errorf("got %v", got)
	}
	cp := mol.Copy()
	cp.Coords.Set(0, 0, 5)
	cp.Atoms[0].Symbol = "N"
	if mol.Coords.At(0, 0) != 0 || mol.Atom(0).Symbol != "O" {
		Te.Error("Copy shares data with the original")
	}
	two, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	if _, err := NewMolecule("bad", mol.Atoms, two); err == nil {
		Te.Error("3 atoms with 2 coordinates should give an error")
	}
}

func TestAtomOutOfRange(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("Atom(3) in a 3-atom molecule should panic")
		}
	}()
	water(Te).Atom(3)
}

func TestLoadCML(Te *testing.T) {
	mols, err := CMLFileRead("test/water.cml")
	if err != nil {
		Te.Fatal(err)
	}
	if len(mols) != 2 {
		Te.Fatalf("got %d molecules, wanted 2 (the one without usable atoms is dropped)", len(mols))
	}
	w := mols[0]
	if w.Title != "water" || w.Len() != 3 {
		Te.Errorf("got %q with %d atoms", w.Title, w.Len())
	}
	if !reflect.DeepEqual(w.Symbols(), []string{"O", "H", "H"}) {
		Te.Errorf("got %v", w.Symbols())
	}
	want := mat.NewDense(3, 3, []float64{0, 0, 0.1173, 0, 0.7572, -0.4692, 0, -0.7572, -0.4692})
	if !mat.EqualApprox(w.Coords, want, 1e-8) {
		Te.Errorf("got coordinates\n%v", w.Coords)
	}
	if w.Atom(0).ID != "o1" || w.Atom(0).Extra["isotope"] != "16" {
		Te.Errorf("got atom %+v", w.Atom(0))
	}
	if w.Atom(1).Extra != nil {
		Te.Errorf("got extra %v for an atom with no unknown attributes", w.Atom(1).Extra)
	}
	if !reflect.DeepEqual(w.Extra, map[string]string{"formalCharge": "0", "source": "hand"}) {
		Te.Errorf("got molecule extra %v", w.Extra)
	}
	if len(w.Bonds) != 2 {
		Te.Fatalf("got %d bonds, wanted 2", len(w.Bonds))
	}
	b0, b1 := w.Bonds[0], w.Bonds[1]
	if b0.At1 != 0 || b0.At2 != 1 || b0.Order != "1" {
		Te.Errorf("got first bond %+v", b0)
	}
	if b1.At1 != 0 || b1.At2 != 2 || b1.Extra["stereo"] != "none" {
		Te.Errorf("got second bond %+v", b1)
	}
	oh := mols[1]
	if oh.Charge() != -1 || oh.Atom(0).Symbol != "O" {
		Te.Errorf("got charge %d and symbol %s", oh.Charge(), oh.Atom(0).Symbol)
	}
}

func TestLoadCMLMalformed(Te *testing.T) {
	_, err := LoadCML(strings.NewReader("<list><molecule id='x'><atomArray></list>"))
	if err == nil {
		Te.Error("malformed XML should give an error")
	}
	if _, ok := err.(Error); !ok {
		Te.Errorf("got %T, wanted a chem.Error", err)
	}
}

func TestCMLRoundTrip(Te *testing.T) {
	mols, err := CMLFileRead("test/water.cml")
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "out.cml")
	if err := CMLFileWrite(name, mols); err != nil {
		Te.Fatal(err)
	}
	again, err := CMLFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if len(again) != len(mols) {
		Te.Fatalf("got %d molecules back, wanted %d", len(again), len(mols))
	}
	for i := range mols {
		if again[i].Title != mols[i].Title || !reflect.DeepEqual(again[i].Symbols(), mols[i].Symbols()) {
			Te.Errorf("molecule %d: got %s %v", i, again[i].Title, again[i].Symbols())
		}
		if !mat.EqualApprox(again[i].Coords, mols[i].Coords, 1e-12) {
			Te.Errorf("molecule %d: coordinates changed", i)
		}
		if again[i].Charge() != mols[i].Charge() || len(again[i].Bonds) != len(mols[i].Bonds) {
			Te.Errorf("molecule %d: got charge %d and %d bonds", i, again[i].Charge(), len(again[i].Bonds))
		}
	}
	if again[0].Atom(0).ID != "a0" || again[0].Atom(0).Extra["isotope"] != "16" {
		Te.Errorf("got atom %+v", again[0].Atom(0))
	}
	if again[0].Extra["source"] != "hand" || again[0].Bonds[1].Extra["stereo"] != "none" {
		Te.Error("extra attributes lost in the round trip")
	}
}

func TestDumpCMLEscapes(Te *testing.T) {
	mol := water(Te)
	mol.Title = `a "quoted" <title>`
	var buf bytes.Buffer
	if err := DumpCML(&buf, []*Molecule{mol}); err != nil {
		Te.Fatal(err)
	}
	if strings.Contains(buf.String(), `"quoted"`) {
		Te.Errorf("title not escaped:\n%s", buf.String())
	}
	mols, err := LoadCML(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	if mols[0].Title != mol.Title {
		Te.Errorf("got %q, wanted %q", mols[0].Title, mol.Title)
	}
}

func TestXYZWrite(Te *testing.T) {
	mol := water(Te)
	var buf bytes.Buffer
	if err := XYZWrite(&buf, mol.Coords, mol); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		Te.Fatalf("got %d lines, wanted 5:\n%s", len(lines), buf.String())
	}
	if strings.TrimSpace(lines[0]) != "3" || lines[1] != "water" {
		Te.Errorf("got header %q %q", lines[0], lines[1])
	}
	f := strings.Fields(lines[2])
	if !reflect.DeepEqual(f, []string{"O", "0.000000", "0.000000", "0.117300"}) {
		Te.Errorf("got %v", f)
	}
	two, _ := v3.NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	if err := XYZWrite(&buf, two, mol); err == nil {
		Te.Error("2 coordinates for 3 atoms should give an error")
	}
}
