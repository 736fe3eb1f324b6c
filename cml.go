/*
 * cml.go, part of molmod.
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
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/n1Ray/molmod/fileparse"
	v3 "github.com/n1Ray/molmod/v3"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("molmod.chem")

const cmlNamespace = "http://www.xml-cml.org/schema"

//Attributes that LoadCML interprets itself. Everything else on a
//molecule, atom or bond goes to its Extra map.
var (
	cmlMoleculeSkip = map[string]bool{"id": true, "xmlns": true}
	cmlAtomSkip     = map[string]bool{"id": true, "elementType": true, "x3": true, "y3": true, "z3": true, "x2": true, "y2": true}
	cmlBondSkip     = map[string]bool{"id": true, "atomRefs2": true, "order": true}
)

//cmlMolecule accumulates one <molecule> element.
type cmlMolecule struct {
	title  string
	extra  map[string]string
	atoms  []*Atom
	coords []float64
	names  map[string]int //atom id to index
	bonds  []*Bond
	refs   [][2]string
}

func attrName(a xml.Attr) string {
	if a.Name.Space == "xmlns" {
		return "xmlns:" + a.Name.Local
	}
	return a.Name.Local
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[attrName(a)] = a.Value
	}
	return m
}

//extras returns the entries of attrs not in skip, or nil if there are none.
func extras(attrs map[string]string, skip map[string]bool) map[string]string {
	var ret map[string]string
	for k, v := range attrs {
		if skip[k] {
			continue
		}
		if ret == nil {
			ret = make(map[string]string)
		}
		ret[k] = v
	}
	return ret
}

func newCMLMolecule(attrs []xml.Attr) *cmlMolecule {
	m := attrMap(attrs)
	title, ok := m["id"]
	if !ok {
		title = "No Title"
	}
	return &cmlMolecule{title: title, extra: extras(m, cmlMoleculeSkip), names: make(map[string]int)}
}

//addAtom adds an atom if it has an id, a known element and 3D coordinates,
//and ignores it otherwise.
func (C *cmlMolecule) addAtom(attrs []xml.Attr) {
	m := attrMap(attrs)
	id, ok := m["id"]
	if !ok {
		log.Debugf("%s: skipped an atom without id", C.title)
		return
	}
	var xyz [3]float64
	for i, k := range []string{"x3", "y3", "z3"} {
		v, err := strconv.ParseFloat(strings.TrimSpace(m[k]), 64)
		if err != nil {
			log.Debugf("%s: skipped atom %s, no usable %s", C.title, id, k)
			return
		}
		xyz[i] = v
	}
	at, err := NewAtom(m["elementType"])
	if err != nil {
		log.Debugf("%s: skipped atom %s: %s", C.title, id, err)
		return
	}
	at.ID = id
	at.Extra = extras(m, cmlAtomSkip)
	C.names[id] = len(C.atoms)
	C.atoms = append(C.atoms, at)
	C.coords = append(C.coords, xyz[:]...)
}

func (C *cmlMolecule) addBond(attrs []xml.Attr) {
	m := attrMap(attrs)
	refs := strings.Fields(m["atomRefs2"])
	if len(refs) != 2 {
		log.Debugf("%s: skipped a bond without a pair of atom references", C.title)
		return
	}
	C.refs = append(C.refs, [2]string{refs[0], refs[1]})
	C.bonds = append(C.bonds, &Bond{Order: m["order"], Extra: extras(m, cmlBondSkip)})
}

//molecule returns the finished Molecule, or nil if no atom was usable.
//Bonds referencing unknown atoms, bonds from an atom to itself and
//repeated bonds are dropped.
func (C *cmlMolecule) molecule() (*Molecule, error) {
	if len(C.atoms) == 0 {
		log.Debugf("%s: dropped, no usable atoms", C.title)
		return nil, nil
	}
	coords, err := v3.NewMatrix(C.coords)
	if err != nil {
		return nil, err
	}
	mol, err := NewMolecule(C.title, C.atoms, coords)
	if err != nil {
		return nil, err
	}
	mol.Extra = C.extra
	if q, err := strconv.Atoi(mol.Extra["formalCharge"]); err == nil {
		mol.SetCharge(q)
	}
	if s, err := strconv.Atoi(mol.Extra["spinMultiplicity"]); err == nil && s > 0 {
		mol.SetMulti(s)
	}
	seen := make(map[[2]int]bool, len(C.bonds))
	for i, b := range C.bonds {
		i1, ok1 := C.names[C.refs[i][0]]
		i2, ok2 := C.names[C.refs[i][1]]
		if !ok1 || !ok2 || i1 == i2 {
			continue
		}
		key := [2]int{i1, i2}
		if i1 > i2 {
			key = [2]int{i2, i1}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		b.At1, b.At2 = i1, i2
		mol.Bonds = append(mol.Bonds, b)
	}
	return mol, nil
}

//LoadCML reads all the molecules in the CML document in r. Coordinates are
//taken from the x3, y3 and z3 attributes of each atom, in A. Atoms lacking
//an id, a known elementType or any of those coordinates are skipped, and
//molecules left with no atoms are not returned. Attributes not understood
//by molmod are kept in the Extra maps of the molecules, atoms and bonds.
func LoadCML(r io.Reader) ([]*Molecule, error) {
	dec := xml.NewDecoder(r)
	mols := make([]*Molecule, 0, 1)
	var current *cmlMolecule
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, CError{fmt.Sprintf("Malformed CML: %s", err), []string{"xml.Decoder.Token", "LoadCML"}}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "molecule":
				current = newCMLMolecule(t.Attr)
			case "atom":
				if current != nil {
					current.addAtom(t.Attr)
				}
			case "bond":
				if current != nil {
					current.addBond(t.Attr)
				}
			}
		case xml.EndElement:
			if t.Name.Local != "molecule" || current == nil {
				continue
			}
			mol, err := current.molecule()
			if err != nil {
				return nil, errDecorate(err, "LoadCML")
			}
			if mol != nil {
				mols = append(mols, mol)
			}
			current = nil
		}
	}
	return mols, nil
}

//CMLFileRead reads the molecules in the CML file filename.
//gzip and zstd compressed files are also accepted.
func CMLFileRead(filename string) ([]*Molecule, error) {
	f, err := fileparse.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("CMLFileRead: %w", err)
	}
	defer f.Close()
	mols, err := LoadCML(f)
	if err != nil {
		return nil, errDecorate(err, "CMLFileRead")
	}
	return mols, nil
}

func writeAttr(w *bufio.Writer, key, value string) {
	w.WriteString(" " + key + "=\"")
	xml.EscapeText(w, []byte(value))
	w.WriteString("\"")
}

func writeExtra(w *bufio.Writer, extra map[string]string, skip map[string]bool) {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !skip[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeAttr(w, k, extra[k])
	}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

//DumpCML writes mols to out as a CML document. Atoms get the ids a0, a1...
//in each molecule, and the Extra attributes are written back, sorted by name.
func DumpCML(out io.Writer, mols []*Molecule) error {
	w := bufio.NewWriter(out)
	w.WriteString("<?xml version=\"1.0\"?>\n")
	w.WriteString("<list xmlns=\"" + cmlNamespace + "\">\n")
	molSkip := map[string]bool{"id": true, "xmlns": true, "formalCharge": true, "spinMultiplicity": true}
	for _, mol := range mols {
		if mol.Coords == nil || mol.Coords.NVecs() != mol.Len() {
			return CError{fmt.Sprintf("Molecule %q has %d atoms and inconsistent coordinates", mol.Title, mol.Len()), []string{"DumpCML"}}
		}
		w.WriteString(" <molecule")
		writeAttr(w, "id", mol.Title)
		if mol.Charge() != 0 {
			writeAttr(w, "formalCharge", strconv.Itoa(mol.Charge()))
		}
		if mol.Multi() != 1 {
			writeAttr(w, "spinMultiplicity", strconv.Itoa(mol.Multi()))
		}
		writeExtra(w, mol.Extra, molSkip)
		w.WriteString(">\n  <atomArray>\n")
		for i, at := range mol.Atoms {
			c := mol.Coords.VecView(i)
			w.WriteString("   <atom")
			writeAttr(w, "id", fmt.Sprintf("a%d", i))
			writeAttr(w, "elementType", at.Symbol)
			writeAttr(w, "x3", ftoa(c.At(0, 0)))
			writeAttr(w, "y3", ftoa(c.At(0, 1)))
			writeAttr(w, "z3", ftoa(c.At(0, 2)))
			writeExtra(w, at.Extra, cmlAtomSkip)
			w.WriteString("/>\n")
		}
		w.WriteString("  </atomArray>\n")
		if len(mol.Bonds) > 0 {
			w.WriteString("  <bondArray>\n")
			for _, b := range mol.Bonds {
				w.WriteString("   <bond")
				writeAttr(w, "atomRefs2", fmt.Sprintf("a%d a%d", b.At1, b.At2))
				if b.Order != "" {
					writeAttr(w, "order", b.Order)
				}
				writeExtra(w, b.Extra, cmlBondSkip)
				w.WriteString("/>\n")
			}
			w.WriteString("  </bondArray>\n")
		}
		w.WriteString(" </molecule>\n")
	}
	w.WriteString("</list>\n")
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"bufio.Flush", "DumpCML"}}
	}
	return nil
}

//CMLFileWrite writes mols to a new CML file called filename.
func CMLFileWrite(filename string, mols []*Molecule) error {
	out, err := os.Create(filename)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "CMLFileWrite"}}
	}
	defer out.Close()
	if err := DumpCML(out, mols); err != nil {
		return errDecorate(err, "CMLFileWrite")
	}
	return nil
}
