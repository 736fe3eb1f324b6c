/*
 * files.go, part of molmod.
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
	"bufio"
	"fmt"
	"io"
	"os"

	v3 "github.com/n1Ray/molmod/v3"
)

//XYZFileWrite writes the coordinates coords, for the atoms in mol, to a new
//XYZ file with name xyzname. An existing file is overwritten.
func XYZFileWrite(xyzname string, coords *v3.Matrix, mol Atomer) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return CError{err.Error(), []string{"os.Create", "XYZFileWrite"}}
	}
	defer out.Close()
	if err := XYZWrite(out, coords, mol); err != nil {
		return errDecorate(err, "XYZFileWrite")
	}
	return nil
}

//XYZWrite writes the coordinates coords, for the atoms in mol, in XYZ format to out.
//The title of mol, if it has one, goes in the comment line.
func XYZWrite(out io.Writer, coords *v3.Matrix, mol Atomer) error {
	if coords.NVecs() != mol.Len() {
		return CError{fmt.Sprintf("%d coordinates for %d atoms", coords.NVecs(), mol.Len()), []string{"XYZWrite"}}
	}
	title := ""
	if t, ok := mol.(interface{ Name() string }); ok {
		title = t.Name()
	}
	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%-4d\n%s\n", mol.Len(), title)
	for i := 0; i < mol.Len(); i++ {
		c := coords.VecView(i)
		fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f \n", mol.Atom(i).Symbol, c.At(0, 0), c.At(0, 1), c.At(0, 2))
	}
	if err := w.Flush(); err != nil {
		return CError{err.Error(), []string{"bufio.Flush", "XYZWrite"}}
	}
	return nil
}
