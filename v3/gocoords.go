/*
 * gocoords.go, part of molmod.
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

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//RMS returns the root mean square of all the elements of F.
//For a gradient, this is the usual convergence criterion.
func (F *Matrix) RMS() float64 {
	r, c := F.Dims()
	norm := mat.Norm(F.Dense, 2) //Frobenius norm for matrices
	return norm / math.Sqrt(float64(r*c))
}

//MaxAbs returns the largest absolute value among the elements of F.
func (F *Matrix) MaxAbs() float64 {
	return math.Max(math.Abs(mat.Max(F.Dense)), math.Abs(mat.Min(F.Dense)))
}

func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, r)
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		v[i] = fmt.Sprintf("%6.2f %6.2f %6.2f", row[0], row[1], row[2])
	}
	return "\n[" + strings.Join(v, "\n ") + " ]"
}
