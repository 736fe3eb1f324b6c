/*
 * results.go, part of molmod.
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

package fileparse

import "sort"

//Results maps the name of each parser that took part in a pass to its result.
type Results map[string]any

//Has reports whether name took part in the pass.
func (R Results) Has(name string) bool {
	_, ok := R[name]
	return ok
}

//Floats returns the result of name as a []float64. ok is false if
//name is absent or holds something else.
func (R Results) Floats(name string) (f []float64, ok bool) {
	f, ok = R[name].([]float64)
	return f, ok
}

//Flag returns the result of name as a bool. ok is false if name
//is absent or holds something else.
func (R Results) Flag(name string) (flag bool, ok bool) {
	flag, ok = R[name].(bool)
	return flag, ok
}

//Names returns the names in R, sorted.
func (R Results) Names() []string {
	ret := make([]string, 0, len(R))
	for k := range R {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
