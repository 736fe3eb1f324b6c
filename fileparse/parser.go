/*
 * parser.go, part of molmod.
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

//LineParser consumes a file one line at a time and accumulates a result.
type LineParser interface {
	//Reset clears all the state from a previous pass. It is called once
	//before the first line of each pass, and calling it more than once is harmless.
	Reset()

	//Parse inspects one line, without its line terminator. Lines that
	//don't concern the parser are ignored. An error is returned only for
	//lines that match but carry values that can't be converted.
	Parse(line string) error

	//Result returns what was accumulated since the last Reset. It has no
	//side effects, so calling it several times gives the same value.
	Result() any
}

//FloatSeries collects one number from every line matching Pattern,
//in the order of appearance. Its result is a []float64, empty if nothing matched.
type FloatSeries struct {
	Pattern *Pattern
	Group   string //the group in Pattern that holds the number
	values  []float64
}

//NewFloatSeries returns a FloatSeries that reads the group named group of p.
func NewFloatSeries(p *Pattern, group string) *FloatSeries {
	F := &FloatSeries{Pattern: p, Group: group}
	F.Reset()
	return F
}

func (F *FloatSeries) Reset() {
	F.values = make([]float64, 0, 8)
}

func (F *FloatSeries) Parse(line string) error {
	v, ok, err := F.Pattern.Float(line, F.Group)
	if err != nil {
		return err
	}
	if ok {
		F.values = append(F.values, v)
	}
	return nil
}

func (F *FloatSeries) Result() any {
	return F.Floats()
}

//Floats is Result with its concrete type. The slice returned is a copy,
//so changing it doesn't affect later calls.
func (F *FloatSeries) Floats() []float64 {
	ret := make([]float64, len(F.values))
	copy(ret, F.values)
	return ret
}

//Flag becomes true the first time a line matches Pattern, and stays true
//for the rest of the pass. Its result is a bool.
type Flag struct {
	Pattern *Pattern
	set     bool
}

//NewFlag returns a Flag raised by p.
func NewFlag(p *Pattern) *Flag {
	return &Flag{Pattern: p}
}

func (F *Flag) Reset() {
	F.set = false
}

func (F *Flag) Parse(line string) error {
	if !F.set && F.Pattern.Match(line) {
		F.set = true
	}
	return nil
}

func (F *Flag) Result() any {
	return F.set
}
