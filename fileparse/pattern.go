/*
 * pattern.go, part of molmod.
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

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//Pattern is a named regular expression. Parsers only see lines through
//patterns, so the text a program prints can change without touching
//the parsers themselves.
type Pattern struct {
	Name string
	Re   *regexp.Regexp
}

//NewPattern compiles expr and returns the corresponding Pattern.
//It panics if expr is not a valid regular expression.
func NewPattern(name, expr string) *Pattern {
	return &Pattern{Name: name, Re: regexp.MustCompile(expr)}
}

//Match reports whether line matches the pattern.
func (P *Pattern) Match(line string) bool {
	return P.Re.MatchString(line)
}

//Fields returns the named groups of the first match in line,
//and false if there is no match.
func (P *Pattern) Fields(line string) (map[string]string, bool) {
	m := P.Re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	ret := make(map[string]string, len(m))
	for i, name := range P.Re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		ret[name] = m[i]
	}
	return ret, true
}

//Float extracts the named group from line and converts it to a float64.
//matched is false when the line doesn't match. A match with a group that
//can't be converted gives a *ParseError.
func (P *Pattern) Float(line, group string) (v float64, matched bool, err error) {
	m := P.Re.FindStringSubmatch(line)
	if m == nil {
		return 0, false, nil
	}
	i := P.Re.SubexpIndex(group)
	if i < 0 {
		panic(fmt.Sprintf("fileparse: pattern %q has no group %q", P.Name, group))
	}
	v, err = ParseFloat(m[i])
	if err != nil {
		return 0, true, &ParseError{Text: line, Err: err}
	}
	return v, true, nil
}

func (P *Pattern) String() string {
	return fmt.Sprintf("%s: %s", P.Name, P.Re.String())
}

//ParseFloat is strconv.ParseFloat, but it also accepts the Fortran
//exponent marker, as in 1.0D-03.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.Replace(strings.Replace(s, "D", "E", 1), "d", "e", 1)
	return strconv.ParseFloat(s, 64)
}
