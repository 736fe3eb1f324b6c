/*
 * driver.go, part of molmod.
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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("molmod.fileparse")

//Condition decides, once per pass, whether a parser takes part in it.
//run is whatever the caller passed to Driver.Run.
type Condition func(run any) bool

//Spec describes a registered parser.
type Spec struct {
	Name      string     //key of the parser's result, unique in a Driver
	Extension string     //expected extension of the parsed files, advisory only
	Condition Condition  //nil means the parser always runs
	Parser    LineParser //must not be nil
}

func (S *Spec) include(run any) bool {
	return S.Condition == nil || S.Condition(run)
}

//Driver streams files through a set of registered parsers.
//A Driver is meant to be used from one goroutine at a time.
type Driver struct {
	specs []*Spec
	index map[string]int
}

//NewDriver returns an empty Driver.
func NewDriver() *Driver {
	return &Driver{index: make(map[string]int)}
}

//Register adds s to the Driver. It returns a *DuplicateNameError if
//a parser with the same name is already registered. It panics if s
//or its Parser is nil.
func (D *Driver) Register(s *Spec) error {
	if s == nil || s.Parser == nil {
		panic("Driver/Register: nil parser")
	}
	if _, ok := D.index[s.Name]; ok {
		return &DuplicateNameError{Name: s.Name}
	}
	D.index[s.Name] = len(D.specs)
	D.specs = append(D.specs, s)
	log.Debugf("registered parser %q", s.Name)
	return nil
}

//MustRegister is like Register, for several specs, but panics on error.
func (D *Driver) MustRegister(specs ...*Spec) {
	for _, s := range specs {
		if err := D.Register(s); err != nil {
			panic(err.Error())
		}
	}
}

//Spec returns the spec registered under name, or nil.
func (D *Driver) Spec(name string) *Spec {
	i, ok := D.index[name]
	if !ok {
		return nil
	}
	return D.specs[i]
}

//Names returns the registered names, in registration order.
func (D *Driver) Names() []string {
	ret := make([]string, len(D.specs))
	for i, s := range D.specs {
		ret[i] = s.Name
	}
	return ret
}

//Len returns the number of registered parsers.
func (D *Driver) Len() int {
	return len(D.specs)
}

//Run reads r to the end, feeding every line to the parsers whose condition
//holds for run, and returns their results. The first error aborts the pass,
//and no results are returned in that case.
func (D *Driver) Run(r io.Reader, run any) (Results, error) {
	return D.pass(r, "", D.included(run))
}

//RunFile is Run on the file at path, which is opened with Open
//and closed before returning.
func (D *Driver) RunFile(path string, run any) (Results, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	active := D.included(run)
	ext := Ext(path)
	for _, s := range active {
		if s.Extension != "" && s.Extension != ext {
			log.Warningf("parser %q expects .%s files, %s given", s.Name, s.Extension, path)
		}
	}
	return D.pass(f, path, active)
}

func (D *Driver) included(run any) []*Spec {
	active := make([]*Spec, 0, len(D.specs))
	for _, s := range D.specs {
		if s.include(run) {
			active = append(active, s)
			continue
		}
		log.Debugf("parser %q skipped by its condition", s.Name)
	}
	return active
}

func (D *Driver) pass(r io.Reader, path string, active []*Spec) (Results, error) {
	for _, s := range active {
		s.Parser.Reset()
	}
	br := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lineno++
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			for _, s := range active {
				if perr := s.Parser.Parse(line); perr != nil {
					return nil, locate(perr, s.Name, lineno, line)
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &IOError{Path: path, Err: fmt.Errorf("after line %d: %w", lineno, err)}
		}
	}
	res := make(Results, len(active))
	for _, s := range active {
		if o, ok := s.Parser.(interface{ Open() bool }); ok && o.Open() {
			log.Warningf("parser %q: block still open at the end of the input, dropped", s.Name)
		}
		res[s.Name] = s.Parser.Result()
	}
	log.Debugf("pass done: %d lines, %d parsers", lineno, len(active))
	return res, nil
}
