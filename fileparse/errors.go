/*
 * errors.go, part of molmod.
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
	"errors"
	"fmt"
)

//IOError is returned when the input can't be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (E *IOError) Error() string {
	path := E.Path
	if path == "" {
		path = "input"
	}
	return fmt.Sprintf("fileparse: can't read %s: %v", path, E.Err)
}

func (E *IOError) Unwrap() error { return E.Err }

//ParseError signals a line that matched a parser's pattern but carried a value
//that could not be converted. Parser and Line are filled in by the Driver.
type ParseError struct {
	Parser string
	Line   int
	Text   string
	Err    error
}

func (E *ParseError) Error() string {
	return fmt.Sprintf("fileparse: parser %q, line %d: %v (%q)", E.Parser, E.Line, E.Err, E.Text)
}

func (E *ParseError) Unwrap() error { return E.Err }

//ShapeError signals a finished record that can't be given the expected shape,
//i.e. Len values that don't split into rows of Width.
type ShapeError struct {
	Parser string
	Line   int
	Len    int
	Width  int
}

func (E *ShapeError) Error() string {
	return fmt.Sprintf("fileparse: parser %q, line %d: %d values can't be split in rows of %d", E.Parser, E.Line, E.Len, E.Width)
}

//DuplicateNameError is returned by Register when the name is already taken.
type DuplicateNameError struct {
	Name string
}

func (E *DuplicateNameError) Error() string {
	return fmt.Sprintf("fileparse: a parser named %q is already registered", E.Name)
}

//locate attaches the parser name and the line position to an error returned
//by a parser. Errors of foreign types are wrapped in a ParseError.
func locate(err error, name string, lineno int, line string) error {
	var serr *ShapeError
	var perr *ParseError
	switch {
	case errors.As(err, &serr):
		serr.Parser = name
		serr.Line = lineno
		return err
	case errors.As(err, &perr):
		perr.Parser = name
		perr.Line = lineno
		if perr.Text == "" {
			perr.Text = line
		}
		return err
	}
	return &ParseError{Parser: name, Line: lineno, Text: line, Err: err}
}
