/*
 * driver_test.go, part of molmod.
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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//spy records what the Driver does to it.
type spy struct {
	name   string
	resets int
	lines  []string
	order  *[]string
}

func (S *spy) Reset() {
	S.resets++
	S.lines = S.lines[:0]
}

func (S *spy) Parse(line string) error {
	S.lines = append(S.lines, line)
	if S.order != nil {
		*S.order = append(*S.order, S.name)
	}
	return nil
}

func (S *spy) Result() any { return len(S.lines) }

const sample = `header
  total scf energy = -75.5
  WARNING: accuracy
begin
x
end
  total scf energy = -76.0
`

func newTestDriver(Te *testing.T) *Driver {
	Te.Helper()
	D := NewDriver()
	D.MustRegister(
		&Spec{Name: "energies", Extension: "out", Parser: NewFloatSeries(energyPattern, "energy")},
		&Spec{Name: "warnings", Extension: "out", Parser: NewFlag(NewPattern("warning", `WARNING:`))},
		&Spec{Name: "blocks", Extension: "out", Parser: newBlocks(),
			Condition: func(run any) bool { b, _ := run.(bool); return b }},
	)
	return D
}

func TestDriverRun(Te *testing.T) {
	D := newTestDriver(Te)
	res, err := D.Run(strings.NewReader(sample), true)
	if err != nil {
		Te.Fatal(err)
	}
	if got, _ := res.Floats("energies"); !reflect.DeepEqual(got, []float64{-75.5, -76.0}) {
		Te.Errorf("energies: got %v", got)
	}
	if got, ok := res.Flag("warnings"); !ok || !got {
		Te.Errorf("warnings: got %v %v", got, ok)
	}
	if got := res["blocks"]; !reflect.DeepEqual(got, [][]string{{"x"}}) {
		Te.Errorf("blocks: got %v", got)
	}
	want := []string{"blocks", "energies", "warnings"}
	if got := res.Names(); !reflect.DeepEqual(got, want) {
		Te.Errorf("got %v, wanted %v", got, want)
	}
}

func TestDriverCondition(Te *testing.T) {
	D := NewDriver()
	on, off := &spy{name: "on"}, &spy{name: "off"}
	D.MustRegister(
		&Spec{Name: "on", Parser: on},
		&Spec{Name: "off", Parser: off, Condition: func(run any) bool { return run.(string) == "gradient" }},
	)
	res, err := D.Run(strings.NewReader("a\nb\n"), "energy")
	if err != nil {
		Te.Fatal(err)
	}
	if res.Has("off") {
		Te.Error("a parser excluded by its condition must not have a result")
	}
	if off.resets != 0 || len(off.lines) != 0 {
		Te.Errorf("excluded parser was touched: %d resets, %d lines", off.resets, len(off.lines))
	}
	if len(res) != 1 || res["on"] != 2 {
		Te.Errorf("got %v", res)
	}
	res, err = D.Run(strings.NewReader("a\n"), "gradient")
	if err != nil {
		Te.Fatal(err)
	}
	if len(res) != 2 || res["off"] != 1 || off.resets != 1 {
		Te.Errorf("got %v with %d resets", res, off.resets)
	}
}

func TestDriverOrderAndLines(Te *testing.T) {
	var order []string
	D := NewDriver()
	a, b := &spy{name: "a", order: &order}, &spy{name: "b", order: &order}
	D.MustRegister(&Spec{Name: "b", Parser: b}, &Spec{Name: "a", Parser: a})
	//CRLF terminators and a missing final newline.
	if _, err := D.Run(strings.NewReader("one\r\ntwo\n\nthree"), nil); err != nil {
		Te.Fatal(err)
	}
	if want := []string{"b", "a", "b", "a", "b", "a", "b", "a"}; !reflect.DeepEqual(order, want) {
		Te.Errorf("call order: got %v, wanted %v", order, want)
	}
	if want := []string{"one", "two", "", "three"}; !reflect.DeepEqual(a.lines, want) {
		Te.Errorf("lines: got %q, wanted %q", a.lines, want)
	}
	if want := []string{"b", "a"}; !reflect.DeepEqual(D.Names(), want) {
		Te.Errorf("names: got %v, wanted %v", D.Names(), want)
	}
}

func TestDriverLongLine(Te *testing.T) {
	D := NewDriver()
	s := &spy{name: "s"}
	D.MustRegister(&Spec{Name: "s", Parser: s})
	long := strings.Repeat("x", 1<<20)
	if _, err := D.Run(strings.NewReader("short\n"+long+"\n"), nil); err != nil {
		Te.Fatal(err)
	}
	if len(s.lines) != 2 || len(s.lines[1]) != 1<<20 {
		Te.Errorf("long line not delivered whole")
	}
}

func TestDriverDuplicate(Te *testing.T) {
	D := NewDriver()
	if err := D.Register(&Spec{Name: "x", Parser: &spy{}}); err != nil {
		Te.Fatal(err)
	}
	err := D.Register(&Spec{Name: "x", Parser: &spy{}})
	var derr *DuplicateNameError
	if !errors.As(err, &derr) || derr.Name != "x" {
		Te.Errorf("got %v, wanted a *DuplicateNameError for x", err)
	}
	if D.Len() != 1 {
		Te.Errorf("the duplicate was registered anyway")
	}
}

func TestDriverParseError(Te *testing.T) {
	D := newTestDriver(Te)
	in := "total scf energy = -1.0\nok\n  total scf energy = -7x.0\nmore\n"
	res, err := D.Run(strings.NewReader(in), false)
	if res != nil {
		Te.Errorf("partial results returned: %v", res)
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		Te.Fatalf("got %v, wanted a *ParseError", err)
	}
	if perr.Parser != "energies" || perr.Line != 3 || !strings.Contains(perr.Text, "-7x.0") {
		Te.Errorf("got parser %q line %d text %q", perr.Parser, perr.Line, perr.Text)
	}
	//the next pass must not see anything from the failed one.
	res, err = D.Run(strings.NewReader("total scf energy = -2.0\n"), false)
	if err != nil {
		Te.Fatal(err)
	}
	if got, _ := res.Floats("energies"); !reflect.DeepEqual(got, []float64{-2.0}) {
		Te.Errorf("got %v after a failed pass", got)
	}
}

type shapeSpy struct{ spy }

func (S *shapeSpy) Parse(line string) error {
	if line == "bad" {
		return &ShapeError{Len: 8, Width: 3}
	}
	return nil
}

type plainErr struct{ spy }

func (S *plainErr) Parse(line string) error {
	if line == "bad" {
		return errors.New("boom")
	}
	return nil
}

func TestDriverLocatesErrors(Te *testing.T) {
	D := NewDriver()
	D.MustRegister(&Spec{Name: "shape", Parser: &shapeSpy{}})
	_, err := D.Run(strings.NewReader("a\nbad\n"), nil)
	var serr *ShapeError
	if !errors.As(err, &serr) || serr.Parser != "shape" || serr.Line != 2 {
		Te.Errorf("got %v", err)
	}
	D = NewDriver()
	D.MustRegister(&Spec{Name: "plain", Parser: &plainErr{}})
	_, err = D.Run(strings.NewReader("bad\n"), nil)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Parser != "plain" || perr.Line != 1 || perr.Text != "bad" {
		Te.Errorf("got %v", err)
	}
}

func TestDriverRunFile(Te *testing.T) {
	dir := Te.TempDir()
	plain := filepath.Join(dir, "job.out")
	if err := os.WriteFile(plain, []byte(sample), 0644); err != nil {
		Te.Fatal(err)
	}
	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	zw.Write([]byte(sample))
	zw.Close()
	gzname := filepath.Join(dir, "job.out.gz")
	if err := os.WriteFile(gzname, gz.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	var zs bytes.Buffer
	enc, err := zstd.NewWriter(&zs)
	if err != nil {
		Te.Fatal(err)
	}
	enc.Write([]byte(sample))
	enc.Close()
	zsname := filepath.Join(dir, "job.out.zst")
	if err := os.WriteFile(zsname, zs.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	D := newTestDriver(Te)
	for _, name := range []string{plain, gzname, zsname} {
		res, err := D.RunFile(name, true)
		if err != nil {
			Te.Fatalf("%s: %v", name, err)
		}
		if got, _ := res.Floats("energies"); !reflect.DeepEqual(got, []float64{-75.5, -76.0}) {
			Te.Errorf("%s: got %v", name, got)
		}
	}
}

func TestDriverMissingFile(Te *testing.T) {
	D := NewDriver()
	s := &spy{}
	D.MustRegister(&Spec{Name: "s", Parser: s})
	_, err := D.RunFile(filepath.Join(Te.TempDir(), "nope.out"), nil)
	var ioerr *IOError
	if !errors.As(err, &ioerr) {
		Te.Fatalf("got %v, wanted an *IOError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("%v should wrap os.ErrNotExist", err)
	}
	if s.resets != 0 {
		Te.Error("parsers were reset before the file was opened")
	}
}

func TestExt(Te *testing.T) {
	tests := map[string]string{
		"job.out":        "out",
		"dir/job.out.gz": "out",
		"job.OUT.zst":    "OUT",
		"job":            "",
	}
	for in, want := range tests {
		if got := Ext(in); got != want {
			Te.Errorf("%s: got %q, wanted %q", in, got, want)
		}
	}
}
