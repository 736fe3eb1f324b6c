/*
 * multiline_test.go, part of molmod.
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
	"reflect"
	"testing"
)

func newBlocks() *MultiLine {
	return NewMultiLine(NewPattern("begin", `^begin`), NewPattern("end", `^end$`), new(LineBlocks))
}

func feed(Te *testing.T, p LineParser, lines ...string) {
	Te.Helper()
	for _, l := range lines {
		if err := p.Parse(l); err != nil {
			Te.Fatal(err)
		}
	}
}

func TestMultiLineTransitions(Te *testing.T) {
	m := newBlocks()
	steps := []struct {
		line string
		want State
	}{
		{"noise", Idle},
		{"end", Idle}, //a deactivator while idle is ignored
		{"begin block", Collecting},
		{"begin again", Collecting}, //and so is an activator while collecting
		{"a", Collecting},
		{"end", Idle},
	}
	for _, s := range steps {
		feed(Te, m, s.line)
		if m.State() != s.want {
			Te.Errorf("after %q: got %v, wanted %v", s.line, m.State(), s.want)
		}
	}
	want := [][]string{{"begin again", "a"}}
	if got := m.Result(); !reflect.DeepEqual(got, want) {
		Te.Errorf("got %v, wanted %v", got, want)
	}
}

func TestMultiLineTwoSpans(Te *testing.T) {
	m := newBlocks()
	feed(Te, m, "begin", "1", "2", "end", "between", "begin", "3", "end", "after")
	want := [][]string{{"1", "2"}, {"3"}}
	got := m.Result()
	if !reflect.DeepEqual(got, want) {
		Te.Errorf("got %v, wanted %v", got, want)
	}
	if again := m.Result(); !reflect.DeepEqual(again, got) {
		Te.Errorf("second Result call gave %v", again)
	}
}

func TestMultiLineDropsOpenSpan(Te *testing.T) {
	m := newBlocks()
	feed(Te, m, "begin", "1", "end", "begin", "2", "3")
	if !m.Open() {
		Te.Error("the last block should still be open")
	}
	want := [][]string{{"1"}}
	if got := m.Result(); !reflect.DeepEqual(got, want) {
		Te.Errorf("got %v, wanted %v", got, want)
	}
	m.Reset()
	if m.Open() {
		Te.Error("Reset should go back to idle")
	}
	if got := m.Result(); !reflect.DeepEqual(got, [][]string{}) {
		Te.Errorf("Reset left %v behind", got)
	}
}

type failingCollector struct {
	LineBlocks
}

func (F *failingCollector) StopCollecting() error {
	return &ShapeError{Len: 2, Width: 3}
}

func TestMultiLineStopError(Te *testing.T) {
	m := NewMultiLine(NewPattern("begin", `^begin`), NewPattern("end", `^end$`), new(failingCollector))
	feed(Te, m, "begin", "1")
	err := m.Parse("end")
	var serr *ShapeError
	if !errors.As(err, &serr) {
		Te.Fatalf("got %v, wanted a *ShapeError", err)
	}
	if m.Open() {
		Te.Error("the block should be closed even if StopCollecting fails")
	}
}
