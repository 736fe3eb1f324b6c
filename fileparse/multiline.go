/*
 * multiline.go, part of molmod.
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

//State is the state of a MultiLine parser.
type State int

const (
	Idle State = iota
	Collecting
)

func (s State) String() string {
	if s == Collecting {
		return "collecting"
	}
	return "idle"
}

//Collector builds records out of the lines of a block. MultiLine decides
//where blocks begin and end; the Collector only sees the lines between the
//activating and the deactivating one.
type Collector interface {
	//Reset drops every record, finished or not.
	Reset()

	//StartCollecting prepares an empty buffer for a new block.
	StartCollecting()

	//Collect adds the data in line to the current buffer.
	Collect(line string) error

	//StopCollecting turns the current buffer into a record
	//and appends it to the finished ones.
	StopCollecting() error

	//Result returns the finished records. Blocks that were
	//started but never stopped are not part of it.
	Result() any
}

//MultiLine is a LineParser for blocks of lines. A line matching
//Activator opens a block, and a line matching Deactivator closes it.
//Neither of those lines is handed to the Collector.
type MultiLine struct {
	Activator   *Pattern
	Deactivator *Pattern
	Collector   Collector
	state       State
}

//NewMultiLine returns a MultiLine parser feeding c with the blocks
//delimited by activator and deactivator.
func NewMultiLine(activator, deactivator *Pattern, c Collector) *MultiLine {
	M := &MultiLine{Activator: activator, Deactivator: deactivator, Collector: c}
	M.Reset()
	return M
}

func (M *MultiLine) Reset() {
	M.state = Idle
	M.Collector.Reset()
}

func (M *MultiLine) Parse(line string) error {
	if M.state == Collecting {
		if M.Deactivator.Match(line) {
			M.state = Idle
			return M.Collector.StopCollecting()
		}
		return M.Collector.Collect(line)
	}
	if M.Activator.Match(line) {
		M.state = Collecting
		M.Collector.StartCollecting()
	}
	return nil
}

func (M *MultiLine) Result() any {
	return M.Collector.Result()
}

//State returns the current state of the parser.
func (M *MultiLine) State() State {
	return M.state
}

//Open is true if a block has been opened and not closed yet.
func (M *MultiLine) Open() bool {
	return M.state == Collecting
}

//LineBlocks is a Collector that keeps the raw lines of each block.
//Its result is a [][]string.
type LineBlocks struct {
	blocks  [][]string
	current []string
}

func (L *LineBlocks) Reset() {
	L.blocks = make([][]string, 0, 2)
	L.current = nil
}

func (L *LineBlocks) StartCollecting() {
	L.current = make([]string, 0, 10)
}

func (L *LineBlocks) Collect(line string) error {
	L.current = append(L.current, line)
	return nil
}

func (L *LineBlocks) StopCollecting() error {
	L.blocks = append(L.blocks, L.current)
	L.current = nil
	return nil
}

func (L *LineBlocks) Result() any {
	ret := make([][]string, len(L.blocks))
	copy(ret, L.blocks)
	return ret
}
