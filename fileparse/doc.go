/*
 * doc.go, part of molmod.
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

//Package fileparse extracts structured records from the text output of
//scientific programs. A Driver streams a file once, line by line, through
//a set of independent LineParsers, and collects each parser's result under
//the name it was registered with.
//
//Single-line parsers (FloatSeries, Flag) react to one matching line at a
//time. Blocks spanning several lines are handled by MultiLine, a two-state
//machine that opens a span when its activator pattern matches, feeds every
//following line to a Collector, and closes the span when the deactivator
//matches. A span still open when the input ends is dropped.
//
//Each registered parser can carry a Condition, evaluated once per pass
//against a caller-supplied value, that decides whether the parser takes
//part in that pass at all.
package fileparse
