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

//Package dlpoly reads the HISTORY and OUTPUT files of DL_POLY molecular
//dynamics runs. Both readers are fileparse.LineParsers, so they can be
//registered in a Driver next to other parsers, or used through
//ReadHistory and ReadOutput.
//
//Values are kept in the units DL_POLY writes them: A, ps, amu, and the
//DL_POLY energy unit (10 J/mol).
package dlpoly
