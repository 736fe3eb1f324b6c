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

//Package qm prepares, runs and reads quantum-chemistry calculations.
//The calculation settings (a Calc) are kept separate from the program
//that performs the calculation (a Handle). Currently MPQC is supported.
//
//The MPQC output parsers are plain fileparse line parsers, so they can
//also be registered in other Drivers or used one by one.
package qm
