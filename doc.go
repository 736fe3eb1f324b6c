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

/*
Package chem is the main package of molmod. It provides the atom and molecule
structures shared by the other packages, a periodic table, unit conversion
factors, and readers and writers for the CML and XYZ formats.

The fileparse package streams the output of quantum-chemistry programs through
a set of line parsers, and the qm package builds on it to prepare, run and
read MPQC calculations. chemplot and chemjson turn the parsed results into
plots and JSON.

Coordinates are always kept in Angstroms, and energies returned by the qm
package are in kcal/mol. The conversion constants in this package can be used
to go to other units.
*/
package chem
