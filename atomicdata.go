/*
 * atomicdata.go, part of molmod.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package chem

import (
	"fmt"
	"strings"
)

//Element contains the data molmod keeps for each chemical element.
type Element struct {
	Number int
	Symbol string
	Name   string
	Mass   float64 //standard atomic weight, in amu
	CovRad float64 //covalent radius in A, Cordero et al., 2008 (DOI:10.1039/B801115J)
}

//The periodic table up to Xe. For the transition metals with several spin
//states the high-spin covalent radius is used.
var elements = []Element{
	{1, "H", "hydrogen", 1.008, 0.31},
	{2, "He", "helium", 4.0026, 0.28},
	{3, "Li", "lithium", 6.94, 1.28},
	{4, "Be", "beryllium", 9.0122, 0.96},
	{5, "B", "boron", 10.81, 0.84},
	{6, "C", "carbon", 12.011, 0.76}, //the sp3 radius
	{7, "N", "nitrogen", 14.007, 0.71},
	{8, "O", "oxygen", 15.999, 0.66},
	{9, "F", "fluorine", 18.998, 0.57},
	{10, "Ne", "neon", 20.180, 0.58},
	{11, "Na", "sodium", 22.990, 1.66},
	{12, "Mg", "magnesium", 24.305, 1.41},
	{13, "Al", "aluminium", 26.982, 1.21},
	{14, "Si", "silicon", 28.085, 1.11},
	{15, "P", "phosphorus", 30.974, 1.07},
	{16, "S", "sulfur", 32.06, 1.05},
	{17, "Cl", "chlorine", 35.45, 1.02},
	{18, "Ar", "argon", 39.948, 1.06},
	{19, "K", "potassium", 39.098, 2.03},
	{20, "Ca", "calcium", 40.078, 1.76},
	{21, "Sc", "scandium", 44.956, 1.70},
	{22, "Ti", "titanium", 47.867, 1.60},
	{23, "V", "vanadium", 50.942, 1.53},
	{24, "Cr", "chromium", 51.996, 1.39},
	{25, "Mn", "manganese", 54.938, 1.61}, //hs
	{26, "Fe", "iron", 55.845, 1.52},      //hs
	{27, "Co", "cobalt", 58.933, 1.50},    //hs
	{28, "Ni", "nickel", 58.693, 1.24},
	{29, "Cu", "copper", 63.546, 1.32},
	{30, "Zn", "zinc", 65.38, 1.22},
	{31, "Ga", "gallium", 69.723, 1.22},
	{32, "Ge", "germanium", 72.630, 1.20},
	{33, "As", "arsenic", 74.922, 1.19},
	{34, "Se", "selenium", 78.971, 1.20},
	{35, "Br", "bromine", 79.904, 1.20},
	{36, "Kr", "krypton", 83.798, 1.16},
	{37, "Rb", "rubidium", 85.468, 2.20},
	{38, "Sr", "strontium", 87.62, 1.95},
	{39, "Y", "yttrium", 88.906, 1.90},
	{40, "Zr", "zirconium", 91.224, 1.75},
	{41, "Nb", "niobium", 92.906, 1.64},
	{42, "Mo", "molybdenum", 95.95, 1.54},
	{43, "Tc", "technetium", 98.0, 1.47},
	{44, "Ru", "ruthenium", 101.07, 1.46},
	{45, "Rh", "rhodium", 102.91, 1.42},
	{46, "Pd", "palladium", 106.42, 1.39},
	{47, "Ag", "silver", 107.87, 1.45},
	{48, "Cd", "cadmium", 112.41, 1.44},
	{49, "In", "indium", 114.82, 1.42},
	{50, "Sn", "tin", 118.71, 1.39},
	{51, "Sb", "antimony", 121.76, 1.39},
	{52, "Te", "tellurium", 127.60, 1.38},
	{53, "I", "iodine", 126.90, 1.39},
	{54, "Xe", "xenon", 131.29, 1.40},
}

//symbolIndex maps lowercase symbols and names to positions in elements.
var symbolIndex = func() map[string]int {
	m := make(map[string]int, 2*len(elements))
	for i, e := range elements {
		m[strings.ToLower(e.Symbol)] = i
		m[e.Name] = i
	}
	return m
}()

//SymbolLookup returns the element with the given symbol. The lookup is
//case-insensitive, so "CL", "cl" and "Cl" all give chlorine. Element
//names ("chlorine") are also accepted.
func SymbolLookup(symbol string) (*Element, error) {
	i, ok := symbolIndex[strings.ToLower(strings.TrimSpace(symbol))]
	if !ok {
		return nil, CError{fmt.Sprintf("Unknown element symbol %q", symbol), []string{"SymbolLookup"}}
	}
	e := elements[i]
	return &e, nil
}

//NumberLookup returns the element with atomic number z.
func NumberLookup(z int) (*Element, error) {
	if z < 1 || z > len(elements) {
		return nil, CError{fmt.Sprintf("No data for atomic number %d", z), []string{"NumberLookup"}}
	}
	e := elements[z-1]
	return &e, nil
}
