/*
 * atomicdata.go, part of embcluster.
 *
 * Copyright 2024 Raul Mera <rmeraatusachdotcl>
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
 */

package chem

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
//For Mn, Fe and Co the high-spin values are used.
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 I altered this one. Since H always has only one bond, it doesn't matter if I set a longer radius, the extra bonds will get eliminated later.
	"He": 0.28,
	"Li": 1.28,
	"Be": 0.96,
	"B":  0.84,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Ne": 0.58,
	"Na": 1.66,
	"Mg": 1.41,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Cl": 1.02,
	"Ar": 1.06,
	"K":  2.03,
	"Ca": 1.76,
	"Sc": 1.70,
	"Ti": 1.60,
	"V":  1.53,
	"Cr": 1.39,
	"Mn": 1.61, //hs
	"Fe": 1.52, //hs
	"Co": 1.5,  // hs
	"Ni": 1.24,
	"Cu": 1.32,
	"Zn": 1.22,
	"Ga": 1.22,
	"Ge": 1.20,
	"As": 1.19,
	"Se": 1.2,
	"Br": 1.2,
	"Kr": 1.16,
	"Rb": 2.20,
	"Sr": 1.95,
	"Y":  1.90,
	"Zr": 1.75,
	"Nb": 1.64,
	"Mo": 1.54,
	"Tc": 1.47,
	"Ru": 1.46,
	"Rh": 1.42,
	"Pd": 1.39,
	"Ag": 1.45,
	"Cd": 1.44,
	"In": 1.42,
	"Sn": 1.39,
	"Sb": 1.39,
	"Te": 1.38,
	"I":  1.39,
	"Xe": 1.40,
	"Cs": 2.44,
	"Ba": 2.15,
	"La": 2.07,
	"Ce": 2.04,
	"Pr": 2.03,
	"Nd": 2.01,
	"Sm": 1.98,
	"Eu": 1.98,
	"Gd": 1.96,
	"Hf": 1.75,
	"Ta": 1.70,
	"W":  1.62,
	"Re": 1.51,
	"Os": 1.44,
	"Ir": 1.41,
	"Pt": 1.36,
	"Au": 1.36,
	"Hg": 1.32,
	"Tl": 1.45,
	"Pb": 1.46,
	"Bi": 1.48,
	"U":  1.96,
}

//Atomic numbers, needed to count the electrons in the QC region.
var symbolZ = map[string]int{
	"H": 1, "He": 2, "Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Sc": 21, "Ti": 22, "V": 23, "Cr": 24, "Mn": 25, "Fe": 26, "Co": 27,
	"Ni": 28, "Cu": 29, "Zn": 30, "Ga": 31, "Ge": 32, "As": 33, "Se": 34, "Br": 35, "Kr": 36,
	"Rb": 37, "Sr": 38, "Y": 39, "Zr": 40, "Nb": 41, "Mo": 42, "Tc": 43, "Ru": 44, "Rh": 45,
	"Pd": 46, "Ag": 47, "Cd": 48, "In": 49, "Sn": 50, "Sb": 51, "Te": 52, "I": 53, "Xe": 54,
	"Cs": 55, "Ba": 56, "La": 57, "Ce": 58, "Pr": 59, "Nd": 60, "Sm": 62, "Eu": 63, "Gd": 64,
	"Hf": 72, "Ta": 73, "W": 74, "Re": 75, "Os": 76, "Ir": 77, "Pt": 78, "Au": 79, "Hg": 80,
	"Tl": 81, "Pb": 82, "Bi": 83, "U": 92,
}

//The most common oxidation state of each element in ionic solids.
//These are only a last resort, the formal charges for a given material
//should be set explicitly whenever the element has several common states.
var symbolOxidation = map[string]float64{
	"H":  1,
	"Li": 1,
	"Na": 1,
	"K":  1,
	"Rb": 1,
	"Cs": 1,
	"Ag": 1,
	"Be": 2,
	"Mg": 2,
	"Ca": 2,
	"Sr": 2,
	"Ba": 2,
	"Ni": 2,
	"Cu": 2,
	"Zn": 2,
	"Cd": 2,
	"Pb": 2,
	"B":  3,
	"Al": 3,
	"Ga": 3,
	"In": 3,
	"Sc": 3,
	"Y":  3,
	"La": 3,
	"Fe": 3,
	"Bi": 3,
	"Ti": 4,
	"Zr": 4,
	"Hf": 4,
	"Ce": 4,
	"Si": 4,
	"Ge": 4,
	"Sn": 4,
	"Ru": 4,
	"Ir": 4,
	"Os": 4,
	"U":  4,
	"V":  5,
	"Nb": 5,
	"Ta": 5,
	"P":  5,
	"Mo": 6,
	"W":  6,
	"N":  -3,
	"O":  -2,
	"S":  -2,
	"Se": -2,
	"Te": -2,
	"F":  -1,
	"Cl": -1,
	"Br": -1,
	"I":  -1,
}

//A map for checking that atoms don't
//have too many bonds. Elements absent from the
//map are not checked. Only H is defined, as
//halides in ionic solids are legitimately bonded
//to several cations.
var symbolMaxBonds = map[string]int{
	"H": 1, //this is the only one truly important.
}

//CovalentRadius returns the covalent radius of the element
//with the given symbol, and whether it was found.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}

//AtomicNumber returns the atomic number for the given symbol,
//and whether it was found.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := symbolZ[symbol]
	return z, ok
}

//OxidationState returns the default oxidation state for the
//element, and whether one is tabulated.
func OxidationState(symbol string) (float64, bool) {
	q, ok := symbolOxidation[symbol]
	return q, ok
}

//IsElement returns true if symbol is an element symbol goChem knows about.
func IsElement(symbol string) bool {
	_, ok := symbolZ[symbol]
	return ok
}
