/*
 * atomicdata.go, part of chemedu.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 * chemedu is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package chem

//A map for assigning atomic mass (g/mol) to elements.
//Note that just common "classroom" elements are present.
//H is 1.0 so the usual textbook molar masses (H2O=18) come out exact.
var symbolMass = map[string]float64{
	"H":  1.0,
	"He": 4.003,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Ne": 20.18,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.95,
	"K":  39.1,
	"Ca": 40.08,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.84,
	"Co": 58.93,
	"Cu": 63.55,
	"Zn": 65.38,
	"Se": 78.96,
	"Br": 79.904,
	"Ag": 107.87,
	"I":  126.90,
	"Ba": 137.33,
}

//The ions offered for building formulas, in the order they are shown.
//No zero-charge entries, ever.
var commonIons = []Ion{
	{Element: "Sodium", Symbol: "Na", Charge: 1, Polarity: Cation},
	{Element: "Calcium", Symbol: "Ca", Charge: 2, Polarity: Cation},
	{Element: "Aluminum", Symbol: "Al", Charge: 3, Polarity: Cation},
	{Element: "Chloride", Symbol: "Cl", Charge: -1, Polarity: Anion},
	{Element: "Oxide", Symbol: "O", Charge: -2, Polarity: Anion},
	{Element: "Nitride", Symbol: "N", Charge: -3, Polarity: Anion},
}

//Molar masses are the rounded values used in class, not the ones
//that MolarMass would compute.
var commonSubstances = []Substance{
	{Name: "Water", Formula: "H₂O", MolarMass: 18},
	{Name: "Carbon Dioxide", Formula: "CO₂", MolarMass: 44},
	{Name: "Methane", Formula: "CH₄", MolarMass: 16},
	{Name: "Oxygen", Formula: "O₂", MolarMass: 32},
	{Name: "Sodium Chloride", Formula: "NaCl", MolarMass: 58.5},
}
