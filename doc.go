/*
 * doc.go, part of chemedu.
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
 * chemedu is developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package chem is the main package of the chemedu library. It provides the small
amount of computation needed by an introductory chemistry course: ionic formulas
and amounts of substance.



	**chemedu Capabilities**


    Keeps a read-only catalog of common ions and substances (Registry).

    Builds the formula of the neutral compound formed by a cation and an anion,
	with the smallest whole-number subscripts that balance the charges (Balance),
	and explains the electron transfer behind it.

    Converts a mass of a substance into moles and number of particles (ComputeMoles),
	and formats particle counts as multiples of 10²³ (FormatParticleCount).

    Computes molar masses, mass composition and mass ratios from a formula
	(MolarMass, MassComposition, MassRatio).

	All the functions are pure and can be called concurrently.

	The chemjson package allows other programs (a web page, for instance) to use
	chemedu through line-delimited JSON, and chemplot draws mole/mass curves.

*/
package chem
