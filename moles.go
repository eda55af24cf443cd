/*
 * moles.go, part of chemedu.
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

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

//MoleResult contains the amount of substance in a given mass.
//Nothing in it is rounded, rounding is left for display.
type MoleResult struct {
	Substance string
	MolarMass float64 //g/mol
	GivenMass float64 //g
	Moles     float64
	Particles float64 //atoms, molecules or formula units
}

//ComputeMoles returns the moles and number of particles in mass grams of s.
//It returns an InvalidMass error if mass is not a positive, finite number.
func ComputeMoles(s Substance, mass float64) (MoleResult, error) {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass <= 0 {
		return MoleResult{}, newError(InvalidMass, "ComputeMoles", "mass must be a positive number, got %g", mass)
	}
	if !s.validMass() {
		return MoleResult{}, newError(InvalidMass, "ComputeMoles", "substance %s has molar mass %g", s.Name, s.MolarMass)
	}
	moles := mass / s.MolarMass
	return MoleResult{
		Substance: s.Name,
		MolarMass: s.MolarMass,
		GivenMass: mass,
		Moles:     moles,
		Particles: moles * Avogadro,
	}, nil
}

//FormatParticleCount writes n as a multiple of 10²³ with 2 decimals if n >= 1e23,
//i.e. "6.02 × 10²³", and with 4 decimals otherwise. The exponent is always 23,
//even for very large numbers, this is not a general scientific notation.
func FormatParticleCount(n float64) string {
	if n >= particleExponent {
		return toFixed(n/particleExponent, 2) + particleSuffix
	}
	return toFixed(n, 4)
}

//FormatMoles writes m with 4 decimals.
func FormatMoles(m float64) string {
	return toFixed(m, 4)
}

//toFixed writes f with prec decimals. The exact binary value of f is rounded,
//and ties go away from zero, so 0.03125 gives "0.0313" but 1.005 (really
//1.00499999...) gives "1.00".
func toFixed(f float64, prec int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', prec, 64)
	}
	r := new(big.Rat).SetFloat64(math.Abs(f))
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	digits := new(big.Int).Quo(r.Num(), r.Denom()).String()
	if len(digits) <= prec {
		digits = strings.Repeat("0", prec-len(digits)+1) + digits
	}
	ret := digits
	if prec > 0 {
		ret = digits[:len(digits)-prec] + "." + digits[len(digits)-prec:]
	}
	if f < 0 {
		ret = "-" + ret
	}
	return ret
}

//Working returns the calculation as it would be written in the
//blackboard: "18g ÷ 18g/mol = 1.0000 mol"
func (M MoleResult) Working() string {
	return fmt.Sprintf("%sg ÷ %sg/mol = %s mol", plainFloat(M.GivenMass), plainFloat(M.MolarMass), FormatMoles(M.Moles))
}

//ParticleText is the particle count, formatted with FormatParticleCount
func (M MoleResult) ParticleText() string {
	return FormatParticleCount(M.Particles)
}

func (M MoleResult) String() string {
	return fmt.Sprintf("%s: %s mol, %s particles", M.Substance, FormatMoles(M.Moles), M.ParticleText())
}

//plainFloat writes f with as few digits as needed, without exponent.
func plainFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
