/*
 * formula.go, part of chemedu.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"fmt"
	"strconv"
	"strings"
)

//Indexed by digit value.
var subscripts = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

//Subscript returns the decimal representation of n written with subscript digits.
func Subscript(n int) string {
	digits := strconv.Itoa(n)
	var b strings.Builder
	for _, d := range digits {
		if d >= '0' && d <= '9' {
			b.WriteRune(subscripts[d-'0'])
			continue
		}
		b.WriteRune(d) //the minus sign, if any.
	}
	return b.String()
}

var superscripts = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

//superCharge writes a charge the way it goes over an ion in a textbook: "²⁺", "⁻".
func superCharge(charge int) string {
	var b strings.Builder
	if abs := absInt(charge); abs != 1 {
		for _, d := range strconv.Itoa(abs) {
			b.WriteRune(superscripts[d-'0'])
		}
	}
	if charge < 0 {
		b.WriteRune('⁻')
	} else {
		b.WriteRune('⁺')
	}
	return b.String()
}

//subscriptValue returns the value of a subscript digit, and false if r is not one.
func subscriptValue(r rune) (int, bool) {
	if r >= '₀' && r <= '₉' {
		return int(r - '₀'), true
	}
	return 0, false
}

//plainDigits replaces subscript digits in s by the usual ones.
func plainDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if v, ok := subscriptValue(r); ok {
			return rune('0' + v)
		}
		return r
	}, s)
}

//Compound is the neutral combination of a cation and an anion. It is
//a transient result of Balance, with the smallest whole-number counts
//that make the total positive charge equal to the total negative charge.
type Compound struct {
	Name         string `json:"name"`
	CationSymbol string `json:"cationSymbol"`
	CationCharge int    `json:"cationCharge"`
	CationCount  int    `json:"cationCount"`
	AnionSymbol  string `json:"anionSymbol"`
	AnionCharge  int    `json:"anionCharge"`
	AnionCount   int    `json:"anionCount"`
	Formula      string `json:"formula"`
}

//Balance returns the compound formed by cation and anion.
//It returns an InvalidIonPairing error unless cation has a positive charge and anion a negative one.
func Balance(cation, anion Ion) (Compound, error) {
	if cation.Charge <= 0 || anion.Charge >= 0 {
		return Compound{}, newError(InvalidIonPairing, "Balance", "a cation must be paired with an anion, got %s and %s", cation, anion)
	}
	a := absInt(cation.Charge)
	b := absInt(anion.Charge)
	l := lcm(a, b)
	c := Compound{
		Name:         cation.Element + " " + anion.Element,
		CationSymbol: cation.Symbol,
		CationCharge: cation.Charge,
		CationCount:  l / a,
		AnionSymbol:  anion.Symbol,
		AnionCharge:  anion.Charge,
		AnionCount:   l / b,
	}
	c.Formula = formulaPart(c.CationSymbol, c.CationCount) + formulaPart(c.AnionSymbol, c.AnionCount)
	return c, nil
}

func formulaPart(symbol string, count int) string {
	if count == 1 {
		return symbol
	}
	return symbol + Subscript(count)
}

//Balanced is true if the total charge of the compound is zero and
//the counts are in lowest terms.
func (C Compound) Balanced() bool {
	if C.CationCount <= 0 || C.AnionCount <= 0 {
		return false
	}
	return C.CationCount*C.CationCharge+C.AnionCount*C.AnionCharge == 0 && gcd(C.CationCount, C.AnionCount) == 1
}

func (C Compound) String() string {
	return C.Formula
}

//Explanation describes the electron transfer that gives the compound, and
//the charge balance, i.e.
//"2 Al³⁺ lose 6 electrons total, 3 O²⁻ gain 6 electrons total. Charges balance: 2(+3) + 3(-2) = 0"
func (C Compound) Explanation() string {
	cat := C.CationSymbol + superCharge(C.CationCharge)
	an := C.AnionSymbol + superCharge(C.AnionCharge)
	transfer := C.CationCount * C.CationCharge
	var lose, gain string
	if C.CationCount == 1 {
		lose = fmt.Sprintf("%s loses %s", cat, electrons(transfer))
	} else {
		lose = fmt.Sprintf("%d %s lose %s total", C.CationCount, cat, electrons(transfer))
	}
	if C.AnionCount == 1 {
		gain = fmt.Sprintf("%s gains %s", an, electrons(transfer))
	} else {
		gain = fmt.Sprintf("%d %s each gain %s", C.AnionCount, an, electrons(-C.AnionCharge))
		if C.CationCount != 1 {
			gain = fmt.Sprintf("%d %s gain %s total", C.AnionCount, an, electrons(transfer))
		}
	}
	return fmt.Sprintf("%s, %s. Charges balance: %s + %s = 0", lose, gain, chargeTerm(C.CationCount, C.CationCharge), chargeTerm(C.AnionCount, C.AnionCharge))
}

func electrons(n int) string {
	if n == 1 {
		return "1 electron"
	}
	return fmt.Sprintf("%d electrons", n)
}

//chargeTerm gives "(+2)" or "2(-1)"
func chargeTerm(count, charge int) string {
	t := fmt.Sprintf("(%+d)", charge)
	if count == 1 {
		return t
	}
	return strconv.Itoa(count) + t
}

//gcd is the greatest common divisor, by Euclid's algorithm. gcd(a,0)=a.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a * b / gcd(a, b)
}
