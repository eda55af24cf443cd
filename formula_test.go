/*
 * formula_test.go, part of chemedu.
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
	"testing"
)

func mustIon(Te *testing.T, element, symbol string, charge int) Ion {
	Te.Helper()
	ion, err := NewIon(element, symbol, charge)
	if err != nil {
		Te.Fatal(err)
	}
	return ion
}

func TestBalanceScenarios(Te *testing.T) {
	cases := []struct {
		cation, anion        Ion
		ccount, acount       int
		formula, name, expla string
	}{
		{
			mustIon(Te, "Sodium", "Na", 1), mustIon(Te, "Chloride", "Cl", -1), 1, 1, "NaCl", "Sodium Chloride",
			"Na⁺ loses 1 electron, Cl⁻ gains 1 electron. Charges balance: (+1) + (-1) = 0",
		},
		{
			mustIon(Te, "Calcium", "Ca", 2), mustIon(Te, "Chloride", "Cl", -1), 1, 2, "CaCl₂", "Calcium Chloride",
			"Ca²⁺ loses 2 electrons, 2 Cl⁻ each gain 1 electron. Charges balance: (+2) + 2(-1) = 0",
		},
		{
			mustIon(Te, "Aluminum", "Al", 3), mustIon(Te, "Oxide", "O", -2), 2, 3, "Al₂O₃", "Aluminum Oxide",
			"2 Al³⁺ lose 6 electrons total, 3 O²⁻ gain 6 electrons total. Charges balance: 2(+3) + 3(-2) = 0",
		},
		{
			mustIon(Te, "Calcium", "Ca", 2), mustIon(Te, "Oxide", "O", -2), 1, 1, "CaO", "Calcium Oxide",
			"Ca²⁺ loses 2 electrons, O²⁻ gains 2 electrons. Charges balance: (+2) + (-2) = 0",
		},
		{
			mustIon(Te, "Sodium", "Na", 1), mustIon(Te, "Nitride", "N", -3), 3, 1, "Na₃N", "Sodium Nitride",
			"3 Na⁺ lose 3 electrons total, N³⁻ gains 3 electrons. Charges balance: 3(+1) + (-3) = 0",
		},
	}
	for _, c := range cases {
		comp, err := Balance(c.cation, c.anion)
		if err != nil {
			Te.Fatal(err)
		}
		fmt.Println(comp.Formula, comp.Explanation())
		if comp.CationCount != c.ccount || comp.AnionCount != c.acount {
			Te.Errorf("%s: expected counts %d,%d, got %d,%d", c.formula, c.ccount, c.acount, comp.CationCount, comp.AnionCount)
		}
		if comp.Formula != c.formula {
			Te.Errorf("expected formula %s, got %s", c.formula, comp.Formula)
		}
		if comp.Name != c.name {
			Te.Errorf("expected name %s, got %s", c.name, comp.Name)
		}
		if e := comp.Explanation(); e != c.expla {
			Te.Errorf("expected explanation\n%s\ngot\n%s", c.expla, e)
		}
	}
}

//Every pair of charges up to 12 must give balanced, coprime counts.
func TestBalanceInvariants(Te *testing.T) {
	for a := 1; a <= 12; a++ {
		for b := 1; b <= 12; b++ {
			cat := mustIon(Te, "X", "X", a)
			an := mustIon(Te, "Y", "Y", -b)
			comp, err := Balance(cat, an)
			if err != nil {
				Te.Fatal(err)
			}
			if comp.CationCount*a != comp.AnionCount*b {
				Te.Errorf("+%d/-%d: charges not balanced: %d*%d != %d*%d", a, b, comp.CationCount, a, comp.AnionCount, b)
			}
			if gcd(comp.CationCount, comp.AnionCount) != 1 {
				Te.Errorf("+%d/-%d: counts %d, %d not in lowest terms", a, b, comp.CationCount, comp.AnionCount)
			}
			if !comp.Balanced() {
				Te.Errorf("+%d/-%d: Balanced() is false for %s", a, b, comp.Formula)
			}
			again, _ := Balance(cat, an)
			if again != comp {
				Te.Errorf("+%d/-%d: Balance is not deterministic: %v vs %v", a, b, comp, again)
			}
		}
	}
}

func TestBalanceInvalidPairing(Te *testing.T) {
	na := mustIon(Te, "Sodium", "Na", 1)
	ca := mustIon(Te, "Calcium", "Ca", 2)
	cl := mustIon(Te, "Chloride", "Cl", -1)
	o := mustIon(Te, "Oxide", "O", -2)
	for _, pair := range [][2]Ion{{na, ca}, {cl, o}, {cl, na}, {{Symbol: "Z"}, cl}} {
		_, err := Balance(pair[0], pair[1])
		if err == nil {
			Te.Errorf("%v + %v should have failed", pair[0], pair[1])
			continue
		}
		if !IsInvalidIonPairing(err) {
			Te.Errorf("expected InvalidIonPairing, got %v", err)
		}
		fmt.Println(err)
	}
}

func TestSubscript(Te *testing.T) {
	for n, exp := range map[int]string{0: "₀", 1: "₁", 2: "₂", 10: "₁₀", 123: "₁₂₃", 9876: "₉₈₇₆"} {
		if s := Subscript(n); s != exp {
			Te.Errorf("Subscript(%d): expected %s, got %s", n, exp, s)
		}
	}
	//multi-digit counts in a formula
	comp, err := Balance(mustIon(Te, "X", "X", 11), mustIon(Te, "Y", "Y", -10))
	if err != nil {
		Te.Fatal(err)
	}
	if comp.Formula != "X₁₀Y₁₁" {
		Te.Errorf("expected X₁₀Y₁₁, got %s", comp.Formula)
	}
}

func TestChargeDisplay(Te *testing.T) {
	for c, exp := range map[int]string{1: "⁺", -1: "⁻", 2: "2⁺", -2: "2⁻", 3: "3⁺", -3: "3⁻"} {
		if s := ChargeDisplay(c); s != exp {
			Te.Errorf("ChargeDisplay(%d): expected %s, got %s", c, exp, s)
		}
	}
	if s := mustIon(Te, "Aluminum", "Al", 3).String(); s != "Al3⁺" {
		Te.Errorf("expected Al3⁺, got %s", s)
	}
	for c, exp := range map[int]string{1: "⁺", -1: "⁻", 2: "²⁺", -3: "³⁻", 12: "¹²⁺"} {
		if s := superCharge(c); s != exp {
			Te.Errorf("superCharge(%d): expected %s, got %s", c, exp, s)
		}
	}
}

func TestGcd(Te *testing.T) {
	for _, v := range [][3]int{{6, 4, 2}, {3, 2, 1}, {5, 0, 5}, {7, 7, 7}, {12, 18, 6}} {
		if g := gcd(v[0], v[1]); g != v[2] {
			Te.Errorf("gcd(%d,%d): expected %d, got %d", v[0], v[1], v[2], g)
		}
	}
	if l := lcm(3, 2); l != 6 {
		Te.Errorf("lcm(3,2): expected 6, got %d", l)
	}
}
