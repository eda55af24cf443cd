/*
 * molmass.go, part of chemedu.
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
	"unicode"

	"gonum.org/v1/gonum/floats"
)

//More digits than this in a count is surely a typo.
const maxCountDigits = 6

//No element can have more atoms than this in a formula, nested groups included.
const maxAtoms = 1e9

//ElementCount is the number of atoms of one element in a formula.
type ElementCount struct {
	Symbol string
	Count  int
}

//MassFraction is the contribution of one element to the mass of a formula.
type MassFraction struct {
	Symbol   string
	Count    int
	Mass     float64 //g per mole of the compound
	Fraction float64 //of the molar mass, between 0 and 1
}

//ParseFormula returns the number of atoms of each element in formula, in the order in which
//the elements first appear. Counts can be written with normal or subscript digits, and parentheses
//can be used for groups, so "Ca(OH)₂" and "Ca(OH)2" both give Ca:1, O:2, H:2.
//Elements without a known atomic mass give an UnknownElement error.
func ParseFormula(formula string) ([]ElementCount, error) {
	p := &formulaParser{r: []rune(formula)}
	ret, err := p.group(0)
	if err != nil {
		return nil, errDecorate(err, "ParseFormula")
	}
	if len(ret) == 0 {
		return nil, newError(BadFormula, "ParseFormula", "empty formula %q", formula)
	}
	for _, v := range ret {
		if _, ok := symbolMass[v.Symbol]; !ok {
			return nil, newError(UnknownElement, "ParseFormula", "no atomic mass for %s in %q", v.Symbol, formula)
		}
	}
	return ret, nil
}

type formulaParser struct {
	r   []rune
	pos int
}

func (p *formulaParser) group(depth int) ([]ElementCount, error) {
	var ret []ElementCount
	for p.pos < len(p.r) {
		r := p.r[p.pos]
		switch {
		case r == '(':
			open := p.pos
			p.pos++
			inner, err := p.group(depth + 1)
			if err != nil {
				return nil, err
			}
			if p.pos >= len(p.r) {
				return nil, newError(BadFormula, "formulaParser.group", "unclosed parenthesis at %d in %q", open, string(p.r))
			}
			p.pos++ //the closing parenthesis
			if len(inner) == 0 {
				return nil, newError(BadFormula, "formulaParser.group", "empty group at %d in %q", open, string(p.r))
			}
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			for _, v := range inner {
				if v.Count > maxAtoms/n {
					return nil, newError(BadFormula, "formulaParser.group", "too many %s atoms in %q", v.Symbol, string(p.r))
				}
				if ret, err = addCount(ret, v.Symbol, v.Count*n); err != nil {
					return nil, newError(BadFormula, "formulaParser.group", "%s in %q", err, string(p.r))
				}
			}
		case r == ')':
			if depth == 0 {
				return nil, newError(BadFormula, "formulaParser.group", "unexpected ')' at %d in %q", p.pos, string(p.r))
			}
			return ret, nil
		case unicode.IsUpper(r):
			start := p.pos
			p.pos++
			for p.pos < len(p.r) && unicode.IsLower(p.r[p.pos]) {
				p.pos++
			}
			symbol := string(p.r[start:p.pos])
			n, err := p.count()
			if err != nil {
				return nil, err
			}
			if ret, err = addCount(ret, symbol, n); err != nil {
				return nil, newError(BadFormula, "formulaParser.group", "%s in %q", err, string(p.r))
			}
		default:
			return nil, newError(BadFormula, "formulaParser.group", "unexpected %q at %d in %q", r, p.pos, string(p.r))
		}
	}
	return ret, nil
}

//count reads the (optional) count after an element or group. A missing count is 1.
func (p *formulaParser) count() (int, error) {
	n := 0
	digits := 0
	for p.pos < len(p.r) {
		r := p.r[p.pos]
		var d int
		if r >= '0' && r <= '9' {
			d = int(r - '0')
		} else if v, ok := subscriptValue(r); ok {
			d = v
		} else {
			break
		}
		n = n*10 + d
		digits++
		p.pos++
		if digits > maxCountDigits {
			return 0, newError(BadFormula, "formulaParser.count", "count too long at %d in %q", p.pos, string(p.r))
		}
	}
	if digits == 0 {
		return 1, nil
	}
	if n == 0 {
		return 0, newError(BadFormula, "formulaParser.count", "zero count at %d in %q", p.pos, string(p.r))
	}
	return n, nil
}

//addCount adds n atoms of symbol to counts. n must not be over maxAtoms.
func addCount(counts []ElementCount, symbol string, n int) ([]ElementCount, error) {
	for i, v := range counts {
		if v.Symbol == symbol {
			if v.Count > maxAtoms-n {
				return nil, fmt.Errorf("too many %s atoms", symbol)
			}
			counts[i].Count += n
			return counts, nil
		}
	}
	return append(counts, ElementCount{Symbol: symbol, Count: n}), nil
}

//elementMasses returns the parsed formula and the mass that each element contributes to it.
func elementMasses(formula string) ([]ElementCount, []float64, error) {
	counts, err := ParseFormula(formula)
	if err != nil {
		return nil, nil, err
	}
	masses := make([]float64, len(counts))
	for i, v := range counts {
		masses[i] = float64(v.Count) * symbolMass[v.Symbol]
	}
	return counts, masses, nil
}

//MolarMass returns the sum of the atomic masses of all atoms in formula, in g/mol.
func MolarMass(formula string) (float64, error) {
	_, masses, err := elementMasses(formula)
	if err != nil {
		return 0, errDecorate(err, "MolarMass")
	}
	return floats.Sum(masses), nil
}

//MassComposition returns the mass contributed by each element to one mole of formula,
//and its fraction of the total.
func MassComposition(formula string) ([]MassFraction, error) {
	counts, masses, err := elementMasses(formula)
	if err != nil {
		return nil, errDecorate(err, "MassComposition")
	}
	fractions := make([]float64, len(masses))
	copy(fractions, masses)
	floats.Scale(1/floats.Sum(masses), fractions)
	ret := make([]MassFraction, len(counts))
	for i, v := range counts {
		ret[i] = MassFraction{Symbol: v.Symbol, Count: v.Count, Mass: masses[i], Fraction: fractions[i]}
	}
	return ret, nil
}

//MassRatio returns the masses of the elements in formula, in order of appearance, scaled
//so the smallest one is 1. For H₂O it gives 1:8.
func MassRatio(formula string) ([]float64, error) {
	_, masses, err := elementMasses(formula)
	if err != nil {
		return nil, errDecorate(err, "MassRatio")
	}
	floats.Scale(1/floats.Min(masses), masses)
	return masses, nil
}

//NewSubstance returns a substance with the molar mass obtained from its formula.
func NewSubstance(name, formula string) (Substance, error) {
	m, err := MolarMass(formula)
	if err != nil {
		return Substance{}, errDecorate(err, "NewSubstance")
	}
	return Substance{Name: name, Formula: formula, MolarMass: m}, nil
}
