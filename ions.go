/*
 * ions.go, part of chemedu.
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
	"strconv"
)

//Polarity tells whether an ion is positive (cation) or negative (anion).
type Polarity int

const (
	Cation Polarity = iota + 1
	Anion
)

func (p Polarity) String() string {
	switch p {
	case Cation:
		return "cation"
	case Anion:
		return "anion"
	default:
		return "unknown"
	}
}

//MarshalText allows the polarity to be serialized as "cation" or "anion".
func (p Polarity) MarshalText() ([]byte, error) {
	if p != Cation && p != Anion {
		return nil, fmt.Errorf("Polarity: invalid value %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *Polarity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "cation":
		*p = Cation
	case "anion":
		*p = Anion
	default:
		return fmt.Errorf("Polarity: invalid value %q", string(b))
	}
	return nil
}

//Ion is an atom or group with a net electric charge.
//Ions are reference data: they are never modified after creation.
type Ion struct {
	Element  string   `json:"element"` //the name shown to the user, i.e. "Sodium" or "Chloride"
	Symbol   string   `json:"symbol"`
	Charge   int      `json:"charge"`
	Polarity Polarity `json:"polarity"`
}

//NewIon returns an ion with the polarity given by the sign of charge.
//A zero charge is an error, since such a thing is not an ion.
func NewIon(element, symbol string, charge int) (Ion, error) {
	if charge == 0 {
		return Ion{}, newError(ZeroCharge, "NewIon", "ion %s has zero charge", symbol)
	}
	p := Cation
	if charge < 0 {
		p = Anion
	}
	return Ion{Element: element, Symbol: symbol, Charge: charge, Polarity: p}, nil
}

//String returns the symbol followed by the charge, i.e. Ca2⁺
func (I Ion) String() string {
	return I.Symbol + ChargeDisplay(I.Charge)
}

//consistent is true if the polarity agrees with the sign of the charge.
func (I Ion) consistent() bool {
	return (I.Charge > 0 && I.Polarity == Cation) || (I.Charge < 0 && I.Polarity == Anion)
}

//ChargeDisplay returns the absolute value of charge followed by a raised
//plus or minus sign. For a magnitude of 1 only the sign is returned.
func ChargeDisplay(charge int) string {
	sign := "⁺"
	if charge < 0 {
		sign = "⁻"
	}
	abs := absInt(charge)
	if abs == 1 {
		return sign
	}
	return strconv.Itoa(abs) + sign
}

//Substance is a compound, with the molar mass used in calculations.
type Substance struct {
	Name      string  `json:"name"`
	Formula   string  `json:"formula"`
	MolarMass float64 `json:"molarMass"` //g/mol
}

func (S Substance) String() string {
	return fmt.Sprintf("%s (%s)", S.Name, S.Formula)
}

func (S Substance) validMass() bool {
	return S.MolarMass > 0 && !math.IsInf(S.MolarMass, 1)
}

func absInt(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
