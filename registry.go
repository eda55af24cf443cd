/*
 * registry.go, part of chemedu.
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
	"strings"
)

//Registry is a read-only catalog of ions and substances. Once created
//it is never modified, so it can be shared among goroutines.
type Registry struct {
	ions       []Ion
	substances []Substance
}

var defaultRegistry = mustRegistry(commonIons, commonSubstances)

func mustRegistry(ions []Ion, subs []Substance) *Registry {
	r, err := NewRegistry(ions, subs)
	if err != nil {
		panic("chem: invalid built-in tables: " + err.Error())
	}
	return r
}

//DefaultRegistry returns the built-in catalog.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

//NewRegistry returns a registry with copies of the given ions and substances, in the given order.
//It returns an error if either table is empty, if an ion has zero charge or a polarity that
//doesn't agree with its charge, or if a substance doesn't have a positive molar mass.
func NewRegistry(ions []Ion, subs []Substance) (*Registry, error) {
	if len(ions) == 0 || len(subs) == 0 {
		return nil, newError(EmptyRegistry, "NewRegistry", "%d ions and %d substances given", len(ions), len(subs))
	}
	for _, v := range ions {
		if v.Charge == 0 {
			return nil, newError(ZeroCharge, "NewRegistry", "ion %s has zero charge", v.Symbol)
		}
		if !v.consistent() {
			return nil, newError(InvalidIonPairing, "NewRegistry", "ion %s has charge %d but polarity %s", v.Symbol, v.Charge, v.Polarity)
		}
	}
	for _, v := range subs {
		if !v.validMass() {
			return nil, newError(InvalidMass, "NewRegistry", "substance %s has molar mass %g", v.Name, v.MolarMass)
		}
	}
	r := new(Registry)
	r.ions = append(make([]Ion, 0, len(ions)), ions...)
	r.substances = append(make([]Substance, 0, len(subs)), subs...)
	return r, nil
}

func (R *Registry) byPolarity(p Polarity) []Ion {
	ret := make([]Ion, 0, len(R.ions))
	for _, v := range R.ions {
		if v.Polarity == p {
			ret = append(ret, v)
		}
	}
	return ret
}

//Cations returns all the positive ions in the registry, in insertion order.
func (R *Registry) Cations() []Ion {
	return R.byPolarity(Cation)
}

//Anions returns all the negative ions in the registry, in insertion order.
func (R *Registry) Anions() []Ion {
	return R.byPolarity(Anion)
}

//Substances returns all the substances in the registry, in insertion order.
func (R *Registry) Substances() []Substance {
	return append(make([]Substance, 0, len(R.substances)), R.substances...)
}

//Ion returns the ion with the given symbol. The symbol is case-sensitive,
//as "CO" and "Co" are not the same thing.
func (R *Registry) Ion(symbol string) (Ion, error) {
	for _, v := range R.ions {
		if v.Symbol == symbol {
			return v, nil
		}
	}
	return Ion{}, newError(UnknownIon, "Registry.Ion", "no ion with symbol %q", symbol)
}

//Substance returns the substance with the given name (case-insensitive) or formula.
//Formulas can be given with plain digits, so "H2O" finds water.
func (R *Registry) Substance(key string) (Substance, error) {
	key = strings.TrimSpace(key)
	plain := plainDigits(key)
	for _, v := range R.substances {
		if strings.EqualFold(v.Name, key) || plainDigits(v.Formula) == plain {
			return v, nil
		}
	}
	return Substance{}, newError(UnknownSubstance, "Registry.Substance", "no substance %q", key)
}
