/*
 * json.go, part of chemedu.
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
	"encoding/json"
)

//MarshalJSON includes the explanation of the compound, so the
//receiving program doesn't need to build it.
func (C Compound) MarshalJSON() ([]byte, error) {
	type plain Compound //avoids calling this method again.
	return json.Marshal(struct {
		plain
		Explanation string `json:"explanation"`
	}{
		plain:       plain(C),
		Explanation: C.Explanation(),
	})
}

//MarshalJSON includes the values formatted for display next to the raw ones.
func (M MoleResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Substance    string  `json:"substance"`
		MolarMass    float64 `json:"molarMass"`
		GivenMass    float64 `json:"givenMass"`
		Moles        float64 `json:"moles"`
		Particles    float64 `json:"particles"`
		MolesText    string  `json:"molesText"`
		ParticleText string  `json:"particleText"`
		Working      string  `json:"working"`
	}{
		Substance:    M.Substance,
		MolarMass:    M.MolarMass,
		GivenMass:    M.GivenMass,
		Moles:        M.Moles,
		Particles:    M.Particles,
		MolesText:    FormatMoles(M.Moles),
		ParticleText: M.ParticleText(),
		Working:      M.Working(),
	})
}

func (M *MoleResult) UnmarshalJSON(b []byte) error {
	var a struct {
		Substance string  `json:"substance"`
		MolarMass float64 `json:"molarMass"`
		GivenMass float64 `json:"givenMass"`
		Moles     float64 `json:"moles"`
		Particles float64 `json:"particles"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	M.Substance = a.Substance
	M.MolarMass = a.MolarMass
	M.GivenMass = a.GivenMass
	M.Moles = a.Moles
	M.Particles = a.Particles
	return nil
}
