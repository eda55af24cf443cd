/*
 * main_test.go, part of chemedu.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	chem "github.com/rmera/chemedu"
)

func run(Te *testing.T, args ...string) (string, error) {
	Te.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("molcalc"))
	if err != nil {
		Te.Fatal(err)
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		Te.Fatal(err)
	}
	var out bytes.Buffer
	err = kctx.Run(&Context{Reg: chem.DefaultRegistry(), Out: &out})
	return out.String(), err
}

func TestBalanceCmd(Te *testing.T) {
	out, err := run(Te, "balance", "Al", "O")
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, "Al3⁺ + O2⁻ → Al₂O₃ (Aluminum Oxide)") {
		Te.Errorf("unexpected output:\n%s", out)
	}
	if _, err := run(Te, "balance", "Na", "Ca"); !chem.IsInvalidIonPairing(err) {
		Te.Errorf("expected InvalidIonPairing, got %v", err)
	}
}

func TestMolesCmd(Te *testing.T) {
	out, err := run(Te, "moles", "CO2", "22")
	if err != nil {
		Te.Fatal(err)
	}
	if out != "22g ÷ 44g/mol = 0.5000 mol\nParticles: 3.01 × 10²³\n" {
		Te.Errorf("unexpected output:\n%s", out)
	}
	out, err = run(Te, "moles", "--formula", "H2O", "18")
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, "6.02 × 10²³") {
		Te.Errorf("unexpected output:\n%s", out)
	}
	if _, err := run(Te, "moles", "Water", "--", "-5"); !chem.IsInvalidMass(err) {
		Te.Errorf("expected InvalidMass, got %v", err)
	}
	if _, err := run(Te, "moles", "Water", "eighteen"); err == nil {
		Te.Errorf("non-numeric mass should fail")
	}
}

func TestParseMass(Te *testing.T) {
	for _, bad := range []string{"", "abc", "NaN", "Inf", "-Inf", "1e400"} {
		if _, err := parseMass(bad); err == nil {
			Te.Errorf("%q should not be accepted", bad)
		}
	}
	for text, exp := range map[string]float64{"18": 18, " 22.5 ": 22.5, "-5": -5, "1e3": 1000} {
		m, err := parseMass(text)
		if err != nil || m != exp {
			Te.Errorf("%q: expected %g, got %g (%v)", text, exp, m, err)
		}
	}
}

func TestListCmds(Te *testing.T) {
	out, err := run(Te, "ions")
	if err != nil {
		Te.Fatal(err)
	}
	for _, want := range []string{"Na⁺", "Ca2⁺", "Al3⁺", "Cl⁻", "O2⁻", "N3⁻"} {
		if !strings.Contains(out, want) {
			Te.Errorf("%s missing from:\n%s", want, out)
		}
	}
	out, err = run(Te, "substances")
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, "Sodium Chloride (NaCl): 58.5 g/mol") {
		Te.Errorf("unexpected output:\n%s", out)
	}
	out, err = run(Te, "mass", "H2O")
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(out, "H2O: 18.00 g/mol\n") {
		Te.Errorf("unexpected output:\n%s", out)
	}
}

func TestServeCmd(Te *testing.T) {
	dir := Te.TempDir()
	in := filepath.Join(dir, "req.jsonl")
	outname := filepath.Join(dir, "resp.jsonl.zst")
	if err := os.WriteFile(in, []byte(`{"op":"balance","cation":"Ca","anion":"Cl"}`+"\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := run(Te, "serve", "-i", in, "-o", outname); err != nil {
		Te.Fatal(err)
	}
	out, err := run(Te, "serve", "-i", in)
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(out, `"formula":"CaCl₂"`) {
		Te.Errorf("unexpected output:\n%s", out)
	}
	info, err := os.Stat(outname)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Errorf("empty output")
	}
}
