/*
 * main.go, part of chemedu.
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

// Command molcalc gives command-line access to chemedu: ionic formulas,
// moles and molar masses. It can also serve chemjson requests, so a
// page or another program can use it through a pipe.
package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	chem "github.com/rmera/chemedu"
	"github.com/rmera/chemedu/chemjson"
	"github.com/rmera/chemedu/chemplot"
)

const version = "0.1.0"

// CLI defines the command-line interface for molcalc.
type CLI struct {
	Ions       IonsCmd       `cmd:"" help:"List the known cations and anions"`
	Substances SubstancesCmd `cmd:"" help:"List the known substances"`
	Balance    BalanceCmd    `cmd:"" help:"Formula of the compound formed by a cation and an anion"`
	Moles      MolesCmd      `cmd:"" help:"Moles and particles in a mass of a substance"`
	Mass       MassCmd       `cmd:"" help:"Molar mass and mass composition of a formula"`
	Serve      ServeCmd      `cmd:"" help:"Answer line-delimited JSON requests"`
	Plot       PlotCmd       `cmd:"" help:"Plot moles against mass for the known substances"`
	Version    VersionCmd    `cmd:"" help:"Print version information"`
}

// Context is passed to every command.
type Context struct {
	Reg *chem.Registry
	Out io.Writer
}

// IonsCmd lists the ions.
type IonsCmd struct{}

func (c *IonsCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Out, "Cations:")
	for _, v := range ctx.Reg.Cations() {
		fmt.Fprintf(ctx.Out, "  %-5s %s\n", v, v.Element)
	}
	fmt.Fprintln(ctx.Out, "Anions:")
	for _, v := range ctx.Reg.Anions() {
		fmt.Fprintf(ctx.Out, "  %-5s %s\n", v, v.Element)
	}
	return nil
}

// SubstancesCmd lists the substances.
type SubstancesCmd struct{}

func (c *SubstancesCmd) Run(ctx *Context) error {
	for _, v := range ctx.Reg.Substances() {
		fmt.Fprintf(ctx.Out, "%s: %s g/mol\n", v, strconv.FormatFloat(v.MolarMass, 'f', -1, 64))
	}
	return nil
}

// BalanceCmd builds an ionic formula.
type BalanceCmd struct {
	Cation string `arg:"" help:"Symbol of the cation, i.e. Ca"`
	Anion  string `arg:"" help:"Symbol of the anion, i.e. Cl"`
}

func (c *BalanceCmd) Run(ctx *Context) error {
	cation, err := ctx.Reg.Ion(c.Cation)
	if err != nil {
		return err
	}
	anion, err := ctx.Reg.Ion(c.Anion)
	if err != nil {
		return err
	}
	comp, err := chem.Balance(cation, anion)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s + %s → %s (%s)\n", cation, anion, comp.Formula, comp.Name)
	fmt.Fprintln(ctx.Out, comp.Explanation())
	return nil
}

// MolesCmd converts a mass into moles.
type MolesCmd struct {
	Substance string `arg:"" help:"Name or formula of the substance, i.e. Water or H2O"`
	Mass      string `arg:"" help:"Mass in grams"`
	Formula   bool   `short:"f" help:"Take the molar mass from the formula instead of the registry"`
}

func (c *MolesCmd) Run(ctx *Context) error {
	mass, err := parseMass(c.Mass)
	if err != nil {
		return err
	}
	var s chem.Substance
	if c.Formula {
		s, err = chem.NewSubstance(c.Substance, c.Substance)
	} else {
		s, err = ctx.Reg.Substance(c.Substance)
	}
	if err != nil {
		return err
	}
	r, err := chem.ComputeMoles(s, mass)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Out, r.Working())
	fmt.Fprintf(ctx.Out, "Particles: %s\n", r.ParticleText())
	return nil
}

// parseMass turns the text given by the user into a number. Anything that is not a
// finite number is rejected here, the sign is left for the engine to check.
func parseMass(text string) (float64, error) {
	m, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(m) || math.IsInf(m, 0) {
		return 0, fmt.Errorf("%q is not a valid mass", text)
	}
	return m, nil
}

// MassCmd computes the molar mass of a formula.
type MassCmd struct {
	Formula string `arg:"" help:"Chemical formula, i.e. Ca(OH)2"`
}

func (c *MassCmd) Run(ctx *Context) error {
	mm, err := chem.MolarMass(c.Formula)
	if err != nil {
		return err
	}
	comp, err := chem.MassComposition(c.Formula)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s: %.2f g/mol\n", c.Formula, mm)
	for _, v := range comp {
		fmt.Fprintf(ctx.Out, "  %-2s x%d %8.2f g %6.2f%%\n", v.Symbol, v.Count, v.Mass, 100*v.Fraction)
	}
	return nil
}

// ServeCmd answers chemjson requests.
type ServeCmd struct {
	In  string `short:"i" default:"-" help:"Input file, - for stdin. .zst and .gz files are decompressed"`
	Out string `short:"o" default:"-" help:"Output file, - for stdout. .zst and .gz files are compressed"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	var in io.Reader = os.Stdin
	out := ctx.Out
	if c.In != "-" {
		f, err := chemjson.OpenStream(c.In)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	if c.Out != "-" {
		f, err := chemjson.CreateStream(c.Out)
		if err != nil {
			return err
		}
		if err := chemjson.Serve(ctx.Reg, in, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return chemjson.Serve(ctx.Reg, in, out)
}

// PlotCmd draws mole curves.
type PlotCmd struct {
	Out    string  `short:"o" required:"" help:"Output file; the format is taken from the extension"`
	Max    float64 `default:"100" help:"Maximum mass, in grams"`
	Points int     `default:"100" help:"Points per curve"`
	Title  string  `default:"Moles in a mass of substance"`
}

func (c *PlotCmd) Run(ctx *Context) error {
	if err := chemplot.MoleCurves(ctx.Reg.Substances(), c.Max, c.Points, c.Title, c.Out); err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Plot written to %s\n", c.Out)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintf(ctx.Out, "molcalc %s\n", version)
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("molcalc: ")
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("molcalc"),
		kong.Description("Ionic formulas, moles and molar masses for the chemistry classroom."),
		kong.UsageOnError(),
	)
	if err := kctx.Run(&Context{Reg: chem.DefaultRegistry(), Out: os.Stdout}); err != nil {
		log.Fatal(err)
	}
}
