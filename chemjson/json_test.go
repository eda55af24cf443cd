/*
 * json_test.go, part of chemedu.
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

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	chem "github.com/rmera/chemedu"
	"github.com/sebdah/goldie/v2"
)

func serveFile(Te *testing.T, name string) []byte {
	Te.Helper()
	in, err := os.Open(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer in.Close()
	var out bytes.Buffer
	if err := Serve(chem.DefaultRegistry(), in, &out); err != nil {
		Te.Fatal(err)
	}
	return out.Bytes()
}

func TestServeGolden(Te *testing.T) {
	out := serveFile(Te, "testdata/requests.jsonl")
	fmt.Print(string(out))
	g := goldie.New(Te,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(Te, "serve", out)
}

func TestServeBadLine(Te *testing.T) {
	in := strings.NewReader("not json\n{\"op\":\"anions\"}")
	var out bytes.Buffer
	if err := Serve(chem.DefaultRegistry(), in, &out); err != nil {
		Te.Fatal(err)
	}
	dec := json.NewDecoder(&out)
	var first, second Response
	if err := dec.Decode(&first); err != nil {
		Te.Fatal(err)
	}
	if first.Error == nil || first.Error.Kind != BadRequest || first.Error.Function != "DecodeRequest" {
		Te.Errorf("expected a BadRequest error from DecodeRequest, got %+v", first.Error)
	}
	//the last line has no newline, it must still be processed.
	if err := dec.Decode(&second); err != nil {
		Te.Fatal(err)
	}
	if second.Op != OpAnions || len(second.Ions) != 3 || second.Ions[2].Symbol != "N" {
		Te.Errorf("unexpected response %+v", second)
	}
	if err := dec.Decode(&second); err != io.EOF {
		Te.Errorf("expected exactly 2 responses, got more: %v", err)
	}
}

func TestHandle(Te *testing.T) {
	reg := chem.DefaultRegistry()
	resp := Handle(reg, &Request{Op: OpMoles, Substance: "CO₂", Mass: 22})
	if resp.Error != nil {
		Te.Fatal(resp.Error)
	}
	if resp.Moles.ParticleText() != "3.01 × 10²³" || chem.FormatMoles(resp.Moles.Moles) != "0.5000" {
		Te.Errorf("unexpected result %v", resp.Moles)
	}
	for _, req := range []*Request{
		{Op: OpBalance, Cation: "Na", Anion: "Xx"},
		{Op: OpBalance, Cation: "Cl", Anion: "O"},
		{Op: OpMoles, Substance: "unobtainium", Mass: 1},
		{Op: OpMoles, Substance: "Water"},
		{Op: OpMolarMass, Formula: "H2Q"},
	} {
		resp := Handle(reg, req)
		if resp.Error == nil {
			Te.Errorf("%+v should have failed", req)
			continue
		}
		fmt.Println(resp.Error.Error())
	}
	subs := Handle(reg, &Request{Op: OpSubstances})
	if len(subs.Substances) != 5 {
		Te.Errorf("expected 5 substances, got %d", len(subs.Substances))
	}
}

func TestErrorMarshal(Te *testing.T) {
	_, err := chem.ComputeMoles(chem.Substance{Name: "Water", MolarMass: 18}, -5)
	jerr := NewError("TestErrorMarshal", err)
	if jerr.Kind != chem.InvalidMass {
		Te.Errorf("expected InvalidMass, got %s", jerr.Kind)
	}
	if d := jerr.Decorate(""); len(d) != 1 || d[0] != "TestErrorMarshal" {
		Te.Errorf("unexpected decoration %v", d)
	}
	j := jerr.Marshal()
	var back Error
	if err := json.Unmarshal(j, &back); err != nil {
		Te.Fatal(err)
	}
	if back.Message != jerr.Message || back.Function != "ComputeMoles" {
		Te.Errorf("expected %+v, got %+v", jerr, back)
	}
}

func TestStreams(Te *testing.T) {
	want := serveFile(Te, "testdata/requests.jsonl")
	raw, err := os.ReadFile("testdata/requests.jsonl")
	if err != nil {
		Te.Fatal(err)
	}
	dir := Te.TempDir()
	for _, ext := range []string{".jsonl", ".jsonl.zst", ".jsonl.gz"} {
		reqname := filepath.Join(dir, "requests"+ext)
		respname := filepath.Join(dir, "responses"+ext)
		w, err := CreateStream(reqname)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := w.Write(raw); err != nil {
			Te.Fatal(err)
		}
		if err := w.Close(); err != nil {
			Te.Fatal(err)
		}
		in, err := OpenStream(reqname)
		if err != nil {
			Te.Fatal(err)
		}
		out, err := CreateStream(respname)
		if err != nil {
			Te.Fatal(err)
		}
		if err := Serve(chem.DefaultRegistry(), in, out); err != nil {
			Te.Fatal(err)
		}
		in.Close()
		if err := out.Close(); err != nil {
			Te.Fatal(err)
		}
		back, err := OpenStream(respname)
		if err != nil {
			Te.Fatal(err)
		}
		got, err := io.ReadAll(bufio.NewReader(back))
		back.Close()
		if err != nil {
			Te.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			Te.Errorf("%s: responses differ from the plain ones:\n%s", ext, got)
		}
		if ext != ".jsonl" {
			plain, _ := os.ReadFile(respname)
			if bytes.Equal(plain, want) {
				Te.Errorf("%s: file was not compressed", ext)
			}
		}
	}
}
