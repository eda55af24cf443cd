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

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	chem "github.com/rmera/chemedu"
)

//The operations a Request can ask for.
const (
	OpCations    = "cations"
	OpAnions     = "anions"
	OpSubstances = "substances"
	OpBalance    = "balance"
	OpMoles      = "moles"
	OpMolarMass  = "molarmass"
)

//BadRequest is the kind of the errors produced by malformed or unknown requests.
const BadRequest chem.ErrorKind = "BadRequest"

//Request is one line sent by the calling program.
//Only the fields needed by the operation are read.
type Request struct {
	Op        string  `json:"op"`
	Cation    string  `json:"cation,omitempty"`    //symbol
	Anion     string  `json:"anion,omitempty"`     //symbol
	Substance string  `json:"substance,omitempty"` //name or formula
	Formula   string  `json:"formula,omitempty"`
	Mass      float64 `json:"mass,omitempty"` //grams
}

//Response is the answer to one request. Only the fields
//relevant for the operation are filled.
type Response struct {
	Op         string           `json:"op"`
	Ions       []chem.Ion       `json:"ions,omitempty"`
	Substances []chem.Substance `json:"substances,omitempty"`
	Compound   *chem.Compound   `json:"compound,omitempty"`
	Moles      *chem.MoleResult `json:"moles,omitempty"`
	MolarMass  float64          `json:"molarMass,omitempty"`
	Ratio      []float64        `json:"ratio,omitempty"` //mass ratio, smallest is 1
	Error      *Error           `json:"error,omitempty"`
}

//An easily JSON-serializable error type. It fulfills chem.Error
type Error struct {
	deco     []string
	Kind     chem.ErrorKind `json:"kind"`
	Function string         `json:"function"` //which go function gave the error
	Message  string         `json:"message"`  //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return fmt.Sprintf("%s (%s): %s", J.Kind, J.Function, J.Message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and the name of the function where it happened, and returns a
//json-marshal-able error. For chemedu errors, the kind and the function trace of the original
//error are kept, and function is only added to the decoration.
func NewError(function string, err error) *Error {
	jerr := new(Error)
	var cerr *chem.CError
	if errors.As(err, &cerr) {
		jerr.Kind = cerr.Kind()
		jerr.Function = cerr.Trace()
		jerr.Message = cerr.Message()
		jerr.Decorate(function)
		return jerr
	}
	jerr.Kind = BadRequest
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//DecodeRequest reads the next non-empty line from stream and unmarshals it into a Request.
//At the end of the stream it returns io.EOF. A line that is not a valid request gives
//an *Error, other errors are returned as they come from the reader.
func DecodeRequest(stream *bufio.Reader) (*Request, error) {
	for {
		line, err := stream.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if err == io.EOF {
				return nil, io.EOF
			}
			continue
		}
		ret := new(Request)
		if err2 := json.Unmarshal(line, ret); err2 != nil {
			return nil, NewError("DecodeRequest", err2)
		}
		return ret, nil
	}
}

//Handle carries out the request using the ions and substances in reg.
//It always returns a response, errors are reported in its Error field.
func Handle(reg *chem.Registry, req *Request) *Response {
	resp := &Response{Op: req.Op}
	fail := func(err error) *Response {
		resp.Error = NewError("Handle("+req.Op+")", err)
		return resp
	}
	switch req.Op {
	case OpCations:
		resp.Ions = reg.Cations()
	case OpAnions:
		resp.Ions = reg.Anions()
	case OpSubstances:
		resp.Substances = reg.Substances()
	case OpBalance:
		cation, err := reg.Ion(req.Cation)
		if err != nil {
			return fail(err)
		}
		anion, err := reg.Ion(req.Anion)
		if err != nil {
			return fail(err)
		}
		comp, err := chem.Balance(cation, anion)
		if err != nil {
			return fail(err)
		}
		resp.Compound = &comp
	case OpMoles:
		s, err := reg.Substance(req.Substance)
		if err != nil {
			return fail(err)
		}
		m, err := chem.ComputeMoles(s, req.Mass)
		if err != nil {
			return fail(err)
		}
		resp.Moles = &m
	case OpMolarMass:
		mm, err := chem.MolarMass(req.Formula)
		if err != nil {
			return fail(err)
		}
		ratio, err := chem.MassRatio(req.Formula)
		if err != nil {
			return fail(err)
		}
		resp.MolarMass = mm
		resp.Ratio = ratio
	default:
		return fail(fmt.Errorf("unknown operation %q", req.Op))
	}
	return resp
}

//Serve reads requests from in until the end of the stream and writes one
//response per request to out. Bad requests get an error response. Serve only
//returns an error if reading or writing fails.
func Serve(reg *chem.Registry, in io.Reader, out io.Writer) error {
	stream := bufio.NewReader(in)
	enc := json.NewEncoder(out)
	for {
		var resp *Response
		req, err := DecodeRequest(stream)
		if err == io.EOF {
			return nil
		}
		if jerr, ok := err.(*Error); ok {
			resp = &Response{Error: jerr}
		} else if err != nil {
			return err
		} else {
			resp = Handle(reg, req)
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
}
