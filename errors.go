/*
 * errors.go, part of chemedu.
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
	"errors"
	"fmt"
	"strings"
)

//ErrorKind tells what went wrong, independently of the message.
type ErrorKind string

//None of these is fatal. The caller is expected to ask for new input.
const (
	InvalidIonPairing ErrorKind = "InvalidIonPairing" //a cation must be paired with an anion
	InvalidMass       ErrorKind = "InvalidMass"       //non-positive or non-numeric mass
	ZeroCharge        ErrorKind = "ZeroCharge"
	UnknownIon        ErrorKind = "UnknownIon"
	UnknownSubstance  ErrorKind = "UnknownSubstance"
	UnknownElement    ErrorKind = "UnknownElement"
	BadFormula        ErrorKind = "BadFormula"
	EmptyRegistry     ErrorKind = "EmptyRegistry"
)

//CError is the general error type of the package. It fulfills chem.Error.
type CError struct {
	kind ErrorKind
	msg  string
	deco []string
}

func newError(kind ErrorKind, caller, format string, a ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

func (err *CError) Error() string {
	return fmt.Sprintf("%s: %s", err.kind, err.msg)
}

//Kind returns the kind of the error.
func (err *CError) Kind() ErrorKind { return err.kind }

//Message returns the error message without the kind.
func (err *CError) Message() string { return err.msg }

//Decorate adds deco to the decoration slice of the error, and returns the resulting slice.
//An empty string just returns the current slice.
func (err *CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Trace returns the decoration, from the innermost function outwards, joined by "<-".
func (err *CError) Trace() string {
	return strings.Join(err.deco, "<-")
}

//errDecorate decorates err with the caller's name if it implements chem.Error,
//and returns it. Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//ErrKind returns the kind of err if it is, or wraps, a *CError, and the empty string otherwise.
func ErrKind(err error) ErrorKind {
	var cerr *CError
	if errors.As(err, &cerr) {
		return cerr.kind
	}
	return ""
}

//IsInvalidIonPairing is true if err comes from pairing two ions of the same polarity.
func IsInvalidIonPairing(err error) bool { return ErrKind(err) == InvalidIonPairing }

//IsInvalidMass is true if err comes from a non-positive or non-numeric mass.
func IsInvalidMass(err error) bool { return ErrKind(err) == InvalidMass }
