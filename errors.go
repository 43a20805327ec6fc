/*
 * errors.go, part of h2coldens.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package h2

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the errors returned by the h2coldens packages.
type Kind int

const (
	Unknown Kind = iota
	InsufficientData
	InvalidParameter
	DegenerateTemperature
	InvalidColumnDensity
	DuplicateLevel
)

func (k Kind) String() string {
	switch k {
	case InsufficientData:
		return "insufficient data"
	case InvalidParameter:
		return "invalid parameter"
	case DegenerateTemperature:
		return "degenerate temperature"
	case InvalidColumnDensity:
		return "invalid column density"
	case DuplicateLevel:
		return "duplicate level"
	}
	return "unknown error"
}

// Error is the error type returned by all packages in this library. The Decorate method
// allows to add information (usually, the name of the function) as the error is passed up,
// without changing its type or wrapping it around something else.
type Error struct {
	kind    Kind
	message string
	deco    []string
}

// Sentinels for use with errors.Is. Any *Error of the same kind matches them.
var (
	ErrInsufficientData      = &Error{kind: InsufficientData}
	ErrInvalidParameter      = &Error{kind: InvalidParameter}
	ErrDegenerateTemperature = &Error{kind: DegenerateTemperature}
	ErrInvalidColumnDensity  = &Error{kind: InvalidColumnDensity}
	ErrDuplicateLevel        = &Error{kind: DuplicateLevel}
)

// NewError returns a new error of the given kind. deco, if given, should be the name
// of the function where the error was produced.
func NewError(kind Kind, message string, deco ...string) *Error {
	return &Error{kind: kind, message: message, deco: deco}
}

// Errorf is NewError with a formatted message.
func Errorf(kind Kind, caller, format string, a ...interface{}) *Error {
	return NewError(kind, fmt.Sprintf(format, a...), caller)
}

func (err *Error) Error() string {
	msg := err.kind.String()
	if err.message != "" {
		msg = msg + ": " + err.message
	}
	if len(err.deco) == 0 {
		return msg
	}
	//the decorations are added from the innermost function out, so we print them reversed.
	d := make([]string, len(err.deco))
	for i, v := range err.deco {
		d[len(d)-1-i] = v
	}
	return fmt.Sprintf("%s (%s)", msg, strings.Join(d, " < "))
}

// Kind returns the kind of the error.
func (err *Error) Kind() Kind { return err.kind }

// Message returns the error message, without the kind and decorations.
func (err *Error) Message() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Is reports whether target is an *Error of the same kind with no message, or
// the very same error.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t == err {
		return true
	}
	return t.message == "" && len(t.deco) == 0 && t.kind == err.kind
}

//ErrDecorate decorates err with the caller's name, if err is, or wraps, an *Error, and returns
//it. Other errors are returned unchanged.
func ErrDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape = PanicMsg("h2coldens: dimension mismatch")
)
