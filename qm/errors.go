/*
 * errors.go, part of molmod.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 * Copyright 2024 The molmod authors.
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
 */

package qm

import (
	"errors"
	"fmt"
)

//Error is the error type for the qm package. It follows the
//Decorate/Critical convention of the rest of the library.
type Error struct {
	message    string
	code       string //the name of the QM program giving the problem
	inputname  string //the input file that has problems, or empty string if none.
	additional string
	deco       []string
	critical   bool
	cause      error //the underlying error, if any
}

func (err Error) Error() string {
	msg := fmt.Sprintf("%s (%s/%s)", err.message, err.inputname, err.code)
	if err.additional != "" {
		msg += " Message: " + err.additional
	}
	if err.cause != nil {
		msg += ": " + err.cause.Error()
	}
	return msg
}

//Unwrap returns the error that caused err, so errors.Is and errors.As
//can reach, for instance, the fileparse error behind a failed read.
func (err Error) Unwrap() error { return err.cause }

//Code returns the name of the program that ran the calculation.
func (err Error) Code() string { return err.code }

//InputName returns the name of the input file with problems.
func (err Error) InputName() string { return err.inputname }

//Message returns the basic message of the error, one of the Err constants.
func (err Error) Message() string { return err.message }

//Critical is false only for errors that come together with a usable result.
func (err Error) Critical() bool { return err.critical }

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//errDecorate adds caller to the decorations of err if it is an Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}

//IsProbableProblem reports whether err signals a result that was obtained
//from a calculation that might not have gone well.
func IsProbableProblem(err error) bool {
	var qerr Error
	return errors.As(err, &qerr) && qerr.message == ErrProbableProblem
}

//Messages for the errors in this package.
const (
	ErrProbableProblem = "Probable problem in calculation"
	ErrNoEnergy        = "Couldn't obtain energy"
	ErrNoGeometry      = "Couldn't obtain geometry"
	ErrNoGradient      = "Couldn't obtain gradient"
	ErrNotRunning      = "Couldn't run calculation"
	ErrCantInput       = "Can't build input file"
	ErrMissingCharges  = "Missing charges or coordinates"
	ErrCantOutput      = "Can't read output file"
)

//Names of the supported programs.
const (
	MPQC = "MPQC"
)
