// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// field symbols recognized in residual equations
var (
	EqArgsOrder1 = []string{"x", "y", "t", "u", "ux", "uy", "uxx", "uyy"}
	EqArgsOrder2 = []string{"x", "y", "t", "u", "ut", "ux", "uy", "uxx", "uyy"}
	IcArgs       = []string{"x", "y"}
)

// InvalidEquationError indicates an equation string that cannot be compiled:
// unparsable input, missing time derivative, or no algebraic solution for the
// governing derivative
type InvalidEquationError struct {
	Equation string
	Reason   error
}

func (e *InvalidEquationError) Error() string {
	if e.Reason == nil {
		return io.Sf("invalid equation %q", e.Equation)
	}
	return io.Sf("invalid equation %q: %v", e.Equation, e.Reason)
}

func (e *InvalidEquationError) Unwrap() error { return e.Reason }

// InvalidInitialConditionError indicates an initial-condition string that
// cannot be compiled
type InvalidInitialConditionError struct {
	Ic     string
	Reason error
}

func (e *InvalidInitialConditionError) Error() string {
	if e.Reason == nil {
		return io.Sf("invalid initial condition %q", e.Ic)
	}
	return io.Sf("invalid initial condition %q: %v", e.Ic, e.Reason)
}

func (e *InvalidInitialConditionError) Unwrap() error { return e.Reason }

// Equation is a compiled residual equation F(...) = 0, algebraically solved
// for its governing time derivative. Immutable once compiled.
type Equation struct {
	Source   string     // original residual string
	Order    int        // 1 or 2, from the time derivative present
	Residual Expr       // parsed residual tree
	Rhs      *Evaluator // governing derivative; args per Order
}

// CompileEquation parses an implicit residual equation over the symbols
// {x, y, t, u, ut, utt, ux, uy, uxx, uyy}, classifies its time order, and
// solves it for the governing time derivative.
//  Order 2:  utt = rhs(x, y, t, u, ut, ux, uy, uxx, uyy)
//  Order 1:  ut  = rhs(x, y, t, u, ux, uy, uxx, uyy)
// When the solve yields more than one branch, the first branch is selected.
func CompileEquation(equation string) (o *Equation, err error) {
	expr, err := Parse(equation)
	if err != nil {
		return nil, &InvalidEquationError{Equation: equation, Reason: err}
	}
	free := FreeSymbols(expr)
	var target string
	var args []string
	switch {
	case free["utt"]:
		target, args = "utt", EqArgsOrder2
	case free["ut"]:
		target, args = "ut", EqArgsOrder1
	default:
		return nil, &InvalidEquationError{Equation: equation,
			Reason: errors.New("equation must contain 'ut' or 'utt' to define a time evolution")}
	}
	sols, err := SolveFor(expr, target)
	if err != nil {
		return nil, &InvalidEquationError{Equation: equation, Reason: err}
	}
	rhs, err := Compile(sols[0], args)
	if err != nil {
		return nil, &InvalidEquationError{Equation: equation, Reason: err}
	}
	o = &Equation{Source: equation, Residual: expr, Rhs: rhs}
	if target == "utt" {
		o.Order = 2
	} else {
		o.Order = 1
	}
	return
}

// CompileIc parses and compiles an initial-condition expression over {x, y}
func CompileIc(ic string) (ev *Evaluator, err error) {
	expr, err := Parse(ic)
	if err != nil {
		return nil, &InvalidInitialConditionError{Ic: ic, Reason: err}
	}
	ev, err = Compile(expr, IcArgs)
	if err != nil {
		return nil, &InvalidInitialConditionError{Ic: ic, Reason: err}
	}
	return
}
