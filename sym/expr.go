// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements a small symbolic kernel: expression trees parsed
// from strings, algebraic solving for a target symbol, and compilation to
// numeric evaluators
package sym

import (
	"math"
	"strconv"
	"strings"
)

// Expr is a node in an expression tree
type Expr interface {

	// Free adds the names of free symbols to the given set
	Free(set map[string]bool)

	// String returns a textual representation
	String() string
}

// Num is a numeric constant
type Num struct {
	V float64
}

// Sym is a symbolic variable
type Sym struct {
	Name string
}

// Sum is an n-ary sum of terms
type Sum struct {
	Terms []Expr
}

// Prod is an n-ary product of factors
type Prod struct {
	Factors []Expr
}

// Pow is Base raised to Exp
type Pow struct {
	Base, Exp Expr
}

// Call is the application of a known function to one argument
type Call struct {
	Fn  string
	Arg Expr
}

// free symbols ////////////////////////////////////////////////////////////////

func (o *Num) Free(set map[string]bool) {}
func (o *Sym) Free(set map[string]bool) { set[o.Name] = true }

func (o *Sum) Free(set map[string]bool) {
	for _, e := range o.Terms {
		e.Free(set)
	}
}

func (o *Prod) Free(set map[string]bool) {
	for _, e := range o.Factors {
		e.Free(set)
	}
}

func (o *Pow) Free(set map[string]bool) {
	o.Base.Free(set)
	o.Exp.Free(set)
}

func (o *Call) Free(set map[string]bool) { o.Arg.Free(set) }

// FreeSymbols returns the set of free symbol names in e
func FreeSymbols(e Expr) map[string]bool {
	set := make(map[string]bool)
	e.Free(set)
	return set
}

// DependsOn tells whether symbol name appears free in e
func DependsOn(e Expr, name string) bool {
	return FreeSymbols(e)[name]
}

// constructors with constant folding //////////////////////////////////////////

// NewNum returns a numeric constant node
func NewNum(v float64) Expr { return &Num{V: v} }

// NewSym returns a symbol node
func NewSym(name string) Expr { return &Sym{Name: name} }

// NewSum builds a sum, folding constants and dropping zero terms
func NewSum(terms ...Expr) Expr {
	cte := 0.0
	flat := []Expr{}
	for _, e := range terms {
		switch t := e.(type) {
		case *Num:
			cte += t.V
		case *Sum:
			for _, sub := range t.Terms {
				if n, ok := sub.(*Num); ok {
					cte += n.V
				} else {
					flat = append(flat, sub)
				}
			}
		default:
			flat = append(flat, e)
		}
	}
	if cte != 0 || len(flat) == 0 {
		flat = append(flat, &Num{V: cte})
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Sum{Terms: flat}
}

// NewProd builds a product, folding constants and handling zero/one factors
func NewProd(factors ...Expr) Expr {
	cte := 1.0
	flat := []Expr{}
	for _, e := range factors {
		switch f := e.(type) {
		case *Num:
			cte *= f.V
		case *Prod:
			for _, sub := range f.Factors {
				if n, ok := sub.(*Num); ok {
					cte *= n.V
				} else {
					flat = append(flat, sub)
				}
			}
		default:
			flat = append(flat, e)
		}
	}
	if cte == 0 {
		return &Num{V: 0}
	}
	if cte != 1 || len(flat) == 0 {
		flat = append([]Expr{&Num{V: cte}}, flat...)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &Prod{Factors: flat}
}

// NewPow builds a power, folding constant base and exponent
func NewPow(base, exp Expr) Expr {
	be, bok := base.(*Num)
	ee, eok := exp.(*Num)
	if bok && eok {
		return &Num{V: math.Pow(be.V, ee.V)}
	}
	if eok {
		if ee.V == 0 {
			return &Num{V: 1}
		}
		if ee.V == 1 {
			return base
		}
	}
	return &Pow{Base: base, Exp: exp}
}

// NewNeg returns the negation of e
func NewNeg(e Expr) Expr { return NewProd(NewNum(-1), e) }

// NewDiv returns num/den as num*den^-1
func NewDiv(num, den Expr) Expr { return NewProd(num, NewPow(den, NewNum(-1))) }

// NewCall builds a function application, folding a constant argument
func NewCall(fn string, arg Expr) Expr {
	if n, ok := arg.(*Num); ok {
		if f, has := functions[fn]; has {
			return &Num{V: f(n.V)}
		}
	}
	return &Call{Fn: fn, Arg: arg}
}

// functions maps the names accepted in expressions to implementations
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"sinh": math.Sinh,
	"cosh": math.Cosh,
	"tanh": math.Tanh,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// printing ////////////////////////////////////////////////////////////////////

func (o *Num) String() string {
	return strconv.FormatFloat(o.V, 'g', -1, 64)
}

func (o *Sym) String() string { return o.Name }

func (o *Sum) String() string {
	parts := make([]string, len(o.Terms))
	for i, e := range o.Terms {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (o *Prod) String() string {
	parts := make([]string, len(o.Factors))
	for i, e := range o.Factors {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, "*") + ")"
}

func (o *Pow) String() string {
	return "(" + o.Base.String() + "^" + o.Exp.String() + ")"
}

func (o *Call) String() string {
	return o.Fn + "(" + o.Arg.String() + ")"
}
