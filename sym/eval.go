// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Evaluator is an expression compiled against a fixed argument list. It is
// immutable after compilation and safe for concurrent use as long as each
// caller passes its own argument slice.
type Evaluator struct {
	Args []string // argument names, in call order
	fn   func(env []float64) float64
}

// Compile compiles e against the given argument names. Each free symbol of e
// must appear in args; unknown symbols are reported as an error so that a bad
// expression fails before any stepping begins.
func Compile(e Expr, args []string) (o *Evaluator, err error) {
	slots := make(map[string]int)
	for i, name := range args {
		slots[name] = i
	}
	free := FreeSymbols(e)
	unknown := []string{}
	for name := range free {
		if _, ok := slots[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, chk.Err("unknown symbol %q in expression", unknown[0])
	}
	fn, err := compile(e, slots)
	if err != nil {
		return nil, err
	}
	return &Evaluator{Args: args, fn: fn}, nil
}

// Eval evaluates the compiled expression. The env slice must follow the
// argument order given to Compile.
func (o *Evaluator) Eval(env []float64) float64 {
	return o.fn(env)
}

// compile turns a tree node into a closure over the slot environment
func compile(e Expr, slots map[string]int) (fn func(env []float64) float64, err error) {
	switch t := e.(type) {

	case *Num:
		v := t.V
		return func(env []float64) float64 { return v }, nil

	case *Sym:
		i := slots[t.Name]
		return func(env []float64) float64 { return env[i] }, nil

	case *Sum:
		fns, err := compileAll(t.Terms, slots)
		if err != nil {
			return nil, err
		}
		return func(env []float64) float64 {
			s := 0.0
			for _, f := range fns {
				s += f(env)
			}
			return s
		}, nil

	case *Prod:
		fns, err := compileAll(t.Factors, slots)
		if err != nil {
			return nil, err
		}
		return func(env []float64) float64 {
			p := 1.0
			for _, f := range fns {
				p *= f(env)
			}
			return p
		}, nil

	case *Pow:
		base, err := compile(t.Base, slots)
		if err != nil {
			return nil, err
		}
		// integer powers are frequent (u², dx⁻¹ style factors); specialize
		if n, ok := t.Exp.(*Num); ok {
			switch n.V {
			case 2:
				return func(env []float64) float64 { v := base(env); return v * v }, nil
			case 3:
				return func(env []float64) float64 { v := base(env); return v * v * v }, nil
			case -1:
				return func(env []float64) float64 { return 1.0 / base(env) }, nil
			}
		}
		exp, err := compile(t.Exp, slots)
		if err != nil {
			return nil, err
		}
		return func(env []float64) float64 { return math.Pow(base(env), exp(env)) }, nil

	case *Call:
		f, ok := functions[t.Fn]
		if !ok {
			return nil, chk.Err("unknown function %q", t.Fn)
		}
		arg, err := compile(t.Arg, slots)
		if err != nil {
			return nil, err
		}
		return func(env []float64) float64 { return f(arg(env)) }, nil
	}
	return nil, chk.Err("unknown expression node")
}

// compileAll compiles a list of nodes
func compileAll(list []Expr, slots map[string]int) (fns []func(env []float64) float64, err error) {
	fns = make([]func(env []float64) float64, len(list))
	for i, e := range list {
		fns[i], err = compile(e, slots)
		if err != nil {
			return nil, err
		}
	}
	return
}
