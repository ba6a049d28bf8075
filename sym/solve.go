// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
)

// PolyCoeffs extracts the coefficients of e viewed as a polynomial in the
// symbol named target. The returned slice c satisfies
//  e = c[0] + c[1]*target + c[2]*target² + ...
// with each c[k] free of target. An error is returned when e is not
// polynomial in target; e.g. when target appears inside a function call,
// in an exponent, or under a non-integer or negative power.
func PolyCoeffs(e Expr, target string) (c []Expr, err error) {
	switch t := e.(type) {

	case *Num:
		return []Expr{t}, nil

	case *Sym:
		if t.Name == target {
			return []Expr{NewNum(0), NewNum(1)}, nil
		}
		return []Expr{t}, nil

	case *Sum:
		c = []Expr{}
		for _, term := range t.Terms {
			sub, err := PolyCoeffs(term, target)
			if err != nil {
				return nil, err
			}
			c = polyAdd(c, sub)
		}
		return c, nil

	case *Prod:
		c = []Expr{NewNum(1)}
		for _, factor := range t.Factors {
			sub, err := PolyCoeffs(factor, target)
			if err != nil {
				return nil, err
			}
			c = polyMul(c, sub)
		}
		return c, nil

	case *Pow:
		if !DependsOn(t.Base, target) && !DependsOn(t.Exp, target) {
			return []Expr{t}, nil
		}
		if DependsOn(t.Exp, target) {
			return nil, chk.Err("%q appears in an exponent; cannot solve algebraically", target)
		}
		n, ok := t.Exp.(*Num)
		if !ok || n.V != float64(int(n.V)) || n.V < 0 {
			return nil, chk.Err("%q appears under a non-integer or negative power; cannot solve algebraically", target)
		}
		base, err := PolyCoeffs(t.Base, target)
		if err != nil {
			return nil, err
		}
		c = []Expr{NewNum(1)}
		for k := 0; k < int(n.V); k++ {
			c = polyMul(c, base)
		}
		return c, nil

	case *Call:
		if DependsOn(t.Arg, target) {
			return nil, chk.Err("%q appears inside %s(); cannot solve algebraically", target, t.Fn)
		}
		return []Expr{t}, nil
	}
	return nil, chk.Err("unknown expression node")
}

// polyAdd adds two coefficient slices
func polyAdd(a, b []Expr) (c []Expr) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	c = make([]Expr, n)
	for i := 0; i < n; i++ {
		switch {
		case i >= len(a):
			c[i] = b[i]
		case i >= len(b):
			c[i] = a[i]
		default:
			c[i] = NewSum(a[i], b[i])
		}
	}
	return
}

// polyMul convolves two coefficient slices
func polyMul(a, b []Expr) (c []Expr) {
	c = make([]Expr, len(a)+len(b)-1)
	for i := range c {
		c[i] = NewNum(0)
	}
	for i := range a {
		for j := range b {
			c[i+j] = NewSum(c[i+j], NewProd(a[i], b[j]))
		}
	}
	return
}

// isZero tells whether e folded to the literal constant zero
func isZero(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.V == 0
}

// SolveFor solves e = 0 for the symbol named target and returns all solution
// branches in a deterministic order. Supported are expressions polynomial of
// degree one or two in target; for degree two the branch using the negative
// square root comes first. An empty slice with a non-nil error indicates that
// no algebraic solution could be found.
func SolveFor(e Expr, target string) (sols []Expr, err error) {
	c, err := PolyCoeffs(e, target)
	if err != nil {
		return nil, err
	}
	deg := len(c) - 1
	for deg > 0 && isZero(c[deg]) {
		deg--
	}
	switch deg {
	case 0:
		return nil, chk.Err("expression does not contain %q", target)
	case 1:
		// c0 + c1*target = 0  =>  target = -c0/c1
		return []Expr{NewDiv(NewNeg(c[0]), c[1])}, nil
	case 2:
		// c0 + c1*target + c2*target² = 0  =>  quadratic formula
		disc := NewSum(NewPow(c[1], NewNum(2)), NewProd(NewNum(-4), c[2], c[0]))
		root := NewCall("sqrt", disc)
		den := NewProd(NewNum(2), c[2])
		lo := NewDiv(NewSum(NewNeg(c[1]), NewNeg(root)), den)
		hi := NewDiv(NewSum(NewNeg(c[1]), root), den)
		return []Expr{lo, hi}, nil
	}
	return nil, chk.Err("expression has degree %d in %q; cannot solve algebraically", deg, target)
}
