// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// evalAt parses src and evaluates it with the given bindings
func evalAt(tst *testing.T, src string, names []string, vals []float64) float64 {
	e, err := Parse(src)
	if err != nil {
		tst.Fatalf("cannot parse %q: %v", src, err)
	}
	ev, err := Compile(e, names)
	if err != nil {
		tst.Fatalf("cannot compile %q: %v", src, err)
	}
	return ev.Eval(vals)
}

func Test_parse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse01. arithmetic and precedence")

	chk.Float64(tst, "1+2*3", 1e-17, evalAt(tst, "1 + 2*3", nil, nil), 7)
	chk.Float64(tst, "(1+2)*3", 1e-17, evalAt(tst, "(1 + 2)*3", nil, nil), 9)
	chk.Float64(tst, "2^3", 1e-17, evalAt(tst, "2^3", nil, nil), 8)
	chk.Float64(tst, "2**3", 1e-17, evalAt(tst, "2**3", nil, nil), 8)
	chk.Float64(tst, "2^-1", 1e-17, evalAt(tst, "2^-1", nil, nil), 0.5)
	chk.Float64(tst, "2^3^2", 1e-17, evalAt(tst, "2^3^2", nil, nil), 512) // right associative
	chk.Float64(tst, "-2-3", 1e-17, evalAt(tst, "-2 - 3", nil, nil), -5)
	chk.Float64(tst, "7/2", 1e-17, evalAt(tst, "7/2", nil, nil), 3.5)
	chk.Float64(tst, "1e-3", 1e-20, evalAt(tst, "1e-3", nil, nil), 0.001)
	chk.Float64(tst, "pi", 1e-17, evalAt(tst, "pi", nil, nil), math.Pi)
}

func Test_parse02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse02. symbols and functions")

	xy := []string{"x", "y"}
	chk.Float64(tst, "sin*sin", 1e-15, evalAt(tst, "sin(x)*sin(y)", xy, []float64{math.Pi / 2, math.Pi / 2}), 1)
	chk.Float64(tst, "exp", 1e-15, evalAt(tst, "exp(-x)", xy, []float64{1, 0}), math.Exp(-1))
	chk.Float64(tst, "sqrt", 1e-15, evalAt(tst, "sqrt(x*y)", xy, []float64{2, 8}), 4)
	chk.Float64(tst, "poly", 1e-15, evalAt(tst, "x^2 + 2*x*y + y^2", xy, []float64{1, 2}), 9)
	chk.Float64(tst, "sin(pi*x)", 1e-15, evalAt(tst, "sin(pi*x)", xy, []float64{0.5, 0}), 1)
}

func Test_parse03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse03. constant folding")

	e, err := Parse("2*3 + sin(0) + 0*x")
	if err != nil {
		tst.Fatalf("parse failed: %v", err)
	}
	n, ok := e.(*Num)
	if !ok {
		tst.Fatalf("expected fully folded constant; got %v", e)
	}
	chk.Float64(tst, "folded", 1e-17, n.V, 6)

	// x^1 folds to x; x^0 folds to 1
	e, err = Parse("x^1")
	if err != nil {
		tst.Fatalf("parse failed: %v", err)
	}
	if _, ok := e.(*Sym); !ok {
		tst.Errorf("x^1 should fold to the symbol; got %v", e)
	}
}

func Test_parse04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse04. malformed input")

	for _, src := range []string{
		"",
		"1 +",
		"(1 + 2",
		"sin(x",
		"foo(x)",
		"1 $ 2",
		"x = 0",
		"1 2",
	} {
		if _, err := Parse(src); err == nil {
			tst.Errorf("parsing %q should fail", src)
		}
	}
}

func Test_parse05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("parse05. free symbols and unknown names")

	e, err := Parse("ut - uxx - k*uyy")
	if err != nil {
		tst.Fatalf("parse failed: %v", err)
	}
	free := FreeSymbols(e)
	for _, name := range []string{"ut", "uxx", "uyy", "k"} {
		if !free[name] {
			tst.Errorf("symbol %q should be free", name)
		}
	}
	if _, err := Compile(e, []string{"ut", "uxx", "uyy"}); err == nil {
		tst.Errorf("compiling with unknown symbol %q should fail", "k")
	}
}
