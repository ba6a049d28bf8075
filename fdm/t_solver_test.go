// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/sebastiengilbert73/auto-pde/inp"
	"github.com/sebastiengilbert73/auto-pde/out"
	"github.com/sebastiengilbert73/auto-pde/pde"
)

// heatRequest returns the canonical heat-equation request on [0,π]²
func heatRequest(tmax, dt float64, n int) *inp.Request {
	return &inp.Request{
		Equation: "ut - uxx - uyy",
		Domain: inp.Domain{
			Xmin: 0, Xmax: math.Pi,
			Ymin: 0, Ymax: math.Pi,
			Tmax: tmax,
			Nx:   n, Ny: n,
			Dt: dt,
		},
		Ic: "sin(x)*sin(y)",
	}
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. heat equation decays like exp(-2t)")

	solver, err := New(heatRequest(0.5, 0.001, 20))
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Int(tst, "order", solver.Eq.Order, 1)

	res, err := solver.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	initMax := out.MaxField(res.Frames[0])
	finalMax := out.MaxField(res.Frames[len(res.Frames)-1])
	if finalMax >= initMax {
		tst.Errorf("solution should decay: initial %g, final %g", initMax, finalMax)
	}
	expected := math.Exp(-2*0.5) * initMax
	if math.Abs(finalMax-expected) > 0.1 {
		tst.Errorf("final max %g should be within 0.1 of %g", finalMax, expected)
	}
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. end-to-end example")

	solver, err := New(heatRequest(0.1, 0.0005, 10))
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Int(tst, "order", solver.Eq.Order, 1)

	res, err := solver.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}

	// steps=200 => save every 4th step => 51 frames
	chk.Int(tst, "nframes", len(res.Frames), 51)
	chk.Int(tst, "nt", len(res.T), 51)
	chk.Float64(tst, "t[0]", 1e-17, res.T[0], 0)
	chk.Float64(tst, "t[last]", 1e-15, res.T[50], 0.1)

	// every frame honors the Dirichlet-zero boundary exactly
	for k, f := range res.Frames {
		ny, nx := len(f), len(f[0])
		for j := 0; j < nx; j++ {
			if f[0][j] != 0 || f[ny-1][j] != 0 {
				tst.Fatalf("frame %d violates boundary on rows", k)
			}
		}
		for i := 0; i < ny; i++ {
			if f[i][0] != 0 || f[i][nx-1] != 0 {
				tst.Fatalf("frame %d violates boundary on columns", k)
			}
		}
	}

	if out.MaxField(res.Frames[50]) >= out.MaxField(res.Frames[0]) {
		tst.Errorf("final max should be below initial max")
	}
}

func Test_solver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver03. wave equation oscillates at cos(sqrt(2)t)")

	req := &inp.Request{
		Equation: "utt - uxx - uyy",
		Domain: inp.Domain{
			Xmin: 0, Xmax: math.Pi,
			Ymin: 0, Ymax: math.Pi,
			Tmax: 0.5,
			Nx:   20, Ny: 20,
			Dt: 0.001,
		},
		Ic: "sin(x)*sin(y)",
	}
	solver, err := New(req)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Int(tst, "order", solver.Eq.Order, 2)

	res, err := solver.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}

	// released from rest, the mode amplitude follows cos(√2·t)
	final := res.Frames[len(res.Frames)-1]
	center := final[10][10]
	ic := math.Sin(solver.Grid.X[10]) * math.Sin(solver.Grid.Y[10])
	expected := ic * math.Cos(math.Sqrt2*0.5)
	if math.Abs(center-expected) > 0.05 {
		tst.Errorf("center %g should be within 0.05 of %g", center, expected)
	}
}

func Test_solver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver04. frame schedule")

	// dt and t_max chosen so steps is exact: 16/0.125 = 128 steps,
	// save every 2nd step, 65 frames
	req := &inp.Request{
		Equation: "ut + u", // pure decay; no spatial coupling
		Domain: inp.Domain{
			Xmin: 0, Xmax: 1,
			Ymin: 0, Ymax: 1,
			Tmax: 16,
			Nx:   5, Ny: 5,
			Dt: 0.125,
		},
		Ic: "x*y",
	}
	solver, err := New(req)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res, err := solver.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Int(tst, "nframes", len(res.Frames), 65)

	// with a single step there is exactly one extra frame
	req.Domain.Tmax = 0.125
	solver, err = New(req)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	res, err = solver.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Int(tst, "nframes single step", len(res.Frames), 2)
}

func Test_solver05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver05. determinism")

	run := func() *out.Result {
		solver, err := New(heatRequest(0.05, 0.001, 12))
		if err != nil {
			tst.Fatalf("New failed: %v", err)
		}
		res, err := solver.Solve()
		if err != nil {
			tst.Fatalf("Solve failed: %v", err)
		}
		return res
	}
	a, b := run(), run()
	chk.Int(tst, "nframes", len(a.Frames), len(b.Frames))
	for k := range a.Frames {
		chk.Deep2(tst, "frame", 0, a.Frames[k], b.Frames[k])
	}
}

func Test_solver06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver06. non-finite values abort the run")

	req := &inp.Request{
		Equation: "ut - 1/u", // rhs blows up on the zero initial field
		Domain: inp.Domain{
			Xmin: 0, Xmax: 1,
			Ymin: 0, Ymax: 1,
			Tmax: 1,
			Nx:   5, Ny: 5,
			Dt: 0.1,
		},
		Ic: "0",
	}
	solver, err := New(req)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	_, err = solver.Solve()
	if err == nil {
		tst.Fatalf("Solve should fail")
	}
	if _, ok := err.(*pde.SolverRuntimeError); !ok {
		tst.Errorf("error should be SolverRuntimeError; got %T", err)
	}
}
