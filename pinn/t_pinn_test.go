// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sebastiengilbert73/auto-pde/inp"
	"github.com/sebastiengilbert73/auto-pde/pde"
)

func verbose() {
	chk.Verbose = true
}

func Test_network01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("network01. parameter count and roundtrip")

	net := newNetwork([]int{4, 3}, 1)

	// layers: 3→4, 4→3, 3→1
	chk.Int(tst, "numParams", net.numParams(), (3*4+4)+(4*3+3)+(3*1+1))

	np := net.numParams()
	p := make([]float64, np)
	net.getParams(p)
	q := make([]float64, np)
	for i := range q {
		q[i] = float64(i) * 0.01
	}
	net.setParams(q)
	r := make([]float64, np)
	net.getParams(r)
	chk.Array(tst, "roundtrip", 1e-17, r, q)

	// restoring the original parameters restores the output
	a := net.eval(0.3, 0.7, 0.1)
	net.setParams(p)
	b := net.eval(0.3, 0.7, 0.1)
	net.setParams(q)
	c := net.eval(0.3, 0.7, 0.1)
	chk.Float64(tst, "same params same output", 1e-17, a, c)
	if a == b {
		tst.Errorf("different params should change the output")
	}
}

func Test_network02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("network02. deterministic initialization")

	a := newNetwork([]int{8}, 42)
	b := newNetwork([]int{8}, 42)
	pa := make([]float64, a.numParams())
	pb := make([]float64, b.numParams())
	a.getParams(pa)
	b.getParams(pb)
	chk.Array(tst, "same seed same weights", 1e-17, pa, pb)

	c := newNetwork([]int{8}, 43)
	pc := make([]float64, c.numParams())
	c.getParams(pc)
	same := true
	for i := range pa {
		if pa[i] != pc[i] {
			same = false
			break
		}
	}
	if same {
		tst.Errorf("different seeds should give different weights")
	}
}

func Test_adam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("adam01. minimizes a quadratic")

	// f(p) = (p0-1)² + (p1+2)²
	p := []float64{5, 5}
	g := make([]float64, 2)
	opt := newAdam(0.1, 2)
	for it := 0; it < 500; it++ {
		g[0] = 2 * (p[0] - 1)
		g[1] = 2 * (p[1] + 2)
		opt.update(p, g)
	}
	io.Pf("p = %v\n", p)
	chk.Float64(tst, "p0", 1e-3, p[0], 1)
	chk.Float64(tst, "p1", 1e-3, p[1], -2)
}

// tinyRequest returns a heat-equation request small enough to train quickly
func tinyRequest() *inp.Request {
	return &inp.Request{
		Equation: "ut - uxx - uyy",
		Domain: inp.Domain{
			Xmin: 0, Xmax: 1,
			Ymin: 0, Ymax: 1,
			Tmax: 0.05,
			Nx:   5, Ny: 5,
			Dt: 0.01,
		},
		Ic:     "sin(3.14159*x)*sin(3.14159*y)",
		Method: "pinn",
	}
}

// shrink reduces the training budget so the smoke tests stay fast
func shrink(o *Solver) {
	o.Hidden = []int{4}
	o.Epochs = 5
	o.Ncol = 16
	o.Nbry = 8
	o.Nini = 8
}

func Test_pinn01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pinn01. solve produces the frame contract")

	solver, err := New(tinyRequest())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Int(tst, "order", solver.Order, 1)
	shrink(solver)

	res, err := solver.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}

	// steps=5, interval=1: initial frame plus one per step
	chk.Int(tst, "nframes", len(res.Frames), 6)
	chk.Int(tst, "nx", len(res.X), 5)
	chk.Int(tst, "ny", len(res.Y), 5)
	chk.Float64(tst, "t[last]", 1e-15, res.T[len(res.T)-1], 0.05)

	// the sampled field is clamped to the Dirichlet-zero boundary
	for k, f := range res.Frames {
		for j := 0; j < 5; j++ {
			if f[0][j] != 0 || f[4][j] != 0 || f[j][0] != 0 || f[j][4] != 0 {
				tst.Fatalf("frame %d violates boundary", k)
			}
		}
	}
}

func Test_pinn02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pinn02. repeated solves are bit-identical")

	run := func() [][]float64 {
		solver, err := New(tinyRequest())
		if err != nil {
			tst.Fatalf("New failed: %v", err)
		}
		shrink(solver)
		res, err := solver.Solve()
		if err != nil {
			tst.Fatalf("Solve failed: %v", err)
		}
		return res.Frames[len(res.Frames)-1]
	}
	chk.Deep2(tst, "final frame", 0, run(), run())
}

func Test_pinn03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pinn03. wave equation classifies as order 2")

	req := tinyRequest()
	req.Equation = "utt - uxx - uyy"
	solver, err := New(req)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	chk.Int(tst, "order", solver.Order, 2)
}

func Test_pinn04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pinn04. divergence reported as a runtime error")

	solver, err := New(tinyRequest())
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	shrink(solver)
	solver.MaxLoss = 0 // no trained network reaches exactly zero loss
	_, err = solver.Solve()
	if err == nil {
		tst.Fatalf("Solve should fail when the loss stays above the cap")
	}
	if _, ok := err.(*pde.SolverRuntimeError); !ok {
		tst.Errorf("error should be SolverRuntimeError; got %T", err)
	}
}
