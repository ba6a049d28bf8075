// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"

	"github.com/sebastiengilbert73/auto-pde/inp"
	"github.com/sebastiengilbert73/auto-pde/out"
	"github.com/sebastiengilbert73/auto-pde/pde"
	"github.com/sebastiengilbert73/auto-pde/sym"
)

// set factory of solvers
func init() {
	pde.Register("fdm", func(req *inp.Request) (pde.Solver, error) {
		return New(req)
	})
}

// Solver advances a compiled equation on a uniform grid with an explicit
// scheme selected by the equation's time order: forward Euler for order 1,
// a velocity-Verlet variant for order 2. One Solver runs one solve; the
// working arrays are owned exclusively by the running solve.
type Solver struct {

	// input
	Dom inp.Domain // domain and discretization data

	// compiled setup (immutable after New)
	Eq      *sym.Equation  // equation solved for its time derivative
	Ic      *sym.Evaluator // initial condition over {x, y}
	Grid    *Grid          // uniform mesh
	Stencil *Stencil       // spatial derivative operator

	// options
	Verbose bool // print stepping progress
}

// New compiles the equation and initial condition and builds the grid.
// All failures happen here, before any stepping, so a bad request never
// produces a partial simulation.
func New(req *inp.Request) (o *Solver, err error) {
	if err = req.Domain.Validate(); err != nil {
		return nil, err
	}
	o = new(Solver)
	o.Dom = req.Domain
	o.Eq, err = sym.CompileEquation(req.Equation)
	if err != nil {
		return nil, err
	}
	o.Ic, err = sym.CompileIc(req.Ic)
	if err != nil {
		return nil, err
	}
	o.Grid = NewGrid(&o.Dom)
	o.Stencil = NewStencil(StencilCyclic, o.Grid)
	return
}

// Solve runs the time loop to completion and returns the recorded frames
func (o *Solver) Solve() (res *out.Result, err error) {

	// initial field
	g := o.Grid
	u := utl.Alloc(g.Ny, g.Nx)
	env := make([]float64, 2)
	for i := 0; i < g.Ny; i++ {
		for j := 0; j < g.Nx; j++ {
			env[0], env[1] = g.X[j], g.Y[i]
			u[i][j] = o.Ic.Eval(env)
		}
	}
	DirichletZero(u)

	// control
	steps := int(o.Dom.Tmax / o.Dom.Dt)
	rec := out.NewRecorder(steps, u)

	// time loop
	switch o.Eq.Order {
	case 1:
		err = o.runEuler(u, steps, rec)
	case 2:
		err = o.runVerlet(u, steps, rec)
	}
	if err != nil {
		return nil, err
	}
	return rec.Results(g.X, g.Y, o.Dom.Tmax), nil
}

// runEuler advances a first-order equation with forward Euler:
//  u ← u + dt·rhs(x, y, t, u, ux, uy, uxx, uyy)
func (o *Solver) runEuler(u [][]float64, steps int, rec *out.Recorder) (err error) {
	g, dt := o.Grid, o.Dom.Dt
	ux, uy := utl.Alloc(g.Ny, g.Nx), utl.Alloc(g.Ny, g.Nx)
	uxx, uyy := utl.Alloc(g.Ny, g.Nx), utl.Alloc(g.Ny, g.Nx)
	ut := utl.Alloc(g.Ny, g.Nx)
	unew := utl.Alloc(g.Ny, g.Nx)
	env := make([]float64, 8)
	t := 0.0
	for s := 0; s < steps; s++ {

		// message
		if o.Verbose {
			io.PfWhite("%30.15f\r", t)
		}

		// spatial derivatives and time derivative
		o.Stencil.Apply(u, ux, uy, uxx, uyy)
		for i := 0; i < g.Ny; i++ {
			for j := 0; j < g.Nx; j++ {
				env[0], env[1], env[2] = g.X[j], g.Y[i], t
				env[3] = u[i][j]
				env[4], env[5] = ux[i][j], uy[i][j]
				env[6], env[7] = uxx[i][j], uyy[i][j]
				ut[i][j] = o.Eq.Rhs.Eval(env)
			}
		}

		// update
		for i := 0; i < g.Ny; i++ {
			floats.AddScaledTo(unew[i], u[i], dt, ut[i])
		}
		DirichletZero(unew)
		u, unew = unew, u
		t += dt

		// check and record
		if err = checkFinite(u, s, t); err != nil {
			return
		}
		rec.Record(s, u)
	}
	return
}

// runVerlet advances a second-order equation with the velocity-Verlet
// variant below. Note the second acceleration evaluation reuses the
// pre-step velocity; this matches the reference output and is kept as is.
//  utt    = rhs(x, y, t, u, ut, ...)
//  u'     = u + dt·ut + dt²/2·utt
//  utt'   = rhs(x, y, t+dt, u', ut, ...)
//  ut'    = ut + dt/2·(utt + utt')
func (o *Solver) runVerlet(u [][]float64, steps int, rec *out.Recorder) (err error) {
	g, dt := o.Grid, o.Dom.Dt
	ux, uy := utl.Alloc(g.Ny, g.Nx), utl.Alloc(g.Ny, g.Nx)
	uxx, uyy := utl.Alloc(g.Ny, g.Nx), utl.Alloc(g.Ny, g.Nx)
	ut := utl.Alloc(g.Ny, g.Nx) // velocity starts at zero
	utt := utl.Alloc(g.Ny, g.Nx)
	uttNew := utl.Alloc(g.Ny, g.Nx)
	unew := utl.Alloc(g.Ny, g.Nx)
	env := make([]float64, 9)
	eval := func(dst, u [][]float64, t float64) {
		for i := 0; i < g.Ny; i++ {
			for j := 0; j < g.Nx; j++ {
				env[0], env[1], env[2] = g.X[j], g.Y[i], t
				env[3], env[4] = u[i][j], ut[i][j]
				env[5], env[6] = ux[i][j], uy[i][j]
				env[7], env[8] = uxx[i][j], uyy[i][j]
				dst[i][j] = o.Eq.Rhs.Eval(env)
			}
		}
	}
	t := 0.0
	for s := 0; s < steps; s++ {

		// message
		if o.Verbose {
			io.PfWhite("%30.15f\r", t)
		}

		// predictor: u' = u + dt·ut + dt²/2·utt
		o.Stencil.Apply(u, ux, uy, uxx, uyy)
		eval(utt, u, t)
		for i := 0; i < g.Ny; i++ {
			floats.AddScaledTo(unew[i], u[i], dt, ut[i])
			floats.AddScaled(unew[i], 0.5*dt*dt, utt[i])
		}
		DirichletZero(unew)

		// corrector: ut' = ut + dt/2·(utt + utt')   (old ut in utt')
		o.Stencil.Apply(unew, ux, uy, uxx, uyy)
		eval(uttNew, unew, t+dt)
		for i := 0; i < g.Ny; i++ {
			floats.AddScaled(ut[i], 0.5*dt, utt[i])
			floats.AddScaled(ut[i], 0.5*dt, uttNew[i])
		}
		u, unew = unew, u
		t += dt

		// check and record
		if err = checkFinite(u, s, t); err != nil {
			return
		}
		if err = checkFinite(ut, s, t); err != nil {
			return
		}
		rec.Record(s, u)
	}
	return
}

// checkFinite reports a runtime error when the field contains NaN or Inf
func checkFinite(u [][]float64, s int, t float64) error {
	for i := range u {
		for j := range u[i] {
			if v := u[i][j]; math.IsNaN(v) || math.IsInf(v, 0) {
				return &pde.SolverRuntimeError{Step: s, Time: t,
					Reason: "evaluation produced non-finite values; check the equation and time step"}
			}
		}
	}
	return nil
}
