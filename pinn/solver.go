// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinn

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/utl"

	"github.com/sebastiengilbert73/auto-pde/inp"
	"github.com/sebastiengilbert73/auto-pde/out"
	"github.com/sebastiengilbert73/auto-pde/pde"
	"github.com/sebastiengilbert73/auto-pde/sym"
)

// set factory of solvers
func init() {
	pde.Register("pinn", func(req *inp.Request) (pde.Solver, error) {
		return New(req)
	})
}

// residual argument order; the compiled residual sees every field symbol and
// the training loop fills the slots that apply to the equation's order
var resArgs = []string{"x", "y", "t", "u", "ut", "utt", "ux", "uy", "uxx", "uyy"}

// residual slot indices
const (
	sX = iota
	sY
	sT
	sU
	sUt
	sUtt
	sUx
	sUy
	sUxx
	sUyy
)

// point is one training sample in the space-time domain
type point struct {
	x, y, t float64
}

// Solver approximates the field with a trained network instead of stepping a
// grid. It is a drop-in alternative to the finite-difference backend behind
// the same result contract; its failure mode is non-convergence rather than
// discretization error.
type Solver struct {

	// input
	Dom inp.Domain

	// compiled setup
	Order int            // time order, from the residual
	Res   *sym.Evaluator // residual over all field symbols
	Ic    *sym.Evaluator // initial condition over {x, y}

	// training options
	Hidden  []int   // hidden layer widths
	Epochs  int     // Adam iterations
	Ncol    int     // interior collocation points
	Nbry    int     // boundary points
	Nini    int     // initial-condition points
	Lrate   float64 // learning rate
	Seed    int64   // seed for weight init and point sampling
	MaxLoss float64 // final loss above this aborts the run

	// derived
	net *network
	hx  float64 // finite-difference probe steps for network derivatives
	hy  float64
	ht  float64
}

// New compiles the residual and initial condition and allocates the network.
// All compilation failures happen here, before any training.
func New(req *inp.Request) (o *Solver, err error) {
	if err = req.Domain.Validate(); err != nil {
		return nil, err
	}
	o = new(Solver)
	o.Dom = req.Domain

	// reuse the equation compiler for parsing, order classification, and
	// error reporting; training needs the raw residual, not the solved form
	eq, err := sym.CompileEquation(req.Equation)
	if err != nil {
		return nil, err
	}
	o.Order = eq.Order
	o.Res, err = sym.Compile(eq.Residual, resArgs)
	if err != nil {
		return nil, &sym.InvalidEquationError{Equation: req.Equation, Reason: err}
	}
	o.Ic, err = sym.CompileIc(req.Ic)
	if err != nil {
		return nil, err
	}

	// defaults tuned for small domains; callers may override before Solve
	o.Hidden = []int{8, 8}
	o.Epochs = 300
	o.Ncol = 256
	o.Nbry = 64
	o.Nini = 64
	o.Lrate = 0.01
	o.Seed = 1
	o.MaxLoss = 1e6
	o.hx = (o.Dom.Xmax - o.Dom.Xmin) * 1e-3
	o.hy = (o.Dom.Ymax - o.Dom.Ymin) * 1e-3
	o.ht = o.Dom.Tmax * 1e-3
	return
}

// Solve trains the network and samples it on the output grid and frame
// schedule
func (o *Solver) Solve() (res *out.Result, err error) {

	// training set; a local source keeps concurrent solves independent and
	// repeated solves bit-identical
	src := rand.New(rand.NewSource(o.Seed))
	o.net = newNetwork(o.Hidden, o.Seed)
	col := o.samplePoints(src, o.Ncol, sampleInterior)
	bry := o.samplePoints(src, o.Nbry, sampleBoundary)
	ini := o.samplePoints(src, o.Nini, sampleInitial)

	// optimize
	np := o.net.numParams()
	params := make([]float64, np)
	grads := make([]float64, np)
	o.net.getParams(params)
	opt := newAdam(o.Lrate, np)
	for ep := 0; ep < o.Epochs; ep++ {
		o.gradient(params, grads, col, bry, ini)
		opt.update(params, grads)
	}
	o.net.setParams(params)
	loss := o.loss(params, col, bry, ini)
	if math.IsNaN(loss) || math.IsInf(loss, 0) || loss > o.MaxLoss {
		return nil, &pde.SolverRuntimeError{Step: o.Epochs, Time: o.Dom.Tmax,
			Reason: "training did not converge"}
	}

	// sample frames on the grid schedule of the finite-difference backend
	x := utl.LinSpace(o.Dom.Xmin, o.Dom.Xmax, o.Dom.Nx)
	y := utl.LinSpace(o.Dom.Ymin, o.Dom.Ymax, o.Dom.Ny)
	steps := int(o.Dom.Tmax / o.Dom.Dt)
	rec := out.NewRecorder(steps, o.sampleField(x, y, 0))
	for s := 0; s < steps; s++ {
		if (s+1)%rec.Interval == 0 {
			rec.Record(s, o.sampleField(x, y, float64(s+1)*o.Dom.Dt))
		}
	}
	return rec.Results(x, y, o.Dom.Tmax), nil
}

// sampleField evaluates the network on the grid at time t, clamped to the
// Dirichlet-zero boundary so the outward contract matches the grid backend
func (o *Solver) sampleField(x, y []float64, t float64) (u [][]float64) {
	ny, nx := len(y), len(x)
	u = utl.Alloc(ny, nx)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			if i == 0 || i == ny-1 || j == 0 || j == nx-1 {
				continue
			}
			u[i][j] = o.net.eval(x[j], y[i], t)
		}
	}
	return
}

// sampling regions
const (
	sampleInterior = iota
	sampleBoundary
	sampleInitial
)

// samplePoints draws n points from the given region of the space-time domain
func (o *Solver) samplePoints(src *rand.Rand, n, region int) (pts []point) {
	pts = make([]point, n)
	for k := range pts {
		p := point{
			x: o.Dom.Xmin + src.Float64()*(o.Dom.Xmax-o.Dom.Xmin),
			y: o.Dom.Ymin + src.Float64()*(o.Dom.Ymax-o.Dom.Ymin),
			t: src.Float64() * o.Dom.Tmax,
		}
		switch region {
		case sampleBoundary:
			// project onto one of the four edges
			switch src.Intn(4) {
			case 0:
				p.x = o.Dom.Xmin
			case 1:
				p.x = o.Dom.Xmax
			case 2:
				p.y = o.Dom.Ymin
			case 3:
				p.y = o.Dom.Ymax
			}
		case sampleInitial:
			p.t = 0
		}
		pts[k] = p
	}
	return
}

// residualAt evaluates the compiled residual at p using the network field
// and central finite differences of the network for the derivative slots
func (o *Solver) residualAt(p point, env []float64) float64 {
	f := o.net.eval
	u := f(p.x, p.y, p.t)
	env[sX], env[sY], env[sT] = p.x, p.y, p.t
	env[sU] = u
	xp, xm := f(p.x+o.hx, p.y, p.t), f(p.x-o.hx, p.y, p.t)
	yp, ym := f(p.x, p.y+o.hy, p.t), f(p.x, p.y-o.hy, p.t)
	tp, tm := f(p.x, p.y, p.t+o.ht), f(p.x, p.y, p.t-o.ht)
	env[sUx] = (xp - xm) / (2 * o.hx)
	env[sUy] = (yp - ym) / (2 * o.hy)
	env[sUxx] = (xp - 2*u + xm) / (o.hx * o.hx)
	env[sUyy] = (yp - 2*u + ym) / (o.hy * o.hy)
	env[sUt] = (tp - tm) / (2 * o.ht)
	env[sUtt] = (tp - 2*u + tm) / (o.ht * o.ht)
	return o.Res.Eval(env)
}

// loss is the mean squared residual over the collocation points plus the
// squared boundary and initial-condition mismatches
func (o *Solver) loss(params []float64, col, bry, ini []point) float64 {
	o.net.setParams(params)
	env := make([]float64, len(resArgs))
	icEnv := make([]float64, 2)
	sum := 0.0
	for _, p := range col {
		r := o.residualAt(p, env)
		sum += r * r
	}
	for _, p := range bry {
		v := o.net.eval(p.x, p.y, p.t)
		sum += v * v
	}
	for _, p := range ini {
		icEnv[0], icEnv[1] = p.x, p.y
		d := o.net.eval(p.x, p.y, 0) - o.Ic.Eval(icEnv)
		sum += d * d
	}
	return sum / float64(len(col)+len(bry)+len(ini))
}

// gradEps is the probe step for the numerical parameter gradient
const gradEps = 1e-5

// gradient fills grads with the central-difference gradient of the loss and
// returns the loss at params
func (o *Solver) gradient(params, grads []float64, col, bry, ini []point) float64 {
	base := o.loss(params, col, bry, ini)
	for i := range params {
		save := params[i]
		params[i] = save + gradEps
		up := o.loss(params, col, bry, ini)
		params[i] = save - gradEps
		dn := o.loss(params, col, bry, ini)
		params[i] = save
		grads[i] = (up - dn) / (2 * gradEps)
	}
	return base
}
