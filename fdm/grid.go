// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdm implements the finite-difference solver backend: uniform grid,
// central-difference stencils, Dirichlet-zero boundary, and explicit time
// integration
package fdm

import (
	"github.com/cpmech/gosl/utl"
	"github.com/sebastiengilbert73/auto-pde/inp"
)

// Grid holds the uniform spatial mesh. Constructed once per solve and never
// mutated.
type Grid struct {
	Nx, Ny int         // number of points along x and y
	X, Y   []float64   // coordinates, inclusive endpoints
	Dx, Dy float64     // spacings
	XX, YY [][]float64 // meshgrid arrays of shape (ny, nx); row ↔ y
}

// NewGrid builds the mesh for a validated domain
func NewGrid(dom *inp.Domain) (o *Grid) {
	o = new(Grid)
	o.Nx, o.Ny = dom.Nx, dom.Ny
	o.X = utl.LinSpace(dom.Xmin, dom.Xmax, dom.Nx)
	o.Y = utl.LinSpace(dom.Ymin, dom.Ymax, dom.Ny)
	o.Dx = o.X[1] - o.X[0]
	o.Dy = o.Y[1] - o.Y[0]
	o.XX, o.YY = utl.MeshGrid2d(dom.Xmin, dom.Xmax, dom.Ymin, dom.Ymax, dom.Nx, dom.Ny)
	return
}
