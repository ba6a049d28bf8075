// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/guptarohit/asciigraph"

	"github.com/sebastiengilbert73/auto-pde/inp"
	"github.com/sebastiengilbert73/auto-pde/out"
	"github.com/sebastiengilbert73/auto-pde/pde"

	_ "github.com/sebastiengilbert73/auto-pde/fdm"
	_ "github.com/sebastiengilbert73/auto-pde/pinn"
)

func main() {

	// input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "request", ".json", true)
	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"request filename", "fnamepath", fnamepath,
	))

	// read and solve
	buf, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("cannot read %q:\n%v", fnamepath, err)
	}
	req, err := inp.ParseRequest(buf)
	if err != nil {
		chk.Panic("cannot parse request:\n%v", err)
	}
	solver, err := pde.New(req)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	res, err := solver.Solve()
	if err != nil {
		chk.Panic("solve failed:\n%v", err)
	}

	// plot center row of the final frame
	final := res.Frames[len(res.Frames)-1]
	row := final[len(final)/2]
	io.Pf("%s\n", asciigraph.Plot(row,
		asciigraph.Height(16),
		asciigraph.Caption(io.Sf("%s: u(x, y_mid, t=%g)", fnkey, res.T[len(res.T)-1])),
	))
	io.Pf("\nframes   = %d\n", len(res.Frames))
	io.Pf("max(u_0) = %g\n", out.MaxField(res.Frames[0]))
	io.Pf("max(u_f) = %g\n", out.MaxField(final))
	io.Pf("min(u_f) = %g\n", out.MinField(final))
}
