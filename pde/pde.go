// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pde defines the solver backend contract and the registry of
// available backends
package pde

import (
	"github.com/cpmech/gosl/chk"
	"github.com/sebastiengilbert73/auto-pde/inp"
	"github.com/sebastiengilbert73/auto-pde/out"
)

// Solver runs one self-contained solve to completion on the calling
// goroutine. Instances must not be shared across concurrent solves.
type Solver interface {
	Solve() (*out.Result, error)
}

// allocators holds all available solver backends
var allocators = make(map[string]func(req *inp.Request) (Solver, error))

// Register makes a backend available under the given method name. It is
// meant to be called from init functions of backend packages.
func Register(method string, alloc func(req *inp.Request) (Solver, error)) {
	if _, ok := allocators[method]; ok {
		chk.Panic("backend %q registered twice", method)
	}
	allocators[method] = alloc
}

// New validates the request and allocates the backend selected by its
// method field. All compilation failures surface here, before any stepping.
func New(req *inp.Request) (Solver, error) {
	if err := req.Domain.Validate(); err != nil {
		return nil, err
	}
	method := req.Method
	if method == "" {
		method = "fdm"
	}
	alloc, ok := allocators[method]
	if !ok {
		return nil, chk.Err("cannot find solver backend named %q", method)
	}
	return alloc(req)
}
