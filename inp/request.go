// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from solve requests (JSON)
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Domain holds the rectangular space-time domain and discretization data
type Domain struct {
	Xmin float64 `json:"x_min"` // lower x bound
	Xmax float64 `json:"x_max"` // upper x bound
	Ymin float64 `json:"y_min"` // lower y bound
	Ymax float64 `json:"y_max"` // upper y bound
	Tmax float64 `json:"t_max"` // final time
	Nx   int     `json:"nx"`    // number of grid points along x (>= 2)
	Ny   int     `json:"ny"`    // number of grid points along y (>= 2)
	Dt   float64 `json:"dt"`    // time increment (> 0)
}

// Request holds one solve request
type Request struct {
	Equation string                 `json:"equation"` // implicit residual F(...) = 0
	Domain   Domain                 `json:"domain"`   // space-time domain
	Ic       string                 `json:"ic"`       // initial condition over {x, y}
	Bc       map[string]interface{} `json:"bc"`       // reserved; Dirichlet-zero is hardwired
	Method   string                 `json:"method"`   // backend name; empty means "fdm"
}

// DomainConfigError indicates a degenerate grid or non-positive time data
type DomainConfigError struct {
	Reason string
}

func (e *DomainConfigError) Error() string {
	return io.Sf("domain configuration error: %s", e.Reason)
}

// Validate checks the domain data. It runs before any compilation or
// stepping so that a bad request never allocates working arrays.
func (o *Domain) Validate() error {
	if o.Nx < 2 {
		return &DomainConfigError{Reason: io.Sf("nx must be at least 2 (got %d)", o.Nx)}
	}
	if o.Ny < 2 {
		return &DomainConfigError{Reason: io.Sf("ny must be at least 2 (got %d)", o.Ny)}
	}
	if o.Xmax <= o.Xmin {
		return &DomainConfigError{Reason: io.Sf("x_max must be greater than x_min (got [%g,%g])", o.Xmin, o.Xmax)}
	}
	if o.Ymax <= o.Ymin {
		return &DomainConfigError{Reason: io.Sf("y_max must be greater than y_min (got [%g,%g])", o.Ymin, o.Ymax)}
	}
	if o.Dt <= 0 {
		return &DomainConfigError{Reason: io.Sf("dt must be positive (got %g)", o.Dt)}
	}
	if o.Tmax <= 0 {
		return &DomainConfigError{Reason: io.Sf("t_max must be positive (got %g)", o.Tmax)}
	}
	return nil
}

// default request values; same fallbacks the original service applied to
// incomplete payloads
var (
	DefaultEquation = "ut - uxx - uyy"
	DefaultIc       = "sin(x)*sin(y)"
	DefaultDomain   = Domain{
		Xmin: 0, Xmax: 3.14159,
		Ymin: 0, Ymax: 3.14159,
		Tmax: 1.0,
		Nx:   20, Ny: 20,
		Dt: 0.001,
	}
)

// SetDefaults fills absent request fields
func (o *Request) SetDefaults() {
	if o.Equation == "" {
		o.Equation = DefaultEquation
	}
	if o.Ic == "" {
		o.Ic = DefaultIc
	}
	if o.Domain == (Domain{}) {
		o.Domain = DefaultDomain
	}
	if o.Method == "" {
		o.Method = "fdm"
	}
}

// ParseRequest decodes a JSON request, fills defaults, and validates the
// domain
func ParseRequest(data []byte) (o *Request, err error) {
	o = new(Request)
	if err = json.Unmarshal(data, o); err != nil {
		return nil, chk.Err("cannot unmarshal request: %v", err)
	}
	o.SetDefaults()
	if err = o.Domain.Validate(); err != nil {
		return nil, err
	}
	return
}
