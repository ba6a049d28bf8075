// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pde

import (
	"github.com/cpmech/gosl/io"
)

// SolverRuntimeError indicates that stepping produced non-finite values or
// that a backend failed to converge. No partial result is available; a run
// is not resumable.
type SolverRuntimeError struct {
	Step   int     // 0-based step index at failure
	Time   float64 // simulation time at failure
	Reason string
}

func (e *SolverRuntimeError) Error() string {
	return io.Sf("solver failed at step %d (t=%g): %s", e.Step, e.Time, e.Reason)
}
