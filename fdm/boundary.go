// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

// DirichletZero clamps the field to zero on the domain edges: first and last
// row and first and last column. The velocity field is never clamped.
func DirichletZero(u [][]float64) {
	ny := len(u)
	nx := len(u[0])
	for j := 0; j < nx; j++ {
		u[0][j] = 0
		u[ny-1][j] = 0
	}
	for i := 0; i < ny; i++ {
		u[i][0] = 0
		u[i][nx-1] = 0
	}
}
