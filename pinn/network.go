// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pinn implements the physics-informed solver backend: a small
// fully-connected network trained to satisfy the residual, boundary, and
// initial constraints of the equation, sampled on the same grid and frame
// schedule as the finite-difference backend
package pinn

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/la"
)

// network is a fully-connected approximator u(x, y, t) with tanh hidden
// layers and a linear output layer
type network struct {
	sizes []int        // layer widths, first is 3 (x, y, t), last is 1
	w     []*la.Matrix // weights per layer
	b     []la.Vector  // biases per layer
	act   []la.Vector  // activation workspaces
}

// newNetwork allocates a network with the given hidden widths and
// initializes the weights from a local deterministic source. Each solver
// owns its own source so that concurrent solves stay independent.
func newNetwork(hidden []int, seed int64) (o *network) {
	o = new(network)
	o.sizes = append([]int{3}, hidden...)
	o.sizes = append(o.sizes, 1)
	nl := len(o.sizes) - 1
	o.w = make([]*la.Matrix, nl)
	o.b = make([]la.Vector, nl)
	o.act = make([]la.Vector, nl+1)
	o.act[0] = la.NewVector(o.sizes[0])
	src := rand.New(rand.NewSource(seed))
	for l := 0; l < nl; l++ {
		m, n := o.sizes[l+1], o.sizes[l]
		o.w[l] = la.NewMatrix(m, n)
		o.b[l] = la.NewVector(m)
		r := math.Sqrt(6.0 / float64(m+n)) // Glorot range
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				o.w[l].Set(i, j, (2*src.Float64()-1)*r)
			}
		}
		o.act[l+1] = la.NewVector(m)
	}
	return
}

// eval runs a forward pass
func (o *network) eval(x, y, t float64) float64 {
	o.act[0][0], o.act[0][1], o.act[0][2] = x, y, t
	nl := len(o.w)
	for l := 0; l < nl; l++ {
		la.MatVecMul(o.act[l+1], 1, o.w[l], o.act[l])
		for i := range o.act[l+1] {
			o.act[l+1][i] += o.b[l][i]
			if l < nl-1 {
				o.act[l+1][i] = math.Tanh(o.act[l+1][i])
			}
		}
	}
	return o.act[nl][0]
}

// numParams returns the total number of trainable parameters
func (o *network) numParams() (n int) {
	for l := range o.w {
		n += o.sizes[l+1]*o.sizes[l] + o.sizes[l+1]
	}
	return
}

// getParams copies all parameters into p (weights first, then biases,
// layer by layer)
func (o *network) getParams(p []float64) {
	k := 0
	for l := range o.w {
		m, n := o.sizes[l+1], o.sizes[l]
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				p[k] = o.w[l].Get(i, j)
				k++
			}
		}
		for i := 0; i < m; i++ {
			p[k] = o.b[l][i]
			k++
		}
	}
}

// setParams copies all parameters from p into the network
func (o *network) setParams(p []float64) {
	k := 0
	for l := range o.w {
		m, n := o.sizes[l+1], o.sizes[l]
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				o.w[l].Set(i, j, p[k])
				k++
			}
		}
		for i := 0; i < m; i++ {
			o.b[l][i] = p[k]
			k++
		}
	}
}
