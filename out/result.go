// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the recording and packaging of solution frames
package out

import (
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/floats"
)

// Result holds the output of one solve: grid coordinates, frame time labels,
// and the recorded frames, each of shape (ny, nx)
type Result struct {
	X      []float64     `json:"x"`
	Y      []float64     `json:"y"`
	T      []float64     `json:"t"`
	Frames [][][]float64 `json:"frames"`
}

// Recorder collects detached snapshots of the working field during stepping.
// Snapshots never alias the live array.
type Recorder struct {
	Interval int             // record every Interval-th step
	frames   [][][]float64   // recorded snapshots
}

// NewRecorder returns a recorder sampling roughly fifty frames out of the
// given number of steps. The initial field is recorded immediately.
func NewRecorder(steps int, initial [][]float64) (o *Recorder) {
	o = new(Recorder)
	o.Interval = steps / 50
	if o.Interval < 1 {
		o.Interval = 1
	}
	o.frames = append(o.frames, CloneField(initial))
	return
}

// Record stores a detached copy of u when the 0-based step index s completes
// a sampling interval
func (o *Recorder) Record(s int, u [][]float64) {
	if (s+1)%o.Interval == 0 {
		o.frames = append(o.frames, CloneField(u))
	}
}

// NumFrames returns the number of recorded frames
func (o *Recorder) NumFrames() int { return len(o.frames) }

// Results packages the recorded frames. The time labels are nominal: they
// relabel the frames evenly over [0, tmax] and generally do not coincide
// with the true elapsed time of each captured step.
func (o *Recorder) Results(x, y []float64, tmax float64) *Result {
	nf := len(o.frames)
	var labels []float64
	if nf == 1 {
		labels = []float64{0}
	} else {
		labels = utl.LinSpace(0, tmax, nf)
	}
	return &Result{X: x, Y: y, T: labels, Frames: o.frames}
}

// CloneField returns an independent deep copy of a 2-D field
func CloneField(u [][]float64) (v [][]float64) {
	v = make([][]float64, len(u))
	for i := range u {
		v[i] = make([]float64, len(u[i]))
		copy(v[i], u[i])
	}
	return
}

// MaxField returns the maximum value in a 2-D field
func MaxField(u [][]float64) (max float64) {
	max = floats.Max(u[0])
	for _, row := range u[1:] {
		if m := floats.Max(row); m > max {
			max = m
		}
	}
	return
}

// MinField returns the minimum value in a 2-D field
func MinField(u [][]float64) (min float64) {
	min = floats.Min(u[0])
	for _, row := range u[1:] {
		if m := floats.Min(row); m < min {
			min = m
		}
	}
	return
}
