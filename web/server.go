// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package web implements the HTTP layer: request decoding, backend
// dispatch, and cross-origin handling. It is the sole place where errors
// are caught and turned into user-facing failure responses.
package web

import (
	"encoding/json"
	goio "io"
	"net/http"
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/sebastiengilbert73/auto-pde/inp"
	"github.com/sebastiengilbert73/auto-pde/out"
	"github.com/sebastiengilbert73/auto-pde/pde"
)

// Server serves the solve API
type Server struct {
	Addr    string // bind address; e.g. ":5000"
	Origin  string // value for Access-Control-Allow-Origin
	Verbose bool   // log requests
	mux     *http.ServeMux
}

// response is the envelope of every reply
type response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    *out.Result `json:"data,omitempty"`
}

// NewServer returns a server with routes registered
func NewServer(addr, origin string, verbose bool) (o *Server) {
	o = &Server{Addr: addr, Origin: origin, Verbose: verbose}
	o.mux = http.NewServeMux()
	o.mux.HandleFunc("/health", o.handleHealth)
	o.mux.HandleFunc("/solve", o.handleSolve)
	return
}

// Handler returns the root handler with cross-origin headers applied
func (o *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", o.Origin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		o.mux.ServeHTTP(w, r)
	})
}

// Run blocks serving requests
func (o *Server) Run() error {
	if o.Verbose {
		io.Pf("listening on %s\n", o.Addr)
	}
	return http.ListenAndServe(o.Addr, o.Handler())
}

// handleHealth reports liveness
func (o *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	reply(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "PDE Solver Backend is running",
	})
}

// handleSolve decodes a request, runs the selected backend to completion on
// this goroutine, and replies with the full frame set. Each request gets its
// own solver instance; nothing is shared across requests.
func (o *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		reply(w, http.StatusMethodNotAllowed, &response{Status: "error", Message: "use POST"})
		return
	}
	started := time.Now()
	body, err := goio.ReadAll(r.Body)
	if err != nil {
		o.fail(w, err)
		return
	}
	req, err := inp.ParseRequest(body)
	if err != nil {
		o.fail(w, err)
		return
	}
	solver, err := pde.New(req)
	if err != nil {
		o.fail(w, err)
		return
	}
	res, err := solver.Solve()
	if err != nil {
		o.fail(w, err)
		return
	}
	if o.Verbose {
		io.Pf("solved %q (%s) in %v: %d frames\n", req.Equation, req.Method, time.Since(started), len(res.Frames))
	}
	reply(w, http.StatusOK, &response{Status: "success", Data: res})
}

// fail reports a failure; no partial result is ever returned
func (o *Server) fail(w http.ResponseWriter, err error) {
	if o.Verbose {
		io.PfRed("ERROR: %v\n", err)
	}
	reply(w, http.StatusInternalServerError, &response{Status: "error", Message: err.Error()})
}

// reply writes a JSON response
func reply(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
