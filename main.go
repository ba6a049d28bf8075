// Copyright 2026 The Auto-PDE Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/viper"

	"github.com/sebastiengilbert73/auto-pde/web"

	// solver backends register themselves on import
	_ "github.com/sebastiengilbert73/auto-pde/fdm"
	_ "github.com/sebastiengilbert73/auto-pde/pinn"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// configuration file (optional) with defaults
	viper.SetConfigName("conf")
	viper.AddConfigPath(".")
	viper.SetDefault("server.addr", ":5000")
	viper.SetDefault("server.origin", "*")
	viper.SetDefault("server.verbose", true)
	viper.ReadInConfig() // missing file means defaults

	// read input parameters
	addr := io.ArgToString(0, viper.GetString("server.addr"))
	origin := io.ArgToString(1, viper.GetString("server.origin"))
	verbose := io.ArgToBool(2, viper.GetBool("server.verbose"))

	// message
	if verbose {
		io.PfWhite("\nAuto-PDE -- symbolic PDE compilation and explicit time stepping\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"bind address", "addr", addr,
			"allowed origin", "origin", origin,
			"show messages", "verbose", verbose,
		))
	}

	// serve
	server := web.NewServer(addr, origin, verbose)
	err := server.Run()
	if err != nil {
		chk.Panic("server stopped:\n%v", err)
	}
}
