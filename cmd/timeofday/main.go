// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The timeofday command formats and computes times of day, and runs
// Starlark programs that use the timeofday module.
// With no arguments on a terminal, it starts a read-eval-print loop (REPL).
package main // import "github.com/timeofday/go-timeofday/cmd/timeofday"

import (
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/timeofday/go-timeofday/repl"
	"go.starlark.net/starlark"
)

var version = "dev"

func main() {
	os.Exit(doMain(os.Args[1:]))
}

func doMain(args []string) int {
	log.SetPrefix("timeofday: ")
	log.SetFlags(0)

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if _, ok := err.(*starlark.EvalError); ok {
			repl.PrintError(err)
		} else {
			log.Print(color.RedString("%v", err))
		}
		return 1
	}
	return 0
}
