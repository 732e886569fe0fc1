// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/timeofday/go-timeofday/repl"
	"github.com/timeofday/go-timeofday/starlarktimeofday"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		execprog string
		showenv  bool
	)
	cmd := &cobra.Command{
		Use:   "run [FILE]",
		Short: "Execute a Starlark program",
		Long: `Execute the Starlark program in FILE, the program given by -c,
or the program read from standard input.
The timeofday module is predeclared and can also be loaded with
load("timeofday", "timeofday").`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var filename string
			if len(args) == 1 {
				if execprog != "" {
					return fmt.Errorf("-c and a file name are mutually exclusive")
				}
				filename = args[0]
			}
			return runProgram(cmd, opts, filename, execprog, showenv)
		},
	}
	cmd.Flags().StringVarP(&execprog, "exec", "c", "", "execute program `prog`")
	cmd.Flags().BoolVar(&showenv, "showenv", false, "on success, print final global environment")

	// non-standard dialect flags
	cmd.Flags().BoolVar(&resolve.AllowSet, "set", resolve.AllowSet, "allow set data type")
	cmd.Flags().BoolVar(&resolve.AllowRecursion, "recursion", resolve.AllowRecursion, "allow while statements and recursive functions")
	cmd.Flags().BoolVar(&resolve.AllowGlobalReassign, "globalreassign", resolve.AllowGlobalReassign, "allow reassignment of globals, and if/for/while statements at top level")
	return cmd
}

func newREPLCmd(opts *options) *cobra.Command {
	var history string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Starlark session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startREPL(cmd, opts, history)
		},
	}
	cmd.Flags().StringVar(&history, "history", defaultHistory(), "file to keep input history in, empty for none")
	return cmd
}

func defaultHistory() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "timeofday", "history")
}

// newThread returns a thread whose print statements write to cmd's
// output and whose timeofday.now reads the clock selected by --at.
func newThread(cmd *cobra.Command, opts *options, name string) (*starlark.Thread, error) {
	c, err := opts.clock()
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	thread := &starlark.Thread{
		Name:  name,
		Load:  repl.MakeLoad(),
		Print: func(_ *starlark.Thread, msg string) { fmt.Fprintln(out, msg) },
	}
	starlarktimeofday.SetClock(thread, c)
	return thread, nil
}

// runProgram executes prog if non-empty, else the named file, else
// the program read from cmd's input.
func runProgram(cmd *cobra.Command, opts *options, filename, prog string, showenv bool) error {
	var src interface{}
	switch {
	case prog != "":
		filename, src = "cmdline", prog
	case filename == "":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		filename, src = "<stdin>", data
	}

	thread, err := newThread(cmd, opts, "exec "+filename)
	if err != nil {
		return err
	}
	globals, err := starlark.ExecFile(thread, filename, src, repl.Globals())
	if err != nil {
		return err
	}

	if showenv {
		w := cmd.ErrOrStderr()
		for _, name := range globals.Keys() {
			if !strings.HasPrefix(name, "_") {
				fmt.Fprintf(w, "%s = %s\n", name, globals[name])
			}
		}
	}
	return nil
}

func startREPL(cmd *cobra.Command, opts *options, history string) error {
	thread, err := newThread(cmd, opts, "REPL")
	if err != nil {
		return err
	}
	if history != "" {
		if err := os.MkdirAll(filepath.Dir(history), 0o755); err != nil {
			history = ""
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "timeofday %s\n", cmd.Root().Version)
	repl.REPL(thread, repl.Globals(), history)
	return nil
}
