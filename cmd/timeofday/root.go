// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/timeofday/go-timeofday/timeofday"
	"golang.org/x/term"
)

// options holds the flags shared by all subcommands.
type options struct {
	at string // fixed clock, "" for the system clock
}

// clock returns the clock selected by --at.
func (o *options) clock() (timeofday.Clock, error) {
	if o.at == "" {
		return timeofday.SystemClock, nil
	}
	t, err := timeofday.Parse(o.at)
	if err != nil {
		return nil, fmt.Errorf("--at: %w", err)
	}
	return timeofday.FixedClock(t), nil
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{
		Use:     "timeofday",
		Version: version,
		Short:   "Compute and format times of day",
		Long: `timeofday works with times of day: seconds since midnight that wrap
around at 24:00:00, formatted with strftime-style directives.

With no command it starts an interactive Starlark session on a terminal,
or runs the Starlark program read from standard input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return startREPL(cmd, opts, "")
			}
			return runProgram(cmd, opts, "", "", false)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&opts.at, "at", "", "use this fixed time (HH:MM[:SS]) instead of the system clock")

	root.AddCommand(
		newNowCmd(opts),
		newFormatCmd(),
		newAddCmd(+1),
		newAddCmd(-1),
		newCmpCmd(),
		newRunCmd(opts),
		newREPLCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the timeofday version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), cmd.Root().Version)
			},
		},
	)
	return root
}

func newNowCmd(opts *options) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time of day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.clock()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), timeofday.Now(c).Format(layout))
			return nil
		},
	}
	cmd.Flags().StringVarP(&layout, "format", "f", "%T", "strftime-style layout")
	return cmd
}

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format TIME LAYOUT",
		Short: "Format a time of day",
		Long: `Format TIME (HH:MM[:SS] or seconds since midnight) with LAYOUT.

Directives: %H %k %I %l (hours), %M (minutes), %S (seconds),
%p %P (AM/PM, am/pm), %n %t %% (literals) and the combinations
%r (%I:%M:%S %p), %R (%H:%M), %T and %X (%H:%M:%S).
A '-' after the '%' drops the padding of a number and erases
%p, %P, %n, %t and %%.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timeofday.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Format(args[1]))
			return nil
		},
	}
}

// newAddCmd returns the "add" command, or "sub" if sign is negative.
func newAddCmd(sign int) *cobra.Command {
	use, short := "add", "Add seconds to a time of day"
	if sign < 0 {
		use, short = "sub", "Subtract seconds from a time of day"
	}
	cmd := &cobra.Command{
		Use:   use + " TIME SECONDS",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := timeofday.Parse(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid number of seconds %q", args[1])
			}
			if sign < 0 {
				t = t.Sub(n)
			} else {
				t = t.Add(n)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
	// Flags end at TIME, so a negative SECONDS is an argument.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newCmpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp A B",
		Short: "Compare two times of day, printing -1, 0 or 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := timeofday.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := timeofday.Parse(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.Compare(b))
			return nil
		},
	}
}
