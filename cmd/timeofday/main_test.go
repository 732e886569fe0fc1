// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timeofday/go-timeofday/timeofday"
	"go.starlark.net/starlark"
)

// execute runs the root command with args and returns what it wrote
// to standard output and standard error.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommands(t *testing.T) {
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"now", "--at", "13:05:00", "-f", "%r"}, "01:05:00 PM\n"},
		{[]string{"--at", "7:08:09", "now"}, "07:08:09\n"},
		{[]string{"now", "--at", "0", "--format", "%-I %p"}, "0 AM\n"},
		{[]string{"format", "45296", "%-l:%M %P"}, "12:34 pm\n"},
		{[]string{"format", "09:05", "%k%%%R"}, " 9%09:05\n"},
		{[]string{"format", "--", "-1", "%T"}, "23:59:59\n"},
		{[]string{"add", "23:59:59", "2"}, "00:00:01\n"},
		{[]string{"add", "12:00", "-3600"}, "11:00:00\n"},
		{[]string{"sub", "00:00:01", "2"}, "23:59:59\n"},
		{[]string{"sub", "00:00", "-5"}, "00:00:05\n"},
		{[]string{"--at", "10:00", "add", "10:00", "5"}, "10:00:05\n"},
		{[]string{"add", "--at", "10:00", "10:00", "-5"}, "09:59:55\n"},
		{[]string{"add", "00:00:01", "9223372036854775807"}, "15:30:08\n"},
		{[]string{"sub", "00:00:01", "-9223372036854775808"}, "15:30:09\n"},
		{[]string{"format", "13:00", "[%-p|%p]"}, "[|PM]\n"},
		{[]string{"cmp", "10:00", "09:59:59"}, "1\n"},
		{[]string{"cmp", "09:59:59", "10:00"}, "-1\n"},
		{[]string{"cmp", "86400", "00:00"}, "0\n"},
		{[]string{"version"}, "dev\n"},
		{[]string{"--version"}, "dev\n"},
	} {
		got, _, err := execute(t, "", test.args...)
		if err != nil {
			t.Errorf("%q: %v", test.args, err)
			continue
		}
		if got != test.want {
			t.Errorf("%q printed %q, want %q", test.args, got, test.want)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	for _, test := range []struct {
		args    []string
		wantErr string
	}{
		{[]string{"format", "25:00", "%T"}, "hours must be between 0 and 23 (got 25)"},
		{[]string{"format", "noon", "%T"}, "invalid syntax"},
		{[]string{"format", "12:00"}, "accepts 2 arg(s), received 1"},
		{[]string{"add", "12:00", "soon"}, `invalid number of seconds "soon"`},
		{[]string{"cmp", "12:00", "12:60"}, "minutes must be between 0 and 59 (got 60)"},
		{[]string{"--at", "later", "now"}, "--at:"},
		{[]string{"run", "-c", "1", "x.star"}, "mutually exclusive"},
		{[]string{"nosuch"}, "unknown command"},
	} {
		_, _, err := execute(t, "", test.args...)
		if err == nil {
			t.Errorf("%q succeeded, want error containing %q", test.args, test.wantErr)
			continue
		}
		if !strings.Contains(err.Error(), test.wantErr) {
			t.Errorf("%q failed with %q, want error containing %q", test.args, err, test.wantErr)
		}
	}
}

func TestFormatOutOfRangeIsErrOutOfRange(t *testing.T) {
	_, _, err := execute(t, "", "format", "12:00:60", "%T")
	if !errors.Is(err, timeofday.ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
}

func TestRunProgram(t *testing.T) {
	got, _, err := execute(t, "",
		"--at", "23:59:30", "run", "-c",
		`print(timeofday.now() + 60)
print(timeofday.now().format("%r"))`)
	if err != nil {
		t.Fatal(err)
	}
	if want := "00:00:30\n11:59:30 PM\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunStdin(t *testing.T) {
	const src = `
load("timeofday", "timeofday")
hours = [timeofday.time(h, 0, 0) for h in (0, 12, 13)]
print("\n".join([h.format("%-I %p") for h in hours]))
`
	got, _, err := execute(t, src, "run")
	if err != nil {
		t.Fatal(err)
	}
	if want := "0 AM\n12 PM\n1 PM\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunTopLevelLoop(t *testing.T) {
	got, _, err := execute(t, "", "run", "--globalreassign", "-c",
		`for h in (0, 12, 13):
    print(timeofday.time(h, 0, 0).format("%-l %P"))`)
	if err != nil {
		t.Fatal(err)
	}
	if want := "0 am\n12 pm\n1 pm\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "shifts.star")
	script := filepath.Join(dir, "main.star")
	files := map[string]string{
		lib: `start = timeofday.strict(22, 0, 0)
length = 8 * timeofday.seconds_per_hour
`,
		script: `load("` + filepath.ToSlash(lib) + `", "start", "length")
end = start + length
print(end, end.is_am())
`,
	}
	for name, src := range files {
		if err := os.WriteFile(name, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, stderr, err := execute(t, "", "run", "--showenv", script)
	if err != nil {
		t.Fatal(err)
	}
	if want := "06:00:00 True\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !strings.Contains(stderr, "end = 06:00:00\n") {
		t.Errorf("--showenv output %q does not contain the end binding", stderr)
	}
}

func TestRunLoadedFileSharesClockAndOutput(t *testing.T) {
	lib := filepath.Join(t.TempDir(), "stamp.star")
	const src = `
n = timeofday.now()
print("lib", n)
`
	if err := os.WriteFile(lib, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got, _, err := execute(t, "", "--at", "03:04:05", "run", "-c",
		`load("`+filepath.ToSlash(lib)+`", "n")
print("main", timeofday.now(), n)`)
	if err != nil {
		t.Fatal(err)
	}
	if want := "lib 03:04:05\nmain 03:04:05 03:04:05\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddHelp(t *testing.T) {
	got, _, err := execute(t, "", "add", "--help")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "add TIME SECONDS") {
		t.Errorf("add --help printed %q", got)
	}
}

func TestRunEvalError(t *testing.T) {
	_, _, err := execute(t, "", "run", "-c", "timeofday.strict(24, 0, 0)")
	if _, ok := err.(*starlark.EvalError); !ok {
		t.Fatalf("err = %#v, want *starlark.EvalError", err)
	}
	if !strings.Contains(err.Error(), "hours must be between 0 and 23") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDoMainExitStatus(t *testing.T) {
	if got := doMain([]string{"version"}); got != 0 {
		t.Errorf("doMain(version) = %d, want 0", got)
	}
	if got := doMain([]string{"format", "24:00", "%T"}); got != 1 {
		t.Errorf("doMain(format 24:00) = %d, want 1", got)
	}
	if got := doMain([]string{"run", "-c", "1 // 0"}); got != 1 {
		t.Errorf("doMain(run 1 // 0) = %d, want 1", got)
	}
}
