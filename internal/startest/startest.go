// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package startest defines utilities for testing Starlark programs.
//
// Clients can call LoadAssertModule to load a module named assert
// whose functions check values and report failures to the current
// Go test. Clients must call SetReporter(thread, t) before use.
//
//	load("assert.star", "assert")
//	assert.eq(timeofday.at(60).minute, 1)
//	assert.fails(lambda: timeofday.strict(24, 0, 0), "hours must be")
package startest // import "github.com/timeofday/go-timeofday/internal/startest"

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"
)

// ModuleName is the name under which the assert module is loaded.
const ModuleName = "assert.star"

const localKey = "Reporter"

// A Reporter is a value to which errors may be reported.
// It is satisfied by *testing.T.
type Reporter interface {
	Error(args ...interface{})
}

// SetReporter associates an error reporter (such as a testing.T in
// a Go test) with the Starlark thread so that Starlark programs may
// report errors to it.
func SetReporter(thread *starlark.Thread, r Reporter) {
	thread.SetLocal(localKey, r)
}

// GetReporter returns the Starlark thread's error reporter.
// It must be preceded by a call to SetReporter.
func GetReporter(thread *starlark.Thread) Reporter {
	r, ok := thread.Local(localKey).(Reporter)
	if !ok {
		panic("internal error: startest.SetReporter was not called")
	}
	return r
}

var (
	once   sync.Once
	assert starlark.StringDict
)

// LoadAssertModule returns the globals of the assert module.
// It is concurrency-safe and idempotent.
func LoadAssertModule() (starlark.StringDict, error) {
	once.Do(func() {
		members := starlark.StringDict{}
		for name, fn := range map[string]func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error){
			"eq":       eq,
			"ne":       ne,
			"lt":       lt,
			"true":     true_,
			"contains": contains,
			"fails":    fails,
		} {
			members[name] = starlark.NewBuiltin(name, fn)
		}
		mod := &starlarkstruct.Module{Name: "assert", Members: members}
		mod.Freeze()
		assert = starlark.StringDict{"assert": mod}
	})
	return assert, nil
}

// report reports a failure to the thread's reporter, prefixed by the
// Starlark call stack of the failing assertion.
func report(thread *starlark.Thread, format string, args ...interface{}) {
	buf := new(strings.Builder)
	stk := thread.CallStack()
	stk.Pop()
	fmt.Fprintf(buf, "%sError: ", stk)
	fmt.Fprintf(buf, format, args...)
	GetReporter(thread).Error(buf.String())
}

// eq(x, y) reports an error unless x == y.
func eq(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	ok, err := starlark.Equal(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if !ok {
		report(thread, "%s != %s", x, y)
	}
	return starlark.None, nil
}

// ne(x, y) reports an error if x == y.
func ne(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	ok, err := starlark.Equal(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if ok {
		report(thread, "%s == %s", x, y)
	}
	return starlark.None, nil
}

// lt(x, y) reports an error unless x < y.
func lt(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	ok, err := starlark.Compare(syntax.LT, x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if !ok {
		report(thread, "%s is not less than %s", x, y)
	}
	return starlark.None, nil
}

// true(cond, msg="assertion failed") reports msg unless cond is true.
func true_(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var cond starlark.Value
	msg := "assertion failed"
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cond", &cond, "msg?", &msg); err != nil {
		return nil, err
	}
	if !cond.Truth() {
		report(thread, "%s", msg)
	}
	return starlark.None, nil
}

// contains(x, y) reports an error unless y in x.
func contains(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	in, err := starlark.Binary(syntax.IN, y, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if !in.Truth() {
		report(thread, "%s does not contain %s", x, y)
	}
	return starlark.None, nil
}

// fails(fn, pattern) calls fn and reports an error unless it fails
// with a message matching the regular expression pattern.
func fails(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var fn starlark.Callable
	var pattern string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &fn, &pattern); err != nil {
		return nil, err
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	_, err = starlark.Call(thread, fn, nil, nil)
	switch {
	case err == nil:
		report(thread, "evaluation succeeded unexpectedly (want error matching %q)", pattern)
	case !rx.MatchString(err.Error()):
		report(thread, "regular expression (%s) did not match error (%s)", pattern, err)
	}
	return starlark.None, nil
}
