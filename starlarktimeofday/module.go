// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starlarktimeofday exposes times of day to Starlark programs.
//
//	timeofday = module(
//	   at,
//	   time,
//	   strict,
//	   parse,
//	   now,
//	   midnight,
//	   seconds_per_minute,
//	   seconds_per_hour,
//	   seconds_per_day,
//	)
//
// def at(seconds):
//
//	Returns the time of day that many seconds after midnight.
//	Negative and oversized counts wrap around the day.
//
// def time(seconds) / time(hour, minute, second):
//
//	Called with one argument, the same as at. Called with three, combines
//	the components without range checking, so time(24, 0, 0) is midnight.
//	Any other number of arguments is an error.
//
// def strict(hour, minute, second):
//
//	Like time(hour, minute, second), but fails unless hour is in [0, 23]
//	and minute and second are in [0, 59].
//
// def parse(string):
//
//	Parses "15:04:05", "15:04" or an integer count of seconds.
//
// def now():
//
//	Returns the current time of day from the thread's clock
//	(see SetClock), or from NowFunc if the thread has none.
//
// Values of type "timeofday" have fields hour, minute, second and
// seconds, and methods format, succ, add, sub, to_tuple, to_float,
// to_int, is_am and is_pm. They support the operators
//
//	timeofday + int  = timeofday
//	int + timeofday  = timeofday
//	timeofday - int  = timeofday
//	timeofday - timeofday = int (difference in seconds)
//	timeofday == timeofday, timeofday < timeofday, ...
package starlarktimeofday // import "github.com/timeofday/go-timeofday/starlarktimeofday"

import (
	"fmt"

	"github.com/timeofday/go-timeofday/timeofday"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "timeofday"

// Module timeofday is a Starlark module of time-of-day functions.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"at":     starlark.NewBuiltin("at", at),
		"time":   starlark.NewBuiltin("time", newTime),
		"strict": starlark.NewBuiltin("strict", strict),
		"parse":  starlark.NewBuiltin("parse", parse),
		"now":    starlark.NewBuiltin("now", now),

		"midnight": TimeOfDay{},

		"seconds_per_minute": starlark.MakeInt(timeofday.SecondsPerMinute),
		"seconds_per_hour":   starlark.MakeInt(timeofday.SecondsPerHour),
		"seconds_per_day":    starlark.MakeInt(timeofday.SecondsPerDay),
	},
}

// LoadModule loads the timeofday module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

// NowFunc returns the current time of day for threads without a clock
// of their own. It may be replaced, for example by applications that
// require their Starlark scripts to be fully deterministic.
var NowFunc = func() timeofday.Time { return timeofday.Now(timeofday.SystemClock) }

const clockKey = "timeofday.clock"

// SetClock sets the clock read by now() on the given thread,
// overriding NowFunc.
func SetClock(thread *starlark.Thread, c timeofday.Clock) {
	thread.SetLocal(clockKey, c)
}

// ClockOf returns the clock set on thread by SetClock, if any.
func ClockOf(thread *starlark.Thread) (timeofday.Clock, bool) {
	c, ok := thread.Local(clockKey).(timeofday.Clock)
	return c, ok
}

func now(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	if c, ok := ClockOf(thread); ok {
		return TimeOfDay(timeofday.Now(c)), nil
	}
	if NowFunc == nil {
		return nil, fmt.Errorf("%s: NowFunc is not set", b.Name())
	}
	return TimeOfDay(NowFunc()), nil
}

func at(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seconds starlark.Int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &seconds); err != nil {
		return nil, err
	}
	s, err := toInt(b.Name(), seconds)
	if err != nil {
		return nil, err
	}
	return TimeOfDay(timeofday.FromSeconds(s)), nil
}

func newTime(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	vals := make([]int, len(args))
	for i, arg := range args {
		x, ok := arg.(starlark.Int)
		if !ok {
			return nil, fmt.Errorf("%s: for parameter %d: got %s, want int", b.Name(), i+1, arg.Type())
		}
		v, err := toInt(b.Name(), x)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	t, err := timeofday.Make(vals...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return TimeOfDay(t), nil
}

func strict(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var h, m, s starlark.Int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "hour", &h, "minute", &m, "second", &s); err != nil {
		return nil, err
	}
	var hms [3]int
	for i, x := range []starlark.Int{h, m, s} {
		v, err := toInt(b.Name(), x)
		if err != nil {
			return nil, err
		}
		hms[i] = v
	}
	t, err := timeofday.New(hms[0], hms[1], hms[2])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return TimeOfDay(t), nil
}

func parse(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
		return nil, err
	}
	t, err := timeofday.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return TimeOfDay(t), nil
}

func toInt(fnname string, x starlark.Int) (int, error) {
	i, ok := x.Int64()
	if !ok || int64(int(i)) != i {
		return 0, fmt.Errorf("%s: int value out of range (want signed 64-bit value)", fnname)
	}
	return int(i), nil
}
