// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarktimeofday

import (
	"sort"

	"github.com/timeofday/go-timeofday/timeofday"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var timeOfDayMethods = map[string]builtinMethod{
	"format":   timeOfDayFormat,
	"succ":     timeOfDaySucc,
	"add":      timeOfDayAdd,
	"sub":      timeOfDaySub,
	"to_tuple": timeOfDayToTuple,
	"to_float": timeOfDayToFloat,
	"to_int":   timeOfDayToInt,
	"is_am":    timeOfDayIsAM,
	"is_pm":    timeOfDayIsPM,
}

func timeOfDayFormat(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var layout string
	if err := starlark.UnpackArgs(fnname, args, kwargs, "layout", &layout); err != nil {
		return nil, err
	}
	recv := timeofday.Time(recV.(TimeOfDay))
	return starlark.String(recv.Format(layout)), nil
}

func timeOfDaySucc(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return TimeOfDay(timeofday.Time(recV.(TimeOfDay)).Succ()), nil
}

func timeOfDayAdd(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seconds starlark.Int
	if err := starlark.UnpackArgs(fnname, args, kwargs, "seconds", &seconds); err != nil {
		return nil, err
	}
	n, err := toInt(fnname, seconds)
	if err != nil {
		return nil, err
	}
	return TimeOfDay(timeofday.Time(recV.(TimeOfDay)).Add(n)), nil
}

func timeOfDaySub(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var seconds starlark.Int
	if err := starlark.UnpackArgs(fnname, args, kwargs, "seconds", &seconds); err != nil {
		return nil, err
	}
	n, err := toInt(fnname, seconds)
	if err != nil {
		return nil, err
	}
	return TimeOfDay(timeofday.Time(recV.(TimeOfDay)).Sub(n)), nil
}

func timeOfDayToTuple(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	h, m, s := timeofday.Time(recV.(TimeOfDay)).Clock()
	return starlark.Tuple{starlark.MakeInt(h), starlark.MakeInt(m), starlark.MakeInt(s)}, nil
}

func timeOfDayToFloat(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.Float(timeofday.Time(recV.(TimeOfDay)).Float64()), nil
}

func timeOfDayToInt(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.MakeInt(timeofday.Time(recV.(TimeOfDay)).Seconds()), nil
}

func timeOfDayIsAM(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.Bool(timeofday.Time(recV.(TimeOfDay)).IsAM()), nil
}

func timeOfDayIsPM(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	return starlark.Bool(timeofday.Time(recV.(TimeOfDay)).IsPM()), nil
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// threeway interprets a three-way comparison value cmp (-1, 0, +1)
// as a boolean comparison (e.g. x < y).
func threeway(op syntax.Token, cmp int) bool {
	switch op {
	case syntax.EQL:
		return cmp == 0
	case syntax.NEQ:
		return cmp != 0
	case syntax.LE:
		return cmp <= 0
	case syntax.LT:
		return cmp < 0
	case syntax.GE:
		return cmp >= 0
	case syntax.GT:
		return cmp > 0
	}
	panic(op)
}
