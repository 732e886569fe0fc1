// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package starlarktimeofday

import (
	"fmt"
	"sort"

	"github.com/timeofday/go-timeofday/timeofday"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// TimeOfDay is a Starlark representation of a time of day.
type TimeOfDay timeofday.Time

var (
	_ starlark.Value      = TimeOfDay{}
	_ starlark.HasAttrs   = TimeOfDay{}
	_ starlark.HasBinary  = TimeOfDay{}
	_ starlark.Comparable = TimeOfDay{}
)

// String implements the Stringer interface.
func (t TimeOfDay) String() string { return timeofday.Time(t).String() }

// Type returns "timeofday".
func (t TimeOfDay) Type() string { return "timeofday" }

// Freeze is a no-op; TimeOfDay values are immutable.
func (t TimeOfDay) Freeze() {}

// Hash returns the number of seconds since midnight.
func (t TimeOfDay) Hash() (uint32, error) {
	return uint32(timeofday.Time(t).Seconds()), nil
}

// Truth reports true for every time of day, midnight included.
func (t TimeOfDay) Truth() starlark.Bool { return starlark.True }

// Attr gets a value for a string attribute, implementing dot expression support
// in starlark. required by starlark.HasAttrs interface.
func (t TimeOfDay) Attr(name string) (starlark.Value, error) {
	x := timeofday.Time(t)
	switch name {
	case "hour":
		return starlark.MakeInt(x.Hour()), nil
	case "minute":
		return starlark.MakeInt(x.Minute()), nil
	case "second":
		return starlark.MakeInt(x.Second()), nil
	case "seconds":
		return starlark.MakeInt(x.Seconds()), nil
	}
	return builtinAttr(t, name, timeOfDayMethods)
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (t TimeOfDay) AttrNames() []string {
	names := append(builtinAttrNames(timeOfDayMethods), "hour", "minute", "second", "seconds")
	sort.Strings(names)
	return names
}

// CompareSameType implements comparison of two TimeOfDay values. required by
// starlark.Comparable interface.
func (t TimeOfDay) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	x := timeofday.Time(t)
	y := timeofday.Time(yV.(TimeOfDay))
	return threeway(op, x.Compare(y)), nil
}

// Binary implements binary operators, which satisfies the starlark.HasBinary
// interface.
//
//	timeofday + int = timeofday
//	int + timeofday = timeofday
//	timeofday - int = timeofday
//	timeofday - timeofday = int
func (t TimeOfDay) Binary(op syntax.Token, yV starlark.Value, side starlark.Side) (starlark.Value, error) {
	x := timeofday.Time(t)

	switch op {
	case syntax.PLUS:
		switch y := yV.(type) {
		case starlark.Int:
			n, err := toInt("+", y)
			if err != nil {
				return nil, err
			}
			return TimeOfDay(x.Add(n)), nil
		case TimeOfDay:
			return nil, fmt.Errorf("cannot add %s to %s", t.Type(), yV.Type())
		}
	case syntax.MINUS:
		if side != starlark.Left {
			// int - timeofday is undefined
			return nil, nil
		}
		switch y := yV.(type) {
		case starlark.Int:
			n, err := toInt("-", y)
			if err != nil {
				return nil, err
			}
			return TimeOfDay(x.Sub(n)), nil
		case TimeOfDay:
			return starlark.MakeInt(x.Seconds() - timeofday.Time(y).Seconds()), nil
		}
	}

	return nil, nil
}
