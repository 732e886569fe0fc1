// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeofday

import "time"

// A Clock reports the current wall-clock time of day.
type Clock interface {
	// Now returns the current local hour, minute and second.
	Now() (hour, min, sec int)
}

type systemClock struct{}

func (systemClock) Now() (hour, min, sec int) {
	return time.Now().Clock()
}

// SystemClock reads the host's local time.
var SystemClock Clock = systemClock{}

// FixedClock always reports the same time of day (itself).
type FixedClock Time

func (c FixedClock) Now() (hour, min, sec int) {
	return Time(c).Clock()
}

// ClockFunc adapts an ordinary function to the Clock interface.
type ClockFunc func() (hour, min, sec int)

func (f ClockFunc) Now() (hour, min, sec int) { return f() }

// FromTime returns the time of day of t in t's location.
// Sub-second precision is discarded.
func FromTime(t time.Time) Time {
	return FromComponents(t.Clock())
}
