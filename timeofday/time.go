// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeofday provides a time of day without a date or location.
//
// A Time is a count of seconds since midnight in the range [0, 86400).
// Arithmetic wraps around midnight in both directions, and values are
// ordered by their second count, so 00:00:00 is the smallest value and
// 23:59:59 the largest.
//
// Times are rendered with Format, which understands the time-related
// subset of strftime(3) directives.
package timeofday // import "github.com/timeofday/go-timeofday/timeofday"

const (
	SecondsPerMinute = 60
	SecondsPerHour   = 60 * SecondsPerMinute
	SecondsPerDay    = 24 * SecondsPerHour
)

// A Time is a time of day with second precision.
//
// Time values are immutable and may be compared with ==.
// The zero value is midnight.
type Time struct {
	secs int

	// derived from secs at construction
	hour, min, sec int
}

// FromSeconds returns the time of day that is the given number of
// seconds after midnight. Any value is accepted; it is reduced modulo
// SecondsPerDay so that negative counts land before midnight.
func FromSeconds(seconds int) Time {
	s := seconds % SecondsPerDay
	if s < 0 {
		s += SecondsPerDay
	}
	return Time{
		secs: s,
		hour: s / SecondsPerHour,
		min:  s % SecondsPerHour / SecondsPerMinute,
		sec:  s % SecondsPerMinute,
	}
}

// FromComponents returns the time hour*3600 + min*60 + sec seconds
// after midnight. The components are not range checked: FromComponents(24, 0, 0)
// is midnight and FromComponents(0, 0, -1) is 23:59:59.
// Use New to reject out of range components.
func FromComponents(hour, min, sec int) Time {
	// Reduce each component first so that the sum cannot overflow.
	const hoursPerDay, minutesPerDay = SecondsPerDay / SecondsPerHour, SecondsPerDay / SecondsPerMinute
	return FromSeconds(hour%hoursPerDay*SecondsPerHour + min%minutesPerDay*SecondsPerMinute + sec%SecondsPerDay)
}

// New returns the time of day with the given components.
// It returns a *RangeError if hour is not in [0, 23] or
// min or sec are not in [0, 59].
func New(hour, min, sec int) (Time, error) {
	if err := checkRange("hours", hour, 23); err != nil {
		return Time{}, err
	}
	if err := checkRange("minutes", min, 59); err != nil {
		return Time{}, err
	}
	if err := checkRange("seconds", sec, 59); err != nil {
		return Time{}, err
	}
	return FromComponents(hour, min, sec), nil
}

// Make builds a Time from either a single count of seconds since
// midnight or an hour, minute, second triple, as FromSeconds and
// FromComponents do. It is meant for callers that receive a variable
// number of values, such as script bindings; Go code should call the
// named constructors directly.
func Make(args ...int) (Time, error) {
	switch len(args) {
	case 1:
		return FromSeconds(args[0]), nil
	case 3:
		return FromComponents(args[0], args[1], args[2]), nil
	}
	return Time{}, argCountError(len(args))
}

// Now returns the current time of day as reported by c.
func Now(c Clock) Time {
	return FromComponents(c.Now())
}

// Add returns t advanced by the given number of seconds, wrapping
// past midnight. A negative count moves backwards.
func (t Time) Add(seconds int) Time {
	return FromSeconds(t.secs + seconds%SecondsPerDay)
}

// Sub returns t moved back by the given number of seconds.
// t.Sub(n) is equivalent to t.Add(-n), including for math.MinInt.
func (t Time) Sub(seconds int) Time {
	return FromSeconds(t.secs - seconds%SecondsPerDay)
}

// Succ returns the time one second after t.
func (t Time) Succ() Time {
	return t.Add(1)
}

// Equal reports whether t and u are the same time of day.
func (t Time) Equal(u Time) bool { return t.secs == u.secs }

// Before reports whether t is earlier in the day than u.
func (t Time) Before(u Time) bool { return t.secs < u.secs }

// After reports whether t is later in the day than u.
func (t Time) After(u Time) bool { return t.secs > u.secs }

// Compare returns -1 if t is before u, +1 if t is after u, and 0 if
// they are equal. The order does not wrap: midnight precedes every
// other time of day.
func (t Time) Compare(u Time) int {
	switch {
	case t.secs < u.secs:
		return -1
	case t.secs > u.secs:
		return +1
	}
	return 0
}

// Hour returns the hour of the day, in the range [0, 23].
func (t Time) Hour() int { return t.hour }

// Minute returns the minute of the hour, in the range [0, 59].
func (t Time) Minute() int { return t.min }

// Second returns the second of the minute, in the range [0, 59].
func (t Time) Second() int { return t.sec }

// Clock returns the hour, minute and second of t.
func (t Time) Clock() (hour, min, sec int) {
	return t.hour, t.min, t.sec
}

// Seconds returns the number of seconds since midnight.
func (t Time) Seconds() int { return t.secs }

// Float64 returns the number of seconds since midnight as a float64.
func (t Time) Float64() float64 { return float64(t.secs) }

// IsAM reports whether t is before noon.
func (t Time) IsAM() bool { return t.hour < 12 }

// IsPM reports whether t is at or after noon.
func (t Time) IsPM() bool { return !t.IsAM() }

// String returns t in the form "15:04:05".
// It is the same as t.Format("%T").
func (t Time) String() string {
	return t.Format("%T")
}
