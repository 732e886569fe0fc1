// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeofday_test

import (
	"testing"

	"github.com/timeofday/go-timeofday/timeofday"
)

func TestFormat(t *testing.T) {
	midnight := timeofday.FromComponents(0, 0, 0)
	early := timeofday.FromComponents(1, 3, 56)
	morning := timeofday.FromComponents(8, 5, 9)
	noon := timeofday.FromComponents(12, 34, 56)
	afternoon := timeofday.FromComponents(13, 0, 0)
	late := timeofday.FromComponents(23, 59, 59)

	for _, test := range []struct {
		t      timeofday.Time
		layout string
		want   string
	}{
		// 24-hour clock
		{morning, "%H", "08"},
		{morning, "%k", " 8"},
		{morning, "%-H", "8"},
		{morning, "%-k", "8"},
		{late, "%H", "23"},
		{late, "%k", "23"},
		{late, "%-H", "23"},
		{midnight, "%H", "00"},
		{midnight, "%k", " 0"},
		{midnight, "%-H", "0"},

		// 12-hour clock
		{afternoon, "%I", "01"},
		{afternoon, "%l", " 1"},
		{afternoon, "%-I", "1"},
		{afternoon, "%-l", "1"},
		{late, "%I", "11"},
		{noon, "%I", "12"},
		{noon, "%l", "12"},
		{midnight, "%I", "00"},
		{midnight, "%l", " 0"},
		{midnight, "%-I", "0"},

		// meridian
		{afternoon, "%p", "PM"},
		{afternoon, "%P", "pm"},
		{noon, "%p", "PM"},
		{midnight, "%p", "AM"},
		{midnight, "%P", "am"},
		{timeofday.FromComponents(11, 59, 59), "%p", "AM"},

		// minutes and seconds
		{morning, "%M", "05"},
		{morning, "%-M", "5"},
		{morning, "%S", "09"},
		{morning, "%-S", "9"},
		{late, "%M:%S", "59:59"},

		// literals
		{morning, "%n", "\n"},
		{morning, "%t", "\t"},
		{morning, "%%", "%"},
		{morning, "a%nb%tc%%d", "a\nb\tc%d"},

		// combinations
		{timeofday.FromComponents(1, 0, 12), "%r", "01:00:12 AM"},
		{noon, "%r", "12:34:56 PM"},
		{midnight, "%r", "00:00:00 AM"},
		{morning, "%R", "08:05"},
		{morning, "%T", "08:05:09"},
		{morning, "%X", "08:05:09"},
		{late, "%T and %R", "23:59:59 and 23:59"},
		{early, "The time is %-l:%M:%S %P.", "The time is 1:03:56 am."},

		// pass-through
		{morning, "", ""},
		{morning, "no directives", "no directives"},
		{morning, "%Q", "%Q"},
		{morning, "%-Q", "%-Q"},
		{morning, "%Y-%m-%d", "%Y-%m-%d"},
		{morning, "%", "%"},
		{morning, "100%", "100%"},
		{morning, "%-", "%-"},
		{morning, "%-T", "%-T"},
		{morning, "%%H", "%H"},
		{morning, "%%%H", "%08"},

		// combinations expand before literal percents are resolved
		{noon, "%%T", "%H:34:56"},

		// the '-' flag erases non-numeric directives
		{afternoon, "%-p", ""},
		{afternoon, "%-P", ""},
		{morning, "%-n%-t%-%", ""},
		{afternoon, "[%-p|%p]", "[|PM]"},
		{morning, "%-l%-P", "8"},

		// non-ASCII text is copied untouched
		{morning, "é %H ü", "é 08 ü"},
	} {
		if got := test.t.Format(test.layout); got != test.want {
			t.Errorf("%v.Format(%q) = %q, want %q", test.t, test.layout, got, test.want)
		}
	}
}

func TestFormatTIsString(t *testing.T) {
	for s := 0; s < timeofday.SecondsPerDay; s += 997 {
		x := timeofday.FromSeconds(s)
		if x.Format("%T") != x.String() || x.Format("%X") != x.String() {
			t.Errorf("%d: Format(%%T) = %q, String() = %q", s, x.Format("%T"), x.String())
		}
		if got, want := x.Format("%T"), x.Format("%H:%M:%S"); got != want {
			t.Errorf("%d: Format(%%T) = %q, want %q", s, got, want)
		}
	}
}

func TestFormatEveryHour(t *testing.T) {
	want12 := []string{
		"00", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11",
		"12", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11",
	}
	for h := 0; h < 24; h++ {
		x := timeofday.FromComponents(h, 0, 0)
		if got := x.Format("%I"); got != want12[h] {
			t.Errorf("hour %d: %%I = %q, want %q", h, got, want12[h])
		}
		wantMeridian := "AM"
		if h >= 12 {
			wantMeridian = "PM"
		}
		if got := x.Format("%p"); got != wantMeridian {
			t.Errorf("hour %d: %%p = %q, want %q", h, got, wantMeridian)
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	x := timeofday.FromComponents(13, 24, 56)
	for i := 0; i < b.N; i++ {
		_ = x.Format("%r, %-k:%M on a %P")
	}
}
