// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeofday

import (
	"strconv"
	"strings"
)

// Format returns a textual representation of t according to layout.
//
// A directive is a '%' character, an optional flag and a conversion
// character:
//
//	%<flag><conversion>
//
// Flag:
//
//	-   don't pad a numerical output; with %P, %p, %n, %t or %%
//	    the directive renders as the empty string
//
// Directives:
//
//	%H  hour of the day, 24-hour clock, zero-padded (00..23)
//	%k  hour of the day, 24-hour clock, blank-padded ( 0..23)
//	%I  hour of the day, 12-hour clock, zero-padded (00..12)
//	%l  hour of the day, 12-hour clock, blank-padded ( 0..12)
//	%P  meridian indicator, lowercase ("am" or "pm")
//	%p  meridian indicator, uppercase ("AM" or "PM")
//	%M  minute of the hour (00..59)
//	%S  second of the minute (00..59)
//	%n  newline
//	%t  tab
//	%%  a literal '%'
//
// Combinations, expanded before any other directive:
//
//	%r  12-hour time (%I:%M:%S %p)
//	%R  24-hour time (%H:%M)
//	%T  24-hour time (%H:%M:%S)
//	%X  same as %T
//
// The 12-hour clock maps hours 13 to 23 onto 1 to 11 and leaves the
// other hours alone, so midnight is hour 0 and noon is hour 12.
// Any other character, including an unknown directive, is copied
// to the output unchanged.
func (t Time) Format(layout string) string {
	return format(t, expand(layout))
}

// combinations maps a combination conversion character to its expansion.
var combinations = [256]string{
	'r': "%I:%M:%S %p",
	'R': "%H:%M",
	'T': "%H:%M:%S",
	'X': "%H:%M:%S",
}

// expand replaces every combination directive in layout.
// Expansions are not themselves rescanned for combinations.
func expand(layout string) string {
	if !strings.Contains(layout, "%") {
		return layout
	}
	var b strings.Builder
	b.Grow(len(layout) * 2)
	for i := 0; i < len(layout); i++ {
		if layout[i] == '%' && i+1 < len(layout) {
			if exp := combinations[layout[i+1]]; exp != "" {
				b.WriteString(exp)
				i++
				continue
			}
		}
		b.WriteByte(layout[i])
	}
	return b.String()
}

// padding styles for numeric directives
const (
	padZero = iota
	padBlank
	padNone
)

// format substitutes the primitive directives of an expanded layout.
func format(t Time, layout string) string {
	var b strings.Builder
	b.Grow(len(layout) + 8)
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		unpadded := false
		if j < len(layout) && layout[j] == '-' {
			unpadded = true
			j++
		}
		if j >= len(layout) || !directive(t, &b, layout[j], unpadded) {
			// not a directive: emit the '%' and rescan from the next byte
			b.WriteByte('%')
			continue
		}
		i = j
	}
	return b.String()
}

// directive appends the rendering of conversion character c to b and
// reports whether c is a known conversion.
func directive(t Time, b *strings.Builder, c byte, unpadded bool) bool {
	switch c {
	case 'H':
		number(b, t.hour, pick(unpadded, padZero))
	case 'k':
		number(b, t.hour, pick(unpadded, padBlank))
	case 'I':
		number(b, t.hour12(), pick(unpadded, padZero))
	case 'l':
		number(b, t.hour12(), pick(unpadded, padBlank))
	case 'M':
		number(b, t.min, pick(unpadded, padZero))
	case 'S':
		number(b, t.sec, pick(unpadded, padZero))
	case 'P', 'p', 'n', 't', '%':
		// Flagged, these have no rendering and vanish.
		if !unpadded {
			b.WriteString(literal(t, c))
		}
	default:
		return false
	}
	return true
}

// literal returns the text of a non-numeric conversion.
func literal(t Time, c byte) string {
	switch c {
	case 'P':
		if t.IsAM() {
			return "am"
		}
		return "pm"
	case 'p':
		if t.IsAM() {
			return "AM"
		}
		return "PM"
	case 'n':
		return "\n"
	case 't':
		return "\t"
	}
	return "%"
}

func pick(unpadded bool, pad int) int {
	if unpadded {
		return padNone
	}
	return pad
}

// number appends n, which is never more than two digits wide.
func number(b *strings.Builder, n, pad int) {
	if n < 10 {
		switch pad {
		case padZero:
			b.WriteByte('0')
		case padBlank:
			b.WriteByte(' ')
		}
	}
	b.WriteString(strconv.Itoa(n))
}

// hour12 returns the hour on a 12-hour clock.
// Hour 0 stays 0.
func (t Time) hour12() int {
	if t.hour > 12 {
		return t.hour - 12
	}
	return t.hour
}
