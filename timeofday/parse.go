// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses a time of day written as "15:04:05", "15:04", or as a
// bare integer count of seconds since midnight.
//
// The colon forms are range checked like New and fail with a
// *RangeError. The integer form wraps like FromSeconds, so "-10"
// is 23:59:50.
func Parse(s string) (Time, error) {
	if !strings.Contains(s, ":") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Time{}, syntaxError(s)
		}
		return FromSeconds(n), nil
	}

	fields := strings.Split(s, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return Time{}, syntaxError(s)
	}
	var hms [3]int
	for i, f := range fields {
		if len(f) == 0 || len(f) > 2 {
			return Time{}, syntaxError(s)
		}
		for j := 0; j < len(f); j++ {
			if f[j] < '0' || f[j] > '9' {
				return Time{}, syntaxError(s)
			}
		}
		hms[i], _ = strconv.Atoi(f)
	}
	return New(hms[0], hms[1], hms[2])
}

func syntaxError(s string) error {
	return fmt.Errorf("timeofday: parsing %q: %w", s, ErrSyntax)
}
