// Copyright 2024 The TimeOfDay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeofday

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by every *RangeError.
	ErrOutOfRange = errors.New("out of range")

	// ErrArgCount is returned by Make when given neither one nor three values.
	ErrArgCount = errors.New("wrong number of arguments")

	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("invalid syntax")
)

// A RangeError records a time component that lies outside its bounds.
type RangeError struct {
	Field    string // "hours", "minutes" or "seconds"
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("timeofday: %s must be between %d and %d (got %d)", e.Field, e.Min, e.Max, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func checkRange(field string, v, max int) error {
	if v < 0 || v > max {
		return &RangeError{Field: field, Value: v, Min: 0, Max: max}
	}
	return nil
}

func argCountError(n int) error {
	return fmt.Errorf("timeofday: %w (%d for 1 or 3)", ErrArgCount, n)
}
