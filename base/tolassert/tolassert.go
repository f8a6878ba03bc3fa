// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// with tolerance (in other words, it checks whether numbers are close to each other).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// DefaultTol is the default tolerance used by [Equal].
const DefaultTol = 1e-5

// Float is the constraint for the numbers that can be compared.
type Float interface {
	~float32 | ~float64
}

// Equal asserts that the given two numbers are within [DefaultTol]
// of each other (in other words, it checks whether they are close).
func Equal[T Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are within the given tolerance
// of each other (in other words, it checks whether they are close).
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}
