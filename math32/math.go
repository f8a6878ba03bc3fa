// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is the float32 vector, quaternion, matrix and box
// package used by the arm scene. Scalar functions wrap chewxy/math32.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// Pi is the ratio of the circumference of a circle to its diameter.
const Pi = math.Pi

// Infinity is positive infinity, used for empty boxes.
var Infinity = float32(math.Inf(1))

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * (Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * (180 / Pi)
}

func Abs(x float32) float32 { return math32.Abs(x) }
func Acos(x float32) float32 { return math32.Acos(x) }
func Sqrt(x float32) float32 { return math32.Sqrt(x) }
func Round(x float32) float32 { return math32.Round(x) }
func Sincos(x float32) (sin, cos float32) { return math32.Sincos(x) }
func IsNaN(x float32) bool { return math32.IsNaN(x) }
func Max(x, y float32) float32 { return math32.Max(x, y) }
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Mod returns the remainder of x/y, with the sign of x.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Clamp restricts x to the closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	return min(max(x, a), b)
}

// IntMultiple returns the multiple of mod nearest to val.
func IntMultiple(val, mod float32) float32 {
	return Round(val/mod) * mod
}
