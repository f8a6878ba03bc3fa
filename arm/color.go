// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arm

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is the name of the uniform color of the arm surfaces.
type Color string

const (
	Red   Color = "red"
	Blue  Color = "blue"
	Green Color = "green"
	Black Color = "black"
	White Color = "white"
)

// AllColors are the named arm colors, in control order.
var AllColors = []Color{Red, Blue, Green, Black, White}

// FallbackGray is the color used for any unrecognized color name.
var FallbackGray = color.RGBA{128, 128, 128, 255}

var colorTable = map[Color]color.RGBA{
	Red:   {255, 0, 0, 255},
	Blue:  {0, 0, 255, 255},
	Green: {0, 128, 0, 255},
	Black: {0, 0, 0, 255},
	White: {255, 255, 255, 255},
}

// RGBA returns the fixed RGB value of the color,
// or [FallbackGray] if it is not one of [AllColors].
func (c Color) RGBA() color.RGBA {
	if rgb, ok := colorTable[c]; ok {
		return rgb
	}
	return FallbackGray
}

// IsValid returns whether the color is one of [AllColors].
func (c Color) IsValid() bool {
	_, ok := colorTable[c]
	return ok
}

// ParseColor returns the named color matching s, ignoring case
// and surrounding space.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return c, fmt.Errorf("arm.ParseColor: unknown color %q, must be one of %v", s, AllColors)
	}
	return c, nil
}
