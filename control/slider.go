// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/armviz/arm"
)

// Slider is the angle control of one joint. It keeps its value
// inside the domain of the joint, clamping and snapping any input.
type Slider struct {

	// Joint is the joint the slider controls.
	Joint arm.Joints

	// Domain is the range and step of the slider value.
	Domain arm.Domain

	// Value is the current value, in degrees.
	Value float32

	// OnChange is called with the new value when it changes.
	OnChange func(j arm.Joints, deg float32)
}

// NewSlider returns a new slider for the given joint
// with the default domain of the joint and the given starting value.
func NewSlider(j arm.Joints, value float32) *Slider {
	d := arm.Domains[j]
	return &Slider{Joint: j, Domain: d, Value: d.Clamp(value)}
}

// SetValue sets the value, clamped and snapped to the domain,
// calling OnChange if the value changed. It returns whether
// the value changed.
func (s *Slider) SetValue(deg float32) bool {
	v := s.Domain.Clamp(deg)
	if !s.Domain.Contains(deg) {
		slog.Warn("control: angle outside of joint domain", "joint", s.Joint, "value", deg, "clamped", v)
	}
	if v == s.Value {
		return false
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(s.Joint, v)
	}
	return true
}

// ColorChoice is the color control of the arm, limited
// to the named arm colors.
type ColorChoice struct {

	// Options are the colors that can be chosen.
	Options []arm.Color

	// Value is the current color.
	Value arm.Color

	// OnChange is called with the new color when it changes.
	OnChange func(c arm.Color)
}

// NewColorChoice returns a new color choice among [arm.AllColors]
// starting at the given color.
func NewColorChoice(c arm.Color) *ColorChoice {
	return &ColorChoice{Options: arm.AllColors, Value: c}
}

// SetValue sets the color, calling OnChange if it changed.
// Colors that are not one of the options are rejected with an error.
func (cc *ColorChoice) SetValue(c arm.Color) (bool, error) {
	if !cc.IsOption(c) {
		slog.Warn("control: rejected color", "color", c)
		return false, fmt.Errorf("control: color %q is not one of %v", c, cc.Options)
	}
	if c == cc.Value {
		return false, nil
	}
	cc.Value = c
	if cc.OnChange != nil {
		cc.OnChange(c)
	}
	return true, nil
}

// IsOption returns whether c is one of the options.
func (cc *ColorChoice) IsOption(c arm.Color) bool {
	return slices.Contains(cc.Options, c)
}
