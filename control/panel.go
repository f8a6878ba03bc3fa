// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package control provides the control surface of the arm: a slider per
// joint and a color choice, gathered in a [Panel] that owns the current
// pose and color, plus the websocket [Server] and pose file [Watcher]
// feeds that drive the panel from outside of the render loop.
package control

import (
	"fmt"

	"cogentcore.org/armviz/arm"
)

// State is a snapshot of the pose and color of a [Panel].
type State struct {
	Pose  arm.Angles `toml:"pose" yaml:"pose" json:"pose"`
	Color arm.Color  `toml:"color" yaml:"color" json:"color"`
}

// Panel is the single owner of the current pose and color.
// All of its methods must be called on the render loop.
type Panel struct {

	// Sliders are the angle controls of each joint.
	Sliders [arm.JointsN]*Slider

	// Colors is the color control.
	Colors *ColorChoice

	// OnAngleChange is called when the angle of a joint changes.
	OnAngleChange func(j arm.Joints, deg float32)

	// OnColorChange is called when the color changes.
	OnColorChange func(c arm.Color)
}

// NewPanel returns a new panel at [arm.HomeAngles] in [arm.Red].
func NewPanel() *Panel {
	return NewPanelAt(State{Pose: arm.HomeAngles, Color: arm.Red})
}

// NewPanelAt returns a new panel at the given state. An invalid
// color falls back to [arm.Red], and angles are clamped to their domains.
func NewPanelAt(st State) *Panel {
	p := &Panel{}
	for j := range arm.JointsN {
		s := NewSlider(j, st.Pose.Get(j))
		s.OnChange = p.angleChanged
		p.Sliders[j] = s
	}
	if !st.Color.IsValid() {
		st.Color = arm.Red
	}
	p.Colors = NewColorChoice(st.Color)
	p.Colors.OnChange = p.colorChanged
	return p
}

func (p *Panel) angleChanged(j arm.Joints, deg float32) {
	if p.OnAngleChange != nil {
		p.OnAngleChange(j, deg)
	}
}

func (p *Panel) colorChanged(c arm.Color) {
	if p.OnColorChange != nil {
		p.OnColorChange(c)
	}
}

// Angles returns the current joint angles.
func (p *Panel) Angles() arm.Angles {
	var a arm.Angles
	for j, s := range p.Sliders {
		a.Set(arm.Joints(j), s.Value)
	}
	return a
}

// Color returns the current color.
func (p *Panel) Color() arm.Color {
	return p.Colors.Value
}

// Snapshot returns the current state.
func (p *Panel) Snapshot() State {
	return State{Pose: p.Angles(), Color: p.Color()}
}

// SetAngle sets the angle of the given joint, clamped to its domain,
// and returns whether it changed.
func (p *Panel) SetAngle(j arm.Joints, deg float32) (bool, error) {
	if !j.IsValid() {
		return false, fmt.Errorf("control: invalid joint %v", j)
	}
	return p.Sliders[j].SetValue(deg), nil
}

// SetPose sets all of the joint angles, and returns whether any changed.
// OnAngleChange is called once for each joint that changed.
func (p *Panel) SetPose(a arm.Angles) bool {
	changed := false
	for j, s := range p.Sliders {
		if s.SetValue(a.Get(arm.Joints(j))) {
			changed = true
		}
	}
	return changed
}

// SetColor sets the color, and returns whether it changed.
// Colors other than the named arm colors are rejected.
func (p *Panel) SetColor(c arm.Color) (bool, error) {
	return p.Colors.SetValue(c)
}

// SetState sets the pose and color.
func (p *Panel) SetState(st State) error {
	p.SetPose(st.Pose)
	_, err := p.SetColor(st.Color)
	return err
}

// Message is a control message, as sent to a [Server].
// Any combination of the fields may be set, and they are applied
// in the order pose, joint, color. An empty message changes nothing.
type Message struct {

	// Pose sets all of the joint angles.
	Pose *arm.Angles `json:"pose,omitempty"`

	// Joint is the name of a joint to set to Value.
	Joint string `json:"joint,omitempty"`

	// Value is the angle for Joint, in degrees.
	Value *float32 `json:"value,omitempty"`

	// Color is the name of the color to set.
	Color string `json:"color,omitempty"`
}

// Apply applies the given message. If part of the message is
// invalid, the valid parts before it are still applied.
func (p *Panel) Apply(m Message) error {
	if m.Pose != nil {
		p.SetPose(*m.Pose)
	}
	if m.Joint != "" || m.Value != nil {
		if m.Joint == "" || m.Value == nil {
			return fmt.Errorf("control: joint and value must be set together")
		}
		j, err := arm.ParseJoint(m.Joint)
		if err != nil {
			return err
		}
		p.SetAngle(j, *m.Value)
	}
	if m.Color != "" {
		c, err := arm.ParseColor(m.Color)
		if err != nil {
			return err
		}
		if _, err := p.SetColor(c); err != nil {
			return err
		}
	}
	return nil
}
