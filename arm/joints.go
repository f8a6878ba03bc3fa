// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arm provides the kinematic model of a five joint articulated arm
// with a pipette end effector: joint angles and their domains, the fixed
// segment geometry, the chain of joint frames, and the arm color table.
package arm

import (
	"fmt"
	"strings"

	"cogentcore.org/armviz/math32"
)

// Joints are the five rotational joints of the arm, from the base outward.
type Joints int32

const (
	// J0 is the base yaw joint, rotating about the vertical Y axis.
	J0 Joints = iota

	// J1 is the shoulder pitch joint.
	J1

	// J2 is the elbow pitch joint.
	J2

	// J3 is the wrist pitch joint.
	J3

	// J4 is the pipette tilt joint.
	J4

	// JointsN is the number of joints.
	JointsN
)

var jointNames = [JointsN]string{"j0", "j1", "j2", "j3", "j4"}

// String returns the control name of the joint: j0 through j4.
func (j Joints) String() string {
	if j < 0 || j >= JointsN {
		return fmt.Sprintf("Joints(%d)", int32(j))
	}
	return jointNames[j]
}

// IsValid returns whether the joint is one of the five arm joints.
func (j Joints) IsValid() bool {
	return j >= 0 && j < JointsN
}

// ParseJoint returns the joint with the given name (j0 through j4),
// ignoring case.
func ParseJoint(name string) (Joints, error) {
	for j, nm := range jointNames {
		if strings.EqualFold(name, nm) {
			return Joints(j), nil
		}
	}
	return -1, fmt.Errorf("arm.ParseJoint: unknown joint %q", name)
}

// Angles are the five joint angles, in degrees.
// Any real value is accepted; controls clamp their own input
// to the [Domains] of each joint.
type Angles struct {

	// J0 is the base yaw, about the vertical axis.
	J0 float32 `toml:"j0" yaml:"j0" json:"j0"`

	// J1 is the shoulder pitch.
	J1 float32 `toml:"j1" yaml:"j1" json:"j1"`

	// J2 is the elbow pitch.
	J2 float32 `toml:"j2" yaml:"j2" json:"j2"`

	// J3 is the wrist pitch.
	J3 float32 `toml:"j3" yaml:"j3" json:"j3"`

	// J4 is the pipette tilt.
	J4 float32 `toml:"j4" yaml:"j4" json:"j4"`
}

// HomeAngles is the canonical home pose, used by both the scene
// and the controls absent any other pose.
var HomeAngles = Angles{J0: 0, J1: 65, J2: 60, J3: 45, J4: 90}

// ptr returns a pointer to the angle of the given joint, nil if invalid.
func (a *Angles) ptr(j Joints) *float32 {
	switch j {
	case J0:
		return &a.J0
	case J1:
		return &a.J1
	case J2:
		return &a.J2
	case J3:
		return &a.J3
	case J4:
		return &a.J4
	}
	return nil
}

// Get returns the angle of the given joint in degrees
// (0 for an invalid joint).
func (a Angles) Get(j Joints) float32 {
	if p := a.ptr(j); p != nil {
		return *p
	}
	return 0
}

// Set sets the angle of the given joint in degrees.
// It does nothing for an invalid joint.
func (a *Angles) Set(j Joints, deg float32) {
	if p := a.ptr(j); p != nil {
		*p = deg
	}
}

// Array returns the angles in joint order.
func (a Angles) Array() [JointsN]float32 {
	return [JointsN]float32{a.J0, a.J1, a.J2, a.J3, a.J4}
}

// Clamped returns the angles clamped and snapped to the [Domains].
func (a Angles) Clamped() Angles {
	for j := range JointsN {
		a.Set(j, Domains[j].Clamp(a.Get(j)))
	}
	return a
}

func (a Angles) String() string {
	return fmt.Sprintf("j0=%g j1=%g j2=%g j3=%g j4=%g", a.J0, a.J1, a.J2, a.J3, a.J4)
}

// Domain is the range and step of the control input for one joint.
type Domain struct {
	Min  float32
	Max  float32
	Step float32
}

// Clamp returns the value restricted to the domain,
// and snapped to the nearest step from Min.
func (d Domain) Clamp(v float32) float32 {
	if math32.IsNaN(v) {
		return d.Min
	}
	v = math32.Clamp(v, d.Min, d.Max)
	if d.Step > 0 {
		v = math32.Clamp(d.Min+math32.IntMultiple(v-d.Min, d.Step), d.Min, d.Max)
	}
	return v
}

// Contains returns whether the value lies within the domain.
func (d Domain) Contains(v float32) bool {
	return v >= d.Min && v <= d.Max
}

// Domains are the control domains of each joint: the base yaw
// covers a full turn, the pitch joints a quarter turn.
var Domains = [JointsN]Domain{
	J0: {Min: 0, Max: 360, Step: 1},
	J1: {Min: 0, Max: 90, Step: 1},
	J2: {Min: 0, Max: 90, Step: 1},
	J3: {Min: 0, Max: 90, Step: 1},
	J4: {Min: 0, Max: 90, Step: 1},
}
