// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armview

import (
	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/math32"
	"cogentcore.org/armviz/xyz"
)

// Joint is a non-owning handle to the frame group of one arm joint.
type Joint struct {

	// Joint is the arm joint of this frame.
	Joint arm.Joints

	// Group is the frame group in the scene, whose rotation is set.
	Group *xyz.Group

	// Axis is the local rotation axis of the frame.
	Axis math32.Vector3

	// Sign is applied to the input degrees.
	Sign float32
}

// Apply sets the rotation of the frame from the given input angle in degrees.
func (jt *Joint) Apply(deg float32) {
	jt.Group.Pose.SetAxisRotationRad(jt.Axis, jt.Sign*math32.DegToRad(deg))
}

// Radians reads back the rotation angle of the frame about its own axis,
// in radians, as stored in the frame pose.
func (jt *Joint) Radians() float32 {
	axis, ang := jt.Group.Pose.Quat.ToAxisAngle()
	if axis.Dot(jt.Axis) < 0 {
		ang = -ang
	}
	return ang
}

// Handles are the non-owning references into a built arm scene that the
// live updates mutate: one per joint frame and one per part material.
// All methods are safe no-ops on nil or released handles.
type Handles struct {

	// Joints are the joint frame handles, indexed by [arm.Joints].
	Joints [arm.JointsN]*Joint

	// Materials are the material handles, indexed by [arm.Parts].
	Materials [arm.PartsN]*xyz.Material

	scene *xyz.Scene
}

// IsLive returns whether the handles refer to a live scene.
func (h *Handles) IsLive() bool {
	return h != nil && h.scene != nil && !h.scene.IsDestroyed()
}

// ApplyAngles sets the rotation of every joint frame from the given angles:
// yaw about Y for j0, negated pitch about X for j1 through j4.
func (h *Handles) ApplyAngles(a arm.Angles) {
	if !h.IsLive() {
		return
	}
	for j, jt := range h.Joints {
		jt.Apply(a.Get(arm.Joints(j)))
	}
	h.scene.SetNeedsUpdate()
}

// ApplyColor sets every part material to the RGB value of the given color,
// which is [arm.FallbackGray] for an unknown color.
func (h *Handles) ApplyColor(c arm.Color) {
	if !h.IsLive() {
		return
	}
	rgb := c.RGBA()
	for _, mt := range h.Materials {
		mt.Color = rgb
	}
	h.scene.SetNeedsRender()
}

// JointByName returns the handle of the joint named j0 through j4, or nil.
func (h *Handles) JointByName(name string) *Joint {
	if !h.IsLive() {
		return nil
	}
	j, err := arm.ParseJoint(name)
	if err != nil {
		return nil
	}
	return h.Joints[j]
}

// MaterialByName returns the material handle of the part with the given
// name (base, segment1, segment2, segment3, pipette, joints), or nil.
func (h *Handles) MaterialByName(name string) *xyz.Material {
	if !h.IsLive() {
		return nil
	}
	for p, mt := range h.Materials {
		if arm.Parts(p).String() == name {
			return mt
		}
	}
	return nil
}

// Angles reads back the angles in degrees from the joint frames.
func (h *Handles) Angles() arm.Angles {
	var a arm.Angles
	if !h.IsLive() {
		return a
	}
	for j, jt := range h.Joints {
		a.Set(arm.Joints(j), jt.Sign*math32.RadToDeg(jt.Radians()))
	}
	return a
}

// release drops all the references.
func (h *Handles) release() {
	if h == nil {
		return
	}
	*h = Handles{}
}
