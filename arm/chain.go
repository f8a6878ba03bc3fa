// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arm

import (
	"cogentcore.org/armviz/math32"
)

var (
	// AxisY is the yaw axis of J0.
	AxisY = math32.Vec3(0, 1, 0)

	// AxisX is the pitch axis of J1 through J4.
	AxisX = math32.Vec3(1, 0, 0)

	// Forward is the reach direction of every joint frame, its local +Z.
	Forward = math32.Vec3(0, 0, 1)
)

// Frame is the local coordinate system of one joint, composed with its
// parent frame as a translation by Offset followed by a rotation about Axis.
type Frame struct {

	// Joint is the joint of this frame.
	Joint Joints

	// Parent is the joint of the parent frame, or -1 for the fixed base frame.
	Parent Joints

	// Offset is the fixed translation from the parent frame origin,
	// in the parent frame.
	Offset math32.Vector3

	// Axis is the local rotation axis.
	Axis math32.Vector3

	// Sign is applied to the input angle: +1 for the yaw joint,
	// -1 for the pitch joints so that positive input bends the chain down.
	Sign float32

	// Degrees is the raw input angle of the joint.
	Degrees float32
}

// Radians returns the signed rotation angle of the frame in radians.
func (fr *Frame) Radians() float32 {
	return fr.Sign * math32.DegToRad(fr.Degrees)
}

// Quat returns the rotation of the frame.
func (fr *Frame) Quat() math32.Quat {
	return math32.NewQuatAxisAngle(fr.Axis, fr.Radians())
}

// Local returns the transform of the frame relative to its parent:
// translate by Offset, then rotate.
func (fr *Frame) Local() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(fr.Offset, fr.Quat(), math32.Vector3Scalar(1))
	return m
}

// JointSign returns the sign applied to the input angle of the given joint.
func JointSign(j Joints) float32 {
	if j == J0 {
		return 1
	}
	return -1
}

// JointAxis returns the local rotation axis of the given joint.
func JointAxis(j Joints) math32.Vector3 {
	if j == J0 {
		return AxisY
	}
	return AxisX
}

// JointOffset returns the fixed offset of the given joint frame from its
// parent: the base height for J0, none for J1, and the length of the
// previous link along +Z for J2 through J4.
func JointOffset(g *Geometry, j Joints) math32.Vector3 {
	switch j {
	case J0:
		return math32.Vec3(0, g.Base.Height, 0)
	case J1:
		return math32.Vector3{}
	}
	return Forward.MulScalar(g.Links[j-J2].Reach())
}

// Chain returns the five joint frames of the arm for the given angles,
// in order from the base outward.
func Chain(g *Geometry, a Angles) [JointsN]Frame {
	var frs [JointsN]Frame
	for j := range JointsN {
		frs[j] = Frame{
			Joint:   j,
			Parent:  j - 1,
			Offset:  JointOffset(g, j),
			Axis:    JointAxis(j),
			Sign:    JointSign(j),
			Degrees: a.Get(j),
		}
	}
	return frs
}

// World returns the world transform of each joint frame,
// composing the local transforms from the base outward.
func World(g *Geometry, a Angles) [JointsN]math32.Matrix4 {
	frs := Chain(g, a)
	var ws [JointsN]math32.Matrix4
	par := math32.Identity4()
	for j := range frs {
		lm := frs[j].Local()
		ws[j].MulMatrices(par, &lm)
		par = &ws[j]
	}
	return ws
}

// JointOrigins returns the world position of each joint frame origin.
func JointOrigins(g *Geometry, a Angles) [JointsN]math32.Vector3 {
	ws := World(g, a)
	var os [JointsN]math32.Vector3
	for j := range ws {
		os[j] = ws[j].Pos()
	}
	return os
}

// TipPosition returns the world position of the pipette tip, at the
// height of the pipette along the +Z axis of the J4 frame.
func TipPosition(g *Geometry, a Angles) math32.Vector3 {
	ws := World(g, a)
	return Forward.MulScalar(g.Pipette.Reach()).MulMatrix4(&ws[J4])
}

// ReachAxis returns the world direction of the +Z axis of the given joint frame.
func ReachAxis(g *Geometry, a Angles, j Joints) math32.Vector3 {
	ws := World(g, a)
	return Forward.MulMatrix4AsVector4(&ws[j], 0).Normal()
}
