// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/armviz/math32"
)

// Pose contains the full specification of position and orientation,
// always relevant to the parent element.
type Pose struct {

	// Pos is the position of center of element (relative to parent).
	Pos math32.Vector3

	// Scale is the scale factor applied to relevant dimensions.
	Scale math32.Vector3

	// Quat is the orientation, as a quaternion.
	Quat math32.Quat

	// Matrix is the local transform matrix, computed from Pos, Quat and Scale.
	Matrix math32.Matrix4 `view:"-"`

	// WorldMatrix is the world rendering transform matrix,
	// which is the parent's world matrix times the local matrix.
	WorldMatrix math32.Matrix4 `view:"-"`
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
	if ps.Quat.IsNil() {
		ps.Quat.SetIdentity()
	}
}

// String is the string rep of the pose.
func (ps *Pose) String() string {
	return fmt.Sprintf("Pos: %v; Scale: %v; Quat: %v", ps.Pos, ps.Scale, ps.Quat)
}

// UpdateMatrix updates the local transform matrix based on its
// position, quaternion, and scale. The translation is applied
// after the rotation, so a child is rotated about the pose origin.
func (ps *Pose) UpdateMatrix() {
	ps.Matrix.SetTransform(ps.Pos, ps.Quat, ps.Scale)
}

// UpdateWorldMatrix updates the local and world matrices
// using the given parent world matrix.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	ps.UpdateMatrix()
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// WorldPos returns the world position of the pose origin,
// as of the last world matrix update.
func (ps *Pose) WorldPos() math32.Vector3 {
	return ps.WorldMatrix.Pos()
}

// SetAxisRotation sets the rotation of the pose from the given
// axis and angle in degrees.
func (ps *Pose) SetAxisRotation(x, y, z, angle float32) {
	ps.Quat.SetFromAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle))
}

// SetAxisRotationRad sets the rotation of the pose from the given
// axis and angle in radians.
func (ps *Pose) SetAxisRotationRad(axis math32.Vector3, angle float32) {
	ps.Quat.SetFromAxisAngle(axis.Normal(), angle)
}

// RotateOnAxis rotates the pose on the given local axis by the
// given angle in degrees, relative to the current rotation.
func (ps *Pose) RotateOnAxis(x, y, z, angle float32) {
	rq := math32.NewQuatAxisAngle(math32.Vec3(x, y, z).Normal(), math32.DegToRad(angle))
	ps.Quat = ps.Quat.Mul(rq)
}
