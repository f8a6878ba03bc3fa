// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit armviz functionality.

package math32

// Quat is quaternion with X,Y,Z and W components.
type Quat struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewQuat returns a new quaternion from the specified components.
func NewQuat(x, y, z, w float32) Quat {
	return Quat{X: x, Y: y, Z: z, W: w}
}

// NewQuatIdentity returns the identity quaternion (no rotation).
func NewQuatIdentity() Quat {
	return Quat{W: 1}
}

// NewQuatAxisAngle returns a new quaternion from given axis and angle rotation (radians).
func NewQuatAxisAngle(axis Vector3, angle float32) Quat {
	nq := Quat{}
	nq.SetFromAxisAngle(axis, angle)
	return nq
}

// Set sets this quaternion's components.
func (q *Quat) Set(x, y, z, w float32) {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
}

// SetIdentity sets this quanternion to the identity quaternion.
func (q *Quat) SetIdentity() {
	q.Set(0, 0, 0, 1)
}

// IsIdentity returns if this is an identity quaternion.
func (q Quat) IsIdentity() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 1
}

// IsNil returns true if all values are 0 (uninitialized).
func (q Quat) IsNil() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// SetFromAxisAngle sets this quaternion with the rotation
// specified by the given axis and angle (radians).
// The axis is expected to be normalized.
func (q *Quat) SetFromAxisAngle(axis Vector3, angle float32) {
	halfAngle := angle / 2
	s, c := Sincos(halfAngle)
	q.X = axis.X * s
	q.Y = axis.Y * s
	q.Z = axis.Z * s
	q.W = c
}

// ToAxisAngle returns the rotation axis and angle (radians) of this quaternion.
// The angle is in [0, 2π] radians; the axis is arbitrary for the identity.
func (q Quat) ToAxisAngle() (Vector3, float32) {
	nq := q.Normal()
	angle := 2 * Acos(Clamp(nq.W, -1, 1))
	s := Sqrt(1 - nq.W*nq.W)
	if s < 1e-6 {
		return Vec3(1, 0, 0), angle
	}
	return Vec3(nq.X/s, nq.Y/s, nq.Z/s), angle
}

// Dot returns the dot products of this quaternion with other.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Length returns the length of this quaternion
func (q Quat) Length() float32 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normal returns the normalized version of this quaternion.
func (q Quat) Normal() Quat {
	l := q.Length()
	if l == 0 {
		return NewQuatIdentity()
	}
	l = 1 / l
	return Quat{q.X * l, q.Y * l, q.Z * l, q.W * l}
}

// Conjugate returns the conjugate of this quaternion,
// which for a unit quaternion is its inverse.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Mul returns this quaternion multiplied by other quaternion:
// the rotation of other followed by the rotation of this.
func (q Quat) Mul(other Quat) Quat {
	qax, qay, qaz, qaw := q.X, q.Y, q.Z, q.W
	qbx, qby, qbz, qbw := other.X, other.Y, other.Z, other.W
	return Quat{
		qax*qbw + qaw*qbx + qay*qbz - qaz*qby,
		qay*qbw + qaw*qby + qaz*qbx - qax*qbz,
		qaz*qbw + qaw*qbz + qax*qby - qay*qbx,
		qaw*qbw - qax*qbx - qay*qby - qaz*qbz,
	}
}

// IsEqualTol returns if this quaternion represents the same rotation
// as other within the given tolerance (q and -q are equivalent).
func (q Quat) IsEqualTol(other Quat, tol float32) bool {
	return Abs(Abs(q.Normal().Dot(other.Normal()))-1) <= tol
}
