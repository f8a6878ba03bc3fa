// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit armviz functionality.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// Translation4 returns a new translation [Matrix4] for the given offset.
func Translation4(x, y, z float32) *Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Rotation4 returns a new rotation [Matrix4] about the given
// normalized axis by the given angle in radians.
func Rotation4(axis Vector3, angle float32) *Matrix4 {
	m := &Matrix4{}
	m.SetTransform(Vector3{}, NewQuatAxisAngle(axis, angle), Vector3Scalar(1))
	return m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// CopyFrom copies from source matrix into this matrix
// (a regular = assign does not copy data, just the pointer!)
func (m *Matrix4) CopyFrom(src *Matrix4) {
	copy(m[:], src[:])
}

// SetTransform sets this matrix to a transformation matrix for the specified position,
// rotation specified by the quaternion and scale.
// The resulting matrix scales, then rotates, then translates.
func (m *Matrix4) SetTransform(pos Vector3, quat Quat, scale Vector3) {
	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	m[0] = (1 - (yy + zz)) * scale.X
	m[1] = (xy + wz) * scale.X
	m[2] = (xz - wy) * scale.X
	m[3] = 0

	m[4] = (xy - wz) * scale.Y
	m[5] = (1 - (xx + zz)) * scale.Y
	m[6] = (yz + wx) * scale.Y
	m[7] = 0

	m[8] = (xz + wy) * scale.Z
	m[9] = (yz - wx) * scale.Z
	m[10] = (1 - (xx + yy)) * scale.Z
	m[11] = 0

	m[12] = pos.X
	m[13] = pos.Y
	m[14] = pos.Z
	m[15] = 1
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
// Applied to a point, the other matrix takes effect first.
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulMatrices sets this matrix to the matrix product a * b.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = s
		}
	}
	*m = r
}

// Pos returns the translation component of the matrix.
func (m *Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// IsEqualTol returns if all elements of the two matrices are within the given tolerance.
func (m *Matrix4) IsEqualTol(other *Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}

// SetLookAt sets this matrix to the view transform of an eye located at
// the given position looking at the target, with the given up direction.
// Points in front of the eye end up along -Z.
func (m *Matrix4) SetLookAt(eye, target, up Vector3) {
	f := target.Sub(eye).Normal()
	if f.LengthSquared() == 0 {
		f.Set(0, 0, -1)
	}
	s := f.Cross(up).Normal()
	if s.LengthSquared() == 0 {
		// up is parallel to the view direction
		s = f.Cross(Vec3(0, 0, 1)).Normal()
	}
	u := s.Cross(f)
	*m = Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}
