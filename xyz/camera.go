// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/armviz/math32"
)

// Camera defines the properties of the camera
type Camera struct {

	// Pos is the location of the camera in world coordinates.
	Pos math32.Vector3

	// Target is the location the camera points at. It defaults to the origin,
	// and is reset by a call to [Camera.LookAt].
	Target math32.Vector3

	// UpDir is the up direction for the camera, which defaults to the positive Y axis.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width/height).
	Aspect float32

	// Near is the near plane distance.
	Near float32

	// Far is the far plane distance.
	Far float32

	// Orbit is whether users may orbit, pan and zoom the camera interactively.
	Orbit bool

	// ViewMatrix is the world to camera transform.
	ViewMatrix math32.Matrix4 `view:"-"`
}

func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Aspect = 1.5
	cm.Near = .01
	cm.Far = 1000
	cm.Orbit = true
	cm.DefaultPose()
}

// DefaultPose resets the camera pose to default location and orientation, looking
// at the origin from 0,0,10, with up Y axis
func (cm *Camera) DefaultPose() {
	cm.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// UpdateMatrix updates the view matrix from the position, target and up direction.
func (cm *Camera) UpdateMatrix() {
	cm.ViewMatrix.SetLookAt(cm.Pos, cm.Target, cm.UpDir)
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Distance is the distance from the camera position to the target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// OrbitBy moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// keeping the same distance from the Target, and rotating the camera
// to keep looking at the target.
func (cm *Camera) OrbitBy(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()
	up := cm.UpDir
	right := up.Cross(dir).Normal()

	// delX rotates around the up vector, delY around the right vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	ctdir = ctdir.MulQuat(dxq).MulQuat(dyq)

	cm.Pos = cm.Target.Add(ctdir)
	cm.UpDir = cm.UpDir.MulQuat(dyq)
	cm.UpdateMatrix()
}

// Zoom moves along axis given pct closer or further from the target;
// positive values move closer.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	cm.Pos.SetSub(ctaxis.MulScalar(zoomPct))
	cm.UpdateMatrix()
}
