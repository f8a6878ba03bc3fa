// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arm

import (
	"fmt"

	"cogentcore.org/armviz/math32"
)

// Shapes are the primitive shapes of the arm segments.
type Shapes int32

const (
	// Cylinder has a Radius and Height, with its axis along its native +Y.
	Cylinder Shapes = iota

	// Box has a Width (X), Height (Y) and Length (Z).
	Box

	// Sphere has a Radius.
	Sphere
)

func (s Shapes) String() string {
	switch s {
	case Cylinder:
		return "cylinder"
	case Box:
		return "box"
	case Sphere:
		return "sphere"
	}
	return fmt.Sprintf("Shapes(%d)", int32(s))
}

// Parts are the visual parts of the arm, each with its own material.
type Parts int32

const (
	Base Parts = iota
	Segment1
	Segment2
	Segment3
	Pipette

	// Spheres are the decorative joint spheres, sharing one material.
	Spheres

	PartsN
)

var partNames = [PartsN]string{"base", "segment1", "segment2", "segment3", "pipette", "joints"}

// String returns the material name of the part.
func (p Parts) String() string {
	if p < 0 || p >= PartsN {
		return fmt.Sprintf("Parts(%d)", int32(p))
	}
	return partNames[p]
}

// Segment is the static specification of one rigid body of the arm.
// All dimensions are in meters.
type Segment struct {

	// Name is the name of the segment, also used as its mesh name.
	Name string

	// Shape is the primitive shape of the segment.
	Shape Shapes

	// Width is the size along X of a box.
	Width float32

	// Height is the size along Y of a box or the axis of a cylinder.
	Height float32

	// Length is the size along Z of a box, which is the reach direction.
	Length float32

	// Radius is the radius of a cylinder or sphere.
	Radius float32
}

// Reach returns the extent of the segment along the reach axis of its frame:
// the length of a box, the height of a cylinder, or the diameter of a sphere.
func (sg *Segment) Reach() float32 {
	switch sg.Shape {
	case Box:
		return sg.Length
	case Cylinder:
		return sg.Height
	}
	return 2 * sg.Radius
}

// Size returns the size of the segment in its native orientation.
func (sg *Segment) Size() math32.Vector3 {
	switch sg.Shape {
	case Box:
		return math32.Vec3(sg.Width, sg.Height, sg.Length)
	case Cylinder:
		return math32.Vec3(2*sg.Radius, sg.Height, 2*sg.Radius)
	}
	return math32.Vector3Scalar(2 * sg.Radius)
}

// Geometry is the fixed geometry table of an arm.
type Geometry struct {

	// Base is the cylinder standing on the ground, below the yaw joint.
	Base Segment

	// Links are the shoulder, elbow and wrist links,
	// attached to the J1, J2 and J3 frames.
	Links [3]Segment

	// Pipette is the end effector cylinder attached to the J4 frame.
	Pipette Segment

	// Spheres are the decorative joint spheres at the origins of the
	// J1 (shoulder), J2 (elbow), J3 (wrist) and J4 (pipette) frames.
	Spheres [4]Segment
}

// Standard is the geometry of the standard pipette arm.
var Standard = Geometry{
	Base: Segment{Name: "base", Shape: Cylinder, Radius: 0.25, Height: 0.2},
	Links: [3]Segment{
		{Name: "segment1", Shape: Box, Width: 0.1, Height: 0.1, Length: 0.6},
		{Name: "segment2", Shape: Box, Width: 0.08, Height: 0.08, Length: 0.45},
		{Name: "segment3", Shape: Box, Width: 0.06, Height: 0.06, Length: 0.25},
	},
	Pipette: Segment{Name: "pipette", Shape: Cylinder, Radius: 0.01, Height: 0.1},
	Spheres: [4]Segment{
		{Name: "shoulder", Shape: Sphere, Radius: 0.06},
		{Name: "elbow", Shape: Sphere, Radius: 0.05},
		{Name: "wrist", Shape: Sphere, Radius: 0.04},
		{Name: "tip", Shape: Sphere, Radius: 0.015},
	},
}

// TotalReach returns the summed reach of the links and the pipette.
func (g *Geometry) TotalReach() float32 {
	r := g.Pipette.Reach()
	for i := range g.Links {
		r += g.Links[i].Reach()
	}
	return r
}

// Validate returns an error if any dimension of the geometry is not positive.
func (g *Geometry) Validate() error {
	segs := []*Segment{&g.Base, &g.Links[0], &g.Links[1], &g.Links[2], &g.Pipette,
		&g.Spheres[0], &g.Spheres[1], &g.Spheres[2], &g.Spheres[3]}
	for _, sg := range segs {
		sz := sg.Size()
		if sz.X <= 0 || sz.Y <= 0 || sz.Z <= 0 {
			return fmt.Errorf("arm.Geometry: segment %q has a non-positive size %v", sg.Name, sz)
		}
	}
	return nil
}
