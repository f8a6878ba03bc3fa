// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package armview builds the retained 3D scene of the pipette arm,
// updates it in place from joint angles and color, and manages the
// lifecycle of one scene instance on a render [Driver].
package armview

import (
	"image/color"

	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/math32"
	"cogentcore.org/armviz/xyz"
)

// Number of radial segments of cylinders, and of width and height
// segments of spheres.
const (
	CylinderSegs = 32
	SphereSegs   = 24
)

// Scene level names.
const (
	SceneName  = "arm"
	GroundName = "ground"
	FrameName  = "frame"
)

// GroundColor is the color of the ground reference plane.
var GroundColor = color.RGBA{220, 220, 220, 255}

// Build builds a new arm scene with the [arm.Standard] geometry,
// posed and colored by the given angles and color.
func Build(a arm.Angles, c arm.Color) (*xyz.Scene, *Handles) {
	return BuildGeometry(&arm.Standard, a, c)
}

// BuildGeometry builds a new arm scene with the given geometry: camera,
// lights and ground reference, then the fixed base frame and the chain of
// joint frames with the segment and joint sphere solids attached to them.
// The returned handles are the only references needed for live updates.
// Identical inputs always yield structurally identical scenes.
func BuildGeometry(g *arm.Geometry, a arm.Angles, c arm.Color) (*xyz.Scene, *Handles) {
	sc := xyz.NewScene(SceneName)
	h := &Handles{scene: sc}
	buildEnvironment(sc, g)

	for p := range arm.PartsN {
		mt := sc.NewMaterial(p.String())
		mt.SetCastShadow(true)
		h.Materials[p] = mt
	}

	frame := xyz.NewGroup(sc, FrameName)
	base := newSegment(sc, frame, &g.Base, h.Materials[arm.Base])
	base.SetPos(0, g.Base.Height/2, 0)

	var parent xyz.Node = frame
	for j := range arm.JointsN {
		gp := xyz.NewGroup(parent, j.String())
		off := arm.JointOffset(g, j)
		gp.SetPos(off.X, off.Y, off.Z)
		h.Joints[j] = &Joint{Joint: j, Group: gp, Axis: arm.JointAxis(j), Sign: arm.JointSign(j)}
		parent = gp
		if j == arm.J0 {
			continue
		}
		newSegment(sc, gp, &g.Spheres[j-arm.J1], h.Materials[arm.Spheres])
		if j == arm.J4 {
			pip := newSegment(sc, gp, &g.Pipette, h.Materials[arm.Pipette])
			pip.SetPos(0, 0, g.Pipette.Height/2).SetAxisRotation(1, 0, 0, 90)
			continue
		}
		link := &g.Links[j-arm.J1]
		newSegment(sc, gp, link, h.Materials[arm.Segment1+arm.Parts(j-arm.J1)]).SetPos(0, 0, link.Length/2)
	}

	h.ApplyAngles(a)
	h.ApplyColor(c)
	sc.SetNeedsUpdate()
	return sc, h
}

// buildEnvironment adds the static camera, lights and ground reference.
func buildEnvironment(sc *xyz.Scene, g *arm.Geometry) {
	reach := g.TotalReach()
	sc.Camera.Pos.Set(1.6*reach, 1.2*reach, 1.6*reach)
	sc.Camera.LookAt(math32.Vec3(0, g.Base.Height+reach/3, 0), math32.Vec3(0, 1, 0))
	sc.Camera.Orbit = true
	sc.SaveCamera("default")

	xyz.NewAmbientLight(sc, "ambient", 0.4, xyz.DirectSun)
	sun := xyz.NewDirLight(sc, "sun", 1, xyz.DirectSun).SetPos(3, 5, 2)
	sun.CastShadow = true

	gsz := 4 * reach
	xyz.NewPlane(sc, GroundName, gsz, gsz)
	gmt := sc.NewMaterial(GroundName).SetColor(GroundColor)
	gmt.CullBack = false
	ground := xyz.NewSolid(sc, GroundName)
	ground.SetMesh(sc.MeshByName(GroundName))
	ground.SetMaterial(gmt)
}

// newSegment adds the mesh of the given segment to the scene,
// and a solid using it to the given parent.
func newSegment(sc *xyz.Scene, parent xyz.Node, sg *arm.Segment, mt *xyz.Material) *xyz.Solid {
	var ms xyz.Mesh
	switch sg.Shape {
	case arm.Box:
		ms = xyz.NewBox(sc, sg.Name, sg.Width, sg.Height, sg.Length)
	case arm.Cylinder:
		ms = xyz.NewCylinder(sc, sg.Name, sg.Height, sg.Radius, CylinderSegs)
	default:
		ms = xyz.NewSphere(sc, sg.Name, sg.Radius, SphereSegs)
	}
	sld := xyz.NewSolid(parent, sg.Name)
	sld.SetMesh(ms)
	sld.SetMaterial(mt)
	return sld
}
