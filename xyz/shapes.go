// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/armviz/math32"
)

// boxFaces are the outward normal and in-plane axes of each box face,
// ordered so that u x v = normal (counter-clockwise winding).
var boxFaces = [6][3]math32.Vector3{
	{{X: 1}, {Y: 1}, {Z: 1}},
	{{X: -1}, {Z: 1}, {Y: 1}},
	{{Y: 1}, {Z: 1}, {X: 1}},
	{{Y: -1}, {X: 1}, {Z: 1}},
	{{Z: 1}, {X: 1}, {Y: 1}},
	{{Z: -1}, {Y: 1}, {X: 1}},
}

// halfAlong returns the half extent of a box of the given size
// along the given unit axis.
func halfAlong(size, axis math32.Vector3) float32 {
	return 0.5 * (math32.Abs(axis.X)*size.X + math32.Abs(axis.Y)*size.Y + math32.Abs(axis.Z)*size.Z)
}

// setQuad writes a quad with 4 vertices and 6 indexes centered at c.
func setQuad(c, n, u, v math32.Vector3, hu, hv float32, vertex, normal []math32.Vector3, index []uint32, vo, io int) {
	du := u.MulScalar(hu)
	dv := v.MulScalar(hv)
	vertex[vo+0] = c.Sub(du).Sub(dv)
	vertex[vo+1] = c.Add(du).Sub(dv)
	vertex[vo+2] = c.Add(du).Add(dv)
	vertex[vo+3] = c.Sub(du).Add(dv)
	for i := 0; i < 4; i++ {
		normal[vo+i] = n
	}
	b := uint32(vo)
	copy(index[io:io+6], []uint32{b, b + 1, b + 2, b, b + 2, b + 3})
}

// Box is a rectangular-shaped solid (cuboid), centered at the origin.
type Box struct {
	MeshBase

	// Size is the size of each side along the X, Y, Z axes.
	Size math32.Vector3
}

// NewBox adds a Box mesh with the given name and size to the given scene.
func NewBox(sc *Scene, name string, width, height, depth float32) *Box {
	bx := &Box{}
	bx.Name = name
	bx.Size.Set(width, height, depth)
	bx.BBox.SetFromCenterAndSize(math32.Vector3{}, bx.Size)
	sc.SetMesh(bx)
	return bx
}

func (bx *Box) MeshSize() (numVertex, numIndex int) {
	return 24, 36
}

func (bx *Box) Set(vertex, normal []math32.Vector3, index []uint32) {
	for i, f := range boxFaces {
		n, u, v := f[0], f[1], f[2]
		c := n.MulScalar(halfAlong(bx.Size, n))
		setQuad(c, n, u, v, halfAlong(bx.Size, u), halfAlong(bx.Size, v), vertex, normal, index, i*4, i*6)
	}
}

// Plane is a flat rectangle in the XZ plane facing +Y,
// used for ground references.
type Plane struct {
	MeshBase

	// Width is the size along X.
	Width float32

	// Depth is the size along Z.
	Depth float32
}

// NewPlane adds a Plane mesh with the given name and size to the given scene.
func NewPlane(sc *Scene, name string, width, depth float32) *Plane {
	pl := &Plane{Width: width, Depth: depth}
	pl.Name = name
	pl.BBox.SetFromCenterAndSize(math32.Vector3{}, math32.Vec3(width, 0, depth))
	sc.SetMesh(pl)
	return pl
}

func (pl *Plane) MeshSize() (numVertex, numIndex int) {
	return 4, 6
}

func (pl *Plane) Set(vertex, normal []math32.Vector3, index []uint32) {
	setQuad(math32.Vector3{}, math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0),
		pl.Depth/2, pl.Width/2, vertex, normal, index, 0, 0)
}

// Cylinder is a generalized cylinder shape along the Y axis,
// centered at the origin, with closed caps.
type Cylinder struct {
	MeshBase

	// Height along the Y axis.
	Height float32

	// TopRad is the radius of the top.
	TopRad float32

	// BotRad is the radius of the bottom.
	BotRad float32

	// RadialSegs is the number of radial segments (32 is a reasonable default for full circle).
	RadialSegs int `min:"3"`
}

// NewCylinder adds a Cylinder mesh with the given name, height, radius
// and number of radial segments to the given scene.
func NewCylinder(sc *Scene, name string, height, radius float32, radialSegs int) *Cylinder {
	cy := &Cylinder{Height: height, TopRad: radius, BotRad: radius, RadialSegs: max(radialSegs, 3)}
	cy.Name = name
	cy.BBox = math32.B3(-radius, -height/2, -radius, radius, height/2, radius)
	sc.SetMesh(cy)
	return cy
}

func (cy *Cylinder) MeshSize() (numVertex, numIndex int) {
	n := cy.RadialSegs
	return 2*(n+1) + 2*(n+2), 12 * n
}

func (cy *Cylinder) Set(vertex, normal []math32.Vector3, index []uint32) {
	n := cy.RadialSegs
	hh := cy.Height / 2
	slope := (cy.BotRad - cy.TopRad) / cy.Height
	ring := func(i int) (float32, float32) {
		return math32.Sincos(float32(i) / float32(n) * 2 * math32.Pi)
	}
	// sides
	for i := 0; i <= n; i++ {
		s, c := ring(i)
		nrm := math32.Vec3(s, slope, c).Normal()
		vertex[i] = math32.Vec3(s*cy.BotRad, -hh, c*cy.BotRad)
		vertex[n+1+i] = math32.Vec3(s*cy.TopRad, hh, c*cy.TopRad)
		normal[i] = nrm
		normal[n+1+i] = nrm
	}
	io := 0
	for i := 0; i < n; i++ {
		a, b := uint32(i), uint32(i+1)
		c, d := uint32(n+1+i+1), uint32(n+1+i)
		copy(index[io:io+6], []uint32{a, b, c, a, c, d})
		io += 6
	}
	// caps
	vo := 2 * (n + 1)
	for ci := 0; ci < 2; ci++ {
		y, rad, up := hh, cy.TopRad, float32(1)
		if ci == 1 {
			y, rad, up = -hh, cy.BotRad, -1
		}
		ctr := uint32(vo)
		vertex[vo] = math32.Vec3(0, y, 0)
		normal[vo] = math32.Vec3(0, up, 0)
		for i := 0; i <= n; i++ {
			s, c := ring(i)
			vertex[vo+1+i] = math32.Vec3(s*rad, y, c*rad)
			normal[vo+1+i] = math32.Vec3(0, up, 0)
		}
		for i := 0; i < n; i++ {
			a, b := ctr+1+uint32(i), ctr+2+uint32(i)
			if ci == 0 {
				copy(index[io:io+3], []uint32{ctr, a, b})
			} else {
				copy(index[io:io+3], []uint32{ctr, b, a})
			}
			io += 3
		}
		vo += n + 2
	}
}

// Sphere is a sphere mesh centered at the origin.
type Sphere struct {
	MeshBase

	// Radius of the sphere.
	Radius float32

	// WidthSegs is the number of segments around the width of the sphere (32 is reasonable default for full circle).
	WidthSegs int `min:"3"`

	// HeightSegs is the number of height segments (32 is reasonable default for full height).
	HeightSegs int `min:"2"`
}

// NewSphere adds a Sphere mesh with the given name, radius and number of
// segments (used for both width and height) to the given scene.
func NewSphere(sc *Scene, name string, radius float32, segs int) *Sphere {
	sp := &Sphere{Radius: radius, WidthSegs: max(segs, 3), HeightSegs: max(segs, 2)}
	sp.Name = name
	sp.BBox = math32.B3(-radius, -radius, -radius, radius, radius, radius)
	sc.SetMesh(sp)
	return sp
}

func (sp *Sphere) MeshSize() (numVertex, numIndex int) {
	return (sp.WidthSegs + 1) * (sp.HeightSegs + 1), 6 * sp.WidthSegs * sp.HeightSegs
}

func (sp *Sphere) Set(vertex, normal []math32.Vector3, index []uint32) {
	w, h := sp.WidthSegs, sp.HeightSegs
	for iy := 0; iy <= h; iy++ {
		st, ct := math32.Sincos(float32(iy) / float32(h) * math32.Pi)
		for ix := 0; ix <= w; ix++ {
			sph, cph := math32.Sincos(float32(ix) / float32(w) * 2 * math32.Pi)
			nrm := math32.Vec3(-cph*st, ct, sph*st)
			vi := iy*(w+1) + ix
			vertex[vi] = nrm.MulScalar(sp.Radius)
			normal[vi] = nrm
		}
	}
	io := 0
	for iy := 0; iy < h; iy++ {
		for ix := 0; ix < w; ix++ {
			a := uint32(iy*(w+1) + ix + 1)
			b := uint32(iy*(w+1) + ix)
			c := uint32((iy+1)*(w+1) + ix)
			d := uint32((iy+1)*(w+1) + ix + 1)
			copy(index[io:io+6], []uint32{a, b, d, b, c, d})
			io += 6
		}
	}
}
