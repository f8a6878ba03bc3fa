// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"slices"

	"cogentcore.org/armviz/math32"
)

// Renderer is a rendering backend that draws the solids of a [Scene].
type Renderer interface {

	// RenderStart begins a new frame for the given scene.
	// An error aborts the frame.
	RenderStart(sc *Scene) error

	// DrawSolid draws the given solid, using its world matrix,
	// mesh and material.
	DrawSolid(sld *Solid)

	// RenderEnd finishes the frame.
	RenderEnd(sc *Scene)
}

// DoUpdate handles needed updates based on Scene Flags.
// If no updates are required, then false is returned, else true.
func (sc *Scene) DoUpdate(r Renderer) bool {
	switch {
	case sc.NeedsUpdate:
		sc.UpdateNodes()
		sc.Render(r)
		sc.NeedsUpdate = false
		sc.NeedsRender = false
	case sc.NeedsRender:
		sc.Render(r)
		sc.NeedsRender = false
	default:
		return false
	}
	return true
}

// SetNeedsRender sets [Scene.NeedsRender] to true.
func (sc *Scene) SetNeedsRender() {
	sc.NeedsRender = true
}

// SetNeedsUpdate sets [Scene.NeedsUpdate] to true.
func (sc *Scene) SetNeedsUpdate() {
	sc.NeedsUpdate = true
}

// UpdateNodesIfNeeded can be called to update prior to an ad-hoc render
// if the NeedsUpdate flag has been set (resets flag)
func (sc *Scene) UpdateNodesIfNeeded() {
	if sc.NeedsUpdate {
		sc.UpdateNodes()
		sc.NeedsUpdate = false
	}
}

// UpdateNodes updates the world matrix and bounding boxes of all nodes.
func (sc *Scene) UpdateNodes() {
	UpdateWorldMatrix(sc)
	sc.UpdateMeshBBox()
	sc.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		nb.WorldBBox = nb.MeshBBox.MulMatrix4(&nb.Pose.WorldMatrix)
		return Continue
	})
}

// UpdateMeshBBox updates the Mesh-based BBox info for all nodes.
// groups aggregate over elements
func (sc *Scene) UpdateMeshBBox() {
	for _, c := range sc.Children {
		c.AsNodeBase().WalkDownPost(func(n Node) bool {
			return Continue
		}, func(n Node) bool {
			n.UpdateMeshBBox()
			return Continue
		})
	}
}

// UpdateWorldMatrix updates the world matrix for node and everything inside it
func UpdateWorldMatrix(n Node) {
	idmtx := math32.Identity4()
	n.AsNodeBase().WalkDown(func(cn Node) bool {
		nb := cn.AsNodeBase()
		if nb.Parent == nil {
			nb.UpdateWorldMatrix(idmtx)
		} else {
			nb.UpdateWorldMatrix(&nb.Parent.AsNodeBase().Pose.WorldMatrix)
		}
		return Continue
	})
}

// Render renders the visible solids of the scene through the given renderer.
// Only the Camera view matrix is updated here.
// If nodes require their own pose etc updates, UpdateNodes
// must be called prior to render.
// Opaque solids are drawn front-to-back, then transparent ones back-to-front.
func (sc *Scene) Render(r Renderer) bool {
	if r == nil || sc.destroyed {
		return false
	}
	if len(sc.SavedCams) == 0 {
		sc.SaveCamera("default")
	}
	sc.Camera.UpdateMatrix()

	var rcs [RenderClassesN][]*Solid
	sc.WalkDown(func(n Node) bool {
		if n.AsNodeBase().Invisible {
			return Break
		}
		sld := n.AsSolid()
		if sld == nil || !sld.IsVisible() {
			return Continue
		}
		rc := sld.RenderClass()
		rcs[rc] = append(rcs[rc], sld)
		return Continue
	})

	if err := r.RenderStart(sc); err != nil {
		return false
	}
	for rci, objs := range rcs {
		if len(objs) == 0 {
			continue
		}
		trans := RenderClasses(rci) == RClassTransUniform
		slices.SortStableFunc(objs, func(a, b *Solid) int {
			da, db := sc.viewDepth(a), sc.viewDepth(b)
			if trans {
				da, db = db, da
			}
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			}
			return 0
		})
		for _, obj := range objs {
			obj.Render(r)
		}
	}
	r.RenderEnd(sc)
	return true
}

// viewDepth returns the distance in front of the camera of the
// center of the world bounding box of the given solid.
func (sc *Scene) viewDepth(sld *Solid) float32 {
	return -sld.WorldBBox.Center().MulMatrix4(&sc.Camera.ViewMatrix).Z
}

// RenderClasses define the different classes of rendering
type RenderClasses int32

const (
	RClassNone RenderClasses = iota
	RClassOpaqueUniform
	RClassTransUniform

	RenderClassesN
)
