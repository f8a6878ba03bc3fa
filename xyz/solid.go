// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
)

// Solid is a drawn node: a mesh from the [Scene] library
// with a material, placed by its own pose.
type Solid struct {
	NodeBase

	// MeshName is the name of the mesh of the solid on the [Scene].
	MeshName MeshName

	// Mesh is the mesh named by MeshName.
	Mesh Mesh

	// Material is the material of the surface, shared with any other
	// solids using the same [Scene] material.
	Material *Material
}

// NewSolid adds a new [Solid] with the given name to the given parent.
// It starts with its own material, which is not listed on the scene;
// use [Solid.SetMaterial] to share a scene material.
func NewSolid(parent Node, name string) *Solid {
	sld := &Solid{}
	sld.init(sld, name)
	sld.Material = &Material{Name: name}
	sld.Material.Defaults()
	parent.AsNodeBase().AddChild(sld)
	return sld
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// SetMeshName sets the mesh to the one with the given name on the scene.
func (sld *Solid) SetMeshName(name string) error {
	ms, err := sld.Scene.MeshByNameTry(name)
	if err != nil {
		return err
	}
	sld.SetMesh(ms)
	return nil
}

// SetMesh sets the mesh, which must be on the scene.
func (sld *Solid) SetMesh(ms Mesh) *Solid {
	sld.Mesh = ms
	sld.MeshName = ""
	if ms != nil {
		sld.MeshName = MeshName(ms.AsMeshBase().Name)
	}
	return sld
}

// SetMaterial sets the material to the given shared material.
func (sld *Solid) SetMaterial(mt *Material) *Solid {
	sld.Material = mt
	return sld
}

// SetColor sets the color of the material of the solid,
// which changes every solid sharing the material.
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetPos sets the position of the solid relative to its parent.
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.Pos.Set(x, y, z)
	return sld
}

// SetAxisRotation sets the rotation of the solid to the given angle
// in degrees about the given axis.
func (sld *Solid) SetAxisRotation(x, y, z, angle float32) *Solid {
	sld.Pose.SetAxisRotation(x, y, z, angle)
	return sld
}

// Validate checks that the solid has a mesh from its scene and a material.
func (sld *Solid) Validate() error {
	if sld.MeshName == "" {
		return fmt.Errorf("xyz.Solid: %s has no mesh", sld.Path())
	}
	ms, err := sld.Scene.MeshByNameTry(string(sld.MeshName))
	if err != nil {
		return fmt.Errorf("xyz.Solid: %s: %w", sld.Path(), err)
	}
	if sld.Mesh != ms {
		return fmt.Errorf("xyz.Solid: %s mesh is not the scene mesh %q", sld.Path(), sld.MeshName)
	}
	if sld.Material == nil {
		return fmt.Errorf("xyz.Solid: %s has no material", sld.Path())
	}
	return nil
}

// IsVisible returns whether the solid has a mesh, and it
// and all of its parents are visible.
func (sld *Solid) IsVisible() bool {
	return sld.Mesh != nil && sld.NodeBase.IsVisible()
}

func (sld *Solid) IsTransparent() bool {
	return sld.Material != nil && sld.Material.IsTransparent()
}

// UpdateMeshBBox sets the local box of the solid to that of its mesh.
func (sld *Solid) UpdateMeshBBox() {
	if sld.Mesh != nil {
		sld.MeshBBox = sld.Mesh.AsMeshBase().BBox
	}
}

// disconnect drops the mesh and material references
// when the scene releases its resources.
func (sld *Solid) disconnect() {
	sld.Mesh = nil
	sld.Material = nil
}

// RenderClass returns the class of the solid, which orders drawing.
func (sld *Solid) RenderClass() RenderClasses {
	if sld.IsTransparent() {
		return RClassTransUniform
	}
	return RClassOpaqueUniform
}

// Render draws the solid with the given renderer.
func (sld *Solid) Render(r Renderer) {
	r.DrawSolid(sld)
}

var _ Node = &Solid{}
