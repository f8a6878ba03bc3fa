// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/armviz/math32"
)

// MeshName is a [Mesh] name.
// It is used on [Solid] to link to meshes by name.
type MeshName string

// Mesh parametrizes the mesh-based shape used for rendering a [Solid].
// Only indexed triangle meshes are supported.
// All Meshes must know in advance the number of vertex and index points
// they require, and the Set method writes the mesh data to slices of
// appropriate size.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase

	// MeshSize returns the number of vertex points and triangle indexes.
	MeshSize() (numVertex, numIndex int)

	// Set writes the vertex positions, normals, and triangle indexes
	// into slices sized according to [Mesh.MeshSize].
	Set(vertex, normal []math32.Vector3, index []uint32)
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name is the name of the mesh. [Mesh]es are linked to [Solid]s
	// by name so this matters.
	Name string

	// BBox has the computed bounding-box of the mesh in local coordinates.
	BBox math32.Box3
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// MeshData returns newly allocated vertex, normal and index data for the given mesh.
func MeshData(ms Mesh) (vertex, normal []math32.Vector3, index []uint32) {
	nv, ni := ms.MeshSize()
	vertex = make([]math32.Vector3, nv)
	normal = make([]math32.Vector3, nv)
	index = make([]uint32, ni)
	ms.Set(vertex, normal, index)
	return
}

////////////////////////////////////////////////////////////////////////
// Scene management

// SetMesh sets / updates the given mesh, updating any existing
// mesh of the same name.
// See NewX for convenience methods to add specific shapes.
func (sc *Scene) SetMesh(ms Mesh) {
	sc.Meshes.Add(ms.AsMeshBase().Name, ms)
	sc.SetNeedsUpdate()
}

// MeshByName looks for mesh by name; nil if not found.
func (sc *Scene) MeshByName(name string) Mesh {
	ms, _ := sc.Meshes.Get(name)
	return ms
}

// MeshByNameTry looks for mesh by name; error if not found.
func (sc *Scene) MeshByNameTry(name string) (Mesh, error) {
	ms, ok := sc.Meshes.Get(name)
	if ok {
		return ms, nil
	}
	return nil, fmt.Errorf("xyz.Scene: %v mesh named: %v not found", sc.Name, name)
}

// MeshList returns a list of available meshes (e.g., for chooser)
func (sc *Scene) MeshList() []string {
	return sc.Meshes.Names()
}
