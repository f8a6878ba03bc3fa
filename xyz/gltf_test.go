// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGLTF(t *testing.T) {
	sc, gp, sld := newTestScene(t)
	gp.SetPos(0, 0.2, 0).SetAxisRotation(0, 1, 0, 90)
	twin := NewSolid(gp, "twin")
	require.NoError(t, twin.SetMeshName("box"))
	twin.SetMaterial(sld.Material)

	doc, err := ExportGLTF(sc)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, []uint32{0}, doc.Scenes[0].Nodes)

	root := doc.Nodes[0]
	assert.Equal(t, "arm", root.Name)
	assert.Nil(t, root.Mesh)
	assert.Equal(t, []uint32{1, 2}, root.Children)
	assert.Equal(t, [3]float32{0, 0.2, 0}, root.Translation)
	assert.Equal(t, [4]float32{gp.Pose.Quat.X, gp.Pose.Quat.Y, gp.Pose.Quat.Z, gp.Pose.Quat.W}, root.Rotation)

	// solids sharing mesh and material share the glTF mesh
	require.NotNil(t, doc.Nodes[1].Mesh)
	require.NotNil(t, doc.Nodes[2].Mesh)
	assert.Equal(t, *doc.Nodes[1].Mesh, *doc.Nodes[2].Mesh)
	assert.Len(t, doc.Meshes, 1)
	require.Len(t, doc.Materials, 1)
	assert.Equal(t, [4]float32{128.0 / 255, 128.0 / 255, 128.0 / 255, 1}, *doc.Materials[0].PBRMetallicRoughness.BaseColorFactor)
}

func TestSaveGLTF(t *testing.T) {
	sc, _, _ := newTestScene(t)
	var buf bytes.Buffer
	require.NoError(t, SaveGLTF(sc, &buf))
	assert.Equal(t, "glTF", buf.String()[:4])

	sc.Destroy()
	_, err := ExportGLTF(sc)
	assert.Error(t, err)
}
