// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// gltfExporter accumulates the glTF document for a scene, sharing
// meshes and materials the same way the scene does.
type gltfExporter struct {
	doc       *gltf.Document
	meshes    map[string]uint32
	materials map[*Material]uint32
}

// ExportGLTF returns a glTF document of the scene graph, with one glTF node
// per group and solid, preserving the hierarchy and the local pose of each.
// World matrices are not used, so the scene does not need to be updated first.
func ExportGLTF(sc *Scene) (*gltf.Document, error) {
	if sc.destroyed {
		return nil, fmt.Errorf("xyz.ExportGLTF: scene %q has been destroyed", sc.Name)
	}
	ex := &gltfExporter{
		doc:       gltf.NewDocument(),
		meshes:    make(map[string]uint32),
		materials: make(map[*Material]uint32),
	}
	for _, kid := range sc.Children {
		idx, err := ex.node(kid)
		if err != nil {
			return nil, err
		}
		ex.doc.Scenes[0].Nodes = append(ex.doc.Scenes[0].Nodes, idx)
	}
	return ex.doc, nil
}

// SaveGLTF writes the scene to the given writer in binary glTF (.glb) format.
func SaveGLTF(sc *Scene, w io.Writer) error {
	doc, err := ExportGLTF(sc)
	if err != nil {
		return err
	}
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}

func (ex *gltfExporter) node(n Node) (uint32, error) {
	nb := n.AsNodeBase()
	ps := &nb.Pose
	gn := &gltf.Node{
		Name:        nb.Name,
		Translation: ps.Pos.Array(),
		Rotation:    [4]float32{ps.Quat.X, ps.Quat.Y, ps.Quat.Z, ps.Quat.W},
		Scale:       ps.Scale.Array(),
	}
	if sld := n.AsSolid(); sld != nil && sld.Mesh != nil {
		mi, err := ex.mesh(sld)
		if err != nil {
			return 0, err
		}
		gn.Mesh = gltf.Index(mi)
	}
	idx := uint32(len(ex.doc.Nodes))
	ex.doc.Nodes = append(ex.doc.Nodes, gn)
	for _, kid := range nb.Children {
		ki, err := ex.node(kid)
		if err != nil {
			return 0, err
		}
		gn.Children = append(gn.Children, ki)
	}
	return idx, nil
}

// mesh returns the index of the glTF mesh for the given solid,
// which is unique per combination of mesh and material.
func (ex *gltfExporter) mesh(sld *Solid) (uint32, error) {
	mb := sld.Mesh.AsMeshBase()
	key := mb.Name
	if sld.Material != nil {
		key = fmt.Sprintf("%s/%p", mb.Name, sld.Material)
	}
	if mi, ok := ex.meshes[key]; ok {
		return mi, nil
	}
	vtx, norm, idx := MeshData(sld.Mesh)
	if len(vtx) == 0 || len(idx) == 0 {
		return 0, fmt.Errorf("xyz.ExportGLTF: mesh %q of solid %s has no triangles", mb.Name, sld.Path())
	}
	pos := make([][3]float32, len(vtx))
	nrm := make([][3]float32, len(norm))
	for i := range vtx {
		pos[i] = vtx[i].Array()
		nrm[i] = norm[i].Array()
	}
	prim := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(ex.doc, idx)),
		Attributes: map[string]uint32{
			"POSITION": modeler.WritePosition(ex.doc, pos),
			"NORMAL":   modeler.WriteNormal(ex.doc, nrm),
		},
	}
	if sld.Material != nil {
		prim.Material = gltf.Index(ex.material(sld.Material))
	}
	mi := uint32(len(ex.doc.Meshes))
	ex.doc.Meshes = append(ex.doc.Meshes, &gltf.Mesh{
		Name:       mb.Name,
		Primitives: []*gltf.Primitive{prim},
	})
	ex.meshes[key] = mi
	return mi, nil
}

func (ex *gltfExporter) material(mt *Material) uint32 {
	if mi, ok := ex.materials[mt]; ok {
		return mi
	}
	clr := new([4]float32)
	*clr = [4]float32{
		float32(mt.Color.R) / 255,
		float32(mt.Color.G) / 255,
		float32(mt.Color.B) / 255,
		float32(mt.Color.A) / 255,
	}
	mi := uint32(len(ex.doc.Materials))
	ex.doc.Materials = append(ex.doc.Materials, &gltf.Material{
		Name:        mt.Name,
		DoubleSided: !mt.CullBack,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: clr,
		},
	})
	ex.materials[mt] = mi
	return mi
}
