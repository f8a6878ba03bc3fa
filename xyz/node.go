// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"strings"

	"cogentcore.org/armviz/math32"
)

// Walk return values for [NodeBase.WalkDown].
const (
	// Continue continues the walk into the children of the current node.
	Continue = true

	// Break stops the walk from going into the children of the current node.
	Break = false
)

// Node is the common interface for all xyz 3D tree nodes.
// [Group] and [Solid] are the two main types of nodes.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is an [Solid] node (else a [Group]).
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid

	// UpdateMeshBBox updates the [MeshBBox] for this node,
	// aggregating over children for groups.
	UpdateMeshBBox()
}

// NodeBase is the basic 3D tree node, which has the full transform information
// relative to parent, and computed bounding boxes, etc.
// It is embedded in [Group] and [Solid].
type NodeBase struct {

	// Name is the name of the node, unique among its siblings.
	Name string

	// Parent is the parent node, nil for the scene root.
	Parent Node `json:"-"`

	// Children are the child nodes, in render order.
	Children []Node

	// Invisible is whether to hide the node (and its children).
	Invisible bool

	// Pose is the complete specification of position and orientation.
	Pose Pose

	// Scene is the cached [Scene].
	Scene *Scene `json:"-"`

	// MeshBBox is the mesh-based local bounding box,
	// computed by [Node.UpdateMeshBBox].
	MeshBBox math32.Box3

	// WorldBBox is the world coordinates bounding box.
	WorldBBox math32.Box3

	this Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

func (nb *NodeBase) UpdateMeshBBox() {}

// This returns the full node interface for this base.
func (nb *NodeBase) This() Node {
	return nb.this
}

// init sets the name and self-reference of the node.
func (nb *NodeBase) init(this Node, name string) {
	nb.this = this
	nb.Name = name
	nb.Pose.Defaults()
}

// AddChild adds the given node as the last child of this node,
// setting its parent and scene.
func (nb *NodeBase) AddChild(kid Node) {
	kb := kid.AsNodeBase()
	kb.Parent = nb.this
	kb.Scene = nb.Scene
	nb.Children = append(nb.Children, kid)
}

// NumChildren returns the number of children.
func (nb *NodeBase) NumChildren() int {
	return len(nb.Children)
}

// ChildByName returns the first child with the given name, or nil.
func (nb *NodeBase) ChildByName(name string) Node {
	for _, k := range nb.Children {
		if k.AsNodeBase().Name == name {
			return k
		}
	}
	return nil
}

// FindPath returns the node at the given slash-separated path
// of names relative to this node, or nil.
func (nb *NodeBase) FindPath(path string) Node {
	cur := nb.this
	for _, nm := range strings.Split(path, "/") {
		if nm == "" {
			continue
		}
		cur = cur.AsNodeBase().ChildByName(nm)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Path returns the slash-separated path of names from the root to this node.
func (nb *NodeBase) Path() string {
	if nb.Parent == nil {
		return "/" + nb.Name
	}
	return nb.Parent.AsNodeBase().Path() + "/" + nb.Name
}

// WalkDown calls the given function on this node and all of its
// descendants, in depth-first order. If the function returns [Break],
// the children of that node are skipped.
func (nb *NodeBase) WalkDown(fun func(n Node) bool) {
	if !fun(nb.this) {
		return
	}
	for _, k := range nb.Children {
		k.AsNodeBase().WalkDown(fun)
	}
}

// WalkDownPost calls doChildTest on the way down (skipping children on
// [Break]) and fun after all children have been visited.
func (nb *NodeBase) WalkDownPost(doChildTest func(n Node) bool, fun func(n Node) bool) {
	if !doChildTest(nb.this) {
		return
	}
	for _, k := range nb.Children {
		k.AsNodeBase().WalkDownPost(doChildTest, fun)
	}
	fun(nb.this)
}

// IsVisible returns true if the node and all of its parents are visible.
func (nb *NodeBase) IsVisible() bool {
	if nb.Invisible {
		return false
	}
	if nb.Parent == nil {
		return true
	}
	return nb.Parent.AsNodeBase().IsVisible()
}

// UpdateWorldMatrix updates the world transform matrix from the
// given parent world matrix, and the world bounding box.
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateWorldMatrix(parWorld)
	nb.WorldBBox = nb.MeshBBox.MulMatrix4(&nb.Pose.WorldMatrix)
}
