// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Group is a node with a transform and children but nothing to draw,
// such as a joint frame: moving the group moves everything under it.
type Group struct {
	NodeBase
}

// NewGroup adds a new [Group] with the given name to the given parent.
func NewGroup(parent Node, name string) *Group {
	gp := &Group{}
	gp.init(gp, name)
	parent.AsNodeBase().AddChild(gp)
	return gp
}

// UpdateMeshBBox sets the local box of the group to span the boxes
// of its children, in the frame of the group.
func (gp *Group) UpdateMeshBBox() {
	gp.MeshBBox.SetEmpty()
	for _, kid := range gp.Children {
		kb := kid.AsNodeBase()
		gp.MeshBBox.ExpandByBox(kb.MeshBBox.MulMatrix4(&kb.Pose.Matrix))
	}
}

// SetPos sets the position of the group relative to its parent.
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.Pos.Set(x, y, z)
	return gp
}

// SetAxisRotation sets the rotation of the group to the given angle
// in degrees about the given axis.
func (gp *Group) SetAxisRotation(x, y, z, angle float32) *Group {
	gp.Pose.SetAxisRotation(x, y, z, angle)
	return gp
}

var _ Node = &Group{}
