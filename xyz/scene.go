// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"

	"cogentcore.org/armviz/base/errors"
)

// Scene is the overall scenegraph containing nodes as children.
// It holds the libraries of meshes, materials and lights used by
// its nodes, along with the camera viewing the scene.
// Rendering is done through a [Renderer] via [Scene.DoUpdate].
type Scene struct {
	NodeBase

	// Camera determines the view onto the scene.
	Camera Camera

	// Background is the background color of the scene.
	Background color.RGBA

	// Lights are all the lights used in the scene.
	Lights Library[Light]

	// Meshes holds all the mesh data, shared by solids by name.
	Meshes Library[Mesh]

	// Materials holds the shared materials of the scene.
	Materials Library[*Material]

	// SavedCams are saved cameras, that can be restored with [Scene.SetCamera].
	SavedCams map[string]Camera

	// NeedsUpdate means that Node Pose has changed and an update pass
	// is required to update matrix and bounding boxes.
	NeedsUpdate bool

	// NeedsRender means that something has been updated (minimally the
	// Camera pose) and a new Render is required.
	NeedsRender bool

	destroyed bool
}

// Defaults sets default scene params (camera, bg = white)
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Background = color.RGBA{255, 255, 255, 255}
}

// NewScene creates a new Scene to contain a 3D scenegraph.
func NewScene(name ...string) *Scene {
	sc := &Scene{}
	nm := "scene"
	if len(name) > 0 {
		nm = name[0]
	}
	sc.init(sc, nm)
	sc.Scene = sc
	sc.Defaults()
	return sc
}

// SaveCamera saves the current camera with given name -- can be restored later with SetCamera.
// "default" is a special name that is automatically saved on first render.
func (sc *Scene) SaveCamera(name string) {
	if sc.SavedCams == nil {
		sc.SavedCams = make(map[string]Camera)
	}
	sc.SavedCams[name] = sc.Camera
}

// SetCamera sets the current camera to that of given name -- error if not found.
func (sc *Scene) SetCamera(name string) error {
	cam, ok := sc.SavedCams[name]
	if !ok {
		return fmt.Errorf("xyz.Scene: %v saved camera of name: %v not found", sc.Name, name)
	}
	sc.Camera = cam
	sc.SetNeedsRender()
	return nil
}

// Validate traverses the scene and validates all the elements,
// returning all of the errors found.
func (sc *Scene) Validate() error {
	var errs []error
	sc.WalkDown(func(n Node) bool {
		if sld := n.AsSolid(); sld != nil {
			if err := sld.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
		return Continue
	})
	return errors.Join(errs...)
}

// CountNodes returns the number of groups and solids in the scene,
// not including the scene itself.
func (sc *Scene) CountNodes() (groups, solids int) {
	sc.WalkDown(func(n Node) bool {
		switch {
		case n == Node(sc):
		case n.IsSolid():
			solids++
		default:
			groups++
		}
		return Continue
	})
	return
}

// Destroy releases all the resources held by the scene: solids drop their
// mesh and material references, the mesh, material and light libraries are
// emptied and the tree is cleared. It is safe to call more than once.
func (sc *Scene) Destroy() {
	if sc.destroyed {
		return
	}
	sc.WalkDown(func(n Node) bool {
		if sld := n.AsSolid(); sld != nil {
			sld.disconnect()
		}
		return Continue
	})
	sc.Meshes.Reset()
	sc.Materials.Reset()
	sc.Lights.Reset()
	sc.Children = nil
	sc.NeedsUpdate = false
	sc.NeedsRender = false
	sc.destroyed = true
}

// IsDestroyed returns whether [Scene.Destroy] has been called.
func (sc *Scene) IsDestroyed() bool {
	return sc.destroyed
}

var _ Node = &Scene{}
