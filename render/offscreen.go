// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/armviz/armview"
	"cogentcore.org/armviz/math32"
	"cogentcore.org/armviz/xyz"
)

// meshData is the uploaded vertex data of one mesh.
type meshData struct {
	vertex []math32.Vector3
	normal []math32.Vector3
	index  []uint32
}

// Stats are the statistics of the last frame drawn by an [Offscreen] driver.
type Stats struct {

	// Solids is the number of solids drawn.
	Solids int

	// Triangles is the number of triangles drawn.
	Triangles int

	// Bounds is the world bounding box of the solids drawn.
	Bounds math32.Box3
}

// Offscreen is a headless render driver for a [Loop]. It draws its
// attached scene on every tick that needs it, uploading mesh data on
// first use and keeping per frame statistics instead of pixels.
type Offscreen struct {

	// Loop is the loop driving the frames.
	Loop *Loop

	// Frames is the number of frames drawn.
	Frames int

	// Last are the statistics of the last frame drawn.
	Last Stats

	size       image.Point
	scene      *xyz.Scene
	meshes     map[string]*meshData
	cur        Stats
	onDraw     func()
	cancelDraw func()
}

// NewOffscreen returns a new offscreen driver on the given loop with
// a surface of the given size, which may be empty.
func NewOffscreen(l *Loop, width, height int) *Offscreen {
	o := &Offscreen{Loop: l, meshes: map[string]*meshData{}}
	o.SetSize(width, height)
	o.cancelDraw = l.OnDraw(o.draw)
	return o
}

// Size returns the size of the surface.
func (o *Offscreen) Size() image.Point {
	return o.size
}

// SetSize sets the size of the surface, updating the camera aspect
// ratio of any attached scene.
func (o *Offscreen) SetSize(width, height int) {
	o.size = image.Pt(max(width, 0), max(height, 0))
	if o.scene != nil && o.size.Y > 0 {
		o.scene.Camera.Aspect = float32(o.size.X) / float32(o.size.Y)
		o.scene.SetNeedsRender()
	}
}

// Attach binds the scene to the surface. Only one scene may be attached.
func (o *Offscreen) Attach(sc *xyz.Scene) error {
	if o.size.X <= 0 || o.size.Y <= 0 {
		return fmt.Errorf("render.Offscreen: cannot attach %q to an empty surface", sc.Name)
	}
	if o.scene != nil && o.scene != sc {
		return fmt.Errorf("render.Offscreen: scene %q is already attached", o.scene.Name)
	}
	o.scene = sc
	sc.Camera.Aspect = float32(o.size.X) / float32(o.size.Y)
	sc.SetNeedsUpdate()
	slog.Debug("render.Offscreen: attached scene", "scene", sc.Name, "size", o.size)
	return nil
}

// OnFrame registers a callback on the loop.
func (o *Offscreen) OnFrame(fn func(dt time.Duration)) func() {
	return o.Loop.OnFrame(fn)
}

// Detach unbinds the attached scene, if any.
func (o *Offscreen) Detach() {
	if o.scene == nil {
		return
	}
	slog.Debug("render.Offscreen: detached scene", "scene", o.scene.Name)
	o.scene = nil
}

// Release drops the uploaded mesh data of the scene.
// The scene itself is left for its owner to destroy.
func (o *Offscreen) Release(sc *xyz.Scene) {
	if sc == nil {
		return
	}
	for _, nm := range sc.MeshList() {
		delete(o.meshes, nm)
	}
	if o.scene == sc {
		o.scene = nil
	}
	o.Last = Stats{}
}

// Close stops drawing on the loop. The driver must not be used afterwards.
func (o *Offscreen) Close() {
	if o.cancelDraw != nil {
		o.cancelDraw()
		o.cancelDraw = nil
	}
}

// Scene returns the attached scene, or nil.
func (o *Offscreen) Scene() *xyz.Scene {
	return o.scene
}

// NumUploaded returns the number of meshes uploaded.
func (o *Offscreen) NumUploaded() int {
	return len(o.meshes)
}

// OnRender sets a function called after each frame is drawn.
func (o *Offscreen) OnRender(fn func()) {
	o.onDraw = fn
}

func (o *Offscreen) draw(dt time.Duration) {
	if o.scene == nil {
		return
	}
	o.scene.DoUpdate(o)
}

func (o *Offscreen) RenderStart(sc *xyz.Scene) error {
	if sc != o.scene {
		return fmt.Errorf("render.Offscreen: scene %q is not attached", sc.Name)
	}
	o.cur = Stats{Bounds: math32.B3Empty()}
	return nil
}

func (o *Offscreen) DrawSolid(sld *xyz.Solid) {
	ms := sld.Mesh
	nm := ms.AsMeshBase().Name
	md, ok := o.meshes[nm]
	if !ok {
		md = &meshData{}
		md.vertex, md.normal, md.index = xyz.MeshData(ms)
		o.meshes[nm] = md
	}
	o.cur.Solids++
	o.cur.Triangles += len(md.index) / 3
	o.cur.Bounds.ExpandByBox(sld.WorldBBox)
}

func (o *Offscreen) RenderEnd(sc *xyz.Scene) {
	o.Last = o.cur
	o.Frames++
	if o.onDraw != nil {
		o.onDraw()
	}
}

var (
	_ armview.Driver = (*Offscreen)(nil)
	_ xyz.Renderer   = (*Offscreen)(nil)
)
