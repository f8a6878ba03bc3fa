// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armview

import (
	"image"
	"time"

	"cogentcore.org/armviz/xyz"
)

// Driver is the rendering backend that a [View] draws its scene with.
// All methods are called on the single render loop goroutine.
type Driver interface {

	// Size returns the current size of the render surface,
	// which is zero when there is no surface yet.
	Size() image.Point

	// Attach binds the given scene to the render surface,
	// so that it is drawn on every frame.
	Attach(sc *xyz.Scene) error

	// OnFrame registers a callback run on every frame before the
	// scene is drawn, with the time since the previous frame.
	// The returned function cancels the registration.
	OnFrame(fn func(dt time.Duration)) (cancel func())

	// Detach unbinds the scene from the render surface.
	// It must be safe to call when nothing is attached.
	Detach()

	// Release disposes of all the rendering resources held for the scene.
	// The scene itself belongs to its [View], which destroys it.
	Release(sc *xyz.Scene)
}

// HasSurface returns whether the driver has a non-empty render surface
// to build a scene on.
func HasSurface(d Driver) bool {
	if d == nil {
		return false
	}
	sz := d.Size()
	return sz.X > 0 && sz.Y > 0
}
