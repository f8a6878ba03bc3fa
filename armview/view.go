// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armview

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/base/errors"
	"cogentcore.org/armviz/xyz"
	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

var (
	// ErrClosed is returned by operations on a closed [View]
	// that cannot be silently skipped.
	ErrClosed = errors.New("armview: view is closed")

	// ErrNoSurface is returned by [NewView] when the driver has no
	// render surface yet.
	ErrNoSurface = errors.New("armview: driver has no render surface")
)

// View is one live instance of the arm scene on a [Driver].
// It exclusively owns the scene and its resources from [NewView]
// until [View.Close].
type View struct {

	// ID uniquely identifies the scene instance.
	ID uuid.UUID

	// Scene is the retained scene, nil once closed.
	Scene *xyz.Scene

	// Handles are the live update handles into the scene.
	Handles *Handles

	driver Driver
	cancel func()
	tween  *Tween
	onStep func(a arm.Angles) arm.Angles
	closed bool
}

// NewView builds a new arm scene with the given angles and color, attaches
// it to the driver and registers its frame callback. The driver must have a
// render surface, see [HasSurface].
func NewView(d Driver, a arm.Angles, c arm.Color) (*View, error) {
	if !HasSurface(d) {
		return nil, ErrNoSurface
	}
	sc, h := Build(a, c)
	v := &View{ID: uuid.New(), Scene: sc, Handles: h, driver: d}
	if err := d.Attach(sc); err != nil {
		d.Release(sc)
		sc.Destroy()
		return nil, fmt.Errorf("armview: attaching scene: %w", err)
	}
	v.cancel = d.OnFrame(v.frame)
	slog.Debug("armview: built view", "id", v.ID, "angles", a, "color", c)
	return v, nil
}

// IsClosed returns whether [View.Close] has been called.
func (v *View) IsClosed() bool {
	return v == nil || v.closed
}

// ApplyAngles updates the joint frames in place. It is a no-op once closed.
func (v *View) ApplyAngles(a arm.Angles) {
	if v.IsClosed() {
		return
	}
	v.Handles.ApplyAngles(a)
}

// ApplyColor updates the part materials in place. It is a no-op once closed.
func (v *View) ApplyColor(c arm.Color) {
	if v.IsClosed() {
		return
	}
	v.Handles.ApplyColor(c)
}

// Animate starts animating the joints from one pose to another over the
// given duration, replacing any running animation. Each frame the current
// pose is passed to onStep, which owns the pose state and returns the
// angles it accepted, and those are applied to the scene. With a nil
// onStep the tween pose is applied as is.
func (v *View) Animate(from, to arm.Angles, duration time.Duration, fn ease.TweenFunc, onStep func(a arm.Angles) arm.Angles) {
	if v.IsClosed() {
		return
	}
	v.tween = NewTween(from, to, duration, fn)
	v.onStep = onStep
}

// IsAnimating returns whether an animation is running.
func (v *View) IsAnimating() bool {
	return !v.IsClosed() && v.tween != nil
}

// frame is the frame callback of the view.
func (v *View) frame(dt time.Duration) {
	if v.IsClosed() || v.tween == nil {
		return
	}
	a := v.tween.Update(dt)
	if v.onStep != nil {
		a = v.onStep(a)
	}
	v.Handles.ApplyAngles(a)
	if v.tween.Done {
		v.tween = nil
		v.onStep = nil
	}
}

// Export writes the current scene to the given writer as binary glTF.
func (v *View) Export(w io.Writer) error {
	if v.IsClosed() {
		return ErrClosed
	}
	v.Scene.UpdateNodesIfNeeded()
	return xyz.SaveGLTF(v.Scene, w)
}

// Close tears the view down in strict order: cancel the frame callback,
// detach the scene from the surface, then release all resources.
// Afterwards all updates are no-ops. It is safe to call more than once.
func (v *View) Close() {
	if v.IsClosed() {
		return
	}
	v.closed = true
	v.tween = nil
	v.onStep = nil
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.driver.Detach()
	v.driver.Release(v.Scene)
	v.Scene.Destroy()
	v.Handles.release()
	v.Scene = nil
	slog.Debug("armview: closed view", "id", v.ID)
}
