// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armview

import (
	"log/slog"
	"time"

	"cogentcore.org/armviz/arm"
	"github.com/tanema/gween/ease"
)

// Source is the single owner of the current pose and color,
// which a [Host] projects onto its view.
type Source interface {
	Angles() arm.Angles
	Color() arm.Color
}

// Host mounts a [View] of the pose and color of a [Source] on a [Driver].
// The build is deferred until the driver has a render surface.
// Pose and color changes update the view in place; a driver change
// tears the view down and builds a new one.
type Host struct {
	source Source
	driver Driver
	view   *View

	// Builds counts the views built by the host.
	Builds int
}

// NewHost returns a new host for the given source and driver.
// No view is built until [Host.Ensure] is called.
func NewHost(src Source, d Driver) *Host {
	return &Host{source: src, driver: d}
}

// View returns the current view, or nil if none is mounted.
func (h *Host) View() *View {
	return h.view
}

// Driver returns the current driver.
func (h *Host) Driver() Driver {
	return h.driver
}

// Ensure builds the view if it is not yet built and the driver has a render
// surface, returning whether a view is mounted. A missing or empty surface
// defers the build, and is not an error.
func (h *Host) Ensure() (bool, error) {
	if h.view != nil {
		return true, nil
	}
	if !HasSurface(h.driver) {
		slog.Debug("armview: deferring build until the surface is ready")
		return false, nil
	}
	v, err := NewView(h.driver, h.source.Angles(), h.source.Color())
	if err != nil {
		return false, err
	}
	h.view = v
	h.Builds++
	return true, nil
}

// AnglesChanged applies the current source angles to the view.
func (h *Host) AnglesChanged() {
	h.view.ApplyAngles(h.source.Angles())
}

// ColorChanged applies the current source color to the view.
func (h *Host) ColorChanged() {
	h.view.ApplyColor(h.source.Color())
}

// Animate animates the view from the current source angles to the given
// pose, passing each step to set, which must update the source.
// The view shows the source angles after each step, not the raw step.
func (h *Host) Animate(to arm.Angles, duration time.Duration, set func(a arm.Angles)) {
	h.view.Animate(h.source.Angles(), to, duration, ease.InOutQuad, func(a arm.Angles) arm.Angles {
		set(a)
		return h.source.Angles()
	})
}

// SetDriver tears down any current view and switches to the given driver,
// then builds a new view if the new driver has a surface.
func (h *Host) SetDriver(d Driver) (bool, error) {
	h.Close()
	h.driver = d
	return h.Ensure()
}

// Close tears down the current view, if any.
func (h *Host) Close() {
	if h.view == nil {
		return
	}
	h.view.Close()
	h.view = nil
}
