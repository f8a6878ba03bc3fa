// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image/color"
)

// Material is the surface of a solid: a uniform color, where an alpha
// below 255 makes the surface transparent. Materials are kept on the
// [Scene] by name and shared by pointer, so changing a material
// changes every solid using it.
type Material struct {

	// Name is the name of the material, which is its key on the [Scene].
	Name string

	// Color is the color of the surface.
	Color color.RGBA

	// CullBack is whether the back faces of the surface are hidden.
	CullBack bool

	// CastShadow is whether solids with this material cast shadows.
	CastShadow bool
}

// Defaults sets an opaque mid gray with back face culling.
func (mt *Material) Defaults() {
	mt.Color = color.RGBA{128, 128, 128, 255}
	mt.CullBack = true
}

func (mt *Material) String() string {
	return fmt.Sprintf("%s: %v", mt.Name, mt.Color)
}

// IsTransparent returns whether the color is not fully opaque.
func (mt *Material) IsTransparent() bool {
	return mt.Color.A < 255
}

// SetColor sets the [Material.Color].
func (mt *Material) SetColor(v color.RGBA) *Material {
	mt.Color = v
	return mt
}

// SetCastShadow sets [Material.CastShadow].
func (mt *Material) SetCastShadow(v bool) *Material {
	mt.CastShadow = v
	return mt
}

// NewMaterial adds a new [Material] with default settings and the given
// name to the scene, replacing any existing one of the same name.
func (sc *Scene) NewMaterial(name string) *Material {
	mt := &Material{Name: name}
	mt.Defaults()
	sc.Materials.Add(name, mt)
	return mt
}

// MaterialByName returns the material with the given name, or nil.
func (sc *Scene) MaterialByName(name string) *Material {
	mt, _ := sc.Materials.Get(name)
	return mt
}
