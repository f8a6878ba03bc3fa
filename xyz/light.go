// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/armviz/math32"
)

// Light is a light source of a scene. Lights are kept on the [Scene]
// by name, outside of the node tree.
type Light interface {
	AsLightBase() *LightBase
}

// LightBase is the part shared by all lights.
type LightBase struct {

	// Name is the name of the light, which is its key on the [Scene].
	Name string

	// On is whether the light is on.
	On bool

	// Lumens is the intensity of the light, from 0 to 1.
	Lumens float32

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

func (lb *LightBase) init(name string, lumens float32, clr LightColors) {
	lb.Name = name
	lb.On = true
	lb.Lumens = math32.Clamp(lumens, 0, 1)
	lb.Color = clr.RGBA()
}

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an ambient light to the scene.
func NewAmbientLight(sc *Scene, name string, lumens float32, clr LightColors) *AmbientLight {
	lt := &AmbientLight{}
	lt.init(name, lumens, clr)
	sc.AddLight(lt)
	return lt
}

// DirLight is a light from far away in the direction of Pos, lighting
// the scene along -Pos without falloff.
type DirLight struct {
	LightBase

	// Pos is the direction the light comes from.
	Pos math32.Vector3

	// CastShadow is whether the light casts shadows from solids
	// that have [Material.CastShadow] set.
	CastShadow bool
}

// NewDirLight adds a directional light to the scene, overhead and in
// front by default.
func NewDirLight(sc *Scene, name string, lumens float32, clr LightColors) *DirLight {
	lt := &DirLight{}
	lt.init(name, lumens, clr)
	lt.Pos.Set(0, 1, 1)
	sc.AddLight(lt)
	return lt
}

// SetPos sets the direction the light comes from, and returns the light.
func (dl *DirLight) SetPos(x, y, z float32) *DirLight {
	dl.Pos.Set(x, y, z)
	return dl
}

// Dir returns the unit direction the light travels in.
func (dl *DirLight) Dir() math32.Vector3 {
	return dl.Pos.Normal().MulScalar(-1)
}

// AddLight adds the given light to the scene, replacing any of the same name.
func (sc *Scene) AddLight(lt Light) {
	sc.Lights.Add(lt.AsLightBase().Name, lt)
}

// LightColors are the colors of common light sources.
type LightColors int32

const (
	// DirectSun is white noon sunlight.
	DirectSun LightColors = iota

	// Overcast is the blue tinted light of a cloudy sky.
	Overcast

	// Halogen is a warm lamp.
	Halogen
)

// RGBA returns the color of the light source.
func (lc LightColors) RGBA() color.RGBA {
	switch lc {
	case Overcast:
		return color.RGBA{201, 226, 255, 255}
	case Halogen:
		return color.RGBA{255, 241, 224, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}
