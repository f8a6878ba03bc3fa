// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis aligned 3D box spanning the corners Min and Max.
// A box with Max below Min on any axis is empty.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns the box from (x0, y0, z0) to (x1, y1, z1).
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Min: Vec3(x0, y0, z0), Max: Vec3(x1, y1, z1)}
}

// B3Empty returns an empty box, which any expansion replaces.
func B3Empty() Box3 {
	var b Box3
	b.SetEmpty()
	return b
}

// SetEmpty makes the box empty, with Min at +Infinity and Max at -Infinity.
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether the box is empty.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// SetFromCenterAndSize sets the box to the given size around the center.
func (b *Box3) SetFromCenterAndSize(center, size Vector3) {
	half := size.MulScalar(0.5)
	b.Min = center.Sub(half)
	b.Max = center.Add(half)
}

// ExpandByPoint grows the box to include p.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min.SetMin(p)
	b.Max.SetMax(p)
}

// ExpandByBox grows the box to include o.
func (b *Box3) ExpandByBox(o Box3) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether p is inside the box or on its surface.
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// MulMatrix4 returns the box spanning the eight corners of b
// transformed by m. An empty box stays empty.
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	if b.IsEmpty() {
		return b
	}
	nb := B3Empty()
	for i := range 8 {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		nb.ExpandByPoint(c.MulMatrix4(m))
	}
	return nb
}

// Translate returns the box moved by offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}
