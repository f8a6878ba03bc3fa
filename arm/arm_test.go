// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arm

import (
	"math"
	"testing"

	"cogentcore.org/armviz/base/tolassert"
	"cogentcore.org/armviz/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVector(t *testing.T, want, have math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, 1e-5, msgAndArgs...)
	tolassert.EqualTol(t, want.Y, have.Y, 1e-5, msgAndArgs...)
	tolassert.EqualTol(t, want.Z, have.Z, 1e-5, msgAndArgs...)
}

func TestJoints(t *testing.T) {
	assert.Equal(t, "j0", J0.String())
	assert.Equal(t, "j4", J4.String())
	assert.Equal(t, "Joints(7)", Joints(7).String())
	j, err := ParseJoint("J3")
	require.NoError(t, err)
	assert.Equal(t, J3, j)
	_, err = ParseJoint("j5")
	assert.Error(t, err)
	assert.False(t, JointsN.IsValid())
}

func TestAngles(t *testing.T) {
	var a Angles
	a.Set(J2, 30)
	a.Set(JointsN, 99)
	assert.Equal(t, float32(30), a.Get(J2))
	assert.Equal(t, float32(0), a.Get(JointsN))
	assert.Equal(t, [JointsN]float32{0, 0, 30, 0, 0}, a.Array())
	assert.Equal(t, "j0=0 j1=65 j2=60 j3=45 j4=90", HomeAngles.String())

	wild := Angles{J0: 400, J1: -10, J2: 44.6, J3: 90.2, J4: 12}
	assert.Equal(t, Angles{J0: 360, J1: 0, J2: 45, J3: 90, J4: 12}, wild.Clamped())
	assert.Equal(t, HomeAngles, HomeAngles.Clamped())
}

func TestDomainClamp(t *testing.T) {
	d := Domains[J1]
	assert.Equal(t, float32(90), d.Clamp(120))
	assert.Equal(t, float32(0), d.Clamp(-5))
	assert.Equal(t, float32(45), d.Clamp(44.6))
	assert.Equal(t, float32(0), d.Clamp(float32(math.NaN())))
	assert.Equal(t, float32(360), Domains[J0].Clamp(360.4))
	assert.True(t, Domains[J0].Contains(180))
	assert.False(t, d.Contains(91))

	coarse := Domain{Min: 10, Max: 20, Step: 5}
	assert.Equal(t, float32(15), coarse.Clamp(13))
	assert.Equal(t, float32(20), coarse.Clamp(19))
}

func TestColors(t *testing.T) {
	for _, c := range AllColors {
		assert.True(t, c.IsValid(), c)
		assert.NotEqual(t, FallbackGray, c.RGBA(), c)
	}
	assert.Equal(t, uint8(255), Red.RGBA().R)
	assert.Equal(t, uint8(255), Blue.RGBA().B)
	assert.Equal(t, FallbackGray, Color("purple").RGBA())
	assert.Equal(t, FallbackGray, Color("").RGBA())

	c, err := ParseColor(" Blue ")
	require.NoError(t, err)
	assert.Equal(t, Blue, c)
	_, err = ParseColor("purple")
	assert.Error(t, err)
}

func TestGeometry(t *testing.T) {
	g := Standard
	require.NoError(t, g.Validate())
	tolassert.Equal(t, float32(1.4), g.TotalReach())
	assert.Equal(t, math32.Vec3(0.5, 0.2, 0.5), g.Base.Size())
	assert.Equal(t, float32(0.1), g.Pipette.Reach())
	assert.Equal(t, "joints", Spheres.String())

	g.Links[1].Length = 0
	assert.Error(t, g.Validate())
}

func TestFrameSigns(t *testing.T) {
	a := Angles{J0: 270, J1: 30, J2: 45, J3: 60, J4: 90}
	frs := Chain(&Standard, a)
	tolassert.Equal(t, math32.DegToRad(270), frs[J0].Radians())
	assert.Equal(t, AxisY, frs[J0].Axis)
	assert.Equal(t, Joints(-1), frs[J0].Parent)
	for j := J1; j < JointsN; j++ {
		assert.Equal(t, AxisX, frs[j].Axis)
		assert.Equal(t, j-1, frs[j].Parent)
		tolassert.Equal(t, -math32.DegToRad(a.Get(j)), frs[j].Radians(), j)
	}
	assert.Equal(t, math32.Vec3(0, 0.2, 0), frs[J0].Offset)
	assert.Equal(t, math32.Vector3{}, frs[J1].Offset)
	assert.Equal(t, math32.Vec3(0, 0, 0.6), frs[J2].Offset)
	assert.Equal(t, math32.Vec3(0, 0, 0.45), frs[J3].Offset)
	assert.Equal(t, math32.Vec3(0, 0, 0.25), frs[J4].Offset)
}

func TestZeroPose(t *testing.T) {
	// links lie along local +Z, so the zero pose reaches out horizontally
	assertVector(t, math32.Vec3(0, 0.2, 1.4), TipPosition(&Standard, Angles{}))
	for j := range JointsN {
		assertVector(t, Forward, ReachAxis(&Standard, Angles{}, j))
	}
}

func TestStackedPose(t *testing.T) {
	// raising the shoulder a quarter turn stacks the chain vertically
	a := Angles{J1: 90}
	assertVector(t, math32.Vec3(0, 0.2+1.4, 0), TipPosition(&Standard, a))
	os := JointOrigins(&Standard, a)
	assertVector(t, math32.Vec3(0, 0.2, 0), os[J1])
	assertVector(t, math32.Vec3(0, 0.8, 0), os[J2])
	assertVector(t, math32.Vec3(0, 1.25, 0), os[J3])
	assertVector(t, math32.Vec3(0, 1.5, 0), os[J4])
	assertVector(t, math32.Vec3(0, 1, 0), ReachAxis(&Standard, a, J4))
}

func TestBaseYaw(t *testing.T) {
	a := Angles{J0: 90}
	assertVector(t, math32.Vec3(1, 0, 0), ReachAxis(&Standard, a, J0))
	assertVector(t, math32.Vec3(1.4, 0.2, 0), TipPosition(&Standard, a))

	// offsets are unchanged in each local frame
	frs := Chain(&Standard, a)
	zero := Chain(&Standard, Angles{})
	for j := range JointsN {
		assert.Equal(t, zero[j].Offset, frs[j].Offset)
	}

	// yaw is periodic
	w0 := World(&Standard, Angles{J0: 30, J1: 20})
	w1 := World(&Standard, Angles{J0: 390, J1: 20})
	for j := range JointsN {
		assert.True(t, w0[j].IsEqualTol(&w1[j], 1e-5), j)
	}
}

// oracleWorld computes the world frames with mathgl, as an
// independent implementation of the chain composition.
func oracleWorld(g *Geometry, a Angles) [JointsN]mgl32.Mat4 {
	var ws [JointsN]mgl32.Mat4
	par := mgl32.Translate3D(0, g.Base.Height, 0).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(a.J0)))
	ws[J0] = par
	pitches := [JointsN]float32{0, a.J1, a.J2, a.J3, a.J4}
	offsets := [JointsN]float32{0, 0, g.Links[0].Length, g.Links[1].Length, g.Links[2].Length}
	for j := J1; j < JointsN; j++ {
		local := mgl32.Translate3D(0, 0, offsets[j]).Mul4(mgl32.HomogRotate3DX(-mgl32.DegToRad(pitches[j])))
		par = par.Mul4(local)
		ws[j] = par
	}
	return ws
}

func TestChainOracle(t *testing.T) {
	poses := []Angles{
		HomeAngles,
		{J0: 0, J1: 75, J2: 45, J3: 15, J4: 10},
		{J0: 123, J1: 12, J2: 89, J3: 3, J4: 47},
		{J0: -45, J1: 120, J2: -30, J3: 200, J4: 0},
	}
	for _, a := range poses {
		ws := World(&Standard, a)
		ow := oracleWorld(&Standard, a)
		for j := range JointsN {
			for i := range 16 {
				tolassert.EqualTol(t, ow[j][i], ws[j][i], 1e-5, "pose %v joint %v element %d", a, j, i)
			}
		}
		tip := ow[J4].Mul4x1(mgl32.Vec4{0, 0, Standard.Pipette.Height, 1})
		assertVector(t, math32.Vec3(tip[0], tip[1], tip[2]), TipPosition(&Standard, a), a)
	}
}
