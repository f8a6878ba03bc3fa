// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package armview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"
	"testing"
	"time"

	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/base/tolassert"
	"cogentcore.org/armviz/math32"
	"cogentcore.org/armviz/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

var testPoses = []arm.Angles{
	arm.HomeAngles,
	{J0: 0, J1: 75, J2: 45, J3: 15, J4: 10},
	{J0: 359, J1: 0, J2: 90, J3: 1, J4: 45},
	{J0: 180, J1: 30, J2: 30, J3: 30, J4: 30},
	{J0: 12.5, J1: 89, J2: 45, J3: 7, J4: 3},
}

// assertAngle asserts that two angles in radians are equal modulo a full turn.
func assertAngle(t *testing.T, want, have float32, msgAndArgs ...any) {
	t.Helper()
	d := math32.Mod(have-want, 2*math32.Pi)
	if d < 0 {
		d += 2 * math32.Pi
	}
	if d > math32.Pi {
		d -= 2 * math32.Pi
	}
	tolassert.EqualTol(t, 0, d, 1e-4, msgAndArgs...)
}

func assertVector(t *testing.T, want, have math32.Vector3, msgAndArgs ...any) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, 1e-5, msgAndArgs...)
	tolassert.EqualTol(t, want.Y, have.Y, 1e-5, msgAndArgs...)
	tolassert.EqualTol(t, want.Z, have.Z, 1e-5, msgAndArgs...)
}

func TestApplyAnglesReadback(t *testing.T) {
	_, h := Build(arm.Angles{}, arm.Red)
	for _, a := range testPoses {
		h.ApplyAngles(a)
		assertAngle(t, math32.DegToRad(a.J0), h.Joints[arm.J0].Radians(), a)
		for j := arm.J1; j < arm.JointsN; j++ {
			assertAngle(t, -math32.DegToRad(a.Get(j)), h.Joints[j].Radians(), "%v %v", a, j)
		}
		back := h.Angles()
		for j := range arm.JointsN {
			assertAngle(t, math32.DegToRad(a.Get(j)), math32.DegToRad(back.Get(j)), "%v %v", a, j)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	sc, h := Build(arm.HomeAngles, arm.Blue)
	a := testPoses[3]
	h.ApplyAngles(a)
	var once [arm.JointsN]math32.Quat
	for j, jt := range h.Joints {
		once[j] = jt.Group.Pose.Quat
	}
	h.ApplyAngles(a)
	for j, jt := range h.Joints {
		assert.Equal(t, once[j], jt.Group.Pose.Quat)
	}
	assert.True(t, sc.NeedsUpdate)
}

func TestApplyOrderIndependent(t *testing.T) {
	_, h1 := Build(arm.HomeAngles, arm.Red)
	_, h2 := Build(arm.HomeAngles, arm.Red)
	a := testPoses[4]
	h1.ApplyAngles(a)
	h1.ApplyColor(arm.Green)
	h2.ApplyColor(arm.Green)
	h2.ApplyAngles(a)
	for j := range arm.JointsN {
		assert.Equal(t, h1.Joints[j].Group.Pose.Quat, h2.Joints[j].Group.Pose.Quat)
	}
	for p := range arm.PartsN {
		assert.Equal(t, h1.Materials[p].Color, h2.Materials[p].Color)
	}
}

func TestApplyColor(t *testing.T) {
	sc, h := Build(arm.HomeAngles, arm.Red)
	colors := append([]arm.Color{}, arm.AllColors...)
	colors = append(colors, "purple", "")
	for _, c := range colors {
		h.ApplyColor(c)
		for p, mt := range h.Materials {
			assert.Equal(t, c.RGBA(), mt.Color, "%v %v", c, arm.Parts(p))
		}
		// every arm solid shows the color
		sc.FindPath(FrameName).AsNodeBase().WalkDown(func(n xyz.Node) bool {
			if sld := n.AsSolid(); sld != nil {
				assert.Equal(t, c.RGBA(), sld.Material.Color, sld.Path())
			}
			return xyz.Continue
		})
	}
	h.ApplyColor("purple")
	assert.Equal(t, arm.FallbackGray, h.MaterialByName("joints").Color)
	assert.Equal(t, GroundColor, sc.MaterialByName(GroundName).Color)
}

func TestApplyNoAllocation(t *testing.T) {
	sc, h := Build(arm.HomeAngles, arm.Red)
	nmesh, nmat := sc.Meshes.Len(), sc.Materials.Len()
	groups, solids := sc.CountNodes()

	for i, a := range testPoses {
		h.ApplyAngles(a)
		h.ApplyColor(arm.AllColors[i%len(arm.AllColors)])
	}
	assert.Equal(t, nmesh, sc.Meshes.Len())
	assert.Equal(t, nmat, sc.Materials.Len())
	g2, s2 := sc.CountNodes()
	assert.Equal(t, groups, g2)
	assert.Equal(t, solids, s2)

	a := testPoses[2]
	assert.Zero(t, testing.AllocsPerRun(100, func() { h.ApplyAngles(a) }))
	assert.Zero(t, testing.AllocsPerRun(100, func() { h.ApplyColor(arm.White) }))
}

func TestBuildStructure(t *testing.T) {
	sc, h := Build(arm.HomeAngles, arm.Red)
	require.NoError(t, sc.Validate())
	assert.Equal(t, 6, len(h.Materials))
	assert.Equal(t, 7, sc.Materials.Len()) // parts and ground
	assert.Equal(t, 2, sc.Lights.Len())

	groups, solids := sc.CountNodes()
	assert.Equal(t, 6, groups)  // frame and j0..j4
	assert.Equal(t, 10, solids) // ground, base, 3 links, pipette, 4 spheres

	for j := range arm.JointsN {
		jt := h.JointByName(j.String())
		require.NotNil(t, jt)
		assert.True(t, strings.HasPrefix(jt.Group.Path(), "/arm/frame/"), jt.Group.Path())
	}
	assert.Nil(t, h.JointByName("j9"))
	assert.Nil(t, h.MaterialByName("ground"))
	assert.Equal(t, "/arm/frame/j0/j1/j2/j3/j4/pipette", sc.FindPath("frame/j0/j1/j2/j3/j4/pipette").AsNodeBase().Path())
}

func TestBuildMatchesChain(t *testing.T) {
	for _, a := range testPoses {
		sc, h := Build(a, arm.Red)
		sc.UpdateNodes()
		origins := arm.JointOrigins(&arm.Standard, a)
		for j := range arm.JointsN {
			assertVector(t, origins[j], h.Joints[j].Group.Pose.WorldPos(), "%v %v", a, j)
		}
		tip := sc.FindPath("frame/j0/j1/j2/j3/j4/tip")
		assertVector(t, origins[arm.J4], tip.AsNodeBase().Pose.WorldPos())

		// the pipette runs along the reach axis from the J4 origin
		pip := sc.FindPath("frame/j0/j1/j2/j3/j4/pipette").AsNodeBase()
		reach := arm.ReachAxis(&arm.Standard, a, arm.J4)
		mid := origins[arm.J4].Add(reach.MulScalar(arm.Standard.Pipette.Height / 2))
		assertVector(t, mid, pip.Pose.WorldPos(), a)
		axis := math32.Vec3(0, 1, 0).MulMatrix4AsVector4(&pip.Pose.WorldMatrix, 0)
		assertVector(t, reach, axis, a)

		base := sc.FindPath("frame/base").AsNodeBase()
		assertVector(t, math32.Vec3(0, 0.1, 0), base.Pose.WorldPos())
	}
}

// describe returns a structural description of the scene hierarchy.
func describe(sc *xyz.Scene) []string {
	var lines []string
	sc.WalkDown(func(n xyz.Node) bool {
		nb := n.AsNodeBase()
		line := fmt.Sprintf("%s pos=%v quat=%v", nb.Path(), nb.Pose.Pos, nb.Pose.Quat)
		if sld := n.AsSolid(); sld != nil {
			line += fmt.Sprintf(" mesh=%s material=%s color=%v", sld.MeshName, sld.Material.Name, sld.Material.Color)
		}
		lines = append(lines, line)
		return xyz.Continue
	})
	return lines
}

func TestBuildDeterministic(t *testing.T) {
	sc1, _ := Build(testPoses[1], arm.Green)
	sc2, _ := Build(testPoses[1], arm.Green)
	assert.Equal(t, describe(sc1), describe(sc2))
	assert.Equal(t, sc1.MeshList(), sc2.MeshList())
	sc3, _ := Build(testPoses[2], arm.Green)
	assert.NotEqual(t, describe(sc1), describe(sc3))
}

// testDriver is a headless driver recording the calls made to it.
type testDriver struct {
	size      image.Point
	calls     []string
	attached  *xyz.Scene
	frames    map[int]func(dt time.Duration)
	nextFrame int
	attachErr error
}

func newTestDriver(w, h int) *testDriver {
	return &testDriver{size: image.Pt(w, h), frames: map[int]func(time.Duration){}}
}

func (td *testDriver) Size() image.Point { return td.size }

func (td *testDriver) Attach(sc *xyz.Scene) error {
	td.calls = append(td.calls, "attach")
	if td.attachErr != nil {
		return td.attachErr
	}
	td.attached = sc
	return nil
}

func (td *testDriver) OnFrame(fn func(dt time.Duration)) func() {
	td.calls = append(td.calls, "frame")
	id := td.nextFrame
	td.nextFrame++
	td.frames[id] = fn
	return func() {
		td.calls = append(td.calls, "cancel")
		delete(td.frames, id)
	}
}

func (td *testDriver) Detach() {
	td.calls = append(td.calls, "detach")
	td.attached = nil
}

func (td *testDriver) Release(sc *xyz.Scene) {
	td.calls = append(td.calls, "release")
}

func (td *testDriver) step(dt time.Duration) {
	for _, fn := range td.frames {
		fn(dt)
	}
}

func TestViewClose(t *testing.T) {
	td := newTestDriver(800, 600)
	v, err := NewView(td, arm.HomeAngles, arm.Red)
	require.NoError(t, err)
	assert.Equal(t, v.Scene, td.attached)
	assert.Len(t, td.frames, 1)
	h := v.Handles
	sc := v.Scene

	v.Close()
	assert.Equal(t, []string{"attach", "frame", "cancel", "detach", "release"}, td.calls)
	assert.Empty(t, td.frames)
	assert.True(t, v.IsClosed())
	assert.True(t, sc.IsDestroyed())
	assert.False(t, h.IsLive())
	assert.Nil(t, v.Scene)

	// updates after teardown are safe no-ops
	assert.NotPanics(t, func() {
		v.ApplyAngles(testPoses[2])
		v.ApplyColor(arm.Blue)
		h.ApplyAngles(testPoses[2])
		h.ApplyColor(arm.Blue)
		v.Animate(arm.HomeAngles, testPoses[1], time.Second, nil, nil)
	})
	assert.Nil(t, h.JointByName("j1"))
	assert.Equal(t, arm.Angles{}, h.Angles())
	assert.ErrorIs(t, v.Export(&bytes.Buffer{}), ErrClosed)

	v.Close()
	assert.Len(t, td.calls, 5)

	var nilView *View
	assert.NotPanics(t, func() {
		nilView.ApplyAngles(arm.HomeAngles)
		nilView.Close()
	})
}

func TestViewErrors(t *testing.T) {
	_, err := NewView(newTestDriver(0, 600), arm.HomeAngles, arm.Red)
	assert.ErrorIs(t, err, ErrNoSurface)
	_, err = NewView(nil, arm.HomeAngles, arm.Red)
	assert.ErrorIs(t, err, ErrNoSurface)

	td := newTestDriver(10, 10)
	lost := errors.New("surface lost")
	td.attachErr = lost
	_, err = NewView(td, arm.HomeAngles, arm.Red)
	assert.ErrorIs(t, err, lost)
	assert.Equal(t, []string{"attach", "release"}, td.calls)
}

func TestViewExport(t *testing.T) {
	v, err := NewView(newTestDriver(10, 10), arm.HomeAngles, arm.Red)
	require.NoError(t, err)
	defer v.Close()
	var buf bytes.Buffer
	require.NoError(t, v.Export(&buf))
	assert.Equal(t, "glTF", buf.String()[:4])
}

func TestTween(t *testing.T) {
	tw := NewTween(arm.Angles{}, arm.Angles{J0: 180, J1: 90}, time.Second, nil)
	a := tw.Update(500 * time.Millisecond)
	tolassert.Equal(t, 90, a.J0)
	tolassert.Equal(t, 45, a.J1)
	assert.False(t, tw.Done)
	a = tw.Update(600 * time.Millisecond)
	assert.True(t, tw.Done)
	assert.Equal(t, tw.Target, a)
	assert.Equal(t, tw.Target, tw.Update(time.Second))
}

func TestViewAnimate(t *testing.T) {
	td := newTestDriver(10, 10)
	v, err := NewView(td, arm.HomeAngles, arm.Red)
	require.NoError(t, err)
	defer v.Close()

	state := arm.HomeAngles
	target := testPoses[1]
	v.Animate(state, target, time.Second, ease.InOutQuad, func(a arm.Angles) arm.Angles {
		state = a
		return a
	})
	assert.True(t, v.IsAnimating())
	for range 5 {
		td.step(250 * time.Millisecond)
	}
	assert.False(t, v.IsAnimating())
	assert.Equal(t, target, state)
	for j := range arm.JointsN {
		assertAngle(t, arm.JointSign(j)*math32.DegToRad(target.Get(j)), v.Handles.Joints[j].Radians())
	}
}

type testSource struct {
	angles arm.Angles
	color  arm.Color
}

func (ts *testSource) Angles() arm.Angles { return ts.angles }
func (ts *testSource) Color() arm.Color   { return ts.color }

func TestHostDeferredBuild(t *testing.T) {
	src := &testSource{angles: arm.HomeAngles, color: arm.Red}
	td := newTestDriver(0, 0)
	hs := NewHost(src, td)

	ok, err := hs.Ensure()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, hs.View())
	assert.Empty(t, td.calls)

	// updates before the build are no-ops
	hs.AnglesChanged()
	hs.ColorChanged()

	td.size = image.Pt(640, 480)
	ok, err = hs.Ensure()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, hs.Builds)

	src.angles = testPoses[2]
	hs.AnglesChanged()
	src.color = arm.White
	hs.ColorChanged()
	v := hs.View()
	assertAngle(t, -math32.DegToRad(testPoses[2].J2), v.Handles.Joints[arm.J2].Radians())
	assert.Equal(t, arm.White.RGBA(), v.Handles.Materials[arm.Pipette].Color)

	// pose and color changes never rebuild
	ok, _ = hs.Ensure()
	assert.True(t, ok)
	assert.Equal(t, 1, hs.Builds)
	assert.Equal(t, v, hs.View())
}

// snapSource is a source that snaps its angles to the joint domains,
// like the control sliders do.
type snapSource struct {
	testSource
}

func (ss *snapSource) set(a arm.Angles) {
	ss.angles = a.Clamped()
}

func TestHostAnimateFollowsSource(t *testing.T) {
	src := &snapSource{testSource{angles: arm.HomeAngles, color: arm.Red}}
	td := newTestDriver(100, 100)
	hs := NewHost(src, td)
	defer hs.Close()
	_, err := hs.Ensure()
	require.NoError(t, err)

	target := arm.Angles{J0: 100, J1: 10, J2: 10, J3: 10, J4: 10}
	hs.Animate(target, time.Second, src.set)
	for hs.View().IsAnimating() {
		td.step(333 * time.Millisecond)
		have := hs.View().Handles.Angles()
		for j := range arm.JointsN {
			want := src.angles.Get(j)
			assert.Equal(t, want, math32.Round(want), "joint %v is not snapped", j)
			tolassert.EqualTol(t, want, have.Get(j), 1e-2, "joint %v", j)
		}
	}
	assert.Equal(t, target, src.angles)
}

func TestHostSetDriver(t *testing.T) {
	src := &testSource{angles: arm.HomeAngles, color: arm.Blue}
	td1 := newTestDriver(100, 100)
	hs := NewHost(src, td1)
	_, err := hs.Ensure()
	require.NoError(t, err)
	v1 := hs.View()

	td2 := newTestDriver(200, 100)
	ok, err := hs.SetDriver(td2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, v1.IsClosed())
	assert.Equal(t, []string{"attach", "frame", "cancel", "detach", "release"}, td1.calls)
	assert.Equal(t, []string{"attach", "frame"}, td2.calls)
	assert.NotEqual(t, v1.ID, hs.View().ID)
	assert.Equal(t, 2, hs.Builds)
	assert.Equal(t, arm.Blue.RGBA(), hs.View().Handles.Materials[arm.Base].Color)

	hs.Animate(testPoses[1], time.Second, func(a arm.Angles) { src.angles = a })
	assert.True(t, hs.View().IsAnimating())

	ok, err = hs.SetDriver(nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, hs.View())
	hs.Close()
}
