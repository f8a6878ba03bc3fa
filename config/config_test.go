// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, arm.HomeAngles, c.Pose)
	assert.Equal(t, arm.Red, c.Color)
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, 60, c.FPS)
	assert.False(t, c.Camera.IsSet())
	assert.Empty(t, c.Control.Addr)
	assert.Equal(t, time.Duration(0), c.TweenDuration())
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := New()
	c.Color = "purple"
	c.Width = -1
	c.FPS = 0
	c.Tween = -2
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purple")
	assert.Contains(t, err.Error(), "-1x600")
	assert.Contains(t, err.Error(), "fps")
	assert.Contains(t, err.Error(), "tween")
}

func TestSaveOpen(t *testing.T) {
	c := New()
	c.Pose = arm.Angles{J0: 90, J1: 30, J2: 20, J3: 10, J4: 5}
	c.Color = arm.Blue
	c.Camera.Pos = math32.Vec3(2, 1, 2)
	c.Control.Addr = "localhost:8081"
	c.Tween = 0.5

	fn := filepath.Join(t.TempDir(), "armviz.toml")
	require.NoError(t, c.Save(fn))
	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, c, got)
	assert.True(t, got.Camera.IsSet())
	assert.Equal(t, 500*time.Millisecond, got.TweenDuration())
}

func TestOpenPartial(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "armviz.toml")
	require.NoError(t, os.WriteFile(fn, []byte("color = \"green\"\n[pose]\nj1 = 10.0\n"), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	want := arm.HomeAngles
	want.J1 = 10
	assert.Equal(t, want, c.Pose)
	assert.Equal(t, arm.Green, c.Color)
	assert.Equal(t, 800, c.Width)
}

func TestOpenYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "armviz.yaml")
	data := `color: white
width: 320
height: 240
pose:
  j0: 180
camera:
  pos: {x: 1, y: 2, z: 3}
control:
  addr: ":9000"
`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	c, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, arm.White, c.Color)
	assert.Equal(t, 320, c.Width)
	assert.Equal(t, 240, c.Height)
	assert.Equal(t, float32(180), c.Pose.J0)
	assert.Equal(t, arm.HomeAngles.J1, c.Pose.J1)
	assert.Equal(t, math32.Vec3(1, 2, 3), c.Camera.Pos)
	assert.Equal(t, ":9000", c.Control.Addr)
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	fn := filepath.Join(dir, "armviz.json")
	require.NoError(t, os.WriteFile(fn, []byte("{}"), 0666))
	_, err = Open(fn)
	assert.ErrorContains(t, err, "unsupported")

	fn = filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("width = \"wide\""), 0666))
	_, err = Open(fn)
	assert.Error(t, err)
}

func TestOpenHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	c := New()
	c.FPS = 30
	require.NoError(t, c.Save("~/armviz.toml"))
	assert.FileExists(t, filepath.Join(dir, "armviz.toml"))
	got, err := Open("~/armviz.toml")
	require.NoError(t, err)
	assert.Equal(t, 30, got.FPS)
}
