// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the armviz tool,
// read from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/base/errors"
	"cogentcore.org/armviz/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the main config struct that contains all of the
// configuration options for the armviz tool.
type Config struct {

	// Pose is the starting pose of the arm.
	Pose arm.Angles `toml:"pose" yaml:"pose"`

	// Color is the starting color of the arm.
	Color arm.Color `toml:"color" yaml:"color"`

	// Width is the width of the render surface, in pixels.
	Width int `toml:"width" yaml:"width"`

	// Height is the height of the render surface, in pixels.
	Height int `toml:"height" yaml:"height"`

	// FPS is the frame rate of the render loop.
	FPS int `toml:"fps" yaml:"fps"`

	// Camera is the camera of the view.
	Camera Camera `toml:"camera" yaml:"camera"`

	// Control is the configuration of the control feed.
	Control Control `toml:"control" yaml:"control"`

	// Watch is the path of a pose file to watch for changes.
	Watch string `toml:"watch" yaml:"watch"`

	// Export is the path of a glTF file to export the final scene to.
	Export string `toml:"export" yaml:"export"`

	// Tween is the duration of pose animations, in seconds.
	// Poses are applied without animation when it is zero.
	Tween float32 `toml:"tween" yaml:"tween"`
}

// Camera overrides the default camera placement of the view.
// It has no effect if Pos is zero.
type Camera struct {
	Pos    math32.Vector3 `toml:"pos" yaml:"pos"`
	Target math32.Vector3 `toml:"target" yaml:"target"`
}

// IsSet returns whether the camera overrides the default placement.
func (c *Camera) IsSet() bool {
	return c.Pos != (math32.Vector3{})
}

// Control is the configuration of the websocket control feed.
type Control struct {

	// Addr is the address to serve on. The feed is off if it is empty.
	Addr string `toml:"addr" yaml:"addr"`
}

// New returns a new config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values: the home pose in red,
// on an 800x600 surface at 60 frames per second.
func (c *Config) Defaults() {
	c.Pose = arm.HomeAngles
	c.Color = arm.Red
	c.Width = 800
	c.Height = 600
	c.FPS = 60
}

// TweenDuration returns [Config.Tween] as a duration.
func (c *Config) TweenDuration() time.Duration {
	return time.Duration(float64(c.Tween) * float64(time.Second))
}

// Validate returns an error for each invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if !c.Color.IsValid() {
		errs = append(errs, fmt.Errorf("config: unknown color %q, must be one of %v", c.Color, arm.AllColors))
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("config: negative surface size %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("config: fps must be positive, not %d", c.FPS))
	}
	if c.Tween < 0 {
		errs = append(errs, fmt.Errorf("config: negative tween duration %g", c.Tween))
	}
	return errors.Join(errs...)
}

// Open returns the config read from the given file over the defaults.
// The format is chosen from the extension: .toml, or .yaml / .yml.
// A leading ~ is expanded to the home directory.
func Open(filename string) (*Config, error) {
	c := New()
	return c, c.Open(filename)
}

// Open reads the config from the given file over the current values.
func (c *Config) Open(filename string) error {
	fp, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fp)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(fp)); ext {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return fmt.Errorf("config.Open: unsupported file type %q for %q", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("config.Open: %q: %w", filename, err)
	}
	return nil
}

// Save writes the config to the given file as TOML.
// A leading ~ is expanded to the home directory.
func (c *Config) Save(filename string) error {
	fp, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fp, b, 0666)
}
