// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/armviz/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
)

// Watcher is the pose file control feed of a [Panel]. It watches
// a TOML file holding a [State], and applies the file to the panel
// on the render loop whenever it is written. Fields missing from the
// file keep their current values.
type Watcher struct {

	// Path is the path of the pose file.
	Path string

	// Panel is the panel controlled by the watcher.
	Panel *Panel

	// Loop is the render loop that owns the panel.
	Loop Poster

	// OnReload is called on the loop after each reload of the file,
	// with any error in applying it.
	OnReload func(err error)

	watcher *fsnotify.Watcher
	done    chan struct{}
	stopped chan struct{}
}

// NewWatcher returns a new watcher of the given pose file for the given
// panel on the given loop. Call [Watcher.Start] to start watching.
func NewWatcher(path string, p *Panel, l Poster) *Watcher {
	return &Watcher{Path: filepath.Clean(path), Panel: p, Loop: l}
}

// Start loads the file if it exists, and starts watching it for changes.
// The directory of the file is watched, so that the file may be created
// later or replaced by an editor.
func (w *Watcher) Start() error {
	if w.watcher != nil {
		return nil
	}
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watch.Add(filepath.Dir(w.Path)); err != nil {
		watch.Close()
		return fmt.Errorf("control: watching pose file %q: %w", w.Path, err)
	}
	w.watcher = watch
	w.done = make(chan struct{})
	w.stopped = make(chan struct{})
	if _, err := os.Stat(w.Path); err == nil {
		errors.Log(w.Reload())
	}
	go w.watch(watch, w.done, w.stopped)
	return nil
}

func (w *Watcher) watch(watch *fsnotify.Watcher, done, stopped chan struct{}) {
	defer close(stopped)
	for {
		select {
		case <-done:
			return
		case event, ok := <-watch.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				errors.Log(w.Reload())
			}
		case err, ok := <-watch.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// Reload reads the pose file and posts it onto the loop,
// to be applied to the panel.
func (w *Watcher) Reload() error {
	data, err := os.ReadFile(w.Path)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		// editors truncate before writing
		return nil
	}
	w.Loop.Do(func() {
		st := w.Panel.Snapshot()
		err := toml.Unmarshal(data, &st)
		if err == nil {
			err = w.Panel.SetState(st)
		}
		if err != nil {
			slog.Warn("control: rejected pose file", "path", w.Path, "err", err)
		}
		if w.OnReload != nil {
			w.OnReload(err)
		}
	})
	return nil
}

// Close stops watching the file. It is safe to call more than once.
func (w *Watcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	close(w.done)
	err := w.watcher.Close()
	<-w.stopped
	w.watcher = nil
	return err
}

// SavePose writes the given state to the given pose file as TOML.
func SavePose(path string, st State) error {
	data, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}

// OpenPose reads a state from the given TOML pose file.
func OpenPose(path string) (State, error) {
	var st State
	data, err := os.ReadFile(path)
	if err != nil {
		return st, err
	}
	err = toml.Unmarshal(data, &st)
	return st, err
}
