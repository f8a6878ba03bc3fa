// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command armviz runs the headless scene of the pipette arm. It builds
// the scene on an offscreen driver, drives its pose and color from a
// websocket control feed and a watched pose file, and can export the
// final scene as glTF.
//
// With -send, it instead sends one control message to a running armviz
// and prints the reply.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/armview"
	"cogentcore.org/armviz/base/errors"
	"cogentcore.org/armviz/base/logx"
	"cogentcore.org/armviz/base/websocket"
	"cogentcore.org/armviz/config"
	"cogentcore.org/armviz/control"
	"cogentcore.org/armviz/math32"
	"cogentcore.org/armviz/render"
	"github.com/muesli/termenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "armviz:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("armviz", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "config file (.toml or .yaml)")
	addr := fs.String("addr", "", "address to serve the websocket control feed on")
	watch := fs.String("watch", "", "pose file to watch for changes")
	export := fs.String("export", "", "glTF file to export the final scene to")
	frames := fs.Int("frames", 0, "number of frames to run, or 0 to run until interrupted")
	send := fs.String("send", "", "send the given JSON control message to -addr and print the reply")
	vv := fs.Bool("vv", false, "very verbose: show debug messages")
	v := fs.Bool("v", false, "verbose: show info messages")
	q := fs.Bool("q", false, "quiet: only show errors")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	cfg := config.New()
	if *cfgPath != "" {
		if err := cfg.Open(*cfgPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Control.Addr = *addr
		case "watch":
			cfg.Watch = *watch
		case "export":
			cfg.Export = *export
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	if *send != "" {
		return sendMessage(cfg.Control.Addr, *send, out)
	}
	if *frames < 0 {
		return fmt.Errorf("frames must not be negative, not %d", *frames)
	}
	return serve(ctx, cfg, *frames, out)
}

// serve runs the scene for the given number of frames, or until
// the context is done if frames is zero.
func serve(ctx context.Context, cfg *config.Config, frames int, out io.Writer) error {
	loop := render.NewLoop(cfg.FPS)
	off := render.NewOffscreen(loop, cfg.Width, cfg.Height)
	defer off.Close()

	panel := control.NewPanelAt(control.State{Pose: cfg.Pose, Color: cfg.Color})
	host := armview.NewHost(panel, off)
	defer host.Close()
	panel.OnAngleChange = func(j arm.Joints, deg float32) {
		host.AnglesChanged()
	}
	panel.OnColorChange = func(c arm.Color) {
		host.ColorChanged()
	}

	mounted, err := host.Ensure()
	if err != nil {
		return err
	}
	if !mounted {
		slog.Warn("armviz: no render surface, the scene is not built", "width", cfg.Width, "height", cfg.Height)
	} else if cfg.Camera.IsSet() {
		cam := &host.View().Scene.Camera
		cam.Pos = cfg.Camera.Pos
		cam.LookAt(cfg.Camera.Target, math32.Vec3(0, 1, 0))
	}

	if cfg.Watch != "" {
		w := control.NewWatcher(cfg.Watch, panel, loop)
		if err := w.Start(); err != nil {
			return err
		}
		defer func() { errors.Log(w.Close()) }()
	}

	// The server shuts down while the loop runs, and the loop stops
	// before the server is waited on, so no request waits forever.
	stopServer := func() error { return nil }
	if cfg.Control.Addr != "" {
		ln, err := net.Listen("tcp", cfg.Control.Addr)
		if err != nil {
			return err
		}
		srv := control.NewServer(panel, loop)
		if tw := cfg.TweenDuration(); tw > 0 {
			srv.SetPose = func(a arm.Angles) {
				host.Animate(a.Clamped(), tw, func(a arm.Angles) {
					panel.SetPose(a)
				})
			}
		}
		sctx, cancel := context.WithCancel(context.Background())
		served := make(chan error, 1)
		go func() {
			served <- srv.Serve(sctx, ln)
		}()
		stopServer = sync.OnceValue(func() error {
			cancel()
			return <-served
		})
	}
	defer loop.Stop()

	if frames > 0 {
		dt := time.Second / time.Duration(cfg.FPS)
		for range frames {
			loop.Step(dt)
		}
	} else {
		lctx, stopLoop := context.WithCancel(context.Background())
		go func() {
			select {
			case <-ctx.Done():
				stopServer()
			case <-lctx.Done():
			}
			stopLoop()
		}()
		err := loop.Run(lctx)
		stopLoop()
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	loop.Stop()
	if err := stopServer(); err != nil {
		return err
	}

	if cfg.Export != "" {
		if err := exportScene(host.View(), cfg.Export); err != nil {
			return err
		}
	}
	report(out, loop, off, panel)
	return nil
}

// exportScene writes the scene of the given view to the given glTF file.
// No file is created if no view is mounted.
func exportScene(v *armview.View, path string) error {
	if v.IsClosed() {
		return fmt.Errorf("exporting %q: %w", path, armview.ErrClosed)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := v.Export(f); err != nil {
		f.Close()
		return fmt.Errorf("exporting %q: %w", path, err)
	}
	slog.Info("armviz: exported scene", "path", path)
	return f.Close()
}

// report prints a summary of the run.
func report(w io.Writer, loop *render.Loop, off *render.Offscreen, panel *control.Panel) {
	out := termenv.NewOutput(w)
	label := func(s string) termenv.Style {
		return out.String(fmt.Sprintf("%-10s", s)).Bold()
	}
	st := panel.Snapshot()
	fmt.Fprintln(w, label("pose"), st.Pose)
	fmt.Fprintln(w, label("color"), out.String(string(st.Color)).Foreground(out.Color(hexColor(st.Color))))
	fmt.Fprintln(w, label("frames"), fmt.Sprintf("%d drawn of %d ticks", off.Frames, loop.Ticks))
	fmt.Fprintln(w, label("solids"), fmt.Sprintf("%d with %d triangles", off.Last.Solids, off.Last.Triangles))
	if !off.Last.Bounds.IsEmpty() {
		b := off.Last.Bounds
		fmt.Fprintln(w, label("bounds"), fmt.Sprintf("%v to %v", b.Min, b.Max))
	}
}

// hexColor returns the hex code of the given arm color.
func hexColor(c arm.Color) string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// sendMessage sends the given JSON message to the control feed at the
// given address and prints the reply.
func sendMessage(addr, msg string, w io.Writer) error {
	if addr == "" {
		return fmt.Errorf("-send needs the address of the control feed in -addr")
	}
	var m control.Message
	if err := json.Unmarshal([]byte(msg), &m); err != nil {
		return fmt.Errorf("invalid control message: %w", err)
	}
	url := addr
	if !strings.HasPrefix(url, "ws://") && !strings.HasPrefix(url, "wss://") {
		if strings.HasPrefix(url, ":") {
			url = "localhost" + url
		}
		url = "ws://" + url + "/ws"
	}
	c, err := websocket.Connect(url)
	if err != nil {
		return err
	}
	defer func() { errors.Log(c.Close()) }()
	if err := c.SendJSON(m); err != nil {
		return err
	}
	var rep control.Reply
	if err := c.ReceiveJSON(&rep); err != nil {
		return err
	}
	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(b))
	if rep.Error != "" {
		return errors.New(rep.Error)
	}
	return nil
}
