// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package control

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cogentcore.org/armviz/arm"
	"cogentcore.org/armviz/base/errors"
	"github.com/gorilla/websocket"
)

// Poster posts functions onto the render loop. It is implemented
// by render.Loop.
type Poster interface {

	// Do posts f to run on the loop and returns immediately.
	Do(f func())

	// DoWait posts f to run on the loop and waits for it to run.
	// It returns an error without running f once the loop is stopped.
	DoWait(f func()) error
}

// Reply is the answer of a [Server] to each [Message]:
// the full state after the message, and any error in it.
type Reply struct {
	State
	Error string `json:"error,omitempty"`
}

// Server is the websocket control feed of a [Panel]. Each connection
// reads JSON [Message]s, applies them to the panel on the render loop,
// and answers each with a [Reply].
type Server struct {

	// Panel is the panel controlled by the server.
	Panel *Panel

	// Loop is the render loop that owns the panel.
	Loop Poster

	// Upgrader upgrades control connections to websockets.
	Upgrader websocket.Upgrader

	// SetPose, if set, is called on the loop for the pose of each
	// message instead of setting the pose of the panel directly,
	// for example to animate to the pose. The reply then holds
	// the pose from before the call.
	SetPose func(a arm.Angles)

	// OnApply is called on the loop after each message is applied.
	OnApply func(m Message)
}

// NewServer returns a new server for the given panel on the given loop.
func NewServer(p *Panel, l Poster) *Server {
	return &Server{Panel: p, Loop: l}
}

// Handler returns the http handler of the server, which serves
// the websocket feed at /ws and the current state as JSON at /state.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	mux.HandleFunc("GET /state", s.serveState)
	return mux
}

// ServeHTTP serves one websocket control connection.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.Upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()
	slog.Debug("control: client connected", "remote", r.RemoteAddr)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				errors.Log(err)
			}
			slog.Debug("control: client disconnected", "remote", r.RemoteAddr)
			return
		}
		rep := s.handle(data)
		if errors.Log(conn.WriteJSON(rep)) != nil {
			return
		}
	}
}

// handle decodes and applies one message, returning the reply.
func (s *Server) handle(data []byte) Reply {
	var m Message
	derr := json.Unmarshal(data, &m)
	var rep Reply
	lerr := s.Loop.DoWait(func() {
		if derr == nil {
			if m.Pose != nil && s.SetPose != nil {
				s.SetPose(*m.Pose)
				m.Pose = nil
			}
			if err := s.Panel.Apply(m); err != nil {
				derr = err
			} else if s.OnApply != nil {
				s.OnApply(m)
			}
		}
		rep.State = s.Panel.Snapshot()
	})
	if lerr != nil {
		slog.Warn("control: dropped message", "message", string(data), "err", lerr)
		return Reply{Error: lerr.Error()}
	}
	if derr != nil {
		slog.Warn("control: rejected message", "message", string(data), "err", derr)
		rep.Error = derr.Error()
	}
	return rep
}

func (s *Server) serveState(w http.ResponseWriter, r *http.Request) {
	var st State
	err := s.Loop.DoWait(func() {
		st = s.Panel.Snapshot()
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	errors.Log(json.NewEncoder(w).Encode(st))
}

// ListenAndServe listens on the given address and serves the control
// feed until the context is done, then shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves the control feed on the given listener until
// the context is done, then shuts the server down.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ln)
	}()
	slog.Info("control: serving", "addr", ln.Addr().String())
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(sctx)
	<-done
	return err
}
