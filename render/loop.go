// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides a cooperative single goroutine render loop
// and a headless offscreen render driver for arm scenes.
package render

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultFPS is the default number of frames per second of a [Loop].
const DefaultFPS = 60

// ErrStopped is returned by [Loop.DoWait] and [Loop.Run]
// once [Loop.Stop] has been called.
var ErrStopped = errors.New("render: loop is stopped")

type funcRun struct {
	f func()

	// done receives whether f ran.
	done chan bool
}

type callback struct {
	id int
	fn func(dt time.Duration)
}

// Loop is a cooperative render loop. Functions posted with [Loop.Do] and
// the registered frame and draw callbacks all run on the one goroutine
// running the loop. Each tick first runs all posted functions, then the
// frame callbacks, then the draw callbacks, so every update posted before
// a tick is applied before the frame of that tick is drawn.
type Loop struct {

	// FPS is the number of frames per second when running.
	FPS int

	// Ticks is the number of ticks run so far.
	Ticks int

	mu      sync.Mutex
	queue   []funcRun
	wake    chan struct{}
	stop    chan struct{}
	frames  []callback
	draws   []callback
	nextID  int
	running bool
	stopped bool
}

// NewLoop returns a new loop running at the given frames per second
// ([DefaultFPS] if <= 0).
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{FPS: fps, wake: make(chan struct{}, 1), stop: make(chan struct{})}
}

// Do posts the given function to run on the loop goroutine at the start
// of the next tick, and returns immediately. It is safe to call from any
// goroutine. Functions run in the order posted. Once the loop is stopped,
// f is dropped.
func (l *Loop) Do(f func()) {
	l.post(funcRun{f: f})
}

// DoWait posts the given function like [Loop.Do] and waits for it to run.
// It returns [ErrStopped] without running f if the loop is stopped before
// f runs. It must not be called from the loop goroutine.
func (l *Loop) DoWait(f func()) error {
	done := make(chan bool, 1)
	if !l.post(funcRun{f: f, done: done}) || !<-done {
		return ErrStopped
	}
	return nil
}

func (l *Loop) post(fr funcRun) bool {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fr)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Stop stops the loop for good. Functions still pending are dropped,
// and their [Loop.DoWait] callers return [ErrStopped], as do all later
// calls. It is safe to call more than once, and from any goroutine.
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	close(l.stop)
	q := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, fr := range q {
		if fr.done != nil {
			fr.done <- false
		}
	}
}

// IsStopped returns whether [Loop.Stop] has been called.
func (l *Loop) IsStopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}

// Pending returns the number of posted functions not yet run.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// OnFrame registers a callback run on every tick after the posted
// functions, with the time since the previous tick.
// The returned function cancels the registration, and may be called
// more than once, including from within a callback.
func (l *Loop) OnFrame(fn func(dt time.Duration)) (cancel func()) {
	return l.register(&l.frames, fn)
}

// OnDraw registers a callback run on every tick after the frame callbacks.
// Render drivers draw their scenes here.
func (l *Loop) OnDraw(fn func(dt time.Duration)) (cancel func()) {
	return l.register(&l.draws, fn)
}

func (l *Loop) register(list *[]callback, fn func(dt time.Duration)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	*list = append(*list, callback{id: id, fn: fn})
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		for i, cb := range *list {
			if cb.id == id {
				*list = append((*list)[:i:i], (*list)[i+1:]...)
				return
			}
		}
	}
}

// NumFrameCallbacks returns the number of registered frame callbacks.
func (l *Loop) NumFrameCallbacks() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.frames)
}

// drain runs all the posted functions, including any posted while draining.
func (l *Loop) drain() {
	for {
		l.mu.Lock()
		q := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(q) == 0 {
			return
		}
		for _, fr := range q {
			fr.f()
			if fr.done != nil {
				fr.done <- true
			}
		}
	}
}

// snapshot returns a copy of the given callback list.
func (l *Loop) snapshot(list *[]callback) []callback {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]callback(nil), *list...)
}

// isRegistered returns whether the callback with the given id is still registered.
func (l *Loop) isRegistered(list *[]callback, id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, cb := range *list {
		if cb.id == id {
			return true
		}
	}
	return false
}

// Step runs one tick of the loop with the given frame time:
// posted functions, then frame callbacks, then draw callbacks.
// A callback cancelled by an earlier one in the same tick is not run.
func (l *Loop) Step(dt time.Duration) {
	l.drain()
	for _, list := range []*[]callback{&l.frames, &l.draws} {
		for _, cb := range l.snapshot(list) {
			if l.isRegistered(list, cb.id) {
				cb.fn(dt)
			}
		}
	}
	l.Ticks++
}

// Run runs the loop on the calling goroutine at [Loop.FPS] until the
// context is done, running posted functions as soon as they arrive.
// It returns the context error, or [ErrStopped] if the loop is stopped.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return ErrStopped
	}
	l.running = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		l.drain()
	}()

	ticker := time.NewTicker(time.Second / time.Duration(l.FPS))
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return ErrStopped
		case <-l.wake:
			l.drain()
		case now := <-ticker.C:
			l.Step(now.Sub(last))
			last = now
		}
	}
}

// IsRunning returns whether [Loop.Run] is running.
func (l *Loop) IsRunning() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}
