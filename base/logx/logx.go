// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog handler used by armviz,
// with color-coded level prefixes, and helpers for choosing the
// level from command line verbosity flags.
package logx

import (
	"io"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] or the default build tags.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to one with a [Handler]
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	SetDefaultLoggerTo(os.Stderr)
}

// SetDefaultLoggerTo sets the default logger to one with a [Handler]
// writing to the given writer at [UserLevel].
func SetDefaultLoggerTo(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w, &UserLevel)))
}
