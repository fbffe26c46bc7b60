// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logger provides the package-level structured logger used for
// diagnostic, non-fatal events in the physics kernel: entropy-buffer
// exhaustion fallback, EDGE retries, the trajectory recorder reaching its
// cap, and similar recoverable degradation paths. It never gates control
// flow.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger. It is stateless aside from its
// configured level and writer, and is safe for concurrent use by multiple
// flips running in parallel.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// SetLevel adjusts the minimum level Log emits.
func SetLevel(level zerolog.Level) {
	Log = Log.Level(level)
}
