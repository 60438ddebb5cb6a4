// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors used throughout greenpush.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. Embedding zerolog.Logger
// exposes the full zerolog API while allowing the application to add helper
// methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewCLILogger constructs a *Logger for command-line invocations. Output is
// human-readable and goes to stderr: stdout is reserved for the final result
// object that the calling automation layer parses.
func NewCLILogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	logger := zerolog.New(console).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output. It is intended for use
// in tests and other contexts where logging would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
