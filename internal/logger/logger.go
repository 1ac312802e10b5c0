// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the doc-sentry subsystem.
//
// Logger embeds zerolog.Logger, so the whole zerolog API is available on
// *Logger. Code that runs inside an operation should prefer FromContext over
// a struct field so that per-operation fields travel with the context.
package logger

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileName is the log file created inside the data directory by
// NewFileLogger.
const logFileName = "sentry.log"

// Logger embeds zerolog.Logger so helper methods can be added without
// shadowing the upstream API.
type Logger struct {
	zerolog.Logger
}

// configure applies the process-wide zerolog settings shared by every
// constructor: debug level and a caller field named "func" holding the
// fully-qualified function name.
func configure() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// newLogger builds a JSON logger on w tagged with the given role label.
func newLogger(w *os.File, role string) *Logger {
	configure()

	l := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewLogger returns a logger writing JSON entries to stdout. role labels the
// component ("doc-sentry", "migrator") for filtering.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role)
}

// NewFileLogger returns a logger appending JSON entries to sentry.log inside
// dataDir. The desktop tool embedding this subsystem has no console, so file
// output is the default for end-user installations. If the file cannot be
// opened the logger falls back to stdout.
func NewFileLogger(role, dataDir string) *Logger {
	logFile, err := os.OpenFile(filepath.Join(dataDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	return newLogger(logFile, role)
}

// Nop returns a logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all fields of the receiver.
// The child can be enriched without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext returns the logger attached to ctx via zerolog's WithContext.
// Zerolog falls back to its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
