// Package log routes the few diagnostics emitted by the pooledlist packages to
// a pluggable backend. By default messages are forwarded to the Datadog agent
// logger; hosts running their own logging stack (a game engine console, zap,
// slog...) install a [Backend] with [SetBackend].
package log

import (
	"fmt"

	ddlog "github.com/DataDog/datadog-agent/pkg/util/log"
	"go.uber.org/atomic"
)

// Backend is the set of level functions messages are dispatched to. Nil fields
// fall back to the default backend.
type Backend struct {
	Trace     func(string, ...any)
	Debug     func(string, ...any)
	Info      func(string, ...any)
	Warn      func(string, ...any)
	Errorf    func(string, ...any) error
	Criticalf func(string, ...any) error
}

var backend = atomic.NewPointer(defaultBackend())

// SetBackend replaces the active backend.
func SetBackend(b Backend) {
	def := defaultBackend()
	if b.Trace == nil {
		b.Trace = def.Trace
	}
	if b.Debug == nil {
		b.Debug = def.Debug
	}
	if b.Info == nil {
		b.Info = def.Info
	}
	if b.Warn == nil {
		b.Warn = def.Warn
	}
	if b.Errorf == nil {
		b.Errorf = def.Errorf
	}
	if b.Criticalf == nil {
		b.Criticalf = def.Criticalf
	}
	backend.Store(&b)
}

// Trace logs at trace level.
func Trace(format string, args ...any) { backend.Load().Trace(format, args...) }

// Debug logs at debug level.
func Debug(format string, args ...any) { backend.Load().Debug(format, args...) }

// Info logs at info level.
func Info(format string, args ...any) { backend.Load().Info(format, args...) }

// Warn logs at warn level.
func Warn(format string, args ...any) { backend.Load().Warn(format, args...) }

// Errorf logs at error level and returns the formatted error. The error is
// built with [fmt.Errorf], so %w verbs keep the wrapped chain intact
// regardless of what the backend returns.
func Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	_ = backend.Load().Errorf("%s", err.Error())
	return err
}

// Criticalf logs at critical level and returns the formatted error, with the
// same wrapping guarantees as [Errorf].
func Criticalf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	_ = backend.Load().Criticalf("%s", err.Error())
	return err
}

func defaultBackend() *Backend {
	return &Backend{
		Trace: ddlog.Tracef,
		Debug: ddlog.Debugf,
		Info:  ddlog.Infof,
		Warn: func(format string, args ...any) {
			_ = ddlog.Warnf(format, args...)
		},
		Errorf:    ddlog.Errorf,
		Criticalf: ddlog.Criticalf,
	}
}
