// Package logging provides the structured logging wrapper used by the
// Splitter and Combiner to trace security-level selection and operation
// shape, never secret material (spec §7: "Secrets are never included in
// error messages" is extended here to logs).
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps log/slog with the small subset of level-tagged helpers this
// module's core actually calls. Unlike a server-facing logger it never
// exits the process: a library has no business calling os.Exit on a
// caller's behalf.
type Logger struct {
	logger *slog.Logger
	debug  bool
}

// NewLogger creates a Logger writing to stderr, at Debug level if debug is
// true and Info level otherwise.
func NewLogger(debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{logger: slog.New(handler), debug: debug}
}

// DefaultLogger returns a Logger at Info level.
func DefaultLogger() *Logger {
	return NewLogger(false)
}

// Info logs an informational message with structured key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

// Debug logs a debug message, a no-op unless the logger was built with
// debug=true.
func (l *Logger) Debug(msg string) {
	if l.debug {
		l.logger.Debug(msg)
	}
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	if l.debug {
		l.logger.Debug(fmt.Sprintf(format, args...))
	}
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error.
func (l *Logger) Error(err error) {
	l.logger.Error(err.Error())
}

// MaybeError logs err if it is not nil; a convenience for call sites that
// only sometimes have something worth logging.
func (l *Logger) MaybeError(err error) {
	if err != nil {
		l.logger.Error(err.Error())
	}
}
