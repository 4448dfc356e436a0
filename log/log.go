// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log is a small leveled-logging facade used throughout the sps
// package. It mirrors the github.com/saferwall/pe/log helper so that the
// two decoders share the same logging texture.
package log

import (
	"fmt"
	stdlog "log"
	"os"
)

// Level is a logging severity.
type Level int8

// Log levels, lowest to highest severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal logging capability the decoders depend on.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger adapts the standard library logger to Logger.
type stdLogger struct {
	log *stdlog.Logger
}

// NewStdLogger returns a Logger backed by the standard library log
// package, writing to w.
func NewStdLogger(w *os.File) Logger {
	return &stdLogger{log: stdlog.New(w, "", stdlog.LstdFlags)}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	msg := fmt.Sprint(keyvals...)
	l.log.Printf("[%s] %s", level, msg)
	return nil
}

// filter wraps a Logger and drops records below a minimum level.
type filter struct {
	logger Logger
	level  Level
}

// FilterOption configures a filter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level a filter lets through.
func FilterLevel(level Level) FilterOption {
	return func(f *filter) {
		f.level = level
	}
}

// NewFilter returns a Logger that discards records below the configured
// level before forwarding to logger.
func NewFilter(logger Logger, opts ...FilterOption) Logger {
	f := &filter{logger: logger, level: LevelDebug}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, keyvals...)
}

// Helper wraps a Logger with printf-style convenience methods.
type Helper struct {
	logger Logger
}

// NewHelper returns a Helper backed by logger.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

// Debugf logs a formatted message at debug level.
func (h *Helper) Debugf(format string, a ...interface{}) {
	h.logger.Log(LevelDebug, fmt.Sprintf(format, a...))
}

// Infof logs a formatted message at info level.
func (h *Helper) Infof(format string, a ...interface{}) {
	h.logger.Log(LevelInfo, fmt.Sprintf(format, a...))
}

// Warnf logs a formatted message at warn level.
func (h *Helper) Warnf(format string, a ...interface{}) {
	h.logger.Log(LevelWarn, fmt.Sprintf(format, a...))
}

// Errorf logs a formatted message at error level.
func (h *Helper) Errorf(format string, a ...interface{}) {
	h.logger.Log(LevelError, fmt.Sprintf(format, a...))
}

// Warn logs its arguments at warn level.
func (h *Helper) Warn(a ...interface{}) {
	h.logger.Log(LevelWarn, fmt.Sprint(a...))
}
