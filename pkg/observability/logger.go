// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package observability provides structured logging and operation auditing.
package observability

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger interface used across secconf.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field represents a log field.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// logger adapts zap to the Logger interface.
type logger struct {
	zl *zap.Logger
}

// NewLogger creates a logger writing human-readable lines to stderr at
// the given level. Unknown levels fall back to info. Stdout stays
// reserved for command output.
func NewLogger(level string) Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    encCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	zl, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		return NewNop()
	}
	return &logger{zl: zl}
}

// NewWithZap wraps an existing zap logger. Useful for tests and for
// programs that already carry their own zap configuration.
func NewWithZap(zl *zap.Logger) Logger {
	return &logger{zl: zl}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &logger{zl: zap.NewNop()}
}

// Sync flushes any buffered entries. Errors are discarded; syncing
// stderr fails spuriously on some platforms.
func Sync(l Logger) {
	if zl, ok := l.(*logger); ok {
		_ = zl.zl.Sync()
	}
}

func (l *logger) Debug(msg string, fields ...Field) {
	l.zl.Debug(msg, zapFields(fields)...)
}

func (l *logger) Info(msg string, fields ...Field) {
	l.zl.Info(msg, zapFields(fields)...)
}

func (l *logger) Warn(msg string, fields ...Field) {
	l.zl.Warn(msg, zapFields(fields)...)
}

func (l *logger) Error(msg string, fields ...Field) {
	l.zl.Error(msg, zapFields(fields)...)
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{zl: l.zl.With(zapFields(fields)...)}
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
