// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package errors provides typed errors for secconf.
package errors

import (
	"errors"
	"fmt"
)

// Kind represents the category of error.
type Kind int

const (
	// KindNotFound indicates the requested entry does not exist.
	KindNotFound Kind = iota
	// KindAccessDenied indicates the platform store denied access,
	// for example a declined authentication prompt.
	KindAccessDenied
	// KindWrite indicates the platform store rejected a write.
	KindWrite
	// KindDecoding indicates malformed base64, JSON, or UTF-8 content.
	KindDecoding
	// KindEncoding indicates a payload that cannot be serialized.
	KindEncoding
	// KindUnsupported indicates an operation the active backend cannot perform.
	KindUnsupported
	// KindConfig indicates invalid caller-supplied arguments or configuration.
	KindConfig
)

// Error is the base error type for all secconf errors.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]any
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", kindString(e.Kind), e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", kindString(e.Kind), e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error of the given kind.
func New(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context to the error.
func (e *Error) WithContext(key string, value any) *Error {
	e.Context[key] = value
	return e
}

// IsKind checks if an error is of a specific kind.
func IsKind(err error, kind Kind) bool {
	var serr *Error
	if err == nil {
		return false
	}
	if errors.As(err, &serr) {
		return serr.Kind == kind
	}
	return false
}

// KindOf returns the kind of an error, if it carries one.
func KindOf(err error) (Kind, bool) {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind, true
	}
	return 0, false
}

func kindString(k Kind) string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindAccessDenied:
		return "ACCESS_DENIED"
	case KindWrite:
		return "WRITE"
	case KindDecoding:
		return "DECODING"
	case KindEncoding:
		return "ENCODING"
	case KindUnsupported:
		return "UNSUPPORTED"
	case KindConfig:
		return "CONFIG"
	default:
		return "UNKNOWN"
	}
}

// Convenience constructors for each kind

// NotFoundError reports an absent entry.
func NotFoundError(message string, cause error) *Error {
	return New(KindNotFound, message, cause)
}

// AccessDeniedError reports a platform access denial.
func AccessDeniedError(message string, cause error) *Error {
	return New(KindAccessDenied, message, cause)
}

// WriteError reports a rejected platform write.
func WriteError(message string, cause error) *Error {
	return New(KindWrite, message, cause)
}

// DecodingError reports malformed stored or loaded content.
func DecodingError(message string, cause error) *Error {
	return New(KindDecoding, message, cause)
}

// EncodingError reports an unserializable payload.
func EncodingError(message string, cause error) *Error {
	return New(KindEncoding, message, cause)
}

// UnsupportedError reports an operation the active backend does not implement.
func UnsupportedError(message string, cause error) *Error {
	return New(KindUnsupported, message, cause)
}

// ConfigError reports invalid arguments or configuration.
func ConfigError(message string, cause error) *Error {
	return New(KindConfig, message, cause)
}
