// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package backend

import (
	"context"
	"fmt"
	"os"

	"github.com/secure-config-tool/secconf/pkg/codec"
	"github.com/secure-config-tool/secconf/pkg/errors"
)

// File is the fallback variant for platforms without a usable secret
// store. It reads one plaintext JSON file and supports nothing else;
// entries live unencoded on disk, so writes and deletes stay with the
// user's editor rather than this tool.
type File struct {
	path string
}

// NewFile creates the file variant reading from path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Name returns the variant name.
func (f *File) Name() string {
	return "file"
}

// Capabilities reports load-only support.
func (f *File) Capabilities() []Operation {
	return []Operation{OpLoad}
}

// Load reads the configured file and parses it as plain JSON. The
// locator is ignored; the file holds exactly one payload.
func (f *File) Load(ctx context.Context, loc Locator) (codec.Payload, error) {
	if f.path == "" {
		return nil, errors.ConfigError("a configuration file path is required on this platform", nil)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundError(fmt.Sprintf("configuration file %s not found", f.path), err)
		}
		return nil, errors.AccessDeniedError(fmt.Sprintf("failed to read configuration file %s", f.path), err)
	}

	return codec.Deserialize(data)
}

// Store is unsupported; the fallback file is edited directly.
func (f *File) Store(ctx context.Context, loc Locator, payload codec.Payload) error {
	return errors.UnsupportedError("storing secrets is only supported on macOS", nil)
}

// Delete is unsupported.
func (f *File) Delete(ctx context.Context, loc Locator) error {
	return errors.UnsupportedError("deleting secrets is only supported on macOS", nil)
}

// ListEntries is unsupported.
func (f *File) ListEntries(ctx context.Context, account string) ([]Record, error) {
	return nil, errors.UnsupportedError("listing secrets is only supported on macOS", nil)
}
