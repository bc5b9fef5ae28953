// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package backend

import (
	"runtime"

	"github.com/secure-config-tool/secconf/pkg/keychain"
	"github.com/secure-config-tool/secconf/pkg/observability"
)

// Settings carries the inputs backend selection needs. The zero value
// selects the real security tool, no mirror, and a silent logger.
type Settings struct {
	// FilePath is the plaintext file the file variant reads.
	FilePath string

	// MirrorPath, when set, makes keychain loads write a plaintext
	// copy of the payload.
	MirrorPath string

	// Binary overrides the security tool binary name or path.
	Binary string

	// Tool replaces the security tool wholesale, mostly for tests.
	// Takes precedence over Binary.
	Tool keychain.Tool

	// Logger receives backend diagnostics.
	Logger observability.Logger
}

// Detect selects the variant for the host operating system: the
// platform keychain on darwin, the plaintext file fallback everywhere
// else. Selection happens once at process start and holds for the
// process lifetime.
func Detect(s Settings) Backend {
	return ForOS(runtime.GOOS, s)
}

// ForOS selects the variant for an explicit operating system
// identifier. This is the only place that branches on platform.
func ForOS(goos string, s Settings) Backend {
	if goos != "darwin" {
		return NewFile(s.FilePath)
	}

	var opts []KeychainOption
	switch {
	case s.Tool != nil:
		opts = append(opts, WithTool(s.Tool))
	case s.Binary != "":
		opts = append(opts, WithTool(keychain.NewCLI().WithBinary(s.Binary)))
	}
	if s.MirrorPath != "" {
		opts = append(opts, WithMirror(s.MirrorPath))
	}
	if s.Logger != nil {
		opts = append(opts, WithLogger(s.Logger))
	}
	return NewKeychain(opts...)
}
