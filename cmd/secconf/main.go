// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package main is the entry point for the secconf CLI.
package main

import (
	"fmt"
	"os"

	"github.com/secure-config-tool/secconf/pkg/errors"
)

// Process exit codes, one per error kind.
const (
	exitOK           = 0
	exitFailure      = 1
	exitNotFound     = 2
	exitAccessDenied = 3
	exitUnsupported  = 4
	exitConfig       = 5
	exitCodec        = 6
	exitWrite        = 7
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	kind, ok := errors.KindOf(err)
	if !ok {
		return exitFailure
	}
	switch kind {
	case errors.KindNotFound:
		return exitNotFound
	case errors.KindAccessDenied:
		return exitAccessDenied
	case errors.KindUnsupported:
		return exitUnsupported
	case errors.KindConfig:
		return exitConfig
	case errors.KindDecoding, errors.KindEncoding:
		return exitCodec
	case errors.KindWrite:
		return exitWrite
	default:
		return exitFailure
	}
}
