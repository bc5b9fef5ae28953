// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package backend provides the secret-store abstraction.
//
// Two variants implement the Backend contract: Keychain drives the
// platform keychain through the security tool, and File reads a
// plaintext fallback file on platforms without a usable secret store.
// The variant is selected once at process start, from the host
// operating system, and never changes afterwards. Everything above
// this package depends on the Backend interface alone.
package backend

import (
	"context"

	"github.com/secure-config-tool/secconf/pkg/codec"
	"github.com/secure-config-tool/secconf/pkg/keychain"
)

// Locator identifies one secret-store entry. Service carries the
// logical name; the keychain variant applies the ownership tag
// internally before any platform call, so callers never see tagged
// names.
type Locator struct {
	Account string
	Service string
}

// Record is one listed entry, with the ownership tag already stripped.
type Record = keychain.Record

// Operation names one backend capability.
type Operation string

const (
	OpLoad   Operation = "load"
	OpStore  Operation = "store"
	OpDelete Operation = "delete"
	OpList   Operation = "list"
)

// Backend is the common secret-store contract.
type Backend interface {
	// Name identifies the variant in logs and audit records.
	Name() string

	// Capabilities reports the operations this variant supports.
	Capabilities() []Operation

	// Load retrieves the entry at the locator and decodes it into a
	// payload.
	Load(ctx context.Context, loc Locator) (codec.Payload, error)

	// Store writes the payload to the locator, replacing any existing
	// entry unconditionally.
	Store(ctx context.Context, loc Locator, payload codec.Payload) error

	// Delete removes the entry at the locator.
	Delete(ctx context.Context, loc Locator) error

	// ListEntries enumerates every entry this tool owns that is
	// visible in the account's store context.
	ListEntries(ctx context.Context, account string) ([]Record, error)
}

// Supports reports whether the backend advertises the operation.
func Supports(b Backend, op Operation) bool {
	for _, c := range b.Capabilities() {
		if c == op {
			return true
		}
	}
	return false
}
