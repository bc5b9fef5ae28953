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
	"github.com/secure-config-tool/secconf/pkg/keychain"
	"github.com/secure-config-tool/secconf/pkg/observability"
)

// Keychain stores payloads in the platform keychain through the
// security tool. Payloads cross the tool boundary base64-encoded;
// service names are tagged on the way in and entries are re-secured
// after every write.
type Keychain struct {
	tool   keychain.Tool
	parser *keychain.Parser
	mirror string
	log    observability.Logger
}

// KeychainOption configures the keychain variant.
type KeychainOption func(*Keychain)

// WithTool substitutes the security tool implementation.
func WithTool(tool keychain.Tool) KeychainOption {
	return func(k *Keychain) {
		k.tool = tool
	}
}

// WithMirror makes every successful load also write the decoded
// payload text to path, creating or overwriting it with owner-only
// permissions.
func WithMirror(path string) KeychainOption {
	return func(k *Keychain) {
		k.mirror = path
	}
}

// WithLogger attaches a logger for diagnostics. The variant stays
// silent without one.
func WithLogger(log observability.Logger) KeychainOption {
	return func(k *Keychain) {
		k.log = log
	}
}

// NewKeychain creates the keychain variant with the real security
// tool.
func NewKeychain(opts ...KeychainOption) *Keychain {
	k := &Keychain{
		tool:   keychain.NewCLI(),
		parser: keychain.NewParser(),
		log:    observability.NewNop(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the variant name.
func (k *Keychain) Name() string {
	return "keychain"
}

// Capabilities reports full support.
func (k *Keychain) Capabilities() []Operation {
	return []Operation{OpLoad, OpStore, OpDelete, OpList}
}

// Load fetches the entry, decodes the transport encoding, optionally
// mirrors the plaintext to the configured file, and parses the
// payload. The mirror is written before parsing, so it reflects the
// stored text even when that text is no longer valid JSON.
func (k *Keychain) Load(ctx context.Context, loc Locator) (codec.Payload, error) {
	k.log.Debug("loading secret",
		observability.String("service", loc.Service),
		observability.String("account", loc.Account))

	encoded, err := k.tool.FindPassword(ctx, loc.Account, keychain.TagService(loc.Service))
	if err != nil {
		return nil, err
	}

	raw, err := codec.DecodeTransport(encoded)
	if err != nil {
		return nil, err
	}

	if k.mirror != "" {
		if err := os.WriteFile(k.mirror, raw, 0o600); err != nil {
			return nil, errors.WriteError(fmt.Sprintf("failed to write plaintext copy to %s", k.mirror), err)
		}
		k.log.Info("wrote plaintext copy", observability.String("file", k.mirror))
	}

	return codec.Deserialize(raw)
}

// Store encodes the payload and writes it to the keychain, replacing
// any existing entry, then strips the entry's partition list so that
// later reads prompt instead of trusting prior applications.
func (k *Keychain) Store(ctx context.Context, loc Locator, payload codec.Payload) error {
	k.log.Debug("storing secret",
		observability.String("service", loc.Service),
		observability.String("account", loc.Account))

	encoded, err := codec.EncodeForTransport(payload)
	if err != nil {
		return err
	}

	tagged := keychain.TagService(loc.Service)
	if err := k.tool.AddPassword(ctx, loc.Account, tagged, encoded); err != nil {
		return err
	}
	return k.tool.ResetPartitionList(ctx, loc.Account, tagged)
}

// Delete removes the entry from the keychain.
func (k *Keychain) Delete(ctx context.Context, loc Locator) error {
	k.log.Debug("deleting secret",
		observability.String("service", loc.Service),
		observability.String("account", loc.Account))

	return k.tool.DeletePassword(ctx, loc.Account, keychain.TagService(loc.Service))
}

// ListEntries dumps the keychain and keeps only the entries this tool
// owns. The returned services have the ownership tag stripped. Note
// the dump covers the whole keychain, so entries stored under other
// accounts appear too.
func (k *Keychain) ListEntries(ctx context.Context, account string) ([]Record, error) {
	// Warm-up query so the dump that follows does not stall on an
	// unlock prompt mid-parse. Its outcome carries no information.
	k.tool.Probe(ctx, account)

	dump, err := k.tool.DumpAll(ctx)
	if err != nil {
		return nil, err
	}

	records, stats := k.parser.Parse(dump)
	if stats.Dropped > 0 {
		k.log.Warn("dump contained incomplete entries",
			observability.Int("dropped", stats.Dropped))
	}
	if stats.Untagged > 0 {
		k.log.Debug("skipped entries owned by other tools",
			observability.Int("untagged", stats.Untagged))
	}
	return records, nil
}
