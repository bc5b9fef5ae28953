// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package manager coordinates secret-store operations.
//
// A Manager fills in the account when the caller leaves it empty,
// validates the parts of a request the backend assumes are present,
// delegates to the selected backend, and emits one audit record per
// operation.
package manager

import (
	"context"
	"os"
	"os/user"

	"github.com/secure-config-tool/secconf/pkg/backend"
	"github.com/secure-config-tool/secconf/pkg/codec"
	"github.com/secure-config-tool/secconf/pkg/errors"
	"github.com/secure-config-tool/secconf/pkg/observability"
)

// Manager runs secret-store operations against one backend.
type Manager struct {
	backend backend.Backend
	auditor *observability.Auditor
	log     observability.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithAuditor attaches an auditor. Without one, operations are not
// audited.
func WithAuditor(a *observability.Auditor) Option {
	return func(m *Manager) {
		m.auditor = a
	}
}

// WithLogger attaches a logger for operational diagnostics.
func WithLogger(log observability.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// New creates a Manager over the given backend.
func New(b backend.Backend, opts ...Option) *Manager {
	m := &Manager{
		backend: b,
		log:     observability.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backend returns the backend this manager operates on.
func (m *Manager) Backend() backend.Backend {
	return m.backend
}

// DefaultAccount returns the account used when none is given: the
// current operating-system username.
func DefaultAccount() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}

// Load retrieves and decodes the payload stored under the service.
func (m *Manager) Load(ctx context.Context, account, service string) (codec.Payload, error) {
	if err := requireService(service); err != nil {
		return nil, err
	}
	account = resolveAccount(account)

	payload, err := m.backend.Load(ctx, backend.Locator{Account: account, Service: service})
	m.audit(ctx, "load", service, account, err)
	return payload, err
}

// Store writes the payload under the service, replacing any existing
// entry.
func (m *Manager) Store(ctx context.Context, account, service string, payload codec.Payload) error {
	if err := requireService(service); err != nil {
		return err
	}
	account = resolveAccount(account)

	err := m.backend.Store(ctx, backend.Locator{Account: account, Service: service}, payload)
	m.audit(ctx, "store", service, account, err)
	return err
}

// Delete removes the entry stored under the service.
func (m *Manager) Delete(ctx context.Context, account, service string) error {
	if err := requireService(service); err != nil {
		return err
	}
	account = resolveAccount(account)

	err := m.backend.Delete(ctx, backend.Locator{Account: account, Service: service})
	m.audit(ctx, "delete", service, account, err)
	return err
}

// List enumerates the entries this tool owns. The account scopes the
// store context, not the results: entries stored under other accounts
// are listed too.
func (m *Manager) List(ctx context.Context, account string) ([]backend.Record, error) {
	account = resolveAccount(account)

	records, err := m.backend.ListEntries(ctx, account)
	m.audit(ctx, "list", "", account, err)
	return records, err
}

func (m *Manager) audit(ctx context.Context, action, service, account string, err error) {
	if m.auditor == nil {
		return
	}
	event := observability.AuditEvent{
		Action:  action,
		Service: service,
		Account: account,
		Backend: m.backend.Name(),
		Success: err == nil,
	}
	if err != nil {
		event.Error = err.Error()
	}
	m.auditor.Record(ctx, event)
}

func requireService(service string) error {
	if service == "" {
		return errors.ConfigError("a service name is required", nil)
	}
	return nil
}

func resolveAccount(account string) string {
	if account != "" {
		return account
	}
	return DefaultAccount()
}
