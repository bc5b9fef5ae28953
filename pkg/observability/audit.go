// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package observability

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuditEvent describes one completed secret-store operation. Details
// identify the entry, never its contents.
type AuditEvent struct {
	ID        string
	Timestamp string
	Action    string
	Service   string
	Account   string
	Backend   string
	Success   bool
	Error     string
}

// Auditor emits one audit record per secret-store operation.
type Auditor struct {
	log Logger
}

// NewAuditor creates an auditor emitting through the given logger.
func NewAuditor(log Logger) *Auditor {
	return &Auditor{log: log}
}

// Record stamps the event with an ID and timestamp and emits it.
// Failed operations log at warn so they surface under the default
// level.
func (a *Auditor) Record(ctx context.Context, event AuditEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	fields := []Field{
		String("audit_id", event.ID),
		String("timestamp", event.Timestamp),
		String("action", event.Action),
		String("service", event.Service),
		String("account", event.Account),
		String("backend", event.Backend),
		Bool("success", event.Success),
	}
	if event.Error != "" {
		fields = append(fields, String("error", event.Error))
	}

	if event.Success {
		a.log.Info("secret operation", fields...)
		return
	}
	a.log.Warn("secret operation", fields...)
}
