// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package keychain drives the macOS `security` command-line tool.
//
// Entries are stored as generic passwords with:
//   - Service: "SC-" + the logical service name (the prefix marks
//     entries owned by secconf)
//   - Account: the caller-supplied account name
//   - Password: the base64 transport encoding of the configuration JSON
//
// No timeout is applied to tool invocations. A hang in the platform
// tool blocks the whole invocation, which is acceptable for an
// interactive single-shot CLI.
package keychain

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/secure-config-tool/secconf/pkg/errors"
)

// TagPrefix marks keychain entries owned by this tool.
const TagPrefix = "SC-"

// TagService returns the platform-visible service name for a logical one.
func TagService(service string) string {
	return TagPrefix + service
}

// DefaultBinary is the security tool invoked unless overridden.
const DefaultBinary = "security"

// Exit statuses of the security tool this package gives meaning to.
const (
	exitItemNotFound          = 44  // errSecItemNotFound
	exitInteractionNotAllowed = 36  // keychain locked in a non-interactive session
	exitAuthFailed            = 51  // errSecAuthFailed
	exitUserCanceled          = 128 // errSecUserCanceled
)

// Tool abstracts the security CLI operations the keychain backend
// needs. Implementations block until the underlying call completes.
type Tool interface {
	// FindPassword retrieves the password field of a generic password
	// entry, trimmed of surrounding whitespace.
	FindPassword(ctx context.Context, account, service string) (string, error)

	// AddPassword creates or replaces a generic password entry.
	AddPassword(ctx context.Context, account, service, password string) error

	// ResetPartitionList clears the entry's partition list so that no
	// applications are trusted to read it without prompting.
	ResetPartitionList(ctx context.Context, account, service string) error

	// DeletePassword removes a generic password entry.
	DeletePassword(ctx context.Context, account, service string) error

	// Probe issues the pre-enumeration lookup. The tool exits nonzero
	// here even on success, so the status is discarded.
	Probe(ctx context.Context, account string)

	// DumpAll returns the full text of a bulk keychain dump.
	DumpAll(ctx context.Context) (string, error)
}

// CLI invokes the security binary as a subprocess.
type CLI struct {
	binary string
}

var _ Tool = (*CLI)(nil)

// NewCLI creates a wrapper around the default security binary.
func NewCLI() *CLI {
	return &CLI{binary: DefaultBinary}
}

// WithBinary sets a custom binary path.
func (c *CLI) WithBinary(binary string) *CLI {
	c.binary = binary
	return c
}

// FindPassword runs find-generic-password with the password-only flag.
func (c *CLI) FindPassword(ctx context.Context, account, service string) (string, error) {
	res, err := c.run(ctx, "find-generic-password", "-a", account, "-s", service, "-w")
	if err != nil {
		return "", err
	}
	switch res.exitCode {
	case 0:
		return strings.TrimSpace(res.stdout), nil
	case exitItemNotFound:
		return "", errors.NotFoundError(fmt.Sprintf("no entry for %s/%s", account, service), nil)
	case exitInteractionNotAllowed, exitAuthFailed, exitUserCanceled:
		return "", errors.AccessDeniedError(diagnostic("access to entry denied", res), nil)
	default:
		return "", errors.AccessDeniedError(diagnostic("failed to retrieve entry", res), nil)
	}
}

// AddPassword runs add-generic-password with the update flag, so an
// existing entry is replaced rather than duplicated.
func (c *CLI) AddPassword(ctx context.Context, account, service, password string) error {
	res, err := c.run(ctx, "add-generic-password", "-a", account, "-s", service, "-w", password, "-U")
	if err != nil {
		return err
	}
	if res.exitCode != 0 {
		return errors.WriteError(diagnostic("failed to store entry", res), nil)
	}
	return nil
}

// ResetPartitionList runs set-generic-password-partition-list with an
// empty partition set, leaving zero trusted applications.
func (c *CLI) ResetPartitionList(ctx context.Context, account, service string) error {
	res, err := c.run(ctx, "set-generic-password-partition-list", "-S", "", "-a", account, "-s", service)
	if err != nil {
		return err
	}
	if res.exitCode != 0 {
		return errors.WriteError(diagnostic("failed to reset partition list", res), nil)
	}
	return nil
}

// DeletePassword runs delete-generic-password.
func (c *CLI) DeletePassword(ctx context.Context, account, service string) error {
	res, err := c.run(ctx, "delete-generic-password", "-a", account, "-s", service)
	if err != nil {
		return err
	}
	switch res.exitCode {
	case 0:
		return nil
	case exitItemNotFound:
		return errors.NotFoundError(fmt.Sprintf("no entry for %s/%s", account, service), nil)
	case exitInteractionNotAllowed, exitAuthFailed, exitUserCanceled:
		return errors.AccessDeniedError(diagnostic("access to entry denied", res), nil)
	default:
		return errors.AccessDeniedError(diagnostic("failed to delete entry", res), nil)
	}
}

// Probe issues find-generic-password with the attribute flag.
func (c *CLI) Probe(ctx context.Context, account string) {
	_, _ = c.run(ctx, "find-generic-password", "-a", account, "-g")
}

// DumpAll runs dump-keychain and returns its stdout untouched.
func (c *CLI) DumpAll(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "dump-keychain")
	if err != nil {
		return "", err
	}
	if res.exitCode != 0 {
		return "", errors.AccessDeniedError(diagnostic("failed to dump keychain", res), nil)
	}
	return res.stdout, nil
}

// result captures one finished tool invocation.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// run executes the security binary and waits for it to finish. A
// non-nil error is returned only when the process could not be run at
// all; a nonzero exit comes back in the result.
func (c *CLI) run(ctx context.Context, args ...string) (result, error) {
	if _, err := exec.LookPath(c.binary); err != nil {
		return result{}, errors.ConfigError(fmt.Sprintf("%s binary not found in PATH", c.binary), err)
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{
		stdout: stdout.String(),
		stderr: strings.TrimSpace(stderr.String()),
	}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return result{}, errors.ConfigError(fmt.Sprintf("failed to run %s", c.binary), err)
		}
		res.exitCode = exitErr.ExitCode()
	}
	return res, nil
}

// diagnostic appends the tool's stderr verbatim to a message.
func diagnostic(msg string, res result) string {
	if res.stderr == "" {
		return fmt.Sprintf("%s (exit status %d)", msg, res.exitCode)
	}
	return fmt.Sprintf("%s: %s", msg, res.stderr)
}
