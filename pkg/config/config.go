// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package config provides configuration management for secconf.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Global Config: $HOME/.config/secconf/config.yaml
// 3. Project Config: ./.secconf.yaml (searched upward from the working directory)
// 4. Environment Variables: SECCONF_*
//
// Command-line flags, handled by the CLI layer, override everything here.
package config

import (
	"fmt"

	"github.com/secure-config-tool/secconf/pkg/errors"
)

// Config represents the complete application configuration.
type Config struct {
	Keychain KeychainConfig `yaml:"keychain"`
	Fallback FallbackConfig `yaml:"fallback"`
	Global   GlobalConfig   `yaml:"global"`
}

// KeychainConfig contains settings for the platform keychain variant.
type KeychainConfig struct {
	// Binary is the security tool binary name or path.
	Binary string `yaml:"binary"`
	// MirrorFile is the filename load --store writes the plaintext
	// copy to.
	MirrorFile string `yaml:"mirror_file"`
}

// FallbackConfig contains settings for the plaintext-file variant used
// on platforms without a secret store.
type FallbackConfig struct {
	// Path is the JSON file read when no --file flag is given.
	Path string `yaml:"path"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Global.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.ConfigError(fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Global.LogLevel), nil)
	}
	return nil
}
