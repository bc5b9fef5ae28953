// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/secure-config-tool/secconf/pkg/errors"
)

// Default config file names to search for.
var defaultConfigFiles = []string{
	".secconf.yaml",
	".secconf.yml",
	"secconf.yaml",
	"secconf.yml",
}

// Load loads configuration from a specific file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault searches for and loads configuration from default locations.
// Search order:
// 1. Current directory
// 2. Parent directories (up to root)
// 3. User home directory (.config/secconf/)
func LoadDefault() (*Config, error) {
	if cfg, err := findInParents("."); err == nil {
		return cfg, nil
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		userConfigPath := filepath.Join(homeDir, ".config", "secconf", "config.yaml")
		if cfg, err := Load(userConfigPath); err == nil {
			return cfg, nil
		}
	}

	return Default(), nil
}

// Resolve loads configuration for a CLI invocation and applies
// environment overrides. An explicit path wins; the SECCONF_CONFIG
// variable comes next; otherwise the default search runs. An explicit
// or SECCONF_CONFIG path that does not load is an error, unlike the
// default search, which falls back to built-in defaults.
func Resolve(path string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch {
	case path != "":
		cfg, err = Load(path)
	case os.Getenv("SECCONF_CONFIG") != "":
		cfg, err = Load(os.Getenv("SECCONF_CONFIG"))
	default:
		cfg, err = LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findInParents searches for a config file in the start directory and
// its parents.
func findInParents(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.ConfigError("failed to resolve working directory", err)
	}

	for {
		for _, filename := range defaultConfigFiles {
			configPath := filepath.Join(dir, filename)
			if _, err := os.Stat(configPath); err == nil {
				return Load(configPath)
			}
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			break
		}
		dir = parentDir
	}

	return nil, errors.ConfigError("no config file found", nil)
}

// applyEnvOverrides applies SECCONF_* environment variables on top of
// the loaded configuration.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("SECCONF_LOG_LEVEL"); val != "" {
		cfg.Global.LogLevel = val
	}
	if val := os.Getenv("SECCONF_SECURITY_BINARY"); val != "" {
		cfg.Keychain.Binary = val
	}
	if val := os.Getenv("SECCONF_MIRROR_FILE"); val != "" {
		cfg.Keychain.MirrorFile = val
	}
	if val := os.Getenv("SECCONF_FALLBACK_PATH"); val != "" {
		cfg.Fallback.Path = val
	}
}
