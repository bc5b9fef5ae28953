// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package config

// Default returns the built-in configuration used when no config file
// exists.
func Default() *Config {
	return &Config{
		Keychain: KeychainConfig{
			Binary:     "security",
			MirrorFile: "config.json",
		},
		Fallback: FallbackConfig{
			Path: "config.json",
		},
		Global: GlobalConfig{
			LogLevel: "info",
		},
	}
}

// applyDefaults sets default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Keychain.Binary == "" {
		cfg.Keychain.Binary = "security"
	}
	if cfg.Keychain.MirrorFile == "" {
		cfg.Keychain.MirrorFile = "config.json"
	}
	if cfg.Fallback.Path == "" {
		cfg.Fallback.Path = "config.json"
	}
	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = "info"
	}
}
