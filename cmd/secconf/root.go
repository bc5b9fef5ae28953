// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package main provides the secconf CLI application.
package main

import (
	"github.com/spf13/cobra"

	"github.com/secure-config-tool/secconf/pkg/backend"
	"github.com/secure-config-tool/secconf/pkg/config"
	"github.com/secure-config-tool/secconf/pkg/manager"
	"github.com/secure-config-tool/secconf/pkg/observability"
	"github.com/secure-config-tool/secconf/pkg/version"
)

var (
	cfgFile  string
	logLevel string

	cfg *config.Config
	log observability.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "secconf",
	Short: "Manage application configuration in the platform secret store",
	Long: `Secure Config Tool - manages JSON configuration in the macOS Keychain,
falling back to a plaintext file on other platforms.

WARNING: Overwrite and delete operations do not require authentication!`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Resolve(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Global.LogLevel = logLevel
		}
		log = observability.NewLogger(cfg.Global.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			observability.Sync(log)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches .secconf.yaml upward, then ~/.config/secconf/)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// newManager builds the backend for this invocation and wraps it in a
// Manager. The mirror path makes keychain loads export a plaintext
// copy; the file path feeds the fallback variant on platforms without
// a secret store.
func newManager(mirrorPath, filePath string) *manager.Manager {
	if filePath == "" {
		filePath = cfg.Fallback.Path
	}

	b := backend.Detect(backend.Settings{
		FilePath:   filePath,
		MirrorPath: mirrorPath,
		Binary:     cfg.Keychain.Binary,
		Logger:     log,
	})
	log.Debug("selected backend", observability.String("backend", b.Name()))

	return manager.New(b,
		manager.WithAuditor(observability.NewAuditor(log)),
		manager.WithLogger(log))
}
