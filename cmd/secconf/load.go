// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package main provides the secconf CLI application.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secure-config-tool/secconf/pkg/errors"
)

var (
	loadAccount string
	loadService string
	loadFile    string
	loadStore   bool
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a configuration",
	Long: `Load a configuration from the platform keychain and print it as JSON.

On platforms without a secret store the configuration is read from a
plaintext JSON file instead (--file). With --store, a successful
keychain load also writes a plaintext copy to the mirror file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mirror := ""
		if loadStore {
			mirror = cfg.Keychain.MirrorFile
		}
		mgr := newManager(mirror, loadFile)

		payload, err := mgr.Load(cmd.Context(), loadAccount, loadService)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return errors.EncodingError("failed to render configuration", err)
		}
		log.Info("configuration loaded successfully")
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVarP(&loadAccount, "account", "a", "", "account name (default: current user)")
	loadCmd.Flags().StringVarP(&loadService, "service", "s", "", "service name")
	loadCmd.Flags().StringVarP(&loadFile, "file", "f", "", "configuration file to read on platforms without a keychain")
	loadCmd.Flags().BoolVar(&loadStore, "store", false, "also write a plaintext copy to the mirror file (macOS only)")
	_ = loadCmd.MarkFlagRequired("service")
	rootCmd.AddCommand(loadCmd)
}
