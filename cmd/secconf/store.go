// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package main provides the secconf CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/secure-config-tool/secconf/pkg/codec"
	"github.com/secure-config-tool/secconf/pkg/errors"
)

var (
	storeAccount string
	storeService string
	storeFile    string
)

// storeCmd represents the store command
var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Store a configuration into the keychain (macOS only)",
	Long: `Read a JSON configuration file and store it in the platform keychain,
replacing any existing entry for the same account and service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(storeFile)
		if err != nil {
			return errors.ConfigError(fmt.Sprintf("failed to read configuration file: %s", storeFile), err)
		}

		// Parse before touching the platform store, so malformed
		// input never lands in the keychain.
		payload, err := codec.Deserialize(data)
		if err != nil {
			return err
		}

		mgr := newManager("", "")
		if err := mgr.Store(cmd.Context(), storeAccount, storeService, payload); err != nil {
			return err
		}

		log.Info("configuration stored successfully")
		return nil
	},
}

func init() {
	storeCmd.Flags().StringVarP(&storeAccount, "account", "a", "", "account name (default: current user)")
	storeCmd.Flags().StringVarP(&storeService, "service", "s", "", "service name")
	storeCmd.Flags().StringVarP(&storeFile, "file", "f", "", "configuration file to store")
	_ = storeCmd.MarkFlagRequired("service")
	_ = storeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(storeCmd)
}
