// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package main provides the secconf CLI application.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/secure-config-tool/secconf/pkg/observability"
)

var listAccount string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored configurations (macOS only)",
	Long:  `List every configuration entry this tool owns in the platform keychain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newManager("", "")

		records, err := mgr.List(cmd.Context(), listAccount)
		if err != nil {
			return err
		}

		log.Info("found matching entries", observability.Int("count", len(records)))
		for _, r := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "Service: %s, Account: %s\n", r.Service, r.Account)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listAccount, "account", "a", "", "account name (default: current user)")
	rootCmd.AddCommand(listCmd)
}
