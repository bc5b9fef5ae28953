// Copyright 2026 Secure Config Tool. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package main provides the secconf CLI application.
package main

import (
	"github.com/spf13/cobra"
)

var (
	deleteAccount string
	deleteService string
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a configuration from the keychain (macOS only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := newManager("", "")
		if err := mgr.Delete(cmd.Context(), deleteAccount, deleteService); err != nil {
			return err
		}
		log.Info("secret deleted successfully")
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteAccount, "account", "a", "", "account name (default: current user)")
	deleteCmd.Flags().StringVarP(&deleteService, "service", "s", "", "service name")
	_ = deleteCmd.MarkFlagRequired("service")
	rootCmd.AddCommand(deleteCmd)
}
