// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "greenpush",
	Short: "greenpush pushes painting quotes to QuickBooks Online as estimates",
	Long: `greenpush takes a quote JSON document produced by the estimating
spreadsheet, validates it, and creates the matching customer and estimate in
QuickBooks Online. Every attempt is recorded in a local CSV audit log.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
