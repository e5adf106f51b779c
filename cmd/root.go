// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Userdeck CLI.
// It implements subcommands for authentication and user management using the
// Cobra framework. Protected commands restore the persisted session and pass
// through the route guard before running; denied access prints the login
// hint instead of the command output.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"userdeck/cli/internal/logging"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "userdeck",
	Short:         "Userdeck CLI for managing users on a Userdeck service",
	Long:          `Userdeck is a command-line client for a Userdeck service instance. It authenticates with username and password, keeps the session credential in the OS keychain, and manages user accounts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			serviceVersion, err := d.api.GetVersion(cmd.Context())
			if err != nil {
				serviceVersion = "unknown"
			}
			fmt.Printf("userdeck %s\nservice %s\n", Version, serviceVersion)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Errors are masked before display so
// credentials never leak through error text.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and service version information")
}
