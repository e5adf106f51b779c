// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd shows the currently authenticated account. It restores the
// session from the persisted credential and refetches the user snapshot; a
// stored token alone is never reported as an authenticated session.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. It validates the stored session credential with the service and
shows the account when the session is valid.

If no valid session exists, it will indicate that you are not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		if !requireAuth(cmd.Context(), d) {
			return nil
		}

		u := d.session.Snapshot().User
		if u.Email != "" {
			fmt.Printf("👤 Current user: %s <%s>\n", u.Username, u.Email)
		} else {
			fmt.Printf("👤 Current user: %s\n", u.Username)
		}
		if u.LastLogin != nil {
			fmt.Printf("   Last login: %s\n", u.LastLogin.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
