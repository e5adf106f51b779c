// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// logoutCmd clears the stored session credential. Logout is client-only:
// the service issues stateless tokens, so there is no remote session to
// invalidate and no network call is made.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session credential",
	Long: `The logout command removes the session credential from the OS keychain and
resets the local session state. It never contacts the service; running it
while offline works the same as running it online. Running it twice is
harmless.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildDeps()
		if err != nil {
			return err
		}
		d.session.Logout()
		fmt.Println("✅ Signed out. The session credential has been removed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
