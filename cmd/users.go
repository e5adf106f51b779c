// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"userdeck/cli/internal/backend"
	apperrors "userdeck/cli/internal/errors"
	"userdeck/cli/internal/httperrors"
)

var (
	userCreateEmail    string
	userCreateUsername string

	userUpdateEmail    string
	userUpdateUsername string
	userUpdateActive   bool

	userDeleteYes bool
)

// usersCmd groups the user management subcommands. All of them sit behind
// the route guard.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts on the service",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := buildDeps()
		if err != nil {
			return err
		}
		if !requireAuth(ctx, d) {
			return nil
		}

		users, err := d.api.ListUsers(ctx)
		if err != nil {
			return presentAPIError(err, "listing users")
		}

		rows := pterm.TableData{{"ID", "USERNAME", "EMAIL", "ACTIVE", "CREATED"}}
		for _, u := range users {
			active := "no"
			if u.IsActive {
				active = "yes"
			}
			rows = append(rows, []string{
				u.ID, u.Username, u.Email, active,
				u.CreatedAt.Local().Format("2006-01-02"),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := buildDeps()
		if err != nil {
			return err
		}
		if !requireAuth(ctx, d) {
			return nil
		}

		if userCreateEmail == "" || userCreateUsername == "" {
			return fmt.Errorf("--email and --username are required")
		}

		fmt.Print("Password for new user: ")
		pw, err := readPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pw) == 0 {
			return fmt.Errorf("password is required")
		}

		u, err := d.api.CreateUser(ctx, backend.UserCreate{
			Email:    userCreateEmail,
			Username: userCreateUsername,
			Password: string(pw),
		})
		if err != nil {
			return presentAPIError(err, "creating the user")
		}
		fmt.Printf("✅ Created user %s (%s)\n", u.Username, u.ID)
		return nil
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := buildDeps()
		if err != nil {
			return err
		}
		if !requireAuth(ctx, d) {
			return nil
		}

		var patch backend.UserUpdate
		if cmd.Flags().Changed("email") {
			patch.Email = &userUpdateEmail
		}
		if cmd.Flags().Changed("username") {
			patch.Username = &userUpdateUsername
		}
		if cmd.Flags().Changed("active") {
			patch.IsActive = &userUpdateActive
		}
		if patch.Email == nil && patch.Username == nil && patch.IsActive == nil {
			return fmt.Errorf("nothing to update; pass --email, --username or --active")
		}

		u, err := d.api.UpdateUser(ctx, args[0], patch)
		if err != nil {
			return presentAPIError(err, "updating the user")
		}
		fmt.Printf("✅ Updated user %s\n", u.Username)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a user account",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		d, err := buildDeps()
		if err != nil {
			return err
		}
		if !requireAuth(ctx, d) {
			return nil
		}

		if !userDeleteYes {
			fmt.Printf("Delete user %s? [y/N] ", args[0])
			var answer string
			fmt.Scanln(&answer)
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := d.api.DeleteUser(ctx, args[0]); err != nil {
			return presentAPIError(err, "deleting the user")
		}
		fmt.Printf("✅ Deleted user %s\n", args[0])
		return nil
	},
}

// presentAPIError renders a normalized API failure: network problems get the
// friendly troubleshooting panel, rejections show the server message.
func presentAPIError(err error, context string) error {
	if apperrors.IsKind(err, apperrors.NetworkError) {
		_ = httperrors.FormatNetworkError(err, context)
		return nil
	}
	pterm.Error.Println(apperrors.UserMessage(err, "Request failed"))
	return nil
}

func init() {
	usersCreateCmd.Flags().StringVar(&userCreateEmail, "email", "", "Email address for the new user")
	usersCreateCmd.Flags().StringVar(&userCreateUsername, "username", "", "Username for the new user")

	usersUpdateCmd.Flags().StringVar(&userUpdateEmail, "email", "", "New email address")
	usersUpdateCmd.Flags().StringVar(&userUpdateUsername, "username", "", "New username")
	usersUpdateCmd.Flags().BoolVar(&userUpdateActive, "active", true, "Whether the account is active")

	usersDeleteCmd.Flags().BoolVarP(&userDeleteYes, "yes", "y", false, "Skip the confirmation prompt")

	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
