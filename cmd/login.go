// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"userdeck/cli/internal/backend"
	apperrors "userdeck/cli/internal/errors"
	"userdeck/cli/internal/httperrors"
	"userdeck/cli/internal/session"
	"userdeck/cli/internal/terminal"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var loginUsername string

// loginCmd authenticates with username and password and stores the session
// credential in the OS keychain. If a valid session already exists, the
// authentication flow is skipped.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to the Userdeck service",
	Long: `The login command authenticates against the configured Userdeck service with
a username and password. On success the issued session credential is stored
securely in the OS keychain and subsequent commands run authenticated.

The password is read from the terminal without echo and is never written to
disk or to any log.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		d, err := buildDeps()
		if err != nil {
			return err
		}

		// Short-circuit when the persisted credential still maps to a user.
		if err := d.session.Restore(ctx); err == nil {
			if st := d.session.Snapshot(); session.Allow(st) {
				fmt.Printf("Already logged in as %s\n", st.User.Username)
				return nil
			}
		}

		creds, err := promptCredentials(loginUsername)
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "Signing in")
		loginErr := d.session.Login(ctx, creds)
		stopSpinner()

		st := d.session.Snapshot()
		if loginErr != nil {
			if apperrors.IsKind(loginErr, apperrors.NetworkError) {
				host := httperrors.ExtractHostFromURL(d.cfg.APIBaseURL)
				_ = httperrors.FormatNetworkError(loginErr, "signing in to "+host)
				return nil
			}
			// The same message sits in session state and in the returned
			// error; render the state channel, as the login view would.
			pterm.Error.Println(st.Err)
			return nil
		}

		fmt.Println(loginGreeting(st.User))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username to sign in with (prompted when omitted)")
}

// promptCredentials collects username and password from the terminal.
// The username prompt is cleared afterwards; the password is read without
// echo and never persisted anywhere.
func promptCredentials(username string) (backend.Credentials, error) {
	reader := bufio.NewReader(os.Stdin)

	if username == "" {
		prompt := "Username: "
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return backend.Credentials{}, err
		}
		username = strings.TrimSpace(line)
		terminal.ClearPreviousLines(len(prompt) + len(username))
		fmt.Printf("Username: %s\n", username)
	}
	if username == "" {
		return backend.Credentials{}, fmt.Errorf("username is required")
	}

	fmt.Print("Password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return backend.Credentials{}, err
	}
	if len(pw) == 0 {
		return backend.Credentials{}, fmt.Errorf("password is required")
	}

	return backend.Credentials{Username: username, Password: string(pw)}, nil
}

// loginGreeting formats the post-login greeting from the user snapshot.
func loginGreeting(u *backend.User) string {
	if u == nil {
		return "✅ Login successful!"
	}
	if u.Email != "" {
		return fmt.Sprintf("👋 Welcome back, %s <%s>!", u.Username, u.Email)
	}
	return fmt.Sprintf("👋 Welcome back, %s!", u.Username)
}
