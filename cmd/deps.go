// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"

	"userdeck/cli/internal/backend"
	"userdeck/cli/internal/config"
	apperrors "userdeck/cli/internal/errors"
	"userdeck/cli/internal/httperrors"
	"userdeck/cli/internal/session"
	"userdeck/cli/internal/tokenstore"
)

// appDeps wires the credential store, API client and session store for one
// command invocation. Everything is constructed explicitly so tests can
// substitute fakes at any seam.
type appDeps struct {
	cfg     config.Config
	tokens  *tokenstore.Store
	api     backend.API
	session *session.Store
}

// buildDeps constructs the dependency chain: config → keychain-backed token
// store → API client → session store. The token store picks up any
// previously persisted credential; the session stays anonymous until an
// explicit Restore or Login.
func buildDeps() (*appDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	kb, err := tokenstore.NewKeychainBackend()
	if err != nil {
		return nil, err
	}
	tokens := tokenstore.New(kb)
	tokens.Load()

	api := backend.New(cfg.APIBaseURL, tokens)
	return &appDeps{
		cfg:     cfg,
		tokens:  tokens,
		api:     api,
		session: session.New(api, tokens),
	}, nil
}

// requireAuth restores the session from the persisted credential and applies
// the route guard. When access is denied it prints the login redirect hint
// and returns false; the command must stop without running its body.
func requireAuth(ctx context.Context, d *appDeps) bool {
	if err := d.session.Restore(ctx); err != nil {
		if apperrors.IsKind(err, apperrors.NetworkError) {
			_ = httperrors.FormatNetworkError(err, "checking your session")
			return false
		}
	}
	if session.Allow(d.session.Snapshot()) {
		return true
	}
	printLoginHint()
	return false
}

// printLoginHint is the CLI analogue of redirecting to the login route.
func printLoginHint() {
	fmt.Println("🔒 You're not logged in yet!")
	fmt.Println("   Run 'userdeck login' to get started.")
}
