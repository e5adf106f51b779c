// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the Userdeck service REST API.
// It defines the API contract for authentication and user management and an
// HTTP-based implementation. All failures are normalized into the typed
// errors of internal/errors before they reach callers; raw transport errors
// never escape this package.
package backend

import "context"

// API defines service operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// Login exchanges credentials for a session token and user snapshot.
	// The credential is persisted only after a fully successful response.
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	// GetCurrentUser fetches the identity of the session owner using the
	// stored credential. The Authorization header is omitted when no
	// credential is stored.
	GetCurrentUser(ctx context.Context) (*User, error)
	// Logout clears the stored credential. Purely local; the service keeps
	// no session to invalidate.
	Logout() error
	// GetVersion reports the service version; no authentication required.
	GetVersion(ctx context.Context) (string, error)

	ListUsers(ctx context.Context) ([]User, error)
	CreateUser(ctx context.Context, in UserCreate) (*User, error)
	UpdateUser(ctx context.Context, id string, in UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}
