// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"time"

	"userdeck/cli/internal/tokenstore"
)

// User is the identity record returned by the service. It is an immutable
// snapshot; the session replaces it wholesale on login and drops it on logout.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	LastLogin *time.Time `json:"last_login"`
}

// Credentials is the transient login input. It is never persisted and never
// logged.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult carries the fully successful login response.
type LoginResult struct {
	User  User
	Token tokenstore.Token
}

// UserCreate is the payload for creating a user.
type UserCreate struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserUpdate is a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}
