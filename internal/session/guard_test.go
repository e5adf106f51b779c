// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"userdeck/cli/internal/backend"
	"userdeck/cli/internal/tokenstore"
)

func TestAllow(t *testing.T) {
	require.False(t, Allow(State{}))
	require.False(t, Allow(State{IsLoading: true}))
	require.False(t, Allow(State{Err: "Login failed"}))

	tok := &tokenstore.Token{AccessToken: "tok123", TokenType: "bearer"}
	require.True(t, Allow(State{
		User:            &backend.User{ID: "1", Username: "alice"},
		Token:           tok,
		IsAuthenticated: true,
	}))
}
