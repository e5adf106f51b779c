// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "userdeck/cli/internal/errors"
	"userdeck/cli/internal/tokenstore"
)

func newTestClient(t *testing.T, handler http.Handler) (*HTTP, *tokenstore.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := tokenstore.New(tokenstore.NewMemory())
	return newHTTP(srv.URL, tokens), tokens
}

func TestLoginSuccessPersistsCredential(t *testing.T) {
	var gotBody Credentials
	h, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"token": {"access_token": "tok123", "token_type": "bearer"},
			"user": {"id": "1", "email": "alice@example.com", "username": "alice",
			         "is_active": true, "created_at": "2025-01-02T03:04:05Z",
			         "updated_at": null, "last_login": null}
		}`))
	}))

	res, err := h.Login(context.Background(), Credentials{Username: "alice", Password: "correct"})
	require.NoError(t, err)
	require.Equal(t, "alice", gotBody.Username)
	require.Equal(t, "correct", gotBody.Password)
	require.Equal(t, "alice", res.User.Username)
	require.Equal(t, "tok123", res.Token.AccessToken)

	// Credential persisted only after the fully successful response.
	cur := tokens.Current()
	require.NotNil(t, cur)
	require.Equal(t, "tok123", cur.AccessToken)
}

func TestLoginRejectedSurfacesServerDetail(t *testing.T) {
	h, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Incorrect username or password"}`))
	}))

	_, err := h.Login(context.Background(), Credentials{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.AuthFailure))
	require.Equal(t, "Incorrect username or password", apperrors.UserMessage(err, "Login failed"))
	require.Nil(t, tokens.Current())
}

func TestLoginRejectedWithoutDetailUsesDefault(t *testing.T) {
	h, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := h.Login(context.Background(), Credentials{Username: "alice", Password: "correct"})
	require.Error(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.AuthFailure))
	require.Equal(t, "Login failed", apperrors.UserMessage(err, "Login failed"))
}

func TestLoginTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // force connection failure

	h := newHTTP(srv.URL, tokenstore.New(tokenstore.NewMemory()))
	_, err := h.Login(context.Background(), Credentials{Username: "alice", Password: "correct"})
	require.Error(t, err)
	require.True(t, apperrors.IsKind(err, apperrors.NetworkError))
	require.Equal(t, "Login failed", apperrors.UserMessage(err, "Login failed"))
}

func TestGetCurrentUserAttachesBearerCredential(t *testing.T) {
	var gotAuth string
	h, tokens := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/me", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "1", "email": "alice@example.com", "username": "alice",
			"is_active": true, "created_at": "2025-01-02T03:04:05Z"}`))
	}))
	require.NoError(t, tokens.Save(tokenstore.Token{AccessToken: "tok123", TokenType: "bearer"}))

	u, err := h.GetCurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok123", gotAuth)
	require.Equal(t, "alice", u.Username)
}

func TestGetCurrentUserOmitsHeaderWithoutCredential(t *testing.T) {
	h, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		require.False(t, present)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid authentication credentials"}`))
	}))

	_, err := h.GetCurrentUser(context.Background())
	require.Error(t, err)
	require.Equal(t, "Invalid authentication credentials", apperrors.UserMessage(err, "Failed to get user info"))
}

func TestGetCurrentUserDefaultMessage(t *testing.T) {
	h, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := h.GetCurrentUser(context.Background())
	require.Error(t, err)
	require.Equal(t, "Failed to get user info", apperrors.UserMessage(err, "Failed to get user info"))
}

func TestLogoutClearsCredentialWithoutNetworkCall(t *testing.T) {
	called := false
	h, tokens := newTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	require.NoError(t, tokens.Save(tokenstore.Token{AccessToken: "tok123", TokenType: "bearer"}))

	require.NoError(t, h.Logout())
	require.Nil(t, tokens.Current())
	require.False(t, called)

	// Idempotent.
	require.NoError(t, h.Logout())
}

func TestAuthHeader(t *testing.T) {
	require.Empty(t, AuthHeader(nil))
	require.Empty(t, AuthHeader(&tokenstore.Token{}))
	require.Equal(t,
		map[string]string{"Authorization": "Bearer tok123"},
		AuthHeader(&tokenstore.Token{AccessToken: "tok123", TokenType: "bearer"}),
	)
}

func TestAuthHeaderRoundTrip(t *testing.T) {
	tokens := tokenstore.New(tokenstore.NewMemory())
	require.NoError(t, tokens.Save(tokenstore.Token{AccessToken: "X", TokenType: "bearer"}))
	require.Equal(t, map[string]string{"Authorization": "Bearer X"}, AuthHeader(tokens.Current()))
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Bearer tok123", "tok123"},
		{"bearer tok123", "tok123"},
		{"  Bearer   tok123  ", "tok123"},
		{"Basic dXNlcjpwYXNz", ""},
		{"Bearer", ""},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseBearerToken(tt.in), "input %q", tt.in)
	}
}
