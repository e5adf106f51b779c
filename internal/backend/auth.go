package backend

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "userdeck/cli/internal/errors"
	"userdeck/cli/internal/tokenstore"
)

// Default messages surfaced when the server supplies no detail.
const (
	msgLoginFailed   = "Login failed"
	msgGetUserFailed = "Failed to get user info"
)

// Login calls POST /api/v1/login with the credentials.
// On success the returned credential is persisted and the {user, token} pair
// is returned. The credential is saved only after a fully successful
// response, so a failed login never leaves partial state behind.
func (h *HTTP) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	req, err := h.newRequest(ctx, http.MethodPost, "/api/v1/login", creds)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgLoginFailed, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgLoginFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure(resp, msgLoginFailed)
	}

	var out struct {
		Token tokenstore.Token `json:"token"`
		User  User             `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgLoginFailed, err)
	}
	if out.Token.AccessToken == "" {
		return nil, apperrors.New(apperrors.AuthFailure, msgLoginFailed)
	}

	if err := h.tokens.Save(out.Token); err != nil {
		return nil, apperrors.Wrap(apperrors.StorageCorruption, "Failed to store session credential", err)
	}
	return &LoginResult{User: out.User, Token: out.Token}, nil
}

// GetCurrentUser calls GET /api/v1/me with the stored bearer credential.
// The Authorization header is omitted when no credential is stored, in which
// case the server rejects the request like any other invalid session.
func (h *HTTP) GetCurrentUser(ctx context.Context) (*User, error) {
	req, err := h.newRequest(ctx, http.MethodGet, "/api/v1/me", nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgGetUserFailed, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgGetUserFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure(resp, msgGetUserFailed)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgGetUserFailed, err)
	}
	return &u, nil
}

// Logout clears the stored credential. No network call is made: the service
// issues stateless bearer tokens, so logout is client-only and optimistic.
func (h *HTTP) Logout() error {
	return h.tokens.Clear()
}
