// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "userdeck/cli/internal/errors"
)

const msgUsersFailed = "User operation failed"

// ListUsers calls GET /api/v1/users and returns all user records.
func (h *HTTP) ListUsers(ctx context.Context) ([]User, error) {
	req, err := h.newRequest(ctx, http.MethodGet, "/api/v1/users", nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure(resp, msgUsersFailed)
	}
	var users []User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	return users, nil
}

// CreateUser calls POST /api/v1/users and returns the created record.
func (h *HTTP) CreateUser(ctx context.Context, in UserCreate) (*User, error) {
	req, err := h.newRequest(ctx, http.MethodPost, "/api/v1/users", in)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, failure(resp, msgUsersFailed)
	}
	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	return &u, nil
}

// UpdateUser calls PUT /api/v1/users/{id} with a partial update.
func (h *HTTP) UpdateUser(ctx context.Context, id string, in UserUpdate) (*User, error) {
	req, err := h.newRequest(ctx, http.MethodPut, "/api/v1/users/"+id, in)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure(resp, msgUsersFailed)
	}
	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	return &u, nil
}

// DeleteUser calls DELETE /api/v1/users/{id}.
func (h *HTTP) DeleteUser(ctx context.Context, id string) error {
	req, err := h.newRequest(ctx, http.MethodDelete, "/api/v1/users/"+id, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.NetworkError, msgUsersFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return failure(resp, msgUsersFailed)
	}
	return nil
}
