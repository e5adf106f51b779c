// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tokenstore owns the durable session credential.
// It is the only component that touches the persistence medium; everything
// else attaches the credential through Current or routes writes through
// Save/Clear, keeping the in-memory cache and the persisted value in step.
//
// The store is a dumb, durable box: it never validates token shape or expiry.
package tokenstore

import (
	"encoding/json"
	"sync"
)

// Token is the opaque bearer credential plus its token-type tag,
// exactly as issued by the login endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Backend is the injected persistence capability. Implementations store a
// single serialized credential under one fixed key.
type Backend interface {
	// Load returns the stored bytes, or (nil, nil) when nothing is stored.
	Load() ([]byte, error)
	// Save overwrites the stored bytes.
	Save(data []byte) error
	// Clear removes the stored bytes. Clearing an empty store is not an error.
	Clear() error
}

// Store caches the credential in memory and persists it through a Backend.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	token   *Token
}

// New constructs a Store over the given backend. Call Load once at process
// start to pick up a previously persisted credential.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads any previously stored credential and caches it.
// Missing or malformed storage degrades to "no credential"; Load never fails.
func (s *Store) Load() *Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Load()
	if err != nil || len(data) == 0 {
		s.token = nil
		return nil
	}
	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil || tok.AccessToken == "" {
		// Corrupt storage is treated as absent, never fatal.
		s.token = nil
		return nil
	}
	s.token = &tok
	return &tok
}

// Save overwrites the stored credential and refreshes the cache.
// The cache is updated only after the durable write succeeds, so callers
// never observe a partially-applied credential.
func (s *Store) Save(tok Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	if err := s.backend.Save(data); err != nil {
		return err
	}
	s.token = &tok
	return nil
}

// Clear removes the stored credential. Idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Clear(); err != nil {
		return err
	}
	s.token = nil
	return nil
}

// Current returns the cached token without touching the persistence medium.
// This is the fast path for attaching the credential to outbound requests.
func (s *Store) Current() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil
	}
	tok := *s.token
	return &tok
}
