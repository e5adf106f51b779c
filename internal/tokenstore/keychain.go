// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import (
	"userdeck/cli/internal/keychain"
)

// keychainBackend persists the credential in the OS keychain.
type keychainBackend struct {
	m *keychain.Manager
}

// NewKeychainBackend returns a Backend backed by the OS keychain.
func NewKeychainBackend() (Backend, error) {
	m, err := keychain.GetManager()
	if err != nil {
		return nil, err
	}
	return &keychainBackend{m: m}, nil
}

func (b *keychainBackend) Load() ([]byte, error)  { return b.m.LoadSessionToken() }
func (b *keychainBackend) Save(data []byte) error { return b.m.SaveSessionToken(data) }
func (b *keychainBackend) Clear() error           { return b.m.ClearSessionToken() }
