// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for userdeck.
// This module manages all interactions with the OS keychain/credential store,
// providing a unified interface for storing and retrieving the session credential.
//
// Native backends (macOS Keychain, Windows Credential Manager, Secret Service)
// are preferred; an encrypted file under the XDG state directory serves as the
// fallback on systems without a native store.
package keychain

import (
	"errors"
	"sync"

	"github.com/99designs/keyring"

	"userdeck/cli/internal/xdg"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "userdeck"

// KeySessionToken is the single fixed key under which the serialized session
// credential is stored.
const KeySessionToken = "session_token"

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}
	return globalManager, nil
}

// openRing opens the OS keyring, falling back to an encrypted file store in
// the XDG state directory when no native backend is available.
func openRing() (keyring.Keyring, error) {
	stateDir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:      ServiceName,
		FileDir:          stateDir,
		FilePasswordFunc: keyring.TerminalPrompt,
	})
	if err != nil {
		return nil, errors.New("no usable credential store on this system")
	}
	return ring, nil
}

// SaveSessionToken stores the serialized session credential.
// This method is thread-safe.
func (m *Manager) SaveSessionToken(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ring.Set(keyring.Item{Key: KeySessionToken, Data: data})
}

// LoadSessionToken retrieves the serialized session credential.
// A missing key yields (nil, nil); other failures are returned as errors.
// This method is thread-safe.
func (m *Manager) LoadSessionToken() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(KeySessionToken)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return it.Data, nil
}

// ClearSessionToken removes the stored session credential.
// Removing an absent key is not an error.
// This method is thread-safe.
func (m *Manager) ClearSessionToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeySessionToken); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
