// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

package tokenstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingBackend struct{}

func (failingBackend) Load() ([]byte, error) { return nil, errors.New("medium unavailable") }
func (failingBackend) Save([]byte) error     { return errors.New("medium unavailable") }
func (failingBackend) Clear() error          { return errors.New("medium unavailable") }

func TestLoadEmptyStore(t *testing.T) {
	s := New(NewMemory())
	require.Nil(t, s.Load())
	require.Nil(t, s.Current())
}

func TestSaveThenCurrentAndReload(t *testing.T) {
	mem := NewMemory()
	s := New(mem)

	tok := Token{AccessToken: "tok123", TokenType: "bearer"}
	require.NoError(t, s.Save(tok))

	got := s.Current()
	require.NotNil(t, got)
	require.Equal(t, "tok123", got.AccessToken)
	require.Equal(t, "bearer", got.TokenType)

	// A fresh store over the same backend sees the persisted credential.
	s2 := New(mem)
	reloaded := s2.Load()
	require.NotNil(t, reloaded)
	require.Equal(t, tok, *reloaded)
}

func TestLoadMalformedStorageDegradesToAbsent(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.Save([]byte("{not json")))

	s := New(mem)
	require.Nil(t, s.Load())
	require.Nil(t, s.Current())
}

func TestLoadEmptyAccessTokenDegradesToAbsent(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.Save([]byte(`{"access_token":"","token_type":"bearer"}`)))

	s := New(mem)
	require.Nil(t, s.Load())
}

func TestLoadBackendFailureDegradesToAbsent(t *testing.T) {
	s := New(failingBackend{})
	require.Nil(t, s.Load())
	require.Nil(t, s.Current())
}

func TestClearIsIdempotent(t *testing.T) {
	s := New(NewMemory())
	require.NoError(t, s.Save(Token{AccessToken: "tok123", TokenType: "bearer"}))

	require.NoError(t, s.Clear())
	require.Nil(t, s.Current())
	require.NoError(t, s.Clear())
	require.Nil(t, s.Current())
}

func TestSaveFailureKeepsCacheUnchanged(t *testing.T) {
	s := New(failingBackend{})
	err := s.Save(Token{AccessToken: "tok123", TokenType: "bearer"})
	require.Error(t, err)
	require.Nil(t, s.Current())
}

func TestCurrentReturnsCopy(t *testing.T) {
	s := New(NewMemory())
	require.NoError(t, s.Save(Token{AccessToken: "tok123", TokenType: "bearer"}))

	got := s.Current()
	got.AccessToken = "mutated"
	require.Equal(t, "tok123", s.Current().AccessToken)
}
