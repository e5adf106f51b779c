// Copyright (c) 2025 Userdeck
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the process-wide source of truth for "who is logged in".
// The Store is an observable state holder: consumers read snapshots or
// subscribe to be notified synchronously after every mutation, in the order
// the states were produced.
//
// Overlapping Login calls are not serialized; their completions race and the
// last writer wins for user/token/error. IsLoading captures at most one
// in-flight attempt.
package session

import (
	"context"
	"sync"

	"userdeck/cli/internal/backend"
	apperrors "userdeck/cli/internal/errors"
	"userdeck/cli/internal/tokenstore"
)

// State is the observable session snapshot.
// Invariant: IsAuthenticated is true iff both User and Token are present.
type State struct {
	User            *backend.User
	Token           *tokenstore.Token
	IsAuthenticated bool
	IsLoading       bool
	Err             string
}

// Listener receives a state snapshot after each mutation.
type Listener func(State)

// Store is the reactive session state holder. The zero value is not usable;
// construct with New.
type Store struct {
	api    backend.API
	tokens *tokenstore.Store

	mu        sync.RWMutex
	state     State
	nextID    int
	listeners map[int]Listener
	order     []int

	// notifyMu serializes mutate+notify so listeners observe states in the
	// order they were produced.
	notifyMu sync.Mutex
}

// New constructs a Store in the anonymous state.
func New(api backend.API, tokens *tokenstore.Store) *Store {
	return &Store{
		api:       api,
		tokens:    tokens,
		listeners: make(map[int]Listener),
	}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener and returns its unsubscribe function.
// Listeners are invoked synchronously after every mutation.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// set applies the mutation and notifies all subscribers with the resulting
// snapshot. The listener calls happen outside the state lock so listeners
// may read Snapshot; notifyMu keeps notifications ordered.
func (s *Store) set(mutate func(*State)) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	mutate(&s.state)
	st := s.state
	fns := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		if fn, ok := s.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// Login performs a full login cycle. Any prior error is cleared at the start
// of the attempt and IsLoading is reset before this call returns, success or
// failure. On failure the message is captured into State.Err and the same
// failure is also returned, so the state channel and the error channel carry
// one message.
func (s *Store) Login(ctx context.Context, creds backend.Credentials) error {
	s.set(func(st *State) {
		st.IsLoading = true
		st.Err = ""
	})

	res, err := s.api.Login(ctx, creds)
	if err != nil {
		msg := apperrors.UserMessage(err, "Login failed")
		s.set(func(st *State) {
			st.IsLoading = false
			st.Err = msg
		})
		return err
	}

	s.set(func(st *State) {
		u, t := res.User, res.Token
		st.User = &u
		st.Token = &t
		st.IsAuthenticated = true
		st.IsLoading = false
	})
	return nil
}

// Logout clears the stored credential and resets to the anonymous state,
// including any prior error. Safe to call from any state; idempotent.
func (s *Store) Logout() {
	_ = s.api.Logout()
	s.set(func(st *State) {
		*st = State{}
	})
}

// SetUser replaces the user snapshot without a full login cycle, e.g. after
// a silent refresh. IsAuthenticated is recomputed; a user without a
// credential (or vice versa) is never observable as authenticated.
func (s *Store) SetUser(u *backend.User) {
	s.set(func(st *State) {
		st.User = u
		st.IsAuthenticated = u != nil && st.Token != nil
	})
}

// SetError sets or clears the last error message.
func (s *Store) SetError(msg string) {
	s.set(func(st *State) {
		st.Err = msg
	})
}

// SetLoading sets the loading flag directly.
func (s *Store) SetLoading(v bool) {
	s.set(func(st *State) {
		st.IsLoading = v
	})
}

// Restore attempts to resume a previous session from the persisted
// credential. A stored token alone never implies an authenticated user; the
// user snapshot is refetched and the session becomes authenticated only when
// that fetch succeeds. An expired credential is cleared so the next start
// comes up cleanly anonymous.
func (s *Store) Restore(ctx context.Context) error {
	tok := s.tokens.Current()
	if tok == nil {
		return nil
	}

	u, err := s.api.GetCurrentUser(ctx)
	if err != nil {
		if apperrors.IsKind(err, apperrors.AuthFailure) {
			_ = s.api.Logout()
		}
		return err
	}

	s.set(func(st *State) {
		st.User = u
		st.Token = tok
		st.IsAuthenticated = true
	})
	return nil
}
