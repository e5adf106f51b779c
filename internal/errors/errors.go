// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so the command layer can decide how to present a failure
// without string-matching on transport errors.
//
// The package supports wrapping underlying errors while maintaining error kind information.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// NetworkError indicates the remote call itself could not be made or completed.
	NetworkError Kind = "network_error"
	// AuthFailure indicates the server completed the call but rejected the
	// credentials or the request. The message may carry a server-supplied detail.
	AuthFailure Kind = "auth_failure"
	// StorageCorruption indicates the persisted credential could not be read.
	// It is never fatal; callers treat the credential as absent.
	StorageCorruption Kind = "storage_corrupt"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// UserMessage extracts the human-friendly message from err, falling back to
// the provided default when err carries no typed message. It never returns
// raw transport error text.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var e *E
	if stderrors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}
