package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request never completed (connection refused,
	// timeout, DNS failure). Nothing can be inferred about server state.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError is a completed HTTP exchange with a non-success status.
// Message carries the server-supplied text verbatim so callers can show
// "wrong password" as opposed to "offline".
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match auth rejections
// without losing the server message.
func (e *ServerError) Unwrap() error {
	if e.Status == 401 || e.Status == 403 {
		return ErrUnauthorized
	}
	return nil
}
