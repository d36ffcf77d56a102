// Package store persists the session token and display name across
// process restarts in a local sqlite database.
package store

import "context"

// Credentials is the durable copy of the active session's identity.
type Credentials struct {
	Token    string
	Username string
}

// CredentialStore saves and restores the session identity. Save and
// Clear are atomic: a reader never observes a token without its
// username or a half-cleared record.
type CredentialStore interface {
	Save(ctx context.Context, creds Credentials) error
	Load(ctx context.Context) (Credentials, bool, error)
	Clear(ctx context.Context) error
}
