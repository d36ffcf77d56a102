// Package service contains the application services of the grocery
// tracking client: the session manager, the inventory store, and the
// recipe matcher.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/freshtrack/freshtrack/internal/api"
	"github.com/freshtrack/freshtrack/internal/logging"
	"github.com/freshtrack/freshtrack/internal/models"
	"github.com/freshtrack/freshtrack/internal/store"
)

// Manager owns the session lifecycle: the startup auth check, login,
// registration, and logout. It is the only writer of the credential
// store and of the API client's token.
type Manager struct {
	client  api.Client
	creds   store.CredentialStore
	inv     *Inventory
	matcher *RecipeMatcher
	log     logging.Logger

	mu      sync.Mutex
	session models.Session
}

func NewManager(client api.Client, creds store.CredentialStore, inv *Inventory, matcher *RecipeMatcher, log logging.Logger) *Manager {
	return &Manager{client: client, creds: creds, inv: inv, matcher: matcher, log: log}
}

// Session returns a copy of the current session. An inactive session
// has an empty token.
func (m *Manager) Session() models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// establish installs a fresh session. A new epoch is minted so that
// responses issued under a previous session are discarded on arrival.
func (m *Manager) establish(token, username string) models.Session {
	s := models.Session{Token: token, Username: username, Epoch: uuid.NewString()}

	m.mu.Lock()
	m.session = s
	m.mu.Unlock()

	m.client.SetToken(token)
	m.inv.activate(s.Epoch)
	m.matcher.reset()
	return s
}

// reset tears the session down locally. reason distinguishes a user
// logout from an invalidated session; the side effects are identical.
func (m *Manager) reset(ctx context.Context, reason string) {
	m.mu.Lock()
	m.session = models.Session{}
	m.mu.Unlock()

	m.client.ClearToken()
	m.inv.deactivate()
	m.matcher.reset()

	if err := m.creds.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored credentials", "error", err)
	}
	m.log.Info(ctx, "session cleared", "reason", reason)
}

// CheckAuth is invoked once at startup. With no stored token it returns
// an inactive session without touching the network. With a token it
// asks the backend to confirm it; on success the session is established
// and a full refresh is kicked off. Any failure (network or rejection)
// clears the stored credentials and returns ErrSessionInvalid: there is
// never a half-valid session.
func (m *Manager) CheckAuth(ctx context.Context) (models.Session, error) {
	creds, ok, err := m.creds.Load(ctx)
	if err != nil {
		return models.Session{}, fmt.Errorf("loading credentials: %w", err)
	}
	if !ok {
		return models.Session{}, nil
	}

	m.client.SetToken(creds.Token)
	username, err := m.client.CheckAuth(ctx)
	if err != nil {
		m.log.Warn(ctx, "auth check failed", "error", err)
		m.reset(ctx, "invalid session")
		return models.Session{}, fmt.Errorf("%w: %v", ErrSessionInvalid, err)
	}

	s := m.establish(creds.Token, username)
	report := m.inv.RefreshAll(ctx)
	if report.Failed() {
		m.log.Warn(ctx, "initial refresh partially failed", "error", report.Err())
	}
	return s, nil
}

// Login authenticates and, on success, persists the credentials and
// establishes the session. A rejection surfaces the server's message
// (*api.ServerError); a transport failure surfaces api.ErrUnavailable.
// In both failure cases the caller stays unauthenticated.
func (m *Manager) Login(ctx context.Context, username, password string) (models.Session, error) {
	token, user, err := m.client.Login(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}

	if err := m.creds.Save(ctx, store.Credentials{Token: token, Username: user}); err != nil {
		return models.Session{}, fmt.Errorf("saving credentials: %w", err)
	}

	s := m.establish(token, user)
	report := m.inv.RefreshAll(ctx)
	if report.Failed() {
		m.log.Warn(ctx, "post-login refresh partially failed", "error", report.Err())
	}
	return s, nil
}

// Register creates an account. Success does not log the user in; the
// caller is expected to switch to login mode and prompt again.
func (m *Manager) Register(ctx context.Context, username, password, phoneNumber string) error {
	return m.client.Register(ctx, username, password, phoneNumber)
}

// Logout is local-only: it clears the credential store and all
// in-memory session, inventory, and recipe state. No server round-trip
// is made, so it works offline. An in-flight refresh is not aborted;
// its response will be discarded because the epoch no longer matches.
func (m *Manager) Logout(ctx context.Context) {
	m.reset(ctx, "user logout")
}
