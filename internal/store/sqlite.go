package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/freshtrack/freshtrack/internal/dbx"
	"github.com/freshtrack/freshtrack/internal/migrations"
)

const (
	keyToken    = "token"
	keyUsername = "username"
)

// SQLiteStore keeps credentials as key/value rows in a sqlite table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Open opens (creating if needed) the credential database at dsn and
// applies pending migrations. The caller owns closing the returned DB.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// RunMigrations brings the schema up to date using the embedded goose
// migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func (s *SQLiteStore) set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

// Save writes token and username in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, creds Credentials) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, creds.Token); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUsername, creds.Username)
	})
}

// Load returns the saved credentials. ok is false when no token is
// stored (a missing record is not an error).
func (s *SQLiteStore) Load(ctx context.Context) (Credentials, bool, error) {
	token, err := s.get(ctx, keyToken)
	if err != nil {
		return Credentials{}, false, err
	}
	if token == "" {
		return Credentials{}, false, nil
	}
	username, err := s.get(ctx, keyUsername)
	if err != nil {
		return Credentials{}, false, err
	}
	return Credentials{Token: token, Username: username}, true, nil
}

// Clear removes all stored credentials in one statement.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM credentials`); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
