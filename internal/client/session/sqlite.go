package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"tastebook/internal/dbx"
)

// Keys of the two persisted values. Fixed names, cleared together.
const (
	keyToken  = "token"
	keyUserID = "user_id"
)

// SQLiteStore is the durable Store implementation backed by a local sqlite
// key-value table. The in-memory copy is the process-wide state every
// screen and the request pipeline read; the table is what survives
// restarts.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.RWMutex
	current Session
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Hydrate loads the persisted pair into memory. If either half is missing,
// or the token's exp claim has already passed, the store is cleared and the
// anonymous session is returned.
func (s *SQLiteStore) Hydrate(ctx context.Context) (Session, error) {
	token, err := s.get(ctx, s.db, keyToken)
	if err != nil {
		return Session{}, err
	}
	userID, err := s.get(ctx, s.db, keyUserID)
	if err != nil {
		return Session{}, err
	}

	if token == "" || userID == "" || tokenExpired(token, time.Now()) {
		if err := s.Clear(ctx); err != nil {
			return Session{}, err
		}
		return Session{}, nil
	}

	s.mu.Lock()
	s.current = Session{Token: token, UserID: userID}
	s.mu.Unlock()

	return s.Current(), nil
}

// Establish persists both halves in one transaction and then publishes them
// to memory, so the pipeline never observes a half-written pair.
func (s *SQLiteStore) Establish(ctx context.Context, token, userID string) error {
	if token == "" || userID == "" {
		return fmt.Errorf("refusing to establish partial session")
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, keyToken, token); err != nil {
			return err
		}
		return s.set(ctx, tx, keyUserID, userID)
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = Session{Token: token, UserID: userID}
	s.mu.Unlock()
	return nil
}

// Clear removes both halves durably and in memory.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session`)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	s.current = Session{}
	s.mu.Unlock()
	return nil
}

// Current returns the in-memory session.
func (s *SQLiteStore) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token implements api.TokenSource.
func (s *SQLiteStore) Token() string {
	return s.Current().Token
}
