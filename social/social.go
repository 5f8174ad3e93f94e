// Package social implements the relationship ledger (follow edges and
// friend requests), the privacy gate for direct messages, and the read-side
// projections derived from both. It knows nothing about HTTP: operations
// take an already-authenticated caller id and return tagged errors that the
// handler layer maps to status codes.
package social

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"socialword/models"
)

// Store runs all relationship and messaging operations against a single
// SQL database. Uniqueness invariants (one edge per ordered pair,
// single-fire request responses) lean on the database's unique keys and
// transactions rather than in-process locking.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func toMicros(t time.Time) int64 {
	return t.UTC().UnixMicro()
}

func fromMicros(v int64) time.Time {
	return time.UnixMicro(v).UTC()
}

// userByID returns the identity fields the ledger needs. Missing user
// maps to ErrNotFound.
func (s *Store) userByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, avatar_url, is_private FROM users WHERE id = ?",
		id,
	).Scan(&u.ID, &u.Username, &u.AvatarURL, &u.IsPrivate)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) userByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, avatar_url, is_private FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.AvatarURL, &u.IsPrivate)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
