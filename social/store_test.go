package social

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Tests run the store against an in-memory SQLite database with the same
// logical schema as production. The queries are plain SQL that both
// engines accept.
var testSchema = []string{
	`CREATE TABLE users (
		id          TEXT PRIMARY KEY,
		email       TEXT NOT NULL UNIQUE,
		username    TEXT NOT NULL UNIQUE,
		password    TEXT NOT NULL,
		bio         TEXT NOT NULL DEFAULT '',
		avatar_url  TEXT NOT NULL DEFAULT '',
		is_private  BOOLEAN NOT NULL DEFAULT 0,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at  TIMESTAMP,
		updated_at  TIMESTAMP
	)`,
	`CREATE TABLE follow_edges (
		id           TEXT PRIMARY KEY,
		follower_id  TEXT NOT NULL,
		following_id TEXT NOT NULL,
		created_at   BIGINT NOT NULL,
		UNIQUE (follower_id, following_id)
	)`,
	`CREATE TABLE friend_requests (
		id          TEXT PRIMARY KEY,
		sender_id   TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'pending',
		pending_key TEXT UNIQUE,
		created_at  BIGINT NOT NULL
	)`,
	`CREATE TABLE messages (
		id          TEXT PRIMARY KEY,
		sender_id   TEXT NOT NULL,
		receiver_id TEXT NOT NULL,
		content     TEXT NOT NULL,
		created_at  BIGINT NOT NULL
	)`,
	`CREATE TABLE media (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		url        TEXT NOT NULL,
		type       TEXT NOT NULL,
		created_at TIMESTAMP
	)`,
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	for _, stmt := range testSchema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return NewStore(db)
}

func createUser(t *testing.T, s *Store, username string, private bool) string {
	t.Helper()

	id := uuid.New().String()
	_, err := s.db.Exec(
		"INSERT INTO users (id, email, username, password, bio, avatar_url, is_private, is_verified, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, 1, ?, ?)",
		id, username+"@example.com", username, "hash", "bio of "+username, "", private, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return id
}

func setPrivate(t *testing.T, s *Store, userID string, private bool) {
	t.Helper()

	_, err := s.db.Exec("UPDATE users SET is_private = ? WHERE id = ?", private, userID)
	require.NoError(t, err)
}
