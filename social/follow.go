package social

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Follow inserts a follower -> target edge. Private targets reject plain
// follows; the only way in is an accepted friend request.
func (s *Store) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return fmt.Errorf("%w: cannot follow yourself", ErrSelfReference)
	}

	target, err := s.userByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target.IsPrivate {
		return fmt.Errorf("%w: send a friend request instead", ErrPrivate)
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM follow_edges WHERE follower_id = ? AND following_id = ?)",
		followerID, targetID,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: already following this user", ErrDuplicate)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO follow_edges (id, follower_id, following_id, created_at) VALUES (?, ?, ?, ?)",
		uuid.New().String(), followerID, targetID, toMicros(time.Now()),
	)
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: already following this user", ErrDuplicate)
	}
	return err
}

// Unfollow deletes the follower -> target edge.
func (s *Store) Unfollow(ctx context.Context, followerID, targetID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM follow_edges WHERE follower_id = ? AND following_id = ?",
		followerID, targetID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: follow relation", ErrNotFound)
	}
	return nil
}

// IsFollowing reports whether the follower -> target edge exists.
func (s *Store) IsFollowing(ctx context.Context, followerID, targetID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM follow_edges WHERE follower_id = ? AND following_id = ?)",
		followerID, targetID,
	).Scan(&exists)
	return exists, err
}

func (s *Store) FollowersCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM follow_edges WHERE following_id = ?", userID,
	).Scan(&n)
	return n, err
}

func (s *Store) FollowingCount(ctx context.Context, userID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM follow_edges WHERE follower_id = ?", userID,
	).Scan(&n)
	return n, err
}
