package social

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"socialword/models"
)

// Profile projects a user page for a viewer. Public profiles, friends and
// the owner get the full record (bio, media, id); strangers looking at a
// private profile get the redacted shell. Counts and relationship flags
// are always included so the client can render the follow/request UI.
func (s *Store) Profile(ctx context.Context, viewerID, username string) (*models.Profile, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, username, bio, avatar_url, is_private, created_at FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.Bio, &u.AvatarURL, &u.IsPrivate, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: user %q", ErrNotFound, username)
	}
	if err != nil {
		return nil, err
	}

	followers, err := s.FollowersCount(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowingCount(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	isFriend, err := s.AreFriends(ctx, viewerID, u.ID)
	if err != nil {
		return nil, err
	}
	hasPending, err := s.HasPendingRequest(ctx, viewerID, u.ID)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		Username:                u.Username,
		AvatarURL:               u.AvatarURL,
		IsPrivate:               u.IsPrivate,
		IsFriend:                isFriend,
		HasPendingFriendRequest: hasPending,
		FollowersCount:          followers,
		FollowingCount:          following,
	}

	isOwner := viewerID == u.ID
	if u.IsPrivate && !isFriend && !isOwner {
		return profile, nil
	}

	media, err := s.mediaByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	createdAt := u.CreatedAt
	profile.ID = u.ID
	profile.Bio = u.Bio
	profile.CreatedAt = &createdAt
	profile.Media = media
	return profile, nil
}

func (s *Store) mediaByUser(ctx context.Context, userID string) ([]models.Media, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, url, type, created_at FROM media WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	media := []models.Media{}
	for rows.Next() {
		var m models.Media
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.UserID, &m.URL, &m.Type, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = createdAt
		media = append(media, m)
	}
	return media, rows.Err()
}
