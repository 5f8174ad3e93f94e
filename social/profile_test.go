package social

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addMedia(t *testing.T, s *Store, userID, url string) {
	t.Helper()

	_, err := s.db.Exec(
		"INSERT INTO media (id, user_id, url, type, created_at) VALUES (?, ?, ?, 'image', ?)",
		uuid.New().String(), userID, url, time.Now(),
	)
	require.NoError(t, err)
}

func TestProfilePublicIsFull(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, s, "alice", false)
	bob := createUser(t, s, "bob", false)
	addMedia(t, s, bob, "https://cdn.example.com/pic.jpg")

	profile, err := s.Profile(ctx, alice, "bob")
	require.NoError(t, err)

	assert.Equal(t, bob, profile.ID)
	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, "bio of bob", profile.Bio)
	assert.False(t, profile.IsPrivate)
	require.Len(t, profile.Media, 1)
	assert.Equal(t, "https://cdn.example.com/pic.jpg", profile.Media[0].URL)
}

func TestProfilePrivateIsRedactedForStrangers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, s, "alice", false)
	bob := createUser(t, s, "bob", true)
	addMedia(t, s, bob, "https://cdn.example.com/secret.jpg")
	require.NoError(t, s.Follow(ctx, bob, alice))

	profile, err := s.Profile(ctx, alice, "bob")
	require.NoError(t, err)

	// Shell only: no id, bio or media, but flags and counts are present.
	assert.Empty(t, profile.ID)
	assert.Empty(t, profile.Bio)
	assert.Empty(t, profile.Media)
	assert.Equal(t, "bob", profile.Username)
	assert.True(t, profile.IsPrivate)
	assert.False(t, profile.IsFriend)
	assert.Equal(t, 0, profile.FollowersCount)
	assert.Equal(t, 1, profile.FollowingCount)
}

func TestProfilePrivateFriendSeesFull(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, s, "alice", false)
	bob := createUser(t, s, "bob", true)

	req, err := s.SendFriendRequest(ctx, alice, "bob")
	require.NoError(t, err)
	_, err = s.RespondFriendRequest(ctx, bob, req.ID, "accept")
	require.NoError(t, err)

	profile, err := s.Profile(ctx, alice, "bob")
	require.NoError(t, err)

	assert.Equal(t, bob, profile.ID)
	assert.True(t, profile.IsFriend)
	assert.Equal(t, "bio of bob", profile.Bio)
}

func TestProfileOwnerSeesFull(t *testing.T) {
	s := newTestStore(t)
	bob := createUser(t, s, "bob", true)

	profile, err := s.Profile(context.Background(), bob, "bob")
	require.NoError(t, err)
	assert.Equal(t, bob, profile.ID)
}

func TestProfilePendingRequestFlag(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createUser(t, s, "alice", false)
	createUser(t, s, "bob", true)

	_, err := s.SendFriendRequest(ctx, alice, "bob")
	require.NoError(t, err)

	profile, err := s.Profile(ctx, alice, "bob")
	require.NoError(t, err)
	assert.True(t, profile.HasPendingFriendRequest)
	assert.False(t, profile.IsFriend)
}

func TestProfileUnknownUser(t *testing.T) {
	s := newTestStore(t)
	alice := createUser(t, s, "alice", false)

	_, err := s.Profile(context.Background(), alice, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
