package models

import "time"

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	Bio        string    `json:"bio"`
	AvatarURL  string    `json:"avatar_url"`
	IsPrivate  bool      `json:"is_private"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// UserSummary is the public identity attached to relationship rows and
// conversation entries.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}
}

func (u *User) ToSummary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}

// Profile is the visibility projection of a user page. Private profiles
// viewed by strangers carry only the shell fields; friends and the owner
// get the full set.
type Profile struct {
	Username                string     `json:"username"`
	AvatarURL               string     `json:"avatar_url"`
	IsPrivate               bool       `json:"is_private"`
	IsFriend                bool       `json:"is_friend"`
	HasPendingFriendRequest bool       `json:"has_pending_friend_request"`
	FollowersCount          int        `json:"followers_count"`
	FollowingCount          int        `json:"following_count"`
	ID                      string     `json:"id,omitempty"`
	Bio                     string     `json:"bio,omitempty"`
	CreatedAt               *time.Time `json:"created_at,omitempty"`
	Media                   []Media    `json:"media,omitempty"`
}
