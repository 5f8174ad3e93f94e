package models

import "time"

type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	MediaURL  string    `json:"media_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorInfo struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type PostResponse struct {
	ID            string     `json:"id"`
	Content       string     `json:"content"`
	MediaURL      string     `json:"media_url,omitempty"`
	Author        AuthorInfo `json:"author"`
	CommentsCount int        `json:"comments_count"`
	LikesCount    int        `json:"likes_count"`
	CreatedAt     time.Time  `json:"created_at"`
}
