package models

import "time"

type Media struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	Type      string    `json:"type"` // image, video
	CreatedAt time.Time `json:"created_at"`
}
