package models

import "time"

// FollowEdge is a one-directional "follows" relation. At most one edge
// exists per ordered (follower, following) pair.
type FollowEdge struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}
