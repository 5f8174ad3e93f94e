package models

import "time"

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestDeclined = "declined"
)

// FriendRequest proposes a mutual friendship. Lifecycle is
// pending -> accepted|declined; terminal states never change again.
// Acceptance creates follow edges in both directions.
type FriendRequest struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type FriendRequestWithUser struct {
	FriendRequest
	User UserSummary `json:"user"`
}
