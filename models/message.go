package models

import "time"

// Message is a direct message between two users. Append-only.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Conversation is one entry of the conversations list: the counterpart
// user plus the newest message exchanged with them.
type Conversation struct {
	Friend      UserSummary `json:"friend"`
	LastMessage Message     `json:"last_message"`
}
