package social

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"socialword/models"
)

// CanMessage decides whether viewer may exchange messages with subject.
// Three-tier fallback: public profile (or self) passes, then accepted
// friendship, then any prior message in either direction. The last tier
// grandfathers conversations that existed before the profile went
// private. Privacy gates new contact, not existing contact.
func (s *Store) CanMessage(ctx context.Context, viewerID, subjectID string) error {
	subject, err := s.userByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if !subject.IsPrivate || viewerID == subjectID {
		return nil
	}

	friends, err := s.AreFriends(ctx, viewerID, subjectID)
	if err != nil {
		return err
	}
	if friends {
		return nil
	}

	var talked bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM messages
			WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		)`, viewerID, subjectID, subjectID, viewerID,
	).Scan(&talked)
	if err != nil {
		return err
	}
	if talked {
		return nil
	}

	return fmt.Errorf("%w: you must be friends to chat", ErrPrivate)
}

// SendMessage appends a message after the gate passes.
func (s *Store) SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: message content is empty", ErrValidation)
	}

	if err := s.CanMessage(ctx, senderID, receiverID); err != nil {
		return nil, err
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO messages (id, sender_id, receiver_id, content, created_at) VALUES (?, ?, ?, ?, ?)",
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Content, toMicros(msg.CreatedAt),
	)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// Messages returns the conversation between viewer and other, oldest
// first. Same gate as sending.
func (s *Store) Messages(ctx context.Context, viewerID, otherID string) ([]models.Message, error) {
	if err := s.CanMessage(ctx, viewerID, otherID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender_id, receiver_id, content, created_at
		FROM messages
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY created_at ASC
	`, viewerID, otherID, otherID, viewerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = fromMicros(createdAt)
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Conversations lists each counterpart the caller has exchanged messages
// with, newest conversation first, one entry per counterpart carrying the
// latest message.
func (s *Store) Conversations(ctx context.Context, userID string) ([]models.Conversation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.created_at,
		       u.id, u.username, u.avatar_url
		FROM messages m
		JOIN users u ON u.id = CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END
		WHERE m.sender_id = ? OR m.receiver_id = ?
		ORDER BY m.created_at DESC
	`, userID, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	conversations := []models.Conversation{}
	for rows.Next() {
		var c models.Conversation
		var createdAt int64
		if err := rows.Scan(
			&c.LastMessage.ID, &c.LastMessage.SenderID, &c.LastMessage.ReceiverID,
			&c.LastMessage.Content, &createdAt,
			&c.Friend.ID, &c.Friend.Username, &c.Friend.AvatarURL,
		); err != nil {
			return nil, err
		}
		if seen[c.Friend.ID] {
			continue
		}
		seen[c.Friend.ID] = true
		c.LastMessage.CreatedAt = fromMicros(createdAt)
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}
