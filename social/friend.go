package social

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"socialword/models"
)

// pendingKey identifies the ordered pair while a request is pending. The
// column goes NULL on resolution, so the unique key on it allows at most
// one pending request per ordered pair without blocking resends later.
func pendingKey(senderID, receiverID string) string {
	return senderID + ":" + receiverID
}

// SendFriendRequest creates a pending request addressed by username.
// Only the exact ordered (sender, receiver) pair is checked for an
// existing pending request; a reverse pending request may coexist.
func (s *Store) SendFriendRequest(ctx context.Context, senderID, toUsername string) (*models.FriendRequest, error) {
	receiver, err := s.userByUsername(ctx, toUsername)
	if err != nil {
		return nil, err
	}
	if receiver.ID == senderID {
		return nil, fmt.Errorf("%w: cannot befriend yourself", ErrSelfReference)
	}

	var exists bool
	if err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM friend_requests WHERE sender_id = ? AND receiver_id = ? AND status = 'pending')",
		senderID, receiver.ID,
	).Scan(&exists); err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: friend request already sent", ErrDuplicate)
	}

	req := &models.FriendRequest{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Status:     models.FriendRequestPending,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO friend_requests (id, sender_id, receiver_id, status, pending_key, created_at) VALUES (?, ?, ?, 'pending', ?, ?)",
		req.ID, req.SenderID, req.ReceiverID, pendingKey(req.SenderID, req.ReceiverID), toMicros(req.CreatedAt),
	)
	if isDuplicateKey(err) {
		return nil, fmt.Errorf("%w: friend request already sent", ErrDuplicate)
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// RespondFriendRequest resolves a pending request. Accepting creates the
// follow edges in both directions inside the same transaction, skipping
// any edge that already exists from a prior plain follow. The status
// update is guarded on status = 'pending' so a response fires exactly
// once even under concurrent attempts.
func (s *Store) RespondFriendRequest(ctx context.Context, receiverID, requestID, action string) (*models.FriendRequest, error) {
	if action != "accept" && action != "decline" {
		return nil, fmt.Errorf("%w: action must be accept or decline", ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var req models.FriendRequest
	var createdAt int64
	err = tx.QueryRowContext(ctx,
		"SELECT id, sender_id, receiver_id, status, created_at FROM friend_requests WHERE id = ?",
		requestID,
	).Scan(&req.ID, &req.SenderID, &req.ReceiverID, &req.Status, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: friend request", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	req.CreatedAt = fromMicros(createdAt)

	if req.ReceiverID != receiverID {
		return nil, fmt.Errorf("%w: friend request", ErrNotFound)
	}
	if req.Status != models.FriendRequestPending {
		return nil, fmt.Errorf("%w: request already %s", ErrInvalidState, req.Status)
	}

	status := models.FriendRequestDeclined
	if action == "accept" {
		status = models.FriendRequestAccepted
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE friend_requests SET status = ?, pending_key = NULL WHERE id = ? AND status = 'pending'",
		status, requestID,
	)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: request is no longer pending", ErrInvalidState)
	}

	if status == models.FriendRequestAccepted {
		now := toMicros(time.Now())
		if err := insertEdgeIfAbsent(ctx, tx, req.SenderID, req.ReceiverID, now); err != nil {
			return nil, err
		}
		if err := insertEdgeIfAbsent(ctx, tx, req.ReceiverID, req.SenderID, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	req.Status = status
	return &req, nil
}

func insertEdgeIfAbsent(ctx context.Context, tx *sql.Tx, followerID, followingID string, createdAt int64) error {
	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM follow_edges WHERE follower_id = ? AND following_id = ?)",
		followerID, followingID,
	).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO follow_edges (id, follower_id, following_id, created_at) VALUES (?, ?, ?, ?)",
		uuid.New().String(), followerID, followingID, createdAt,
	)
	if isDuplicateKey(err) {
		return nil
	}
	return err
}

// FriendRequests returns the caller's pending requests, split into
// received and sent, each annotated with the counterpart user.
func (s *Store) FriendRequests(ctx context.Context, userID string) (received, sent []models.FriendRequestWithUser, err error) {
	received, err = s.pendingRequests(ctx, userID, true)
	if err != nil {
		return nil, nil, err
	}
	sent, err = s.pendingRequests(ctx, userID, false)
	if err != nil {
		return nil, nil, err
	}
	return received, sent, nil
}

func (s *Store) pendingRequests(ctx context.Context, userID string, incoming bool) ([]models.FriendRequestWithUser, error) {
	query := `
		SELECT fr.id, fr.sender_id, fr.receiver_id, fr.status, fr.created_at,
		       u.id, u.username, u.avatar_url
		FROM friend_requests fr
		JOIN users u ON u.id = fr.sender_id
		WHERE fr.receiver_id = ? AND fr.status = 'pending'
		ORDER BY fr.created_at DESC`
	if !incoming {
		query = `
		SELECT fr.id, fr.sender_id, fr.receiver_id, fr.status, fr.created_at,
		       u.id, u.username, u.avatar_url
		FROM friend_requests fr
		JOIN users u ON u.id = fr.receiver_id
		WHERE fr.sender_id = ? AND fr.status = 'pending'
		ORDER BY fr.created_at DESC`
	}

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []models.FriendRequestWithUser{}
	for rows.Next() {
		var r models.FriendRequestWithUser
		var createdAt int64
		if err := rows.Scan(
			&r.ID, &r.SenderID, &r.ReceiverID, &r.Status, &createdAt,
			&r.User.ID, &r.User.Username, &r.User.AvatarURL,
		); err != nil {
			return nil, err
		}
		r.CreatedAt = fromMicros(createdAt)
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// Friends projects accepted requests in either direction into the set of
// counterpart users, each at most once. Keyed by counterpart id: an
// accepted request plus independent follow edges still yields one entry.
func (s *Store) Friends(ctx context.Context, userID string) ([]models.UserSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT fr.sender_id,
		       su.id, su.username, su.avatar_url,
		       ru.id, ru.username, ru.avatar_url
		FROM friend_requests fr
		JOIN users su ON su.id = fr.sender_id
		JOIN users ru ON ru.id = fr.receiver_id
		WHERE fr.status = 'accepted' AND (fr.sender_id = ? OR fr.receiver_id = ?)
		ORDER BY fr.created_at DESC
	`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	friends := []models.UserSummary{}
	for rows.Next() {
		var senderID string
		var sender, receiver models.UserSummary
		if err := rows.Scan(
			&senderID,
			&sender.ID, &sender.Username, &sender.AvatarURL,
			&receiver.ID, &receiver.Username, &receiver.AvatarURL,
		); err != nil {
			return nil, err
		}
		friend := sender
		if senderID == userID {
			friend = receiver
		}
		if seen[friend.ID] {
			continue
		}
		seen[friend.ID] = true
		friends = append(friends, friend)
	}
	return friends, rows.Err()
}

// AreFriends reports whether an accepted request exists between the pair
// in either direction.
func (s *Store) AreFriends(ctx context.Context, userA, userB string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM friend_requests
			WHERE status = 'accepted'
			  AND ((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?))
		)`, userA, userB, userB, userA,
	).Scan(&exists)
	return exists, err
}

// HasPendingRequest reports whether a pending request from sender to
// receiver exists (ordered pair).
func (s *Store) HasPendingRequest(ctx context.Context, senderID, receiverID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM friend_requests WHERE sender_id = ? AND receiver_id = ? AND status = 'pending')",
		senderID, receiverID,
	).Scan(&exists)
	return exists, err
}
