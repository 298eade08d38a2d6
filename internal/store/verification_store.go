package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VerificationStore manages one-shot email verification tokens.
type VerificationStore struct {
	db *sql.DB
}

func NewVerificationStore(db *sql.DB) *VerificationStore {
	return &VerificationStore{db: db}
}

func (s *VerificationStore) Create(ctx context.Context, userID string, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO verification_tokens (token, user_id, expires_at) VALUES (?, ?, ?)
	`, token, userID, time.Now().UTC().Add(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to create verification token: %w", err)
	}
	return token, nil
}

// Consume deletes the token and returns the user id it belonged to, or "" if
// the token is unknown or expired.
func (s *VerificationStore) Consume(ctx context.Context, token string) (string, error) {
	var userID string
	var expiresAt time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, expires_at FROM verification_tokens WHERE token = ?
	`, token).Scan(&userID, &expiresAt)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get verification token: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM verification_tokens WHERE token = ?`, token); err != nil {
		return "", fmt.Errorf("failed to consume verification token: %w", err)
	}

	if time.Now().UTC().After(expiresAt) {
		return "", nil
	}

	return userID, nil
}
