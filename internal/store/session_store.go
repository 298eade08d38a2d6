package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skanda-m/estatedesk/internal/domain"
)

type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, userID string, ttl time.Duration) (*domain.Session, error) {
	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(ttl)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?)
	`, token, userID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &domain.Session{Token: token, UserID: userID, ExpiresAt: expiresAt}, nil
}

// GetByToken returns the session with its user populated, or nil if the token
// is unknown or expired.
func (s *SessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	sess := &domain.Session{User: &domain.User{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT s.token, s.user_id, s.expires_at,
			u.id, u.name, u.email, u.password_hash, u.role, u.email_verified, u.created_at
		FROM sessions s JOIN users u ON u.id = s.user_id
		WHERE s.token = ?
	`, token).Scan(&sess.Token, &sess.UserID, &sess.ExpiresAt,
		&sess.User.ID, &sess.User.Name, &sess.User.Email, &sess.User.PasswordHash,
		&sess.User.Role, &sess.User.EmailVerified, &sess.User.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().UTC().After(sess.ExpiresAt) {
		return nil, nil
	}

	return sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions past their expiry and returns how many were
// deleted.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
