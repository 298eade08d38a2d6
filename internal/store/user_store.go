package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skanda-m/estatedesk/internal/domain"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, name, email, passwordHash, role string) (*domain.User, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, role) VALUES (?, ?, ?, ?, ?)
	`, id, name, strings.ToLower(email), passwordHash, role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.getOne(ctx, `WHERE id = ?`, id)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, `WHERE email = ?`, strings.ToLower(email))
}

func (s *UserStore) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, role, email_verified, created_at FROM users `+where,
		arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.EmailVerified, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *UserStore) MarkVerified(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `UPDATE users SET email_verified = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user not found")
	}

	return nil
}
