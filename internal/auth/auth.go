// Package auth implements email/password authentication with cookie sessions
// and verification-gated sign-up.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/skanda-m/estatedesk/internal/domain"
	"github.com/skanda-m/estatedesk/internal/mail"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrTokenInvalid       = errors.New("verification link is invalid or expired")
)

const (
	defaultRole     = "CUSTOMER"
	verificationTTL = 24 * time.Hour
)

// userRepository is the subset of store.UserStore that Service requires.
type userRepository interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	MarkVerified(ctx context.Context, id string) error
}

// sessionRepository is the subset of store.SessionStore that Service requires.
type sessionRepository interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (*domain.Session, error)
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// verificationRepository is the subset of store.VerificationStore that Service
// requires.
type verificationRepository interface {
	Create(ctx context.Context, userID string, ttl time.Duration) (string, error)
	Consume(ctx context.Context, token string) (string, error)
}

// mailEnqueuer is satisfied by *mail.Dispatcher.
type mailEnqueuer interface {
	Enqueue(msg mail.Message)
}

type Service struct {
	users         userRepository
	sessions      sessionRepository
	verifications verificationRepository
	mailer        mailEnqueuer
	baseURL       string
	callbackPath  string
	sessionTTL    time.Duration
	logger        *slog.Logger
}

func NewService(
	users userRepository,
	sessions sessionRepository,
	verifications verificationRepository,
	mailer mailEnqueuer,
	baseURL, callbackPath string,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:         users,
		sessions:      sessions,
		verifications: verifications,
		mailer:        mailer,
		baseURL:       baseURL,
		callbackPath:  callbackPath,
		sessionTTL:    sessionTTL,
		logger:        logger,
	}
}

// SignUp creates an unverified account and queues a verification email. The
// user cannot sign in until the emailed link is followed.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, name, email, string(hash), defaultRole)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.verifications.Create(ctx, user.ID, verificationTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create verification token: %w", err)
	}

	s.mailer.Enqueue(mail.Message{
		To:      user.Email,
		Subject: "Verify your email",
		Text:    s.verificationURL(token),
	})
	s.logger.Info("user signed up", "user_id", user.ID)

	return user, nil
}

// SignIn checks credentials and opens a session. Unverified accounts are
// rejected with ErrEmailNotVerified.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	sess, err := s.sessions.Create(ctx, user.ID, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	sess.User = user

	s.logger.Info("user signed in", "user_id", user.ID)
	return sess, nil
}

// GetSession resolves a cookie token to a live session, or nil when the token
// is empty, unknown, or expired.
func (s *Service) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}
	return s.sessions.GetByToken(ctx, token)
}

// VerifyEmail consumes a verification token, marks the account verified, and
// signs the user in so the callback page lands on an authenticated session.
func (s *Service) VerifyEmail(ctx context.Context, token string) (*domain.Session, error) {
	userID, err := s.verifications.Consume(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to consume verification token: %w", err)
	}
	if userID == "" {
		return nil, ErrTokenInvalid
	}

	if err := s.users.MarkVerified(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	sess, err := s.sessions.Create(ctx, userID, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	sess.User = user

	s.logger.Info("email verified", "user_id", userID)
	return sess, nil
}

func (s *Service) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *Service) verificationURL(token string) string {
	return fmt.Sprintf("%s/verify-email?token=%s&callbackURL=%s",
		s.baseURL, url.QueryEscape(token), url.QueryEscape(s.callbackPath))
}
