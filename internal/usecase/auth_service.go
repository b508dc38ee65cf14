package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rainesports/site-api/internal/domain/session"
	"github.com/rainesports/site-api/internal/platform/id"
	"github.com/rainesports/site-api/internal/platform/logging"
)

const DefaultSessionTTL = 24 * time.Hour

// AuthService gates all mutating endpoints. There is a single shared admin
// secret, so a session carries no per-user identity: holding a live token
// is the whole authorization model.
type AuthService struct {
	sessions      session.Repository
	tokens        id.Generator
	adminPassword string
	sessionTTL    time.Duration
	logger        *logging.Logger
	now           func() time.Time
}

func NewAuthService(
	sessions session.Repository,
	tokens id.Generator,
	adminPassword string,
	sessionTTL time.Duration,
	logger *logging.Logger,
) *AuthService {
	if logger == nil {
		logger = logging.NewNop()
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &AuthService{
		sessions:      sessions,
		tokens:        tokens,
		adminPassword: adminPassword,
		sessionTTL:    sessionTTL,
		logger:        logger,
		now:           time.Now,
	}
}

// Login compares against the configured shared secret with an exact match.
// Plain comparison is a deliberate simplification for a single static
// secret; it is not a per-user password-verification scheme.
func (s *AuthService) Login(ctx context.Context, password string) (session.Session, error) {
	if s.adminPassword == "" || password != s.adminPassword {
		return session.Session{}, fmt.Errorf("%w: invalid password", ErrUnauthorized)
	}

	token, err := s.tokens.NewID()
	if err != nil {
		return session.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now()
	created, err := s.sessions.Create(ctx, session.Session{
		ID:        token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	})
	if err != nil {
		return session.Session{}, fmt.Errorf("create session: %w", err)
	}

	s.logger.InfoContext(ctx, "admin session created", "expires_at", created.ExpiresAt)

	return created, nil
}

// Verify resolves a bearer token to a live session. Absent and expired
// tokens are indistinguishable to the caller.
func (s *AuthService) Verify(ctx context.Context, token string) (session.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return session.Session{}, fmt.Errorf("%w: session token is required", ErrUnauthorized)
	}

	sess, exists, err := s.sessions.Get(ctx, token)
	if err != nil {
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return session.Session{}, fmt.Errorf("%w: invalid or expired session", ErrUnauthorized)
	}

	return sess, nil
}

// Logout revokes best-effort: revoking an absent session succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, strings.TrimSpace(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// SweepExpired proactively evicts expired sessions to bound memory growth.
// Validity never depends on it: Verify already evicts lazily.
func (s *AuthService) SweepExpired(ctx context.Context) (int, error) {
	removed, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep expired sessions: %w", err)
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "expired sessions swept", "removed", removed)
	}

	return removed, nil
}
