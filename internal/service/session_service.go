package service

import (
	"context"
	"time"

	"github.com/spec-kit/directory-service/internal/auth"
	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/repository"
	apperrors "github.com/spec-kit/directory-service/pkg/util"
)

// SessionService issues and resolves bearer sessions. Sessions are
// write-once snapshots; expiry is checked on read and is the only
// termination, there is no revocation and no sliding renewal.
type SessionService struct {
	sessions repository.SessionRepository
	ttl      time.Duration

	now func() time.Time
}

// NewSessionService constructs the service.
func NewSessionService(sessions repository.SessionRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &SessionService{sessions: sessions, ttl: ttl, now: time.Now}
}

// Issue creates and stores a session carrying the employee's identity
// snapshot at login time.
func (s *SessionService) Issue(ctx context.Context, employee *domain.Employee) (*domain.Session, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	now := s.now()
	session := &domain.Session{
		Token:     token,
		UserID:    employee.ID,
		Email:     employee.Email,
		Name:      employee.Name,
		Role:      domain.CoerceRole(string(employee.Role)),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl).UnixMilli(),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve returns the live session for a token, failing closed: empty,
// unknown and expired tokens all produce the same unauthorized error so
// callers cannot tell which check failed.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, apperrors.NewUnauthorized("invalid or expired session")
	}
	session, found, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if !found || session.Expired(s.now()) {
		return nil, apperrors.NewUnauthorized("invalid or expired session")
	}
	return session, nil
}
