package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/directory-service/internal/auth"
	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/events"
	apperrors "github.com/spec-kit/directory-service/pkg/util"
)

// AuthService coordinates the login flow.
type AuthService struct {
	directory  *DirectoryService
	sessions   *SessionService
	dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(directory *DirectoryService, sessions *SessionService, dispatcher events.Dispatcher) *AuthService {
	return &AuthService{directory: directory, sessions: sessions, dispatcher: dispatcher}
}

// Login verifies credentials and issues a session. Unknown email, inactive
// account and wrong password all surface the identical unauthorized error to
// prevent account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, *domain.PublicEmployee, error) {
	employee, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if employee == nil || !employee.Active {
		return nil, nil, s.loginFailed(ctx, email)
	}
	if !auth.VerifyPassword(password, employee.PasswordSalt, employee.PasswordHash) {
		return nil, nil, s.loginFailed(ctx, email)
	}

	session, err := s.sessions.Issue(ctx, employee)
	if err != nil {
		return nil, nil, err
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionIssued,
			ActorID:   session.UserID,
			Timestamp: session.CreatedAt,
			Payload: events.SessionIssuedPayload{
				UserID:    session.UserID,
				Role:      session.Role,
				ExpiresAt: session.ExpiresAt,
			},
		})
	}

	public := employee.Sanitize()
	return session, &public, nil
}

func (s *AuthService) loginFailed(ctx context.Context, email string) error {
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventLoginFailed,
			Timestamp: time.Now(),
			Payload:   events.LoginFailedPayload{Email: domain.NormalizeEmail(email)},
		})
	}
	return apperrors.NewUnauthorized("invalid email or password")
}
