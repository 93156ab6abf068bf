package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/directory-service/internal/domain"
)

const sessionLocalsKey = "auth_session"

// SessionResolver resolves a bearer token to a live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// AuthMiddleware validates bearer tokens and loads the session principal.
type AuthMiddleware struct {
	sessions SessionResolver
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(sessions SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// ExtractToken pulls the bearer token from an Authorization header
// (case-insensitive "Bearer " prefix), falling back to the token query
// parameter as an alternate transport.
func ExtractToken(authHeader, queryToken string) string {
	const prefix = "bearer "
	if len(authHeader) >= len(prefix) && strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return strings.TrimSpace(authHeader[len(prefix):])
	}
	return strings.TrimSpace(queryToken)
}

// Handle enforces authentication for protected routes. Missing, unknown and
// expired tokens all surface the same unauthorized failure; the role check
// is a separate handler so callers can tell 401 from 403.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := ExtractToken(c.Get(fiber.HeaderAuthorization), c.Query("token"))
	session, err := m.sessions.Resolve(c.Context(), token)
	if err != nil {
		return err
	}
	c.Locals(sessionLocalsKey, session)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionLocalsKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}
