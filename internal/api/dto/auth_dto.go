package dto

import "github.com/spec-kit/directory-service/internal/domain"

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse returns the bearer token with the sanitized account.
type LoginResponse struct {
	Token string                `json:"token"`
	User  domain.PublicEmployee `json:"user"`
}

// SessionUser mirrors the identity fields captured at session issuance.
type SessionUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// SessionResponse returns the authenticated identity snapshot.
type SessionResponse struct {
	User SessionUser `json:"user"`
}
