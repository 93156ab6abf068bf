package domain

import (
	"strings"
	"time"
)

// Role enumerates directory account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// CoerceRole maps arbitrary input to a known role. Anything other than an
// exact "admin" becomes employee.
func CoerceRole(raw string) Role {
	if Role(raw) == RoleAdmin {
		return RoleAdmin
	}
	return RoleEmployee
}

// NormalizeEmail lowercases and trims an email for use as the directory key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Employee is a directory account record as persisted in the employees blob.
type Employee struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               Role      `json:"role"`
	Active             bool      `json:"active"`
	PasswordSalt       string    `json:"passwordSalt"`
	PasswordHash       string    `json:"passwordHash"`
	CreatedAt          time.Time `json:"createdAt"`
	IsDefaultBootstrap bool      `json:"isDefaultBootstrap,omitempty"`
}

// PublicEmployee is an employee record with credential material stripped.
type PublicEmployee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}

// Sanitize strips credential fields so the record is safe to return across
// the service boundary.
func (e Employee) Sanitize() PublicEmployee {
	return PublicEmployee{
		ID:     e.ID,
		Name:   e.Name,
		Email:  e.Email,
		Role:   CoerceRole(string(e.Role)),
		Active: e.Active,
	}
}
