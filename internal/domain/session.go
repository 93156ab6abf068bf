package domain

import "time"

// Session is an issued bearer credential: a random token mapped to an
// identity snapshot taken at login. Stored write-once under session:<token>;
// the role is not re-checked against the directory on later reads.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt int64     `json:"expiresAt"` // epoch milliseconds
}

// Expired reports whether the session is past its expiry at the given
// instant. A session without an expiry is treated as expired.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt == 0 || now.UnixMilli() > s.ExpiresAt
}

// IsAdmin reports whether the session carries the admin role snapshot.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
