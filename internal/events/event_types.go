package events

import (
	"time"

	"github.com/spec-kit/directory-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDirectorySeeded EventType = "directory_seeded"
	EventEmployeeCreated EventType = "employee_created"
	EventEmployeeUpdated EventType = "employee_updated"
	EventSessionIssued   EventType = "session_issued"
	EventLoginFailed     EventType = "login_failed"
)

// AllEventTypes lists every event the service publishes.
var AllEventTypes = []EventType{
	EventDirectorySeeded,
	EventEmployeeCreated,
	EventEmployeeUpdated,
	EventSessionIssued,
	EventLoginFailed,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DirectorySeededPayload payload.
type DirectorySeededPayload struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	Employee domain.PublicEmployee `json:"employee"`
}

// EmployeeUpdatedPayload payload. Fields names the record fields that were
// present in the update, not their values.
type EmployeeUpdatedPayload struct {
	Employee domain.PublicEmployee `json:"employee"`
	Fields   []string              `json:"fields"`
}

// SessionIssuedPayload payload.
type SessionIssuedPayload struct {
	UserID    string      `json:"user_id"`
	Role      domain.Role `json:"role"`
	ExpiresAt int64       `json:"expires_at"`
}

// LoginFailedPayload payload. The reason is deliberately absent: login
// failures are indistinguishable by design, in the audit trail included.
type LoginFailedPayload struct {
	Email string `json:"email"`
}
