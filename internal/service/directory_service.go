package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/directory-service/internal/auth"
	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/events"
	"github.com/spec-kit/directory-service/internal/repository"
	apperrors "github.com/spec-kit/directory-service/pkg/util"
)

const minPasswordLength = 6

// DirectoryService owns the employee directory: lazy seeding, lookups,
// creation and partial updates. Every mutation loads the full record set,
// checks the admin invariants against that snapshot and writes the full set
// back in one SaveAll; concurrent writers race last-write-wins, which is
// accepted for these low-frequency administrative operations.
type DirectoryService struct {
	employees  repository.EmployeeRepository
	seed       SeedSource
	dispatcher events.Dispatcher
	logger     *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewDirectoryService constructs the service.
func NewDirectoryService(employees repository.EmployeeRepository, seed SeedSource, dispatcher events.Dispatcher, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		employees:  employees,
		seed:       seed,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// CreateEmployeeInput carries creation fields.
type CreateEmployeeInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateEmployeeInput uses pointer fields so absent and provided values stay
// distinguishable; nil means leave the field unchanged.
type UpdateEmployeeInput struct {
	ID          string
	Name        *string
	Role        *string
	Active      *bool
	Password    *string
	ActorUserID string
}

// EnsureSeeded populates an empty directory and returns the full record set.
// Idempotent once the directory is non-empty: reseeding never runs again and
// no duplicate bootstrap admin can appear.
func (s *DirectoryService) EnsureSeeded(ctx context.Context) ([]domain.Employee, error) {
	existing, err := s.employees.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	seeded, err := s.seedFromAccounts()
	if err != nil {
		return nil, err
	}
	source := "accounts"
	if len(seeded) == 0 {
		seeded, err = s.bootstrapAdmin()
		if err != nil {
			return nil, err
		}
		source = "bootstrap_admin"
	}

	if err := s.employees.SaveAll(ctx, seeded); err != nil {
		return nil, err
	}
	s.logger.Info("seeded employee directory",
		zap.String("source", source),
		zap.Int("count", len(seeded)),
	)
	s.publish(ctx, events.EventDirectorySeeded, "", events.DirectorySeededPayload{Source: source, Count: len(seeded)})
	return seeded, nil
}

func (s *DirectoryService) seedFromAccounts() ([]domain.Employee, error) {
	seeded := make([]domain.Employee, 0, len(s.seed.Accounts))
	for _, acct := range s.seed.Accounts {
		email := domain.NormalizeEmail(acct.Email)
		if email == "" || acct.Password == "" {
			continue
		}
		rec, err := auth.CreatePasswordRecord(acct.Password)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(acct.Name)
		if name == "" {
			name = email
		}
		seeded = append(seeded, domain.Employee{
			ID:           s.newID(),
			Name:         name,
			Email:        email,
			Role:         domain.CoerceRole(acct.Role),
			Active:       true,
			PasswordSalt: rec.Salt,
			PasswordHash: rec.Hash,
			CreatedAt:    s.now(),
		})
	}
	return seeded, nil
}

func (s *DirectoryService) bootstrapAdmin() ([]domain.Employee, error) {
	rec, err := auth.CreatePasswordRecord(s.seed.AdminPassword)
	if err != nil {
		return nil, err
	}
	return []domain.Employee{{
		ID:                 s.newID(),
		Name:               "Admin",
		Email:              domain.NormalizeEmail(s.seed.AdminEmail),
		Role:               domain.RoleAdmin,
		Active:             true,
		PasswordSalt:       rec.Salt,
		PasswordHash:       rec.Hash,
		CreatedAt:          s.now(),
		IsDefaultBootstrap: true,
	}}, nil
}

// FindByEmail returns the raw record for credential verification. Callers
// must sanitize before letting the record cross the service boundary.
func (s *DirectoryService) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	all, err := s.EnsureSeeded(ctx)
	if err != nil {
		return nil, err
	}
	target := domain.NormalizeEmail(email)
	for i := range all {
		if domain.NormalizeEmail(all[i].Email) == target {
			return &all[i], nil
		}
	}
	return nil, nil
}

// List returns every record with credential material stripped.
func (s *DirectoryService) List(ctx context.Context) ([]domain.PublicEmployee, error) {
	all, err := s.EnsureSeeded(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicEmployee, 0, len(all))
	for _, e := range all {
		out = append(out, e.Sanitize())
	}
	return out, nil
}

// Create appends a new employee after validation and persists the directory.
func (s *DirectoryService) Create(ctx context.Context, in CreateEmployeeInput) (*domain.PublicEmployee, error) {
	all, err := s.EnsureSeeded(ctx)
	if err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(in.Email)
	if email == "" {
		return nil, apperrors.NewValidationError("email is required", nil)
	}
	if len(in.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	for _, existing := range all {
		if domain.NormalizeEmail(existing.Email) == email {
			return nil, apperrors.NewConflict("employee already exists", map[string]any{"email": email})
		}
	}

	rec, err := auth.CreatePasswordRecord(in.Password)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	next := domain.Employee{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		Role:         domain.CoerceRole(in.Role),
		Active:       true,
		PasswordSalt: rec.Salt,
		PasswordHash: rec.Hash,
		CreatedAt:    s.now(),
	}

	all = append(all, next)
	if err := s.employees.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	public := next.Sanitize()
	s.publish(ctx, events.EventEmployeeCreated, "", events.EmployeeCreatedPayload{Employee: public})
	return &public, nil
}

// Update applies a partial update to one record and persists the directory.
// Invariant checks run against the snapshot loaded at call start, right
// before the single write-back.
func (s *DirectoryService) Update(ctx context.Context, in UpdateEmployeeInput) (*domain.PublicEmployee, error) {
	if in.ID == "" {
		return nil, apperrors.NewValidationError("employee id is required", nil)
	}
	all, err := s.EnsureSeeded(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range all {
		if all[i].ID == in.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NewNotFound("employee", map[string]any{"id": in.ID})
	}

	current := all[idx]
	next := current
	var changed []string

	if in.Name != nil {
		// an explicit blank keeps the existing name rather than emptying it
		if trimmed := strings.TrimSpace(*in.Name); trimmed != "" {
			next.Name = trimmed
		}
		changed = append(changed, "name")
	}

	if in.Role != nil {
		nextRole := domain.CoerceRole(*in.Role)
		if current.Role == domain.RoleAdmin && nextRole != domain.RoleAdmin &&
			current.Active && countActiveAdmins(all) <= 1 {
			return nil, apperrors.NewInvariantViolation("cannot remove the last active admin", nil)
		}
		next.Role = nextRole
		changed = append(changed, "role")
	}

	if in.Active != nil {
		if !*in.Active {
			if current.ID == in.ActorUserID {
				return nil, apperrors.NewInvariantViolation("you cannot disable your own account", nil)
			}
			if current.Role == domain.RoleAdmin && current.Active && countActiveAdmins(all) <= 1 {
				return nil, apperrors.NewInvariantViolation("cannot disable the last active admin", nil)
			}
		}
		next.Active = *in.Active
		changed = append(changed, "active")
	}

	if in.Password != nil && *in.Password != "" {
		if len(*in.Password) < minPasswordLength {
			return nil, apperrors.NewValidationError("password must be at least 6 characters", nil)
		}
		rec, err := auth.CreatePasswordRecord(*in.Password)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		next.PasswordSalt = rec.Salt
		next.PasswordHash = rec.Hash
		changed = append(changed, "password")
	}

	all[idx] = next
	if err := s.employees.SaveAll(ctx, all); err != nil {
		return nil, err
	}

	public := next.Sanitize()
	s.publish(ctx, events.EventEmployeeUpdated, in.ActorUserID, events.EmployeeUpdatedPayload{Employee: public, Fields: changed})
	return &public, nil
}

func countActiveAdmins(employees []domain.Employee) int {
	count := 0
	for _, e := range employees {
		if e.Active && e.Role == domain.RoleAdmin {
			count++
		}
	}
	return count
}

func (s *DirectoryService) publish(ctx context.Context, eventType events.EventType, actorID string, payload any) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        s.newID(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: s.now(),
		Payload:   payload,
	})
}
