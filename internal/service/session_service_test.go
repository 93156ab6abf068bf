package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/persistence"
	"github.com/spec-kit/directory-service/internal/repository"
)

func newTestSessions(ttl time.Duration) (*SessionService, repository.SessionRepository) {
	repo := repository.NewSessionRepository(persistence.NewMemoryStore())
	return NewSessionService(repo, ttl), repo
}

func testEmployee() *domain.Employee {
	return &domain.Employee{
		ID:     "emp-1",
		Name:   "Alice",
		Email:  "alice@x.com",
		Role:   domain.RoleAdmin,
		Active: true,
	}
}

func TestIssueAndResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestSessions(time.Hour)
	base := time.Now()
	svc.now = func() time.Time { return base }

	issued, err := svc.Issue(ctx, testEmployee())
	require.NoError(t, err)
	assert.Len(t, issued.Token, 64)
	assert.Equal(t, "emp-1", issued.UserID)
	assert.Equal(t, domain.RoleAdmin, issued.Role)
	assert.Equal(t, base.Add(time.Hour).UnixMilli(), issued.ExpiresAt)

	resolved, err := svc.Resolve(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.Token, resolved.Token)
	assert.Equal(t, issued.ExpiresAt, resolved.ExpiresAt)
}

func TestResolve_FailsClosed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestSessions(time.Hour)

	_, err := svc.Resolve(ctx, "")
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, err))

	_, err = svc.Resolve(ctx, "no-such-token")
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, err))
}

func TestResolve_Expired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestSessions(time.Hour)
	now := time.Now()
	svc.now = func() time.Time { return now }

	expired := &domain.Session{
		Token:     "expired-token",
		UserID:    "emp-1",
		Role:      domain.RoleEmployee,
		CreatedAt: now.Add(-time.Hour),
		ExpiresAt: now.UnixMilli() - 1,
	}
	require.NoError(t, repo.Put(ctx, expired))

	_, err := svc.Resolve(ctx, expired.Token)
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, err))

	live := &domain.Session{
		Token:     "live-token",
		UserID:    "emp-1",
		Role:      domain.RoleEmployee,
		CreatedAt: now,
		ExpiresAt: now.UnixMilli() + 1000,
	}
	require.NoError(t, repo.Put(ctx, live))

	resolved, err := svc.Resolve(ctx, live.Token)
	require.NoError(t, err)
	assert.Equal(t, "live-token", resolved.Token)
}

func TestResolve_NeverExtendsExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestSessions(time.Hour)
	base := time.Now()
	svc.now = func() time.Time { return base }

	issued, err := svc.Issue(ctx, testEmployee())
	require.NoError(t, err)

	// resolving just before expiry works, just after it doesn't
	svc.now = func() time.Time { return base.Add(time.Hour - time.Millisecond) }
	_, err = svc.Resolve(ctx, issued.Token)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(time.Hour + time.Millisecond) }
	_, err = svc.Resolve(ctx, issued.Token)
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, err))
}

func TestSessionRoleSnapshot_DefaultsToEmployee(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestSessions(time.Hour)

	legacy := testEmployee()
	legacy.Role = "" // pre-role records in the stored blob
	issued, err := svc.Issue(ctx, legacy)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployee, issued.Role)
}
