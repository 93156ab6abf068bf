package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/persistence"
	"github.com/spec-kit/directory-service/internal/repository"
)

func newTestAuth() (*AuthService, *DirectoryService) {
	store := persistence.NewMemoryStore()
	directory := NewDirectoryService(repository.NewEmployeeRepository(store), defaultSeed(), nil, zap.NewNop())
	sessions := NewSessionService(repository.NewSessionRepository(store), 7*24*time.Hour)
	return NewAuthService(directory, sessions, nil), directory
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestAuth()

	session, user, err := svc.Login(ctx, "admin@x.com", "Secret1!")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, session.Role)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, "admin@x.com", user.Email)
	assert.NotEmpty(t, session.Token)
}

func TestLogin_MixedCaseEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestAuth()

	session, _, err := svc.Login(ctx, " ADMIN@X.COM ", "Secret1!")
	require.NoError(t, err)
	assert.Equal(t, "admin@x.com", session.Email)
}

func TestLogin_FailuresAreUniform(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, directory := newTestAuth()

	_, _, wrongPassword := svc.Login(ctx, "admin@x.com", "not-the-password")
	_, _, unknownEmail := svc.Login(ctx, "ghost@x.com", "whatever1!")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, wrongPassword))
	assert.Equal(t, "UNAUTHORIZED", domainCode(t, unknownEmail))
	// wrong password and unknown email must be indistinguishable
	assert.EqualError(t, wrongPassword, unknownEmail.Error())

	created, err := directory.Create(ctx, CreateEmployeeInput{Email: "bob@x.com", Password: "Secret1!"})
	require.NoError(t, err)
	inactive := false
	_, err = directory.Update(ctx, UpdateEmployeeInput{ID: created.ID, Active: &inactive, ActorUserID: "admin-id"})
	require.NoError(t, err)

	_, _, inactiveErr := svc.Login(ctx, "bob@x.com", "Secret1!")
	require.Error(t, inactiveErr)
	assert.EqualError(t, inactiveErr, unknownEmail.Error())
}

func TestLogin_IssuedSessionResolves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := persistence.NewMemoryStore()
	directory := NewDirectoryService(repository.NewEmployeeRepository(store), defaultSeed(), nil, zap.NewNop())
	sessions := NewSessionService(repository.NewSessionRepository(store), 7*24*time.Hour)
	svc := NewAuthService(directory, sessions, nil)

	session, _, err := svc.Login(ctx, "admin@x.com", "Secret1!")
	require.NoError(t, err)

	resolved, err := sessions.Resolve(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, resolved.UserID)
	assert.True(t, resolved.IsAdmin())
}
