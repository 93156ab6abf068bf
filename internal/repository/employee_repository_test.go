package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/persistence"
)

func TestEmployeeRepository_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewEmployeeRepository(persistence.NewMemoryStore())

	// absent directory loads as empty, not as an error
	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	saved := []domain.Employee{{
		ID:           "e1",
		Name:         "Alice",
		Email:        "alice@x.com",
		Role:         domain.RoleAdmin,
		Active:       true,
		PasswordSalt: "aa",
		PasswordHash: "bb",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}}
	require.NoError(t, repo.SaveAll(ctx, saved))

	loaded, err = repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, saved[0], loaded[0])
}

func TestEmployeeRepository_LastWriteWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewEmployeeRepository(persistence.NewMemoryStore())

	first := []domain.Employee{{ID: "e1"}, {ID: "e2"}}
	second := []domain.Employee{{ID: "e3"}}
	require.NoError(t, repo.SaveAll(ctx, first))
	require.NoError(t, repo.SaveAll(ctx, second))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "e3", loaded[0].ID)
}

func TestSessionRepository_GetPut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSessionRepository(persistence.NewMemoryStore())

	_, found, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	session := &domain.Session{
		Token:     "tok",
		UserID:    "e1",
		Email:     "alice@x.com",
		Role:      domain.RoleEmployee,
		ExpiresAt: 42,
	}
	require.NoError(t, repo.Put(ctx, session))

	got, found, err := repo.Get(ctx, "tok")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, int64(42), got.ExpiresAt)
}
