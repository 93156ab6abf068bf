package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/persistence"
	"github.com/spec-kit/directory-service/internal/repository"
)

func newTestJobs() (*JobService, repository.JobRepository) {
	repo := repository.NewJobRepository(persistence.NewMemoryStore())
	return NewJobService(repo), repo
}

func TestJobUpsert_InsertAndReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, repo := newTestJobs()

	total, err := svc.Upsert(ctx, domain.Job{"id": "j1", "title": "kitchen"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = svc.Upsert(ctx, domain.Job{"id": "j2", "title": "bathroom"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	// same id replaces in place
	total, err = svc.Upsert(ctx, domain.Job{"id": "j1", "title": "kitchen v2"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "kitchen v2", all[0]["title"])
}

func TestJobUpsert_NumericIDMatchesString(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestJobs()

	// ids arrive as JSON numbers after decoding
	total, err := svc.Upsert(ctx, domain.Job{"id": float64(7), "title": "deck"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = svc.Upsert(ctx, domain.Job{"id": "7", "title": "deck v2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestJobUpsert_MissingID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestJobs()

	_, err := svc.Upsert(context.Background(), domain.Job{"title": "no id"})
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}

func TestJobDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestJobs()

	_, err := svc.Upsert(ctx, domain.Job{"id": "j1"})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, domain.Job{"id": "j2"})
	require.NoError(t, err)

	total, err := svc.Delete(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// deleting an unknown id is not an error
	total, err = svc.Delete(ctx, "ghost")
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, err = svc.Delete(ctx, "")
	assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
}
