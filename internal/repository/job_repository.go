package repository

import (
	"context"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/persistence"
)

const jobsKey = "jobs"

// JobRepository persists the job documents as one blob, mirroring the
// employee directory's whole-collection semantics.
type JobRepository interface {
	LoadAll(ctx context.Context) ([]domain.Job, error)
	SaveAll(ctx context.Context, jobs []domain.Job) error
}

type jobRepository struct {
	store persistence.BlobStore
}

// NewJobRepository returns a BlobStore-backed implementation.
func NewJobRepository(store persistence.BlobStore) JobRepository {
	return &jobRepository{store: store}
}

func (r *jobRepository) LoadAll(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	found, err := r.store.GetJSON(ctx, jobsKey, &jobs)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return jobs, nil
}

func (r *jobRepository) SaveAll(ctx context.Context, jobs []domain.Job) error {
	return r.store.SetJSON(ctx, jobsKey, jobs)
}
