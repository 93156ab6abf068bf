package service

import (
	"context"

	"github.com/spec-kit/directory-service/internal/domain"
	"github.com/spec-kit/directory-service/internal/repository"
	apperrors "github.com/spec-kit/directory-service/pkg/util"
)

// JobService stores opaque job documents in a single blob, matched by their
// stringified id. The documents themselves are client-owned.
type JobService struct {
	jobs repository.JobRepository
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Upsert inserts or replaces the job matching its id and returns the
// resulting collection size.
func (s *JobService) Upsert(ctx context.Context, job domain.Job) (int, error) {
	id := job.ID()
	if id == "" {
		return 0, apperrors.NewValidationError("job id is required", nil)
	}

	all, err := s.jobs.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	replaced := false
	for i := range all {
		if all[i].ID() == id {
			all[i] = job
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, job)
	}

	if err := s.jobs.SaveAll(ctx, all); err != nil {
		return 0, err
	}
	return len(all), nil
}

// Delete removes the job matching id and returns the resulting collection
// size. Deleting an unknown id is not an error.
func (s *JobService) Delete(ctx context.Context, id string) (int, error) {
	if id == "" {
		return 0, apperrors.NewValidationError("job id is required", nil)
	}

	all, err := s.jobs.LoadAll(ctx)
	if err != nil {
		return 0, err
	}
	next := make([]domain.Job, 0, len(all))
	for _, job := range all {
		if job.ID() != id {
			next = append(next, job)
		}
	}

	if err := s.jobs.SaveAll(ctx, next); err != nil {
		return 0, err
	}
	return len(next), nil
}
