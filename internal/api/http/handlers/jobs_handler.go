package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/directory-service/internal/api/dto"
	"github.com/spec-kit/directory-service/internal/service"
	apperrors "github.com/spec-kit/directory-service/pkg/util"
)

// JobsHandler exposes authenticated job blob endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobs *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// Upsert handles POST /jobs.
func (h *JobsHandler) Upsert(c *fiber.Ctx) error {
	var req dto.JobUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	total, err := h.jobs.Upsert(c.Context(), req.Job)
	if err != nil {
		return err
	}
	return c.JSON(dto.JobMutationResponse{OK: true, Total: total})
}

// Delete handles DELETE /jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	total, err := h.jobs.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.JobMutationResponse{OK: true, Total: total})
}
