package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/directory-service/internal/api/dto"
	"github.com/spec-kit/directory-service/internal/auth"
	"github.com/spec-kit/directory-service/internal/service"
	apperrors "github.com/spec-kit/directory-service/pkg/util"
)

// EmployeesHandler exposes admin-gated directory management endpoints.
type EmployeesHandler struct {
	directory *service.DirectoryService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(directory *service.DirectoryService) *EmployeesHandler {
	return &EmployeesHandler{directory: directory}
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.directory.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.EmployeeListResponse{Employees: employees})
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	created, err := h.directory.Create(c.Context(), service.CreateEmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.EmployeeResponse{Employee: *created})
}

// Update handles PATCH /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	var req dto.EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	actorID := ""
	if session, ok := auth.SessionFromContext(c); ok {
		actorID = session.UserID
	}

	updated, err := h.directory.Update(c.Context(), service.UpdateEmployeeInput{
		ID:          c.Params("id"),
		Name:        req.Name,
		Role:        req.Role,
		Active:      req.Active,
		Password:    req.Password,
		ActorUserID: actorID,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.EmployeeResponse{Employee: *updated})
}
