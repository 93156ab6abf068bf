package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/directory-service/internal/api/http/handlers"
	"github.com/spec-kit/directory-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Employees      *handlers.EmployeesHandler
	Jobs           *handlers.JobsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/session", cfg.AuthMiddleware.Handle, cfg.Auth.Session)

	employees := app.Group("/employees", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	employees.Get("", cfg.Employees.List)
	employees.Post("", cfg.Employees.Create)
	employees.Patch("/:id", cfg.Employees.Update)

	jobs := app.Group("/jobs", cfg.AuthMiddleware.Handle)
	jobs.Post("", cfg.Jobs.Upsert)
	jobs.Delete("/:id", cfg.Jobs.Delete)
}
