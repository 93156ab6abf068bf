package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/directory-service/internal/api/http"
	"github.com/spec-kit/directory-service/internal/api/http/handlers"
	"github.com/spec-kit/directory-service/internal/auth"
	"github.com/spec-kit/directory-service/internal/config"
	"github.com/spec-kit/directory-service/internal/events"
	"github.com/spec-kit/directory-service/internal/observability"
	"github.com/spec-kit/directory-service/internal/persistence"
	"github.com/spec-kit/directory-service/internal/repository"
	"github.com/spec-kit/directory-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		store  persistence.BlobStore
		pinger handlers.Pinger
	)
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		store, pinger = pg, pg
	default:
		rds := persistence.NewRedis(cfg.Redis, logger)
		defer rds.Close()
		store, pinger = rds, rds
	}

	seedAccounts, err := service.ParseSeedAccounts(cfg.Seed.AccountsJSON)
	if err != nil {
		logger.Warn("ignoring malformed EMPLOYEE_ACCOUNTS_JSON; bootstrap admin will be used", zap.Error(err))
	}

	dispatcher := events.NewDispatcher()
	events.RegisterAuditLogger(dispatcher, logger.Named("audit"))

	employeeRepo := repository.NewEmployeeRepository(store)
	sessionRepo := repository.NewSessionRepository(store)
	jobRepo := repository.NewJobRepository(store)

	directory := service.NewDirectoryService(employeeRepo, service.SeedSource{
		Accounts:      seedAccounts,
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
	}, dispatcher, logger)
	sessions := service.NewSessionService(sessionRepo, cfg.Auth.SessionTTL())
	authService := service.NewAuthService(directory, sessions, dispatcher)
	jobService := service.NewJobService(jobRepo)

	authMiddleware := auth.NewAuthMiddleware(sessions)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pinger),
		Auth:           handlers.NewAuthHandler(authService),
		Employees:      handlers.NewEmployeesHandler(directory),
		Jobs:           handlers.NewJobsHandler(jobService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
