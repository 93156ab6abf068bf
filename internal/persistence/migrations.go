package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// The postgres backend needs exactly one table; the schema ships inline
// instead of a migrations directory.
const blobTableSchema = `
CREATE TABLE IF NOT EXISTS blobs (
    key        TEXT PRIMARY KEY,
    value      JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// RunMigrations ensures the blob table exists.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping migrations")
		return nil
	}

	if _, err := pool.Exec(ctx, blobTableSchema); err != nil {
		return fmt.Errorf("apply blob schema: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}
