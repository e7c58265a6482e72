package postgres

import (
	"context"
	"fmt"

	"loadhive/migrations"
	"loadhive/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies pending embedded migrations. goose works on database/sql,
// so the pool is wrapped for the duration of the run.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	for _, res := range results {
		log.With(
			logger.NewField("version", res.Source.Version),
			logger.NewField("duration", res.Duration.String()),
		).Info("migration applied")
	}

	return nil
}
