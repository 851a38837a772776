package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

// connectTimeout bounds the whole retry window when the database is slow to
// come up alongside the application.
const connectTimeout = 30 * time.Second

// NewPgxPool creates a new PostgreSQL connection pool, retrying the initial
// ping with exponential backoff so a database that starts a few seconds
// after the application does not kill the process.
func NewPgxPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	policy := backoff.WithContext(backoff.NewExponentialBackOff(backoff.WithMaxElapsedTime(connectTimeout)), ctx)
	err = backoff.RetryNotify(
		func() error { return pool.Ping(ctx) },
		policy,
		func(err error, wait time.Duration) {
			slog.Warn("Database not reachable yet, retrying",
				slog.Duration("wait", wait),
				slog.String("error", err.Error()))
		},
	)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// ClosePgxPool closes the PostgreSQL connection pool.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool != nil {
		pool.Close()
	}
}
