package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"spend-guard/internal/adapter/postgres"
	"spend-guard/internal/config"
	"spend-guard/internal/config/configs"
	"spend-guard/internal/db"
)

// newLogger builds the structured logger described by cfg. Every record
// carries the deployment environment.
func newLogger(w io.Writer, cfg configs.Logger, env string) *slog.Logger {
	return slog.New(cfg.Handler(w)).With("env", env)
}

// store bundles what the one-shot commands need: configuration, a logger
// and the Postgres repository.
type store struct {
	cfg    config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
	repo   *postgres.Repository
}

// openStore loads configuration from the environment and connects to
// Postgres. Logs go to logOut so command output stays clean.
func openStore(ctx context.Context, logOut io.Writer) (*store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(logOut, cfg.Log, cfg.Env)

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return &store{cfg: cfg, logger: logger, pool: pool, repo: postgres.NewRepository(pool)}, nil
}

func (s *store) Close() {
	s.pool.Close()
}
