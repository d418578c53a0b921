package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpadapter "spend-guard/internal/adapter/http"
	"spend-guard/internal/adapter/notify"
	"spend-guard/internal/adapter/postgres"
	"spend-guard/internal/adapter/trigger"
	"spend-guard/internal/adapter/usecase"
	"spend-guard/internal/config"
	"spend-guard/internal/db"
	"spend-guard/internal/metrics"
	"spend-guard/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the scheduler",
	Long: `Start the HTTP API and, unless SCHEDULER_ENABLED=false, the in-process
trigger that runs a reconciliation cycle every SCHEDULER_RECONCILE_INTERVAL and
the period resets at each midnight in SCHEDULER_TIMEZONE.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(os.Stdout, cfg.Log, cfg.Env)
	slog.SetDefault(logger)

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Error("tracing shutdown error", slog.Any("error", err))
		}
	}()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	repo := postgres.NewRepository(pool)
	ledger := usecase.NewLedgerUseCase(repo, time.Now)
	control := usecase.NewControlUseCase(repo, notify.New(logger, m), logger, cfg.Scheduler.Concurrency)
	admin := usecase.NewAdminUseCase(repo)

	handler := httpadapter.NewHandler(admin, ledger, control, logger, httpadapter.Options{
		Metrics:     m,
		MetricsPath: cfg.Metrics.Path,
		Ping:        pool.Ping,
		Location:    loc,
	})
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	var runner *trigger.Runner
	if cfg.Scheduler.Enabled {
		runner = trigger.New(control, trigger.Config{
			ReconcileInterval: cfg.Scheduler.ReconcileInterval,
			Location:          loc,
		}, m, logger, time.Now)
		runner.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err = <-errCh:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if runner != nil {
		runner.Stop()
	}
	return err
}
