package trigger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spend-guard/internal/core/port"
	"spend-guard/internal/metrics"
)

// Job names used in logs and metrics.
const (
	JobReconcile    = "reconcile"
	JobResetDaily   = "reset_daily"
	JobResetMonthly = "reset_monthly"
)

// Config contains trigger settings.
type Config struct {
	// ReconcileInterval is the period between cycles. Zero disables the
	// reconcile loop.
	ReconcileInterval time.Duration
	// Location is the zone whose midnight starts a new day. Times handed to
	// the controller are expressed in it.
	Location *time.Location
}

// Runner drives a port.Controller from an in-process clock: a cycle right
// away and every ReconcileInterval after that, and the daily then monthly
// reset at each local midnight.
type Runner struct {
	ctl     port.Controller
	cfg     Config
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time

	wg       sync.WaitGroup
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a Runner. now defaults to time.Now and a nil Location to UTC.
func New(ctl port.Controller, cfg Config, m *metrics.Metrics, logger *slog.Logger, now func() time.Time) *Runner {
	if now == nil {
		now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Runner{
		ctl:     ctl,
		cfg:     cfg,
		metrics: m,
		logger:  logger.With("component", "trigger"),
		now:     now,
		done:    make(chan struct{}),
	}
}

// Start starts the trigger goroutines
func (r *Runner) Start(ctx context.Context) {
	if r.cfg.ReconcileInterval > 0 {
		r.wg.Add(1)
		go r.reconcileLoop(ctx)
	}
	r.wg.Add(1)
	go r.resetLoop(ctx)

	r.logger.Info("trigger started",
		"reconcile_interval", r.cfg.ReconcileInterval,
		"timezone", r.cfg.Location.String(),
		"next_reset", NextMidnight(r.now(), r.cfg.Location),
	)
}

// Stop stops the trigger and waits for a running job to finish
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
	r.wg.Wait()
	r.logger.Info("trigger stopped")
}

func (r *Runner) reconcileLoop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.cfg.ReconcileInterval)
	defer ticker.Stop()

	r.Reconcile(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case <-ticker.C:
			r.Reconcile(ctx)
		}
	}
}

func (r *Runner) resetLoop(ctx context.Context) {
	defer r.wg.Done()

	boundary := NextMidnight(r.now(), r.cfg.Location)
	for {
		timer := time.NewTimer(boundary.Sub(r.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-r.done:
			timer.Stop()
			return
		case <-timer.C:
			now := r.now().In(r.cfg.Location)
			if now.Before(boundary) {
				now = boundary
			}
			r.Resets(ctx, now)
			// now is never before boundary, so a wall clock that still
			// reads the previous day cannot schedule the same boundary twice
			boundary = NextMidnight(now, r.cfg.Location)
		}
	}
}

// Reconcile runs one cycle at the current time and records its outcome.
func (r *Runner) Reconcile(ctx context.Context) {
	start := time.Now()
	report, err := r.ctl.RunCycle(ctx, r.now().In(r.cfg.Location))
	took := time.Since(start)
	if err != nil {
		r.logger.Error("reconcile failed", "error", err)
		r.metrics.ObserveJob(JobReconcile, metrics.OutcomeError, took)
		return
	}

	outcome := metrics.OutcomeSuccess
	if len(report.Failures) > 0 {
		outcome = metrics.OutcomePartial
	}
	r.metrics.ObserveJob(JobReconcile, outcome, took)
	r.logger.Debug("reconcile finished",
		"cycle_id", report.CycleID,
		"evaluated", report.Evaluated,
		"paused", report.Paused,
		"reactivated", report.Reactivated,
		"corrected", report.Corrected,
		"failures", len(report.Failures),
		"took", took,
	)
}

// Resets runs the daily reset and then the monthly reset for the day
// starting at now. ResetMonthly skips itself outside the first of the month.
func (r *Runner) Resets(ctx context.Context, now time.Time) {
	r.reset(ctx, JobResetDaily, now, r.ctl.ResetDaily)
	r.reset(ctx, JobResetMonthly, now, r.ctl.ResetMonthly)
}

func (r *Runner) reset(ctx context.Context, job string, now time.Time, run func(context.Context, time.Time) (*port.ResetReport, error)) {
	start := time.Now()
	report, err := run(ctx, now)
	took := time.Since(start)
	if err != nil {
		r.logger.Error("reset failed", "job", job, "error", err)
		r.metrics.ObserveJob(job, metrics.OutcomeError, took)
		return
	}
	if report.Skipped {
		r.metrics.ObserveJob(job, metrics.OutcomeSkipped, took)
		return
	}

	outcome := metrics.OutcomeSuccess
	if len(report.Failures) > 0 {
		outcome = metrics.OutcomePartial
	}
	r.metrics.ObserveJob(job, outcome, took)
	r.logger.Debug("reset finished",
		"job", job,
		"brands", report.BrandsReset,
		"reactivated", report.Reactivated,
		"still_blocked", report.StillBlocked,
		"failures", len(report.Failures),
	)
}

// NextMidnight returns the first 00:00 in loc strictly after t.
func NextMidnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}
