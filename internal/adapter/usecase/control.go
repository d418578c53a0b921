package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

// ControlUseCase runs the reconciliation cycle and the period resets. It
// implements port.Controller.
type ControlUseCase struct {
	repo     port.BudgetRepository
	notifier port.Notifier
	logger   *slog.Logger

	// concurrency bounds how many brands are reconciled in parallel.
	// Campaigns of a single brand are always handled by one goroutine.
	concurrency int
}

// NewControlUseCase creates the control loop. A concurrency below one
// processes brands sequentially.
func NewControlUseCase(repo port.BudgetRepository, notifier port.Notifier, logger *slog.Logger, concurrency int) *ControlUseCase {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ControlUseCase{
		repo:        repo,
		notifier:    notifier,
		logger:      logger.With("component", "control"),
		concurrency: concurrency,
	}
}

// RunCycle evaluates every campaign against its brand's ceilings and its
// dayparting window at now, and writes the activation flags that differ.
// A failure on one campaign is recorded in the report and does not stop
// the pass. Only the listing failure aborts the cycle.
func (u *ControlUseCase) RunCycle(ctx context.Context, now time.Time) (*port.CycleReport, error) {
	report := &port.CycleReport{CycleID: uuid.NewString(), StartedAt: now}
	ctx, span := tracer.Start(ctx, "control.RunCycle", trace.WithAttributes(attribute.String("cycle.id", report.CycleID)))
	defer span.End()
	logger := u.logger.With("cycle_id", report.CycleID)

	views, err := u.repo.ListCampaignsWithBrandAndSchedule(ctx)
	if err != nil {
		return nil, fail(span, fmt.Errorf("list campaigns: %w", err))
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(u.concurrency)
	for _, batch := range groupByBrand(views) {
		g.Go(func() error {
			for _, v := range batch {
				kind, err := u.reconcile(ctx, v, now)

				mu.Lock()
				report.Evaluated++
				switch kind {
				case domain.ChangePaused:
					report.Paused++
				case domain.ChangeReactivated:
					report.Reactivated++
				case domain.ChangeFlagCorrected:
					report.Corrected++
				}
				if err != nil {
					report.Failures = append(report.Failures, port.CampaignFailure{CampaignID: v.Campaign.ID, Err: err})
				}
				mu.Unlock()

				if err != nil {
					logger.Error("reconcile campaign", "campaign_id", v.Campaign.ID, "error", err)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	sortFailures(report.Failures)
	span.SetAttributes(
		attribute.Int("cycle.evaluated", report.Evaluated),
		attribute.Int("cycle.failures", len(report.Failures)),
	)
	logger.Info("reconciliation cycle finished",
		"evaluated", report.Evaluated,
		"paused", report.Paused,
		"reactivated", report.Reactivated,
		"corrected", report.Corrected,
		"failures", len(report.Failures),
	)
	return report, nil
}

// reconcile applies the transition required for one campaign, if any, and
// returns its kind. An empty kind means the stored flags already match.
func (u *ControlUseCase) reconcile(ctx context.Context, v port.CampaignView, now time.Time) (domain.ChangeKind, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c := v.Campaign
	d := domain.Evaluate(c, v.Brand, v.Schedule, now)

	var (
		kind   domain.ChangeKind
		target domain.Status
	)
	switch {
	case d.Active != c.IsActive:
		target = d.Status()
		kind = domain.ChangePaused
		if d.Active {
			kind = domain.ChangeReactivated
		}
	case c.PausedForBudget && !d.Reason.IsBudget():
		// The reason changed between cycles without an activity flip.
		target = domain.Status{IsActive: c.IsActive}
		kind = domain.ChangeFlagCorrected
	default:
		return "", nil
	}

	if err := u.repo.UpdateCampaignStatus(ctx, c.ID, target); err != nil {
		return "", fmt.Errorf("update campaign %d status: %w", c.ID, err)
	}
	u.notifier.Publish(ctx, domain.StatusChange{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		BrandID:      c.BrandID,
		Kind:         kind,
		Reason:       d.Reason,
		Source:       domain.SourceCycle,
		At:           now,
	})
	return kind, nil
}

// ResetDaily zeroes the daily spend of every brand, then reactivates the
// budget-paused campaigns whose brand is still under its monthly ceiling.
// The dayparting window is not consulted; the next cycle pauses a
// reactivated campaign that is outside its window.
func (u *ControlUseCase) ResetDaily(ctx context.Context, now time.Time) (*port.ResetReport, error) {
	ctx, span := tracer.Start(ctx, "control.ResetDaily")
	defer span.End()

	brands, err := u.repo.ResetDailySpend(ctx)
	if err != nil {
		return nil, fail(span, fmt.Errorf("reset daily spend: %w", err))
	}
	report := &port.ResetReport{Period: "daily", BrandsReset: brands}
	err = u.reactivate(ctx, report, domain.SourceDailyReset, now, func(v port.CampaignView) bool {
		return !v.Brand.MonthlyExceeded()
	})
	if err != nil {
		return nil, fail(span, err)
	}
	return report, nil
}

// ResetMonthly is a no-op unless now falls on the first day of a month.
// On that day it zeroes the monthly spend of every brand and reactivates
// every budget-paused campaign without consulting the daily ceiling.
func (u *ControlUseCase) ResetMonthly(ctx context.Context, now time.Time) (*port.ResetReport, error) {
	if now.Day() != 1 {
		u.logger.Debug("not the first day of the month, monthly reset skipped", "now", now)
		return &port.ResetReport{Period: "monthly", Skipped: true}, nil
	}

	ctx, span := tracer.Start(ctx, "control.ResetMonthly")
	defer span.End()

	brands, err := u.repo.ResetMonthlySpend(ctx)
	if err != nil {
		return nil, fail(span, fmt.Errorf("reset monthly spend: %w", err))
	}
	report := &port.ResetReport{Period: "monthly", BrandsReset: brands}
	// TODO: confirm with product whether the daily ceiling should also gate
	// this reactivation; the next cycle re-pauses such campaigns meanwhile.
	err = u.reactivate(ctx, report, domain.SourceMonthlyReset, now, func(port.CampaignView) bool {
		return true
	})
	if err != nil {
		return nil, fail(span, err)
	}
	return report, nil
}

func (u *ControlUseCase) reactivate(ctx context.Context, report *port.ResetReport, source domain.ChangeSource, now time.Time, eligible func(port.CampaignView) bool) error {
	views, err := u.repo.ListBudgetPausedCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("list budget-paused campaigns: %w", err)
	}

	for _, v := range views {
		c := v.Campaign
		if c.IsActive || !c.PausedForBudget {
			continue
		}
		if !eligible(v) {
			report.StillBlocked++
			continue
		}
		if err := u.repo.UpdateCampaignStatus(ctx, c.ID, domain.StatusActive); err != nil {
			report.Failures = append(report.Failures, port.CampaignFailure{CampaignID: c.ID, Err: err})
			u.logger.Error("reactivate campaign", "campaign_id", c.ID, "source", source, "error", err)
			continue
		}
		report.Reactivated++
		u.notifier.Publish(ctx, domain.StatusChange{
			CampaignID:   c.ID,
			CampaignName: c.Name,
			BrandID:      c.BrandID,
			Kind:         domain.ChangeReactivated,
			Reason:       domain.ReasonNone,
			Source:       source,
			At:           now,
		})
	}

	u.logger.Info("period reset finished",
		"period", report.Period,
		"brands_reset", report.BrandsReset,
		"reactivated", report.Reactivated,
		"still_blocked", report.StillBlocked,
		"failures", len(report.Failures),
	)
	return nil
}

// groupByBrand splits views into per-brand batches, keeping the listing
// order both across and within batches.
func groupByBrand(views []port.CampaignView) [][]port.CampaignView {
	index := make(map[int64]int)
	var batches [][]port.CampaignView
	for _, v := range views {
		i, ok := index[v.Brand.ID]
		if !ok {
			i = len(batches)
			index[v.Brand.ID] = i
			batches = append(batches, nil)
		}
		batches[i] = append(batches[i], v)
	}
	return batches
}

func sortFailures(failures []port.CampaignFailure) {
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].CampaignID < failures[j].CampaignID
	})
}
