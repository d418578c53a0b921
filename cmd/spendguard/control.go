package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"spend-guard/internal/adapter/notify"
	"spend-guard/internal/adapter/usecase"
	"spend-guard/internal/core/port"
)

var atFlag string

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation cycle",
	Long: `Evaluate every campaign against its brand's ceilings and its dayparting
window and apply the needed pauses and reactivations. Suitable for an external
cron when the in-process scheduler is disabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctx context.Context, ctl port.Controller, now time.Time) error {
			report, err := ctl.RunCycle(ctx, now)
			if err != nil {
				return err
			}
			printCycle(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Period reset commands",
}

var resetDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Zero daily spend and reactivate campaigns with monthly headroom",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctx context.Context, ctl port.Controller, now time.Time) error {
			report, err := ctl.ResetDaily(ctx, now)
			if err != nil {
				return err
			}
			printReset(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

var resetMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Zero monthly spend and reactivate budget-paused campaigns",
	Long:  `Does nothing unless the current day in SCHEDULER_TIMEZONE (or --at) is the first of the month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withController(cmd, func(ctx context.Context, ctl port.Controller, now time.Time) error {
			report, err := ctl.ResetMonthly(ctx, now)
			if err != nil {
				return err
			}
			printReset(cmd.OutOrStdout(), report)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{reconcileCmd, resetDailyCmd, resetMonthlyCmd} {
		c.Flags().StringVar(&atFlag, "at", "", "evaluate at this RFC3339 instant instead of now")
	}
	resetCmd.AddCommand(resetDailyCmd, resetMonthlyCmd)
}

// withController connects to the store, builds the control use case and
// runs fn at the requested instant in the scheduler zone.
func withController(cmd *cobra.Command, fn func(context.Context, port.Controller, time.Time) error) error {
	s, err := openStore(cmd.Context(), os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	loc, err := s.cfg.Scheduler.Location()
	if err != nil {
		return err
	}
	now, err := resolveNow(atFlag, time.Now(), loc)
	if err != nil {
		return err
	}

	ctl := usecase.NewControlUseCase(s.repo, notify.New(s.logger, nil), s.logger, s.cfg.Scheduler.Concurrency)
	return fn(cmd.Context(), ctl, now)
}

// resolveNow returns at parsed as RFC3339, or wall when at is empty, in loc.
func resolveNow(at string, wall time.Time, loc *time.Location) (time.Time, error) {
	if at == "" {
		return wall.In(loc), nil
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q: %w", at, err)
	}
	return t.In(loc), nil
}

func printCycle(out io.Writer, r *port.CycleReport) {
	fmt.Fprintf(out, "Cycle %s: evaluated %d, paused %d, reactivated %d, corrected %d\n",
		r.CycleID, r.Evaluated, r.Paused, r.Reactivated, r.Corrected)
	printFailures(out, r.Failures)
}

func printReset(out io.Writer, r *port.ResetReport) {
	if r.Skipped {
		fmt.Fprintf(out, "Skipped %s reset: not the first day of the month\n", r.Period)
		return
	}
	fmt.Fprintf(out, "Reset %s spend on %d brands: reactivated %d, still blocked %d\n",
		r.Period, r.BrandsReset, r.Reactivated, r.StillBlocked)
	printFailures(out, r.Failures)
}

func printFailures(out io.Writer, failures []port.CampaignFailure) {
	for _, f := range failures {
		fmt.Fprintf(out, "  campaign %d: %v\n", f.CampaignID, f.Err)
	}
}
