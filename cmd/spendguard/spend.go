package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"spend-guard/internal/adapter/usecase"
	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

var spendCmd = &cobra.Command{
	Use:   "spend <campaign-id> <amount>",
	Short: "Record a spend event for a campaign",
	Long: `Record a spend event and update the campaign total and the brand's daily
and monthly spend. The campaign is not paused here even when a ceiling is
crossed; the next reconciliation cycle does that.`,
	Example: "  spendguard spend 42 15.50",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd.Context(), os.Stderr)
		if err != nil {
			return err
		}
		defer s.Close()
		return runSpend(cmd.Context(), cmd.OutOrStdout(), usecase.NewLedgerUseCase(s.repo, time.Now), args)
	},
}

// errReported marks a failure whose message was already written to the
// command output.
var errReported = errors.New("spend not recorded")

// runSpend parses the arguments, records the spend and writes the report.
// Any failure is described on out and returned, so the process exits
// non-zero without a success line.
func runSpend(ctx context.Context, out io.Writer, ledger port.SpendLedger, args []string) error {
	campaignID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid campaign id %q", args[0])
	}
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	receipt, err := ledger.RecordSpend(ctx, campaignID, amount)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintf(out, "Campaign with ID %d does not exist.\n", campaignID)
		return fmt.Errorf("%w: %w", errReported, err)
	case errors.Is(err, domain.ErrInvalidAmount):
		fmt.Fprintf(out, "Invalid amount %s: must be positive, at most %s, with at most %d decimal places.\n",
			args[1], money(domain.MaxAmount), domain.MoneyPlaces)
		return fmt.Errorf("%w: %w", errReported, err)
	case errors.Is(err, domain.ErrValidation):
		fmt.Fprintf(out, "Spend rejected: %v\n", err)
		return fmt.Errorf("%w: %w", errReported, err)
	case err != nil:
		fmt.Fprintf(out, "An error occurred: %v\n", err)
		return fmt.Errorf("%w: %w", errReported, err)
	}

	printReceipt(out, receipt)
	return nil
}

func printReceipt(out io.Writer, r *port.SpendReceipt) {
	before := r.BrandBefore()
	fmt.Fprintf(out, "Campaign: %s (Brand: %s)\n", r.Campaign.Name, r.Brand.Name)
	fmt.Fprintf(out, "Current spend - Campaign: $%s, Brand Daily: $%s/%s, Brand Monthly: $%s/%s\n",
		money(r.CampaignTotalBefore()),
		money(before.DailySpend), money(before.DailyBudget),
		money(before.MonthlySpend), money(before.MonthlyBudget),
	)
	fmt.Fprintf(out, "Successfully logged $%s spend for '%s'\n", money(r.Entry.Amount), r.Campaign.Name)
	fmt.Fprintf(out, "Updated spend - Campaign: $%s, Brand Daily: $%s/%s, Brand Monthly: $%s/%s\n",
		money(r.Campaign.TotalSpend),
		money(r.Brand.DailySpend), money(r.Brand.DailyBudget),
		money(r.Brand.MonthlySpend), money(r.Brand.MonthlyBudget),
	)
	if r.Brand.DailyExceeded() {
		fmt.Fprintln(out, "WARNING: Daily budget exceeded! Campaign should be paused soon.")
	}
	if r.Brand.MonthlyExceeded() {
		fmt.Fprintln(out, "WARNING: Monthly budget exceeded! Campaign should be paused soon.")
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(domain.MoneyPlaces)
}
