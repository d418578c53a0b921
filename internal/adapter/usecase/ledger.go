package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

// LedgerUseCase records spend events and keeps the running totals on
// campaigns and brands. It implements port.SpendLedger.
type LedgerUseCase struct {
	repo port.BudgetRepository
	now  func() time.Time
}

// NewLedgerUseCase creates a ledger over repo. now stamps new spend log
// entries; pass time.Now outside of tests.
func NewLedgerUseCase(repo port.BudgetRepository, now func() time.Time) *LedgerUseCase {
	return &LedgerUseCase{repo: repo, now: now}
}

// RecordSpend appends a spend log entry for the campaign and increments
// the campaign total and the brand's daily and monthly spend atomically.
// Amounts that are not strictly positive, that exceed domain.MaxAmount or
// that carry more than two fractional digits are rejected with
// domain.ErrInvalidAmount before the store is touched. The campaign is not paused here even when a ceiling
// is crossed; the next reconciliation cycle takes care of that.
func (u *LedgerUseCase) RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal) (*port.SpendReceipt, error) {
	ctx, span := tracer.Start(ctx, "ledger.RecordSpend", trace.WithAttributes(
		attribute.Int64("campaign.id", campaignID),
		attribute.String("spend.amount", amount.String()),
	))
	defer span.End()

	if !domain.ValidAmount(amount) {
		return nil, fail(span, fmt.Errorf("spend %s on campaign %d: %w", amount, campaignID, domain.ErrInvalidAmount))
	}

	receipt, err := u.repo.RecordSpend(ctx, campaignID, amount, u.now().UTC())
	if err != nil {
		return nil, fail(span, fmt.Errorf("record spend on campaign %d: %w", campaignID, err))
	}
	return receipt, nil
}
