package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

const campaignViewQuery = `
        SELECT ` + campaignColumns + `, ` + brandColumns + `, s.start_time, s.end_time
        FROM campaigns c
        JOIN brands b ON b.id = c.brand_id
        LEFT JOIN dayparting_schedules s ON s.campaign_id = c.id`

// GetCampaign returns a campaign by id.
func (r *Repository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns c WHERE c.id = $1`, id).
		Scan(campaignFields(&c)...)
	if err != nil {
		return nil, wrapErr(err, fmt.Sprintf("get campaign %d", id))
	}
	return &c, nil
}

// ListCampaignsWithBrandAndSchedule returns every campaign with its brand
// and optional schedule, ordered by brand and campaign name.
func (r *Repository) ListCampaignsWithBrandAndSchedule(ctx context.Context) ([]port.CampaignView, error) {
	return r.listViews(ctx, campaignViewQuery+` ORDER BY b.name, c.name`)
}

// ListBudgetPausedCampaigns returns the inactive campaigns flagged as
// paused by a spend ceiling.
func (r *Repository) ListBudgetPausedCampaigns(ctx context.Context) ([]port.CampaignView, error) {
	return r.listViews(ctx, campaignViewQuery+`
        WHERE NOT c.is_active AND c.paused_because_of_budget
        ORDER BY b.name, c.name`)
}

func (r *Repository) listViews(ctx context.Context, query string) ([]port.CampaignView, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, wrapErr(err, "list campaigns")
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignView, error) {
		var (
			v          port.CampaignView
			start, end pgtype.Time
		)
		dest := append(campaignFields(&v.Campaign), brandFields(&v.Brand)...)
		dest = append(dest, &start, &end)
		if err := row.Scan(dest...); err != nil {
			return v, err
		}
		v.Schedule = scheduleOf(v.Campaign.ID, start, end)
		return v, nil
	})
	if err != nil {
		return nil, wrapErr(err, "scan campaigns")
	}
	return views, nil
}

// UpdateCampaignStatus writes only the activation flags so it never races
// with spend increments on total_spend.
func (r *Repository) UpdateCampaignStatus(ctx context.Context, id int64, status domain.Status) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET is_active = $1, paused_because_of_budget = $2, updated_at = now()
        WHERE id = $3`, status.IsActive, status.PausedForBudget, id)
	if err != nil {
		return wrapErr(err, fmt.Sprintf("update campaign %d status", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ResetDailySpend zeroes daily_spend on every brand.
func (r *Repository) ResetDailySpend(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE brands SET daily_spend = 0, updated_at = now()`)
	if err != nil {
		return 0, wrapErr(err, "reset daily spend")
	}
	return tag.RowsAffected(), nil
}

// ResetMonthlySpend zeroes monthly_spend on every brand.
func (r *Repository) ResetMonthlySpend(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE brands SET monthly_spend = 0, updated_at = now()`)
	if err != nil {
		return 0, wrapErr(err, "reset monthly spend")
	}
	return tag.RowsAffected(), nil
}

// RecordSpend inserts a spend log entry and increments the campaign and
// brand accumulators in one transaction. The increments are done in SQL so
// concurrent spends on the same brand serialize on the row lock instead of
// overwriting each other.
func (r *Repository) RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal, at time.Time) (receipt *port.SpendReceipt, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, wrapErr(err, "begin spend transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			receipt, err = nil, wrapErr(cerr, "commit spend transaction")
		}
	}()

	receipt = &port.SpendReceipt{}
	// campaign first, then brand: every writer takes locks in this order
	err = tx.QueryRow(ctx, `
        UPDATE campaigns AS c
        SET total_spend = c.total_spend + $1, updated_at = now()
        WHERE c.id = $2
        RETURNING `+campaignColumns, amount, campaignID).
		Scan(campaignFields(&receipt.Campaign)...)
	if err != nil {
		return nil, wrapErr(err, fmt.Sprintf("campaign %d", campaignID))
	}

	err = tx.QueryRow(ctx, `
        UPDATE brands AS b
        SET daily_spend = b.daily_spend + $1, monthly_spend = b.monthly_spend + $1, updated_at = now()
        WHERE b.id = $2
        RETURNING `+brandColumns, amount, receipt.Campaign.BrandID).
		Scan(brandFields(&receipt.Brand)...)
	if err != nil {
		return nil, wrapErr(err, fmt.Sprintf("brand %d", receipt.Campaign.BrandID))
	}

	receipt.Entry = domain.SpendLog{CampaignID: campaignID, Amount: amount}
	err = tx.QueryRow(ctx, `
        INSERT INTO spend_logs (campaign_id, amount, created_at)
        VALUES ($1, $2, $3)
        RETURNING id, amount, created_at`, campaignID, amount, at).
		Scan(&receipt.Entry.ID, &receipt.Entry.Amount, &receipt.Entry.CreatedAt)
	if err != nil {
		return nil, wrapErr(err, "insert spend log")
	}
	return receipt, nil
}
