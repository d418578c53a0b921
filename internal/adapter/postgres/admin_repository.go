package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

// CreateBrand inserts b and fills in its id and timestamps. Spend starts at zero.
func (r *Repository) CreateBrand(ctx context.Context, b *domain.Brand) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO brands (name, daily_budget, monthly_budget)
        VALUES ($1, $2, $3)
        RETURNING id, daily_spend, monthly_spend, created_at, updated_at`,
		b.Name, b.DailyBudget, b.MonthlyBudget).
		Scan(&b.ID, &b.DailySpend, &b.MonthlySpend, &b.CreatedAt, &b.UpdatedAt)
	return wrapErr(err, fmt.Sprintf("create brand %q", b.Name))
}

// UpdateBrand writes the name and budgets of b and refreshes the spend
// fields from the row, leaving the accumulators untouched.
func (r *Repository) UpdateBrand(ctx context.Context, b *domain.Brand) error {
	err := r.pool.QueryRow(ctx, `
        UPDATE brands
        SET name = $1, daily_budget = $2, monthly_budget = $3, updated_at = now()
        WHERE id = $4
        RETURNING daily_spend, monthly_spend, updated_at`,
		b.Name, b.DailyBudget, b.MonthlyBudget, b.ID).
		Scan(&b.DailySpend, &b.MonthlySpend, &b.UpdatedAt)
	return wrapErr(err, fmt.Sprintf("brand %d", b.ID))
}

// GetBrand returns a brand by id.
func (r *Repository) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	var b domain.Brand
	err := r.pool.QueryRow(ctx, `SELECT `+brandColumns+` FROM brands b WHERE b.id = $1`, id).
		Scan(brandFields(&b)...)
	if err != nil {
		return nil, wrapErr(err, fmt.Sprintf("brand %d", id))
	}
	return &b, nil
}

// ListBrands returns all brands ordered by name.
func (r *Repository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+brandColumns+` FROM brands b ORDER BY b.name`)
	if err != nil {
		return nil, wrapErr(err, "list brands")
	}
	brands, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Brand, error) {
		var b domain.Brand
		err := row.Scan(brandFields(&b)...)
		return b, err
	})
	if err != nil {
		return nil, wrapErr(err, "scan brands")
	}
	return brands, nil
}

// CreateCampaign inserts c and fills in its id, total and timestamps.
func (r *Repository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (brand_id, name, is_active, paused_because_of_budget)
        VALUES ($1, $2, $3, $4)
        RETURNING id, total_spend, created_at, updated_at`,
		c.BrandID, c.Name, c.IsActive, c.PausedForBudget).
		Scan(&c.ID, &c.TotalSpend, &c.CreatedAt, &c.UpdatedAt)
	return wrapErr(err, fmt.Sprintf("create campaign %q", c.Name))
}

// UpdateCampaign writes the name and brand of c. The flags are written only
// when status is set, so a rename never restores flags that a concurrent
// cycle or reset has changed. total_spend is read back, never written.
func (r *Repository) UpdateCampaign(ctx context.Context, c *domain.Campaign, status *domain.Status) error {
	var isActive, paused *bool
	if status != nil {
		isActive, paused = &status.IsActive, &status.PausedForBudget
	}
	err := r.pool.QueryRow(ctx, `
        UPDATE campaigns
        SET brand_id = $1, name = $2,
            is_active = COALESCE($3, is_active),
            paused_because_of_budget = COALESCE($4, paused_because_of_budget),
            updated_at = now()
        WHERE id = $5
        RETURNING is_active, paused_because_of_budget, total_spend, updated_at`,
		c.BrandID, c.Name, isActive, paused, c.ID).
		Scan(&c.IsActive, &c.PausedForBudget, &c.TotalSpend, &c.UpdatedAt)
	return wrapErr(err, fmt.Sprintf("campaign %d", c.ID))
}

// ListCampaigns returns campaigns matching filter ordered by id.
func (r *Repository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	var (
		where []string
		args  []any
	)
	if filter.BrandID != nil {
		args = append(args, *filter.BrandID)
		where = append(where, fmt.Sprintf("c.brand_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		where = append(where, fmt.Sprintf("c.is_active = $%d", len(args)))
	}
	if filter.PausedForBudget != nil {
		args = append(args, *filter.PausedForBudget)
		where = append(where, fmt.Sprintf("c.paused_because_of_budget = $%d", len(args)))
	}
	query := `SELECT ` + campaignColumns + ` FROM campaigns c`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY c.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err, "list campaigns")
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(campaignFields(&c)...)
		return c, err
	})
	if err != nil {
		return nil, wrapErr(err, "scan campaigns")
	}
	return campaigns, nil
}

// GetSchedule returns the schedule of a campaign, or nil when it has none.
func (r *Repository) GetSchedule(ctx context.Context, campaignID int64) (*domain.DaypartingSchedule, error) {
	var start, end pgtype.Time
	err := r.pool.QueryRow(ctx, `SELECT start_time, end_time FROM dayparting_schedules WHERE campaign_id = $1`, campaignID).
		Scan(&start, &end)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr(err, fmt.Sprintf("schedule of campaign %d", campaignID))
	}
	return scheduleOf(campaignID, start, end), nil
}

// UpsertSchedule attaches s to its campaign, replacing any previous window.
func (r *Repository) UpsertSchedule(ctx context.Context, s domain.DaypartingSchedule) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO dayparting_schedules (campaign_id, start_time, end_time)
        VALUES ($1, $2, $3)
        ON CONFLICT (campaign_id) DO UPDATE
        SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time`,
		s.CampaignID, timeOf(s.Start), timeOf(s.End))
	return wrapErr(err, fmt.Sprintf("schedule of campaign %d", s.CampaignID))
}

// DeleteSchedule detaches the schedule of a campaign.
func (r *Repository) DeleteSchedule(ctx context.Context, campaignID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM dayparting_schedules WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return wrapErr(err, fmt.Sprintf("schedule of campaign %d", campaignID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule of campaign %d: %w", campaignID, domain.ErrNotFound)
	}
	return nil
}

// ListSpendLogs returns spend entries newest first.
func (r *Repository) ListSpendLogs(ctx context.Context, filter port.SpendLogFilter) ([]domain.SpendLog, error) {
	args := []any{filter.Limit}
	query := `SELECT id, campaign_id, amount, created_at FROM spend_logs`
	if filter.CampaignID != nil {
		args = append(args, *filter.CampaignID)
		query += ` WHERE campaign_id = $2`
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(err, "list spend logs")
	}
	logs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SpendLog, error) {
		var l domain.SpendLog
		err := row.Scan(&l.ID, &l.CampaignID, &l.Amount, &l.CreatedAt)
		return l, err
	})
	if err != nil {
		return nil, wrapErr(err, "scan spend logs")
	}
	return logs, nil
}
