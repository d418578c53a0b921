package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

// Fixtures is the YAML document accepted by Seed.
type Fixtures struct {
	Brands []BrandFixture `yaml:"brands"`
}

// BrandFixture describes a brand and its campaigns.
type BrandFixture struct {
	Name          string            `yaml:"name"`
	DailyBudget   decimal.Decimal   `yaml:"daily_budget"`
	MonthlyBudget decimal.Decimal   `yaml:"monthly_budget"`
	Campaigns     []CampaignFixture `yaml:"campaigns"`
}

// CampaignFixture describes a campaign, its optional schedule and spend
// events to replay through the ledger.
type CampaignFixture struct {
	Name     string            `yaml:"name"`
	Active   *bool             `yaml:"active"`
	Schedule *ScheduleFixture  `yaml:"schedule"`
	Spend    []decimal.Decimal `yaml:"spend"`
}

// ScheduleFixture is a dayparting window in "15:04" notation.
type ScheduleFixture struct {
	Start domain.TimeOfDay `yaml:"start"`
	End   domain.TimeOfDay `yaml:"end"`
}

// SeedStats counts what Seed wrote.
type SeedStats struct {
	Brands    int
	Campaigns int
	Schedules int
	Spends    int
}

// LoadFixtures decodes and validates a fixtures document. Unknown keys
// are rejected.
func LoadFixtures(r io.Reader) (Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return fx, fmt.Errorf("decode fixtures: %w", err)
	}
	return fx, fx.Validate()
}

// Validate checks every entry against the entity invariants.
func (fx Fixtures) Validate() error {
	var errs []error
	for i, b := range fx.Brands {
		if strings.TrimSpace(b.Name) == "" {
			errs = append(errs, fmt.Errorf("brands[%d]: name is required", i))
		}
		if b.DailyBudget.IsNegative() || b.MonthlyBudget.IsNegative() {
			errs = append(errs, fmt.Errorf("brand %q: budgets must not be negative", b.Name))
		}
		if b.DailyBudget.GreaterThan(domain.MaxBudget) || b.MonthlyBudget.GreaterThan(domain.MaxBudget) {
			errs = append(errs, fmt.Errorf("brand %q: budgets must not exceed %s", b.Name, domain.MaxBudget.StringFixed(domain.MoneyPlaces)))
		}
		for j, c := range b.Campaigns {
			if strings.TrimSpace(c.Name) == "" {
				errs = append(errs, fmt.Errorf("brand %q campaigns[%d]: name is required", b.Name, j))
			}
			if c.Schedule != nil {
				s := domain.DaypartingSchedule{Start: c.Schedule.Start, End: c.Schedule.End}
				if err := s.Validate(); err != nil {
					errs = append(errs, fmt.Errorf("campaign %q: %w", c.Name, err))
				}
			}
			for _, amount := range c.Spend {
				if !domain.ValidAmount(amount) {
					errs = append(errs, fmt.Errorf("campaign %q: spend %s: %w", c.Name, amount, domain.ErrInvalidAmount))
				}
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}
	return nil
}

// Seed upserts the brands, campaigns and schedules of fx in one
// transaction and then replays the listed spend through ledger so running
// totals and the spend log stay consistent. Re-seeding updates budgets and
// schedules in place; spend is appended again.
func Seed(ctx context.Context, pool *pgxpool.Pool, fx Fixtures, ledger port.SpendLedger) (SeedStats, error) {
	var stats SeedStats
	type pending struct {
		campaignID int64
		amounts    []decimal.Decimal
	}
	var spends []pending

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, b := range fx.Brands {
			var brandID int64
			err := tx.QueryRow(ctx, `
INSERT INTO brands (name, daily_budget, monthly_budget)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET daily_budget = EXCLUDED.daily_budget, monthly_budget = EXCLUDED.monthly_budget
RETURNING id`, strings.TrimSpace(b.Name), b.DailyBudget, b.MonthlyBudget).Scan(&brandID)
			if err != nil {
				return fmt.Errorf("seed brand %q: %w", b.Name, err)
			}
			stats.Brands++

			for _, c := range b.Campaigns {
				active := c.Active == nil || *c.Active
				var campaignID int64
				err = tx.QueryRow(ctx, `
INSERT INTO campaigns (brand_id, name, is_active)
VALUES ($1, $2, $3)
ON CONFLICT (brand_id, name) DO UPDATE SET is_active = EXCLUDED.is_active, paused_because_of_budget = FALSE
RETURNING id`, brandID, strings.TrimSpace(c.Name), active).Scan(&campaignID)
				if err != nil {
					return fmt.Errorf("seed campaign %q: %w", c.Name, err)
				}
				stats.Campaigns++

				if c.Schedule != nil {
					_, err = tx.Exec(ctx, `
INSERT INTO dayparting_schedules (campaign_id, start_time, end_time)
VALUES ($1, $2, $3)
ON CONFLICT (campaign_id) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time`,
						campaignID,
						pgtype.Time{Microseconds: int64(c.Schedule.Start), Valid: true},
						pgtype.Time{Microseconds: int64(c.Schedule.End), Valid: true})
					if err != nil {
						return fmt.Errorf("seed schedule of %q: %w", c.Name, err)
					}
					stats.Schedules++
				}
				if len(c.Spend) > 0 {
					spends = append(spends, pending{campaignID: campaignID, amounts: c.Spend})
				}
			}
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	for _, p := range spends {
		for _, amount := range p.amounts {
			if _, err = ledger.RecordSpend(ctx, p.campaignID, amount); err != nil {
				return stats, err
			}
			stats.Spends++
		}
	}
	return stats, nil
}
