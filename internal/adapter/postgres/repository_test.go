package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
	"spend-guard/internal/db"
)

// newTestRepository connects to the database named by SPENDGUARD_TEST_PSQL,
// applies the migrations and empties every table. Tests are skipped when
// the variable is unset.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	addr := os.Getenv("SPENDGUARD_TEST_PSQL")
	if addr == "" {
		t.Skip("SPENDGUARD_TEST_PSQL not set")
	}
	require.NoError(t, db.Migrate(addr))

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE spend_logs, dayparting_schedules, campaigns, brands RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return NewRepository(pool)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func createBrandWithCampaign(t *testing.T, r *Repository, daily, monthly string) (*domain.Brand, *domain.Campaign) {
	t.Helper()
	ctx := context.Background()
	b := &domain.Brand{Name: "Acme " + t.Name(), DailyBudget: money(daily), MonthlyBudget: money(monthly)}
	require.NoError(t, r.CreateBrand(ctx, b))
	c := &domain.Campaign{BrandID: b.ID, Name: "Spring", IsActive: true}
	require.NoError(t, r.CreateCampaign(ctx, c))
	return b, c
}

func TestRecordSpendUpdatesTotals(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	_, c := createBrandWithCampaign(t, r, "100", "1000")
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	_, err := r.RecordSpend(ctx, c.ID, money("40.25"), at)
	require.NoError(t, err)
	rc, err := r.RecordSpend(ctx, c.ID, money("10.00"), at.Add(time.Minute))
	require.NoError(t, err)

	assert.True(t, rc.Campaign.TotalSpend.Equal(money("50.25")))
	assert.True(t, rc.Brand.DailySpend.Equal(money("50.25")))
	assert.True(t, rc.Brand.MonthlySpend.Equal(money("50.25")))
	assert.True(t, rc.CampaignTotalBefore().Equal(money("40.25")))
	assert.True(t, rc.Entry.CreatedAt.Equal(at.Add(time.Minute)))
	assert.True(t, rc.Campaign.IsActive, "recording spend never pauses")

	logs, err := r.ListSpendLogs(ctx, port.SpendLogFilter{CampaignID: &c.ID, Limit: 10})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.True(t, logs[0].Amount.Equal(money("10")), "newest first")
}

func TestRecordSpendUnknownCampaign(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	_, err := r.RecordSpend(ctx, 999, money("1.00"), time.Now())
	require.ErrorIs(t, err, domain.ErrNotFound)

	logs, err := r.ListSpendLogs(ctx, port.SpendLogFilter{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestConcurrentSpendIsNotLost(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	b, c := createBrandWithCampaign(t, r, "1000", "1000")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.RecordSpend(ctx, c.ID, money("1.50"), time.Now())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.DailySpend.Equal(money("30")), "got %s", got.DailySpend)
}

func TestUpdateCampaignStatusKeepsSpend(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	_, c := createBrandWithCampaign(t, r, "10", "100")
	_, err := r.RecordSpend(ctx, c.ID, money("12.00"), time.Now())
	require.NoError(t, err)

	require.NoError(t, r.UpdateCampaignStatus(ctx, c.ID, domain.StatusBudgetPaused))

	got, err := r.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBudgetPaused, got.Status())
	assert.True(t, got.TotalSpend.Equal(money("12")))

	paused, err := r.ListBudgetPausedCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, paused, 1)
	assert.Equal(t, c.ID, paused[0].Campaign.ID)

	err = r.UpdateCampaignStatus(ctx, 999, domain.StatusActive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatusInvariantEnforcedByStore(t *testing.T) {
	r := newTestRepository(t)
	_, c := createBrandWithCampaign(t, r, "10", "100")

	err := r.UpdateCampaignStatus(context.Background(), c.ID, domain.Status{IsActive: true, PausedForBudget: true})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResetsZeroOnlyTheirPeriod(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	b, c := createBrandWithCampaign(t, r, "100", "1000")
	_, err := r.RecordSpend(ctx, c.ID, money("60"), time.Now())
	require.NoError(t, err)

	n, err := r.ResetDailySpend(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := r.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.DailySpend.IsZero())
	assert.True(t, got.MonthlySpend.Equal(money("60")))

	_, err = r.ResetMonthlySpend(ctx)
	require.NoError(t, err)
	got, err = r.GetBrand(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.MonthlySpend.IsZero())

	camp, err := r.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, camp.TotalSpend.Equal(money("60")), "campaign total survives resets")
}

func TestScheduleLifecycle(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	_, c := createBrandWithCampaign(t, r, "100", "1000")

	s, err := r.GetSchedule(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, s)

	want := domain.DaypartingSchedule{CampaignID: c.ID, Start: domain.NewTimeOfDay(9, 0, 0), End: domain.NewTimeOfDay(17, 30, 15)}
	require.NoError(t, r.UpsertSchedule(ctx, want))
	want.End = domain.NewTimeOfDay(18, 0, 0)
	require.NoError(t, r.UpsertSchedule(ctx, want))

	views, err := r.ListCampaignsWithBrandAndSchedule(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Schedule)
	assert.Equal(t, want, *views[0].Schedule)

	require.NoError(t, r.DeleteSchedule(ctx, c.ID))
	assert.ErrorIs(t, r.DeleteSchedule(ctx, c.ID), domain.ErrNotFound)
}

func TestAdminConstraintMapping(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	b, _ := createBrandWithCampaign(t, r, "100", "1000")

	err := r.CreateBrand(ctx, &domain.Brand{Name: b.Name, DailyBudget: money("1"), MonthlyBudget: money("1")})
	assert.ErrorIs(t, err, domain.ErrValidation, "duplicate name")

	err = r.CreateCampaign(ctx, &domain.Campaign{BrandID: 999, Name: "Orphan", IsActive: true})
	assert.ErrorIs(t, err, domain.ErrNotFound, "missing brand")

	active := true
	list, err := r.ListCampaigns(ctx, port.CampaignFilter{BrandID: &b.ID, IsActive: &active})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWrapErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", pgx.ErrNoRows, domain.ErrNotFound},
		{"foreign key", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, domain.ErrValidation},
		{"check", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"numeric overflow", &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}, domain.ErrValidation},
		{"other", &pgconn.PgError{Code: "40P01"}, domain.ErrPersistence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapErr(tt.err, "insert spend log")
			assert.ErrorIs(t, err, tt.want)
			if tt.want != domain.ErrPersistence {
				assert.NotErrorIs(t, err, domain.ErrPersistence)
			}
		})
	}
	assert.NoError(t, wrapErr(nil, "noop"))
}

func TestNumericOverflowIsValidation(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	_, c := createBrandWithCampaign(t, r, "100", "1000")

	_, err := r.RecordSpend(ctx, c.ID, money("123456789.00"), time.Now())
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = r.CreateBrand(ctx, &domain.Brand{Name: "Huge", DailyBudget: money("1"), MonthlyBudget: money("10000000000000")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateCampaignWithoutStatusKeepsStoredFlags(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	_, c := createBrandWithCampaign(t, r, "100", "1000")

	stale := *c
	require.NoError(t, r.UpdateCampaignStatus(ctx, c.ID, domain.StatusBudgetPaused))

	stale.Name = "Renamed"
	require.NoError(t, r.UpdateCampaign(ctx, &stale, nil))
	assert.False(t, stale.IsActive)
	assert.True(t, stale.PausedForBudget)

	got, err := r.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, domain.StatusBudgetPaused, got.Status())

	require.NoError(t, r.UpdateCampaign(ctx, got, &domain.StatusActive))
	assert.Equal(t, domain.StatusActive, got.Status())
}
