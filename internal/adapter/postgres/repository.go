package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

var (
	_ port.BudgetRepository = (*Repository)(nil)
	_ port.AdminRepository  = (*Repository)(nil)
)

// Repository implements port.BudgetRepository and port.AdminRepository
// using pgxpool for PostgreSQL.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a new repository instance.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const (
	brandColumns    = `b.id, b.name, b.daily_budget, b.monthly_budget, b.daily_spend, b.monthly_spend, b.created_at, b.updated_at`
	campaignColumns = `c.id, c.brand_id, c.name, c.is_active, c.paused_because_of_budget, c.total_spend, c.created_at, c.updated_at`
)

// SQLSTATE codes mapped onto the domain taxonomy.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	checkViolation      = "23514"
	numericOutOfRange   = "22003"
)

func brandFields(b *domain.Brand) []any {
	return []any{&b.ID, &b.Name, &b.DailyBudget, &b.MonthlyBudget, &b.DailySpend, &b.MonthlySpend, &b.CreatedAt, &b.UpdatedAt}
}

func campaignFields(c *domain.Campaign) []any {
	return []any{&c.ID, &c.BrandID, &c.Name, &c.IsActive, &c.PausedForBudget, &c.TotalSpend, &c.CreatedAt, &c.UpdatedAt}
}

func scheduleOf(campaignID int64, start, end pgtype.Time) *domain.DaypartingSchedule {
	if !start.Valid || !end.Valid {
		return nil
	}
	return &domain.DaypartingSchedule{
		CampaignID: campaignID,
		Start:      domain.TimeOfDay(start.Microseconds),
		End:        domain.TimeOfDay(end.Microseconds),
	}
}

func timeOf(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t), Valid: true}
}

// wrapErr maps driver errors onto the domain error taxonomy. what names the
// operation for the message.
func wrapErr(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolation:
			return fmt.Errorf("%s: referenced row missing: %w", what, domain.ErrNotFound)
		case uniqueViolation:
			return fmt.Errorf("%s: %s: %w", what, pgErr.Detail, domain.ErrValidation)
		case checkViolation:
			return fmt.Errorf("%s: constraint %s: %w", what, pgErr.ConstraintName, domain.ErrValidation)
		case numericOutOfRange:
			return fmt.Errorf("%s: %s: %w", what, pgErr.Message, domain.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w: %w", what, domain.ErrPersistence, err)
}
