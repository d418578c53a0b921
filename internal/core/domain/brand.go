package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Brand is an advertiser owning one or more campaigns and the spend
// ceilings they share. Budgets and spend are fixed-point currency values.
type Brand struct {
	ID            int64
	Name          string
	DailyBudget   decimal.Decimal
	MonthlyBudget decimal.Decimal
	DailySpend    decimal.Decimal
	MonthlySpend  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DailyExceeded reports whether the daily ceiling is met or exceeded.
func (b Brand) DailyExceeded() bool {
	return b.DailySpend.GreaterThanOrEqual(b.DailyBudget)
}

// MonthlyExceeded reports whether the monthly ceiling is met or exceeded.
func (b Brand) MonthlyExceeded() bool {
	return b.MonthlySpend.GreaterThanOrEqual(b.MonthlyBudget)
}
