package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"spend-guard/internal/core/domain"
)

// BudgetRepository is the store contract of the control loop. It is an
// outbound port in hexagonal architecture. Every method is atomic on its
// own; implementations must be concurrency-safe and must apply spend
// increments in place rather than by read-modify-write.
type BudgetRepository interface {
	// GetCampaign returns a campaign by id or an error wrapping
	// domain.ErrNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaignsWithBrandAndSchedule returns every campaign joined with
	// its brand and optional dayparting schedule.
	ListCampaignsWithBrandAndSchedule(ctx context.Context) ([]CampaignView, error)
	// ListBudgetPausedCampaigns returns the campaigns that are inactive and
	// flagged as paused by a spend ceiling.
	ListBudgetPausedCampaigns(ctx context.Context) ([]CampaignView, error)
	// UpdateCampaignStatus writes the activation flags of one campaign and
	// leaves every other column untouched.
	UpdateCampaignStatus(ctx context.Context, id int64, status domain.Status) error
	// ResetDailySpend zeroes daily_spend on every brand and returns the
	// number of brands touched.
	ResetDailySpend(ctx context.Context) (int64, error)
	// ResetMonthlySpend zeroes monthly_spend on every brand and returns the
	// number of brands touched.
	ResetMonthlySpend(ctx context.Context) (int64, error)
	// RecordSpend appends a spend log entry and increments the campaign
	// total and the brand's daily and monthly spend in one transaction.
	RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal, at time.Time) (*SpendReceipt, error)
}

// CampaignView is a campaign joined with the rows it is evaluated against.
// Schedule is nil when the campaign has no dayparting window.
type CampaignView struct {
	Campaign domain.Campaign
	Brand    domain.Brand
	Schedule *domain.DaypartingSchedule
}

// SpendReceipt is the outcome of a recorded spend: the new log entry and
// the campaign and brand as they stand right after the increment.
type SpendReceipt struct {
	Entry    domain.SpendLog
	Campaign domain.Campaign
	Brand    domain.Brand
}

// CampaignTotalBefore returns the campaign total prior to this entry.
func (r SpendReceipt) CampaignTotalBefore() decimal.Decimal {
	return r.Campaign.TotalSpend.Sub(r.Entry.Amount)
}

// BrandBefore returns the brand with this entry's amount taken back out of
// its accumulators.
func (r SpendReceipt) BrandBefore() domain.Brand {
	b := r.Brand
	b.DailySpend = b.DailySpend.Sub(r.Entry.Amount)
	b.MonthlySpend = b.MonthlySpend.Sub(r.Entry.Amount)
	return b
}
