package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"spend-guard/internal/core/domain"
)

// SpendLedger records spend events. Implementations validate the amount
// before touching the store and never change campaign activation.
type SpendLedger interface {
	RecordSpend(ctx context.Context, campaignID int64, amount decimal.Decimal) (*SpendReceipt, error)
}

// Controller exposes the reconciliation cycle and the period resets. The
// caller supplies now; implementations never read the wall clock for
// decisions.
type Controller interface {
	// RunCycle evaluates every campaign and applies the needed
	// transitions. Per-campaign failures are collected in the report;
	// an error is returned only when the pass could not start.
	RunCycle(ctx context.Context, now time.Time) (*CycleReport, error)
	// ResetDaily zeroes daily spend and reactivates budget-paused
	// campaigns whose brand still has monthly headroom.
	ResetDaily(ctx context.Context, now time.Time) (*ResetReport, error)
	// ResetMonthly does nothing unless now is the first day of a month.
	// Otherwise it zeroes monthly spend and reactivates every
	// budget-paused campaign.
	ResetMonthly(ctx context.Context, now time.Time) (*ResetReport, error)
}

// Admin is the record-editing surface.
type Admin interface {
	CreateBrand(ctx context.Context, in BrandInput) (*domain.Brand, error)
	UpdateBrand(ctx context.Context, id int64, in BrandInput) (*domain.Brand, error)
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)

	CreateCampaign(ctx context.Context, in CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, in CampaignInput) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id int64) (*CampaignDetails, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	SetSchedule(ctx context.Context, campaignID int64, start, end domain.TimeOfDay) (*domain.DaypartingSchedule, error)
	RemoveSchedule(ctx context.Context, campaignID int64) error

	ListSpendLogs(ctx context.Context, filter SpendLogFilter) ([]domain.SpendLog, error)
}

// BrandInput carries the administratively editable brand fields.
type BrandInput struct {
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
}

// CampaignInput carries the administratively editable campaign fields.
// IsActive is optional on update; a nil value keeps the current state.
type CampaignInput struct {
	BrandID  int64  `json:"brand_id"`
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// CampaignDetails is a campaign with its optional schedule.
type CampaignDetails struct {
	Campaign domain.Campaign
	Schedule *domain.DaypartingSchedule
}

// CampaignFailure is a campaign the control loop could not process.
type CampaignFailure struct {
	CampaignID int64
	Err        error
}

// CycleReport summarizes one reconciliation pass.
type CycleReport struct {
	CycleID     string
	StartedAt   time.Time
	Evaluated   int
	Paused      int
	Reactivated int
	Corrected   int
	Failures    []CampaignFailure
}

// ResetReport summarizes one period reset.
type ResetReport struct {
	Period       string
	Skipped      bool
	BrandsReset  int64
	Reactivated  int
	StillBlocked int
	Failures     []CampaignFailure
}
