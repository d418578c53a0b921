package port

import (
	"context"

	"spend-guard/internal/core/domain"
)

// AdminRepository persists administrative edits. Updates never write the
// spend accumulators, which belong to the ledger and the reset jobs.
type AdminRepository interface {
	CreateBrand(ctx context.Context, b *domain.Brand) error
	UpdateBrand(ctx context.Context, b *domain.Brand) error
	GetBrand(ctx context.Context, id int64) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)

	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign writes the name and brand of c. The activation flags
	// are written only when status is non-nil; either way c is refreshed
	// with the stored flags.
	UpdateCampaign(ctx context.Context, c *domain.Campaign, status *domain.Status) error
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	GetSchedule(ctx context.Context, campaignID int64) (*domain.DaypartingSchedule, error)
	UpsertSchedule(ctx context.Context, s domain.DaypartingSchedule) error
	DeleteSchedule(ctx context.Context, campaignID int64) error

	ListSpendLogs(ctx context.Context, filter SpendLogFilter) ([]domain.SpendLog, error)
}

// CampaignFilter narrows ListCampaigns. Nil fields are not applied.
type CampaignFilter struct {
	BrandID         *int64
	IsActive        *bool
	PausedForBudget *bool
}

// SpendLogFilter narrows ListSpendLogs. Entries come newest first.
type SpendLogFilter struct {
	CampaignID *int64
	Limit      int
}
