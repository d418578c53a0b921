package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

const (
	defaultSpendLogLimit = 100
	maxSpendLogLimit     = 1000
)

// AdminUseCase validates and applies administrative edits to brands,
// campaigns and schedules. It implements port.Admin. Spend accumulators
// are never written from here.
type AdminUseCase struct {
	repo port.AdminRepository
}

// NewAdminUseCase creates an admin use case over repo.
func NewAdminUseCase(repo port.AdminRepository) *AdminUseCase {
	return &AdminUseCase{repo: repo}
}

func (u *AdminUseCase) CreateBrand(ctx context.Context, in port.BrandInput) (*domain.Brand, error) {
	name, err := validateBrand(in)
	if err != nil {
		return nil, err
	}
	b := &domain.Brand{
		Name:          name,
		DailyBudget:   in.DailyBudget,
		MonthlyBudget: in.MonthlyBudget,
		DailySpend:    decimal.Zero,
		MonthlySpend:  decimal.Zero,
	}
	if err = u.repo.CreateBrand(ctx, b); err != nil {
		return nil, fmt.Errorf("create brand %q: %w", name, err)
	}
	return b, nil
}

// UpdateBrand renames a brand or changes its ceilings. The new ceilings
// are picked up by the next reconciliation cycle.
func (u *AdminUseCase) UpdateBrand(ctx context.Context, id int64, in port.BrandInput) (*domain.Brand, error) {
	name, err := validateBrand(in)
	if err != nil {
		return nil, err
	}
	b, err := u.repo.GetBrand(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Name = name
	b.DailyBudget = in.DailyBudget
	b.MonthlyBudget = in.MonthlyBudget
	if err = u.repo.UpdateBrand(ctx, b); err != nil {
		return nil, fmt.Errorf("update brand %d: %w", id, err)
	}
	return b, nil
}

func (u *AdminUseCase) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	return u.repo.GetBrand(ctx, id)
}

func (u *AdminUseCase) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	return u.repo.ListBrands(ctx)
}

// CreateCampaign adds a campaign under an existing brand. New campaigns
// start active unless the input says otherwise.
func (u *AdminUseCase) CreateCampaign(ctx context.Context, in port.CampaignInput) (*domain.Campaign, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("campaign name is required: %w", domain.ErrValidation)
	}
	if in.BrandID <= 0 {
		return nil, fmt.Errorf("brand id is required: %w", domain.ErrValidation)
	}
	c := &domain.Campaign{
		BrandID:    in.BrandID,
		Name:       name,
		IsActive:   true,
		TotalSpend: decimal.Zero,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign %q: %w", name, err)
	}
	return c, nil
}

// UpdateCampaign renames a campaign, moves it to another brand, or toggles
// it by hand. A manual toggle clears the budget-pause flag so the reset
// jobs do not treat the campaign as auto-paused. Without a toggle the
// flags are left to the store and the returned campaign carries the
// stored values.
func (u *AdminUseCase) UpdateCampaign(ctx context.Context, id int64, in port.CampaignInput) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			return nil, fmt.Errorf("campaign name is required: %w", domain.ErrValidation)
		}
		c.Name = name
	}
	if in.BrandID < 0 {
		return nil, fmt.Errorf("invalid brand id %d: %w", in.BrandID, domain.ErrValidation)
	}
	if in.BrandID > 0 {
		c.BrandID = in.BrandID
	}
	var status *domain.Status
	if in.IsActive != nil {
		status = &domain.Status{IsActive: *in.IsActive}
	}
	if err = u.repo.UpdateCampaign(ctx, c, status); err != nil {
		return nil, fmt.Errorf("update campaign %d: %w", id, err)
	}
	return c, nil
}

func (u *AdminUseCase) GetCampaign(ctx context.Context, id int64) (*port.CampaignDetails, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := u.repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule of campaign %d: %w", id, err)
	}
	return &port.CampaignDetails{Campaign: *c, Schedule: s}, nil
}

func (u *AdminUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, filter)
}

// SetSchedule attaches or replaces the dayparting window of a campaign.
func (u *AdminUseCase) SetSchedule(ctx context.Context, campaignID int64, start, end domain.TimeOfDay) (*domain.DaypartingSchedule, error) {
	s := domain.DaypartingSchedule{CampaignID: campaignID, Start: start, End: end}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := u.repo.UpsertSchedule(ctx, s); err != nil {
		return nil, fmt.Errorf("set schedule of campaign %d: %w", campaignID, err)
	}
	return &s, nil
}

func (u *AdminUseCase) RemoveSchedule(ctx context.Context, campaignID int64) error {
	if err := u.repo.DeleteSchedule(ctx, campaignID); err != nil {
		return fmt.Errorf("remove schedule of campaign %d: %w", campaignID, err)
	}
	return nil
}

// ListSpendLogs returns spend entries newest first. The limit defaults to
// 100 and is capped at 1000.
func (u *AdminUseCase) ListSpendLogs(ctx context.Context, filter port.SpendLogFilter) ([]domain.SpendLog, error) {
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultSpendLogLimit
	case filter.Limit > maxSpendLogLimit:
		filter.Limit = maxSpendLogLimit
	}
	return u.repo.ListSpendLogs(ctx, filter)
}

func validateBrand(in port.BrandInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	var errs []error
	if name == "" {
		errs = append(errs, errors.New("brand name is required"))
	}
	if err := validateBudget("daily budget", in.DailyBudget); err != nil {
		errs = append(errs, err)
	}
	if err := validateBudget("monthly budget", in.MonthlyBudget); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return "", fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
	}
	return name, nil
}

func validateBudget(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%s must not be negative", field)
	}
	if v.GreaterThan(domain.MaxBudget) {
		return fmt.Errorf("%s must not exceed %s", field, domain.MaxBudget.StringFixed(domain.MoneyPlaces))
	}
	if !v.Equal(v.Truncate(domain.MoneyPlaces)) {
		return fmt.Errorf("%s has more than %d decimal places", field, domain.MoneyPlaces)
	}
	return nil
}
