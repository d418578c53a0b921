package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
	"spend-guard/internal/core/port/mocks"
)

func TestCreateBrandValidation(t *testing.T) {
	tests := []struct {
		name string
		in   port.BrandInput
	}{
		{name: "empty name", in: port.BrandInput{Name: "  ", DailyBudget: money("1"), MonthlyBudget: money("1")}},
		{name: "negative daily", in: port.BrandInput{Name: "acme", DailyBudget: money("-1"), MonthlyBudget: money("1")}},
		{name: "negative monthly", in: port.BrandInput{Name: "acme", DailyBudget: money("1"), MonthlyBudget: money("-0.01")}},
		{name: "sub-cent budget", in: port.BrandInput{Name: "acme", DailyBudget: money("1.005"), MonthlyBudget: money("1")}},
		{name: "budget wider than the column", in: port.BrandInput{Name: "acme", DailyBudget: money("1"), MonthlyBudget: money("10000000000000")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAdminRepository(t)
			_, err := NewAdminUseCase(repo).CreateBrand(context.Background(), tt.in)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateBrandStartsWithZeroSpend(t *testing.T) {
	repo := mocks.NewMockAdminRepository(t)
	repo.EXPECT().
		CreateBrand(mock.Anything, mock.AnythingOfType("*domain.Brand")).
		Run(func(_ context.Context, b *domain.Brand) { b.ID = 11 }).
		Return(nil)

	b, err := NewAdminUseCase(repo).CreateBrand(context.Background(), port.BrandInput{
		Name:          " Acme ",
		DailyBudget:   money("0"),
		MonthlyBudget: money("2500.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.ID)
	assert.Equal(t, "Acme", b.Name)
	assert.True(t, b.DailySpend.IsZero())
	assert.True(t, b.MonthlySpend.IsZero())
}

func TestUpdateBrandKeepsSpend(t *testing.T) {
	repo := mocks.NewMockAdminRepository(t)
	stored := testBrand(3, "100", "80", "1000", "500")
	repo.EXPECT().GetBrand(mock.Anything, int64(3)).Return(&stored, nil)
	repo.EXPECT().
		UpdateBrand(mock.Anything, mock.MatchedBy(func(b *domain.Brand) bool {
			return b.DailyBudget.Equal(money("200")) && b.DailySpend.Equal(money("80")) && b.MonthlySpend.Equal(money("500"))
		})).
		Return(nil)

	_, err := NewAdminUseCase(repo).UpdateBrand(context.Background(), 3, port.BrandInput{
		Name:          "brand",
		DailyBudget:   money("200"),
		MonthlyBudget: money("1000"),
	})
	require.NoError(t, err)
}

func TestUpdateCampaignManualToggleClearsBudgetFlag(t *testing.T) {
	repo := mocks.NewMockAdminRepository(t)
	stored := &domain.Campaign{ID: 4, BrandID: 1, Name: "spring", PausedForBudget: true}
	repo.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(stored, nil)
	repo.EXPECT().
		UpdateCampaign(mock.Anything, stored, &domain.StatusActive).
		Run(func(_ context.Context, c *domain.Campaign, s *domain.Status) {
			c.IsActive, c.PausedForBudget = s.IsActive, s.PausedForBudget
		}).
		Return(nil)

	active := true
	c, err := NewAdminUseCase(repo).UpdateCampaign(context.Background(), 4, port.CampaignInput{IsActive: &active})
	require.NoError(t, err)
	assert.True(t, c.IsActive)
	assert.False(t, c.PausedForBudget)
	assert.Equal(t, "spring", c.Name)
}

func TestUpdateCampaignManualPauseClearsBudgetFlag(t *testing.T) {
	repo := mocks.NewMockAdminRepository(t)
	stored := &domain.Campaign{ID: 4, BrandID: 1, Name: "spring", PausedForBudget: true}
	repo.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(stored, nil)
	repo.EXPECT().UpdateCampaign(mock.Anything, stored, &domain.StatusPaused).Return(nil)

	inactive := false
	_, err := NewAdminUseCase(repo).UpdateCampaign(context.Background(), 4, port.CampaignInput{IsActive: &inactive})
	require.NoError(t, err)
}

func TestUpdateCampaignRenameLeavesFlagsToStore(t *testing.T) {
	repo := mocks.NewMockAdminRepository(t)
	// snapshot read before a cycle paused the campaign for budget
	stored := &domain.Campaign{ID: 4, BrandID: 1, Name: "spring", IsActive: true}
	repo.EXPECT().GetCampaign(mock.Anything, int64(4)).Return(stored, nil)
	repo.EXPECT().
		UpdateCampaign(mock.Anything, mock.MatchedBy(func(c *domain.Campaign) bool { return c.Name == "summer" }), (*domain.Status)(nil)).
		Run(func(_ context.Context, c *domain.Campaign, _ *domain.Status) {
			c.IsActive, c.PausedForBudget = false, true
		}).
		Return(nil)

	c, err := NewAdminUseCase(repo).UpdateCampaign(context.Background(), 4, port.CampaignInput{Name: "summer"})
	require.NoError(t, err)
	assert.Equal(t, "summer", c.Name)
	assert.False(t, c.IsActive)
	assert.True(t, c.PausedForBudget)
}

func TestCreateCampaignDefaultsToActive(t *testing.T) {
	repo := mocks.NewMockAdminRepository(t)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	c, err := NewAdminUseCase(repo).CreateCampaign(context.Background(), port.CampaignInput{BrandID: 1, Name: "spring"})
	require.NoError(t, err)
	assert.True(t, c.IsActive)
	assert.False(t, c.PausedForBudget)

	_, err = NewAdminUseCase(repo).CreateCampaign(context.Background(), port.CampaignInput{Name: "no brand"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetScheduleRejectsReversedWindow(t *testing.T) {
	repo := mocks.NewMockAdminRepository(t)
	_, err := NewAdminUseCase(repo).SetSchedule(context.Background(), 1, domain.NewTimeOfDay(18, 0, 0), domain.NewTimeOfDay(9, 0, 0))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestListSpendLogsClampsLimit(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: 0, want: 100},
		{in: 25, want: 25},
		{in: 5000, want: 1000},
	}
	for _, tt := range tests {
		repo := mocks.NewMockAdminRepository(t)
		repo.EXPECT().ListSpendLogs(mock.Anything, port.SpendLogFilter{Limit: tt.want}).Return(nil, nil)
		_, err := NewAdminUseCase(repo).ListSpendLogs(context.Background(), port.SpendLogFilter{Limit: tt.in})
		require.NoError(t, err)
	}
}
