package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
	"spend-guard/internal/core/port/mocks"
)

func midnight(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResetDaily(t *testing.T) {
	tests := []struct {
		name         string
		brand        domain.Brand
		reactivated  bool
		stillBlocked int
	}{
		{
			name:        "monthly headroom reactivates",
			brand:       testBrand(1, "100", "0", "100", "40"),
			reactivated: true,
		},
		{
			name:         "monthly ceiling met keeps the pause",
			brand:        testBrand(1, "100", "0", "100", "100"),
			stillBlocked: 1,
		},
		{
			name:         "monthly ceiling exceeded keeps the pause",
			brand:        testBrand(1, "100", "0", "100", "130"),
			stillBlocked: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBudgetRepository(t)
			notifier := mocks.NewMockNotifier(t)
			now := midnight(2024, time.March, 13)

			view := testView(7, tt.brand, domain.StatusBudgetPaused, officeHours())
			repo.EXPECT().ResetDailySpend(mock.Anything).Return(int64(3), nil).Once()
			repo.EXPECT().ListBudgetPausedCampaigns(mock.Anything).Return([]port.CampaignView{view}, nil)
			if tt.reactivated {
				repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(7), domain.StatusActive).Return(nil).Once()
				notifier.EXPECT().Publish(mock.Anything, domain.StatusChange{
					CampaignID:   7,
					CampaignName: view.Campaign.Name,
					BrandID:      1,
					Kind:         domain.ChangeReactivated,
					Reason:       domain.ReasonNone,
					Source:       domain.SourceDailyReset,
					At:           now,
				}).Once()
			}

			uc := NewControlUseCase(repo, notifier, discardLogger(), 1)
			report, err := uc.ResetDaily(context.Background(), now)
			require.NoError(t, err)
			assert.Equal(t, "daily", report.Period)
			assert.Equal(t, int64(3), report.BrandsReset)
			assert.Equal(t, tt.stillBlocked, report.StillBlocked)
			if tt.reactivated {
				assert.Equal(t, 1, report.Reactivated)
			} else {
				assert.Zero(t, report.Reactivated)
			}
		})
	}
}

func TestResetDailyZeroesEvenWithoutPausedCampaigns(t *testing.T) {
	repo := mocks.NewMockBudgetRepository(t)
	notifier := mocks.NewMockNotifier(t)
	repo.EXPECT().ResetDailySpend(mock.Anything).Return(int64(5), nil).Twice()
	repo.EXPECT().ListBudgetPausedCampaigns(mock.Anything).Return(nil, nil).Twice()

	uc := NewControlUseCase(repo, notifier, discardLogger(), 1)
	now := midnight(2024, time.March, 13)
	for i := 0; i < 2; i++ {
		report, err := uc.ResetDaily(context.Background(), now)
		require.NoError(t, err)
		assert.Equal(t, int64(5), report.BrandsReset)
		assert.Zero(t, report.Reactivated)
	}
}

func TestResetDailyStoreFailure(t *testing.T) {
	repo := mocks.NewMockBudgetRepository(t)
	notifier := mocks.NewMockNotifier(t)
	repo.EXPECT().ResetDailySpend(mock.Anything).Return(int64(0), domain.ErrPersistence)

	uc := NewControlUseCase(repo, notifier, discardLogger(), 1)
	_, err := uc.ResetDaily(context.Background(), midnight(2024, time.March, 13))
	require.ErrorIs(t, err, domain.ErrPersistence)
}

func TestResetDailyContinuesAfterFailure(t *testing.T) {
	repo := mocks.NewMockBudgetRepository(t)
	notifier := mocks.NewMockNotifier(t)
	b := testBrand(1, "100", "0", "1000", "10")

	repo.EXPECT().ResetDailySpend(mock.Anything).Return(int64(1), nil)
	repo.EXPECT().ListBudgetPausedCampaigns(mock.Anything).Return([]port.CampaignView{
		testView(1, b, domain.StatusBudgetPaused, nil),
		testView(2, b, domain.StatusBudgetPaused, nil),
	}, nil)
	repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusActive).Return(errors.New("deadlock detected"))
	repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(2), domain.StatusActive).Return(nil)
	notifier.EXPECT().Publish(mock.Anything, mock.Anything).Once()

	uc := NewControlUseCase(repo, notifier, discardLogger(), 1)
	report, err := uc.ResetDaily(context.Background(), midnight(2024, time.March, 13))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Reactivated)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, int64(1), report.Failures[0].CampaignID)
}

func TestResetMonthlySkipsOtherDays(t *testing.T) {
	// no expectations: any store call fails the test
	repo := mocks.NewMockBudgetRepository(t)
	notifier := mocks.NewMockNotifier(t)
	uc := NewControlUseCase(repo, notifier, discardLogger(), 1)

	for day := 2; day <= 31; day++ {
		now := time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC)
		report, err := uc.ResetMonthly(context.Background(), now)
		require.NoError(t, err)
		assert.True(t, report.Skipped, "day %d", day)
	}
}

func TestResetMonthlyReactivatesIgnoringDailyCeiling(t *testing.T) {
	repo := mocks.NewMockBudgetRepository(t)
	notifier := mocks.NewMockNotifier(t)

	// still over the daily ceiling: the monthly reset does not look at it
	dailyOut := testBrand(1, "100", "150", "1000", "0")
	headroom := testBrand(2, "100", "0", "1000", "0")

	repo.EXPECT().ResetMonthlySpend(mock.Anything).Return(int64(2), nil).Once()
	repo.EXPECT().ListBudgetPausedCampaigns(mock.Anything).Return([]port.CampaignView{
		testView(1, dailyOut, domain.StatusBudgetPaused, nil),
		testView(2, headroom, domain.StatusBudgetPaused, nil),
	}, nil)
	repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(1), domain.StatusActive).Return(nil).Once()
	repo.EXPECT().UpdateCampaignStatus(mock.Anything, int64(2), domain.StatusActive).Return(nil).Once()
	notifier.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(c domain.StatusChange) bool {
			return c.Kind == domain.ChangeReactivated && c.Source == domain.SourceMonthlyReset
		})).
		Times(2)

	uc := NewControlUseCase(repo, notifier, discardLogger(), 1)
	report, err := uc.ResetMonthly(context.Background(), midnight(2024, time.April, 1))
	require.NoError(t, err)
	assert.False(t, report.Skipped)
	assert.Equal(t, "monthly", report.Period)
	assert.Equal(t, 2, report.Reactivated)
	assert.Zero(t, report.StillBlocked)
}

func TestResetSkipsCampaignsNotBudgetPaused(t *testing.T) {
	repo := mocks.NewMockBudgetRepository(t)
	notifier := mocks.NewMockNotifier(t)
	b := testBrand(1, "100", "0", "1000", "0")

	repo.EXPECT().ResetMonthlySpend(mock.Anything).Return(int64(1), nil)
	repo.EXPECT().ListBudgetPausedCampaigns(mock.Anything).Return([]port.CampaignView{
		testView(1, b, domain.StatusPaused, nil),
		testView(2, b, domain.StatusActive, nil),
	}, nil)

	uc := NewControlUseCase(repo, notifier, discardLogger(), 1)
	report, err := uc.ResetMonthly(context.Background(), midnight(2024, time.May, 1))
	require.NoError(t, err)
	assert.Zero(t, report.Reactivated)
}
