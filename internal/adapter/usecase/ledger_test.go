package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
	"spend-guard/internal/core/port/mocks"
)

func TestRecordSpendRejectsInvalidAmount(t *testing.T) {
	for _, amount := range []string{"0", "0.00", "-5", "0.001", "12.345", "123456789.00"} {
		t.Run(amount, func(t *testing.T) {
			// no expectations: any store call fails the test
			repo := mocks.NewMockBudgetRepository(t)
			ledger := NewLedgerUseCase(repo, time.Now)

			_, err := ledger.RecordSpend(context.Background(), 1, money(amount))
			require.ErrorIs(t, err, domain.ErrInvalidAmount)
		})
	}
}

func TestRecordSpendUnknownCampaign(t *testing.T) {
	repo := mocks.NewMockBudgetRepository(t)
	repo.EXPECT().
		RecordSpend(mock.Anything, int64(42), mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("campaign 42: %w", domain.ErrNotFound))

	ledger := NewLedgerUseCase(repo, time.Now)
	_, err := ledger.RecordSpend(context.Background(), 42, money("10"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSpendStampsEntryWithClock(t *testing.T) {
	at := time.Date(2024, time.May, 3, 14, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))
	amount := money("20")
	receipt := &port.SpendReceipt{
		Entry:    domain.SpendLog{ID: 9, CampaignID: 1, Amount: amount, CreatedAt: at.UTC()},
		Campaign: domain.Campaign{ID: 1, BrandID: 1, IsActive: true, TotalSpend: money("120")},
		Brand:    testBrand(1, "100", "110", "1000", "510"),
	}

	repo := mocks.NewMockBudgetRepository(t)
	repo.EXPECT().
		RecordSpend(mock.Anything, int64(1), amount, at.UTC()).
		Return(receipt, nil)

	ledger := NewLedgerUseCase(repo, func() time.Time { return at })
	got, err := ledger.RecordSpend(context.Background(), 1, amount)
	require.NoError(t, err)
	assert.Same(t, receipt, got)

	// The ledger never pauses the campaign itself.
	assert.True(t, got.Campaign.IsActive)
	assert.True(t, got.Brand.DailyExceeded())
	assert.True(t, got.CampaignTotalBefore().Equal(money("100")))
	assert.True(t, got.BrandBefore().DailySpend.Equal(money("90")))
	assert.True(t, got.BrandBefore().MonthlySpend.Equal(money("490")))
}

// TestRecordSpendIsAdditive ensures repeated and concurrent spends each
// reach the store exactly once.
func TestRecordSpendIsAdditive(t *testing.T) {
	repo := mocks.NewMockBudgetRepository(t)

	var (
		mu       sync.Mutex
		campaign = decimal.Zero
		daily    = decimal.Zero
		monthly  = decimal.Zero
	)
	repo.EXPECT().
		RecordSpend(mock.Anything, int64(1), mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id int64, amount decimal.Decimal, at time.Time) (*port.SpendReceipt, error) {
			mu.Lock()
			defer mu.Unlock()
			campaign = campaign.Add(amount)
			daily = daily.Add(amount)
			monthly = monthly.Add(amount)
			return &port.SpendReceipt{
				Entry:    domain.SpendLog{CampaignID: id, Amount: amount, CreatedAt: at},
				Campaign: domain.Campaign{ID: id, TotalSpend: campaign},
				Brand:    domain.Brand{DailySpend: daily, MonthlySpend: monthly},
			}, nil
		})

	ledger := NewLedgerUseCase(repo, time.Now)

	_, err := ledger.RecordSpend(context.Background(), 1, money("7.50"))
	require.NoError(t, err)
	_, err = ledger.RecordSpend(context.Background(), 1, money("7.50"))
	require.NoError(t, err)
	assert.True(t, campaign.Equal(money("15")), "got %s", campaign)

	var wg sync.WaitGroup
	count := 20
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			_, _ = ledger.RecordSpend(context.Background(), 1, money("0.25"))
		}()
	}
	wg.Wait()

	// 15 + 20 * 0.25
	assert.True(t, campaign.Equal(money("20")), "campaign total %s", campaign)
	assert.True(t, daily.Equal(money("20")), "daily spend %s", daily)
	assert.True(t, monthly.Equal(money("20")), "monthly spend %s", monthly)
}
