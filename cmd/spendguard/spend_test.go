package main

import (
	"bytes"
	"context"
	"fmt"
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

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRunSpendPrintsReport(t *testing.T) {
	ledger := mocks.NewMockSpendLedger(t)
	ledger.EXPECT().RecordSpend(mock.Anything, int64(42), mock.Anything).
		Run(func(_ context.Context, _ int64, amount decimal.Decimal) {
			assert.True(t, amount.Equal(dec("15.50")))
		}).
		Return(&port.SpendReceipt{
			Entry:    domain.SpendLog{ID: 1, CampaignID: 42, Amount: dec("15.50")},
			Campaign: domain.Campaign{ID: 42, Name: "Spring Hiking", TotalSpend: dec("115.50"), IsActive: true},
			Brand: domain.Brand{
				Name:          "Acme",
				DailyBudget:   dec("100"),
				MonthlyBudget: dec("115.50"),
				DailySpend:    dec("90.50"),
				MonthlySpend:  dec("115.50"),
			},
		}, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runSpend(context.Background(), &out, ledger, []string{"42", "15.50"}))

	want := "Campaign: Spring Hiking (Brand: Acme)\n" +
		"Current spend - Campaign: $100.00, Brand Daily: $75.00/100.00, Brand Monthly: $100.00/115.50\n" +
		"Successfully logged $15.50 spend for 'Spring Hiking'\n" +
		"Updated spend - Campaign: $115.50, Brand Daily: $90.50/100.00, Brand Monthly: $115.50/115.50\n" +
		"WARNING: Monthly budget exceeded! Campaign should be paused soon.\n"
	assert.Equal(t, want, out.String())
}

func TestRunSpendBothWarnings(t *testing.T) {
	ledger := mocks.NewMockSpendLedger(t)
	ledger.EXPECT().RecordSpend(mock.Anything, int64(1), mock.Anything).Return(&port.SpendReceipt{
		Entry:    domain.SpendLog{Amount: dec("20")},
		Campaign: domain.Campaign{Name: "Clearance", TotalSpend: dec("20")},
		Brand: domain.Brand{
			Name:          "Globex",
			DailyBudget:   dec("20"),
			MonthlyBudget: dec("20"),
			DailySpend:    dec("20"),
			MonthlySpend:  dec("20"),
		},
	}, nil).Once()

	var out bytes.Buffer
	require.NoError(t, runSpend(context.Background(), &out, ledger, []string{"1", "20"}))
	assert.Contains(t, out.String(), "Daily budget exceeded")
	assert.Contains(t, out.String(), "Monthly budget exceeded")
}

func TestRunSpendFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"unknown campaign", fmt.Errorf("campaign 7: %w", domain.ErrNotFound), "Campaign with ID 7 does not exist.\n"},
		{"invalid amount", fmt.Errorf("spend 0: %w", domain.ErrInvalidAmount), "Invalid amount 0: must be positive, at most 99999999.99, with at most 2 decimal places.\n"},
		{"total overflow", fmt.Errorf("brand 1: numeric field overflow: %w", domain.ErrValidation), "Spend rejected: brand 1: numeric field overflow: validation failed\n"},
		{"store failure", fmt.Errorf("%w: timeout", domain.ErrPersistence), "An error occurred: persistence failure: timeout\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := mocks.NewMockSpendLedger(t)
			ledger.EXPECT().RecordSpend(mock.Anything, int64(7), mock.Anything).Return(nil, tt.err).Once()

			var out bytes.Buffer
			err := runSpend(context.Background(), &out, ledger, []string{"7", "0"})

			require.ErrorIs(t, err, errReported)
			assert.ErrorIs(t, err, tt.err)
			assert.NotContains(t, out.String(), "Successfully")
			assert.Equal(t, tt.message, out.String())
		})
	}
}

func TestRunSpendBadArguments(t *testing.T) {
	ledger := mocks.NewMockSpendLedger(t)
	var out bytes.Buffer

	assert.Error(t, runSpend(context.Background(), &out, ledger, []string{"abc", "1"}))
	assert.Error(t, runSpend(context.Background(), &out, ledger, []string{"1", "ten"}))
	assert.Empty(t, out.String())
}

func TestResolveNow(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	wall := time.Date(2026, 3, 31, 23, 30, 0, 0, time.UTC)

	now, err := resolveNow("", wall, berlin)
	require.NoError(t, err)
	assert.Equal(t, 1, now.Day(), "23:30 UTC is already April 1st in Berlin")

	now, err = resolveNow("2026-05-01T00:00:00Z", wall, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.May, now.Month())

	_, err = resolveNow("tomorrow", wall, time.UTC)
	assert.Error(t, err)
}

func TestPrintReset(t *testing.T) {
	var out bytes.Buffer
	printReset(&out, &port.ResetReport{Period: "monthly", Skipped: true})
	assert.Equal(t, "Skipped monthly reset: not the first day of the month\n", out.String())

	out.Reset()
	printReset(&out, &port.ResetReport{
		Period:       "daily",
		BrandsReset:  3,
		Reactivated:  2,
		StillBlocked: 1,
		Failures:     []port.CampaignFailure{{CampaignID: 9, Err: fmt.Errorf("boom")}},
	})
	assert.Equal(t, "Reset daily spend on 3 brands: reactivated 2, still blocked 1\n  campaign 9: boom\n", out.String())
}
