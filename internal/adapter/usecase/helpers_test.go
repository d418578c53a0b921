package usecase

import (
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testBrand(id int64, dailyBudget, dailySpend, monthlyBudget, monthlySpend string) domain.Brand {
	return domain.Brand{
		ID:            id,
		Name:          "brand",
		DailyBudget:   money(dailyBudget),
		DailySpend:    money(dailySpend),
		MonthlyBudget: money(monthlyBudget),
		MonthlySpend:  money(monthlySpend),
	}
}

func testView(id int64, b domain.Brand, status domain.Status, schedule *domain.DaypartingSchedule) port.CampaignView {
	return port.CampaignView{
		Campaign: domain.Campaign{
			ID:              id,
			BrandID:         b.ID,
			Name:            "campaign",
			IsActive:        status.IsActive,
			PausedForBudget: status.PausedForBudget,
			TotalSpend:      decimal.Zero,
		},
		Brand:    b,
		Schedule: schedule,
	}
}

func officeHours() *domain.DaypartingSchedule {
	return &domain.DaypartingSchedule{Start: domain.NewTimeOfDay(9, 0, 0), End: domain.NewTimeOfDay(17, 0, 0)}
}

func noon() time.Time {
	return time.Date(2024, time.March, 12, 12, 0, 0, 0, time.UTC)
}
