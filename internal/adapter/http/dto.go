package httpadapter

import (
	"time"

	"github.com/shopspring/decimal"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
)

type brandResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	DailyBudget   decimal.Decimal `json:"daily_budget"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	DailySpend    decimal.Decimal `json:"daily_spend"`
	MonthlySpend  decimal.Decimal `json:"monthly_spend"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func newBrandResponse(b domain.Brand) brandResponse {
	return brandResponse{
		ID:            b.ID,
		Name:          b.Name,
		DailyBudget:   b.DailyBudget,
		MonthlyBudget: b.MonthlyBudget,
		DailySpend:    b.DailySpend,
		MonthlySpend:  b.MonthlySpend,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type scheduleBody struct {
	Start domain.TimeOfDay `json:"start"`
	End   domain.TimeOfDay `json:"end"`
}

type campaignResponse struct {
	ID              int64           `json:"id"`
	BrandID         int64           `json:"brand_id"`
	Name            string          `json:"name"`
	IsActive        bool            `json:"is_active"`
	PausedForBudget bool            `json:"paused_for_budget"`
	TotalSpend      decimal.Decimal `json:"total_spend"`
	Schedule        *scheduleBody   `json:"schedule,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func newCampaignResponse(c domain.Campaign, s *domain.DaypartingSchedule) campaignResponse {
	resp := campaignResponse{
		ID:              c.ID,
		BrandID:         c.BrandID,
		Name:            c.Name,
		IsActive:        c.IsActive,
		PausedForBudget: c.PausedForBudget,
		TotalSpend:      c.TotalSpend,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if s != nil {
		resp.Schedule = &scheduleBody{Start: s.Start, End: s.End}
	}
	return resp
}

type spendLogResponse struct {
	ID         int64           `json:"id"`
	CampaignID int64           `json:"campaign_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
}

func newSpendLogResponse(l domain.SpendLog) spendLogResponse {
	return spendLogResponse{ID: l.ID, CampaignID: l.CampaignID, Amount: l.Amount, CreatedAt: l.CreatedAt}
}

type spendRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type spendResponse struct {
	Entry    spendLogResponse `json:"entry"`
	Campaign campaignResponse `json:"campaign"`
	Brand    brandResponse    `json:"brand"`
	// Warnings lists the ceilings the brand has met or exceeded after
	// this entry. Enforcement happens on the next reconciliation cycle.
	Warnings []string `json:"warnings"`
}

func newSpendResponse(rc *port.SpendReceipt) spendResponse {
	warnings := []string{}
	if rc.Brand.DailyExceeded() {
		warnings = append(warnings, "daily_budget_exceeded")
	}
	if rc.Brand.MonthlyExceeded() {
		warnings = append(warnings, "monthly_budget_exceeded")
	}
	return spendResponse{
		Entry:    newSpendLogResponse(rc.Entry),
		Campaign: newCampaignResponse(rc.Campaign, nil),
		Brand:    newBrandResponse(rc.Brand),
		Warnings: warnings,
	}
}

type failureResponse struct {
	CampaignID int64  `json:"campaign_id"`
	Error      string `json:"error"`
}

func newFailures(in []port.CampaignFailure) []failureResponse {
	out := make([]failureResponse, 0, len(in))
	for _, f := range in {
		out = append(out, failureResponse{CampaignID: f.CampaignID, Error: f.Err.Error()})
	}
	return out
}

type cycleResponse struct {
	CycleID     string            `json:"cycle_id"`
	StartedAt   time.Time         `json:"started_at"`
	Evaluated   int               `json:"evaluated"`
	Paused      int               `json:"paused"`
	Reactivated int               `json:"reactivated"`
	Corrected   int               `json:"corrected"`
	Failures    []failureResponse `json:"failures"`
}

type resetResponse struct {
	Period       string            `json:"period"`
	Skipped      bool              `json:"skipped"`
	BrandsReset  int64             `json:"brands_reset"`
	Reactivated  int               `json:"reactivated"`
	StillBlocked int               `json:"still_blocked"`
	Failures     []failureResponse `json:"failures"`
}
