package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents an advertising campaign run under a brand.
// TotalSpend is cumulative and is never cleared by the period resets.
type Campaign struct {
	ID              int64
	BrandID         int64
	Name            string
	IsActive        bool
	PausedForBudget bool // set only when the last automatic pause was budget-caused
	TotalSpend      decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Status is the pair of activation flags owned by a campaign.
type Status struct {
	IsActive        bool
	PausedForBudget bool
}

// Status returns the current activation flags of c.
func (c Campaign) Status() Status {
	return Status{IsActive: c.IsActive, PausedForBudget: c.PausedForBudget}
}

// Valid reports whether the flags respect the pause invariant: a budget
// pause implies the campaign is inactive.
func (s Status) Valid() bool {
	return !(s.IsActive && s.PausedForBudget)
}

var (
	// StatusActive is the state of a running campaign.
	StatusActive = Status{IsActive: true}
	// StatusBudgetPaused is the state of a campaign stopped by a spend ceiling.
	StatusBudgetPaused = Status{PausedForBudget: true}
	// StatusPaused is the state of a campaign stopped for any other reason.
	StatusPaused = Status{}
)
