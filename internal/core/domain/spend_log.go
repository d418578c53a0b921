package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SpendLog is an immutable record of a single spend event.
type SpendLog struct {
	ID         int64
	CampaignID int64
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// MoneyPlaces is the number of fractional digits currency values carry.
const MoneyPlaces = 2

var (
	// MaxAmount is the largest single spend the ledger stores (NUMERIC(10,2)).
	MaxAmount = decimal.RequireFromString("99999999.99")
	// MaxBudget is the largest budget or accumulated spend (NUMERIC(15,2)).
	MaxBudget = decimal.RequireFromString("9999999999999.99")
)

// ValidAmount reports whether amount can be recorded as spend: strictly
// positive, at most MaxAmount and representable with MoneyPlaces
// fractional digits.
func ValidAmount(amount decimal.Decimal) bool {
	if !amount.IsPositive() || amount.GreaterThan(MaxAmount) {
		return false
	}
	return amount.Equal(amount.Truncate(MoneyPlaces))
}
