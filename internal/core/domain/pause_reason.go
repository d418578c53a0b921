package domain

// PauseReason explains why a campaign should not be running.
type PauseReason uint8

const (
	ReasonNone PauseReason = iota
	ReasonOutOfSchedule
	ReasonDailyBudgetExceeded
	ReasonMonthlyBudgetExceeded
)

// IsBudget reports whether the reason is one of the spend ceilings.
func (r PauseReason) IsBudget() bool {
	return r == ReasonDailyBudgetExceeded || r == ReasonMonthlyBudgetExceeded
}

func (r PauseReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOutOfSchedule:
		return "out_of_schedule"
	case ReasonDailyBudgetExceeded:
		return "daily_budget_exceeded"
	case ReasonMonthlyBudgetExceeded:
		return "monthly_budget_exceeded"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r PauseReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
