package domain

import "time"

// Decision is the desired activation state of a campaign.
type Decision struct {
	Active bool
	Reason PauseReason
}

// Evaluate decides whether campaign c should be running at now. The
// dayparting window is checked first, then the brand's daily ceiling, then
// its monthly ceiling. schedule may be nil. now is read in its own location.
func Evaluate(c Campaign, b Brand, schedule *DaypartingSchedule, now time.Time) Decision {
	if schedule != nil && !schedule.Contains(ClockOf(now)) {
		return Decision{Reason: ReasonOutOfSchedule}
	}
	if b.DailyExceeded() {
		return Decision{Reason: ReasonDailyBudgetExceeded}
	}
	if b.MonthlyExceeded() {
		return Decision{Reason: ReasonMonthlyBudgetExceeded}
	}
	return Decision{Active: true, Reason: ReasonNone}
}

// Status returns the flags a campaign should carry after this decision.
func (d Decision) Status() Status {
	if d.Active {
		return StatusActive
	}
	return Status{PausedForBudget: d.Reason.IsBudget()}
}
