package domain

import "time"

// ChangeKind classifies a status transition.
type ChangeKind string

const (
	ChangePaused        ChangeKind = "paused"
	ChangeReactivated   ChangeKind = "reactivated"
	ChangeFlagCorrected ChangeKind = "flag_corrected"
)

// ChangeSource names the job that produced a transition.
type ChangeSource string

const (
	SourceCycle        ChangeSource = "cycle"
	SourceDailyReset   ChangeSource = "daily_reset"
	SourceMonthlyReset ChangeSource = "monthly_reset"
)

// StatusChange describes one applied campaign transition.
type StatusChange struct {
	CampaignID   int64
	CampaignName string
	BrandID      int64
	Kind         ChangeKind
	Reason       PauseReason
	Source       ChangeSource
	At           time.Time
}
