package notify

import (
	"context"
	"log/slog"

	"spend-guard/internal/core/domain"
	"spend-guard/internal/core/port"
	"spend-guard/internal/metrics"
)

var _ port.Notifier = (*Notifier)(nil)

// Notifier reports campaign transitions as structured log records and
// counts them in spendguard_campaign_transitions_total.
type Notifier struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates a Notifier. m may be nil when metrics are disabled.
func New(logger *slog.Logger, m *metrics.Metrics) *Notifier {
	return &Notifier{
		logger:  logger.With("component", "notifier"),
		metrics: m,
	}
}

// Publish logs change and increments the transition counter. Budget pauses
// are logged at warn level so they stand out from routine dayparting.
func (n *Notifier) Publish(ctx context.Context, change domain.StatusChange) {
	level := slog.LevelInfo
	if change.Kind == domain.ChangePaused && change.Reason.IsBudget() {
		level = slog.LevelWarn
	}
	n.logger.LogAttrs(ctx, level, message(change.Kind),
		slog.Int64("campaign_id", change.CampaignID),
		slog.String("campaign", change.CampaignName),
		slog.Int64("brand_id", change.BrandID),
		slog.String("reason", change.Reason.String()),
		slog.String("source", string(change.Source)),
		slog.Time("at", change.At),
	)
	n.metrics.IncTransition(string(change.Kind), change.Reason.String(), string(change.Source))
}

func message(kind domain.ChangeKind) string {
	switch kind {
	case domain.ChangePaused:
		return "campaign paused"
	case domain.ChangeReactivated:
		return "campaign reactivated"
	case domain.ChangeFlagCorrected:
		return "campaign budget flag corrected"
	default:
		return "campaign status changed"
	}
}
