package port

import (
	"context"

	"spend-guard/internal/core/domain"
)

// Notifier receives every campaign transition the control loop applies.
// Publish must not block for long; it is called inline with the writes.
type Notifier interface {
	Publish(ctx context.Context, change domain.StatusChange)
}
