package input

import (
	"context"
	"time"
)

// SweepSummary is the outcome of one batch sweep. Individual item failures are
// logged and isolated; the summary is the only aggregate result.
type SweepSummary struct {
	Attempted int
	Succeeded int
}

type ReminderUseCase interface {
	SendUpcomingEventReminders(ctx context.Context, now time.Time) (SweepSummary, error)
	UpdateExpiredEventStatus(ctx context.Context, now time.Time) (SweepSummary, error)
}
