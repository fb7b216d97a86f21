package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"eventdesk/internal/ports/input"
)

// Scheduler runs the reminder and expiry sweeps on a fixed schedule. Each
// invocation is a bounded batch; the sweeps own no timers themselves.
type Scheduler struct {
	c        *cron.Cron
	reminder input.ReminderUseCase
}

func NewScheduler(reminder input.ReminderUseCase) *Scheduler {
	return &Scheduler{
		c:        cron.New(),
		reminder: reminder,
	}
}

// Start registers the sweeps under the given cron spec (e.g. "@every 10m")
// and starts the scheduler in its own goroutine.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.c.AddFunc(spec, s.runSweeps); err != nil {
		return err
	}
	s.c.Start()
	log.Info().Str("schedule", spec).Msg("cron scheduler started")
	return nil
}

func (s *Scheduler) runSweeps() {
	ctx := context.Background()
	now := time.Now()
	if _, err := s.reminder.SendUpcomingEventReminders(ctx, now); err != nil {
		log.Error().Err(err).Msg("reminder sweep failed")
	}
	if _, err := s.reminder.UpdateExpiredEventStatus(ctx, now); err != nil {
		log.Error().Err(err).Msg("expiry sweep failed")
	}
}

// Stop stops scheduling new sweeps and waits for a running one to finish.
func (s *Scheduler) Stop() {
	<-s.c.Stop().Done()
}
