package application

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
	"eventdesk/pkg/timefmt"
)

// Reminders fire once per event inside a [now+23h, now+25h] window. The
// 2-hour tolerance absorbs sweep-interval drift; the reminder_sent flag keeps
// the send at-most-once even when consecutive sweeps overlap the window.
const (
	reminderWindowStart = 23 * time.Hour
	reminderWindowEnd   = 25 * time.Hour
)

var _ input.ReminderUseCase = (*ReminderService)(nil)

// ReminderService runs the time-triggered sweeps: 24h-ahead reminder mail and
// expiry of past events. It is invoked by an external scheduler and holds no
// timers of its own.
type ReminderService struct {
	eventRepo output.EventRepository
	resolver  *ParticipantResolver
	mailer    output.Mailer
}

func NewReminderService(
	eventRepo output.EventRepository,
	resolver *ParticipantResolver,
	mailer output.Mailer,
) *ReminderService {
	return &ReminderService{
		eventRepo: eventRepo,
		resolver:  resolver,
		mailer:    mailer,
	}
}

// SendUpcomingEventReminders mails every participant of events starting in
// roughly 24 hours. An event's reminder_sent flag is only set when every
// recipient was mailed successfully; otherwise the event stays eligible and
// the next sweep retries. One event's failure never aborts the others.
func (s *ReminderService) SendUpcomingEventReminders(ctx context.Context, now time.Time) (input.SweepSummary, error) {
	windowStart := now.Add(reminderWindowStart)
	windowEnd := now.Add(reminderWindowEnd)

	events, err := s.eventRepo.FindNeedingReminder(ctx, windowStart, windowEnd)
	if err != nil {
		return input.SweepSummary{}, fmt.Errorf("find events needing reminder: %w", err)
	}
	if len(events) == 0 {
		log.Info().Msg("no events need reminder mail")
		return input.SweepSummary{}, nil
	}

	summary := input.SweepSummary{Attempted: len(events)}
	for i := range events {
		event := &events[i]
		if err := s.remindEvent(ctx, event); err != nil {
			log.Error().Err(err).Uint("event_id", event.ID).Msg("event reminder failed")
			continue
		}
		summary.Succeeded++
	}
	log.Info().Int("sent", summary.Succeeded).Int("total", summary.Attempted).
		Msg("reminder sweep finished")
	return summary, nil
}

func (s *ReminderService) remindEvent(ctx context.Context, event *entities.Event) error {
	audience, err := s.resolver.Resolve(ctx, event)
	if err != nil {
		return err
	}
	if len(audience) == 0 {
		log.Warn().Uint("event_id", event.ID).Msg("no participants to remind, skipping")
		return nil
	}

	names := make([]string, len(audience))
	for i, user := range audience {
		names[i] = user.DisplayName
	}

	allSent := true
	for _, user := range audience {
		data := map[string]any{
			"DisplayName":      user.DisplayName,
			"EventTitle":       event.Title,
			"StartsAt":         timefmt.EventDateTime(event.StartsAt),
			"ParticipantCount": len(audience),
			"Participants":     names,
		}
		if err := s.mailer.Send(ctx, "event_reminder", user.Email, user.Locale, data); err != nil {
			log.Error().Err(err).Str("email", user.Email).Uint("event_id", event.ID).
				Msg("send reminder mail")
			allSent = false
			continue
		}
		log.Info().Str("email", user.Email).Uint("event_id", event.ID).Msg("reminder mail sent")
	}
	if !allSent {
		// Leave reminder_sent unset so the next sweep retries the event.
		return fmt.Errorf("reminder mail failed for some participants of event %d", event.ID)
	}

	if err := s.eventRepo.MarkReminderSent(ctx, event.ID); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}
	log.Info().Uint("event_id", event.ID).Int("participants", len(audience)).
		Msg("reminder sent for event")
	return nil
}

// UpdateExpiredEventStatus flips past events from active to expired. The query
// predicate excludes non-active events, so re-running the sweep is a no-op for
// anything already expired.
func (s *ReminderService) UpdateExpiredEventStatus(ctx context.Context, now time.Time) (input.SweepSummary, error) {
	events, err := s.eventRepo.FindExpiredActive(ctx, now)
	if err != nil {
		return input.SweepSummary{}, fmt.Errorf("find expired events: %w", err)
	}
	if len(events) == 0 {
		log.Info().Msg("no expired events to update")
		return input.SweepSummary{}, nil
	}

	summary := input.SweepSummary{Attempted: len(events)}
	for i := range events {
		event := &events[i]
		if err := s.eventRepo.UpdateStatus(ctx, event.ID, domain.EventStatusExpired); err != nil {
			log.Error().Err(err).Uint("event_id", event.ID).Msg("mark event expired")
			continue
		}
		summary.Succeeded++
		log.Info().Uint("event_id", event.ID).Msg("event marked as expired")
	}
	log.Info().Int("updated", summary.Succeeded).Int("total", summary.Attempted).
		Msg("expiry sweep finished")
	return summary, nil
}
