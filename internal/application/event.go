package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	eventRepo output.EventRepository
	regRepo   output.RegistrationRepository
	userRepo  output.UserRepository
	clock     func() time.Time
}

func NewEventService(
	eventRepo output.EventRepository,
	regRepo output.RegistrationRepository,
	userRepo output.UserRepository,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		userRepo:  userRepo,
		clock:     time.Now,
	}
}

// CreateEvent stores a new event and registers the owner as its first
// confirmed participant.
func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	event.Title = strings.TrimSpace(event.Title)
	if event.MaxParticipants < 1 {
		return domain.ErrInvalidCapacity
	}
	if event.HasStarted(s.clock()) {
		return domain.ErrStartsAtInPast
	}
	if event.UUID == uuid.Nil {
		event.UUID = uuid.New()
	}
	event.Status = domain.EventStatusActive
	event.Published = true

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	owner := &entities.Registration{
		EventID:  event.ID,
		UserID:   event.OwnerID,
		Status:   domain.StatusConfirmed,
		JoinedAt: s.clock(),
	}
	if err := s.regRepo.Create(ctx, owner); err != nil {
		return fmt.Errorf("register owner: %w", err)
	}
	return nil
}

func (s *EventService) GetEventByUUID(ctx context.Context, id uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load event %s: %w", id, err)
	}
	return event, nil
}

func (s *EventService) ListUpcomingEvents(ctx context.Context, now time.Time) ([]entities.Event, error) {
	return s.eventRepo.FindUpcoming(ctx, now)
}

// GetParticipants returns the confirmed participants followed by the waitlist,
// each in join order, with display names resolved.
func (s *EventService) GetParticipants(ctx context.Context, eventUUID uuid.UUID) ([]input.ParticipantView, error) {
	event, err := s.GetEventByUUID(ctx, eventUUID)
	if err != nil {
		return nil, err
	}

	var regs []entities.Registration
	for _, status := range []string{domain.StatusConfirmed, domain.StatusWaitlist} {
		part, err := s.regRepo.FindByEventIDAndStatus(ctx, event.ID, status)
		if err != nil {
			return nil, fmt.Errorf("load %s registrations: %w", status, err)
		}
		regs = append(regs, part...)
	}
	if len(regs) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(regs))
	for i, reg := range regs {
		ids[i] = reg.UserID
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}

	views := make([]input.ParticipantView, len(regs))
	for i, reg := range regs {
		views[i] = input.ParticipantView{
			UserID:      reg.UserID,
			DisplayName: names[reg.UserID],
			Status:      reg.Status,
			JoinedAt:    reg.JoinedAt,
		}
	}
	return views, nil
}
