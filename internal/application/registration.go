package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
	"eventdesk/pkg/timefmt"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

// RegistrationService owns the capacity/waitlist state machine of an event:
// bounded registration, FIFO waitlist, promotion on vacancy.
type RegistrationService struct {
	eventRepo output.EventRepository
	regRepo   output.RegistrationRepository
	userRepo  output.UserRepository
	mailer    output.Mailer
	clock     func() time.Time
	locks     eventLocks
}

func NewRegistrationService(
	eventRepo output.EventRepository,
	regRepo output.RegistrationRepository,
	userRepo output.UserRepository,
	mailer output.Mailer,
) *RegistrationService {
	return &RegistrationService{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		userRepo:  userRepo,
		mailer:    mailer,
		clock:     time.Now,
	}
}

// loadEvent resolves an event by its public uuid. An unknown uuid stays
// domain.ErrEventNotFound; anything else is a persistence failure and is
// surfaced as such, never as a not-found.
func (s *RegistrationService) loadEvent(ctx context.Context, eventUUID uuid.UUID) (*entities.Event, error) {
	event, err := s.eventRepo.FindByUUID(ctx, eventUUID)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load event %s: %w", eventUUID, err)
	}
	return event, nil
}

// loadRegistration returns (nil, nil) when the user holds no registration.
// A persistence failure must not masquerade as "not registered".
func (s *RegistrationService) loadRegistration(ctx context.Context, eventID, userID uint) (*entities.Registration, error) {
	reg, err := s.regRepo.FindByEventIDAndUserID(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRegistrationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load registration: %w", err)
	}
	return reg, nil
}

// Register adds the user to the event's participants, or to the end of the
// waitlist when the event is full. Repeated calls are idempotent and report
// the existing state without writing.
func (s *RegistrationService) Register(ctx context.Context, eventUUID uuid.UUID, userID uint) (*input.RegisterResult, error) {
	event, err := s.loadEvent(ctx, eventUUID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(event.ID)
	defer unlock()

	existing, err := s.loadRegistration(ctx, event.ID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Status == domain.StatusWaitlist {
			return &input.RegisterResult{Outcome: input.OutcomeAlreadyOnWaitlist}, nil
		}
		return &input.RegisterResult{Outcome: input.OutcomeAlreadyRegistered}, nil
	}

	confirmedCount, err := s.regRepo.CountByEventIDAndStatus(ctx, event.ID, domain.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}

	if int(confirmedCount) >= event.MaxParticipants {
		waitlistCount, err := s.regRepo.CountByEventIDAndStatus(ctx, event.ID, domain.StatusWaitlist)
		if err != nil {
			return nil, fmt.Errorf("count waitlist: %w", err)
		}
		reg := &entities.Registration{
			EventID:  event.ID,
			UserID:   userID,
			Status:   domain.StatusWaitlist,
			JoinedAt: s.clock(),
		}
		if err := s.regRepo.Create(ctx, reg); err != nil {
			return nil, fmt.Errorf("create waitlist registration: %w", err)
		}
		return &input.RegisterResult{
			Outcome:          input.OutcomeWaitlisted,
			WaitlistPosition: int(waitlistCount) + 1,
		}, nil
	}

	reg := &entities.Registration{
		EventID:  event.ID,
		UserID:   userID,
		Status:   domain.StatusConfirmed,
		JoinedAt: s.clock(),
	}
	if err := s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return &input.RegisterResult{
		Outcome:          input.OutcomeRegistered,
		ParticipantCount: int(confirmedCount) + 1,
		MaxParticipants:  event.MaxParticipants,
	}, nil
}

// Unregister removes the user's registration. Removing a confirmed participant
// frees a slot, so the oldest waitlist entry (if any) is promoted in its place.
func (s *RegistrationService) Unregister(ctx context.Context, eventUUID uuid.UUID, userID uint) (*input.UnregisterResult, error) {
	event, err := s.loadEvent(ctx, eventUUID)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(event.ID)
	defer unlock()

	reg, err := s.loadRegistration(ctx, event.ID, userID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return &input.UnregisterResult{Outcome: input.OutcomeNotRegistered}, nil
	}

	wasConfirmed := reg.Status == domain.StatusConfirmed
	if err := s.regRepo.Delete(ctx, reg); err != nil {
		return nil, fmt.Errorf("delete registration: %w", err)
	}

	if !wasConfirmed {
		return &input.UnregisterResult{Outcome: input.OutcomeRemovedFromWaitlist}, nil
	}

	s.promoteNextFromWaitlist(ctx, event)
	return &input.UnregisterResult{Outcome: input.OutcomeUnregistered}, nil
}

// promoteNextFromWaitlist moves the head of the waitlist to confirmed and
// mails the promoted user. The slot was just freed, so the capacity bound
// still holds. Promotion failures are logged, not surfaced: the unregister
// itself already succeeded.
func (s *RegistrationService) promoteNextFromWaitlist(ctx context.Context, event *entities.Event) {
	waitlist, err := s.regRepo.FindByEventIDAndStatus(ctx, event.ID, domain.StatusWaitlist)
	if err != nil {
		log.Error().Err(err).Uint("event_id", event.ID).Msg("load waitlist for promotion")
		return
	}
	if len(waitlist) == 0 {
		return
	}
	next := waitlist[0]
	next.Status = domain.StatusConfirmed
	if err := s.regRepo.Update(ctx, &next); err != nil {
		log.Error().Err(err).Uint("event_id", event.ID).Uint("user_id", next.UserID).
			Msg("promote waitlist registration")
		return
	}
	s.notifyPromoted(ctx, event, next.UserID)
}

func (s *RegistrationService) notifyPromoted(ctx context.Context, event *entities.Event, userID uint) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || !user.Active {
		return
	}
	data := map[string]any{
		"DisplayName": user.DisplayName,
		"EventTitle":  event.Title,
		"StartsAt":    timefmt.EventDateTime(event.StartsAt),
	}
	if err := s.mailer.Send(ctx, "waitlist_promoted", user.Email, user.Locale, data); err != nil {
		log.Error().Err(err).Str("email", user.Email).Uint("event_id", event.ID).
			Msg("send promotion mail")
		return
	}
	log.Info().Str("email", user.Email).Uint("event_id", event.ID).Msg("promotion mail sent")
}

// Status reports the caller's registration state for an event. Read-only.
func (s *RegistrationService) Status(ctx context.Context, eventUUID uuid.UUID, userID uint) (*input.StatusView, error) {
	event, err := s.loadEvent(ctx, eventUUID)
	if err != nil {
		return nil, err
	}

	confirmedCount, err := s.regRepo.CountByEventIDAndStatus(ctx, event.ID, domain.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("count confirmed: %w", err)
	}
	waitlist, err := s.regRepo.FindByEventIDAndStatus(ctx, event.ID, domain.StatusWaitlist)
	if err != nil {
		return nil, fmt.Errorf("load waitlist: %w", err)
	}

	view := &input.StatusView{
		ParticipantCount: int(confirmedCount),
		WaitlistCount:    len(waitlist),
		MaxParticipants:  event.MaxParticipants,
	}
	if avail := event.MaxParticipants - int(confirmedCount); avail > 0 {
		view.SpotsAvailable = avail
	}

	reg, err := s.loadRegistration(ctx, event.ID, userID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return view, nil
	}
	if reg.Status == domain.StatusConfirmed {
		view.IsRegistered = true
		return view, nil
	}
	view.IsWaitlisted = true
	for i := range waitlist {
		if waitlist[i].UserID == userID {
			pos := i + 1
			view.WaitlistPosition = &pos
			break
		}
	}
	return view, nil
}
