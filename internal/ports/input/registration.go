package input

import (
	"context"

	"github.com/google/uuid"
)

// Registration outcomes. These double as the status discriminator strings in
// API responses, so repeated calls are safe to retry from the client.
const (
	OutcomeRegistered          = "registered"
	OutcomeWaitlisted          = "waitlisted"
	OutcomeAlreadyRegistered   = "already_registered"
	OutcomeAlreadyOnWaitlist   = "already_on_waitlist"
	OutcomeUnregistered        = "unregistered"
	OutcomeRemovedFromWaitlist = "removed_from_waitlist"
	OutcomeNotRegistered       = "not_registered"
)

// RegisterResult describes what happened to a register call.
// ParticipantCount/MaxParticipants are set for OutcomeRegistered,
// WaitlistPosition (1-based) for OutcomeWaitlisted.
type RegisterResult struct {
	Outcome          string
	ParticipantCount int
	MaxParticipants  int
	WaitlistPosition int
}

// UnregisterResult describes what happened to an unregister call.
type UnregisterResult struct {
	Outcome string
}

// StatusView is the read-only registration status of one user for one event.
type StatusView struct {
	IsRegistered     bool
	IsWaitlisted     bool
	WaitlistPosition *int // 1-based, nil when not waitlisted
	ParticipantCount int
	WaitlistCount    int
	MaxParticipants  int
	SpotsAvailable   int
}

type RegistrationUseCase interface {
	Register(ctx context.Context, eventUUID uuid.UUID, userID uint) (*RegisterResult, error)
	Unregister(ctx context.Context, eventUUID uuid.UUID, userID uint) (*UnregisterResult, error)
	Status(ctx context.Context, eventUUID uuid.UUID, userID uint) (*StatusView, error)
}
