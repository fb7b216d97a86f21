package application

import (
	"context"
	"fmt"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

// ParticipantResolver computes the notification audience of an event: the
// owner plus all confirmed registrants, keeping only active users who opted
// into event reminders, deduplicated by user id.
type ParticipantResolver struct {
	regRepo  output.RegistrationRepository
	userRepo output.UserRepository
}

func NewParticipantResolver(regRepo output.RegistrationRepository, userRepo output.UserRepository) *ParticipantResolver {
	return &ParticipantResolver{regRepo: regRepo, userRepo: userRepo}
}

// Resolve is a pure read: no entity is mutated. The returned order carries no
// meaning.
func (r *ParticipantResolver) Resolve(ctx context.Context, event *entities.Event) ([]entities.User, error) {
	seen := make(map[uint]bool)
	var audience []entities.User

	owner, err := r.userRepo.FindByID(ctx, event.OwnerID)
	if err == nil && owner.WantsEventReminders() {
		seen[owner.ID] = true
		audience = append(audience, *owner)
	}

	regs, err := r.regRepo.FindByEventIDAndStatus(ctx, event.ID, domain.StatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("load confirmed registrations: %w", err)
	}
	ids := make([]uint, 0, len(regs))
	for _, reg := range regs {
		if !seen[reg.UserID] {
			ids = append(ids, reg.UserID)
		}
	}
	if len(ids) == 0 {
		return audience, nil
	}

	users, err := r.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load registrants: %w", err)
	}
	for _, u := range users {
		if seen[u.ID] || !u.WantsEventReminders() {
			continue
		}
		seen[u.ID] = true
		audience = append(audience, u)
	}
	return audience, nil
}
