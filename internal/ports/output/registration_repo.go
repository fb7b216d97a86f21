package output

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entities.Registration) error
	FindByEventID(ctx context.Context, eventID uint) ([]entities.Registration, error)
	// FindByEventIDAndUserID returns domain.ErrRegistrationNotFound when the
	// user holds no registration for the event. Any other error is a
	// persistence failure.
	FindByEventIDAndUserID(ctx context.Context, eventID, userID uint) (*entities.Registration, error)
	// FindByEventIDAndStatus returns registrations ordered by (joined_at, id)
	// ascending, which is the waitlist FIFO order.
	FindByEventIDAndStatus(ctx context.Context, eventID uint, status string) ([]entities.Registration, error)
	Update(ctx context.Context, registration *entities.Registration) error
	Delete(ctx context.Context, registration *entities.Registration) error
	CountByEventIDAndStatus(ctx context.Context, eventID uint, status string) (int64, error)
}
