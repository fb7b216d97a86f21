package output

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	// FindByUUID and FindByID return domain.ErrEventNotFound when no such
	// event exists. Any other error is a persistence failure.
	FindByUUID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	FindUpcoming(ctx context.Context, now time.Time) ([]entities.Event, error)
	FindNeedingReminder(ctx context.Context, windowStart, windowEnd time.Time) ([]entities.Event, error)
	FindExpiredActive(ctx context.Context, now time.Time) ([]entities.Event, error)
	MarkReminderSent(ctx context.Context, eventID uint) error
	UpdateStatus(ctx context.Context, eventID uint, status string) error
	Update(ctx context.Context, event *entities.Event) error
}
