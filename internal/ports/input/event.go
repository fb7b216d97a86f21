package input

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain/entities"
)

// ParticipantView is a participant row as shown on the event detail page.
type ParticipantView struct {
	UserID      uint
	DisplayName string
	Status      string
	JoinedAt    time.Time
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	GetEventByUUID(ctx context.Context, id uuid.UUID) (*entities.Event, error)
	ListUpcomingEvents(ctx context.Context, now time.Time) ([]entities.Event, error)
	GetParticipants(ctx context.Context, eventUUID uuid.UUID) ([]ParticipantView, error)
}
