package entities

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID              uint
	UUID            uuid.UUID // public identifier used in URLs
	Title           string
	Description     string
	MaxParticipants int
	StartsAt        time.Time
	Status          string // domain.EventStatusActive or domain.EventStatusExpired
	ReminderSent    bool
	OwnerID         uint
	Published       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasStarted reports whether the event start time has passed.
func (e *Event) HasStarted(now time.Time) bool {
	return e.StartsAt.Before(now)
}
