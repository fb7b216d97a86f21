package entities

import "time"

// Registration represents a user's registration for an event, either as a
// confirmed participant or as a waitlist entry. FIFO ordering within a status
// is by (JoinedAt, ID) ascending.
type Registration struct {
	ID        uint
	EventID   uint
	UserID    uint
	Status    string // domain.StatusConfirmed or domain.StatusWaitlist
	JoinedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
