package domain

// Registration statuses. A user holds at most one registration row per event,
// so a user is never both confirmed and waitlisted.
const (
	StatusConfirmed = "confirmed"
	StatusWaitlist  = "waitlist"
)

// Event lifecycle statuses. The only transition is active -> expired.
const (
	EventStatusActive  = "active"
	EventStatusExpired = "expired"
)
