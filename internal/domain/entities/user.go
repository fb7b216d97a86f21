package entities

import "time"

// User is a read-only projection of a platform member. Accounts are managed
// elsewhere; this service only reads them for identity and notification
// preferences.
type User struct {
	ID                   uint
	Email                string
	DisplayName          string
	Active               bool
	NotifyEventReminders bool
	NotifyNewPosts       bool
	Locale               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// WantsEventReminders reports whether reminder mail may be sent to the user.
func (u *User) WantsEventReminders() bool {
	return u.Active && u.NotifyEventReminders
}
