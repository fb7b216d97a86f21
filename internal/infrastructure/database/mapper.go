package database

import (
	"eventdesk/internal/domain/entities"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*entities.Event, error) {
	var e entities.Event
	err := row.Scan(
		&e.ID, &e.UUID, &e.Title, &e.Description, &e.MaxParticipants, &e.StartsAt,
		&e.Status, &e.ReminderSent, &e.OwnerID, &e.Published, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanRegistration(row rowScanner) (*entities.Registration, error) {
	var reg entities.Registration
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.Status, &reg.JoinedAt,
		&reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func scanUser(row rowScanner) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.Active, &u.NotifyEventReminders,
		&u.NotifyNewPosts, &u.Locale, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
