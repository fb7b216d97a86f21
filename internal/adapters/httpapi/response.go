package httpapi

import (
	"time"

	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
)

// ErrorResponse is the error payload of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegistrationResponse answers register/unregister calls. Status is the
// outcome discriminator; the optional counters are present only when they
// apply to that outcome.
type RegistrationResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	ParticipantCount *int   `json:"participant_count,omitempty"`
	MaxParticipants  *int   `json:"max_participants,omitempty"`
	WaitlistPosition *int   `json:"waitlist_position,omitempty"`
}

// StatusResponse answers the registration status query.
type StatusResponse struct {
	IsRegistered     bool `json:"is_registered"`
	IsWaitlisted     bool `json:"is_waitlisted"`
	WaitlistPosition *int `json:"waitlist_position"`
	ParticipantCount int  `json:"participant_count"`
	WaitlistCount    int  `json:"waitlist_count"`
	MaxParticipants  int  `json:"max_participants"`
	SpotsAvailable   int  `json:"spots_available"`
}

// EventResponse is the public view of an event.
type EventResponse struct {
	UUID            string    `json:"uuid"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	MaxParticipants int       `json:"max_participants"`
	StartsAt        time.Time `json:"starts_at"`
	Status          string    `json:"status"`
}

// ParticipantResponse is one row of the event participant list.
type ParticipantResponse struct {
	DisplayName string    `json:"display_name"`
	Status      string    `json:"status"`
	JoinedAt    time.Time `json:"joined_at"`
}

func eventResponse(event *entities.Event) EventResponse {
	return EventResponse{
		UUID:            event.UUID.String(),
		Title:           event.Title,
		Description:     event.Description,
		MaxParticipants: event.MaxParticipants,
		StartsAt:        event.StartsAt,
		Status:          event.Status,
	}
}

func participantResponses(views []input.ParticipantView) []ParticipantResponse {
	out := make([]ParticipantResponse, len(views))
	for i, v := range views {
		out[i] = ParticipantResponse{
			DisplayName: v.DisplayName,
			Status:      v.Status,
			JoinedAt:    v.JoinedAt,
		}
	}
	return out
}
