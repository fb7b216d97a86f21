package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"eventdesk/internal/domain"
	"eventdesk/internal/ports/input"
)

// eventUUID parses the :uuid path segment. A malformed value is a client
// error, not a missing event.
func (s *Server) eventUUID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		locale := requestLocale(c)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: s.translator.T(locale, "error.invalid_event_id", nil)})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) handleRegister(c *gin.Context) {
	id, ok := s.eventUUID(c)
	if !ok {
		return
	}
	locale := requestLocale(c)

	result, err := s.registrationUC.Register(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		s.registrationError(c, locale, err)
		return
	}

	resp := RegistrationResponse{
		Status:  result.Outcome,
		Message: s.translator.T(locale, "register."+result.Outcome, nil),
	}
	switch result.Outcome {
	case input.OutcomeRegistered:
		resp.ParticipantCount = &result.ParticipantCount
		resp.MaxParticipants = &result.MaxParticipants
	case input.OutcomeWaitlisted:
		resp.WaitlistPosition = &result.WaitlistPosition
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleUnregister(c *gin.Context) {
	id, ok := s.eventUUID(c)
	if !ok {
		return
	}
	locale := requestLocale(c)

	result, err := s.registrationUC.Unregister(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		s.registrationError(c, locale, err)
		return
	}

	c.JSON(http.StatusOK, RegistrationResponse{
		Status:  result.Outcome,
		Message: s.translator.T(locale, "unregister."+result.Outcome, nil),
	})
}

func (s *Server) handleStatus(c *gin.Context) {
	id, ok := s.eventUUID(c)
	if !ok {
		return
	}
	locale := requestLocale(c)

	view, err := s.registrationUC.Status(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		s.registrationError(c, locale, err)
		return
	}

	c.JSON(http.StatusOK, StatusResponse{
		IsRegistered:     view.IsRegistered,
		IsWaitlisted:     view.IsWaitlisted,
		WaitlistPosition: view.WaitlistPosition,
		ParticipantCount: view.ParticipantCount,
		WaitlistCount:    view.WaitlistCount,
		MaxParticipants:  view.MaxParticipants,
		SpotsAvailable:   view.SpotsAvailable,
	})
}

func (s *Server) registrationError(c *gin.Context, locale string, err error) {
	if errors.Is(err, domain.ErrEventNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: s.translator.T(locale, "error.event_not_found", nil)})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("registration operation failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: s.translator.T(locale, "error.internal", nil)})
}
