package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
)

type createEventRequest struct {
	Title           string    `json:"title" binding:"required"`
	Description     string    `json:"description"`
	MaxParticipants int       `json:"max_participants" binding:"required"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	event := &entities.Event{
		Title:           req.Title,
		Description:     req.Description,
		MaxParticipants: req.MaxParticipants,
		StartsAt:        req.StartsAt,
		OwnerID:         currentUserID(c),
	}
	if err := s.eventUC.CreateEvent(c.Request.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidCapacity) || errors.Is(err, domain.ErrStartsAtInPast) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("create event failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: s.translator.T(requestLocale(c), "error.internal", nil)})
		return
	}
	c.JSON(http.StatusCreated, eventResponse(event))
}

func (s *Server) handleListEvents(c *gin.Context) {
	events, err := s.eventUC.ListUpcomingEvents(c.Request.Context(), time.Now())
	if err != nil {
		log.Error().Err(err).Msg("list events failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: s.translator.T(requestLocale(c), "error.internal", nil)})
		return
	}
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = eventResponse(&events[i])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetEvent(c *gin.Context) {
	id, ok := s.eventUUID(c)
	if !ok {
		return
	}
	event, err := s.eventUC.GetEventByUUID(c.Request.Context(), id)
	if err != nil {
		s.registrationError(c, requestLocale(c), err)
		return
	}
	c.JSON(http.StatusOK, eventResponse(event))
}

func (s *Server) handleListParticipants(c *gin.Context) {
	id, ok := s.eventUUID(c)
	if !ok {
		return
	}
	views, err := s.eventUC.GetParticipants(c.Request.Context(), id)
	if err != nil {
		s.registrationError(c, requestLocale(c), err)
		return
	}
	c.JSON(http.StatusOK, participantResponses(views))
}
