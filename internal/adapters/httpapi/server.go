package httpapi

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"eventdesk/internal/application"
	"eventdesk/internal/config"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

// Server is the HTTP adapter.
type Server struct {
	engine         *gin.Engine
	config         *config.Config
	registrationUC input.RegistrationUseCase
	eventUC        input.EventUseCase
	translator     output.T
}

// NewServer wires ports: output adapters -> application (use cases) -> handlers.
func NewServer(
	cfg *config.Config,
	eventRepo output.EventRepository,
	regRepo output.RegistrationRepository,
	userRepo output.UserRepository,
	mailer output.Mailer,
	translator output.T,
) *Server {
	registrationUC := application.NewRegistrationService(eventRepo, regRepo, userRepo, mailer)
	eventUC := application.NewEventService(eventRepo, regRepo, userRepo)

	s := &Server{
		engine:         gin.New(),
		config:         cfg,
		registrationUC: registrationUC,
		eventUC:        eventUC,
		translator:     translator,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.Use(gin.Recovery(), RequestLogger())
	// Auth rides in the Authorization header, so no credentialed CORS is
	// needed (browsers reject wildcard origins with credentials anyway).
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:  s.config.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	api.GET("/events", s.handleListEvents)
	api.GET("/event/:uuid", s.handleGetEvent)
	api.GET("/event/:uuid/participants", s.handleListParticipants)

	authed := api.Group("", AuthMiddleware(s.config.JWTSecret))
	authed.POST("/events", s.handleCreateEvent)
	authed.POST("/event/:uuid/register", s.handleRegister)
	authed.POST("/event/:uuid/unregister", s.handleUnregister)
	authed.GET("/event/:uuid/status", s.handleStatus)
}

// Handler exposes the underlying http.Handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start runs the HTTP server until interrupted, then shuts down gracefully.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    s.config.HTTPAddr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("addr", s.config.HTTPAddr).Msg("HTTP server listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
