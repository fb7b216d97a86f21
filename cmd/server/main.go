package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"eventdesk/internal/adapters/cron"
	"eventdesk/internal/adapters/httpapi"
	"eventdesk/internal/application"
	"eventdesk/internal/config"
	"eventdesk/internal/infrastructure/database"
	"eventdesk/internal/infrastructure/i18n"
	"eventdesk/internal/infrastructure/mail"
	"eventdesk/internal/ports/output"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	eventRepo := database.NewEventRepository(pool)
	regRepo := database.NewRegistrationRepository(pool)
	userRepo := database.NewUserRepository(pool)

	translator := i18n.NewTranslator(cfg.DefaultLocale)

	var mailer output.Mailer
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom, translator)
	} else {
		log.Warn().Msg("SMTP_HOST not set, mail goes to the log only")
		mailer = mail.NewLogMailer(translator)
	}

	if !cfg.CronDisabled {
		resolver := application.NewParticipantResolver(regRepo, userRepo)
		reminderUC := application.NewReminderService(eventRepo, resolver, mailer)
		scheduler := cron.NewScheduler(reminderUC)
		if err := scheduler.Start(cfg.CronSchedule); err != nil {
			log.Fatal().Err(err).Msg("start cron scheduler")
		}
		defer scheduler.Stop()
	}

	server := httpapi.NewServer(cfg, eventRepo, regRepo, userRepo, mailer, translator)
	if err := server.Start(); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped")
		os.Exit(1)
	}
}
