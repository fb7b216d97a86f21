package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string
	DefaultLocale  string
	CronSchedule   string
	CronDisabled   bool
	CORSOrigins    []string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional: in Docker/CI the variables come from the environment.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       os.Getenv("HTTP_ADDR"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		CronSchedule:   os.Getenv("CRON_SCHEDULE"),
		CronDisabled:   os.Getenv("CRON_DISABLED") == "1",
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
		MailFrom:       os.Getenv("MAIL_FROM"),
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("config: SMTP_PORT must be a number, got %q", port)
		}
		cfg.SMTPPort = p
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = ":8080"
	}
	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "hu"
	}
	if strings.TrimSpace(c.CronSchedule) == "" {
		c.CronSchedule = "@every 10m"
	}
	if len(c.CORSOrigins) == 0 {
		c.CORSOrigins = []string{"*"}
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET is required and cannot be empty")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Useful default for local runs when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/eventdesk?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if c.SMTPHost != "" {
		if c.SMTPPort == 0 {
			c.SMTPPort = 587
		}
		if strings.TrimSpace(c.MailFrom) == "" {
			return fmt.Errorf("config: MAIL_FROM is required when SMTP_HOST is set")
		}
	}

	return nil
}
