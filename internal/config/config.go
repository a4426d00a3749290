package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service. It is built once
// at startup and passed by reference into the components that need it.
type Config struct {
	// HTTP server
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`

	// Database
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// Mail relay
	MailRecipient   string `env:"MAIL_RECIPIENT,required,notEmpty"`
	MailSMTPHost    string `env:"MAIL_SMTP_HOST,required,notEmpty"`
	MailSMTPPort    int    `env:"MAIL_SMTP_PORT" envDefault:"587"`
	MailSMTPAddress string `env:"MAIL_SMTP_ADDRESS,required,notEmpty"`
	MailAppPassword string `env:"MAIL_APP_PW,required,notEmpty"`

	// Flash cookie signing
	SessionSecret string `env:"SESSION_SECRET,required,notEmpty"`
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Missing required values abort startup with an error
// rather than surfacing later as a half-configured service.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
