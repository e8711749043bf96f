// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the storefront process.
type Config struct {
	Port string `env:"APP_PORT" envDefault:"8080"`

	// WhatsAppNumber is the fixed recipient of order hand-off messages, in
	// international format without the leading plus.
	WhatsAppNumber string `env:"WHATSAPP_NUMBER" envDefault:"918015213825"`

	// PricePerPhoto is the per-photo rate quoted in the order message, in
	// whole rupees.
	PricePerPhoto int `env:"PRICE_PER_PHOTO" envDefault:"20"`

	// ProfileStorePath is where the single buyer profile is persisted.
	ProfileStorePath string `env:"PROFILE_STORE_PATH" envDefault:"user_profile.json"`

	// ContactSentReset is how long the contact form stays in its "sent"
	// state before the simulated acknowledgment clears.
	ContactSentReset time.Duration `env:"CONTACT_SENT_RESET" envDefault:"3s"`

	LogLevel  string `env:"LOGGER_LEVEL" envDefault:"info"`
	LogAsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"true"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (*Config, error) {
	const op = "config.Load"

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: load .env: %w", op, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}
