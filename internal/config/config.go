// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DBPath overrides the default database location (~/.arise.db).
	DBPath string `env:"ARISE_DB"`

	// SaveDebounce is the trailing window for coalescing writes.
	SaveDebounce time.Duration `env:"ARISE_SAVE_DEBOUNCE" envDefault:"2s"`

	// SessionMinutes is the default workout session length.
	SessionMinutes int `env:"ARISE_SESSION_MINUTES" envDefault:"45"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
