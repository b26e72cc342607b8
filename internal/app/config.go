package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModesPath string // .hcl mode files

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	// TickInterval is the wall-clock time between scheduler steps. Zero runs
	// steps back to back.
	TickInterval time.Duration

	SpectatorURL       string
	SpectatorNamespace string
	SpectatorInsecure  bool
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModesPath == "" {
		return nil, errors.New("ModesPath is a required configuration field and cannot be empty")
	}
	if cfg.TickInterval < 0 {
		return nil, errors.New("TickInterval cannot be negative")
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, errors.New("HealthcheckPort must be between 0 and 65535")
	}
	return &cfg, nil
}
