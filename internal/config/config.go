// SPDX-License-Identifier: MIT

// Package config loads netflow settings from the environment and linear
// systems from YAML documents.
package config

import (
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/netflow/internal/logging"
	"github.com/katalvlaran/netflow/matrix"
)

// EnvPrefix is prepended to every environment variable (NETFLOW_EPSILON, ...).
const EnvPrefix = "NETFLOW"

// Settings holds runtime configuration.
type Settings struct {
	Epsilon  float64 `envconfig:"EPSILON" default:"1e-10"`
	Trace    bool    `envconfig:"TRACE" default:"false"`
	Pause    bool    `envconfig:"PAUSE" default:"false"`
	LogLevel string  `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool    `envconfig:"LOG_DEV" default:"false"`
	Color    bool    `envconfig:"COLOR" default:"true"`
}

// Load reads Settings from the environment.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Default returns the settings used when the environment is empty.
func Default() *Settings {
	return &Settings{
		Epsilon:  matrix.DefaultEpsilon,
		LogLevel: "info",
		Color:    true,
	}
}

// Validate checks value ranges envconfig cannot express.
func (s *Settings) Validate() error {
	if math.IsNaN(s.Epsilon) || math.IsInf(s.Epsilon, 0) || s.Epsilon < 0 {
		return fmt.Errorf("config: epsilon %v must be finite and >= 0", s.Epsilon)
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("config: log level %q: %w", s.LogLevel, err)
	}

	return nil
}

// Logging derives the logger configuration.
func (s *Settings) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = s.LogLevel
	cfg.Development = s.LogDev

	return cfg
}
