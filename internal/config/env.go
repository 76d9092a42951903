// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Env holds the settings read from the process environment.
type Env struct {
	Seed        int64  `env:"NDMINES_SEED" envDefault:"0"`
	LogLevel    string `env:"NDMINES_LOG_LEVEL" envDefault:"warn"`
	PresetsPath string `env:"NDMINES_PRESETS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env and checks the log level name.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	if _, err := e.Level(); err != nil {
		return Env{}, err
	}

	return e, nil
}

// Level returns LogLevel as a logrus level.
func (e Env) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(e.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("NDMINES_LOG_LEVEL: %w", err)
	}

	return lvl, nil
}
