package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Env holds process-level settings that come from the environment rather than config.json
type Env struct {
	ConfigDir string `env:"FLOATDOCK_CONFIG_DIR"`
	LogLevel  string `env:"FLOATDOCK_LOG_LEVEL" default:"info"`
	LogFormat string `env:"FLOATDOCK_LOG_FORMAT" default:"text"`
}

// LoadEnv reads an optional .env file and then the process environment.
// It reports whether a .env file was found.
func LoadEnv() (*Env, bool, error) {
	dotenv := godotenv.Load() == nil

	var e Env
	if err := env.Load(&e, nil); err != nil {
		return nil, dotenv, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return &e, dotenv, nil
}
