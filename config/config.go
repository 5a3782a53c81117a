// Package config loads connection settings from the environment so
// callers can construct a runner without hardcoding credentials.
//
// Variables use the QUERYPACK_ prefix (e.g. QUERYPACK_HOST). A .env
// file, when present, is loaded first via godotenv's autoload.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds everything needed to establish one session.
type Config struct {
	Driver   string `koanf:"driver"   validate:"required,oneof=mysql mattn modernc"`
	Host     string `koanf:"host"     validate:"required"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	Database string `koanf:"database" validate:"required"`
}

// Load reads QUERYPACK_-prefixed environment variables into a Config
// and validates it, so bad or missing settings fail fast instead of at
// the first query.
//
// Returns:
//   - *Config: the validated configuration
//   - error: an error if loading or validation failed
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("QUERYPACK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QUERYPACK_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
