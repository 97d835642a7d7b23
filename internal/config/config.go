package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level configuration. Values come from environment
// variables and may be overridden by CLI flags. The data directory is
// resolved by the flag layer, which owns flag-over-env precedence.
type Config struct {
	// Debug enables verbose logging to stderr.
	Debug bool `env:"ROUTINELY_DEBUG"`
	// Timezone is an IANA timezone name, or "Local" for the system zone.
	Timezone string `env:"ROUTINELY_TZ" envDefault:"Local"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
