package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the HTTP server settings.
//
// Environment variables:
//   - PORT: listen port (default 8080)
//   - ALLOWED_ORIGINS: comma-separated CORS origins (default "*")
type Config struct {
	Port           int
	AllowedOrigins []string
}

// NewConfig loads the server configuration from environment variables.
func NewConfig() (Config, error) {
	cfg := Config{
		Port:           8080,
		AllowedOrigins: []string{"*"},
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("server: invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.AllowedOrigins = origins
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("server: port must be in [1, 65535], got %d", c.Port)
	}
	return nil
}
