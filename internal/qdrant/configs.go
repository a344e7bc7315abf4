package qdrant

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds connection and behavior settings for the Qdrant client.
type Config struct {
	// Hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" env:"QDRANT_ENDPOINT"`

	// gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" env:"QDRANT_PORT"`

	// Optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" env:"QDRANT_API_KEY"`

	// Collection holding the artist vectors. Defaults to "artists".
	Collection string `yaml:"collection" env:"QDRANT_COLLECTION"`

	// Whether to perform version compatibility checks between client and server.
	CheckCompatibility bool `yaml:"check_compatibility" env:"QDRANT_CHECK_COMPATIBILITY"`
}

// NewConfig reads from environment variables.
func NewConfig() *Config {
	port := 6334
	if v := os.Getenv("QDRANT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			port = n
		}
	}

	collection := os.Getenv("QDRANT_COLLECTION")
	if collection == "" {
		collection = "artists"
	}

	return &Config{
		Endpoint:           os.Getenv("QDRANT_ENDPOINT"),
		Port:               port,
		ApiKey:             os.Getenv("QDRANT_API_KEY"),
		Collection:         collection,
		CheckCompatibility: os.Getenv("QDRANT_CHECK_COMPATIBILITY") == "true",
	}
}

// Validate ensures required fields are present.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("qdrant: missing QDRANT_ENDPOINT")
	}
	if c.Collection == "" {
		return fmt.Errorf("qdrant: missing QDRANT_COLLECTION")
	}
	return nil
}
