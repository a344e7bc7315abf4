package history

import (
	"fmt"
	"os"
)

type Config struct {
	Connection        Connection
	ConnectionDetails ConnectionDetails
}

type Connection struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
	SSLMode  string
}

type ConnectionDetails struct {
	MaxOpenConns int
	MaxIdleConns int
}

// NewConfig reads the Postgres connection settings from environment variables.
func NewConfig() Config {
	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	sslMode := os.Getenv("POSTGRES_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return Config{
		Connection: Connection{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     port,
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DbName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  sslMode,
		},
		ConnectionDetails: ConnectionDetails{
			MaxOpenConns: 50,
			MaxIdleConns: 25,
		},
	}
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Connection.Host == "" {
		return fmt.Errorf("history: missing POSTGRES_HOST")
	}
	if c.Connection.User == "" {
		return fmt.Errorf("history: missing POSTGRES_USER")
	}
	if c.Connection.DbName == "" {
		return fmt.Errorf("history: missing POSTGRES_DB")
	}
	return nil
}
