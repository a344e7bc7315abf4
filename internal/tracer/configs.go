package tracer

import "os"

// Config holds tracer identification and export settings.
//
// Environment variables:
//   - SERVICE_NAME: service name attached to every span (default "matchmaker")
//   - APP_ENV: deployment environment tag (default "development")
//   - TRACING_ENABLED: "true" enables the OTLP HTTP exporter; the exporter
//     endpoint itself is read by the OTel SDK from OTEL_EXPORTER_OTLP_* vars
type Config struct {
	ServiceName  string
	AppEnv       string
	EnableExport bool
}

// NewConfig loads the tracer configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		ServiceName:  os.Getenv("SERVICE_NAME"),
		AppEnv:       os.Getenv("APP_ENV"),
		EnableExport: os.Getenv("TRACING_ENABLED") == "true",
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "matchmaker"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	return cfg
}
