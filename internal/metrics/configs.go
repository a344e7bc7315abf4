package metrics

import "os"

// Config controls the Prometheus metrics endpoint.
//
// Environment variables:
//   - METRICS_ADDRESS: listen address for the /metrics server (default ":9090")
//   - SERVICE_NAME: value of the constant service label (default "matchmaker")
//   - METRICS_DISABLE_DEFAULT_COLLECTORS: "true" skips the Go/process/build
//     info collectors
type Config struct {
	Address                 string
	ServiceName             string
	EnableDefaultCollectors bool
}

// NewConfig loads the metrics configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Address:                 os.Getenv("METRICS_ADDRESS"),
		ServiceName:             os.Getenv("SERVICE_NAME"),
		EnableDefaultCollectors: os.Getenv("METRICS_DISABLE_DEFAULT_COLLECTORS") != "true",
	}
	if cfg.Address == "" {
		cfg.Address = ":9090"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "matchmaker"
	}
	return cfg
}
