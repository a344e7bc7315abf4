package catalog

import (
	"fmt"
	"os"
)

// Config holds the object-storage connection used to fetch catalog CSVs.
//
// Environment variables:
//   - MINIO_ENDPOINT: server endpoint, e.g. "localhost:9000"
//   - MINIO_ACCESS_KEY_ID / MINIO_SECRET_ACCESS_KEY: credentials
//   - MINIO_USE_SSL: "true" for https
//   - MINIO_BUCKET: bucket holding catalog exports (default "catalog")
type Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Bucket          string
}

// NewConfig loads the object-storage configuration from environment variables.
func NewConfig() Config {
	cfg := Config{
		Endpoint:        os.Getenv("MINIO_ENDPOINT"),
		AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("MINIO_SECRET_ACCESS_KEY"),
		UseSSL:          os.Getenv("MINIO_USE_SSL") == "true",
		Bucket:          os.Getenv("MINIO_BUCKET"),
	}
	if cfg.Bucket == "" {
		cfg.Bucket = "catalog"
	}
	return cfg
}

// Validate checks that the object-storage configuration is complete.
// Only required when importing from object storage, not from a local file.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("catalog: MINIO_ENDPOINT is required")
	}
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return fmt.Errorf("catalog: MinIO credentials are required")
	}
	return nil
}
