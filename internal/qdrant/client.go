package qdrant

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/matchcolab/matchmaker/internal/logger"
)

// Client wraps the official Qdrant Go client and provides the
// artist-index operations the matchmaker needs: collection bootstrap,
// idempotent artist upserts, similarity queries and payload retrieval.
type Client struct {
	api     *qdrant.Client
	cfg     *Config
	logger  *logger.Logger
	started bool
}

const defaultBatchSize = 200 // chunk size for batch upserts

// NewClient constructs a new Client and validates connectivity via a health
// check. The Qdrant Go SDK creates lightweight gRPC connections, so this
// performs an immediate health check to fail fast if the service is unreachable.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("[Qdrant] invalid config: %w", err)
	}

	log.Info("[Qdrant] connecting", nil, map[string]interface{}{
		"endpoint": cfg.Endpoint,
		"port":     cfg.Port,
	})

	api, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   cfg.Port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to initialize client: %w", err)
	}

	c := &Client{
		api:     api,
		cfg:     cfg,
		logger:  log,
		started: true,
	}

	if err := c.Health(context.Background()); err != nil {
		return nil, fmt.Errorf("[Qdrant] health check failed: %w", err)
	}

	log.Info("[Qdrant] client connected successfully", nil, nil)
	return c, nil
}

// Health verifies the availability of the Qdrant service. It is lightweight
// and fast, used during startup and by readiness probes.
func (c *Client) Health(ctx context.Context) error {
	if c.api == nil {
		return fmt.Errorf("[Qdrant] client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := c.api.HealthCheck(ctx); err != nil {
		return fmt.Errorf("[Qdrant] health check failed: %w", err)
	}
	return nil
}

// Close gracefully shuts down the Qdrant client.
//
// The official Qdrant Go SDK doesn't maintain persistent connections,
// so this is currently a no-op. It exists for lifecycle symmetry.
func (c *Client) Close() error {
	if !c.started {
		return nil
	}
	c.started = false
	c.logger.Debug("[Qdrant] closing client (no-op)", nil, nil)
	return nil
}
