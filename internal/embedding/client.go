package embedding

import (
	"context"
	"fmt"
)

// Client is the public entrypoint for computing embeddings.
//
// It hides all provider details (endpoints, HTTP, auth, caching)
// from the application layer.
type Client struct {
	provider Provider
	cache    Cache
	model    string
}

// NewClient constructs a Client from Config.
// It validates the config and internally constructs the OpenAI provider.
// Application code should depend on *Client, not on Provider.
func NewClient(cfg *Config, cache Cache) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("embedding: invalid config: %w", err)
	}

	p, err := newOpenAIProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("embedding: failed to create provider: %w", err)
	}

	return &Client{provider: p, cache: cache, model: cfg.Model}, nil
}

// Embed computes the embedding vector for a single text. The text must be
// non-empty; callers are expected to validate and trim input before invoking.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("embedding: empty input")
	}

	key := cacheKey(c.model, text)
	if c.cache != nil {
		if vector, ok := c.cache.Get(ctx, key); ok {
			return vector, nil
		}
	}

	vectors, err := c.provider.Create(ctx, c.model, text)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(ctx, key, vectors[0])
	}
	return vectors[0], nil
}

// EmbedBatch computes embeddings for multiple texts in a single provider
// call, preserving input order. Used by the catalog importer; the cache is
// bypassed since bulk ingest texts rarely repeat.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: empty batch")
	}
	return c.provider.Create(ctx, c.model, texts...)
}

// Close allows the client to release any internal resources used by the provider.
// Currently this is a no-op unless the provider implements Close().
func (c *Client) Close() error {
	if closer, ok := c.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
