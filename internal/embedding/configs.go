package embedding

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// OPENAI_BASE_URL must point to the root of the OpenAI-compatible API
// (no /embeddings appended). The provider appends paths automatically,
// so callers only need to supply the host base URL.

type Config struct {
	// Provider endpoint and auth
	BaseURL      string // Base URL of the OpenAI-compatible API
	APIKey       string // OpenAI API key
	Model        string // Embedding model identifier
	HTTPTimeoutS int    // HTTP timeout seconds (default 30)

	// Optional Redis-backed embedding cache. Disabled when CacheAddr is empty.
	CacheAddr string
	CacheTTL  time.Duration
}

const (
	// DefaultModel is the embedding model the artist catalog was built with.
	// All stored vectors and all queries must come from the same model.
	DefaultModel = "text-embedding-3-small"

	// Dimensions is the fixed vector length produced by DefaultModel.
	Dimensions = 1536

	defaultBaseURL  = "https://api.openai.com/v1"
	defaultCacheTTL = 24 * time.Hour
)

// NewConfig reads from environment variables.
func NewConfig() *Config {
	timeout := 30
	if v := os.Getenv("EMBEDDING_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := os.Getenv("EMBEDDING_MODEL")
	if model == "" {
		model = DefaultModel
	}

	cacheTTL := defaultCacheTTL
	if v := os.Getenv("EMBEDDING_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cacheTTL = time.Duration(n) * time.Second
		}
	}

	return &Config{
		BaseURL:      baseURL,
		APIKey:       os.Getenv("OPENAI_API_KEY"),
		Model:        model,
		HTTPTimeoutS: timeout,
		CacheAddr:    os.Getenv("REDIS_ADDR"),
		CacheTTL:     cacheTTL,
	}
}

// Validate ensures required fields are present. A missing API key is a
// configuration error and must surface at construction, not on first use.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("embedding: missing OPENAI_BASE_URL")
	}
	if c.APIKey == "" {
		return fmt.Errorf("embedding: missing OPENAI_API_KEY")
	}
	if c.Model == "" {
		return fmt.Errorf("embedding: missing EMBEDDING_MODEL")
	}
	return nil
}
