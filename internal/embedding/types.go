package embedding

import "context"

// Provider contract
type Provider interface {
	// Create generates embeddings for the given texts using the specified model.
	Create(ctx context.Context, model string, texts ...string) ([][]float32, error)
}

// Cache stores computed embeddings keyed by model + input text.
// Implementations must be safe for concurrent use. Cache failures are
// never fatal: a miss (or an error treated as a miss) falls through to
// the provider.
type Cache interface {
	Get(ctx context.Context, key string) ([]float32, bool)
	Set(ctx context.Context, key string, vector []float32)
}
