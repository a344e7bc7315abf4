// Package embedding converts free-text artist tags into fixed-length vector
// embeddings through an OpenAI-compatible provider.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides all
// low-level HTTP details, endpoint paths, authentication and caching.
//
// A client is constructed using:
//
//	client, err := embedding.NewClient(cfg, cache)
//
// Once created, the client can generate a single embedding via:
//
//	vector, err := client.Embed(ctx, "jazz, fusion, improvisation")
//
// or batch embeddings (used by the catalog importer) via:
//
//	vectors, err := client.EmbedBatch(ctx, texts)
//
// All stored artist vectors and all query vectors must come from the same
// model; the reference model (text-embedding-3-small) produces 1536
// dimensions, exported as embedding.Dimensions.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by:
//
//	cfg := embedding.NewConfig()
//
// Required variables:
//
//   - OPENAI_API_KEY
//     Provider credential. A missing key fails Client construction with a
//     clear configuration error rather than deferring to first use.
//
// Optional variables:
//
//   - OPENAI_BASE_URL
//     Base URL of the OpenAI-compatible API (default https://api.openai.com/v1).
//
//   - EMBEDDING_MODEL
//     Model identifier (default text-embedding-3-small).
//
//   - EMBEDDING_HTTP_TIMEOUT_SECONDS
//     Request timeout (default: 30 seconds).
//
//   - REDIS_ADDR, EMBEDDING_CACHE_TTL_SECONDS
//     Enable the Redis-backed embedding cache. Cache failures degrade to a
//     provider call and never fail a request.
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	embedding.FXModule
//
// which supplies *embedding.Config, embedding.Cache and *embedding.Client,
// and registers a lifecycle hook to clean up resources on shutdown.
package embedding
