package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	entries map[string][]float32
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]float32{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]float32, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key string, vector []float32) {
	c.entries[key] = vector
	c.sets++
}

// newProviderServer returns an httptest server speaking the OpenAI embeddings
// response shape, along with a counter of received requests.
func newProviderServer(t *testing.T, dims int) (*httptest.Server, *atomic.Int64) {
	t.Helper()

	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		raw := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))

		inputs, ok := raw["input"].([]any)
		require.True(t, ok, "input must be an array")

		type datum struct {
			Embedding []float32 `json:"embedding"`
		}
		data := make([]datum, len(inputs))
		for i := range inputs {
			vec := make([]float32, dims)
			vec[0] = float32(i + 1) // distinguish vectors by input position
			data[i] = datum{Embedding: vec}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))

	return server, &calls
}

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:      baseURL,
		APIKey:       "test-key",
		Model:        DefaultModel,
		HTTPTimeoutS: 5,
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	cfg := testConfig("http://localhost:1")
	cfg.APIKey = ""

	_, err := NewClient(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestEmbedReturnsFirstVector(t *testing.T) {
	server, calls := newProviderServer(t, 8)
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	vector, err := client.Embed(context.Background(), "jazz, fusion")
	require.NoError(t, err)
	assert.Len(t, vector, 8)
	assert.Equal(t, int64(1), calls.Load())
}

func TestEmbedRejectsEmptyInput(t *testing.T) {
	server, calls := newProviderServer(t, 8)
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, int64(0), calls.Load(), "provider must not be called for empty input")
}

func TestEmbedProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	_, err = client.Embed(context.Background(), "jazz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 502")
}

func TestEmbedUsesCache(t *testing.T) {
	server, calls := newProviderServer(t, 4)
	defer server.Close()

	cache := newFakeCache()
	client, err := NewClient(testConfig(server.URL), cache)
	require.NoError(t, err)

	first, err := client.Embed(context.Background(), "ambient, drone")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := client.Embed(context.Background(), "ambient, drone")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), calls.Load(), "second call must be served from cache")
}

func TestCacheKeyNormalizesText(t *testing.T) {
	a := cacheKey(DefaultModel, "Jazz,  Fusion")
	b := cacheKey(DefaultModel, "jazz, fusion")
	c := cacheKey(DefaultModel, "jazz, funk")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestEmbedBatchPreservesOrder(t *testing.T) {
	server, _ := newProviderServer(t, 4)
	defer server.Close()

	client, err := NewClient(testConfig(server.URL), nil)
	require.NoError(t, err)

	vectors, err := client.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	assert.Equal(t, float32(1), vectors[0][0])
	assert.Equal(t, float32(2), vectors[1][0])
	assert.Equal(t, float32(3), vectors[2][0])
}
