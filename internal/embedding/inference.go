package embedding

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAIProvider struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newOpenAIProvider(cfg *Config) (*openAIProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("embedding: missing OPENAI_BASE_URL")
	}

	// Remove trailing slash if user added it.
	base := strings.TrimRight(cfg.BaseURL, "/")

	return &openAIProvider{
		baseURL:    base,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutS) * time.Second},
	}, nil
}

// Create generates embeddings for the given texts using the specified model.
// It uses the OpenAI-compatible /embeddings endpoint. The response carries
// one vector per input, in input order.
func (p *openAIProvider) Create(ctx context.Context, model string, texts ...string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("embedding: no texts provided")
	}
	if model == "" {
		return nil, fmt.Errorf("embedding: model is required")
	}

	reqBody := map[string]any{
		"model": model,
		"input": texts,
	}

	url := fmt.Sprintf("%s/embeddings", p.baseURL)

	var parsed struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	if err := p.postJSON(ctx, url, reqBody, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("embedding: provider returned %d vectors for %d inputs", len(parsed.Data), len(texts))
	}

	out := make([][]float32, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = d.Embedding
	}

	return out, nil
}
