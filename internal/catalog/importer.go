package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matchcolab/matchmaker/internal/qdrant"
)

// BatchEmbedder computes embeddings for a batch of tag strings.
// Implemented by *embedding.Client.
type BatchEmbedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Indexer receives the embedded artist points.
// Implemented by *qdrant.Client.
type Indexer interface {
	UpsertArtists(ctx context.Context, artists []qdrant.ArtistPoint) error
}

// Logger defines the logging interface used by the importer.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Batch sizing for the embedding provider. Providers cap batch sizes and
// large batches inflate single-request latency, so imports run several
// medium batches concurrently instead.
const (
	embedBatchSize     = 64
	defaultConcurrency = 4
)

// Importer embeds catalog entries and loads them into the vector index.
type Importer struct {
	embedder    BatchEmbedder
	index       Indexer
	logger      Logger
	concurrency int
}

// NewImporter constructs an importer. concurrency bounds the number of
// in-flight embedding batches; values below 1 fall back to the default.
func NewImporter(embedder BatchEmbedder, index Indexer, logger Logger, concurrency int) *Importer {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Importer{
		embedder:    embedder,
		index:       index,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Run embeds all entries and upserts them into the index. Embedding batches
// run concurrently; a failing batch cancels the rest and aborts the import
// before anything is upserted, so a failed run never leaves a partial load
// from this invocation.
func (im *Importer) Run(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("catalog: nothing to import")
	}

	points := make([]qdrant.ArtistPoint, len(entries))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.concurrency)

	for start := 0; start < len(entries); start += embedBatchSize {
		end := min(start+embedBatchSize, len(entries))
		start, end := start, end

		g.Go(func() error {
			texts := make([]string, 0, end-start)
			for _, e := range entries[start:end] {
				texts = append(texts, e.Tags)
			}

			vectors, err := im.embedder.EmbedBatch(gctx, texts)
			if err != nil {
				return fmt.Errorf("catalog: embedding batch [%d:%d]: %w", start, end, err)
			}
			if len(vectors) != len(texts) {
				return fmt.Errorf("catalog: embedding batch [%d:%d]: got %d vectors for %d texts", start, end, len(vectors), len(texts))
			}

			mu.Lock()
			for i, e := range entries[start:end] {
				points[start+i] = qdrant.ArtistPoint{
					Name:   e.Name,
					Tags:   e.Tags,
					Vector: vectors[i],
				}
			}
			mu.Unlock()

			im.logger.Debug("embedded catalog batch", nil, map[string]interface{}{
				"from": start,
				"to":   end,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := im.index.UpsertArtists(ctx, points); err != nil {
		return fmt.Errorf("catalog: upsert failed: %w", err)
	}

	im.logger.Info("catalog import complete", nil, map[string]interface{}{
		"artists": len(points),
	})
	return nil
}
