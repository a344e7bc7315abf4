package store

import (
	"context"

	"github.com/matchcolab/matchmaker/internal/history"
	"github.com/matchcolab/matchmaker/internal/qdrant"
)

// VectorIndex is the slice of the vector database the store depends on.
// Implemented by *qdrant.Client.
//
//go:generate mockgen -source=setup.go -destination=mock_deps.go -package=store
type VectorIndex interface {
	UpsertArtists(ctx context.Context, artists []qdrant.ArtistPoint) error
	Query(ctx context.Context, vector []float32, limit uint64, minScore float32) ([]qdrant.ScoredArtist, error)
	RetrieveTags(ctx context.Context, ids []string) (map[string]string, error)
}

// SuccessSource provides per-artist collaboration statistics.
// Implemented by *history.Repository.
type SuccessSource interface {
	SuccessStats(ctx context.Context, names []string) (map[string]history.Stats, error)
}

// Logger defines the logging interface used by the store.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// ArtistStore joins the vector index with the collaboration history and owns
// the final-score blend. It satisfies the orchestrator's ranking contract.
type ArtistStore struct {
	index   VectorIndex
	history SuccessSource
	logger  Logger
}

// NewArtistStore constructs the store from its two data sources.
func NewArtistStore(index VectorIndex, src SuccessSource, logger Logger) *ArtistStore {
	return &ArtistStore{
		index:   index,
		history: src,
		logger:  logger,
	}
}
