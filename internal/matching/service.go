package matching

import (
	"context"
	"strings"

	"github.com/matchcolab/matchmaker/internal/tracer"
)

// Embedder converts tag text into an embedding vector.
// Implemented by *embedding.Client.
//
//go:generate mockgen -source=service.go -destination=mock_deps.go -package=matching
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ArtistStore is the persistence and ranking contract the orchestrator
// depends on. Implemented by *store.ArtistStore.
//
// RankByEmbedding returns at most matchCount results ordered by final_score
// descending, excluding candidates whose semantic similarity falls below
// minSimilarity; when onlySuccessful is set, it restricts to candidates with
// at least one successful recorded collaboration. The blend of semantic and
// historical signal into final_score is owned by the store, not by callers.
type ArtistStore interface {
	UpsertArtist(ctx context.Context, name, tags string, embedding []float32) error
	RankByEmbedding(ctx context.Context, embedding []float32, onlySuccessful bool, matchCount int, minSimilarity float64) ([]MatchResult, error)
	FetchTagsByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// Logger defines the logging interface used by the orchestrator.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Request parameter defaults and bounds. When FixedParameters is active the
// fixed values are pinned regardless of caller input.
const (
	DefaultTopN          = 10
	DefaultMinSimilarity = 0.3

	MaxTopN = 100

	fixedTopN          = 10
	fixedMinSimilarity = 0.5
)

// Matcher coordinates a match request end to end:
// validate, optionally persist the querying artist, embed, rank, decorate.
// Every external call is attempted exactly once; there are no retries.
type Matcher struct {
	embedder Embedder
	store    ArtistStore
	policy   PolicyConfig
	logger   Logger
	tracer   *tracer.Tracer
}

// NewMatcher constructs the orchestrator from its dependencies.
// The tracer may be nil, in which case no spans are recorded.
func NewMatcher(embedder Embedder, store ArtistStore, policy PolicyConfig, logger Logger, tr *tracer.Tracer) *Matcher {
	return &Matcher{
		embedder: embedder,
		store:    store,
		policy:   policy,
		logger:   logger,
		tracer:   tr,
	}
}

// Match executes the full pipeline for one request.
//
// Errors are classified: a *ValidationError means the request never touched
// an external dependency; an *UpstreamError means the embedding provider or
// the ranking function failed. Persistence and tag back-fill failures are
// logged and never fail the request.
func (m *Matcher) Match(ctx context.Context, q MatchQuery) (*MatchResponse, error) {
	tags := strings.TrimSpace(q.Tags)
	if tags == "" {
		return nil, validationErrorf("tags are required")
	}

	topN := q.TopN
	minSimilarity := q.MinSimilarity
	if m.policy.FixedParameters {
		topN = fixedTopN
		minSimilarity = fixedMinSimilarity
	} else {
		if topN < 1 || topN > MaxTopN {
			return nil, validationErrorf("top_n must be between 1 and %d", MaxTopN)
		}
		if minSimilarity < 0 || minSimilarity > 1 {
			return nil, validationErrorf("min_similarity must be between 0 and 1")
		}
	}

	embedCtx, endEmbed := m.span(ctx, "match.embed")
	vector, err := m.embedder.Embed(embedCtx, tags)
	endEmbed(err)
	if err != nil {
		return nil, &UpstreamError{Op: "embedding", Err: err}
	}

	// Persistence is best-effort and must never block or fail ranking.
	if artistName := strings.TrimSpace(q.ArtistName); q.PersistArtist && artistName != "" {
		persistCtx, endPersist := m.span(ctx, "match.persist")
		persistErr := m.store.UpsertArtist(persistCtx, artistName, tags, vector)
		endPersist(persistErr)
		if persistErr != nil {
			m.logger.Warn("artist persistence failed, continuing with match", persistErr, map[string]interface{}{
				"artist_name": artistName,
			})
		}
	}

	rankCtx, endRank := m.span(ctx, "match.rank")
	results, err := m.store.RankByEmbedding(rankCtx, vector, q.OnlySuccessful, topN, minSimilarity)
	endRank(err)
	if err != nil {
		return nil, &UpstreamError{Op: "ranking", Err: err}
	}

	filtered := FilterByFloor(results, m.policy.ScoreFloor)

	var tagsByID map[string]string
	if missing := MissingTagIDs(filtered); len(missing) > 0 {
		tagsByID, err = m.store.FetchTagsByIDs(ctx, missing)
		if err != nil {
			m.logger.Warn("tag back-fill failed, returning null tags", err, map[string]interface{}{
				"artist_ids": missing,
			})
			tagsByID = nil
		}
	}

	matches := Decorate(filtered, tagsByID, m.policy)

	m.logger.Debug("match request served", nil, map[string]interface{}{
		"total_candidates": len(results),
		"total_matches":    len(matches),
	})

	return &MatchResponse{
		UserTags: tags,
		Parameters: Parameters{
			TopN:           topN,
			OnlySuccessful: q.OnlySuccessful,
			MinSimilarity:  minSimilarity,
		},
		Matches:      matches,
		TotalMatches: len(matches),
	}, nil
}

// span starts a tracing span when a tracer is configured. The returned
// function ends the span, recording the error if one occurred.
func (m *Matcher) span(ctx context.Context, name string) (context.Context, func(error)) {
	if m.tracer == nil {
		return ctx, func(error) {}
	}
	ctx, s := m.tracer.StartSpan(ctx, name)
	return ctx, func(err error) {
		if err != nil {
			m.tracer.RecordErrorOnSpan(s, err)
		}
		s.End()
	}
}
