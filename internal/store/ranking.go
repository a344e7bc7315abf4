package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/matchcolab/matchmaker/internal/matching"
	"github.com/matchcolab/matchmaker/internal/qdrant"
)

// Score blend weights. Semantic similarity carries more signal than history
// because most catalog artists have few or no recorded collaborations; an
// artist without history scores a neutral 0.5 on the historical component
// rather than being penalized to zero.
const (
	semanticWeight     = 0.6
	historicalWeight   = 0.4
	neutralSuccessRate = 0.5
)

// Ranking oversamples the index query so that score-floor and
// only-successful filtering further down still leaves enough candidates
// to fill the requested match count.
const (
	oversampleFactor = 3
	minOversample    = 30
)

// UpsertArtist inserts or replaces a single artist in the vector index.
// The point ID is derived from the name, so repeated upserts of the same
// artist replace the stored tags and embedding.
func (s *ArtistStore) UpsertArtist(ctx context.Context, name, tags string, embedding []float32) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("store: artist name is required")
	}
	if len(embedding) == 0 {
		return fmt.Errorf("store: embedding cannot be empty")
	}

	err := s.index.UpsertArtists(ctx, []qdrant.ArtistPoint{{
		Name:   name,
		Tags:   tags,
		Vector: embedding,
	}})
	if err != nil {
		return fmt.Errorf("store: upsert of %q failed: %w", name, err)
	}

	s.logger.Debug("artist upserted", nil, map[string]interface{}{
		"artist_name": name,
	})
	return nil
}

// RankByEmbedding returns up to matchCount candidates ordered by blended
// final score descending.
//
// Candidates below minSimilarity are excluded index-side. The historical
// success rate of each surviving candidate is blended into the final score;
// when onlySuccessful is set, candidates without at least one recorded
// successful collaboration are dropped entirely.
func (s *ArtistStore) RankByEmbedding(ctx context.Context, embedding []float32, onlySuccessful bool, matchCount int, minSimilarity float64) ([]matching.MatchResult, error) {
	if matchCount < 1 {
		return nil, fmt.Errorf("store: match count must be positive")
	}

	limit := matchCount * oversampleFactor
	if limit < minOversample {
		limit = minOversample
	}

	candidates, err := s.index.Query(ctx, embedding, uint64(limit), float32(minSimilarity))
	if err != nil {
		return nil, fmt.Errorf("store: vector query failed: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}

	stats, err := s.history.SuccessStats(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("store: history lookup failed: %w", err)
	}

	results := make([]matching.MatchResult, 0, len(candidates))
	for _, c := range candidates {
		semantic := float64(c.Score)

		historical := neutralSuccessRate
		var ratePtr *float64
		hasSuccess := false
		if st, ok := stats[c.Name]; ok && st.Collaborations > 0 {
			rate := st.Rate()
			historical = rate
			ratePtr = &rate
			hasSuccess = st.Successes > 0
		}

		if onlySuccessful && !hasSuccess {
			continue
		}

		r := matching.MatchResult{
			ArtistID:              c.ID,
			ArtistName:            c.Name,
			SemanticSimilarity:    semantic,
			HistoricalSuccessRate: ratePtr,
			FinalScore:            semanticWeight*semantic + historicalWeight*historical,
		}
		if c.Tags != "" {
			tags := c.Tags
			r.ArtistTags = &tags
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	if len(results) > matchCount {
		results = results[:matchCount]
	}

	s.logger.Debug("ranking complete", nil, map[string]interface{}{
		"candidates": len(candidates),
		"returned":   len(results),
	})
	return results, nil
}

// FetchTagsByIDs resolves tag strings for the given artist IDs from the
// vector index payloads. IDs without a stored point are absent from the map.
func (s *ArtistStore) FetchTagsByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	tags, err := s.index.RetrieveTags(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("store: tag retrieval failed: %w", err)
	}
	return tags, nil
}
