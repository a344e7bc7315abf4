package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchcolab/matchmaker/internal/history"
	"github.com/matchcolab/matchmaker/internal/qdrant"
)

type fakeIndex struct {
	upserted   []qdrant.ArtistPoint
	queryLimit uint64
	queryMin   float32
	candidates []qdrant.ScoredArtist
	tags       map[string]string
	err        error
}

func (f *fakeIndex) UpsertArtists(_ context.Context, artists []qdrant.ArtistPoint) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, artists...)
	return nil
}

func (f *fakeIndex) Query(_ context.Context, _ []float32, limit uint64, minScore float32) ([]qdrant.ScoredArtist, error) {
	f.queryLimit = limit
	f.queryMin = minScore
	return f.candidates, f.err
}

func (f *fakeIndex) RetrieveTags(_ context.Context, _ []string) (map[string]string, error) {
	return f.tags, f.err
}

type fakeHistory struct {
	requested []string
	stats     map[string]history.Stats
	err       error
}

func (f *fakeHistory) SuccessStats(_ context.Context, names []string) (map[string]history.Stats, error) {
	f.requested = names
	return f.stats, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

func newStore(index *fakeIndex, hist *fakeHistory) *ArtistStore {
	return NewArtistStore(index, hist, nopLogger{})
}

func TestUpsertArtistValidation(t *testing.T) {
	index := &fakeIndex{}
	s := newStore(index, &fakeHistory{})

	err := s.UpsertArtist(context.Background(), "   ", "jazz", []float32{0.1})
	require.Error(t, err)

	err = s.UpsertArtist(context.Background(), "Herbie", "jazz", nil)
	require.Error(t, err)

	assert.Empty(t, index.upserted)
}

func TestUpsertArtistTrimsName(t *testing.T) {
	index := &fakeIndex{}
	s := newStore(index, &fakeHistory{})

	err := s.UpsertArtist(context.Background(), "  Herbie Hancock ", "jazz, funk", []float32{0.1, 0.2})
	require.NoError(t, err)

	require.Len(t, index.upserted, 1)
	assert.Equal(t, "Herbie Hancock", index.upserted[0].Name)
	assert.Equal(t, "jazz, funk", index.upserted[0].Tags)
}

func TestRankOversamplesIndexQuery(t *testing.T) {
	index := &fakeIndex{}
	s := newStore(index, &fakeHistory{})

	_, err := s.RankByEmbedding(context.Background(), []float32{0.1}, false, 5, 0.3)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), index.queryLimit, "small requests still oversample to the floor")
	assert.Equal(t, float32(0.3), index.queryMin)

	_, err = s.RankByEmbedding(context.Background(), []float32{0.1}, false, 20, 0.3)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), index.queryLimit)
}

func TestRankBlendsHistoryIntoFinalScore(t *testing.T) {
	index := &fakeIndex{candidates: []qdrant.ScoredArtist{
		{ID: "1", Name: "Tracked", Tags: "jazz", Score: 0.8},
		{ID: "2", Name: "Unknown", Tags: "funk", Score: 0.8},
	}}
	hist := &fakeHistory{stats: map[string]history.Stats{
		"Tracked": {Collaborations: 4, Successes: 4},
	}}
	s := newStore(index, hist)

	results, err := s.RankByEmbedding(context.Background(), []float32{0.1}, false, 10, 0.3)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// 0.6*0.8 + 0.4*1.0 beats 0.6*0.8 + 0.4*0.5 (neutral).
	tracked, unknown := results[0], results[1]
	assert.Equal(t, "Tracked", tracked.ArtistName)
	assert.InDelta(t, 0.88, tracked.FinalScore, 1e-9)
	require.NotNil(t, tracked.HistoricalSuccessRate)
	assert.InDelta(t, 1.0, *tracked.HistoricalSuccessRate, 1e-9)

	assert.Equal(t, "Unknown", unknown.ArtistName)
	assert.InDelta(t, 0.68, unknown.FinalScore, 1e-9)
	assert.Nil(t, unknown.HistoricalSuccessRate, "no history means no rate, not a zero rate")
	assert.InDelta(t, 0.8, unknown.SemanticSimilarity, 1e-9)
}

func TestRankHistoryCanReorderIndexResults(t *testing.T) {
	index := &fakeIndex{candidates: []qdrant.ScoredArtist{
		{ID: "1", Name: "Similar but flaky", Score: 0.9},
		{ID: "2", Name: "Less similar but reliable", Score: 0.75},
	}}
	hist := &fakeHistory{stats: map[string]history.Stats{
		"Similar but flaky":         {Collaborations: 5, Successes: 0}, // 0.6*0.9+0.4*0 = 0.54
		"Less similar but reliable": {Collaborations: 5, Successes: 5}, // 0.6*0.75+0.4*1 = 0.85
	}}
	s := newStore(index, hist)

	results, err := s.RankByEmbedding(context.Background(), []float32{0.1}, false, 10, 0.3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Less similar but reliable", results[0].ArtistName)
	assert.Equal(t, "Similar but flaky", results[1].ArtistName)
}

func TestRankTruncatesToMatchCount(t *testing.T) {
	candidates := make([]qdrant.ScoredArtist, 6)
	for i := range candidates {
		candidates[i] = qdrant.ScoredArtist{
			ID:    string(rune('a' + i)),
			Name:  string(rune('a' + i)),
			Score: float32(0.9) - float32(i)*0.05,
		}
	}
	index := &fakeIndex{candidates: candidates}
	s := newStore(index, &fakeHistory{})

	results, err := s.RankByEmbedding(context.Background(), []float32{0.1}, false, 2, 0.3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].ArtistName)
	assert.Equal(t, "b", results[1].ArtistName)
}

func TestRankOnlySuccessfulFilters(t *testing.T) {
	index := &fakeIndex{candidates: []qdrant.ScoredArtist{
		{ID: "1", Name: "Proven", Score: 0.8},
		{ID: "2", Name: "Failed only", Score: 0.9},
		{ID: "3", Name: "No history", Score: 0.95},
	}}
	hist := &fakeHistory{stats: map[string]history.Stats{
		"Proven":      {Collaborations: 3, Successes: 2},
		"Failed only": {Collaborations: 2, Successes: 0},
	}}
	s := newStore(index, hist)

	results, err := s.RankByEmbedding(context.Background(), []float32{0.1}, true, 10, 0.3)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Proven", results[0].ArtistName)
}

func TestRankPropagatesUpstreamErrors(t *testing.T) {
	s := newStore(&fakeIndex{err: errors.New("connection refused")}, &fakeHistory{})
	_, err := s.RankByEmbedding(context.Background(), []float32{0.1}, false, 10, 0.3)
	require.Error(t, err)

	s = newStore(
		&fakeIndex{candidates: []qdrant.ScoredArtist{{ID: "1", Name: "a", Score: 0.8}}},
		&fakeHistory{err: errors.New("connection refused")},
	)
	_, err = s.RankByEmbedding(context.Background(), []float32{0.1}, false, 10, 0.3)
	require.Error(t, err)
}

func TestRankEmptyIndexSkipsHistory(t *testing.T) {
	hist := &fakeHistory{}
	s := newStore(&fakeIndex{}, hist)

	results, err := s.RankByEmbedding(context.Background(), []float32{0.1}, false, 10, 0.3)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Nil(t, hist.requested, "no candidates means no history query")
}
