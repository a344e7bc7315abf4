package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestRecommendationTiers(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{1.0, TierHighlyRecommended},
		{0.8, TierHighlyRecommended},
		{0.7, TierHighlyRecommended}, // lower edge is inclusive
		{0.699, TierGoodMatch},
		{0.5, TierGoodMatch}, // lower edge is inclusive
		{0.499, TierRisky},
		{0.0, TierRisky},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Recommendation(tc.score), "score %v", tc.score)
	}
}

func TestFilterByFloor(t *testing.T) {
	results := []MatchResult{
		{ArtistName: "a", FinalScore: 0.8},
		{ArtistName: "b", FinalScore: 0.5},
		{ArtistName: "c", FinalScore: 0.3},
	}

	filtered := FilterByFloor(results, 0.5)
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].ArtistName)
	assert.Equal(t, "b", filtered[1].ArtistName)

	// A floor of 0 disables filtering.
	assert.Len(t, FilterByFloor(results, 0), 3)
}

func TestDecorateFloorAndTiers(t *testing.T) {
	// The reference scenario: three candidates, floor 0.5 → two survive,
	// ordered and labeled.
	results := FilterByFloor([]MatchResult{
		{ArtistID: "1", ArtistName: "a", ArtistTags: strPtr("jazz"), FinalScore: 0.8},
		{ArtistID: "2", ArtistName: "b", ArtistTags: strPtr("funk"), FinalScore: 0.5},
		{ArtistID: "3", ArtistName: "c", ArtistTags: strPtr("noise"), FinalScore: 0.3},
	}, DefaultScoreFloor)

	matches := Decorate(results, nil, PolicyConfig{ScoreFloor: DefaultScoreFloor})

	require.Len(t, matches, 2)
	assert.Equal(t, 0.8, matches[0].OverallScore)
	assert.Equal(t, TierHighlyRecommended, matches[0].Recommendation)
	assert.Equal(t, 0.5, matches[1].OverallScore)
	assert.Equal(t, TierGoodMatch, matches[1].Recommendation)
}

func TestDecorateBackfillsMissingTags(t *testing.T) {
	results := []MatchResult{
		{ArtistID: "1", ArtistName: "a", FinalScore: 0.9},                            // tags missing
		{ArtistID: "2", ArtistName: "b", ArtistTags: strPtr("soul"), FinalScore: 0.6} /* tags present */}

	matches := Decorate(results, map[string]string{"1": "jazz, bebop"}, PolicyConfig{})

	require.Len(t, matches, 2)
	require.NotNil(t, matches[0].ArtistTags)
	assert.Equal(t, "jazz, bebop", *matches[0].ArtistTags)
	require.NotNil(t, matches[1].ArtistTags)
	assert.Equal(t, "soul", *matches[1].ArtistTags)
}

func TestDecorateNullTagsWhenUnobtainable(t *testing.T) {
	results := []MatchResult{{ArtistID: "1", ArtistName: "a", FinalScore: 0.9}}

	matches := Decorate(results, nil, PolicyConfig{})

	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].ArtistTags)
}

func TestDecorateComponentScoreVisibility(t *testing.T) {
	results := []MatchResult{{
		ArtistID:              "1",
		ArtistName:            "a",
		SemanticSimilarity:    0.91,
		HistoricalSuccessRate: floatPtr(0.75),
		FinalScore:            0.85,
	}}

	stripped := Decorate(results, nil, PolicyConfig{IncludeComponentScores: false})
	require.Len(t, stripped, 1)
	assert.Nil(t, stripped[0].SemanticSimilarity)
	assert.Nil(t, stripped[0].HistoricalSuccessRate)

	kept := Decorate(results, nil, PolicyConfig{IncludeComponentScores: true})
	require.Len(t, kept, 1)
	require.NotNil(t, kept[0].SemanticSimilarity)
	assert.Equal(t, 0.91, *kept[0].SemanticSimilarity)
	require.NotNil(t, kept[0].HistoricalSuccessRate)
	assert.Equal(t, 0.75, *kept[0].HistoricalSuccessRate)
}

func TestMissingTagIDs(t *testing.T) {
	results := []MatchResult{
		{ArtistID: "1"},
		{ArtistID: "2", ArtistTags: strPtr("")},
		{ArtistID: "3", ArtistTags: strPtr("house")},
		{ArtistID: "", ArtistTags: nil}, // no id, nothing to look up
	}

	assert.Equal(t, []string{"1", "2"}, MissingTagIDs(results))
}
