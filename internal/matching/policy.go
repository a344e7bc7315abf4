package matching

import (
	"os"
	"strconv"
)

// Recommendation tier labels, derived from final_score via fixed breakpoints.
const (
	TierHighlyRecommended = "HIGHLY RECOMMENDED - Strong compatibility!"
	TierGoodMatch         = "GOOD MATCH - Moderate compatibility"
	TierRisky             = "RISKY - Lower compatibility, but could be innovative"

	highlyRecommendedFloor = 0.7
	goodMatchFloor         = 0.5
)

// DefaultScoreFloor is the minimum blended score a candidate needs to
// surface at all. Applied client-side on top of the store's semantic
// threshold; these are two independent floors.
const DefaultScoreFloor = 0.5

// PolicyConfig controls the scoring and filtering policy. The observed
// deployments of this pipeline disagreed on three behaviors; each is an
// independent flag so either posture can be reproduced.
type PolicyConfig struct {
	// ScoreFloor drops results whose final_score falls below it.
	// Set to 0 to disable the floor entirely.
	ScoreFloor float64

	// IncludeComponentScores keeps semantic_similarity and
	// historical_success_rate in the output instead of stripping them.
	IncludeComponentScores bool

	// FixedParameters ignores caller-supplied top_n and min_similarity and
	// pins them to 10 and 0.5.
	FixedParameters bool
}

// NewPolicyConfig reads the policy flags from environment variables.
// Defaults favor the most complete posture: configurable parameters,
// component scores retained, floor active.
func NewPolicyConfig() PolicyConfig {
	floor := DefaultScoreFloor
	if v := os.Getenv("MATCH_SCORE_FLOOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			floor = f
		}
	}

	return PolicyConfig{
		ScoreFloor:             floor,
		IncludeComponentScores: os.Getenv("MATCH_INCLUDE_COMPONENT_SCORES") != "false",
		FixedParameters:        os.Getenv("MATCH_FIXED_PARAMETERS") == "true",
	}
}

// Recommendation maps a final score onto its human-readable tier. The tiers
// are exhaustive, mutually exclusive, and inclusive on the lower edge.
func Recommendation(score float64) string {
	switch {
	case score >= highlyRecommendedFloor:
		return TierHighlyRecommended
	case score >= goodMatchFloor:
		return TierGoodMatch
	default:
		return TierRisky
	}
}

// FilterByFloor drops results whose final score falls below the floor.
// Input order is preserved; the ranking function already sorted by
// final_score descending.
func FilterByFloor(results []MatchResult, floor float64) []MatchResult {
	filtered := make([]MatchResult, 0, len(results))
	for _, r := range results {
		if r.FinalScore >= floor {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// MissingTagIDs lists the artist IDs of results that came back from the
// ranking function without tags, so the orchestrator can back-fill them.
func MissingTagIDs(results []MatchResult) []string {
	var ids []string
	for _, r := range results {
		if (r.ArtistTags == nil || *r.ArtistTags == "") && r.ArtistID != "" {
			ids = append(ids, r.ArtistID)
		}
	}
	return ids
}

// Decorate shapes floor-filtered ranking results into the public response
// form: tags resolved (embedded value, else back-fill map, else null), the
// recommendation tier attached, and component scores kept or stripped per
// the policy. Pure: no lookups, no I/O.
func Decorate(results []MatchResult, tagsByID map[string]string, cfg PolicyConfig) []DecoratedMatch {
	matches := make([]DecoratedMatch, 0, len(results))
	for _, r := range results {
		tags := r.ArtistTags
		if (tags == nil || *tags == "") && tagsByID != nil {
			if backfilled, ok := tagsByID[r.ArtistID]; ok && backfilled != "" {
				tags = &backfilled
			}
		}
		if tags != nil && *tags == "" {
			tags = nil
		}

		m := DecoratedMatch{
			ArtistID:       r.ArtistID,
			ArtistName:     r.ArtistName,
			ArtistTags:     tags,
			OverallScore:   r.FinalScore,
			Recommendation: Recommendation(r.FinalScore),
		}

		if cfg.IncludeComponentScores {
			semantic := r.SemanticSimilarity
			m.SemanticSimilarity = &semantic
			m.HistoricalSuccessRate = r.HistoricalSuccessRate
		}

		matches = append(matches, m)
	}
	return matches
}
