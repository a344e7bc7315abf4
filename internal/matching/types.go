package matching

// MatchQuery is a single match request after JSON decoding and defaulting.
type MatchQuery struct {
	// Tags is the querying artist's free-text tag list. Required.
	Tags string

	// TopN caps the number of returned candidates. Valid range [1,100].
	TopN int

	// MinSimilarity is the threshold applied to the semantic-similarity
	// component inside the store's ranking function. Valid range [0,1].
	MinSimilarity float64

	// OnlySuccessful restricts ranking to artists with at least one
	// successful recorded collaboration.
	OnlySuccessful bool

	// PersistArtist requests that the querying artist be upserted into the
	// catalog before ranking. Requires a non-empty ArtistName.
	PersistArtist bool
	ArtistName    string
}

// MatchResult is one ranked candidate as produced by the store's ranking
// function, before decoration. FinalScore is the store-owned blend of the
// two component signals; this package never recomputes it.
type MatchResult struct {
	ArtistID              string
	ArtistName            string
	ArtistTags            *string
	SemanticSimilarity    float64
	HistoricalSuccessRate *float64 // nil when the artist has no recorded history
	FinalScore            float64
}

// DecoratedMatch is the public shape of a candidate in the match response.
// Component scores are included or stripped per PolicyConfig.
type DecoratedMatch struct {
	ArtistID              string   `json:"artist_id"`
	ArtistName            string   `json:"artist_name"`
	ArtistTags            *string  `json:"artist_tags"`
	OverallScore          float64  `json:"overall_score"`
	Recommendation        string   `json:"recommendation"`
	SemanticSimilarity    *float64 `json:"semantic_similarity,omitempty"`
	HistoricalSuccessRate *float64 `json:"historical_success_rate,omitempty"`
}

// Parameters echoes the effective ranking parameters back to the caller, so
// an empty match list can be told apart from a threshold that filtered
// everything out.
type Parameters struct {
	TopN           int     `json:"top_n"`
	OnlySuccessful bool    `json:"only_successful"`
	MinSimilarity  float64 `json:"min_similarity"`
}

// MatchResponse is the full payload of a successful match request.
type MatchResponse struct {
	UserTags     string           `json:"user_tags"`
	Parameters   Parameters       `json:"parameters"`
	Matches      []DecoratedMatch `json:"matches"`
	TotalMatches int              `json:"total_matches"`
}
