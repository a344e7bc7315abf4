package qdrant

// Payload field keys for artist points. The payload is the only place the
// index stores artist metadata, so keys must stay stable across ingests.
const (
	payloadName = "artist_name"
	payloadTags = "artist_tags"
)

// ArtistPoint is an artist record as stored in the vector index:
// a deterministic point ID, the embedding, and the name/tags payload.
type ArtistPoint struct {
	ID     string
	Name   string
	Tags   string
	Vector []float32
}

// ScoredArtist is a single similarity-search hit. Score is the cosine
// similarity between the query vector and the stored vector, in [0,1]
// for non-degenerate embedding models.
type ScoredArtist struct {
	ID    string
	Name  string
	Tags  string
	Score float32
}
