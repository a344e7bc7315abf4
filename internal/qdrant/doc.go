// Package qdrant wraps the official Qdrant Go client with the artist-index
// operations the matchmaker needs.
//
// The wrapper hides low-level SDK details (point structs, payload protobufs,
// oneof ID types) behind four application-level operations:
//
//   - EnsureCollection: create the artist collection (1536-dim, cosine)
//     if it does not exist; safe to call repeatedly.
//   - UpsertArtists: batch upsert of artist points with deterministic
//     name-derived IDs, making ingest idempotent by artist name.
//   - Query: cosine-similarity search with an index-side minimum-score
//     threshold, returning name/tags payload alongside each hit.
//   - RetrieveTags: payload lookup by point IDs, used to back-fill
//     missing tags during result decoration.
//
// Connectivity is validated eagerly: NewClient performs a health check and
// fails fast if Qdrant is unreachable. The same Health method backs the
// service's readiness reporting.
package qdrant
