// Package history persists collaboration outcomes and aggregates them into
// per-artist success statistics.
//
// The artist store blends these statistics with semantic similarity when
// ranking candidates: an artist's historical success rate is
// successes / total collaborations, and artists with no recorded history
// are reported as having none at all (rather than a zero rate), so the
// scoring layer can substitute a neutral prior.
//
// Backed by Postgres through GORM. The connection is established and the
// schema migrated at construction time; a bad database configuration fails
// the process at startup instead of the first request.
package history
