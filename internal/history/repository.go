package history

import (
	"context"
	"fmt"
	"strings"
)

// SuccessStats returns per-artist collaboration statistics for the given
// artist names. Names are matched case-insensitively. Artists with no
// recorded collaborations are absent from the returned map; downstream
// scoring treats absence as "no history", not as a zero rate.
func (r *Repository) SuccessStats(ctx context.Context, names []string) (map[string]Stats, error) {
	if len(names) == 0 {
		return map[string]Stats{}, nil
	}

	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = strings.ToLower(n)
	}

	var rows []Collaboration
	err := r.db.WithContext(ctx).
		Where("LOWER(artist_name) IN ?", lowered).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("history: stats query failed: %w", err)
	}

	return aggregateStats(names, rows), nil
}

// aggregateStats folds collaboration rows into per-artist stats, keyed by
// the caller-supplied spelling of each name.
func aggregateStats(names []string, rows []Collaboration) map[string]Stats {
	canonical := make(map[string]string, len(names))
	for _, n := range names {
		canonical[strings.ToLower(n)] = n
	}

	stats := make(map[string]Stats)
	for _, row := range rows {
		name, ok := canonical[strings.ToLower(row.ArtistName)]
		if !ok {
			continue
		}
		s := stats[name]
		s.Collaborations++
		if row.Status == StatusSuccess {
			s.Successes++
		}
		stats[name] = s
	}

	return stats
}

// Record stores a collaboration outcome.
func (r *Repository) Record(ctx context.Context, collab *Collaboration) error {
	if strings.TrimSpace(collab.ArtistName) == "" {
		return fmt.Errorf("history: artist name is required")
	}
	if collab.Status != StatusSuccess && collab.Status != StatusFailure {
		return fmt.Errorf("history: invalid collaboration status %q", collab.Status)
	}

	if err := r.db.WithContext(ctx).Create(collab).Error; err != nil {
		return fmt.Errorf("history: record failed: %w", err)
	}
	return nil
}
