package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateStats(t *testing.T) {
	names := []string{"Bonobo", "Caribou"}
	rows := []Collaboration{
		{ArtistName: "Bonobo", Status: StatusSuccess},
		{ArtistName: "bonobo", Status: StatusFailure}, // case-insensitive match
		{ArtistName: "Bonobo", Status: StatusSuccess},
		{ArtistName: "Someone Else", Status: StatusSuccess}, // not requested
	}

	stats := aggregateStats(names, rows)

	bonobo, ok := stats["Bonobo"]
	assert.True(t, ok)
	assert.Equal(t, 3, bonobo.Collaborations)
	assert.Equal(t, 2, bonobo.Successes)
	assert.InDelta(t, 2.0/3.0, bonobo.Rate(), 1e-9)

	_, ok = stats["Caribou"]
	assert.False(t, ok, "artists with no history must be absent, not zero")
}

func TestStatsRateWithoutHistory(t *testing.T) {
	assert.Equal(t, 0.0, Stats{}.Rate())
}
