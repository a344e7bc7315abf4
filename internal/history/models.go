package history

import "time"

// Collaboration outcome labels as stored in collaboration_status.
const (
	StatusSuccess = "Success"
	StatusFailure = "Failure"
)

// Collaboration is one recorded collaboration involving a catalog artist.
// ArtistName identifies the catalog artist the record counts toward;
// PartnerName is the other party, kept for provenance.
type Collaboration struct {
	ID          uint   `gorm:"primaryKey"`
	ArtistName  string `gorm:"column:artist_name;index;not null"`
	PartnerName string `gorm:"column:partner_name"`
	ArtistTags  string `gorm:"column:artist_tags"`
	PartnerTags string `gorm:"column:partner_tags"`
	Status      string `gorm:"column:collaboration_status;not null"`
	CreatedAt   time.Time
}

func (Collaboration) TableName() string { return "collaborations" }

// Stats aggregates the collaboration history of a single artist.
type Stats struct {
	Collaborations int
	Successes      int
}

// Rate returns the historical success rate in [0,1].
// Only meaningful when Collaborations > 0.
func (s Stats) Rate() float64 {
	if s.Collaborations == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Collaborations)
}
